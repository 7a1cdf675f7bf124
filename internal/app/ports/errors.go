package ports

import "errors"

var (
	// ErrNoPath is reported by a Mover when the pathfinder cannot reach
	// the active goal.
	ErrNoPath = errors.New("no path to goal")
	// ErrGoalAborted is reported when the active goal was replaced or
	// cleared before completion.
	ErrGoalAborted = errors.New("goal aborted")
	// ErrNotConnected is returned by gateway operations issued while the
	// session is down.
	ErrNotConnected = errors.New("bot not connected")
)
