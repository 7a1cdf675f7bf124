package world

import "time"

// AgentState is a point-in-time read of the live bot session. It is owned
// by the gateway; callers never mutate it.
type AgentState struct {
	Connected   bool      `json:"connected"`
	Spawned     bool      `json:"spawned"`
	Username    string    `json:"username"`
	Version     string    `json:"version"`
	Position    Vec3      `json:"position"`
	Yaw         float64   `json:"yaw"`
	Pitch       float64   `json:"pitch"`
	Health      float64   `json:"health"`
	Food        float64   `json:"food"`
	Experience  int       `json:"experience"`
	LastError   string    `json:"last_error,omitempty"`
	ConnectedAt time.Time `json:"connected_at,omitempty"`
}
