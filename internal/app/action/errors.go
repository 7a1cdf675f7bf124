package action

import "errors"

// Failure taxonomy surfaced to the HTTP adapter. Executors wrap these
// with human-readable context; callers distinguish classes with
// errors.Is and read the message for detail.
var (
	ErrBotNotReady      = errors.New("bot not connected or not spawned")
	ErrNoText           = errors.New("No text provided")
	ErrActionInProgress = errors.New("another action is already in progress")
	ErrNotAvailable     = errors.New("required capability not available")
	ErrTimeout          = errors.New("action timed out")
	ErrUnreachable      = errors.New("target unreachable")
	ErrInvalidTarget    = errors.New("invalid target")
	ErrUnknownIntent    = errors.New("unknown intent")
)
