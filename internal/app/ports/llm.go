package ports

import "context"

// ChatModel produces one reply for one prompt against the local model
// runtime.
type ChatModel interface {
	Reply(ctx context.Context, system, prompt string) (string, error)
}
