package ports

import (
	"context"
	"time"
)

// ActionRecord is one dispatched command, success or failure.
type ActionRecord struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Kind       string    `json:"kind"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

type ActionLogRepository interface {
	Append(ctx context.Context, rec ActionRecord) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]ActionRecord, error)
}
