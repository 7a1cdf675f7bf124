package memory

import (
	"context"
	"sync"

	"github.com/r3lic-pnw/craftagent/internal/app/ports"
)

// maxRecords bounds the in-memory log; the oldest entries fall off.
const maxRecords = 512

type ActionLogRepo struct {
	mu   sync.Mutex
	recs []ports.ActionRecord
}

func NewActionLogRepo() *ActionLogRepo {
	return &ActionLogRepo{}
}

func (r *ActionLogRepo) Append(_ context.Context, rec ports.ActionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
	if len(r.recs) > maxRecords {
		r.recs = r.recs[len(r.recs)-maxRecords:]
	}
	return nil
}

func (r *ActionLogRepo) Recent(_ context.Context, limit int) ([]ports.ActionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.recs)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]ports.ActionRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.recs[i])
	}
	return out, nil
}
