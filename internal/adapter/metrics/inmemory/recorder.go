package inmemory

import "sync"

type Snapshot struct {
	ActionTotal   uint64            `json:"action_total"`
	ActionSuccess uint64            `json:"action_success"`
	ActionFailure uint64            `json:"action_failure"`
	ActionTimeout uint64            `json:"action_timeout"`
	ByKind        map[string]uint64 `json:"by_kind"`
}

// Recorder counts dispatch outcomes per action kind.
type Recorder struct {
	mu      sync.Mutex
	success uint64
	failure uint64
	timeout uint64
	byKind  map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byKind: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byKind[kind]++
}

func (r *Recorder) RecordFailure(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
	r.byKind[kind]++
}

func (r *Recorder) RecordTimeout(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeout++
	r.byKind[kind]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionSuccess: r.success,
		ActionFailure: r.failure,
		ActionTimeout: r.timeout,
		ActionTotal:   r.success + r.failure + r.timeout,
		ByKind:        make(map[string]uint64, len(r.byKind)),
	}
	for k, v := range r.byKind {
		out.ByKind[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
