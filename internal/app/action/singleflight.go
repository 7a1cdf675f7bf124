package action

import "sync/atomic"

// Slot serializes dispatches: one in-flight action at a time, a second
// one is rejected rather than queued.
type Slot struct {
	busy atomic.Bool
}

func NewSlot() *Slot { return &Slot{} }

func (s *Slot) TryAcquire() bool { return s.busy.CompareAndSwap(false, true) }

func (s *Slot) Release() { s.busy.Store(false) }
