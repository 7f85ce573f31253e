// internal/core/usecases/progress_tracker.go
package usecases

import (
	"sync"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
)

// ProgressTracker accumulates task completions for one run and drives the
// caller-supplied progress callback. It implements ports.TaskSink.
//
// Invariants: Processed never decreases and never exceeds Total; Found is
// the size of the identity-key union of every record seen so far, so
// re-seeing a duplicate record never inflates it.
type ProgressTracker struct {
	mu        sync.Mutex
	processed int
	total     int
	found     map[string]struct{}
	fn        ports.ProgressFunc
}

// NewProgressTracker creates a tracker for total work items. fn may be nil.
func NewProgressTracker(total int, fn ports.ProgressFunc) *ProgressTracker {
	if total < 0 {
		total = 0
	}
	return &ProgressTracker{
		total: total,
		found: make(map[string]struct{}),
		fn:    fn,
	}
}

// Advance records one completed task and its records, then invokes the
// callback synchronously with a fresh snapshot.
func (t *ProgressTracker) Advance(records []*domain.Record) {
	t.mu.Lock()
	if t.processed < t.total {
		t.processed++
	}
	for _, r := range records {
		if r == nil || !r.IsValid() {
			continue
		}
		t.found[r.Key()] = struct{}{}
	}
	snapshot := t.snapshotLocked()
	fn := t.fn
	t.mu.Unlock()

	if fn != nil {
		fn(snapshot)
	}
}

// Finish forces a terminal snapshot (processed == total) and emits it.
// Safe to call more than once; the final update is idempotent.
func (t *ProgressTracker) Finish() {
	t.mu.Lock()
	t.processed = t.total
	snapshot := t.snapshotLocked()
	fn := t.fn
	t.mu.Unlock()

	if fn != nil {
		fn(snapshot)
	}
}

// Snapshot returns the current progress.
func (t *ProgressTracker) Snapshot() domain.ProgressSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *ProgressTracker) snapshotLocked() domain.ProgressSnapshot {
	return domain.ProgressSnapshot{
		Processed: t.processed,
		Total:     t.total,
		Found:     len(t.found),
	}
}
