// internal/testutil/mocks.go
package testutil

import (
	"sync"
)

// Note: mocks that need domain or ports types live next to their tests to
// avoid import cycles. This file holds only generic utilities.

// CallRecorder is a thread-safe call log for verifying interactions.
type CallRecorder struct {
	mu    sync.Mutex
	calls []string
}

// NewCallRecorder creates an empty recorder.
func NewCallRecorder() *CallRecorder {
	return &CallRecorder{}
}

// Record logs one call.
func (r *CallRecorder) Record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

// Calls returns a copy of the logged calls in order.
func (r *CallRecorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how many times name was recorded.
func (r *CallRecorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, c := range r.calls {
		if c == name {
			count++
		}
	}
	return count
}
