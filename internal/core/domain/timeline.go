// internal/core/domain/timeline.go
package domain

import (
	"fmt"
	"sync"
	"time"
)

// TimelineEntry is one append-only log record of a lifecycle event.
type TimelineEntry struct {
	// Timestamp when the event happened
	Timestamp time.Time `json:"timestamp"`

	// Module that the event belongs to ("run" for run-level events)
	Module string `json:"module"`

	// Status of the event
	Status Status `json:"status"`

	// Message carries optional detail (error text for FAILED entries)
	Message string `json:"message,omitempty"`

	// Elapsed time since the run started
	Elapsed time.Duration `json:"elapsed"`
}

// String returns a readable representation of the entry.
func (e TimelineEntry) String() string {
	return fmt.Sprintf("%s [%s] %s", e.Module, e.Status, e.Message)
}

// Timeline is an append-only, thread-safe event log. Entries are never
// removed or reordered; ordering is append order.
type Timeline struct {
	mu      sync.Mutex
	started time.Time
	entries []TimelineEntry
}

// NewTimeline creates a timeline anchored at the given start time.
func NewTimeline(started time.Time) *Timeline {
	return &Timeline{
		started: started,
		entries: []TimelineEntry{},
	}
}

// Append records an event. Elapsed is computed from the run start.
func (t *Timeline) Append(module string, status Status, message string) TimelineEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry := TimelineEntry{
		Timestamp: time.Now(),
		Module:    module,
		Status:    status,
		Message:   message,
		Elapsed:   time.Since(t.started),
	}
	t.entries = append(t.entries, entry)
	return entry
}

// Entries returns a copy of the log in append order.
func (t *Timeline) Entries() []TimelineEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]TimelineEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Timeline) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// CountByStatus counts entries with the given status, excluding run-level
// entries when moduleOnly is set.
func (t *Timeline) CountByStatus(status Status, moduleOnly bool) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	count := 0
	for _, e := range t.entries {
		if e.Status != status {
			continue
		}
		if moduleOnly && e.Module == RunModuleName {
			continue
		}
		count++
	}
	return count
}

// RunModuleName is the module label used for run-level timeline entries.
const RunModuleName = "run"
