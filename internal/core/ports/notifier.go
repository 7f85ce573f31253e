// internal/core/ports/notifier.go
package ports

import (
	"context"
	"time"

	"mirage/internal/core/domain"
)

// Notifier is the port for run lifecycle notifications. It decouples the
// orchestrator from presentation (terminal UI, logs, future webhooks).
type Notifier interface {
	// Notify delivers one event
	Notify(ctx context.Context, event Event) error

	// Close releases resources held by the notifier
	Close() error
}

// Event is a lifecycle or progress notification.
type Event struct {
	// Type of the event
	Type EventType

	// Timestamp of the event
	Timestamp time.Time

	// Module that produced the event (run-level events use domain.RunModuleName)
	Module string

	// Data carries the typed payload
	Data interface{}
}

// EventType enumerates notification kinds.
type EventType string

const (
	// Run events
	EventTypeRunStarted   EventType = "run.started"
	EventTypeRunCompleted EventType = "run.completed"
	EventTypeRunFailed    EventType = "run.failed"
	EventTypeRunCanceled  EventType = "run.canceled"

	// Module events
	EventTypeModuleStarted   EventType = "module.started"
	EventTypeModuleCompleted EventType = "module.completed"
	EventTypeModuleFailed    EventType = "module.failed"

	// Progress events
	EventTypeProgress EventType = "progress.updated"
)

// NewEvent creates an event stamped with the current time.
func NewEvent(eventType EventType, module string, data interface{}) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Module:    module,
		Data:      data,
	}
}

// RunStartedEvent payload for run.started.
type RunStartedEvent struct {
	RunID   string
	Target  domain.Target
	Modules []domain.ModuleName
	Tier    domain.Tier
}

// RunCompletedEvent payload for run.completed.
type RunCompletedEvent struct {
	RunID       string
	Target      domain.Target
	RecordCount int
	Duration    time.Duration
	Failed      []domain.ModuleName
}

// ModuleCompletedEvent payload for module.completed and module.failed.
type ModuleCompletedEvent struct {
	Module      domain.ModuleName
	Status      domain.Status
	RecordCount int
	Duration    time.Duration
	Percent     float64
	Error       string
}

// ProgressEvent payload for progress.updated.
type ProgressEvent struct {
	Snapshot domain.ProgressSnapshot
}
