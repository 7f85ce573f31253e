// internal/platform/ui/noop_notifier.go
package ui

import (
	"context"

	"mirage/internal/core/ports"
)

// NoopNotifier discards every event. Useful in tests and embedded use.
type NoopNotifier struct{}

// NewNoopNotifier creates the discarding notifier.
func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

// Notify discards the event.
func (n *NoopNotifier) Notify(_ context.Context, _ ports.Event) error {
	return nil
}

// Close is a no-op.
func (n *NoopNotifier) Close() error {
	return nil
}
