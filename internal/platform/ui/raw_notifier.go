// internal/platform/ui/raw_notifier.go
package ui

import (
	"context"

	"mirage/internal/core/ports"
	"mirage/internal/platform/logx"
)

// RawNotifier implements ports.Notifier with plain log lines. Used when
// the terminal UI is disabled or stdout is not a TTY.
type RawNotifier struct {
	logger logx.Logger
}

// NewRawNotifier creates the plain-line notifier.
func NewRawNotifier(logger logx.Logger) *RawNotifier {
	return &RawNotifier{logger: logger.With("component", "ui")}
}

// Notify logs one event.
func (n *RawNotifier) Notify(_ context.Context, event ports.Event) error {
	switch payload := event.Data.(type) {
	case ports.RunStartedEvent:
		n.logger.Info("run started",
			"run_id", payload.RunID,
			"target", payload.Target.Domain,
			"tier", payload.Tier.String(),
			"modules", len(payload.Modules))
	case ports.RunCompletedEvent:
		n.logger.Info("run completed",
			"run_id", payload.RunID,
			"records", payload.RecordCount,
			"duration", payload.Duration.String(),
			"failed_modules", len(payload.Failed))
	case ports.ModuleCompletedEvent:
		if event.Type == ports.EventTypeModuleFailed {
			n.logger.Warn("module failed",
				"module", payload.Module.String(),
				"error", payload.Error,
				"duration", payload.Duration.String())
		} else {
			n.logger.Info("module completed",
				"module", payload.Module.String(),
				"records", payload.RecordCount,
				"duration", payload.Duration.String(),
				"progress", payload.Percent)
		}
	case ports.ProgressEvent:
		n.logger.Debug("progress",
			"processed", payload.Snapshot.Processed,
			"total", payload.Snapshot.Total,
			"found", payload.Snapshot.Found)
	default:
		n.logger.Debug("event", "type", string(event.Type), "module", event.Module)
	}
	return nil
}

// Close is a no-op.
func (n *RawNotifier) Close() error {
	return nil
}
