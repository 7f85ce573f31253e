// internal/core/ports/module.go
package ports

import (
	"context"

	"mirage/internal/core/domain"
)

// Module is the primary port for every pseudo-scan category in Mirage.
// Implementations synthesize records; each one is a placeholder for a real
// scanner backend (DNS, port probing, search APIs) a production recon tool
// would plug in here.
type Module interface {
	// Name returns the unique module name (osint, network, ...)
	Name() domain.ModuleName

	// Description returns a one-line human description
	Description() string

	// TaskCount returns the number of abstract work items the module will
	// process for this target and config. The orchestrator sums these to
	// size the run-wide progress total before execution starts.
	TaskCount(target domain.Target, cfg domain.ScanConfig) int

	// Run executes the module. Implementations call sink.Advance once per
	// completed work item, passing the records that item produced. The
	// returned slice is the module's raw output, before de-duplication.
	Run(ctx context.Context, target domain.Target, cfg domain.ScanConfig, sink TaskSink) ([]*domain.Record, error)

	// Close releases resources held by the module
	Close() error
}

// ProgressFunc is the caller-supplied progress callback. It is invoked
// synchronously, zero or more times per run, and may see the final
// snapshot more than once; callers must treat the final update as
// idempotent.
type ProgressFunc func(domain.ProgressSnapshot)

// TaskSink receives task completions. Advance is invoked synchronously by
// modules on every finished work item; the orchestrator's progress tracker
// implements it.
type TaskSink interface {
	Advance(records []*domain.Record)
}

// NopSink discards task completions. Useful when running a module outside
// an orchestrated run.
type NopSink struct{}

func (NopSink) Advance([]*domain.Record) {}

// ModuleConfig holds per-module configuration.
type ModuleConfig struct {
	// Enabled toggles the module
	Enabled bool

	// BatchSize overrides the scheduler batch size for this module (0 = default)
	BatchSize int

	// Custom carries module-specific settings
	Custom map[string]interface{}
}

// DefaultModuleConfig returns an enabled config with defaults.
func DefaultModuleConfig() ModuleConfig {
	return ModuleConfig{
		Enabled: true,
		Custom:  make(map[string]interface{}),
	}
}

// ModuleMetadata describes a registered module.
type ModuleMetadata struct {
	Name        domain.ModuleName
	Description string
	Version     string

	// Produces lists the record types the module can emit
	Produces []domain.RecordType
}
