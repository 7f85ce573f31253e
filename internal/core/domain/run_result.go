// internal/core/domain/run_result.go
package domain

import (
	"fmt"
	"time"
)

// RunResult is the aggregate outcome of one end-to-end run across all
// selected modules. It lives only in memory; it is created at run start,
// mutated during the active run and discarded at the next run.
type RunResult struct {
	// ID uniquely identifies the run
	ID string `json:"id"`

	// Target the run was executed against
	Target Target `json:"target"`

	// Config used for the run
	Config ScanConfig `json:"config"`

	// Modules maps each executed module to its report
	Modules map[ModuleName]*ModuleReport `json:"modules"`

	// Records is the merged, de-duplicated union of all module outputs
	Records []*Record `json:"records"`

	// Timeline holds the append-only lifecycle log
	Timeline []TimelineEntry `json:"timeline"`

	// Metadata about the execution
	Metadata RunMetadata `json:"metadata"`

	// Warnings raised during the run (non-critical)
	Warnings []Warning `json:"warnings,omitempty"`

	// Errors raised during the run (per-module, never fatal to the run)
	Errors []RunError `json:"errors,omitempty"`
}

// ModuleReport captures the output and lifecycle of one module.
type ModuleReport struct {
	// Module name
	Module ModuleName `json:"module"`

	// Status terminal state (COMPLETED or FAILED)
	Status Status `json:"status"`

	// Records produced by the module (raw, before de-duplication)
	Records []*Record `json:"records"`

	// Error message when Status is FAILED
	Error string `json:"error,omitempty"`

	// Duration of the module execution
	Duration time.Duration `json:"duration"`
}

// RunMetadata describes the run execution.
type RunMetadata struct {
	// StartTime when the run began
	StartTime time.Time `json:"start_time"`

	// EndTime when the run finished
	EndTime time.Time `json:"end_time"`

	// Duration total run time
	Duration time.Duration `json:"duration"`

	// Tier effective search depth
	Tier Tier `json:"tier"`

	// TotalModules number of selected modules
	TotalModules int `json:"total_modules"`

	// CompletedModules number of modules reaching a terminal state
	CompletedModules int `json:"completed_modules"`

	// RawRecords count before de-duplication
	RawRecords int `json:"raw_records"`

	// UniqueRecords count after de-duplication
	UniqueRecords int `json:"unique_records"`

	// Version of Mirage that produced the result
	Version string `json:"version,omitempty"`

	// Seed used by the random source (reproducibility)
	Seed int64 `json:"seed"`
}

// Warning is a non-critical notice attached to the result.
type Warning struct {
	Module    string    `json:"module"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// RunError is a caught, non-fatal error attached to the result.
type RunError struct {
	Module    string    `json:"module"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRunResult creates an empty result for the target.
func NewRunResult(target Target, cfg ScanConfig) *RunResult {
	return &RunResult{
		ID:      generateRunID(),
		Target:  target,
		Config:  cfg,
		Modules: make(map[ModuleName]*ModuleReport),
		Records: []*Record{},
		Metadata: RunMetadata{
			StartTime:    time.Now(),
			Tier:         cfg.Tier(),
			TotalModules: len(cfg.Selected()),
		},
		Warnings: []Warning{},
		Errors:   []RunError{},
	}
}

// AddReport attaches a module report and advances the completed counter.
func (r *RunResult) AddReport(report *ModuleReport) {
	if report == nil {
		return
	}
	r.Modules[report.Module] = report
	if report.Status.IsTerminal() {
		r.Metadata.CompletedModules++
	}
	r.Metadata.RawRecords += len(report.Records)
}

// AddWarning attaches a warning.
func (r *RunResult) AddWarning(module, message string) {
	r.Warnings = append(r.Warnings, Warning{
		Module:    module,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// AddError attaches a caught error.
func (r *RunResult) AddError(module, message string) {
	r.Errors = append(r.Errors, RunError{
		Module:    module,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// Finalize stamps the end time and derived counters.
func (r *RunResult) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
	r.Metadata.UniqueRecords = len(r.Records)
}

// Progress returns the module-level completion percentage.
func (r *RunResult) Progress() float64 {
	if r.Metadata.TotalModules == 0 {
		return 0
	}
	return float64(r.Metadata.CompletedModules) / float64(r.Metadata.TotalModules) * 100
}

// Stats returns record counts grouped by type.
func (r *RunResult) Stats() map[string]int {
	stats := make(map[string]int)
	for _, rec := range r.Records {
		stats[string(rec.Type)]++
	}
	return stats
}

// TotalRecords returns the number of de-duplicated records.
func (r *RunResult) TotalRecords() int {
	return len(r.Records)
}

// FailedModules returns the modules that ended FAILED.
func (r *RunResult) FailedModules() []ModuleName {
	var failed []ModuleName
	for _, m := range AllModules() {
		if report, ok := r.Modules[m]; ok && report.Status == StatusFailed {
			failed = append(failed, m)
		}
	}
	return failed
}

// Summary returns a readable one-line summary.
func (r *RunResult) Summary() string {
	return fmt.Sprintf(
		"RunResult{target=%s, modules=%d/%d, records=%d, errors=%d, duration=%s}",
		r.Target.Domain,
		r.Metadata.CompletedModules,
		r.Metadata.TotalModules,
		len(r.Records),
		len(r.Errors),
		r.Metadata.Duration,
	)
}

func generateRunID() string {
	return fmt.Sprintf("run-%d", time.Now().UnixNano())
}
