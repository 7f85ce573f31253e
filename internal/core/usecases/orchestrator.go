// internal/core/usecases/orchestrator.go
package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/platform/logx"
)

// Orchestrator sequences the pseudo-scan modules for one run: it sizes the
// progress total, executes modules with bounded concurrency and per-module
// failure isolation, aggregates and de-duplicates their outputs, and keeps
// the append-only timeline. One module failing never aborts the run;
// partial results are always returned.
type Orchestrator struct {
	modules   []ports.Module
	dedupe    *DedupeService
	logger    logx.Logger
	observers []ports.Notifier
	progress  ports.ProgressFunc

	maxWorkers int
	version    string
	seed       int64

	notifyWg sync.WaitGroup
}

// OrchestratorOptions configures the orchestrator.
type OrchestratorOptions struct {
	Modules    []ports.Module
	Logger     logx.Logger
	Observers  []ports.Notifier
	Progress   ports.ProgressFunc
	MaxWorkers int
	Version    string
	Seed       int64
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator(opts OrchestratorOptions) *Orchestrator {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 2
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	return &Orchestrator{
		modules:    opts.Modules,
		dedupe:     NewDedupeService(),
		logger:     opts.Logger.With("component", "orchestrator"),
		observers:  opts.Observers,
		progress:   opts.Progress,
		maxWorkers: opts.MaxWorkers,
		version:    opts.Version,
		seed:       opts.Seed,
	}
}

// Run executes every selected module against the target. Validation
// failures return before any timeline entry exists.
func (o *Orchestrator) Run(ctx context.Context, target domain.Target, cfg domain.ScanConfig) (result *domain.RunResult, runErr error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(o.modules) == 0 {
		return nil, domain.ErrModuleNotFound
	}

	result = domain.NewRunResult(target, cfg)
	result.Metadata.Version = o.version
	result.Metadata.Seed = o.seed
	// The registry may build fewer modules than the config selects
	// (unregistered names are skipped); percentage is over what runs.
	result.Metadata.TotalModules = len(o.modules)
	timeline := domain.NewTimeline(result.Metadata.StartTime)

	// A panic outside the per-module guards is a programming error; it
	// surfaces to the caller as a single failure with partial state.
	defer func() {
		if r := recover(); r != nil {
			runErr = fmt.Errorf("run failed: %v", r)
			result.Timeline = timeline.Entries()
			o.notify(ctx, ports.NewEvent(ports.EventTypeRunFailed, domain.RunModuleName, runErr.Error()))
			o.notifyWg.Wait()
		}
	}()

	tracker := NewProgressTracker(o.totalTasks(target, cfg), o.emitProgress(ctx))

	o.logger.Info("starting run",
		"run_id", result.ID,
		"target", target.Domain,
		"company", target.Company,
		"tier", cfg.Tier(),
		"modules", len(o.modules),
		"tasks", tracker.Snapshot().Total,
		"workers", o.maxWorkers,
	)

	timeline.Append(domain.RunModuleName, domain.StatusStarted, "")
	o.notify(ctx, ports.NewEvent(
		ports.EventTypeRunStarted,
		domain.RunModuleName,
		ports.RunStartedEvent{
			RunID:   result.ID,
			Target:  target,
			Modules: cfg.Selected(),
			Tier:    cfg.Tier(),
		},
	))

	reports := o.executeModules(ctx, target, cfg, timeline, result, tracker)

	raw := make([]*domain.Record, 0)
	for _, report := range reports {
		raw = append(raw, report.Records...)
	}
	result.Records = o.dedupe.Deduplicate(raw)

	if ctx.Err() != nil {
		result.AddWarning(domain.RunModuleName, "run canceled, results are partial")
		o.notify(ctx, ports.NewEvent(ports.EventTypeRunCanceled, domain.RunModuleName, nil))
	}

	// Idempotent terminal progress update.
	tracker.Finish()

	timeline.Append(domain.RunModuleName, domain.StatusCompleted,
		fmt.Sprintf("%d records", len(result.Records)))
	result.Timeline = timeline.Entries()
	result.Finalize()

	o.logger.Info("run completed",
		"run_id", result.ID,
		"target", target.Domain,
		"raw_records", result.Metadata.RawRecords,
		"unique_records", result.Metadata.UniqueRecords,
		"completed_modules", result.Metadata.CompletedModules,
		"errors", len(result.Errors),
		"duration_ms", result.Metadata.Duration.Milliseconds(),
	)

	o.notify(ctx, ports.NewEvent(
		ports.EventTypeRunCompleted,
		domain.RunModuleName,
		ports.RunCompletedEvent{
			RunID:       result.ID,
			Target:      target,
			RecordCount: len(result.Records),
			Duration:    result.Metadata.Duration,
			Failed:      result.FailedModules(),
		},
	))

	o.notifyWg.Wait()
	return result, nil
}

// totalTasks sums the work items every module will process.
func (o *Orchestrator) totalTasks(target domain.Target, cfg domain.ScanConfig) int {
	total := 0
	for _, m := range o.modules {
		total += m.TaskCount(target, cfg)
	}
	return total
}

// executeModules runs modules in parallel, bounded by maxWorkers.
func (o *Orchestrator) executeModules(
	ctx context.Context,
	target domain.Target,
	cfg domain.ScanConfig,
	timeline *domain.Timeline,
	result *domain.RunResult,
	tracker *ProgressTracker,
) []*domain.ModuleReport {
	sem := make(chan struct{}, o.maxWorkers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	reports := make([]*domain.ModuleReport, 0, len(o.modules))

	for _, mod := range o.modules {
		wg.Add(1)
		go func(m ports.Module) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			report := o.runModule(ctx, m, target, cfg, timeline, tracker)

			mu.Lock()
			reports = append(reports, report)
			result.AddReport(report)
			if report.Status == domain.StatusFailed {
				result.AddError(string(report.Module), report.Error)
			}
			percent := result.Progress()
			mu.Unlock()

			o.notifyModuleDone(ctx, report, percent)
		}(mod)
	}

	wg.Wait()
	return reports
}

// runModule is the per-module guard: it executes one module, converts a
// failure into a FAILED timeline entry and always produces a terminal
// report so the completed-module counter advances.
func (o *Orchestrator) runModule(
	ctx context.Context,
	mod ports.Module,
	target domain.Target,
	cfg domain.ScanConfig,
	timeline *domain.Timeline,
	tracker *ProgressTracker,
) *domain.ModuleReport {
	name := mod.Name()
	o.logger.Debug("executing module", "module", name)

	timeline.Append(string(name), domain.StatusRunning, "")
	o.notify(ctx, ports.NewEvent(ports.EventTypeModuleStarted, string(name), nil))

	start := time.Now()
	records, err := o.safeRun(ctx, mod, target, cfg, tracker)
	duration := time.Since(start)

	if err != nil {
		o.logger.Warn("module failed", "module", name, "error", err.Error())
		timeline.Append(string(name), domain.StatusFailed, err.Error())
		return &domain.ModuleReport{
			Module:   name,
			Status:   domain.StatusFailed,
			Records:  records, // partial output still counts
			Error:    err.Error(),
			Duration: duration,
		}
	}

	o.logger.Debug("module completed",
		"module", name,
		"records", len(records),
		"duration_ms", duration.Milliseconds(),
	)
	timeline.Append(string(name), domain.StatusCompleted, fmt.Sprintf("%d records", len(records)))

	return &domain.ModuleReport{
		Module:   name,
		Status:   domain.StatusCompleted,
		Records:  records,
		Duration: duration,
	}
}

// safeRun executes the module with a panic guard so a panicking module
// degrades into a FAILED report instead of killing the run.
func (o *Orchestrator) safeRun(
	ctx context.Context,
	mod ports.Module,
	target domain.Target,
	cfg domain.ScanConfig,
	tracker *ProgressTracker,
) (records []*domain.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", domain.ErrModuleFailed, r)
		}
	}()
	return mod.Run(ctx, target, cfg, tracker)
}

// notifyModuleDone emits the terminal module event with the recomputed
// completion percentage.
func (o *Orchestrator) notifyModuleDone(ctx context.Context, report *domain.ModuleReport, percent float64) {
	eventType := ports.EventTypeModuleCompleted
	if report.Status == domain.StatusFailed {
		eventType = ports.EventTypeModuleFailed
	}

	o.notify(ctx, ports.NewEvent(eventType, string(report.Module), ports.ModuleCompletedEvent{
		Module:      report.Module,
		Status:      report.Status,
		RecordCount: len(report.Records),
		Duration:    report.Duration,
		Percent:     percent,
		Error:       report.Error,
	}))
}

// emitProgress builds the tracker callback: it invokes the caller-supplied
// function synchronously and fans the snapshot out to observers.
func (o *Orchestrator) emitProgress(ctx context.Context) ports.ProgressFunc {
	return func(snapshot domain.ProgressSnapshot) {
		if o.progress != nil {
			o.progress(snapshot)
		}
		o.notify(ctx, ports.NewEvent(
			ports.EventTypeProgress,
			domain.RunModuleName,
			ports.ProgressEvent{Snapshot: snapshot},
		))
	}
}

// notify fans an event out to every observer. Each delivery runs in its
// own goroutine with a timeout so a slow observer cannot stall the run.
func (o *Orchestrator) notify(ctx context.Context, event ports.Event) {
	const notificationTimeout = 5 * time.Second

	for _, observer := range o.observers {
		o.notifyWg.Add(1)
		go func(notifier ports.Notifier) {
			defer o.notifyWg.Done()

			notifyCtx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
			defer cancel()

			done := make(chan error, 1)
			go func() {
				done <- notifier.Notify(notifyCtx, event)
			}()

			select {
			case err := <-done:
				if err != nil {
					o.logger.Warn("notification failed", "error", err.Error())
				}
			case <-notifyCtx.Done():
				o.logger.Warn("notification timeout exceeded",
					"timeout", notificationTimeout,
					"event_type", event.Type,
				)
			}
		}(observer)
	}
}

// Close releases every module.
func (o *Orchestrator) Close() error {
	var errs []error
	for _, m := range o.modules {
		if err := m.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("closing modules: %v", errs)
	}
	return nil
}
