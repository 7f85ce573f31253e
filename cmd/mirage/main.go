// cmd/mirage/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mirage/internal/adapters/export"
	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/core/usecases"
	"mirage/internal/platform/cache"
	"mirage/internal/platform/config"
	"mirage/internal/platform/logx"
	"mirage/internal/platform/randx"
	"mirage/internal/platform/registry"
	"mirage/internal/platform/ui"

	// Import modules for auto-registration via init()
	_ "mirage/internal/modules/infra"
	_ "mirage/internal/modules/network"
	_ "mirage/internal/modules/osint"
	_ "mirage/internal/modules/social"
	_ "mirage/internal/modules/webapp"
)

var (
	// Set via -ldflags at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// 1. Load layered config
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Printf("mirage %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	if cfg.Target == "" || cfg.Company == "" {
		fmt.Fprintln(os.Stderr, "Error: target domain and company are required")
		fmt.Fprintln(os.Stderr, "Usage: mirage -t <domain> -c <company>")
		fmt.Fprintln(os.Stderr, "Try: mirage -h for help")
		os.Exit(2)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// 2. Shared logger
	logger := logx.New()
	if cfg.LogLevel != "" {
		logger.SetLevel(logx.ParseLevel(cfg.LogLevel))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("mirage starting",
		"version", version,
		"target", cfg.Target,
		"company", cfg.Company,
		"workers", cfg.Workers,
		"seed", seed,
	)

	// 3. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals(cfg.Timeout(), logger)
	defer cancel()

	// 4. Build target
	target := domain.NewTarget(cfg.Target, cfg.Company)
	if err := target.Validate(); err != nil {
		logger.Err(err, "phase", "validation")
		os.Exit(2)
	}

	scanCfg := cfg.ScanConfig()
	if err := scanCfg.Validate(); err != nil {
		logger.Err(err, "phase", "validation")
		os.Exit(2)
	}

	// 5. Build modules from registry with shared deps
	deps := registry.ModuleDeps{
		Logger: logger,
		Rand:   randx.New(seed),
		Cache:  cache.NewBounded(cfg.CacheSize),
	}

	moduleConfigs := map[domain.ModuleName]ports.ModuleConfig{}
	for _, name := range scanCfg.Selected() {
		mc := ports.DefaultModuleConfig()
		mc.BatchSize = cfg.BatchSize
		moduleConfigs[name] = mc
	}

	modules, err := registry.Global().Build(scanCfg, moduleConfigs, deps)
	if err != nil {
		logger.Err(err, "phase", "module-build")
		os.Exit(2)
	}
	if len(modules) == 0 {
		logger.Err(domain.ErrNoModulesSelected)
		os.Exit(2)
	}

	logger.Info("modules built", "count", len(modules))

	// 6. Presentation
	var notifier ports.Notifier
	if cfg.NoUI {
		notifier = ui.NewRawNotifier(logger)
	} else {
		notifier = ui.NewPTermNotifier()
	}
	defer notifier.Close()

	// 7. Orchestrator
	orch := usecases.NewOrchestrator(usecases.OrchestratorOptions{
		Modules:    modules,
		Logger:     logger,
		Observers:  []ports.Notifier{notifier},
		MaxWorkers: cfg.Workers,
		Version:    version,
		Seed:       seed,
	})
	defer orch.Close()

	// 8. Execute
	start := time.Now()
	result, runErr := orch.Run(ctx, *target, scanCfg)
	elapsed := time.Since(start)

	if runErr != nil {
		logger.Err(runErr, "phase", "run", "elapsed_ms", elapsed.Milliseconds())
	}
	if result == nil {
		os.Exit(1)
	}

	// 9. Write exports (partial results are still exported)
	if err := writeExports(cfg, result, logger); err != nil {
		logger.Err(err, "phase", "export")
		os.Exit(1)
	}

	// 10. Terminal summary
	if cfg.NoUI {
		if err := ui.PrintTable(result); err != nil {
			logger.Warn("failed to print summary table", "error", err.Error())
		}
	}

	logger.Info("mirage finished",
		"elapsed_ms", elapsed.Milliseconds(),
		"records", result.TotalRecords(),
		"warnings", len(result.Warnings),
		"errors", len(result.Errors),
	)

	if runErr != nil {
		os.Exit(1)
	}
}

// rootContextWithSignals builds the run context: optional global timeout
// plus SIGINT/SIGTERM cancellation.
func rootContextWithSignals(timeout time.Duration, logger logx.Logger) (context.Context, context.CancelFunc) {
	ctx := context.Background()
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			logger.Warn("signal received, canceling run", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// writeExports renders the result in every configured format.
func writeExports(cfg config.Config, result *domain.RunResult, logger logx.Logger) error {
	opts := ports.DefaultExportOptions()
	opts.OutputDir = cfg.OutputDir

	for _, format := range cfg.ExportFormats() {
		exporter, err := export.ForFormat(format)
		if err != nil {
			return err
		}
		path, err := exporter.Export(result, opts)
		if err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}
		logger.Info("export written", "format", format.String(), "path", path)
	}
	return nil
}
