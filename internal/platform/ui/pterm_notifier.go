// internal/platform/ui/pterm_notifier.go

// Package ui renders run lifecycle events in the terminal. The pterm
// notifier draws spinners and panels; the raw notifier prints plain
// lines for non-interactive use.
package ui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
)

// PTermNotifier implements ports.Notifier with pterm spinners, colors
// and boxes.
type PTermNotifier struct {
	mu       sync.Mutex
	spinners map[string]*pterm.SpinnerPrinter
	started  time.Time
}

// NewPTermNotifier creates the interactive terminal notifier.
func NewPTermNotifier() *PTermNotifier {
	return &PTermNotifier{
		spinners: make(map[string]*pterm.SpinnerPrinter),
	}
}

// Notify renders one event.
func (n *PTermNotifier) Notify(_ context.Context, event ports.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch event.Type {
	case ports.EventTypeRunStarted:
		n.renderHeader(event)
	case ports.EventTypeModuleStarted:
		n.startSpinner(event.Module)
	case ports.EventTypeModuleCompleted, ports.EventTypeModuleFailed:
		n.finishModule(event)
	case ports.EventTypeRunCompleted:
		n.renderSummary(event)
	case ports.EventTypeRunCanceled:
		n.stopSpinners()
		pterm.Warning.Println("Run canceled, partial results kept")
	case ports.EventTypeRunFailed:
		n.stopSpinners()
		pterm.Error.Printf("Run failed: %v\n", event.Data)
	}
	return nil
}

// Close stops any spinner still active.
func (n *PTermNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopSpinners()
	return nil
}

func (n *PTermNotifier) renderHeader(event ports.Event) {
	payload, ok := event.Data.(ports.RunStartedEvent)
	if !ok {
		return
	}
	n.started = time.Now()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("Mirage - Reconnaissance Simulation")

	pterm.Println()

	info := fmt.Sprintf("Target: %s\n", pterm.Cyan(payload.Target.Domain))
	info += fmt.Sprintf("Company: %s\n", pterm.Cyan(payload.Target.Company))
	info += fmt.Sprintf("Tier: %s\n", pterm.Yellow(payload.Tier.String()))
	info += fmt.Sprintf("Modules: %d", len(payload.Modules))

	pterm.DefaultBox.
		WithTitle("Run Configuration").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Println(info)

	pterm.Println()
}

func (n *PTermNotifier) startSpinner(module string) {
	spinner, _ := pterm.DefaultSpinner.
		WithStyle(pterm.NewStyle(pterm.FgCyan)).
		Start(fmt.Sprintf("Running %s...", pterm.Cyan(module)))
	n.spinners[module] = spinner
}

func (n *PTermNotifier) finishModule(event ports.Event) {
	if spinner, ok := n.spinners[event.Module]; ok {
		spinner.Stop()
		delete(n.spinners, event.Module)
	}

	payload, ok := event.Data.(ports.ModuleCompletedEvent)
	if !ok {
		return
	}

	if payload.Status == domain.StatusFailed {
		pterm.Error.Printf("%s failed after %s: %s\n",
			payload.Module, formatDuration(payload.Duration), payload.Error)
		return
	}
	pterm.Success.Printf("%s completed in %s (%d records, %.0f%%)\n",
		payload.Module, formatDuration(payload.Duration), payload.RecordCount, payload.Percent)
}

func (n *PTermNotifier) renderSummary(event ports.Event) {
	n.stopSpinners()

	payload, ok := event.Data.(ports.RunCompletedEvent)
	if !ok {
		return
	}

	pterm.Println()
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("Run Completed")
	pterm.Println()

	stats := fmt.Sprintf("Duration: %s\n", pterm.Green(formatDuration(payload.Duration)))
	stats += fmt.Sprintf("Unique Records: %s\n", pterm.Cyan(fmt.Sprintf("%d", payload.RecordCount)))
	if len(payload.Failed) > 0 {
		stats += fmt.Sprintf("Failed Modules: %s\n", pterm.Red(fmt.Sprintf("%d", len(payload.Failed))))
	}
	stats += fmt.Sprintf("Run ID: %s", payload.RunID)

	pterm.DefaultBox.
		WithTitle("Run Statistics").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen)).
		Println(stats)
}

func (n *PTermNotifier) stopSpinners() {
	for module, spinner := range n.spinners {
		spinner.Stop()
		delete(n.spinners, module)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(10 * time.Millisecond).String()
}
