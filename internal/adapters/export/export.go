// internal/adapters/export/export.go

// Package export renders run results into the supported textual syntaxes
// (JSON, CSV, XML) and writes them to per-target output directories.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
)

// ForFormat returns the exporter for a supported format.
func ForFormat(format ports.ExportFormat) (ports.Exporter, error) {
	switch format {
	case ports.FormatJSON:
		return NewJSON(), nil
	case ports.FormatCSV:
		return NewCSV(), nil
	case ports.FormatXML:
		return NewXML(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// Render produces the in-memory rendering of result in the given format.
func Render(result *domain.RunResult, format ports.ExportFormat, opts ports.ExportOptions) (string, error) {
	exporter, err := ForFormat(format)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := exporter.ExportToWriter(result, &sb, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// sanitizeDomainName converts a domain name into a safe directory name.
// Example: "example.com" -> "example_com"
func sanitizeDomainName(name string) string {
	sanitized := strings.ReplaceAll(name, ".", "_")
	sanitized = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, sanitized)
	return sanitized
}

// exportToFile is the shared file-writing path of every exporter: it
// creates <dir>/<sanitized-domain>/mirage_<domain>_<timestamp>.<ext> and
// streams the rendering into it.
func exportToFile(exporter ports.Exporter, result *domain.RunResult, opts ports.ExportOptions) (string, error) {
	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}

	domainDir := sanitizeDomainName(result.Target.Domain)
	fullDir := filepath.Join(dir, domainDir)
	if err := os.MkdirAll(fullDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create output directory: %v", domain.ErrExportFailed, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("mirage_%s_%s.%s", result.Target.Domain, timestamp, exporter.Format())
	path := filepath.Join(fullDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: create output file: %v", domain.ErrExportFailed, err)
	}
	defer f.Close()

	if err := exporter.ExportToWriter(result, f, opts); err != nil {
		return "", err
	}
	return path, nil
}

// runView is the JSON serialization shape of a run: metadata and timeline
// drop out when the options exclude them.
type runView struct {
	ID       string                                     `json:"id"`
	Target   domain.Target                              `json:"target"`
	Config   domain.ScanConfig                          `json:"config"`
	Modules  map[domain.ModuleName]*domain.ModuleReport `json:"modules"`
	Records  []*domain.Record                           `json:"records"`
	Timeline []domain.TimelineEntry                     `json:"timeline,omitempty"`
	Metadata *domain.RunMetadata                        `json:"metadata,omitempty"`
	Warnings []domain.Warning                           `json:"warnings,omitempty"`
	Errors   []domain.RunError                          `json:"errors,omitempty"`
}

func newRunView(result *domain.RunResult, opts ports.ExportOptions) runView {
	view := runView{
		ID:       result.ID,
		Target:   result.Target,
		Config:   result.Config,
		Modules:  result.Modules,
		Records:  result.Records,
		Warnings: result.Warnings,
		Errors:   result.Errors,
	}
	if opts.IncludeTimeline {
		view.Timeline = result.Timeline
	}
	if opts.IncludeMetadata {
		meta := result.Metadata
		view.Metadata = &meta
	}
	return view
}
