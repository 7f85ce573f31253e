// internal/core/ports/exporter.go
package ports

import (
	"io"

	"mirage/internal/core/domain"
)

// ExportFormat enumerates the supported textual export syntaxes. No binary
// formats are supported.
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
	FormatXML  ExportFormat = "xml"
)

// IsValid reports whether the format is supported.
func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatXML:
		return true
	default:
		return false
	}
}

// String returns the string form of the format.
func (f ExportFormat) String() string {
	return string(f)
}

// AllFormats lists every supported format.
func AllFormats() []ExportFormat {
	return []ExportFormat{FormatJSON, FormatCSV, FormatXML}
}

// Exporter is the port for rendering a run result into one export syntax.
type Exporter interface {
	// Format returns the syntax this exporter produces
	Format() ExportFormat

	// ExportToWriter renders the result to w
	ExportToWriter(result *domain.RunResult, w io.Writer, opts ExportOptions) error

	// Export renders the result to a file under opts.OutputDir
	Export(result *domain.RunResult, opts ExportOptions) (string, error)
}

// ExportOptions configures an export.
type ExportOptions struct {
	// OutputDir directory for file exports ("." when empty)
	OutputDir string

	// Pretty formats output for human readability where the syntax allows
	Pretty bool

	// IncludeMetadata includes the run metadata block
	IncludeMetadata bool

	// IncludeTimeline includes the timeline log
	IncludeTimeline bool
}

// DefaultExportOptions returns sane defaults.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		OutputDir:       "",
		Pretty:          true,
		IncludeMetadata: true,
		IncludeTimeline: true,
	}
}
