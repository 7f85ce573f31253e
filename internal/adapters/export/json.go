// internal/adapters/export/json.go
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
)

// JSONExporter renders results as JSON.
type JSONExporter struct{}

// NewJSON creates the JSON exporter.
func NewJSON() *JSONExporter {
	return &JSONExporter{}
}

// Format returns the produced syntax.
func (e *JSONExporter) Format() ports.ExportFormat {
	return ports.FormatJSON
}

// ExportToWriter encodes the result to w.
func (e *JSONExporter) ExportToWriter(result *domain.RunResult, w io.Writer, opts ports.ExportOptions) error {
	enc := json.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(newRunView(result, opts)); err != nil {
		return fmt.Errorf("%w: encode JSON: %v", domain.ErrExportFailed, err)
	}
	return nil
}

// Export writes the result to a JSON file under opts.OutputDir.
func (e *JSONExporter) Export(result *domain.RunResult, opts ports.ExportOptions) (string, error) {
	return exportToFile(e, result, opts)
}
