// internal/adapters/export/csv.go
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
)

// CSVExporter renders the record set as CSV, one row per record. Module
// reports and warnings do not fit a flat table and are omitted; metadata
// and timeline appear as comment lines when requested.
type CSVExporter struct{}

// NewCSV creates the CSV exporter.
func NewCSV() *CSVExporter {
	return &CSVExporter{}
}

// Format returns the produced syntax.
func (e *CSVExporter) Format() ports.ExportFormat {
	return ports.FormatCSV
}

var csvHeader = []string{"run_id", "type", "value", "confidence", "sources", "discovered_at", "fields"}

// ExportToWriter encodes the result to w.
func (e *CSVExporter) ExportToWriter(result *domain.RunResult, w io.Writer, opts ports.ExportOptions) error {
	if opts.IncludeMetadata {
		fmt.Fprintf(w, "# mirage run %s target=%s tier=%s records=%d\n",
			result.ID, result.Target.Domain, result.Metadata.Tier, result.Metadata.UniqueRecords)
	}
	if opts.IncludeTimeline {
		for _, entry := range result.Timeline {
			fmt.Fprintf(w, "# %s %s %s %s\n",
				entry.Timestamp.Format(time.RFC3339), entry.Module, entry.Status, entry.Message)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: write CSV header: %v", domain.ErrExportFailed, err)
	}

	for _, record := range result.Records {
		row := []string{
			result.ID,
			record.Type.String(),
			record.Value,
			strconv.FormatFloat(record.Confidence, 'f', 2, 64),
			strings.Join(record.Sources, "|"),
			record.DiscoveredAt.Format(time.RFC3339),
			flattenFields(record),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: write CSV row: %v", domain.ErrExportFailed, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: flush CSV: %v", domain.ErrExportFailed, err)
	}
	return nil
}

// Export writes the result to a CSV file under opts.OutputDir.
func (e *CSVExporter) Export(result *domain.RunResult, opts ports.ExportOptions) (string, error) {
	return exportToFile(e, result, opts)
}

// flattenFields renders the field map as "k=v;k=v" in stable key order.
func flattenFields(record *domain.Record) string {
	keys := record.SortedFieldKeys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+record.Fields[k])
	}
	return strings.Join(parts, ";")
}
