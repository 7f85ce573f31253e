// internal/adapters/export/xml.go
package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
)

// XMLExporter renders results as XML. Map-typed fields do not marshal
// directly, so the document is rebuilt from dedicated element types.
type XMLExporter struct{}

// NewXML creates the XML exporter.
func NewXML() *XMLExporter {
	return &XMLExporter{}
}

// Format returns the produced syntax.
func (e *XMLExporter) Format() ports.ExportFormat {
	return ports.FormatXML
}

type xmlRun struct {
	XMLName  xml.Name      `xml:"run"`
	ID       string        `xml:"id,attr"`
	Domain   string        `xml:"domain,attr"`
	Company  string        `xml:"company,attr"`
	Tier     string        `xml:"tier,attr"`
	Metadata *xmlMetadata  `xml:"metadata,omitempty"`
	Modules  []xmlModule   `xml:"modules>module"`
	Records  []xmlRecord   `xml:"records>record"`
	Timeline []xmlTimeline `xml:"timeline>event,omitempty"`
}

type xmlMetadata struct {
	StartTime     string `xml:"start_time"`
	EndTime       string `xml:"end_time"`
	Duration      string `xml:"duration"`
	TotalModules  int    `xml:"total_modules"`
	RawRecords    int    `xml:"raw_records"`
	UniqueRecords int    `xml:"unique_records"`
	Seed          int64  `xml:"seed"`
	Version       string `xml:"version"`
}

type xmlModule struct {
	Name     string `xml:"name,attr"`
	Status   string `xml:"status,attr"`
	Records  int    `xml:"records,attr"`
	Duration string `xml:"duration,attr"`
	Error    string `xml:"error,omitempty"`
}

type xmlRecord struct {
	ID           string     `xml:"id,attr"`
	Type         string     `xml:"type,attr"`
	Confidence   float64    `xml:"confidence,attr"`
	Value        string     `xml:"value"`
	Sources      []string   `xml:"sources>source"`
	DiscoveredAt string     `xml:"discovered_at"`
	Fields       []xmlField `xml:"fields>field,omitempty"`
}

type xmlField struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type xmlTimeline struct {
	Timestamp string `xml:"timestamp,attr"`
	Module    string `xml:"module,attr"`
	Status    string `xml:"status,attr"`
	Message   string `xml:",chardata"`
}

// ExportToWriter encodes the result to w.
func (e *XMLExporter) ExportToWriter(result *domain.RunResult, w io.Writer, opts ports.ExportOptions) error {
	doc := buildXMLRun(result, opts)

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("%w: write XML header: %v", domain.ErrExportFailed, err)
	}

	enc := xml.NewEncoder(w)
	if opts.Pretty {
		enc.Indent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w: encode XML: %v", domain.ErrExportFailed, err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("%w: flush XML: %v", domain.ErrExportFailed, err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("%w: write XML: %v", domain.ErrExportFailed, err)
	}
	return nil
}

// Export writes the result to an XML file under opts.OutputDir.
func (e *XMLExporter) Export(result *domain.RunResult, opts ports.ExportOptions) (string, error) {
	return exportToFile(e, result, opts)
}

func buildXMLRun(result *domain.RunResult, opts ports.ExportOptions) xmlRun {
	doc := xmlRun{
		ID:      result.ID,
		Domain:  result.Target.Domain,
		Company: result.Target.Company,
		Tier:    result.Config.Tier().String(),
	}

	if opts.IncludeMetadata {
		doc.Metadata = &xmlMetadata{
			StartTime:     result.Metadata.StartTime.Format(time.RFC3339),
			EndTime:       result.Metadata.EndTime.Format(time.RFC3339),
			Duration:      result.Metadata.Duration.String(),
			TotalModules:  result.Metadata.TotalModules,
			RawRecords:    result.Metadata.RawRecords,
			UniqueRecords: result.Metadata.UniqueRecords,
			Seed:          result.Metadata.Seed,
			Version:       result.Metadata.Version,
		}
	}

	for _, name := range domain.AllModules() {
		report, ok := result.Modules[name]
		if !ok {
			continue
		}
		doc.Modules = append(doc.Modules, xmlModule{
			Name:     name.String(),
			Status:   report.Status.String(),
			Records:  len(report.Records),
			Duration: report.Duration.String(),
			Error:    report.Error,
		})
	}

	for _, record := range result.Records {
		xr := xmlRecord{
			ID:           record.ID,
			Type:         record.Type.String(),
			Confidence:   record.Confidence,
			Value:        record.Value,
			Sources:      record.Sources,
			DiscoveredAt: record.DiscoveredAt.Format(time.RFC3339),
		}
		for _, k := range record.SortedFieldKeys() {
			xr.Fields = append(xr.Fields, xmlField{Name: k, Value: record.Fields[k]})
		}
		doc.Records = append(doc.Records, xr)
	}

	if opts.IncludeTimeline {
		for _, entry := range result.Timeline {
			doc.Timeline = append(doc.Timeline, xmlTimeline{
				Timestamp: entry.Timestamp.Format(time.RFC3339),
				Module:    entry.Module,
				Status:    entry.Status.String(),
				Message:   entry.Message,
			})
		}
	}

	return doc
}
