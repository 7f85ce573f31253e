// internal/adapters/export/xml_test.go
package export

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"mirage/internal/core/ports"
	"mirage/internal/testutil"
)

func TestXMLExporter_RoundTrip(t *testing.T) {
	result := sampleResult()

	var buf bytes.Buffer
	err := NewXML().ExportToWriter(result, &buf, ports.DefaultExportOptions())
	testutil.AssertNoError(t, err, "export")

	testutil.AssertTrue(t, strings.HasPrefix(buf.String(), "<?xml"), "document declaration first")

	var decoded xmlRun
	testutil.AssertNoError(t, xml.Unmarshal(buf.Bytes(), &decoded), "decode")
	testutil.AssertEqual(t, decoded.ID, result.ID, "run ID survives")
	testutil.AssertEqual(t, decoded.Domain, "example.com", "target domain attribute")
	testutil.AssertEqual(t, decoded.Company, "Example Corp", "company attribute")
	testutil.AssertEqual(t, len(decoded.Modules), 1, "module report count")
	testutil.AssertEqual(t, decoded.Modules[0].Name, "osint", "module name attribute")
	testutil.AssertEqual(t, decoded.Modules[0].Records, 2, "module record count")
	testutil.AssertEqual(t, len(decoded.Records), 2, "record count survives")
	testutil.AssertEqual(t, len(decoded.Timeline), 2, "timeline event count")
	testutil.AssertNotNil(t, decoded.Metadata, "metadata element present")
}

func TestXMLExporter_RecordFields(t *testing.T) {
	var buf bytes.Buffer
	err := NewXML().ExportToWriter(sampleResult(), &buf, ports.ExportOptions{})
	testutil.AssertNoError(t, err, "export")

	var decoded xmlRun
	testutil.AssertNoError(t, xml.Unmarshal(buf.Bytes(), &decoded), "decode")
	testutil.AssertTrue(t, decoded.Metadata == nil, "metadata omitted")
	testutil.AssertEqual(t, len(decoded.Timeline), 0, "timeline omitted")

	first := decoded.Records[0]
	testutil.AssertEqual(t, first.Value, "mail.example.com", "record value element")
	testutil.AssertContains(t, first.Sources, "osint", "sources survive")
	testutil.AssertEqual(t, len(first.Fields), 1, "field element count")
	testutil.AssertEqual(t, first.Fields[0].Name, "resolved", "field name attribute")
	testutil.AssertEqual(t, first.Fields[0].Value, "true", "field chardata")
}
