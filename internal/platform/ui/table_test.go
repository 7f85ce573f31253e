// internal/platform/ui/table_test.go
package ui

import (
	"bytes"
	"testing"

	"mirage/internal/core/domain"
	"mirage/internal/testutil"
)

func tableResult() *domain.RunResult {
	target := *domain.NewTarget("example.com", "Example Corp")
	result := domain.NewRunResult(target, domain.DefaultScanConfig())
	result.Records = []*domain.Record{
		domain.NewRecord(domain.RecordTypeSubdomain, "mail.example.com", "osint"),
		domain.NewRecord(domain.RecordTypeSubdomain, "vpn.example.com", "network"),
		domain.NewRecord(domain.RecordTypeEmail, "jdoe@example.com", "osint"),
	}
	result.AddWarning("network", "scan canceled early")
	result.AddError("webapp", "probe failed")
	result.Finalize()
	return result
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteTable(&buf, tableResult()), "write")

	out := buf.String()
	testutil.AssertContains(t, out, "example.com (Example Corp)", "target line")
	testutil.AssertContains(t, out, "mail.example.com", "record row")
	testutil.AssertContains(t, out, "Warnings (1)", "warnings section")
	testutil.AssertContains(t, out, "[network] scan canceled early", "warning entry")
	testutil.AssertContains(t, out, "Errors (1)", "errors section")
	testutil.AssertContains(t, out, "subdomain: 2", "per-type stats")
	testutil.AssertContains(t, out, "email: 1", "per-type stats")
}

func TestWriteTable_NoRecords(t *testing.T) {
	target := *domain.NewTarget("example.com", "Example Corp")
	result := domain.NewRunResult(target, domain.DefaultScanConfig())
	result.Finalize()

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteTable(&buf, result), "write")
	testutil.AssertContains(t, buf.String(), "No records found.", "empty marker")
}
