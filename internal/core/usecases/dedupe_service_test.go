// internal/core/usecases/dedupe_service_test.go
package usecases

import (
	"testing"

	"mirage/internal/core/domain"
	"mirage/internal/testutil"
)

func TestDedupeService_Deduplicate(t *testing.T) {
	d := NewDedupeService()

	records := []*domain.Record{
		domain.NewRecord(domain.RecordTypeSubdomain, "api.example.com", "network"),
		domain.NewRecord(domain.RecordTypeSubdomain, "API.EXAMPLE.COM", "osint"),
		domain.NewRecord(domain.RecordTypeEmail, "a@example.com", "osint"),
	}

	result := d.Deduplicate(records)

	testutil.AssertEqual(t, len(result), 2, "duplicates collapsed")

	for _, r := range result {
		if r.Type == domain.RecordTypeSubdomain {
			testutil.AssertEqual(t, len(r.Sources), 2, "sources merged")
			testutil.AssertContains(t, r.Sources, "network", "first-seen source")
			testutil.AssertContains(t, r.Sources, "osint", "later source merged")
		}
	}
}

func TestDedupeService_FirstSeenWins(t *testing.T) {
	d := NewDedupeService()

	first := domain.NewRecord(domain.RecordTypeEmployee, "Jane Doe", "osint").
		WithField("name", "Jane Doe").
		WithField("email", "j.doe@example.com").
		WithField("role", "engineer")
	second := domain.NewRecord(domain.RecordTypeEmail, "j.doe@example.com", "social").
		WithField("name", "Jane Doe").
		WithField("email", "j.doe@example.com").
		WithField("role", "manager")

	result := d.Deduplicate([]*domain.Record{first, second})

	testutil.AssertEqual(t, len(result), 1, "identity collapsed across types")
	testutil.AssertEqual(t, result[0].Type, domain.RecordTypeEmployee, "first-seen record kept")
	testutil.AssertEqual(t, result[0].Fields["role"], "engineer", "first-seen fields kept")
	testutil.AssertEqual(t, len(result[0].Sources), 2, "sources combined")
}

func TestDedupeService_Idempotent(t *testing.T) {
	d := NewDedupeService()

	records := []*domain.Record{
		domain.NewRecord(domain.RecordTypeSubdomain, "api.example.com", "network"),
		domain.NewRecord(domain.RecordTypeSubdomain, "api.example.com", "osint"),
		domain.NewRecord(domain.RecordTypePort, "example.com:443", "network"),
	}

	once := d.Deduplicate(records)
	twice := d.Deduplicate(once)

	testutil.AssertEqual(t, len(twice), len(once), "idempotent size")
	for i := range once {
		testutil.AssertEqual(t, twice[i].Key(), once[i].Key(), "idempotent content")
		testutil.AssertEqual(t, len(twice[i].Sources), len(once[i].Sources), "no source growth")
	}
}

func TestDedupeService_DropsInvalid(t *testing.T) {
	d := NewDedupeService()

	records := []*domain.Record{
		nil,
		{Type: domain.RecordTypeEmail}, // empty value
		domain.NewRecord(domain.RecordTypeEmail, "a@example.com", "osint"),
	}

	result := d.Deduplicate(records)
	testutil.AssertEqual(t, len(result), 1, "invalid records dropped")
}

func TestDedupeService_StableSort(t *testing.T) {
	d := NewDedupeService()

	records := []*domain.Record{
		domain.NewRecord(domain.RecordTypeSubdomain, "mail.example.com", "network"),
		domain.NewRecord(domain.RecordTypeEmail, "b@example.com", "osint"),
		domain.NewRecord(domain.RecordTypeEmail, "a@example.com", "osint"),
	}

	result := d.Deduplicate(records)

	testutil.AssertEqual(t, result[0].Value, "a@example.com", "sorted by type then value")
	testutil.AssertEqual(t, result[1].Value, "b@example.com", "sorted by type then value")
	testutil.AssertEqual(t, result[2].Type, domain.RecordTypeSubdomain, "types grouped")
}

func TestDedupeService_FilterByType(t *testing.T) {
	d := NewDedupeService()

	records := []*domain.Record{
		domain.NewRecord(domain.RecordTypeEmail, "a@example.com", "osint"),
		domain.NewRecord(domain.RecordTypeSubdomain, "api.example.com", "network"),
		domain.NewRecord(domain.RecordTypePort, "example.com:443", "network"),
	}

	filtered := d.FilterByType(records, domain.RecordTypeEmail, domain.RecordTypePort)
	testutil.AssertEqual(t, len(filtered), 2, "filtered count")

	all := d.FilterByType(records)
	testutil.AssertEqual(t, len(all), 3, "no types means no filter")
}

func TestDedupeService_GroupByType(t *testing.T) {
	d := NewDedupeService()

	records := []*domain.Record{
		domain.NewRecord(domain.RecordTypeEmail, "a@example.com", "osint"),
		domain.NewRecord(domain.RecordTypeEmail, "b@example.com", "osint"),
		domain.NewRecord(domain.RecordTypeSubdomain, "api.example.com", "network"),
	}

	groups := d.GroupByType(records)
	testutil.AssertEqual(t, len(groups), 2, "group count")
	testutil.AssertEqual(t, len(groups[domain.RecordTypeEmail]), 2, "emails grouped")
}
