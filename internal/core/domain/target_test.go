// internal/core/domain/target_test.go
package domain

import (
	"errors"
	"testing"

	"mirage/internal/testutil"
)

func TestNewTarget(t *testing.T) {
	target := NewTarget("EXAMPLE.COM.", "  Example Corp  ")

	testutil.AssertEqual(t, target.Domain, "example.com", "domain normalized")
	testutil.AssertEqual(t, target.Company, "Example Corp", "company trimmed")
	testutil.AssertNotNil(t, target.Metadata, "metadata map initialized")
}

func TestTarget_Validate(t *testing.T) {
	tests := []struct {
		name    string
		domain  string
		company string
		wantErr error
	}{
		{"valid", "example.com", "Example Corp", nil},
		{"empty domain", "", "Example Corp", ErrEmptyDomain},
		{"empty company", "example.com", "", ErrEmptyCompany},
		{"both empty", "", "", ErrEmptyDomain},
		{"whitespace domain", "   ", "Example Corp", ErrEmptyDomain},
		{"invalid domain", "not a domain", "Example Corp", ErrInvalidDomain},
		{"ip as domain", "192.168.1.1", "Example Corp", ErrInvalidDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewTarget(tt.domain, tt.company)
			err := target.Validate()

			if tt.wantErr == nil {
				testutil.AssertNoError(t, err, "validate")
				return
			}
			testutil.AssertError(t, err, "validate")
			testutil.AssertTrue(t, errors.Is(err, tt.wantErr), "error identity")
		})
	}
}

func TestTarget_Handle(t *testing.T) {
	tests := []struct {
		name    string
		domain  string
		company string
		want    string
	}{
		{"simple", "example.com", "Example Corp", "examplecorp"},
		{"punctuation stripped", "acme-corp.io", "ACME, Inc.", "acmeinc"},
		{"digits kept", "example.com", "Corp 42", "corp42"},
		{"falls back to domain label", "example.com", "---", "example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewTarget(tt.domain, tt.company)
			testutil.AssertEqual(t, target.Handle(), tt.want, "handle")
		})
	}
}

func TestTarget_AddTag(t *testing.T) {
	target := NewTarget("example.com", "Example Corp")

	target.AddTag("prod")
	target.AddTag("prod")
	target.AddTag("  ")
	target.AddTag("finance")

	testutil.AssertEqual(t, len(target.Tags), 2, "tags deduplicated")
	testutil.AssertContains(t, target.Tags, "prod", "tags")
	testutil.AssertContains(t, target.Tags, "finance", "tags")
}
