// internal/core/domain/target.go
package domain

import (
	"fmt"
	"strings"

	"mirage/internal/platform/validator"
)

// Target identifies the subject of a simulated reconnaissance run.
// A target is immutable once a run starts.
type Target struct {
	// Domain is the primary domain of the organization
	Domain string

	// Company is the human-readable organization name
	Company string

	// Tags allow additional categorization of the target
	Tags []string

	// Metadata carries free-form key/value context
	Metadata map[string]string
}

// NewTarget creates a target with normalized fields.
func NewTarget(domain, company string) *Target {
	return &Target{
		Domain:   validator.NormalizeDomain(domain),
		Company:  strings.TrimSpace(company),
		Tags:     []string{},
		Metadata: make(map[string]string),
	}
}

// Validate checks the target. An empty domain or company means the run
// must not start at all.
func (t *Target) Validate() error {
	if strings.TrimSpace(t.Domain) == "" {
		return ErrEmptyDomain
	}
	if strings.TrimSpace(t.Company) == "" {
		return ErrEmptyCompany
	}

	t.Domain = validator.NormalizeDomain(t.Domain)
	if !validator.IsDomain(t.Domain) {
		return fmt.Errorf("%w: %s", ErrInvalidDomain, t.Domain)
	}

	return nil
}

// Handle derives a lowercase company handle used by identity-based modules.
// Example: "Example Corp" -> "examplecorp".
func (t *Target) Handle() string {
	h := strings.ToLower(t.Company)
	h = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, h)
	if h == "" {
		h = strings.SplitN(t.Domain, ".", 2)[0]
	}
	return h
}

// AddTag appends a tag without duplicates.
func (t *Target) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	for _, existing := range t.Tags {
		if existing == tag {
			return
		}
	}
	t.Tags = append(t.Tags, tag)
}

// String returns a readable representation of the target.
func (t *Target) String() string {
	return fmt.Sprintf("Target{domain=%s, company=%s}", t.Domain, t.Company)
}
