// internal/core/domain/record.go
package domain

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Record is a single synthesized intelligence item produced by a module.
// It is the main data entity in Mirage. There is no enforced cross-module
// schema beyond Type/Value; module-specific attributes live in Fields.
type Record struct {
	// ID is a short hash derived from the identity key
	ID string `json:"id" xml:"id,attr"`

	// Type classifies the record
	Type RecordType `json:"type" xml:"type,attr"`

	// Value is the normalized primary value (email, subdomain, handle, ...)
	Value string `json:"value" xml:"value"`

	// Fields holds module-specific attributes (name, email, handle, port, ...)
	Fields map[string]string `json:"fields,omitempty" xml:"-"`

	// Sources lists the modules that produced this record
	Sources []string `json:"sources" xml:"sources>source"`

	// Confidence of the finding [0.0-1.0]
	Confidence float64 `json:"confidence" xml:"confidence,attr"`

	// DiscoveredAt is the first-seen timestamp
	DiscoveredAt time.Time `json:"discovered_at" xml:"discovered_at"`
}

// NewRecord creates a record with defaults and a normalized value.
func NewRecord(recordType RecordType, value, source string) *Record {
	r := &Record{
		Type:         recordType,
		Value:        value,
		Fields:       make(map[string]string),
		Sources:      []string{source},
		Confidence:   1.0,
		DiscoveredAt: time.Now(),
	}
	r.Normalize()
	r.ID = r.generateID()
	return r
}

// WithField sets a field and returns the record for chaining. Fields that
// feed the identity key change the ID, so it is re-derived.
func (r *Record) WithField(key, value string) *Record {
	if r.Fields == nil {
		r.Fields = make(map[string]string)
	}
	r.Fields[key] = value
	switch key {
	case "name", "email", "handle":
		r.ID = r.generateID()
	}
	return r
}

// Normalize canonicalizes the value according to the record type.
func (r *Record) Normalize() {
	r.Value = strings.TrimSpace(r.Value)

	switch r.Type {
	case RecordTypeSubdomain, RecordTypeDNS:
		r.Value = strings.TrimSuffix(strings.ToLower(r.Value), ".")
	case RecordTypeEmail, RecordTypeProfile, RecordTypeTechnology, RecordTypeProvider:
		r.Value = strings.ToLower(r.Value)
	}
}

// Key returns the identity key used for de-duplication. Records that carry
// a person identity (name plus email or handle) collapse on that identity
// regardless of which module produced them; everything else collapses on
// type:value.
func (r *Record) Key() string {
	name := normalizeField(r.Fields["name"])
	if name != "" {
		if email := normalizeField(r.Fields["email"]); email != "" {
			return "identity:" + name + "|" + email
		}
		if handle := normalizeField(r.Fields["handle"]); handle != "" {
			return "identity:" + name + "|" + handle
		}
	}
	return string(r.Type) + ":" + strings.ToLower(r.Value)
}

// AddSource appends a source without duplicates.
func (r *Record) AddSource(source string) {
	if source == "" {
		return
	}
	for _, s := range r.Sources {
		if s == source {
			return
		}
	}
	r.Sources = append(r.Sources, source)
}

// Merge folds another record with the same key into this one. The receiver
// is the first-seen record and keeps its value and fields; only sources,
// confidence and the earliest timestamp are combined.
func (r *Record) Merge(other *Record) error {
	if r.Key() != other.Key() {
		return fmt.Errorf("%w: %s != %s", ErrRecordMergeFailed, r.Key(), other.Key())
	}

	for _, s := range other.Sources {
		r.AddSource(s)
	}

	if other.Confidence > r.Confidence {
		r.Confidence = other.Confidence
	}
	if other.DiscoveredAt.Before(r.DiscoveredAt) {
		r.DiscoveredAt = other.DiscoveredAt
	}

	return nil
}

// IsValid reports whether the record carries usable data.
func (r *Record) IsValid() bool {
	if r.Type == "" || r.Value == "" {
		return false
	}
	if !r.Type.IsValid() {
		return false
	}
	if r.Confidence < 0.0 || r.Confidence > 1.0 {
		return false
	}
	return true
}

// SortedFieldKeys returns the field names in stable order, for exports.
func (r *Record) SortedFieldKeys() []string {
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns a readable representation of the record.
func (r *Record) String() string {
	return fmt.Sprintf("[%s] %s (sources: %d)", r.Type, r.Value, len(r.Sources))
}

func (r *Record) generateID() string {
	h := sha256.New()
	h.Write([]byte(r.Key()))
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

func normalizeField(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
