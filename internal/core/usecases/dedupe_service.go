// internal/core/usecases/dedupe_service.go
package usecases

import (
	"sort"

	"mirage/internal/core/domain"
)

// DedupeService collapses records that share an identity key, keeping the
// first-seen record and merging sources into it. The operation is
// idempotent: applying it to its own output yields the same set.
type DedupeService struct{}

// NewDedupeService creates the service.
func NewDedupeService() *DedupeService {
	return &DedupeService{}
}

// Deduplicate normalizes records and removes duplicates by identity key.
func (d *DedupeService) Deduplicate(records []*domain.Record) []*domain.Record {
	if len(records) == 0 {
		return records
	}

	seen := make(map[string]*domain.Record, len(records))
	order := make([]string, 0, len(records))

	for _, r := range records {
		if r == nil || !r.IsValid() {
			continue
		}

		r.Normalize()
		key := r.Key()

		if existing, found := seen[key]; found {
			// First-seen wins; later sightings only contribute sources.
			if err := existing.Merge(r); err != nil {
				continue
			}
		} else {
			seen[key] = r
			order = append(order, key)
		}
	}

	result := make([]*domain.Record, 0, len(seen))
	for _, key := range order {
		result = append(result, seen[key])
	}

	d.sortRecords(result)
	return result
}

// sortRecords orders records by type, then value, for stable output.
func (d *DedupeService) sortRecords(records []*domain.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Type == records[j].Type {
			return records[i].Value < records[j].Value
		}
		return records[i].Type < records[j].Type
	})
}

// FilterByType keeps only records of the given types.
func (d *DedupeService) FilterByType(records []*domain.Record, types ...domain.RecordType) []*domain.Record {
	if len(types) == 0 {
		return records
	}

	want := make(map[domain.RecordType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}

	filtered := make([]*domain.Record, 0, len(records))
	for _, r := range records {
		if want[r.Type] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// GroupByType groups records by their type.
func (d *DedupeService) GroupByType(records []*domain.Record) map[domain.RecordType][]*domain.Record {
	groups := make(map[domain.RecordType][]*domain.Record)
	for _, r := range records {
		groups[r.Type] = append(groups[r.Type], r)
	}
	return groups
}
