// internal/core/domain/progress.go
package domain

// ProgressSnapshot is the unit handed to progress callbacks. Processed is
// monotonically non-decreasing within one run; Found is the size of the
// identity-key union after de-duplication.
type ProgressSnapshot struct {
	Processed int `json:"processed"`
	Total     int `json:"total"`
	Found     int `json:"found"`
}

// Percent returns the completion percentage, 0 when Total is zero.
func (s ProgressSnapshot) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Processed) / float64(s.Total) * 100
}

// Done reports whether every unit of work has been processed.
func (s ProgressSnapshot) Done() bool {
	return s.Total > 0 && s.Processed >= s.Total
}
