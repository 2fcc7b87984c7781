package logic

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"multipick/internal/domain"
)

// Filter narrows the full record collection down to the visible view. The
// visible view keeps full-collection order, which range selection depends
// on.
type Filter struct {
	labelPath string
}

// NewFilter creates a filter matching against the given label path
func NewFilter(labelPath string) *Filter {
	return &Filter{labelPath: labelPath}
}

// Apply returns the records matching query, in their original order
func (f *Filter) Apply(records []*domain.Record, query string) []*domain.Record {
	if query == "" {
		return records
	}

	out := make([]*domain.Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r, query) {
			out = append(out, r)
		}
	}
	return out
}

// Matches checks a single record against the query: case-insensitive
// substring match, with a levenshtein tolerance so near-miss typing still
// finds short labels
func (f *Filter) Matches(r *domain.Record, query string) bool {
	label := strings.ToLower(r.Field(f.labelPath))
	q := strings.ToLower(query)

	if strings.Contains(label, q) {
		return true
	}
	return levenshtein.ComputeDistance(label, q) <= fuzzBudget(q)
}

// fuzzBudget is how many edits a near-miss may be away from the query
func fuzzBudget(query string) int {
	switch {
	case len(query) < 3:
		return 0
	case len(query) < 6:
		return 1
	default:
		return 2
	}
}
