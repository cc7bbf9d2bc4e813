// Package filter selects catalog entries matching a set of criteria and
// computes deadline proximity. Everything here is pure: no I/O, no clocks
// other than the one passed in.
package filter

import (
	"strings"

	"github.com/jimezsa/scholarcli/internal/models"
)

// Apply returns the records matching c, in their original order. The input
// slice is never modified; the result is always a fresh slice.
func Apply(records []models.Scholarship, c models.FilterCriteria) []models.Scholarship {
	query := strings.ToLower(c.SearchQuery)
	out := make([]models.Scholarship, 0, len(records))
	for _, record := range records {
		if matches(record, c, query) {
			out = append(out, record)
		}
	}
	return out
}

// Matches reports whether a single record satisfies every criterion.
func Matches(record models.Scholarship, c models.FilterCriteria) bool {
	return matches(record, c, strings.ToLower(c.SearchQuery))
}

func matches(record models.Scholarship, c models.FilterCriteria, query string) bool {
	if !matchesQuery(record, query) {
		return false
	}
	if Constrained(c.Country) && record.Country != c.Country {
		return false
	}
	if Constrained(c.DegreeLevel) && record.DegreeLevel != c.DegreeLevel {
		return false
	}
	if Constrained(c.Subject) && record.Subject != c.Subject {
		return false
	}
	return true
}

func matchesQuery(record models.Scholarship, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range []string{record.Name, record.Country, record.Subject} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	for _, field := range []*string{record.Description, record.Provider} {
		if field != nil && strings.Contains(strings.ToLower(*field), query) {
			return true
		}
	}
	return false
}

// Constrained reports whether a categorical criterion narrows the result.
func Constrained(value string) bool {
	return value != "" && value != models.All
}

// Featured returns the records flagged for highlighting.
func Featured(records []models.Scholarship) []models.Scholarship {
	out := make([]models.Scholarship, 0)
	for _, record := range records {
		if record.IsFeatured {
			out = append(out, record)
		}
	}
	return out
}
