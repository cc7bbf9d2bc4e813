package filter

import (
	"fmt"
	"strings"

	"github.com/jimezsa/scholarcli/internal/models"
)

type Field string

const (
	FieldCountry     Field = "country"
	FieldDegreeLevel Field = "degree_level"
	FieldSubject     Field = "subject"
	FieldQuery       Field = "q"
)

// DefaultCriteria returns criteria that match every record.
func DefaultCriteria() models.FilterCriteria {
	return models.FilterCriteria{
		Country:     models.All,
		DegreeLevel: models.All,
		Subject:     models.All,
	}
}

// Set returns a copy of c with one field replaced. Empty categorical values
// reset that field to All.
func Set(c models.FilterCriteria, field Field, value string) (models.FilterCriteria, error) {
	switch field {
	case FieldCountry:
		c.Country = orAll(value)
	case FieldDegreeLevel:
		c.DegreeLevel = orAll(value)
	case FieldSubject:
		c.Subject = orAll(value)
	case FieldQuery:
		c.SearchQuery = value
	default:
		return c, fmt.Errorf("unknown filter field: %s", field)
	}
	return c, nil
}

// ParseField accepts the field names used on the command line and in query
// strings.
func ParseField(value string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "country":
		return FieldCountry, nil
	case "degree", "degree_level", "degree-level", "level":
		return FieldDegreeLevel, nil
	case "subject", "field":
		return FieldSubject, nil
	case "q", "query", "search", "search_query":
		return FieldQuery, nil
	default:
		return "", fmt.Errorf("unknown filter field: %s", value)
	}
}

// ActiveCount returns how many criteria narrow the result.
func ActiveCount(c models.FilterCriteria) int {
	count := 0
	for _, value := range []string{c.Country, c.DegreeLevel, c.Subject} {
		if Constrained(value) {
			count++
		}
	}
	if c.SearchQuery != "" {
		count++
	}
	return count
}

func IsActive(c models.FilterCriteria) bool {
	return ActiveCount(c) > 0
}

func orAll(value string) string {
	if strings.TrimSpace(value) == "" {
		return models.All
	}
	return value
}
