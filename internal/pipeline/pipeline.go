// Package pipeline cleans scraped scholarships before they reach a store:
// whitespace and alias normalization, defaults, column limits and
// validation.
package pipeline

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jimezsa/scholarcli/internal/models"
	"github.com/jimezsa/scholarcli/internal/scraper"
)

var ErrMissingName = errors.New("missing name")

const (
	DefaultCurrency   = "USD"
	DefaultCountry    = "International"
	DefaultCategory   = "Any"
	DefaultSourceName = "unknown"
)

// Column limits of the scholarships table.
const (
	maxName        = 500
	maxDescription = 5000
	maxProvider    = 255
	maxEligibility = 2000
	maxAmount      = 255
	maxCurrency    = 10
	maxCountry     = 100
	maxDegree      = 100
	maxSubject     = 200
	maxSourceName  = 100
)

var countryAliases = map[string]string{
	"us":             "USA",
	"usa":            "USA",
	"united states":  "USA",
	"uk":             "UK",
	"united kingdom": "UK",
	"gb":             "UK",
	"canada":         "Canada",
	"ca":             "Canada",
	"australia":      "Australia",
	"au":             "Australia",
	"germany":        "Germany",
	"de":             "Germany",
	"france":         "France",
	"fr":             "France",
	"international":  "International",
	"worldwide":      "International",
	"global":         "International",
}

var degreeAliases = map[string]string{
	"bachelor":      "Bachelor",
	"bachelors":     "Bachelor",
	"undergraduate": "Bachelor",
	"undergrad":     "Bachelor",
	"master":        "Master",
	"masters":       "Master",
	"graduate":      "Master",
	"postgraduate":  "Master",
	"phd":           "PhD",
	"doctorate":     "PhD",
	"doctoral":      "PhD",
	"any":           "Any",
	"all":           "Any",
}

// Drop is a record the pipeline refused.
type Drop struct {
	Name   string
	Source string
	Reason error
}

type Result struct {
	Kept    []models.Scholarship
	Dropped []Drop
}

type Pipeline struct {
	validate *validator.Validate
}

func New() *Pipeline {
	return &Pipeline{validate: validator.New()}
}

// Run processes records in order.
func (p *Pipeline) Run(records []models.Scholarship) Result {
	result := Result{Kept: make([]models.Scholarship, 0, len(records))}
	for _, record := range records {
		cleaned, err := p.Process(record)
		if err != nil {
			result.Dropped = append(result.Dropped, Drop{
				Name:   record.Name,
				Source: models.Deref(record.SourceName),
				Reason: err,
			})
			continue
		}
		result.Kept = append(result.Kept, cleaned)
	}
	return result
}

// Process returns the cleaned copy of s or the reason it was rejected.
func (p *Pipeline) Process(s models.Scholarship) (models.Scholarship, error) {
	s.Name = clip(collapse(s.Name), maxName)
	if s.Name == "" {
		return s, ErrMissingName
	}

	s.Description = clipPtr(optional(s.Description, collapse), maxDescription)
	s.Provider = clipPtr(optional(s.Provider, collapse), maxProvider)
	s.Eligibility = clipPtr(optional(s.Eligibility, strings.TrimSpace), maxEligibility)
	s.Amount = clipPtr(optional(s.Amount, collapse), maxAmount)
	s.ApplicationLink = optional(s.ApplicationLink, cleanLink)
	s.SourceURL = optional(s.SourceURL, cleanLink)

	s.Currency = clipPtr(withDefault(optional(s.Currency, strings.TrimSpace), DefaultCurrency), maxCurrency)
	s.SourceName = clipPtr(withDefault(optional(s.SourceName, strings.TrimSpace), DefaultSourceName), maxSourceName)

	s.Country = clip(NormalizeCountry(s.Country), maxCountry)
	s.DegreeLevel = clip(NormalizeDegree(s.DegreeLevel), maxDegree)
	s.Subject = clip(orDefault(collapse(s.Subject), DefaultCategory), maxSubject)
	s.Deadline = normalizeDeadline(s.Deadline)

	if err := p.validate.Struct(s); err != nil {
		return s, fmt.Errorf("invalid %q: %w", s.Name, err)
	}
	return s, nil
}

// NormalizeCountry maps common spellings to catalog values. Unknown values
// pass through unchanged.
func NormalizeCountry(value string) string {
	value = collapse(value)
	if value == "" {
		return DefaultCountry
	}
	if mapped, ok := countryAliases[strings.ToLower(value)]; ok {
		return mapped
	}
	return value
}

func NormalizeDegree(value string) string {
	value = collapse(value)
	if value == "" {
		return DefaultCategory
	}
	if mapped, ok := degreeAliases[strings.ToLower(value)]; ok {
		return mapped
	}
	return value
}

func normalizeDeadline(value *string) *string {
	if value == nil {
		return nil
	}
	ts, ok := scraper.ParseDate(*value)
	if !ok {
		return nil
	}
	date := ts.Format("2006-01-02")
	return &date
}

// cleanLink blanks anything that is not an absolute http(s) URL.
func cleanLink(value string) string {
	value = strings.TrimSpace(value)
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return value
}

func collapse(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

func optional(value *string, clean func(string) string) *string {
	if value == nil {
		return nil
	}
	return models.StringPtr(clean(*value))
}

func withDefault(value *string, fallback string) *string {
	if value == nil {
		return &fallback
	}
	return value
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func clip(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return strings.TrimSpace(string(runes[:max]))
}

func clipPtr(value *string, max int) *string {
	if value == nil {
		return nil
	}
	clipped := clip(*value, max)
	return &clipped
}
