package models

import "strings"

// Scholarship is a single catalog entry. Optional fields are nil when the
// source did not provide them.
type Scholarship struct {
	ID              int     `json:"id"`
	Name            string  `json:"name" validate:"required,min=5,max=500"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Provider        *string `json:"provider,omitempty" validate:"omitempty,max=255"`
	Eligibility     *string `json:"eligibility,omitempty" validate:"omitempty,max=2000"`
	Amount          *string `json:"amount,omitempty" validate:"omitempty,max=255"`
	Currency        *string `json:"currency,omitempty" validate:"omitempty,max=10"`
	Deadline        *string `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ApplicationLink *string `json:"application_link,omitempty" validate:"omitempty,url"`
	Country         string  `json:"country" validate:"required,max=100"`
	DegreeLevel     string  `json:"degree_level" validate:"required,max=100"`
	Subject         string  `json:"subject" validate:"required,max=200"`
	IsFeatured      bool    `json:"is_featured,omitempty"`
	SourceName      *string `json:"source_name,omitempty" validate:"omitempty,max=100"`
	SourceURL       *string `json:"source_url,omitempty"`
	CreatedAt       *string `json:"created_at,omitempty"`
}

// StringPtr returns nil for blank values.
func StringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func Deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
