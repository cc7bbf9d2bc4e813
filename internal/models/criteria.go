package models

// All is the sentinel for an unconstrained categorical criterion.
const All = "All"

// FilterCriteria is the user's current selection. Categorical fields equal to
// All (or left empty) do not constrain the result.
type FilterCriteria struct {
	Country     string `json:"country"`
	DegreeLevel string `json:"degree_level"`
	Subject     string `json:"subject"`
	SearchQuery string `json:"search_query"`
}

// ScrapeParams captures the inputs shared by every source.
type ScrapeParams struct {
	Limit int
}
