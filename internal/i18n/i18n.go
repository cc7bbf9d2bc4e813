// Package i18n holds the user-facing message tables and language detection.
package i18n

import (
	"fmt"
	"strings"
)

const Fallback = "en"

type MessageKey string

const (
	AppTitle          MessageKey = "app.title"
	SearchPlaceholder MessageKey = "search.placeholder"
	FilterCountry     MessageKey = "filter.country"
	FilterDegree      MessageKey = "filter.degree"
	FilterSubject     MessageKey = "filter.subject"
	FilterAll         MessageKey = "filter.all"
	ClearFilters      MessageKey = "filter.clear"
	ResultsCount      MessageKey = "results.count"
	NoResults         MessageKey = "results.none"
	ColumnName        MessageKey = "column.name"
	ColumnCountry     MessageKey = "column.country"
	ColumnDegree      MessageKey = "column.degree"
	ColumnDeadline    MessageKey = "column.deadline"
	ColumnDaysLeft    MessageKey = "column.days_left"
	ColumnLink        MessageKey = "column.link"
	DaysLeft          MessageKey = "deadline.days_left"
	Expired           MessageKey = "deadline.expired"
	NoDeadline        MessageKey = "deadline.none"
	Urgent            MessageKey = "badge.urgent"
	Featured          MessageKey = "badge.featured"
	Amount            MessageKey = "detail.amount"
	Provider          MessageKey = "detail.provider"
	Eligibility       MessageKey = "detail.eligibility"
	ApplyNow          MessageKey = "detail.apply"
	ContactSuccess    MessageKey = "contact.success"
)

// Keys lists every message key in display order.
var Keys = []MessageKey{
	AppTitle, SearchPlaceholder, FilterCountry, FilterDegree, FilterSubject,
	FilterAll, ClearFilters, ResultsCount, NoResults, ColumnName, ColumnCountry,
	ColumnDegree, ColumnDeadline, ColumnDaysLeft, ColumnLink, DaysLeft, Expired,
	NoDeadline, Urgent, Featured, Amount, Provider, Eligibility, ApplyNow,
	ContactSuccess,
}

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	RTL  bool   `json:"rtl,omitempty"`
}

var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "fr", Name: "Français"},
	{Code: "pt", Name: "Português"},
	{Code: "de", Name: "Deutsch"},
	{Code: "ar", Name: "العربية", RTL: true},
	{Code: "zh", Name: "中文"},
}

// Translator resolves message keys for one language.
type Translator struct {
	lang  Language
	table map[MessageKey]string
}

// New returns a translator for code, falling back to English for unknown
// codes.
func New(code string) *Translator {
	lang, ok := Lookup(code)
	if !ok {
		lang, _ = Lookup(Fallback)
	}
	return &Translator{lang: lang, table: locales[lang.Code]}
}

func (t *Translator) Language() Language {
	return t.lang
}

// T formats the message for key. Missing entries fall back to English and
// then to the key itself.
func (t *Translator) T(key MessageKey, args ...any) string {
	msg, ok := t.table[key]
	if !ok {
		msg, ok = locales[Fallback][key]
	}
	if !ok {
		msg = string(key)
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Table returns the full message table for code with English filling gaps.
func Table(code string) map[string]string {
	t := New(code)
	out := make(map[string]string, len(Keys))
	for _, key := range Keys {
		out[string(key)] = t.T(key)
	}
	return out
}

func Lookup(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, lang := range Languages {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}

// Detect picks the first supported language from candidates. Each candidate
// may be a bare code, a POSIX locale (fr_FR.UTF-8) or an Accept-Language
// header value.
func Detect(candidates ...string) string {
	for _, candidate := range candidates {
		for _, tag := range splitTags(candidate) {
			if _, ok := Lookup(tag); ok {
				return tag
			}
		}
	}
	return Fallback
}

func splitTags(value string) []string {
	var tags []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if idx := strings.Index(part, ";"); idx >= 0 {
			part = part[:idx]
		}
		if idx := strings.IndexAny(part, "_-."); idx >= 0 {
			part = part[:idx]
		}
		part = strings.ToLower(part)
		if part == "" || part == "*" {
			continue
		}
		tags = append(tags, part)
	}
	return tags
}
