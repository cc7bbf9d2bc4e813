package scraper

import (
	"regexp"
	"strings"
	"time"
)

const months = `January|February|March|April|May|June|July|August|September|October|November|December`

var (
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:` + months + `)\s+\d{4}\b`),
		regexp.MustCompile(`(?i)\b(?:` + months + `)\s+\d{1,2},?\s+\d{4}\b`),
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
	}
	labelledDeadline = regexp.MustCompile(`(?im)(?:deadline|closing\s*date)\s*:\s*(.+?)$`)

	dateLayouts = []string{
		"2 January 2006",
		"January 2 2006",
		"January 2, 2006",
		"2006-01-02",
		"2/1/2006",
		"1/2/2006",
		"2006-01-02T15:04:05",
		"2 Jan 2006",
		"Jan 2, 2006",
	}

	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`),
		regexp.MustCompile(`€[\d,]+(?:\.\d{2})?`),
		regexp.MustCompile(`£[\d,]+(?:\.\d{2})?`),
		regexp.MustCompile(`(?i)full\s+tuition`),
		regexp.MustCompile(`(?i)full\s+funding`),
		regexp.MustCompile(`(?i)fully\s+funded`),
		regexp.MustCompile(`(?i)partial\s+funding`),
		regexp.MustCompile(`(?i)\d+%\s+tuition`),
	}
)

type keywordRule struct {
	value string
	re    *regexp.Regexp
}

// Degree abbreviations like "ma" and "bs" only count as whole words.
var degreeRules = []keywordRule{
	{"PhD", regexp.MustCompile(`(?i)\b(?:phd|ph\.d|doctorate|doctoral)\b`)},
	{"Master", regexp.MustCompile(`(?i)\b(?:masters?|mba|msc|ma)\b`)},
	{"Bachelor", regexp.MustCompile(`(?i)\b(?:bachelors?|undergraduate|bs|ba|bsc)\b`)},
	{"High School", regexp.MustCompile(`(?i)\b(?:high school|secondary)\b`)},
}

var subjectRules = []keywordRule{
	{"Engineering", regexp.MustCompile(`(?i)\b(?:engineering|computer science|software|mechanical|electrical)`)},
	{"Medicine", regexp.MustCompile(`(?i)\b(?:medicine|medical|health|nursing|pharmacy)`)},
	{"Business", regexp.MustCompile(`(?i)\b(?:business|mba|management|finance|economics)`)},
	{"Science", regexp.MustCompile(`(?i)\b(?:science|physics|chemistry|biology|mathematics)`)},
	{"Arts", regexp.MustCompile(`(?i)\b(?:arts|humanities|literature|history|philosophy)`)},
	{"Law", regexp.MustCompile(`(?i)\b(?:law|legal|llm|jurisprudence)\b`)},
}

// ExtractDeadline finds the first parseable date in text and returns it as
// YYYY-MM-DD. A "Deadline:" or "Closing Date:" line wins over other dates.
func ExtractDeadline(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	if match := labelledDeadline.FindStringSubmatch(text); match != nil {
		if ts, ok := ParseDate(match[1]); ok {
			return ts.Format("2006-01-02"), true
		}
		if date, ok := findDate(match[1]); ok {
			return date, true
		}
	}
	return findDate(text)
}

func findDate(text string) (string, bool) {
	for _, re := range datePatterns {
		for _, candidate := range re.FindAllString(text, -1) {
			if ts, ok := ParseDate(candidate); ok {
				return ts.Format("2006-01-02"), true
			}
		}
	}
	return "", false
}

// ParseDate accepts the date spellings seen on scholarship sites. Day-first
// wins over month-first for ambiguous slash dates.
func ParseDate(value string) (time.Time, bool) {
	value = strings.Join(strings.Fields(value), " ")
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func ExtractAmount(text string) string {
	for _, re := range amountPatterns {
		if match := re.FindString(text); match != "" {
			return match
		}
	}
	return ""
}

func DetectDegreeLevel(text string) string {
	return detect(degreeRules, text)
}

func DetectSubject(text string) string {
	return detect(subjectRules, text)
}

func detect(rules []keywordRule, text string) string {
	for _, rule := range rules {
		if rule.re.MatchString(text) {
			return rule.value
		}
	}
	return "Any"
}
