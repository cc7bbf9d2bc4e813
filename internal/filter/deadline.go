package filter

import (
	"strings"
	"time"
)

const (
	day = 24 * time.Hour

	// UrgentWithinDays is the inclusive upper bound for the urgency badge.
	UrgentWithinDays = 30
)

var deadlineLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDeadline parses an ISO date (interpreted as UTC midnight) or a full
// timestamp.
func ParseDeadline(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range deadlineLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// DaysUntil returns the whole days from now until deadline, rounded up.
// The result is negative once the deadline has passed. ok is false when the
// deadline is absent or cannot be parsed.
func DaysUntil(deadline *string, now time.Time) (days int, ok bool) {
	if deadline == nil {
		return 0, false
	}
	ts, ok := ParseDeadline(*deadline)
	if !ok {
		return 0, false
	}

	diff := ts.Sub(now)
	whole := diff / day
	if diff%day > 0 {
		whole++
	}
	return int(whole), true
}

// Urgent reports whether a deadline this many days away deserves a badge.
func Urgent(days int) bool {
	return days > 0 && days <= UrgentWithinDays
}
