package catalog

import (
	"strings"

	"github.com/jimezsa/scholarcli/internal/models"
)

const keySeparator = "::"

// DiffStats captures stats for A-B unseen filtering.
type DiffStats struct {
	TotalNew    int
	TotalSeen   int
	InvalidNew  int
	InvalidSeen int
	Unseen      int
}

func (s DiffStats) InvalidSkipped() int {
	return s.InvalidNew + s.InvalidSeen
}

// MergeStats captures stats for catalog merges.
type MergeStats struct {
	TotalSeen    int
	TotalInput   int
	InvalidSeen  int
	InvalidInput int
	Added        int
	TotalOut     int
}

func (s MergeStats) InvalidSkipped() int {
	return s.InvalidSeen + s.InvalidInput
}

// Normalize lowercases and collapses whitespace.
func Normalize(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(value)), " ")
}

// Key builds the identity of a scholarship: name, provider and deadline.
// Provider and deadline may be absent; name may not.
func Key(s models.Scholarship) (string, bool) {
	name := Normalize(s.Name)
	if name == "" {
		return "", false
	}
	return name + keySeparator + Normalize(models.Deref(s.Provider)) + keySeparator + strings.TrimSpace(models.Deref(s.Deadline)), true
}

// Diff returns the entries of incoming whose key is not present in existing.
func Diff(incoming []models.Scholarship, existing []models.Scholarship) ([]models.Scholarship, DiffStats) {
	stats := DiffStats{
		TotalNew:  len(incoming),
		TotalSeen: len(existing),
	}

	seenKeys := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		key, ok := Key(s)
		if !ok {
			stats.InvalidSeen++
			continue
		}
		seenKeys[key] = struct{}{}
	}

	newKeys := make(map[string]struct{}, len(incoming))
	unseen := make([]models.Scholarship, 0, len(incoming))
	for _, s := range incoming {
		key, ok := Key(s)
		if !ok {
			stats.InvalidNew++
			continue
		}
		if _, exists := newKeys[key]; exists {
			continue
		}
		newKeys[key] = struct{}{}
		if _, exists := seenKeys[key]; exists {
			continue
		}
		unseen = append(unseen, s)
	}

	stats.Unseen = len(unseen)
	return unseen, stats
}

// Merge appends entries of input with unknown keys to existing.
// Existing entries win collisions; appended entries get fresh ids.
func Merge(existing []models.Scholarship, input []models.Scholarship) ([]models.Scholarship, MergeStats) {
	stats := MergeStats{
		TotalSeen:  len(existing),
		TotalInput: len(input),
	}

	keys := make(map[string]struct{}, len(existing)+len(input))
	out := make([]models.Scholarship, 0, len(existing)+len(input))
	nextID := 1

	for _, s := range existing {
		if s.ID >= nextID {
			nextID = s.ID + 1
		}
		key, ok := Key(s)
		if !ok {
			stats.InvalidSeen++
			out = append(out, s)
			continue
		}
		if _, exists := keys[key]; exists {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, s)
	}

	for _, s := range input {
		key, ok := Key(s)
		if !ok {
			stats.InvalidInput++
			continue
		}
		if _, exists := keys[key]; exists {
			continue
		}
		keys[key] = struct{}{}
		s.ID = nextID
		nextID++
		out = append(out, s)
		stats.Added++
	}

	stats.TotalOut = len(out)
	return out, stats
}

// Dedupe keeps the first entry per key. Entries without a key are dropped.
func Dedupe(records []models.Scholarship) []models.Scholarship {
	keys := make(map[string]struct{}, len(records))
	out := make([]models.Scholarship, 0, len(records))
	for _, s := range records {
		key, ok := Key(s)
		if !ok {
			continue
		}
		if _, exists := keys[key]; exists {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
