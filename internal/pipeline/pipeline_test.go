package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jimezsa/scholarcli/internal/models"
)

func TestProcessNormalizes(t *testing.T) {
	p := New()
	got, err := p.Process(models.Scholarship{
		Name:            "  Chevening \n Scholarships ",
		Description:     models.StringPtr("One-year   master's\tdegree"),
		Provider:        models.StringPtr("   "),
		Deadline:        models.StringPtr("5 November 2024"),
		ApplicationLink: models.StringPtr("/apply"),
		Country:         "united kingdom",
		DegreeLevel:     "Postgraduate",
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if got.Name != "Chevening Scholarships" {
		t.Fatalf("unexpected name: %q", got.Name)
	}
	if models.Deref(got.Description) != "One-year master's degree" {
		t.Fatalf("unexpected description: %q", models.Deref(got.Description))
	}
	if got.Provider != nil {
		t.Fatalf("blank provider should be absent")
	}
	if got.ApplicationLink != nil {
		t.Fatalf("relative link should be dropped, got %q", *got.ApplicationLink)
	}
	if got.Country != "UK" || got.DegreeLevel != "Master" || got.Subject != "Any" {
		t.Fatalf("unexpected categories: %s / %s / %s", got.Country, got.DegreeLevel, got.Subject)
	}
	if models.Deref(got.Deadline) != "2024-11-05" {
		t.Fatalf("unexpected deadline: %q", models.Deref(got.Deadline))
	}
	if models.Deref(got.Currency) != DefaultCurrency || models.Deref(got.SourceName) != DefaultSourceName {
		t.Fatalf("defaults not applied: %+v", got)
	}
}

func TestProcessRejects(t *testing.T) {
	p := New()

	if _, err := p.Process(models.Scholarship{Name: "   "}); !errors.Is(err, ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
	if _, err := p.Process(models.Scholarship{Name: "DAAD"}); err == nil {
		t.Fatalf("expected names shorter than five characters to fail validation")
	}
}

func TestProcessClipsLongFields(t *testing.T) {
	p := New()
	got, err := p.Process(models.Scholarship{
		Name:     strings.Repeat("n", 600),
		Provider: models.StringPtr(strings.Repeat("é", 300)),
		Currency: models.StringPtr("US DOLLARS PLEASE"),
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len([]rune(got.Name)) != maxName {
		t.Fatalf("name not clipped: %d", len([]rune(got.Name)))
	}
	if len([]rune(models.Deref(got.Provider))) != maxProvider {
		t.Fatalf("provider not clipped: %d", len([]rune(models.Deref(got.Provider))))
	}
	if models.Deref(got.Currency) != "US DOLLARS" {
		t.Fatalf("currency not clipped: %q", models.Deref(got.Currency))
	}
}

func TestProcessDropsUnparseableDeadline(t *testing.T) {
	got, err := New().Process(models.Scholarship{Name: "Rolling Award", Deadline: models.StringPtr("rolling")})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got.Deadline != nil {
		t.Fatalf("expected deadline to be dropped, got %q", *got.Deadline)
	}
}

func TestRun(t *testing.T) {
	result := New().Run([]models.Scholarship{
		{Name: "Holland Scholarship", Country: "Netherlands"},
		{Name: "", SourceName: models.StringPtr("scholarshiproar.com")},
		{Name: "Eiffel Excellence Scholarship", Country: "fr"},
	})
	if len(result.Kept) != 2 || len(result.Dropped) != 1 {
		t.Fatalf("unexpected result: kept=%d dropped=%d", len(result.Kept), len(result.Dropped))
	}
	if result.Kept[1].Country != "France" {
		t.Fatalf("unexpected country: %q", result.Kept[1].Country)
	}
	if result.Dropped[0].Source != "scholarshiproar.com" {
		t.Fatalf("unexpected drop source: %q", result.Dropped[0].Source)
	}
}

func TestNormalizeCountryAndDegree(t *testing.T) {
	countries := map[string]string{
		"US":          "USA",
		"Worldwide":   "International",
		"":            "International",
		"South Korea": "South Korea",
	}
	for in, want := range countries {
		if got := NormalizeCountry(in); got != want {
			t.Fatalf("NormalizeCountry(%q) = %q, want %q", in, got, want)
		}
	}

	degrees := map[string]string{
		"undergrad": "Bachelor",
		"Doctoral":  "PhD",
		"all":       "Any",
		"":          "Any",
		"Postdoc":   "Postdoc",
	}
	for in, want := range degrees {
		if got := NormalizeDegree(in); got != want {
			t.Fatalf("NormalizeDegree(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBatcher(t *testing.T) {
	var batches []int
	sink := func(_ context.Context, batch []models.Scholarship) (int, int, error) {
		batches = append(batches, len(batch))
		if len(batches) == 2 {
			return 0, 0, errors.New("connection reset")
		}
		return len(batch) - 1, 1, nil
	}

	b := NewBatcher(2, sink)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		err := b.Add(ctx, models.Scholarship{Name: "record"})
		if i == 3 && err == nil {
			t.Fatalf("expected second flush to fail")
		}
	}
	if err := b.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if err := b.Flush(ctx); err != nil {
		t.Fatalf("empty Flush() error = %v", err)
	}

	if len(batches) != 3 || batches[2] != 1 {
		t.Fatalf("unexpected batches: %v", batches)
	}
	stats := b.Stats()
	if stats.Inserted != 1 || stats.Duplicates != 2 || stats.Errors != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
