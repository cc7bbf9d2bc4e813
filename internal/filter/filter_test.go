package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jimezsa/scholarcli/internal/models"
)

func fixture() []models.Scholarship {
	str := models.StringPtr
	return []models.Scholarship{
		{ID: 1, Name: "Fulbright Foreign Student Program", Provider: str("U.S. Department of State"), Description: str("Graduate study and research in the United States."), Deadline: str("2024-10-15"), Country: "USA", DegreeLevel: "Master", Subject: "Any", IsFeatured: true},
		{ID: 2, Name: "Chevening Scholarships", Provider: str("UK Government"), Description: str("One-year master's degree in the UK."), Deadline: str("2024-11-05"), Country: "UK", DegreeLevel: "Master", Subject: "Any", IsFeatured: true},
		{ID: 3, Name: "Erasmus Mundus Joint Masters", Provider: str("European Union"), Deadline: str("2024-12-15"), Country: "Europe", DegreeLevel: "Master", Subject: "Any", IsFeatured: true},
		{ID: 4, Name: "DAAD Scholarships", Provider: str("German Academic Exchange Service"), Description: str("Postgraduate courses at German universities."), Deadline: str("2024-10-31"), Country: "Germany", DegreeLevel: "Master", Subject: "Any", IsFeatured: true},
		{ID: 6, Name: "Gates Cambridge Scholarship", Provider: str("Bill & Melinda Gates Foundation"), Deadline: str("2024-12-05"), Country: "UK", DegreeLevel: "PhD", Subject: "Any", IsFeatured: true},
		{ID: 7, Name: "ETH Excellence Scholarships", Provider: str("ETH Zurich"), Deadline: str("2024-12-15"), Country: "Switzerland", DegreeLevel: "Master", Subject: "Engineering"},
		{ID: 9, Name: "Holland Scholarship", Country: "Netherlands", DegreeLevel: "Bachelor", Subject: "Any"},
	}
}

func ids(records []models.Scholarship) []int {
	out := make([]int, 0, len(records))
	for _, record := range records {
		out = append(out, record.ID)
	}
	return out
}

func TestApplyDefaultCriteriaIsIdentity(t *testing.T) {
	records := fixture()
	for _, c := range []models.FilterCriteria{DefaultCriteria(), {}} {
		got := Apply(records, c)
		if diff := cmp.Diff(records, got); diff != "" {
			t.Fatalf("Apply(%+v) mismatch (-want +got):\n%s", c, diff)
		}
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		name     string
		criteria models.FilterCriteria
		want     []int
	}{
		{
			name:     "country and degree",
			criteria: models.FilterCriteria{Country: "UK", DegreeLevel: "Master", Subject: models.All},
			want:     []int{2},
		},
		{
			name:     "query matches provider",
			criteria: models.FilterCriteria{Country: models.All, DegreeLevel: models.All, Subject: models.All, SearchQuery: "german"},
			want:     []int{4},
		},
		{
			name:     "query matches description",
			criteria: models.FilterCriteria{SearchQuery: "united states"},
			want:     []int{1},
		},
		{
			name:     "query matches country and subject",
			criteria: models.FilterCriteria{SearchQuery: "engineer"},
			want:     []int{7},
		},
		{
			name:     "absent optional fields do not match",
			criteria: models.FilterCriteria{SearchQuery: "ministry"},
			want:     []int{},
		},
		{
			name:     "no match",
			criteria: models.FilterCriteria{Country: "Japan", DegreeLevel: models.All, Subject: models.All},
			want:     []int{},
		},
		{
			name:     "categorical match is case sensitive",
			criteria: models.FilterCriteria{Country: "uk"},
			want:     []int{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Apply(fixture(), tc.criteria))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Apply() ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyTwoRecordCatalog(t *testing.T) {
	str := models.StringPtr
	records := []models.Scholarship{
		{ID: 1, Name: "Chevening Scholarships", Provider: str("UK Government"), Country: "UK", DegreeLevel: "Master", Subject: "Any"},
		{ID: 2, Name: "DAAD Scholarships", Provider: str("German Academic Exchange Service"), Country: "Germany", DegreeLevel: "Master", Subject: "Any"},
	}

	cases := []struct {
		name     string
		criteria models.FilterCriteria
		want     []int
	}{
		{"country UK", models.FilterCriteria{Country: "UK", DegreeLevel: models.All, Subject: models.All}, []int{1}},
		{"country only, zero-value rest", models.FilterCriteria{Country: "UK"}, []int{1}},
		{"degree Master keeps both", models.FilterCriteria{Country: models.All, DegreeLevel: "Master", Subject: models.All}, []int{1, 2}},
		{"query daad", models.FilterCriteria{SearchQuery: "daad"}, []int{2}},
		{"query DAAD", models.FilterCriteria{SearchQuery: "DAAD"}, []int{2}},
		{"country and query disagree", models.FilterCriteria{Country: "UK", SearchQuery: "daad"}, []int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ids(Apply(records, tc.criteria))); diff != "" {
				t.Fatalf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyQueryIsCaseInsensitive(t *testing.T) {
	records := fixture()
	lower := Apply(records, models.FilterCriteria{SearchQuery: "cambridge"})
	upper := Apply(records, models.FilterCriteria{SearchQuery: "CAMBRIDGE"})
	if diff := cmp.Diff(lower, upper); diff != "" {
		t.Fatalf("case variants differ (-lower +upper):\n%s", diff)
	}
	if len(lower) != 1 || lower[0].ID != 6 {
		t.Fatalf("expected Gates Cambridge only, got %v", ids(lower))
	}
}

func TestApplyIsIdempotentAndBounded(t *testing.T) {
	records := fixture()
	criteria := models.FilterCriteria{DegreeLevel: "Master", SearchQuery: "s"}

	once := Apply(records, criteria)
	twice := Apply(once, criteria)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("Apply is not idempotent (-once +twice):\n%s", diff)
	}
	if len(once) > len(records) {
		t.Fatalf("result longer than input: %d > %d", len(once), len(records))
	}
	for _, record := range once {
		if !Matches(record, criteria) {
			t.Fatalf("record %d in result does not match", record.ID)
		}
	}
}

func TestApplyIsConjunctive(t *testing.T) {
	records := fixture()
	country := models.FilterCriteria{Country: "UK"}
	degree := models.FilterCriteria{DegreeLevel: "PhD"}
	both := models.FilterCriteria{Country: "UK", DegreeLevel: "PhD"}

	inCountry := map[int]bool{}
	for _, record := range Apply(records, country) {
		inCountry[record.ID] = true
	}
	var want []int
	for _, record := range Apply(records, degree) {
		if inCountry[record.ID] {
			want = append(want, record.ID)
		}
	}
	if diff := cmp.Diff(want, ids(Apply(records, both))); diff != "" {
		t.Fatalf("conjunction mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := fixture()
	before := fixture()
	got := Apply(records, models.FilterCriteria{Country: "UK"})
	if len(got) > 0 {
		got[0].Name = "changed"
	}
	if diff := cmp.Diff(before, records); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestApplyEmptyInput(t *testing.T) {
	got := Apply(nil, models.FilterCriteria{Country: "UK", SearchQuery: "x"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestFeatured(t *testing.T) {
	got := ids(Featured(fixture()))
	want := []int{1, 2, 3, 4, 6}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Featured() mismatch (-want +got):\n%s", diff)
	}
	if len(Featured(nil)) != 0 {
		t.Fatalf("expected no featured records for empty input")
	}
}

func TestSetAndActiveCount(t *testing.T) {
	c := DefaultCriteria()
	if IsActive(c) {
		t.Fatalf("default criteria should be inactive")
	}

	var err error
	c, err = Set(c, FieldCountry, "Germany")
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	c, _ = Set(c, FieldQuery, "daad")
	if got := ActiveCount(c); got != 2 {
		t.Fatalf("ActiveCount() = %d, want 2", got)
	}

	c, _ = Set(c, FieldCountry, "")
	if c.Country != models.All {
		t.Fatalf("expected blank country to reset to All, got %q", c.Country)
	}

	if _, err := Set(c, Field("color"), "red"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestParseField(t *testing.T) {
	cases := map[string]Field{
		"Country":      FieldCountry,
		"degree-level": FieldDegreeLevel,
		"subject":      FieldSubject,
		"query":        FieldQuery,
	}
	for input, want := range cases {
		got, err := ParseField(input)
		if err != nil {
			t.Fatalf("ParseField(%q) error = %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseField(%q) = %q, want %q", input, got, want)
		}
	}
	if _, err := ParseField("colour"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}
