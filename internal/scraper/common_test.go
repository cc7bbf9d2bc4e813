package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestAbsoluteURL(t *testing.T) {
	base := "https://scholarshiproar.com/category/masters/"
	cases := []struct {
		href string
		want string
	}{
		{"/daad-scholarship/", "https://scholarshiproar.com/daad-scholarship/"},
		{"page/2/", "https://scholarshiproar.com/category/masters/page/2/"},
		{"https://other.com/a", "https://other.com/a"},
		{"//cdn.example.com/asset", "https://cdn.example.com/asset"},
		{"  ", ""},
	}

	for _, tc := range cases {
		got := absoluteURL(base, tc.href)
		if got != tc.want {
			t.Fatalf("absoluteURL(%q) = %q, want %q", tc.href, got, tc.want)
		}
	}
}

func TestCleanText(t *testing.T) {
	got := cleanText("  Erasmus &amp; Mundus\n\t Joint   Masters ")
	if got != "Erasmus & Mundus Joint Masters" {
		t.Fatalf("cleanText() = %q", got)
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	got := truncate("Bourse d'excellence Eiffel é", 27)
	if got != "Bourse d'excellence Eiffel" {
		t.Fatalf("truncate() = %q", got)
	}
	if got := truncate("短い説明文", 3); got != "短い説" {
		t.Fatalf("truncate() = %q", got)
	}
	if got := truncate("short", 0); got != "short" {
		t.Fatalf("truncate() with no limit = %q", got)
	}
}

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	return doc
}
