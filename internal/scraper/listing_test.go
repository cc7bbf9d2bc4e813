package scraper

import (
	"context"
	"testing"

	"github.com/jimezsa/scholarcli/internal/models"
)

func siteByName(t *testing.T, name string) Site {
	t.Helper()
	for _, site := range Sites {
		if site.Name == name {
			return site
		}
	}
	t.Fatalf("no site named %s", name)
	return Site{}
}

func TestParseListing_BlogArchive(t *testing.T) {
	html := `
<main>
  <article class="post">
    <h2 class="entry-title"><a href="/daad-masters-2025/">DAAD Master Scholarships in Germany 2025</a></h2>
    <div class="entry-content">
      Fully funded awards for international students in engineering.
      Deadline: 15 October 2025
    </div>
  </article>
  <article class="post">
    <h2 class="entry-title"></h2>
    <div class="entry-content">No title, skipped.</div>
  </article>
  <article class="post">
    <h2 class="entry-title"><a href="https://example.org/phd">PhD Positions in Physics</a></h2>
    <div class="entry-content">Stipend of €2,100 per month.</div>
  </article>
  <a class="next" href="/page/2/">Next</a>
</main>`

	site := siteByName(t, SourceScholarshipPositions)
	doc := mustDoc(t, html)
	records := parseListing(doc, site, site.URL, 20)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Name != "DAAD Master Scholarships in Germany 2025" {
		t.Fatalf("unexpected name: %q", first.Name)
	}
	if got := models.Deref(first.ApplicationLink); got != "https://scholarship-positions.com/daad-masters-2025/" {
		t.Fatalf("unexpected link: %q", got)
	}
	if got := models.Deref(first.Deadline); got != "2025-10-15" {
		t.Fatalf("unexpected deadline: %q", got)
	}
	if got := models.Deref(first.Amount); got != "Fully funded" {
		t.Fatalf("unexpected amount: %q", got)
	}
	if first.DegreeLevel != "Master" || first.Subject != "Engineering" {
		t.Fatalf("unexpected classification: %s / %s", first.DegreeLevel, first.Subject)
	}
	if first.Country != "International" || models.Deref(first.Currency) != "USD" {
		t.Fatalf("unexpected defaults: %+v", first)
	}
	if models.Deref(first.SourceName) != "scholarship-positions.com" {
		t.Fatalf("unexpected source name: %q", models.Deref(first.SourceName))
	}
	if first.Provider != nil {
		t.Fatalf("provider should be absent, got %q", *first.Provider)
	}

	second := records[1]
	if second.DegreeLevel != "PhD" || second.Subject != "Science" {
		t.Fatalf("unexpected classification: %s / %s", second.DegreeLevel, second.Subject)
	}
	if second.Deadline != nil {
		t.Fatalf("deadline should be absent, got %q", *second.Deadline)
	}

	if next := nextPage(doc, site, site.URL); next != "https://scholarship-positions.com/page/2/" {
		t.Fatalf("unexpected next page: %q", next)
	}
}

func TestParseListing_StructuredCards(t *testing.T) {
	html := `
<div class="scholarship-item">
  <h3><a href="/scholarships/eth-excellence">ETH Excellence Scholarships</a></h3>
  <span class="institution">ETH Zurich</span>
  <span class="scholarship-value">CHF 12,000 per semester</span>
  <span class="deadline">15 December 2025</span>
  <p class="description">For outstanding master students.</p>
  <span class="country">Switzerland</span>
  <span class="degree">Master</span>
  <span class="subject">Engineering</span>
</div>`

	site := siteByName(t, SourceScholarshipPortal)
	records := parseListing(mustDoc(t, html), site, site.URL, 0)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	got := records[0]
	if models.Deref(got.Provider) != "ETH Zurich" {
		t.Fatalf("unexpected provider: %q", models.Deref(got.Provider))
	}
	if models.Deref(got.Amount) != "CHF 12,000 per semester" {
		t.Fatalf("unexpected amount: %q", models.Deref(got.Amount))
	}
	if models.Deref(got.Deadline) != "2025-12-15" {
		t.Fatalf("unexpected deadline: %q", models.Deref(got.Deadline))
	}
	if got.Country != "Switzerland" || got.DegreeLevel != "Master" || got.Subject != "Engineering" {
		t.Fatalf("unexpected categories: %+v", got)
	}
	if models.Deref(got.ApplicationLink) != "https://www.scholarshipportal.com/scholarships/eth-excellence" {
		t.Fatalf("unexpected link: %q", models.Deref(got.ApplicationLink))
	}
}

func TestParseListing_RespectsLimit(t *testing.T) {
	html := `
<article><h2>Scholarship One for Women</h2></article>
<article><h2>Scholarship Two for Women</h2></article>
<article><h2>Scholarship Three for Women</h2></article>`

	site := siteByName(t, SourceScholarshipRoar)
	records := parseListing(mustDoc(t, html), site, site.URL, 2)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestSampleSource(t *testing.T) {
	records, err := NewSample().Scrape(context.Background(), models.ScrapeParams{})
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(records) != 10 {
		t.Fatalf("expected 10 sample records, got %d", len(records))
	}

	limited, _ := NewSample().Scrape(context.Background(), models.ScrapeParams{Limit: 3})
	if len(limited) != 3 {
		t.Fatalf("expected limit to apply, got %d", len(limited))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewSample().Scrape(ctx, models.ScrapeParams{}); err == nil {
		t.Fatalf("expected canceled context to fail")
	}
}
