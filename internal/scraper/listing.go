package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/scholarcli/internal/catalog"
	"github.com/jimezsa/scholarcli/internal/models"
	"github.com/jimezsa/scholarcli/internal/network"
)

const (
	maxListingPages      = 5
	maxDescriptionLength = 500
)

// Site describes how to read one listing page. Empty optional selectors fall
// back to extraction from the card text.
type Site struct {
	Name   string
	Domain string
	URL    string
	Item   string
	Title  string
	Body   string
	Next   string

	Provider string
	Amount   string
	Deadline string
	Country  string
	Degree   string
	Subject  string
}

// Listing scrapes card-style listing pages such as blog archives.
type Listing struct {
	client *network.Client
	site   Site
}

func NewListing(client *network.Client, site Site) *Listing {
	return &Listing{client: client, site: site}
}

func (l *Listing) Name() string {
	return l.site.Name
}

func (l *Listing) Scrape(ctx context.Context, params models.ScrapeParams) ([]models.Scholarship, error) {
	limit := limitOrDefault(params.Limit)
	var records []models.Scholarship

	pageURL := l.site.URL
	for page := 0; page < maxListingPages && pageURL != ""; page++ {
		doc, err := fetchDocument(ctx, l.client, pageURL, nil)
		if err != nil {
			if len(records) > 0 {
				break
			}
			return nil, fmt.Errorf("%s: %w", l.site.Name, err)
		}

		pageRecords := parseListing(doc, l.site, pageURL, limit-len(records))
		if len(pageRecords) == 0 {
			break
		}
		records = append(records, pageRecords...)
		if len(records) >= limit {
			break
		}
		pageURL = nextPage(doc, l.site, pageURL)
	}

	return catalog.Dedupe(records), nil
}

func parseListing(doc *goquery.Document, site Site, pageURL string, limit int) []models.Scholarship {
	var records []models.Scholarship
	doc.Find(site.Item).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if limit > 0 && len(records) >= limit {
			return false
		}
		if record, ok := parseCard(card, site, pageURL); ok {
			records = append(records, record)
		}
		return true
	})
	return records
}

func parseCard(card *goquery.Selection, site Site, pageURL string) (models.Scholarship, bool) {
	title := card.Find(site.Title).First()
	name := cleanText(title.Text())
	if name == "" {
		return models.Scholarship{}, false
	}

	href := title.AttrOr("href", "")
	if href == "" {
		href = title.Find("a").First().AttrOr("href", "")
	}

	body := truncate(selectText(card, site.Body), maxDescriptionLength)
	text := name + " " + body

	record := models.Scholarship{
		Name:            name,
		Description:     models.StringPtr(body),
		Provider:        models.StringPtr(selectText(card, site.Provider)),
		Currency:        models.StringPtr("USD"),
		ApplicationLink: models.StringPtr(absoluteURL(pageURL, href)),
		Country:         firstNonEmpty(selectText(card, site.Country), "International"),
		DegreeLevel:     firstNonEmpty(selectText(card, site.Degree), DetectDegreeLevel(text)),
		Subject:         firstNonEmpty(selectText(card, site.Subject), DetectSubject(text)),
		SourceName:      models.StringPtr(site.Domain),
		SourceURL:       models.StringPtr(pageURL),
	}

	amountText := body
	if site.Amount != "" {
		amountText = selectText(card, site.Amount)
	}
	if amount := ExtractAmount(amountText); amount != "" {
		record.Amount = &amount
	} else if site.Amount != "" {
		record.Amount = models.StringPtr(amountText)
	}

	deadlineText := body
	if site.Deadline != "" {
		deadlineText = selectText(card, site.Deadline)
	}
	if deadline, ok := ExtractDeadline(deadlineText); ok {
		record.Deadline = &deadline
	}

	return record, true
}

func selectText(card *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return cleanText(card.Find(selector).First().Text())
}

func nextPage(doc *goquery.Document, site Site, pageURL string) string {
	if site.Next == "" {
		return ""
	}
	href := doc.Find(site.Next).First().AttrOr("href", "")
	next := absoluteURL(pageURL, href)
	if next == pageURL || strings.TrimSpace(next) == "" {
		return ""
	}
	return next
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
