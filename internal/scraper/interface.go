package scraper

import (
	"context"

	"github.com/jimezsa/scholarcli/internal/models"
)

// Source harvests scholarship listings from one site.
type Source interface {
	Name() string
	Scrape(ctx context.Context, params models.ScrapeParams) ([]models.Scholarship, error)
}
