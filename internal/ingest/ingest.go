// Package ingest runs one harvest: scrape every selected source, clean the
// records, persist them in batches and log the outcome per source.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jimezsa/scholarcli/internal/catalog"
	"github.com/jimezsa/scholarcli/internal/models"
	"github.com/jimezsa/scholarcli/internal/pipeline"
	"github.com/jimezsa/scholarcli/internal/scraper"
	"github.com/jimezsa/scholarcli/internal/store"
)

const DefaultConcurrency = 4

// ErrAllSourcesFailed is returned when no source produced a result.
var ErrAllSourcesFailed = errors.New("all sources failed")

type Options struct {
	Concurrency int
	Limit       int
	BatchSize   int
	// FeedDir receives scholarships_<timestamp>.json when set.
	FeedDir string
}

type Runner struct {
	store    store.Store
	pipeline *pipeline.Pipeline
	logger   zerolog.Logger
	opts     Options
	now      func() time.Time
}

func NewRunner(st store.Store, logger zerolog.Logger, opts Options) *Runner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = pipeline.DefaultBatchSize
	}
	return &Runner{
		store:    st,
		pipeline: pipeline.New(),
		logger:   logger,
		opts:     opts,
		now:      time.Now,
	}
}

type SourceReport struct {
	Name       string `json:"name"`
	Scraped    int    `json:"scraped"`
	Kept       int    `json:"kept"`
	Dropped    int    `json:"dropped"`
	Inserted   int    `json:"inserted"`
	Duplicates int    `json:"duplicates"`
	Errors     int    `json:"errors"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

type Report struct {
	Sources     []SourceReport `json:"sources"`
	FeedPath    string         `json:"feed_path,omitempty"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt time.Time      `json:"completed_at"`
}

// Totals sums every source.
func (r Report) Totals() SourceReport {
	total := SourceReport{Name: "total"}
	for _, s := range r.Sources {
		total.Scraped += s.Scraped
		total.Kept += s.Kept
		total.Dropped += s.Dropped
		total.Inserted += s.Inserted
		total.Duplicates += s.Duplicates
		total.Errors += s.Errors
	}
	return total
}

// Summary renders a single status line for stderr.
func (r Report) Summary() string {
	total := r.Totals()
	if len(r.Sources) == 0 {
		return "summary: scraped=0 inserted=0 duplicates=0 dropped=0 by_source=none"
	}
	parts := make([]string, 0, len(r.Sources))
	for _, s := range r.Sources {
		parts = append(parts, fmt.Sprintf("%s:%d", s.Name, s.Scraped))
	}
	return fmt.Sprintf("summary: scraped=%d inserted=%d duplicates=%d dropped=%d by_source=%s",
		total.Scraped, total.Inserted, total.Duplicates, total.Dropped, strings.Join(parts, ", "))
}

type scrapeResult struct {
	name      string
	records   []models.Scholarship
	err       error
	startedAt time.Time
}

// Run harvests sources and persists what survives cleaning. Failing sources
// are reported, not fatal, unless every source failed.
func (r *Runner) Run(ctx context.Context, sources []scraper.Source) (Report, error) {
	report := Report{StartedAt: r.now()}
	if len(sources) == 0 {
		report.CompletedAt = r.now()
		return report, fmt.Errorf("no sources selected")
	}

	results := r.scrape(ctx, sources)
	if err := ctx.Err(); err != nil {
		return report, err
	}

	var (
		feed     []models.Scholarship
		failures []error
	)
	for _, res := range results {
		sr, kept := r.persist(ctx, res)
		report.Sources = append(report.Sources, sr)
		feed = append(feed, kept...)
		if res.err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", res.name, res.err))
		}
	}

	if r.opts.FeedDir != "" && len(feed) > 0 {
		path := filepath.Join(r.opts.FeedDir, FeedName(report.StartedAt))
		if err := catalog.Write(path, catalog.Dedupe(feed)); err != nil {
			r.logger.Error().Err(err).Str("path", path).Msg("write feed failed")
		} else {
			report.FeedPath = path
		}
	}

	report.CompletedAt = r.now()
	if len(failures) == len(results) {
		return report, fmt.Errorf("%w: %w", ErrAllSourcesFailed, errors.Join(failures...))
	}
	return report, nil
}

// FeedName is the file name of the JSON feed written for a harvest.
func FeedName(startedAt time.Time) string {
	return "scholarships_" + startedAt.UTC().Format("2006-01-02T15-04-05") + ".json"
}

func (r *Runner) scrape(ctx context.Context, sources []scraper.Source) []scrapeResult {
	results := make([]scrapeResult, len(sources))
	params := models.ScrapeParams{Limit: r.opts.Limit}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			started := r.now()
			r.logger.Debug().Str("source", src.Name()).Msg("scrape started")
			records, err := src.Scrape(gctx, params)
			results[i] = scrapeResult{name: src.Name(), records: records, err: err, startedAt: started}
			if err != nil {
				r.logger.Warn().Err(err).Str("source", src.Name()).Msg("scrape failed")
			}
			// A failing source never cancels its siblings.
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool { return results[i].name < results[j].name })
	return results
}

func (r *Runner) persist(ctx context.Context, res scrapeResult) (SourceReport, []models.Scholarship) {
	sr := SourceReport{Name: res.name, Scraped: len(res.records)}
	if res.err != nil {
		sr.Errors++
		sr.Error = res.err.Error()
	}

	cleaned := r.pipeline.Run(res.records)
	for _, drop := range cleaned.Dropped {
		r.logger.Debug().Str("source", res.name).Str("name", drop.Name).Err(drop.Reason).Msg("record dropped")
	}
	kept := catalog.Dedupe(cleaned.Kept)
	sr.Kept = len(kept)
	sr.Dropped = len(cleaned.Dropped)
	sr.Errors += sr.Dropped

	batcher := pipeline.NewBatcher(r.opts.BatchSize, func(ctx context.Context, batch []models.Scholarship) (int, int, error) {
		result, err := r.store.Upsert(ctx, batch)
		return result.Inserted, result.Updated, err
	})
	for _, record := range kept {
		if err := batcher.Add(ctx, record); err != nil {
			r.logger.Error().Err(err).Str("source", res.name).Msg("store batch failed")
		}
	}
	if err := batcher.Flush(ctx); err != nil {
		r.logger.Error().Err(err).Str("source", res.name).Msg("store batch failed")
	}
	stats := batcher.Stats()
	sr.Inserted = stats.Inserted
	sr.Duplicates = stats.Duplicates
	sr.Errors += stats.Errors

	sr.Status = models.RunCompleted
	if sr.Errors > 0 {
		sr.Status = models.RunPartial
	}

	run := models.RunLog{
		SourceName:   res.name,
		ItemsScraped: sr.Scraped,
		Inserted:     sr.Inserted,
		Duplicates:   sr.Duplicates,
		Errors:       sr.Errors,
		StartedAt:    res.startedAt,
		CompletedAt:  r.now(),
		Status:       sr.Status,
	}
	if err := r.store.LogRun(ctx, run); err != nil {
		r.logger.Error().Err(err).Str("source", res.name).Msg("log run failed")
	}

	r.logger.Info().
		Str("source", res.name).
		Int("scraped", sr.Scraped).
		Int("inserted", sr.Inserted).
		Int("duplicates", sr.Duplicates).
		Int("errors", sr.Errors).
		Msg("source harvested")

	return sr, kept
}
