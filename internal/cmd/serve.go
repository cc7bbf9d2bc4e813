package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jimezsa/scholarcli/internal/api"
	"github.com/jimezsa/scholarcli/internal/cache"
	"github.com/jimezsa/scholarcli/internal/config"
	"github.com/jimezsa/scholarcli/internal/ingest"
	"github.com/jimezsa/scholarcli/internal/scheduler"
	"github.com/jimezsa/scholarcli/internal/scraper"
	"github.com/jimezsa/scholarcli/internal/store"
)

type ServeCmd struct {
	Addr     string `help:"Listen address (default from config, :8080)." env:"SCHOLARCLI_ADDR"`
	Redis    string `help:"Redis URL for response caching; empty uses an in-process cache." env:"REDIS_URL"`
	Schedule bool   `help:"Harvest sources on an interval while serving."`
	Interval int    `help:"Hours between harvests (default from config)."`
	Sources  string `help:"Sources harvested by --schedule." env:"SCHOLARCLI_SOURCES"`
	Proxies  string `help:"Comma-separated proxy URLs." env:"SCHOLARCLI_PROXIES"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	cfg := ctx.Config

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := ctx.OpenStore(runCtx)
	if err != nil {
		return err
	}
	defer st.Close()

	responses, err := cache.Open(runCtx, firstNonEmpty(s.Redis, cfg.API.RedisURL))
	if err != nil {
		return err
	}
	defer responses.Close()

	inbox, err := store.NewInbox(filepath.Join(ctx.ConfigDir, config.InboxFileName))
	if err != nil {
		return err
	}

	metrics := api.NewMetrics()
	server := api.NewServer(st, responses, inbox, metrics, ctx.Logger, api.Config{
		Addr:           firstNonEmpty(s.Addr, cfg.API.Addr),
		AllowedOrigins: cfg.API.AllowedOrigins,
		CacheTTL:       time.Duration(cfg.API.CacheTTLSeconds) * time.Second,
	})

	if s.Schedule {
		sched, err := s.newScheduler(ctx, st, metrics)
		if err != nil {
			return err
		}
		sched.AfterRun = server.InvalidateCache
		if err := sched.Start(runCtx); err != nil {
			return err
		}
		defer sched.Stop()
		ctx.Logger.Info().Str("schedule", sched.Spec()).Msg("harvest scheduled")
	}

	return server.ListenAndServe(runCtx)
}

func (s *ServeCmd) newScheduler(ctx *Context, st store.Store, metrics *api.Metrics) (*scheduler.Scheduler, error) {
	cfg := ctx.Config
	sources, err := selectSources(ctx, s.Sources, s.Proxies)
	if err != nil {
		return nil, err
	}
	runner := ingest.NewRunner(st, ctx.Logger, ingest.Options{
		Concurrency: cfg.Scrape.Concurrency,
		Limit:       cfg.Scrape.Limit,
	})
	return scheduler.New(harvestJob(runner, sources, metrics, ctx), defaultInt(s.Interval, cfg.Scrape.IntervalHours), ctx.Logger)
}

func harvestJob(runner *ingest.Runner, sources []scraper.Source, metrics *api.Metrics, ctx *Context) scheduler.Job {
	return func(jobCtx context.Context) error {
		report, err := runner.Run(jobCtx, sources)
		for _, sr := range report.Sources {
			metrics.ObserveHarvest(sr.Name, sr.Inserted, sr.Duplicates, sr.Errors, report.CompletedAt)
		}
		ctx.Logger.Info().Msg(report.Summary())
		return err
	}
}
