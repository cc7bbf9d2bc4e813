package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/jimezsa/scholarcli/internal/config"
	"github.com/jimezsa/scholarcli/internal/ingest"
	"github.com/jimezsa/scholarcli/internal/network"
	"github.com/jimezsa/scholarcli/internal/scraper"
)

type ScrapeCmd struct {
	Sources     string `help:"Comma-separated sources, or all (live sites only)." env:"SCHOLARCLI_SOURCES"`
	Limit       int    `help:"Maximum records per source."`
	Concurrency int    `help:"Sources scraped in parallel."`
	Feed        bool   `help:"Also write a timestamped JSON feed of the harvest."`
	FeedDir     string `help:"Directory for --feed files (default: <config dir>/feeds)."`
	Proxies     string `help:"Comma-separated proxy URLs." env:"SCHOLARCLI_PROXIES"`
}

type SourcesCmd struct{}

func (s *ScrapeCmd) Run(ctx *Context) error {
	cfg := ctx.Config

	sources, err := selectSources(ctx, s.Sources, s.Proxies)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := ctx.OpenStore(runCtx)
	if err != nil {
		return err
	}
	defer st.Close()

	opts := ingest.Options{
		Concurrency: defaultInt(s.Concurrency, cfg.Scrape.Concurrency),
		Limit:       defaultInt(s.Limit, cfg.Scrape.Limit),
	}
	if s.Feed || cfg.Scrape.WriteFeed {
		opts.FeedDir = firstNonEmpty(s.FeedDir, filepath.Join(ctx.ConfigDir, config.FeedDirName))
	}
	runner := ingest.NewRunner(st, ctx.Logger, opts)

	stopIndicator := startIndicator(ctx, "Scraping")
	report, runErr := runner.Run(runCtx, sources)
	stopIndicator()

	if err := writeReport(ctx, report); err != nil {
		return err
	}
	fmt.Fprintln(ctx.Err, report.Summary())
	if report.FeedPath != "" {
		ctx.UI.Successf("Feed written to %s", report.FeedPath)
	}
	return runErr
}

// selectSources builds the registry with the configured politeness and
// proxies and resolves the requested names.
func selectSources(ctx *Context, requested, proxyFlag string) ([]scraper.Source, error) {
	proxies, err := config.LoadProxies(proxyFlag)
	if err != nil {
		return nil, err
	}
	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, 10*time.Minute)
		if err != nil {
			return nil, err
		}
		ctx.Logger.Debug().Int("available", rotator.Available()).Int("configured", len(proxies)).Msg("proxies loaded")
	}

	registry, err := scraper.Registry(rotator, networkOptions(ctx.Config))
	if err != nil {
		return nil, err
	}
	return scraper.Select(registry, firstNonEmpty(requested, ctx.Config.Scrape.Sources, "all"))
}

func networkOptions(cfg config.Config) network.Options {
	opts := network.DefaultOptions()
	if cfg.Scrape.DelaySeconds > 0 {
		opts.Delay = time.Duration(cfg.Scrape.DelaySeconds * float64(time.Second))
	}
	if cfg.Scrape.Retries > 0 {
		opts.MaxRetries = cfg.Scrape.Retries
	}
	return opts
}

func writeReport(ctx *Context, report ingest.Report) error {
	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if ctx.PlainText {
		for _, s := range report.Sources {
			fmt.Fprintf(ctx.Out, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n", s.Name, s.Status, s.Scraped, s.Inserted, s.Duplicates, s.Dropped, s.Error)
		}
		return nil
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "source\tstatus\tscraped\tinserted\tduplicates\tdropped\terror")
	for _, s := range report.Sources {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n", s.Name, s.Status, s.Scraped, s.Inserted, s.Duplicates, s.Dropped, s.Error)
	}
	return tw.Flush()
}

type sourceInfo struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
	URL    string `json:"url"`
}

func (s *SourcesCmd) Run(ctx *Context) error {
	infos := make([]sourceInfo, 0, len(scraper.Sites)+1)
	for _, site := range scraper.Sites {
		infos = append(infos, sourceInfo{Name: site.Name, Domain: site.Domain, URL: site.URL})
	}
	infos = append(infos, sourceInfo{Name: scraper.SourceSample, Domain: "-", URL: "-"})

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tdomain\turl")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Name, info.Domain, info.URL)
	}
	return tw.Flush()
}
