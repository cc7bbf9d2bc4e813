package cmd

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`
	Lang    string `help:"Interface language (en, fr, pt, de, ar, zh)."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version  VersionCmd  `cmd:"" help:"Print version."`
	Config   ConfigCmd   `cmd:"" help:"Manage configuration."`
	List     ListCmd     `cmd:"" default:"withargs" help:"Search and filter stored scholarships."`
	Show     ShowCmd     `cmd:"" help:"Show one scholarship in detail."`
	Featured FeaturedCmd `cmd:"" help:"List featured scholarships."`
	Options  OptionsCmd  `cmd:"" help:"Print the selectable filter values."`
	Deadline DeadlineCmd `cmd:"" help:"Print days left until a deadline."`
	Scrape   ScrapeCmd   `cmd:"" help:"Harvest scholarship sources into the store."`
	Sources  SourcesCmd  `cmd:"" help:"List scrape sources."`
	Serve    ServeCmd    `cmd:"" help:"Serve the JSON API."`
	Catalog  CatalogCmd  `cmd:"" help:"Catalog file utilities."`
	Proxies  ProxiesCmd  `cmd:"" help:"Proxy utilities."`
}

func NewCLI() *CLI {
	return &CLI{}
}
