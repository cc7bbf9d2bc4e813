package scraper

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jimezsa/scholarcli/internal/network"
)

const (
	SourceScholarshipPositions = "scholarship-positions"
	SourceOpportunitiesCorners = "opportunities-corners"
	SourceScholarshipRoar      = "scholarship-roar"
	SourceScholarshipPortal    = "scholarship-portal"
	SourceSample               = "sample"
)

// Sites lists the HTML listing sources.
var Sites = []Site{
	{
		Name:   SourceScholarshipPositions,
		Domain: "scholarship-positions.com",
		URL:    "https://scholarship-positions.com/",
		Item:   "article.post",
		Title:  "h2.entry-title",
		Body:   "div.entry-content",
		Next:   "a.next",
	},
	{
		Name:   SourceOpportunitiesCorners,
		Domain: "opportunitiescorners.com",
		URL:    "https://opportunitiescorners.com/",
		Item:   "article.type-post",
		Title:  "h2.entry-title",
		Body:   "div.entry-excerpt",
		Next:   "a.next",
	},
	{
		Name:   SourceScholarshipRoar,
		Domain: "scholarshiproar.com",
		URL:    "https://scholarshiproar.com/",
		Item:   "article",
		Title:  "h2",
		Body:   "div.entry-content",
		Next:   "a.next",
	},
	{
		Name:     SourceScholarshipPortal,
		Domain:   "scholarshipportal.com",
		URL:      "https://www.scholarshipportal.com/scholarships",
		Item:     ".scholarship-item, .study-portal",
		Title:    "h3 a, .title",
		Body:     ".description",
		Next:     "a.next",
		Provider: ".institution, .university",
		Amount:   ".scholarship-value",
		Deadline: ".deadline",
		Country:  ".destination, .country",
		Degree:   ".degree",
		Subject:  ".subject",
	},
}

// Registry builds every known source. Each live site gets its own client so
// the polite delay applies per host.
func Registry(rotator *network.Rotator, opts network.Options) (map[string]Source, error) {
	sources := map[string]Source{
		SourceSample: NewSample(),
	}
	for _, site := range Sites {
		client, err := network.NewClient(rotator, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", site.Name, err)
		}
		sources[site.Name] = NewListing(client, site)
	}
	return sources, nil
}

// Names returns the registered source names in sorted order.
func Names(registry map[string]Source) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NormalizeSources(sources []string) []string {
	out := make([]string, 0, len(sources))
	for _, source := range sources {
		source = strings.ToLower(strings.TrimSpace(source))
		if source == "" {
			continue
		}
		source = strings.TrimPrefix(source, "www.")
		out = append(out, expandAlias(source))
	}
	return out
}

func expandAlias(source string) string {
	switch source {
	case "scholarship-positions.com", "positions":
		return SourceScholarshipPositions
	case "opportunitiescorners.com", "opportunities", "corners":
		return SourceOpportunitiesCorners
	case "scholarshiproar.com", "roar":
		return SourceScholarshipRoar
	case "scholarshipportal.com", "portal":
		return SourceScholarshipPortal
	case "mock", "samples":
		return SourceSample
	default:
		return source
	}
}

// Select resolves a comma-separated source list against registry. "all"
// selects every live source; the sample source must be named explicitly.
func Select(registry map[string]Source, raw string) ([]Source, error) {
	requested := NormalizeSources(strings.Split(raw, ","))
	if len(requested) == 0 || (len(requested) == 1 && requested[0] == "all") {
		requested = requested[:0]
		for _, name := range Names(registry) {
			if name == SourceSample {
				continue
			}
			requested = append(requested, name)
		}
	}

	selected := make([]Source, 0, len(requested))
	seen := map[string]struct{}{}
	for _, name := range requested {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		source, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("unknown source: %s", name)
		}
		selected = append(selected, source)
	}
	return selected, nil
}
