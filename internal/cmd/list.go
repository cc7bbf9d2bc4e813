package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jimezsa/scholarcli/internal/catalog"
	"github.com/jimezsa/scholarcli/internal/filter"
	"github.com/jimezsa/scholarcli/internal/i18n"
	"github.com/jimezsa/scholarcli/internal/models"
	"github.com/jimezsa/scholarcli/internal/store"
)

const defaultFeaturedLimit = 6

type ListCmd struct {
	Query    string `arg:"" optional:"" help:"Free-text search over name, description, provider, country and subject."`
	Country  string `help:"Country filter; All disables it." default:"All"`
	Degree   string `help:"Degree level filter; All disables it." default:"All"`
	Subject  string `help:"Subject filter; All disables it." default:"All"`
	Featured bool   `help:"Only featured scholarships."`
	Urgent   bool   `help:"Only scholarships closing within 30 days."`
	Limit    int    `help:"Maximum rows (0 uses the configured default, -1 shows all)."`
	OutputOptions
}

type ShowCmd struct {
	ID int `arg:"" help:"Scholarship id."`
}

type FeaturedCmd struct {
	Limit int `help:"Maximum rows." default:"6"`
	OutputOptions
}

type OptionsCmd struct{}

func (l *ListCmd) Run(ctx *Context) error {
	criteria, err := buildCriteria(l.Query, l.Country, l.Degree, l.Subject)
	if err != nil {
		return err
	}
	records, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	matched := filter.Apply(records, criteria)
	if l.Featured {
		matched = filter.Featured(matched)
	}
	if l.Urgent {
		matched = urgentOnly(matched, ctx.now())
	}
	matched = limitRecords(matched, defaultInt(l.Limit, ctx.Config.DefaultLimit))

	if len(matched) == 0 && !ctx.JSONOutput && !ctx.PlainText && l.Output == "" {
		ctx.UI.Warnf("%s", ctx.translator().T(i18n.NoResults))
	} else if err := writeRecords(ctx, matched, l.OutputOptions); err != nil {
		return err
	}

	fmt.Fprintln(ctx.Err, formatListSummary(matched, len(records), criteria))
	return nil
}

func (f *FeaturedCmd) Run(ctx *Context) error {
	records, err := loadCatalog(ctx)
	if err != nil {
		return err
	}
	featured := limitRecords(filter.Featured(records), defaultInt(f.Limit, defaultFeaturedLimit))
	if len(featured) == 0 && !ctx.JSONOutput && !ctx.PlainText && f.Output == "" {
		ctx.UI.Warnf("%s", ctx.translator().T(i18n.NoResults))
		return nil
	}
	return writeRecords(ctx, featured, f.OutputOptions)
}

func (s *ShowCmd) Run(ctx *Context) error {
	st, err := ctx.OpenStore(context.Background())
	if err != nil {
		return err
	}
	defer st.Close()

	record, err := st.Get(context.Background(), s.ID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no scholarship with id %d", s.ID)
	}
	if err != nil {
		return err
	}

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}
	printDetail(ctx, record)
	return nil
}

func (o *OptionsCmd) Run(ctx *Context) error {
	options := catalog.AllOptions()
	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(options)
	}

	t := ctx.translator()
	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", t.T(i18n.FilterCountry), strings.Join(options.Countries, ", "))
	fmt.Fprintf(tw, "%s\t%s\n", t.T(i18n.FilterDegree), strings.Join(options.DegreeLevels, ", "))
	fmt.Fprintf(tw, "%s\t%s\n", t.T(i18n.FilterSubject), strings.Join(options.Subjects, ", "))
	return tw.Flush()
}

func printDetail(ctx *Context, record models.Scholarship) {
	t := ctx.translator()
	u := ctx.UI

	title := record.Name
	if record.IsFeatured {
		title += "  " + u.FeaturedBadge(t.T(i18n.Featured))
	}
	u.Heading(title)
	u.Field(t.T(i18n.Provider), models.Deref(record.Provider))
	u.Field(t.T(i18n.ColumnCountry), record.Country)
	u.Field(t.T(i18n.ColumnDegree), record.DegreeLevel)
	u.Field(t.T(i18n.FilterSubject), record.Subject)
	u.Field(t.T(i18n.Amount), strings.TrimSpace(models.Deref(record.Amount)+" "+models.Deref(record.Currency)))
	u.Field(t.T(i18n.ColumnDeadline), deadlineText(ctx, record))
	u.Field(t.T(i18n.Eligibility), models.Deref(record.Eligibility))
	if link := models.Deref(record.ApplicationLink); link != "" {
		u.Field(t.T(i18n.ApplyNow), u.LinkText(link))
	}
	if desc := models.Deref(record.Description); desc != "" {
		fmt.Fprintln(ctx.Out)
		fmt.Fprintln(ctx.Out, desc)
	}
}

func deadlineText(ctx *Context, record models.Scholarship) string {
	t := ctx.translator()
	days, ok := filter.DaysUntil(record.Deadline, ctx.now())
	switch {
	case !ok:
		return t.T(i18n.NoDeadline)
	case days < 0:
		return fmt.Sprintf("%s (%s)", models.Deref(record.Deadline), t.T(i18n.Expired))
	case filter.Urgent(days):
		return fmt.Sprintf("%s (%s)", models.Deref(record.Deadline), ctx.UI.UrgentText(t.T(i18n.DaysLeft, days)))
	default:
		return fmt.Sprintf("%s (%s)", models.Deref(record.Deadline), t.T(i18n.DaysLeft, days))
	}
}

// buildCriteria starts from all-sentinel criteria and applies each flag
// through filter.Set so empty values reset to All.
func buildCriteria(query, country, degree, subject string) (models.FilterCriteria, error) {
	criteria := filter.DefaultCriteria()
	values := []struct {
		field filter.Field
		value string
	}{
		{filter.FieldCountry, country},
		{filter.FieldDegreeLevel, degree},
		{filter.FieldSubject, subject},
		{filter.FieldQuery, strings.TrimSpace(query)},
	}
	for _, v := range values {
		var err error
		criteria, err = filter.Set(criteria, v.field, v.value)
		if err != nil {
			return criteria, err
		}
	}
	return criteria, nil
}

func loadCatalog(ctx *Context) ([]models.Scholarship, error) {
	st, err := ctx.OpenStore(context.Background())
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.List(context.Background())
}

func urgentOnly(records []models.Scholarship, now time.Time) []models.Scholarship {
	out := make([]models.Scholarship, 0, len(records))
	for _, record := range records {
		if days, ok := filter.DaysUntil(record.Deadline, now); ok && filter.Urgent(days) {
			out = append(out, record)
		}
	}
	return out
}

func limitRecords(records []models.Scholarship, limit int) []models.Scholarship {
	if limit <= 0 || len(records) <= limit {
		return records
	}
	return records[:limit]
}

func formatListSummary(records []models.Scholarship, total int, criteria models.FilterCriteria) string {
	counts := countByCountry(records)
	if len(counts) == 0 {
		return fmt.Sprintf("summary: matched=0 total=%d active_filters=%d by_country=none", total, filter.ActiveCount(criteria))
	}

	parts := make([]string, 0, len(counts))
	for _, count := range counts {
		parts = append(parts, fmt.Sprintf("%s:%d", count.country, count.total))
	}
	return fmt.Sprintf("summary: matched=%d total=%d active_filters=%d by_country=%s",
		len(records), total, filter.ActiveCount(criteria), strings.Join(parts, ", "))
}

type countryCount struct {
	country string
	total   int
}

func countByCountry(records []models.Scholarship) []countryCount {
	totals := make(map[string]int, len(records))
	for _, record := range records {
		country := strings.TrimSpace(record.Country)
		if country == "" {
			country = "unknown"
		}
		totals[country]++
	}

	counts := make([]countryCount, 0, len(totals))
	for country, total := range totals {
		counts = append(counts, countryCount{country: country, total: total})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].country < counts[j].country
	})
	return counts
}
