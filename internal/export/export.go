package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/muesli/termenv"

	"github.com/jimezsa/scholarcli/internal/filter"
	"github.com/jimezsa/scholarcli/internal/i18n"
	"github.com/jimezsa/scholarcli/internal/models"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
	FormatPDF      Format = "pdf"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
	LinkStyle    LinkStyle
	// Translator localizes table headers and countdown labels. Nil means
	// English.
	Translator *i18n.Translator
	// Now anchors the days-left column. Zero means time.Now.
	Now time.Time
}

type LinkStyle string

const (
	LinkStyleShort LinkStyle = "short"
	LinkStyleFull  LinkStyle = "full"
)

// ParseFormat accepts the names used by --format and file extensions.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "tsv":
		return FormatTSV, nil
	case "pdf":
		return FormatPDF, nil
	case "table", "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func WriteScholarships(w io.Writer, records []models.Scholarship, format Format, opts WriteOptions) error {
	if opts.Translator == nil {
		opts.Translator = i18n.New(i18n.Fallback)
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	switch format {
	case FormatJSON:
		return writeJSON(w, records)
	case FormatCSV:
		return writeCSV(w, records, ',', opts.Now)
	case FormatTSV:
		return writeCSV(w, records, '\t', opts.Now)
	case FormatMarkdown:
		return writeMarkdown(w, records, opts)
	case FormatPDF:
		return writePDF(w, records, opts.Now)
	default:
		return writeTable(w, records, opts)
	}
}

func writeJSON(w io.Writer, records []models.Scholarship) error {
	if records == nil {
		records = []models.Scholarship{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeCSV(w io.Writer, records []models.Scholarship, delim rune, now time.Time) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(csvHeader()); err != nil {
		return err
	}
	for _, record := range records {
		if err := writer.Write(csvRow(record, now)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, records []models.Scholarship, opts WriteOptions) error {
	t := opts.Translator
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, t.T(i18n.NoResults))
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader(t), "\t"))
	output := termenv.NewOutput(w)
	for _, record := range records {
		fmt.Fprintln(tw, strings.Join(tableRow(record, output, opts), "\t"))
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, records []models.Scholarship, opts WriteOptions) error {
	t := opts.Translator
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, t.T(i18n.NoResults))
		return err
	}
	for _, record := range records {
		title := fmt.Sprintf("- **%s**", safe(record.Name))
		if provider := safe(models.Deref(record.Provider)); provider != "" {
			title += fmt.Sprintf(" (%s)", provider)
		}
		if record.IsFeatured {
			title += " · " + t.T(i18n.Featured)
		}
		lines := []string{
			title,
			fmt.Sprintf("  %s: %s · %s · %s", t.T(i18n.ColumnCountry), safe(record.Country), safe(record.DegreeLevel), safe(record.Subject)),
			fmt.Sprintf("  %s: %s", t.T(i18n.ColumnDeadline), deadlineLabel(record, t, opts.Now)),
		}
		if amount := safe(models.Deref(record.Amount)); amount != "" {
			lines = append(lines, fmt.Sprintf("  %s: %s %s", t.T(i18n.Amount), amount, safe(models.Deref(record.Currency))))
		}
		if link := safe(models.Deref(record.ApplicationLink)); link != "" {
			lines = append(lines, fmt.Sprintf("  %s: [%s](<%s>)", t.T(i18n.ColumnLink), t.T(i18n.ApplyNow), link))
		}
		if eligibility := safe(models.Deref(record.Eligibility)); eligibility != "" {
			lines = append(lines, fmt.Sprintf("  %s: %s", t.T(i18n.Eligibility), eligibility))
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}

func csvHeader() []string {
	return []string{
		"id",
		"name",
		"provider",
		"country",
		"degree_level",
		"subject",
		"amount",
		"currency",
		"deadline",
		"days_left",
		"application_link",
		"source_name",
		"is_featured",
	}
}

func csvRow(record models.Scholarship, now time.Time) []string {
	daysLeft := ""
	if days, ok := filter.DaysUntil(record.Deadline, now); ok {
		daysLeft = strconv.Itoa(days)
	}
	return []string{
		strconv.Itoa(record.ID),
		record.Name,
		models.Deref(record.Provider),
		record.Country,
		record.DegreeLevel,
		record.Subject,
		models.Deref(record.Amount),
		models.Deref(record.Currency),
		models.Deref(record.Deadline),
		daysLeft,
		models.Deref(record.ApplicationLink),
		models.Deref(record.SourceName),
		strconv.FormatBool(record.IsFeatured),
	}
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

func tableHeader(t *i18n.Translator) []string {
	return []string{
		"#",
		t.T(i18n.ColumnName),
		t.T(i18n.ColumnCountry),
		t.T(i18n.ColumnDegree),
		t.T(i18n.ColumnDeadline),
		t.T(i18n.ColumnDaysLeft),
		t.T(i18n.ColumnLink),
	}
}

// deadlineLabel renders the countdown shown next to a deadline.
func deadlineLabel(record models.Scholarship, t *i18n.Translator, now time.Time) string {
	days, ok := filter.DaysUntil(record.Deadline, now)
	switch {
	case !ok:
		return t.T(i18n.NoDeadline)
	case days < 0:
		return models.Deref(record.Deadline) + " (" + t.T(i18n.Expired) + ")"
	default:
		return models.Deref(record.Deadline) + " (" + t.T(i18n.DaysLeft, days) + ")"
	}
}

func tableRow(record models.Scholarship, output *termenv.Output, opts WriteOptions) []string {
	const (
		linkColor     = "#87CEEB"
		urgentColor   = "#FF6B6B"
		featuredColor = "#FFD166"
	)
	t := opts.Translator

	name := safe(record.Name)
	if record.IsFeatured {
		badge := "[" + t.T(i18n.Featured) + "]"
		if opts.ColorEnabled {
			badge = output.String(badge).Foreground(output.Color(featuredColor)).String()
		}
		name += " " + badge
	}

	deadline := safe(models.Deref(record.Deadline))
	if deadline == "" {
		deadline = "-"
	}
	daysLeft := t.T(i18n.NoDeadline)
	if days, ok := filter.DaysUntil(record.Deadline, opts.Now); ok {
		if days < 0 {
			daysLeft = t.T(i18n.Expired)
		} else {
			daysLeft = t.T(i18n.DaysLeft, days)
		}
		if filter.Urgent(days) {
			daysLeft += " " + t.T(i18n.Urgent)
			if opts.ColorEnabled {
				daysLeft = output.String(daysLeft).Foreground(output.Color(urgentColor)).Bold().String()
			}
		}
	}

	link := safe(models.Deref(record.ApplicationLink))
	displayURL := "-"
	if link != "" {
		displayURL = link
		if opts.LinkStyle == LinkStyleShort && opts.Hyperlinks {
			displayURL = shortURLLabel(link)
		}
		if opts.ColorEnabled {
			displayURL = output.String(displayURL).Foreground(output.Color(linkColor)).String()
		}
		if opts.Hyperlinks {
			displayURL = hyperlink(link, displayURL)
		}
	}
	return []string{
		strconv.Itoa(record.ID),
		name,
		safe(record.Country),
		safe(record.DegreeLevel),
		deadline,
		daysLeft,
		displayURL,
	}
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = raw
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}
