package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jimezsa/scholarcli/internal/catalog"
	"github.com/jimezsa/scholarcli/internal/config"
	"github.com/jimezsa/scholarcli/internal/export"
	"github.com/jimezsa/scholarcli/internal/i18n"
	"github.com/jimezsa/scholarcli/internal/ingest"
	"github.com/jimezsa/scholarcli/internal/models"
	"github.com/jimezsa/scholarcli/internal/ui"
	"github.com/rs/zerolog"
)

type testEnv struct {
	ctx *Context
	out *bytes.Buffer
	err *bytes.Buffer
	dir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SCHOLARCLI_CONFIG_DIR", dir)
	t.Setenv("SCHOLARCLI_PROXIES", "")

	var out, errOut bytes.Buffer
	cfg := config.DefaultConfig()
	return &testEnv{
		ctx: &Context{
			Out:        &out,
			Err:        &errOut,
			UI:         ui.New(&out, &errOut, ui.ColorNever, true),
			Config:     cfg,
			ConfigDir:  dir,
			Logger:     zerolog.Nop(),
			Translator: i18n.New("en"),
			Now:        func() time.Time { return time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC) },
		},
		out: &out,
		err: &errOut,
		dir: dir,
	}
}

// seed harvests the offline sample source into the env's file store.
func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	e.ctx.JSONOutput = true
	if err := (&ScrapeCmd{Sources: "sample"}).Run(e.ctx); err != nil {
		t.Fatalf("scrape error = %v", err)
	}
	var report ingest.Report
	if err := json.Unmarshal(e.out.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Totals().Inserted != 10 {
		t.Fatalf("expected 10 inserted, got %+v", report.Totals())
	}
	if !strings.Contains(e.err.String(), "summary: scraped=10 inserted=10") {
		t.Fatalf("unexpected summary: %q", e.err.String())
	}
	e.out.Reset()
	e.err.Reset()
	e.ctx.JSONOutput = false
}

func decodeRecords(t *testing.T, data []byte) []models.Scholarship {
	t.Helper()
	var records []models.Scholarship
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("decode: %v\n%s", err, data)
	}
	return records
}

func TestListCmdFiltersStore(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	env.ctx.JSONOutput = true
	cmd := &ListCmd{Country: "UK", Degree: "Master", Subject: "All"}
	if err := cmd.Run(env.ctx); err != nil {
		t.Fatalf("list error = %v", err)
	}
	records := decodeRecords(t, env.out.Bytes())
	if len(records) != 1 || records[0].Name != "UK Research Masters Scholarship" {
		t.Fatalf("unexpected records: %+v", records)
	}
	if got := env.err.String(); got != "summary: matched=1 total=10 active_filters=2 by_country=UK:1\n" {
		t.Fatalf("unexpected summary: %q", got)
	}

	env.out.Reset()
	env.err.Reset()
	if err := (&ListCmd{Query: "DAAD", Country: "All", Degree: "All", Subject: "All"}).Run(env.ctx); err != nil {
		t.Fatalf("list error = %v", err)
	}
	records = decodeRecords(t, env.out.Bytes())
	if len(records) != 1 || records[0].Country != "Germany" {
		t.Fatalf("unexpected query result: %+v", records)
	}
}

func TestListCmdFeaturedAndUrgent(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	env.ctx.JSONOutput = true

	if err := (&ListCmd{Featured: true, Limit: -1}).Run(env.ctx); err != nil {
		t.Fatalf("list error = %v", err)
	}
	if got := decodeRecords(t, env.out.Bytes()); len(got) != 4 {
		t.Fatalf("expected 4 featured, got %d", len(got))
	}

	// From 2026-04-20 noon only 2026-04-30 and 2026-05-15 close within 30 days.
	env.out.Reset()
	if err := (&ListCmd{Urgent: true}).Run(env.ctx); err != nil {
		t.Fatalf("list error = %v", err)
	}
	urgent := decodeRecords(t, env.out.Bytes())
	if len(urgent) != 2 || models.Deref(urgent[0].Deadline) != "2026-05-15" || models.Deref(urgent[1].Deadline) != "2026-04-30" {
		t.Fatalf("unexpected urgent records: %+v", urgent)
	}
}

func TestListCmdNoResultsWarns(t *testing.T) {
	env := newTestEnv(t)
	if err := (&ListCmd{Query: "nothing"}).Run(env.ctx); err != nil {
		t.Fatalf("list error = %v", err)
	}
	if env.out.Len() != 0 {
		t.Fatalf("expected no stdout, got %q", env.out.String())
	}
	if !strings.HasPrefix(env.err.String(), i18n.New("en").T(i18n.NoResults)) {
		t.Fatalf("expected warning, got %q", env.err.String())
	}
}

func TestShowCmd(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	if err := (&ShowCmd{ID: 4}).Run(env.ctx); err != nil {
		t.Fatalf("show error = %v", err)
	}
	got := env.out.String()
	for _, want := range []string{"UK Research Masters Scholarship", "Provider: UK Universities Consortium", "2026-04-30 (10 days left)"} {
		if !strings.Contains(got, want) {
			t.Fatalf("detail missing %q:\n%s", want, got)
		}
	}

	if err := (&ShowCmd{ID: 99}).Run(env.ctx); err == nil {
		t.Fatalf("expected error for unknown id")
	}
}

func TestDeadlineCmd(t *testing.T) {
	env := newTestEnv(t)
	env.ctx.Now = func() time.Time { return time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC) }

	if err := (&DeadlineCmd{Date: "2024-10-15"}).Run(env.ctx); err != nil {
		t.Fatalf("deadline error = %v", err)
	}
	if got := env.out.String(); got != "5 days left\n" {
		t.Fatalf("unexpected output: %q", got)
	}

	env.out.Reset()
	env.ctx.JSONOutput = true
	if err := (&DeadlineCmd{Date: "2024-10-01"}).Run(env.ctx); err != nil {
		t.Fatalf("deadline error = %v", err)
	}
	var result deadlineResult
	if err := json.Unmarshal(env.out.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.DaysLeft == nil || *result.DaysLeft != -9 || !result.Expired || result.Urgent {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestResolveFormat(t *testing.T) {
	cases := []struct {
		name   string
		ctx    *Context
		format string
		output string
		want   export.Format
	}{
		{"json flag wins", &Context{Out: io.Discard, JSONOutput: true}, "csv", "out.pdf", export.FormatJSON},
		{"plain flag", &Context{Out: io.Discard, PlainText: true}, "", "", export.FormatTSV},
		{"explicit format", &Context{Out: io.Discard}, "md", "out.csv", export.FormatMarkdown},
		{"extension", &Context{Out: io.Discard}, "", "report.pdf", export.FormatPDF},
		{"unknown extension", &Context{Out: io.Discard}, "", "report.txt", export.FormatCSV},
		{"pipe", &Context{Out: io.Discard}, "", "", export.FormatCSV},
	}
	for _, tc := range cases {
		got, err := resolveFormat(tc.ctx, tc.format, tc.output)
		if err != nil {
			t.Fatalf("%s: resolveFormat() error = %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: resolveFormat() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestBuildCriteria(t *testing.T) {
	criteria, err := buildCriteria("  chevening ", "", "Master", "All")
	if err != nil {
		t.Fatalf("buildCriteria() error = %v", err)
	}
	want := models.FilterCriteria{Country: models.All, DegreeLevel: "Master", Subject: models.All, SearchQuery: "chevening"}
	if criteria != want {
		t.Fatalf("buildCriteria() = %+v, want %+v", criteria, want)
	}
}

func TestFormatListSummaryEmpty(t *testing.T) {
	got := formatListSummary(nil, 3, models.FilterCriteria{Country: "UK"})
	if got != "summary: matched=0 total=3 active_filters=1 by_country=none" {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestCatalogCommands(t *testing.T) {
	env := newTestEnv(t)

	input := filepath.Join(env.dir, "input.json")
	records := []models.Scholarship{
		{Name: "Chevening Scholarships", Country: "united kingdom", DegreeLevel: "masters", Subject: "Any"},
		{Name: "Chevening Scholarships", Country: "UK", DegreeLevel: "Master", Subject: "Any"},
		{Name: "", Country: "UK"},
	}
	if err := catalog.Write(input, records); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if err := (&CatalogImportCmd{Input: input}).Run(env.ctx); err != nil {
		t.Fatalf("import error = %v", err)
	}
	if got := env.out.String(); got != "Imported 1 new, 0 updated, 1 dropped\n" {
		t.Fatalf("unexpected import output: %q", got)
	}

	exported := filepath.Join(env.dir, "export.json")
	if err := (&CatalogExportCmd{Out: exported}).Run(env.ctx); err != nil {
		t.Fatalf("export error = %v", err)
	}
	stored, err := catalog.Read(exported)
	if err != nil || len(stored) != 1 || stored[0].Country != "UK" {
		t.Fatalf("unexpected export: %+v, %v", stored, err)
	}

	seen := filepath.Join(env.dir, "seen.json")
	if err := (&CatalogDiffCmd{New: exported, Seen: seen, Out: seen}).Run(env.ctx); err == nil {
		t.Fatalf("expected --out == --seen to fail")
	}

	env.out.Reset()
	unseen := filepath.Join(env.dir, "unseen.json")
	if err := (&CatalogDiffCmd{New: exported, Seen: seen, Out: unseen, Stats: true}).Run(env.ctx); err != nil {
		t.Fatalf("diff error = %v", err)
	}
	if got := env.out.String(); got != "total_new=1 total_seen=0 invalid_skipped=0 unseen_emitted=1\n" {
		t.Fatalf("unexpected diff stats: %q", got)
	}

	if err := (&CatalogMergeCmd{Seen: seen, Input: unseen, Out: seen}).Run(env.ctx); err != nil {
		t.Fatalf("merge error = %v", err)
	}
	if _, err := os.Stat(seen); err != nil {
		t.Fatalf("merge did not write history: %v", err)
	}
}

func TestConfigShowRedactsSecrets(t *testing.T) {
	env := newTestEnv(t)
	env.ctx.Config.Store.DatabaseURL = "postgres://postgres:s3cr3t@db:5432/scholarships"

	if err := (&ShowConfigCmd{}).Run(env.ctx); err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if strings.Contains(env.out.String(), "s3cr3t") {
		t.Fatalf("password leaked: %s", env.out.String())
	}
	if !strings.Contains(env.out.String(), filepath.Join(env.dir, config.CatalogFileName)) {
		t.Fatalf("store path not resolved: %s", env.out.String())
	}
}
