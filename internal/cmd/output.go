package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jimezsa/scholarcli/internal/export"
	"github.com/jimezsa/scholarcli/internal/models"
	"github.com/muesli/termenv"
)

type OutputOptions struct {
	Format string `help:"Output format: table, csv, tsv, json, md, pdf." enum:",table,csv,tsv,json,md,pdf" default:""`
	Links  string `help:"Table link display: short or full." enum:"short,full" default:"short"`
	Output string `name:"output" short:"o" help:"Write output to a file."`
}

func writeRecords(ctx *Context, records []models.Scholarship, opts OutputOptions) error {
	format, err := resolveFormat(ctx, opts.Format, opts.Output)
	if err != nil {
		return err
	}
	if format == export.FormatPDF && strings.TrimSpace(opts.Output) == "" && isTTY(ctx.Out) {
		return fmt.Errorf("pdf output needs --output")
	}

	writer := ctx.Out
	if opts.Output != "" {
		file, err := os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled && opts.Output == ""
	linkStyle := export.LinkStyleShort
	if strings.EqualFold(opts.Links, string(export.LinkStyleFull)) {
		linkStyle = export.LinkStyleFull
	}
	return export.WriteScholarships(writer, records, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   colorEnabled && isTTY(writer),
		LinkStyle:    linkStyle,
		Translator:   ctx.translator(),
		Now:          ctx.now(),
	})
}

// resolveFormat picks the format from global flags, --format, the output
// file extension and finally whether stdout is a terminal.
func resolveFormat(ctx *Context, format string, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if format != "" {
		return export.ParseFormat(format)
	}

	if outputPath != "" {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
		if parsed, err := export.ParseFormat(ext); err == nil && ext != "" && parsed != export.FormatTable {
			return parsed, nil
		}
		return export.FormatCSV, nil
	}

	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func pathsEqual(a, b string) bool {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil {
		return absA == absB
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}

// startIndicator draws a spinner on stderr until the returned func is called.
// It is a no-op unless stderr is a terminal.
func startIndicator(ctx *Context, label string) func() {
	if ctx == nil || ctx.Err == nil || ctx.UI == nil || !isTTY(ctx.Err) {
		return func() {}
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		start := time.Now()
		frames := []string{"|", "/", "-", "\\"}
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		index := 0

		for {
			select {
			case <-done:
				fmt.Fprint(ctx.Err, "\r\033[2K")
				return
			case <-ticker.C:
				seconds := int(time.Since(start).Seconds())
				fmt.Fprintf(ctx.Err, "\r\033[2K%s... %ds %s", label, seconds, frames[index%len(frames)])
				index++
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
