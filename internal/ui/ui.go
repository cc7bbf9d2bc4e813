package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ANSI palette indexes and the hex used for links.
const (
	colorRed    = "1"
	colorGreen  = "2"
	colorYellow = "3"
	colorBlue   = "4"
	colorGold   = "#FFD700"
	LinkColor   = "#87CEEB"
)

type UI struct {
	Out          io.Writer
	Err          io.Writer
	Output       *termenv.Output
	ErrOutput    *termenv.Output
	ColorEnabled bool
	// RTL right-aligns detail labels for right-to-left languages.
	RTL bool
}

func New(out io.Writer, err io.Writer, mode ColorMode, disableColor bool) *UI {
	output := termenv.NewOutput(out)
	errOutput := termenv.NewOutput(err)

	return &UI{
		Out:          out,
		Err:          err,
		Output:       output,
		ErrOutput:    errOutput,
		ColorEnabled: shouldEnableColor(output, mode, disableColor),
	}
}

func shouldEnableColor(output *termenv.Output, mode ColorMode, disableColor bool) bool {
	if disableColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return output.ColorProfile() != termenv.Ascii
	}
}

func (u *UI) paint(output *termenv.Output, color string, msg string) string {
	if !u.ColorEnabled || output == nil {
		return msg
	}
	return output.String(msg).Foreground(output.Color(color)).String()
}

func line(format string, args []any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}

func (u *UI) Errorf(format string, args ...any) {
	fmt.Fprintln(u.Err, u.paint(u.ErrOutput, colorRed, line(format, args)))
}

func (u *UI) Warnf(format string, args ...any) {
	fmt.Fprintln(u.Err, u.paint(u.ErrOutput, colorYellow, line(format, args)))
}

func (u *UI) Infof(format string, args ...any) {
	fmt.Fprintln(u.Out, u.paint(u.Output, colorBlue, line(format, args)))
}

func (u *UI) Successf(format string, args ...any) {
	fmt.Fprintln(u.Out, u.paint(u.Output, colorGreen, line(format, args)))
}

// Heading prints a bold title line to stdout.
func (u *UI) Heading(title string) {
	if u.ColorEnabled {
		title = u.Output.String(title).Bold().String()
	}
	fmt.Fprintln(u.Out, title)
}

// Field prints one "label: value" detail line. Empty values are skipped.
func (u *UI) Field(label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if u.RTL {
		fmt.Fprintf(u.Out, "%s :%s\n", value, label)
		return
	}
	fmt.Fprintf(u.Out, "%s: %s\n", label, value)
}

// FeaturedBadge renders the featured marker in gold.
func (u *UI) FeaturedBadge(text string) string {
	return u.paint(u.Output, colorGold, "★ "+text)
}

// UrgentText renders a closing-soon countdown in red.
func (u *UI) UrgentText(text string) string {
	return u.paint(u.Output, colorRed, text)
}

func ColorizeLink(output *termenv.Output, enabled bool, text string) string {
	if !enabled || output == nil {
		return text
	}
	return output.String(text).Foreground(output.Color(LinkColor)).String()
}

func (u *UI) LinkText(text string) string {
	return ColorizeLink(u.Output, u.ColorEnabled, text)
}

func NormalizeColorMode(value string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(ColorAlways):
		return ColorAlways
	case string(ColorNever):
		return ColorNever
	default:
		return ColorAuto
	}
}
