package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/jimezsa/scholarcli/internal/filter"
	"github.com/jimezsa/scholarcli/internal/models"
)

var pdfColumns = []struct {
	header string
	width  float64
}{
	{"Name", 72},
	{"Country", 28},
	{"Degree", 26},
	{"Deadline", 24},
	{"Days left", 18},
	{"Amount", 22},
}

// writePDF renders an A4 table. Core PDF fonts only cover cp1252, so headers
// stay in English regardless of the UI language.
func writePDF(w io.Writer, records []models.Scholarship, now time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetTitle("Scholarships", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "SCHOLARSHIPS", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("%d results, generated %s", len(records), now.Format("2006-01-02")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 9)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 8, col.header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, record := range records {
		daysLeft := "-"
		urgent := false
		if days, ok := filter.DaysUntil(record.Deadline, now); ok {
			daysLeft = strconv.Itoa(days)
			urgent = filter.Urgent(days)
		}
		cells := []string{
			fitText(pdf, tr(record.Name), pdfColumns[0].width),
			fitText(pdf, tr(record.Country), pdfColumns[1].width),
			fitText(pdf, tr(record.DegreeLevel), pdfColumns[2].width),
			models.Deref(record.Deadline),
			daysLeft,
			fitText(pdf, tr(models.Deref(record.Amount)), pdfColumns[5].width),
		}
		for i, cell := range cells {
			if i == 4 && urgent {
				pdf.SetTextColor(200, 30, 30)
			}
			pdf.CellFormat(pdfColumns[i].width, 7, cell, "1", 0, "", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// fitText trims already translated (single-byte) text until it fits a cell
// of the given width.
func fitText(pdf *gofpdf.Fpdf, text string, width float64) string {
	const padding = 2
	if pdf.GetStringWidth(text) <= width-padding {
		return text
	}
	for len(text) > 0 && pdf.GetStringWidth(text+"...") > width-padding {
		text = text[:len(text)-1]
	}
	return text + "..."
}
