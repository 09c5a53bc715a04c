package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"
)

// maxRankedRows caps the worst-excursions table.
const maxRankedRows = 10

// Generate writes the summary as a one-page-or-more PDF at path.
func Generate(s *Summary, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Range Check Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Input: %s", s.Input), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", s.GeneratedAt.Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeCounts(pdf, s)
	pdf.Ln(4)

	if png, err := verdictChart(s); err == nil {
		name := "verdict_chart"
		pdf.RegisterImageReader(name, "PNG", bytes.NewReader(png))
		pdf.ImageOptions(name, 15, pdf.GetY(), 120, 0, true,
			gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.Ln(4)
	}

	writeExcursions(pdf, s)

	return pdf.OutputFileAndClose(path)
}

func writeCounts(pdf *gofpdf.Fpdf, s *Summary) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Verdict counts", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	rows := []struct {
		label string
		count int
	}{
		{"low", s.LowCount},
		{"ok", s.OkCount},
		{"high", s.HighCount},
		{"unclassified", s.Unclassified},
	}
	for _, row := range rows {
		pdf.CellFormat(40, 6, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", row.count), "1", 1, "R", false, 0, "")
	}

	if len(s.Excursions) > 0 {
		pdf.Ln(2)
		pdf.CellFormat(0, 6,
			fmt.Sprintf("Excursions: %d  (mean |delta| %.2f, max |delta| %.2f)",
				len(s.Excursions), s.MeanAbsDelta, s.MaxAbsDelta),
			"", 1, "L", false, 0, "")
	}
}

func writeExcursions(pdf *gofpdf.Fpdf, s *Summary) {
	if len(s.Excursions) == 0 {
		return
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Worst excursions", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(25, 6, "Row", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 6, "Col", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 6, "Verdict", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 6, "Delta", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for i, e := range s.Excursions {
		if i >= maxRankedRows {
			break
		}
		kind := "low"
		if e.Kind == models.VerdictHigh {
			kind = "high"
		}
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", e.Row), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", e.Col), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, kind, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, models.FormatDelta(e.Delta), "1", 1, "R", false, 0, "")
	}
}
