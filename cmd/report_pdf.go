package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/djcheckup/djcheckup-cli/internal/checker"
)

func generatePDFReportBytes(report checker.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "DJ Checkup Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Metadata
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Target: %s", report.URL), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", time.Now().UTC().Format(time.RFC3339)), "", 1, "", false, 0, "")
	pdf.Ln(4)

	// Summary
	success, failure, skipped := report.Counts()
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Passed: %d | Failed: %d | Skipped: %d | Failure score: %d",
		success, failure, skipped, report.FailureScore()), "", 1, "", false, 0, "")
	pdf.Ln(4)

	// Per-check detail
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Check Results", "", 1, "", false, 0, "")
	pdf.Ln(1)

	for _, cr := range report.CheckResults {
		if pdf.GetY() > 250 {
			pdf.AddPage()
		}

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(0, 7, fmt.Sprintf("%s - %s", cr.Name, strings.ToUpper(string(cr.Outcome))),
			"", 1, "", true, 0, "")

		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, fmt.Sprintf("Severity weight: %d", int(cr.SeverityScore)), "", 1, "", false, 0, "")
		pdf.MultiCell(0, 5, cr.Message, "", "", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
