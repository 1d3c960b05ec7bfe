package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/djcheckup/djcheckup-cli/internal/checker"
	sharederrors "github.com/djcheckup/djcheckup-cli/internal/shared/errors"
)

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputPDF   outputFormat = "pdf"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch strings.ToLower(s) {
	case "", "table":
		return outputTable, nil
	case "json":
		return outputJSON, nil
	case "pdf":
		return outputPDF, nil
	}
	return "", fmt.Errorf("%w: %q", sharederrors.ErrInvalidOutputFormat, s)
}

const messageWrapWidth = 72

func renderTable(w io.Writer, report checker.Report) {
	fmt.Fprintf(w, "DJ Checkup results for %s\n\n", colorInfo(report.URL))

	nameWidth := len("Check")
	for _, cr := range report.CheckResults {
		if len(cr.Name) > nameWidth {
			nameWidth = len(cr.Name)
		}
	}

	fmt.Fprintf(w, "%-*s  %-10s  %s\n", nameWidth, "Check", "Result", "Message")
	fmt.Fprintf(w, "%s  %s  %s\n",
		strings.Repeat("-", nameWidth), strings.Repeat("-", 10), strings.Repeat("-", 40))

	for _, cr := range report.CheckResults {
		lines := wrapText(cr.Message, messageWrapWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}
		fmt.Fprintf(w, "%-*s  %s  %s\n", nameWidth, cr.Name, formatOutcome(cr.Outcome), lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(w, "%-*s  %-10s  %s\n", nameWidth, "", "", line)
		}
	}

	success, failure, skipped := report.Counts()
	fmt.Fprintf(w, "\n%d passed, %d failed, %d skipped (failure score %d)\n",
		success, failure, skipped, report.FailureScore())
}

// formatOutcome pads before coloring so ANSI escapes do not skew column
// widths.
func formatOutcome(o checker.Outcome) string {
	label := fmt.Sprintf("%-10s", string(o))
	switch o {
	case checker.OutcomeSuccess:
		return colorSuccess(label)
	case checker.OutcomeFailure:
		return colorError(label)
	case checker.OutcomeSkipped:
		return colorWarn(label)
	}
	return label
}

// wrapText breaks a message into lines no longer than width, on word
// boundaries. Words longer than width are kept whole.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
