package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/djcheckup/djcheckup-cli/internal/checker"
	sharederrors "github.com/djcheckup/djcheckup-cli/internal/shared/errors"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    outputFormat
		wantErr bool
	}{
		{"", outputTable, false},
		{"table", outputTable, false},
		{"json", outputJSON, false},
		{"JSON", outputJSON, false},
		{"pdf", outputPDF, false},
		{"xml", "", true},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		got, err := parseOutputFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseOutputFormat(%q): expected error", tt.in)
			} else if !errors.Is(err, sharederrors.ErrInvalidOutputFormat) {
				t.Errorf("parseOutputFormat(%q): error = %v, want ErrInvalidOutputFormat", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseOutputFormat(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderTable(t *testing.T) {
	color.NoColor = true

	report := checker.Report{
		URL: "https://example.com",
		CheckResults: []checker.CheckResponse{
			{Name: "Can I connect to your site?", Outcome: checker.OutcomeSuccess, SeverityScore: checker.SeverityHigh, Message: "Connected."},
			{Name: "Is a CSRF cookie set?", Outcome: checker.OutcomeFailure, SeverityScore: checker.SeverityLow, Message: "No CSRF cookie was found."},
			{Name: "Is the CSRF cookie Secure?", Outcome: checker.OutcomeSkipped, SeverityScore: checker.SeverityNone, Message: "Skipped."},
		},
	}

	var buf bytes.Buffer
	renderTable(&buf, report)
	out := buf.String()

	for _, want := range []string{
		"https://example.com",
		"Can I connect to your site?",
		"success",
		"failure",
		"skipped",
		"1 passed, 1 failed, 1 skipped",
		"(failure score 5)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

// Loaded catalogs may omit messages entirely; the table must render an
// empty message as a blank cell instead of crashing.
func TestRenderTable_EmptyMessage(t *testing.T) {
	color.NoColor = true

	report := checker.Report{
		URL: "https://example.com",
		CheckResults: []checker.CheckResponse{
			{Name: "quiet check", Outcome: checker.OutcomeFailure, SeverityScore: checker.SeverityLow, Message: ""},
		},
	}

	var buf bytes.Buffer
	renderTable(&buf, report)

	if !strings.Contains(buf.String(), "quiet check") {
		t.Errorf("table output missing the check row:\n%s", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	want := []string{"one two", "three", "four five"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	if got := wrapText("", 10); got != nil {
		t.Errorf("empty input should produce no lines, got %q", got)
	}
}

func TestGeneratePDFReportBytes(t *testing.T) {
	report := checker.Report{
		URL: "https://example.com",
		CheckResults: []checker.CheckResponse{
			{Name: "probe", Outcome: checker.OutcomeSuccess, SeverityScore: checker.SeverityHigh, Message: "ok"},
		},
	}

	data, err := generatePDFReportBytes(report)
	if err != nil {
		t.Fatalf("generatePDFReportBytes: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF document (%d bytes)", len(data))
	}
}
