package presentation

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"ifc2frag/internal/app"
	"ifc2frag/internal/domain"
)

func TestTruncateLinesKeepsHeadAndTail(t *testing.T) {
	inputs := make([]domain.InputFile, 0, 6)
	for i := 0; i < 6; i++ {
		inputs = append(inputs, domain.NewInputFile(fmt.Sprintf("/in/model%d.ifc", i), 1024*1024))
	}

	lines := truncateLines(formatInputLines(inputs))
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[2] != "..." {
		t.Fatalf("expected ellipsis, got %q", lines[2])
	}
	if lines[4] != "6. model5.ifc (1.00 MB)" {
		t.Fatalf("unexpected last line %q", lines[4])
	}
}

func TestProgressPrintsNumberedResults(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	in := domain.NewInputFile("/in/A.ifc", 2*1024*1024)
	printer.Progress(app.Progress{Kind: app.ProgressFileStarted, Index: 1, Total: 2, File: in})
	printer.Progress(app.Progress{Kind: app.ProgressFileFinished, Index: 1, Total: 2, File: in, Result: domain.Succeeded{
		File: "A.ifc", InputSizeBytes: 2 * 1024 * 1024, OutputSizeBytes: 1024 * 1024, CompressionRatio: 50, Elapsed: 1500 * time.Millisecond,
	}})
	printer.Progress(app.Progress{Kind: app.ProgressFileFinished, Index: 2, Total: 2, Result: domain.Failed{
		File: "B.ifc", Reason: "Converter error: line one\nline two", Elapsed: time.Second,
	}})

	output := buf.String()
	for _, want := range []string{
		"[1/2] A.ifc",
		"converted 2.00 MB -> 1.00 MB (50.0%) in 1.50s",
		"failed after 1.00s: Converter error: line one",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
	if strings.Contains(output, "line two") {
		t.Fatalf("expected only the first line of the reason")
	}
}

func TestPrintSummaryForEmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	Printer{Writer: &buf}.PrintSummary(domain.BatchSummary{}, "/r/report.json")

	output := buf.String()
	if !strings.Contains(output, "Converted 0, failed 0, skipped 0 of 0 file(s).") {
		t.Fatalf("unexpected summary:\n%s", output)
	}
	if strings.Contains(output, "compression") {
		t.Fatalf("expected no size line without successes")
	}
	if !strings.Contains(output, "Report: /r/report.json") {
		t.Fatalf("expected report path")
	}
}

func TestPrintFailuresListsOnlyFailed(t *testing.T) {
	var buf bytes.Buffer
	Printer{Writer: &buf}.PrintFailures([]domain.ConversionResult{
		domain.Skipped{File: "A.ifc"},
		domain.Failed{File: "B.ifc", Reason: "Conversion timeout"},
	})

	output := buf.String()
	if !strings.Contains(output, "- B.ifc: Conversion timeout") || strings.Contains(output, "A.ifc") {
		t.Fatalf("unexpected failures section:\n%s", output)
	}
}

func TestPrintReportNotSavedPointsAtRunLog(t *testing.T) {
	var buf bytes.Buffer
	Printer{Writer: &buf}.PrintReportNotSaved("/logs/ifc_conversion_20241002_150000.log")

	want := "Report could not be saved, see /logs/ifc_conversion_20241002_150000.log\n"
	if buf.String() != want {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
