package presentation

import (
	"fmt"
	"io"
	"strings"

	"ifc2frag/internal/app"
	"ifc2frag/internal/domain"
)

type Printer struct {
	Writer  io.Writer
	Verbose bool
}

// Progress prints driver events as they arrive.
func (p Printer) Progress(ev app.Progress) {
	switch ev.Kind {
	case app.ProgressDiscovered:
		p.PrintDiscovery(ev.Inputs)
	case app.ProgressFileStarted:
		fmt.Fprintf(p.Writer, "[%d/%d] %s\n", ev.Index, ev.Total, ev.File.Name)
	case app.ProgressFileFinished:
		fmt.Fprintln(p.Writer, "      "+formatResult(ev.Result))
	}
}

func (p Printer) PrintDiscovery(inputs []domain.InputFile) {
	if len(inputs) == 0 {
		fmt.Fprintln(p.Writer, "No IFC files found. Nothing to convert.")
		return
	}
	fmt.Fprintf(p.Writer, "Found %d IFC file(s):\n", len(inputs))
	fmt.Fprintln(p.Writer)

	lines := formatInputLines(inputs)
	if !p.Verbose {
		lines = truncateLines(lines)
	}
	var total int64
	for _, in := range inputs {
		total += in.SizeBytes
	}
	for _, line := range lines {
		fmt.Fprintln(p.Writer, line)
	}
	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Total size: %.2f MB across %d file(s)\n", domain.BytesToMB(total), len(inputs))
	fmt.Fprintln(p.Writer)
}

func (p Printer) PrintSummary(summary domain.BatchSummary, reportPath string) {
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, "Summary:")
	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Converted %d, failed %d, skipped %d of %d file(s).\n",
		summary.Successful, summary.Failed, summary.Skipped, summary.TotalFiles)
	if summary.Interrupted {
		fmt.Fprintf(p.Writer, "Interrupted: %d of %d discovered file(s) were not processed.\n",
			summary.DiscoveredFiles-summary.TotalFiles, summary.DiscoveredFiles)
	}
	fmt.Fprintf(p.Writer, "Total time %.2f seconds, %.2f seconds per file.\n", summary.TotalTime, summary.AverageTimePerFile)
	if summary.Successful > 0 {
		fmt.Fprintf(p.Writer, "Size %.2f MB -> %.2f MB (%.1f%% compression).\n",
			summary.TotalInputSizeMB, summary.TotalOutputSizeMB, summary.OverallCompressionRatio)
	}
	if reportPath != "" {
		fmt.Fprintf(p.Writer, "Report: %s\n", reportPath)
	}
}

// PrintReportNotSaved tells the operator where to find the reason a report
// could not be written.
func (p Printer) PrintReportNotSaved(logPath string) {
	if logPath == "" {
		fmt.Fprintln(p.Writer, "Report could not be saved.")
		return
	}
	fmt.Fprintf(p.Writer, "Report could not be saved, see %s\n", logPath)
}

func (p Printer) PrintFailures(results []domain.ConversionResult) {
	var failed []domain.Failed
	for _, r := range results {
		if f, ok := r.(domain.Failed); ok {
			failed = append(failed, f)
		}
	}
	if len(failed) == 0 {
		return
	}
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, "Failed:")
	for _, f := range failed {
		fmt.Fprintf(p.Writer, "- %s: %s\n", f.File, firstLine(f.Reason))
	}
}

func formatResult(result domain.ConversionResult) string {
	switch r := result.(type) {
	case domain.Succeeded:
		return fmt.Sprintf("converted %.2f MB -> %.2f MB (%.1f%%) in %.2fs",
			domain.BytesToMB(r.InputSizeBytes), domain.BytesToMB(r.OutputSizeBytes), r.CompressionRatio, r.Elapsed.Seconds())
	case domain.Skipped:
		return "skipped, fragments file already exists"
	case domain.Failed:
		return fmt.Sprintf("failed after %.2fs: %s", r.Elapsed.Seconds(), firstLine(r.Reason))
	default:
		return ""
	}
}

func formatInputLines(inputs []domain.InputFile) []string {
	lines := make([]string, 0, len(inputs))
	for i, in := range inputs {
		lines = append(lines, fmt.Sprintf("%d. %s (%.2f MB)", i+1, in.Name, domain.BytesToMB(in.SizeBytes)))
	}
	return lines
}

func truncateLines(lines []string) []string {
	if len(lines) <= 4 {
		return lines
	}
	head := lines[:2:2]
	tail := lines[len(lines)-2:]
	return append(append(head, "..."), tail...)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
