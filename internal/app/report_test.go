package app

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"ifc2frag/internal/domain"
)

const mb = 1024 * 1024

func sampleResults() []domain.ConversionResult {
	return []domain.ConversionResult{
		domain.Succeeded{File: "A.ifc", OutputPath: "/t/A.frag", InputSizeBytes: 4 * mb, OutputSizeBytes: 1 * mb, Elapsed: 2 * time.Second, CompressionRatio: 75},
		domain.Failed{File: "B.ifc", Reason: "Conversion timeout", Elapsed: 300 * time.Second, InputSizeBytes: 8 * mb},
		domain.Skipped{File: "C.ifc", ExistingOutputPath: "/t/C.frag", OutputSizeBytes: mb / 2, InputSizeBytes: 2 * mb, Elapsed: time.Millisecond},
		domain.Succeeded{File: "D.ifc", OutputPath: "/t/D.frag", InputSizeBytes: 4 * mb, OutputSizeBytes: 3 * mb, Elapsed: 4 * time.Second, CompressionRatio: 25},
	}
}

func TestBuildSummaryAggregatesSuccessesOnly(t *testing.T) {
	got := BuildSummary(sampleResults(), "/s", "/t", 320*time.Second)

	want := domain.BatchSummary{
		SourceDirectory:         "/s",
		TargetDirectory:         "/t",
		TotalFiles:              4,
		Successful:              2,
		Failed:                  1,
		Skipped:                 1,
		TotalTime:               320,
		AverageTimePerFile:      80,
		TotalInputSizeMB:        8,
		TotalOutputSizeMB:       4,
		TotalInputSizeBytes:     8 * mb,
		TotalOutputSizeBytes:    4 * mb,
		OverallCompressionRatio: 50,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	got := BuildSummary(nil, "/s", "/t", 1500*time.Millisecond)

	want := domain.BatchSummary{SourceDirectory: "/s", TargetDirectory: "/t"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildReportRecordsFollowProcessingOrder(t *testing.T) {
	report := BuildReport(domain.BatchSummary{}, sampleResults())

	want := []domain.FileRecord{
		{File: "A.ifc", Status: domain.StatusSuccess, OutputFile: "/t/A.frag", ConversionTime: 2, FileSizeMB: 4, OutputSizeMB: 1, InputSizeBytes: 4 * mb, OutputSizeBytes: mb, CompressionRatio: 75},
		{File: "B.ifc", Status: domain.StatusFailed, Error: "Conversion timeout", ConversionTime: 300, FileSizeMB: 8, InputSizeBytes: 8 * mb},
		{File: "C.ifc", Status: domain.StatusSkipped, OutputFile: "/t/C.frag", Reason: "Fragments file already exists", ConversionTime: 0.001, FileSizeMB: 2, OutputSizeMB: 0.5, InputSizeBytes: 2 * mb, OutputSizeBytes: mb / 2},
		{File: "D.ifc", Status: domain.StatusSuccess, OutputFile: "/t/D.frag", ConversionTime: 4, FileSizeMB: 4, OutputSizeMB: 3, InputSizeBytes: 4 * mb, OutputSizeBytes: 3 * mb, CompressionRatio: 25},
	}
	if diff := cmp.Diff(want, report.FileResults, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestReportDocumentHasRequiredFields(t *testing.T) {
	report := BuildReport(BuildSummary(nil, "/s", "/t", 0), nil)
	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc struct {
		Summary     map[string]any  `json:"conversion_summary"`
		FileResults json.RawMessage `json:"file_results"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(doc.FileResults) != "[]" {
		t.Fatalf("expected empty file_results array, got %s", doc.FileResults)
	}

	required := []string{
		"timestamp", "source_directory", "target_directory", "total_files",
		"successful", "failed", "skipped", "total_time", "average_time_per_file",
		"total_input_size_mb", "total_output_size_mb", "overall_compression_ratio",
	}
	for _, key := range required {
		if _, ok := doc.Summary[key]; !ok {
			t.Errorf("missing %s in conversion_summary", key)
		}
	}
}
