package app

import (
	"time"

	"ifc2frag/internal/domain"
)

const reasonAlreadyConverted = "Fragments file already exists"

// BuildSummary aggregates a result sequence. It depends on nothing but its
// arguments. Every aggregate of an empty sequence is 0, including the times.
func BuildSummary(results []domain.ConversionResult, sourceDir, targetDir string, totalElapsed time.Duration) domain.BatchSummary {
	summary := domain.BatchSummary{
		SourceDirectory: sourceDir,
		TargetDirectory: targetDir,
		TotalFiles:      len(results),
	}
	if len(results) == 0 {
		return summary
	}
	summary.TotalTime = totalElapsed.Seconds()

	for _, result := range results {
		switch r := result.(type) {
		case domain.Succeeded:
			summary.Successful++
			summary.TotalInputSizeBytes += r.InputSizeBytes
			summary.TotalOutputSizeBytes += r.OutputSizeBytes
		case domain.Failed:
			summary.Failed++
		case domain.Skipped:
			summary.Skipped++
		}
	}

	summary.AverageTimePerFile = summary.TotalTime / float64(summary.TotalFiles)
	summary.TotalInputSizeMB = domain.BytesToMB(summary.TotalInputSizeBytes)
	summary.TotalOutputSizeMB = domain.BytesToMB(summary.TotalOutputSizeBytes)
	summary.OverallCompressionRatio = domain.CompressionRatio(summary.TotalInputSizeBytes, summary.TotalOutputSizeBytes)
	return summary
}

// BuildReport pairs a summary with one record per result, in processing order.
func BuildReport(summary domain.BatchSummary, results []domain.ConversionResult) domain.Report {
	records := make([]domain.FileRecord, 0, len(results))
	for _, result := range results {
		records = append(records, fileRecord(result))
	}
	return domain.Report{Summary: summary, FileResults: records}
}

func fileRecord(result domain.ConversionResult) domain.FileRecord {
	record := domain.FileRecord{
		File:           result.FileName(),
		Status:         result.Status(),
		ConversionTime: result.Duration().Seconds(),
	}
	switch r := result.(type) {
	case domain.Succeeded:
		record.OutputFile = r.OutputPath
		record.InputSizeBytes = r.InputSizeBytes
		record.OutputSizeBytes = r.OutputSizeBytes
		record.CompressionRatio = r.CompressionRatio
	case domain.Failed:
		record.Error = r.Reason
		record.InputSizeBytes = r.InputSizeBytes
	case domain.Skipped:
		record.Reason = reasonAlreadyConverted
		record.OutputFile = r.ExistingOutputPath
		record.InputSizeBytes = r.InputSizeBytes
		record.OutputSizeBytes = r.OutputSizeBytes
	}
	record.FileSizeMB = domain.BytesToMB(record.InputSizeBytes)
	record.OutputSizeMB = domain.BytesToMB(record.OutputSizeBytes)
	return record
}
