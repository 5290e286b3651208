package domain

type BatchSummary struct {
	RunID                   string  `json:"run_id" yaml:"run_id"`
	Timestamp               string  `json:"timestamp" yaml:"timestamp"`
	SourceDirectory         string  `json:"source_directory" yaml:"source_directory"`
	TargetDirectory         string  `json:"target_directory" yaml:"target_directory"`
	TotalFiles              int     `json:"total_files" yaml:"total_files"`
	DiscoveredFiles         int     `json:"discovered_files" yaml:"discovered_files"`
	Successful              int     `json:"successful" yaml:"successful"`
	Failed                  int     `json:"failed" yaml:"failed"`
	Skipped                 int     `json:"skipped" yaml:"skipped"`
	Interrupted             bool    `json:"interrupted" yaml:"interrupted"`
	TotalTime               float64 `json:"total_time" yaml:"total_time"`
	AverageTimePerFile      float64 `json:"average_time_per_file" yaml:"average_time_per_file"`
	TotalInputSizeMB        float64 `json:"total_input_size_mb" yaml:"total_input_size_mb"`
	TotalOutputSizeMB       float64 `json:"total_output_size_mb" yaml:"total_output_size_mb"`
	TotalInputSizeBytes     int64   `json:"total_input_size_bytes" yaml:"total_input_size_bytes"`
	TotalOutputSizeBytes    int64   `json:"total_output_size_bytes" yaml:"total_output_size_bytes"`
	OverallCompressionRatio float64 `json:"overall_compression_ratio" yaml:"overall_compression_ratio"`
}

type FileRecord struct {
	File             string  `json:"file" yaml:"file"`
	Status           Status  `json:"status" yaml:"status"`
	OutputFile       string  `json:"output_file,omitempty" yaml:"output_file,omitempty"`
	Error            string  `json:"error,omitempty" yaml:"error,omitempty"`
	Reason           string  `json:"reason,omitempty" yaml:"reason,omitempty"`
	ConversionTime   float64 `json:"conversion_time" yaml:"conversion_time"`
	FileSizeMB       float64 `json:"file_size_mb" yaml:"file_size_mb"`
	OutputSizeMB     float64 `json:"output_size_mb" yaml:"output_size_mb"`
	InputSizeBytes   int64   `json:"input_size_bytes" yaml:"input_size_bytes"`
	OutputSizeBytes  int64   `json:"output_size_bytes" yaml:"output_size_bytes"`
	CompressionRatio float64 `json:"compression_ratio" yaml:"compression_ratio"`
}

// Report is the document persisted under reports/ after every run.
type Report struct {
	Summary     BatchSummary `json:"conversion_summary" yaml:"conversion_summary"`
	FileResults []FileRecord `json:"file_results" yaml:"file_results"`
}
