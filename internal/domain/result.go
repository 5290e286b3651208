package domain

import "time"

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// ConversionResult is one of Skipped, Succeeded or Failed.
type ConversionResult interface {
	FileName() string
	Status() Status
	Duration() time.Duration
	isConversionResult()
}

type Skipped struct {
	File               string
	ExistingOutputPath string
	OutputSizeBytes    int64
	InputSizeBytes     int64
	Elapsed            time.Duration
}

type Succeeded struct {
	File             string
	OutputPath       string
	InputSizeBytes   int64
	OutputSizeBytes  int64
	Elapsed          time.Duration
	CompressionRatio float64
}

type Failed struct {
	File           string
	Reason         string
	Elapsed        time.Duration
	InputSizeBytes int64
}

func (r Skipped) FileName() string        { return r.File }
func (r Skipped) Status() Status          { return StatusSkipped }
func (r Skipped) Duration() time.Duration { return r.Elapsed }
func (Skipped) isConversionResult()       {}

func (r Succeeded) FileName() string        { return r.File }
func (r Succeeded) Status() Status          { return StatusSuccess }
func (r Succeeded) Duration() time.Duration { return r.Elapsed }
func (Succeeded) isConversionResult()       {}

func (r Failed) FileName() string        { return r.File }
func (r Failed) Status() Status          { return StatusFailed }
func (r Failed) Duration() time.Duration { return r.Elapsed }
func (Failed) isConversionResult()       {}

// CompressionRatio returns the size reduction in percent, or 0 for an empty input.
func CompressionRatio(inputSize, outputSize int64) float64 {
	if inputSize <= 0 {
		return 0
	}
	return float64(inputSize-outputSize) / float64(inputSize) * 100
}

type Counts struct {
	Successful int
	Failed     int
	Skipped    int
}

func (c *Counts) Add(result ConversionResult) {
	switch result.(type) {
	case Succeeded:
		c.Successful++
	case Failed:
		c.Failed++
	case Skipped:
		c.Skipped++
	}
}

func (c Counts) Total() int {
	return c.Successful + c.Failed + c.Skipped
}
