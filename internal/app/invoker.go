package app

import (
	"context"
	"strings"
	"time"

	"ifc2frag/internal/domain"
	"ifc2frag/internal/logging"
)

const DefaultTimeout = 300 * time.Second

const (
	reasonTimeout  = "Conversion timeout"
	reasonNoOutput = "No output file created"
)

// Invoker converts a single input file, turning every per-file problem into a
// Failed result instead of an error.
type Invoker struct {
	FS     FileSystem
	Runner ConverterRunner
	Logger logging.Logger
	Now    func() time.Time
}

func (c *Invoker) Convert(ctx context.Context, in domain.InputFile, sourceDir, targetDir string, timeout time.Duration) domain.ConversionResult {
	start := c.now()
	oracle := Oracle{FS: c.FS}
	outputPath := OutputPath(targetDir, in)
	log := c.Logger.With("file", in.Name)

	if exists, existing := oracle.Exists(targetDir, in); exists {
		outputSize, _ := oracle.size(existing)
		log.Infof("Skipping %s - fragments file already exists: %s", in.Name, domain.FragmentName(in))
		return domain.Skipped{
			File:               in.Name,
			ExistingOutputPath: existing,
			OutputSizeBytes:    outputSize,
			InputSizeBytes:     c.inputSize(in),
			Elapsed:            c.since(start),
		}
	}

	if c.Runner == nil {
		return c.failed(in, "Exception: no converter configured", start)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	inv := domain.Invocation{
		SourceDir: sourceDir,
		TargetDir: targetDir,
		FileName:  in.Name,
		Timeout:   timeout,
	}
	log.Infof("Converting: %s", in.Name)
	log.Infof("Executing: %s", c.Runner.CommandLine(inv))

	// Operator cancellation must not kill a conversion that has already started.
	outcome, err := c.Runner.Run(context.WithoutCancel(ctx), inv)

	switch {
	case err != nil:
		log.Errorf("Exception during conversion of %s: %v", in.Name, err)
		return c.failed(in, "Exception: "+err.Error(), start)
	case outcome.TimedOut:
		log.Errorf("Conversion timeout for %s (%s)", in.Name, timeout)
		return c.failed(in, reasonTimeout, start)
	case outcome.ExitCode != 0:
		log.Errorf("Conversion failed for %s, return code %d", in.Name, outcome.ExitCode)
		if stderr := strings.TrimSpace(outcome.Stderr); stderr != "" {
			log.Errorf("Error: %s", stderr)
		}
		if stdout := strings.TrimSpace(outcome.Stdout); stdout != "" {
			log.Infof("Output: %s", stdout)
		}
		return c.failed(in, "Converter error: "+outcome.Stderr, start)
	}

	outputSize, ok := oracle.size(outputPath)
	if !ok || outputSize == 0 {
		log.Errorf("Conversion completed but no output file created: %s", in.Name)
		return c.failed(in, reasonNoOutput, start)
	}

	inputSize := c.inputSize(in)
	result := domain.Succeeded{
		File:             in.Name,
		OutputPath:       outputPath,
		InputSizeBytes:   inputSize,
		OutputSizeBytes:  outputSize,
		CompressionRatio: domain.CompressionRatio(inputSize, outputSize),
	}
	result.Elapsed = c.since(start)
	log.Infof("Successfully converted: %s", in.Name)
	log.Infof("Size: %.2f MB -> %.2f MB, compression %.1f%%, time %.2f seconds",
		domain.BytesToMB(inputSize), domain.BytesToMB(outputSize), result.CompressionRatio, result.Elapsed.Seconds())
	return result
}

func (c *Invoker) failed(in domain.InputFile, reason string, start time.Time) domain.Failed {
	return domain.Failed{
		File:           in.Name,
		Reason:         reason,
		InputSizeBytes: c.inputSize(in),
		Elapsed:        c.since(start),
	}
}

// inputSize re-reads the size from disk and falls back to the discovered size.
func (c *Invoker) inputSize(in domain.InputFile) int64 {
	info, err := c.FS.Stat(in.Path)
	if err != nil {
		return in.SizeBytes
	}
	return info.Size()
}

func (c *Invoker) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Invoker) since(start time.Time) time.Duration {
	return c.now().Sub(start)
}
