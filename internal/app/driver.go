package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ifc2frag/internal/domain"
	appErrors "ifc2frag/internal/errors"
	"ifc2frag/internal/logging"
)

type ProgressKind int

const (
	ProgressDiscovered ProgressKind = iota
	ProgressFileStarted
	ProgressFileFinished
)

// Progress is emitted while a batch runs. Index is 1-based and only set for
// file events; Inputs is only set for ProgressDiscovered.
type Progress struct {
	Kind   ProgressKind
	Index  int
	Total  int
	File   domain.InputFile
	Inputs []domain.InputFile
	Result domain.ConversionResult
	Counts domain.Counts
}

// ProgressFunc is called synchronously from the driver goroutine.
type ProgressFunc func(Progress)

// RunContext holds the state of one batch run. It is created by Driver.Run and
// owned by it for the duration of the run.
type RunContext struct {
	ID        string
	SourceDir string
	TargetDir string
	Logger    logging.Logger
	StartedAt time.Time
	Results   []domain.ConversionResult
	Counts    domain.Counts
}

func (rc *RunContext) record(result domain.ConversionResult) {
	rc.Results = append(rc.Results, result)
	rc.Counts.Add(result)
}

type Outcome struct {
	Summary     domain.BatchSummary
	Results     []domain.ConversionResult
	Interrupted bool
}

func (o Outcome) Report() domain.Report {
	return BuildReport(o.Summary, o.Results)
}

type Driver struct {
	FS         FileSystem
	Invoker    *Invoker
	Preflight  *Preflight
	Logger     logging.Logger
	Timeout    time.Duration
	OnProgress ProgressFunc
	Now        func() time.Time
	NewRunID   func() string
}

// Run converts every IFC file in sourceDir, one at a time. Environment problems
// are returned before any file is processed. When ctx is cancelled the current
// file is allowed to finish, no further files are started, and the partial
// outcome is returned together with an Interrupted error.
func (d *Driver) Run(ctx context.Context, sourceDir, targetDir string) (Outcome, error) {
	if d.FS == nil || d.Invoker == nil {
		return Outcome{}, appErrors.Wrap(appErrors.Internal, "run", "", errors.New("driver requires FS and Invoker"))
	}

	rc := d.newRunContext(sourceDir, targetDir)
	log := rc.Logger
	log.Infof("Starting IFC to Fragments conversion process")
	log.Infof("Source directory: %s", sourceDir)
	log.Infof("Target directory: %s", targetDir)

	if d.Preflight != nil {
		if err := d.Preflight.Check(sourceDir, targetDir, log); err != nil {
			log.Errorf("Environment validation failed: %v", err)
			return Outcome{}, err
		}
	}

	stop := log.Measure("Discovering IFC files")
	inputs, err := Discover(d.FS, sourceDir)
	stop()
	if err != nil {
		return Outcome{}, appErrors.Wrap(appErrors.IOFailure, "scan", sourceDir, err)
	}
	d.logDiscovery(log, inputs)
	d.emit(Progress{Kind: ProgressDiscovered, Total: len(inputs), Inputs: inputs})

	if len(inputs) == 0 {
		log.Warnf("No IFC files found in %s. Nothing to convert.", sourceDir)
		return d.finish(rc, 0, false), nil
	}

	invoker := *d.Invoker
	invoker.Logger = log
	if invoker.Now == nil {
		invoker.Now = d.Now
	}

	interrupted := false
	log.Infof("Processing %d file(s)...", len(inputs))
	for i, in := range inputs {
		if ctx.Err() != nil {
			interrupted = true
			log.Warnf("Interrupted, %d of %d file(s) were not processed", len(inputs)-i, len(inputs))
			break
		}
		log.Infof("Processing file %d/%d: %s", i+1, len(inputs), in.Name)
		d.emit(Progress{Kind: ProgressFileStarted, Index: i + 1, Total: len(inputs), File: in, Counts: rc.Counts})

		result := invoker.Convert(ctx, in, sourceDir, targetDir, d.Timeout)
		rc.record(result)

		d.emit(Progress{Kind: ProgressFileFinished, Index: i + 1, Total: len(inputs), File: in, Result: result, Counts: rc.Counts})
	}

	outcome := d.finish(rc, len(inputs), interrupted)
	if interrupted {
		return outcome, appErrors.Wrap(appErrors.Interrupted, "run", "", context.Cause(ctx))
	}
	return outcome, nil
}

func (d *Driver) newRunContext(sourceDir, targetDir string) *RunContext {
	newID := d.NewRunID
	if newID == nil {
		newID = uuid.NewString
	}
	id := newID()
	return &RunContext{
		ID:        id,
		SourceDir: sourceDir,
		TargetDir: targetDir,
		Logger:    d.Logger.With("run_id", id),
		StartedAt: d.now(),
	}
}

func (d *Driver) finish(rc *RunContext, discovered int, interrupted bool) Outcome {
	end := d.now()
	summary := BuildSummary(rc.Results, rc.SourceDir, rc.TargetDir, end.Sub(rc.StartedAt))
	summary.RunID = rc.ID
	summary.Timestamp = end.Format(time.RFC3339)
	summary.DiscoveredFiles = discovered
	summary.Interrupted = interrupted

	rc.Logger.Infof("Conversion finished: %d total, %d successful, %d failed, %d skipped in %.2f seconds",
		summary.TotalFiles, summary.Successful, summary.Failed, summary.Skipped, summary.TotalTime)

	return Outcome{
		Summary:     summary,
		Results:     rc.Results,
		Interrupted: interrupted,
	}
}

func (d *Driver) logDiscovery(log logging.Logger, inputs []domain.InputFile) {
	if len(inputs) == 0 {
		return
	}
	log.Infof("Found %d IFC file(s)", len(inputs))
	for i, in := range inputs {
		log.Infof("%d. %s (%.2f MB)", i+1, in.Name, domain.BytesToMB(in.SizeBytes))
	}
	log.Infof("Total size: %.2f MB across %d file(s)", domain.BytesToMB(totalInputBytes(inputs)), len(inputs))
}

func (d *Driver) emit(p Progress) {
	if d.OnProgress != nil {
		d.OnProgress(p)
	}
}

func (d *Driver) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
