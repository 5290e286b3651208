package main

import (
	"context"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"ifc2frag/internal/app"
	"ifc2frag/internal/config"
	appErrors "ifc2frag/internal/errors"
	"ifc2frag/internal/infra/converter"
	"ifc2frag/internal/infra/fs"
	"ifc2frag/internal/infra/report"
	"ifc2frag/internal/logging"
	"ifc2frag/internal/presentation"
	"ifc2frag/internal/tui"
)

// batch is one fully wired conversion run.
type batch struct {
	cfg     config.Config
	driver  *app.Driver
	reports report.Writer
	logger  logging.Logger
	logPath string
}

func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	runLog, err := logging.OpenRunLog(cfg.LogDir, time.Now())
	if err != nil {
		return appErrors.Wrap(appErrors.Environment, "log file", cfg.LogDir, err)
	}
	defer runLog.Close()

	interactive := !cfg.NoTUI && isTerminal(stdout)

	logOut := runLog.Writer()
	if !interactive && cfg.Verbose {
		logOut = io.MultiWriter(logOut, stderr)
	}
	logger := logging.New(logOut, cfg.Verbose)
	if cfg.ConfigFile != "" {
		logger.Infof("Using config file: %s", cfg.ConfigFile)
	}
	logger.Infof("Project root: %s", cfg.RootDir)
	logger.Infof("Logging to: %s", runLog.Path)

	b := newBatch(cfg, logger)
	b.logPath = runLog.Path
	printer := presentation.Printer{Writer: stdout, Verbose: cfg.Verbose}

	if interactive {
		return b.runInteractive(ctx, printer)
	}
	return b.runPlain(ctx, printer)
}

func (b *batch) runPlain(ctx context.Context, printer presentation.Printer) error {
	b.driver.OnProgress = printer.Progress
	outcome, reportPath, err := b.execute(ctx)
	b.printOutcome(printer, outcome, reportPath)
	return err
}

func (b *batch) printOutcome(printer presentation.Printer, outcome app.Outcome, reportPath string) {
	if outcome.Summary.RunID == "" {
		return
	}
	printer.PrintSummary(outcome.Summary, reportPath)
	if reportPath == "" {
		printer.PrintReportNotSaved(b.logPath)
	}
	printer.PrintFailures(outcome.Results)
}

func newBatch(cfg config.Config, logger logging.Logger) *batch {
	filesystem := fs.OSFS{}
	runner := converter.Runner{
		Runtime:    cfg.Runtime,
		PackageDir: cfg.ConverterDir,
		Script:     cfg.ConverterScript,
	}

	driver := &app.Driver{
		FS: filesystem,
		Invoker: &app.Invoker{
			FS:     filesystem,
			Runner: runner,
		},
		Preflight: &app.Preflight{
			FS:           filesystem,
			Runtime:      cfg.Runtime,
			PackageDir:   cfg.ConverterDir,
			Entrypoint:   runner.Entrypoint(),
			WritableDirs: []string{cfg.ReportDir},
		},
		Logger:  logger,
		Timeout: cfg.Timeout,
	}

	return &batch{
		cfg:     cfg,
		driver:  driver,
		reports: report.Writer{Dir: cfg.ReportDir, Format: cfg.ReportFormat},
		logger:  logger,
	}
}

// execute runs the driver and writes the report for any run that got past
// preflight, including interrupted ones. A failed report write is logged and
// does not fail the run.
func (b *batch) execute(ctx context.Context) (app.Outcome, string, error) {
	outcome, err := b.driver.Run(ctx, b.cfg.SourceDir, b.cfg.TargetDir)
	if outcome.Summary.RunID == "" {
		return outcome, "", err
	}

	reportPath, writeErr := b.reports.Write(outcome.Report(), time.Now())
	if writeErr != nil {
		b.logger.Errorf("Failed to save report: %v", writeErr)
		reportPath = ""
	} else {
		b.logger.Infof("Report saved: %s", reportPath)
	}
	return outcome, reportPath, err
}

type executeResult struct {
	outcome    app.Outcome
	reportPath string
	err        error
}

func (b *batch) runInteractive(ctx context.Context, printer presentation.Printer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := tui.NewModel(tui.Config{
		SourceDir: b.cfg.SourceDir,
		TargetDir: b.cfg.TargetDir,
		Cancel:    cancel,
	})
	program := tea.NewProgram(model)

	b.driver.OnProgress = func(ev app.Progress) {
		program.Send(tui.FromProgress(ev))
	}

	done := make(chan executeResult, 1)
	go func() {
		outcome, reportPath, err := b.execute(ctx)
		if err != nil && !appErrors.IsKind(err, appErrors.Interrupted) {
			program.Send(tui.ErrorMsg{Err: err})
		} else {
			program.Send(tui.BatchDoneMsg{Summary: outcome.Summary, ReportPath: reportPath})
		}
		done <- executeResult{outcome: outcome, reportPath: reportPath, err: err}
	}()

	final, tuiErr := program.Run()
	if tuiErr != nil {
		b.logger.Errorf("Terminal UI failed: %v", tuiErr)
		cancel()
	}
	res := <-done

	// The final frame is cleared when the user quits early, so the summary
	// goes to the plain printer instead.
	m, ok := final.(tui.Model)
	if !ok || m.Phase != tui.PhaseDone || m.Quitting {
		b.printOutcome(printer, res.outcome, res.reportPath)
	}
	return res.err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
