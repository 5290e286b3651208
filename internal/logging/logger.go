package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// StampLayout names per-run artifacts such as logs and reports.
const StampLayout = "20060102_150405"

// Logger provides leveled run logging and lightweight timing helpers.
// The zero value discards everything.
type Logger struct {
	slog    *slog.Logger
	Verbose bool
}

func New(writer io.Writer, verbose bool) Logger {
	if writer == nil {
		return Logger{Verbose: verbose}
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})
	return Logger{slog: slog.New(handler), Verbose: verbose}
}

// With returns a logger that adds the given attributes to every record.
func (l Logger) With(args ...any) Logger {
	if l.slog == nil {
		return l
	}
	return Logger{slog: l.slog.With(args...), Verbose: l.Verbose}
}

func (l Logger) Infof(format string, args ...any) {
	l.log(slog.LevelInfo, format, args...)
}

func (l Logger) Warnf(format string, args ...any) {
	l.log(slog.LevelWarn, format, args...)
}

func (l Logger) Errorf(format string, args ...any) {
	l.log(slog.LevelError, format, args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	if !l.Verbose {
		return
	}
	l.log(slog.LevelDebug, format, args...)
}

func (l Logger) log(level slog.Level, format string, args ...any) {
	if l.slog == nil {
		return
	}
	l.slog.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.Verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}

// RunLog is the timestamped log file written for a single invocation.
type RunLog struct {
	Path string
	file *os.File
}

func OpenRunLog(dir string, now time.Time) (*RunLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("ifc_conversion_%s.log", now.Format(StampLayout)))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return &RunLog{Path: path, file: f}, nil
}

func (r *RunLog) Writer() io.Writer {
	if r == nil || r.file == nil {
		return io.Discard
	}
	return r.file
}

// Close releases the file handle.
func (r *RunLog) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}
