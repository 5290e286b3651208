package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"ifc2frag/internal/domain"
)

const (
	DefaultScript    = "ifc_fragments_converter.py"
	DefaultRuntime   = "python3"
	defaultWaitDelay = 5 * time.Second
)

// Runner invokes the external fragments converter as a child process.
type Runner struct {
	Runtime    string
	PackageDir string
	Script     string
	// WaitDelay bounds how long Run waits for output pipes after the
	// process has been killed.
	WaitDelay time.Duration
}

func (r Runner) Entrypoint() string {
	script := r.Script
	if script == "" {
		script = DefaultScript
	}
	if filepath.IsAbs(script) {
		return script
	}
	return filepath.Join(r.PackageDir, script)
}

// Args returns the argument vector passed to the runtime.
func (r Runner) Args(inv domain.Invocation) []string {
	return []string{r.Entrypoint(), inv.SourceDir, inv.TargetDir, "--single", inv.FileName, "--auto"}
}

// CommandLine renders the invocation for logs.
func (r Runner) CommandLine(inv domain.Invocation) string {
	line := r.runtime()
	for _, arg := range r.Args(inv) {
		line += " " + arg
	}
	return line
}

func (r Runner) runtime() string {
	if r.Runtime == "" {
		return DefaultRuntime
	}
	return r.Runtime
}

// Run blocks until the converter exits or inv.Timeout elapses. On timeout the
// whole process group is killed and the outcome is marked TimedOut. A non-nil
// error means the process could not be run at all.
func (r Runner) Run(ctx context.Context, inv domain.Invocation) (domain.ProcessOutcome, error) {
	if inv.Timeout <= 0 {
		return domain.ProcessOutcome{}, fmt.Errorf("converter timeout must be positive, got %s", inv.Timeout)
	}
	ctx, cancel := context.WithTimeout(ctx, inv.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.runtime(), r.Args(inv)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = r.WaitDelay
	if cmd.WaitDelay <= 0 {
		cmd.WaitDelay = defaultWaitDelay
	}
	killProcessGroupOnCancel(cmd)

	runErr := cmd.Run()
	outcome := domain.ProcessOutcome{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		outcome.TimedOut = true
		outcome.ExitCode = -1
		return outcome, nil
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
			return outcome, nil
		}
		return outcome, runErr
	}
	return outcome, nil
}
