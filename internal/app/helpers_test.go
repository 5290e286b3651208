package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ifc2frag/internal/domain"
	infrafs "ifc2frag/internal/infra/fs"
)

type fakeRunner struct {
	calls  []string
	behave func(inv domain.Invocation) (domain.ProcessOutcome, error)
}

func (f *fakeRunner) Run(ctx context.Context, inv domain.Invocation) (domain.ProcessOutcome, error) {
	f.calls = append(f.calls, inv.FileName)
	if f.behave == nil {
		return domain.ProcessOutcome{}, nil
	}
	return f.behave(inv)
}

func (f *fakeRunner) CommandLine(inv domain.Invocation) string {
	return "fake-converter " + inv.FileName
}

// convertingRunner writes a fragments file of outSize bytes for every input,
// except the ones listed in failing which exit non-zero.
func convertingRunner(outSize int, failing ...string) *fakeRunner {
	return &fakeRunner{behave: func(inv domain.Invocation) (domain.ProcessOutcome, error) {
		for _, name := range failing {
			if name == inv.FileName {
				return domain.ProcessOutcome{ExitCode: 2, Stderr: "cannot parse " + name}, nil
			}
		}
		stem := strings.TrimSuffix(inv.FileName, filepath.Ext(inv.FileName))
		path := filepath.Join(inv.TargetDir, stem+domain.FragmentExtension)
		if err := os.WriteFile(path, make([]byte, outSize), 0o644); err != nil {
			return domain.ProcessOutcome{}, err
		}
		return domain.ProcessOutcome{Stdout: "ok"}, nil
	}}
}

type fakeClock struct {
	now  time.Time
	step time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{now: time.Date(2024, 10, 2, 15, 0, 0, 0, time.UTC), step: step}
}

// Now advances the clock by step on every call.
func (c *fakeClock) Now() time.Time {
	current := c.now
	c.now = c.now.Add(c.step)
	return current
}

type workspace struct {
	source string
	target string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	root := t.TempDir()
	ws := workspace{
		source: filepath.Join(root, "data", "ifc"),
		target: filepath.Join(root, "data", "fragments"),
	}
	require.NoError(t, os.MkdirAll(ws.source, 0o755))
	require.NoError(t, os.MkdirAll(ws.target, 0o755))
	return ws
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func (ws workspace) addInput(t *testing.T, name string, size int) domain.InputFile {
	t.Helper()
	path := filepath.Join(ws.source, name)
	writeFile(t, path, size)
	return domain.NewInputFile(path, int64(size))
}

func newDriver(runner ConverterRunner) *Driver {
	fsys := infrafs.OSFS{}
	return &Driver{
		FS:       fsys,
		Invoker:  &Invoker{FS: fsys, Runner: runner},
		NewRunID: func() string { return "run-1" },
	}
}
