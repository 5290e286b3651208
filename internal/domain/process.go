package domain

import "time"

// Invocation describes one run of the external converter for a single file.
type Invocation struct {
	SourceDir string
	TargetDir string
	FileName  string
	Timeout   time.Duration
}

type ProcessOutcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}
