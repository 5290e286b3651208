package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind string

const (
	InvalidConfig Kind = "invalid_config"
	Environment   Kind = "environment"
	IOFailure     Kind = "io_failure"
	Interrupted   Kind = "interrupted"
	Internal      Kind = "internal"
)

// Process exit codes returned by the CLI.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

type AppError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// KindOf reports the kind of the outermost AppError in err's chain.
func KindOf(err error) (Kind, bool) {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return "", false
	}
	return appErr.Kind, true
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func UserMessage(err error) string {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Kind {
	case InvalidConfig:
		return fmt.Sprintf("Invalid configuration: %v", appErr.Err)
	case Environment:
		if appErr.Path != "" {
			return fmt.Sprintf("Environment check failed (%s): %s: %v", appErr.Op, appErr.Path, appErr.Err)
		}
		return fmt.Sprintf("Environment check failed (%s): %v", appErr.Op, appErr.Err)
	case IOFailure:
		return fmt.Sprintf("I/O error: %s: %v", appErr.Path, appErr.Err)
	case Interrupted:
		return "Conversion interrupted, partial results were kept"
	default:
		return fmt.Sprintf("Unexpected error: %v", appErr.Err)
	}
}

func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if IsKind(err, Interrupted) {
		return ExitInterrupted
	}
	return ExitFailure
}
