package app

import (
	"context"
	"io/fs"

	"ifc2frag/internal/domain"
)

type FileSystem interface {
	ReadDir(dir string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	CheckWritable(dir string) error
}

// ConverterRunner runs the external converter once. A returned error means the
// process could not be invoked; exit status and timeouts are reported in the
// outcome.
type ConverterRunner interface {
	Run(ctx context.Context, inv domain.Invocation) (domain.ProcessOutcome, error)
	CommandLine(inv domain.Invocation) string
}
