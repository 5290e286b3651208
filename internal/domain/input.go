package domain

import (
	"path/filepath"
	"strings"
)

const (
	InputExtension    = ".ifc"
	FragmentExtension = ".frag"
)

type InputFile struct {
	Path      string
	Name      string
	Stem      string
	SizeBytes int64
}

func NewInputFile(path string, sizeBytes int64) InputFile {
	name := filepath.Base(path)
	return InputFile{
		Path:      path,
		Name:      name,
		Stem:      strings.TrimSuffix(name, filepath.Ext(name)),
		SizeBytes: sizeBytes,
	}
}

func IsInputExtension(ext string) bool {
	return strings.EqualFold(ext, InputExtension)
}

// FragmentName is the output file name the converter writes for an input.
func FragmentName(in InputFile) string {
	return in.Stem + FragmentExtension
}

func BytesToMB(n int64) float64 {
	return float64(n) / (1024 * 1024)
}
