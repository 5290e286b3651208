package app

import (
	"path/filepath"

	"ifc2frag/internal/domain"
)

// OutputPath is where the converter is expected to write the fragments for in.
func OutputPath(targetDir string, in domain.InputFile) string {
	return filepath.Join(targetDir, domain.FragmentName(in))
}

// Oracle decides whether an input already has a usable fragments file.
type Oracle struct {
	FS FileSystem
}

// Exists reports true only for a non-empty regular file at the output path, so
// zero-byte leftovers of a crashed run are converted again.
func (o Oracle) Exists(targetDir string, in domain.InputFile) (bool, string) {
	path := OutputPath(targetDir, in)
	size, ok := o.size(path)
	return ok && size > 0, path
}

func (o Oracle) size(path string) (int64, bool) {
	info, err := o.FS.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return 0, false
	}
	return info.Size(), true
}
