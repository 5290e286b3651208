package app

import (
	"path/filepath"
	"sort"

	"ifc2frag/internal/domain"
)

// Discover lists the IFC files directly inside sourceDir, sorted by name.
func Discover(fsys FileSystem, sourceDir string) ([]domain.InputFile, error) {
	entries, err := fsys.ReadDir(sourceDir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(entries))
	var inputs []domain.InputFile
	for _, entry := range entries {
		if entry.IsDir() || !domain.IsInputExtension(filepath.Ext(entry.Name())) {
			continue
		}
		path := filepath.Join(sourceDir, entry.Name())
		if seen[path] {
			continue
		}
		seen[path] = true

		info, err := fsys.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.Mode().IsRegular() {
			continue
		}
		inputs = append(inputs, domain.NewInputFile(path, info.Size()))
	}

	sort.Slice(inputs, func(i, j int) bool {
		return inputs[i].Name < inputs[j].Name
	})
	return inputs, nil
}

func totalInputBytes(inputs []domain.InputFile) int64 {
	var total int64
	for _, in := range inputs {
		total += in.SizeBytes
	}
	return total
}
