package fs

import (
	"io/fs"
	"os"
)

type OSFS struct{}

func (OSFS) ReadDir(dir string) ([]fs.DirEntry, error) {
	return os.ReadDir(dir)
}

func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (OSFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (OSFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CheckWritable creates and removes a probe file in dir.
func (OSFS) CheckWritable(dir string) error {
	probe, err := os.CreateTemp(dir, ".ifc2frag-probe-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	if err := probe.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	return os.Remove(name)
}
