package app

import (
	"errors"
	"fmt"
	"os/exec"

	appErrors "ifc2frag/internal/errors"
	"ifc2frag/internal/logging"
)

// Preflight validates everything the batch needs before any file is touched.
type Preflight struct {
	FS           FileSystem
	LookPath     func(file string) (string, error)
	Runtime      string
	PackageDir   string
	Entrypoint   string
	WritableDirs []string
}

func (p Preflight) Check(sourceDir, targetDir string, logger logging.Logger) error {
	if p.FS == nil {
		return appErrors.Wrap(appErrors.Internal, "preflight", "", errors.New("preflight requires FS"))
	}
	logger.Infof("Validating environment...")

	if err := p.requireDir(p.PackageDir); err != nil {
		return appErrors.Wrap(appErrors.Environment, "converter package", p.PackageDir, err)
	}
	if err := p.requireFile(p.Entrypoint); err != nil {
		return appErrors.Wrap(appErrors.Environment, "converter script", p.Entrypoint, err)
	}
	logger.Infof("Converter found: %s", p.Entrypoint)

	lookPath := p.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	resolved, err := lookPath(p.Runtime)
	if err != nil {
		return appErrors.Wrap(appErrors.Environment, "converter runtime", p.Runtime, err)
	}
	logger.Infof("Converter runtime: %s", resolved)

	if err := p.ensureDir(sourceDir, logger); err != nil {
		return appErrors.Wrap(appErrors.Environment, "source directory", sourceDir, err)
	}
	for _, dir := range append([]string{targetDir}, p.WritableDirs...) {
		if err := p.ensureDir(dir, logger); err != nil {
			return appErrors.Wrap(appErrors.Environment, "output directory", dir, err)
		}
		if err := p.FS.CheckWritable(dir); err != nil {
			return appErrors.Wrap(appErrors.Environment, "output directory", dir, fmt.Errorf("not writable: %w", err))
		}
	}

	logger.Infof("Environment validation completed successfully")
	return nil
}

func (p Preflight) requireDir(path string) error {
	if path == "" {
		return errors.New("path not configured")
	}
	info, err := p.FS.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New("not a directory")
	}
	return nil
}

func (p Preflight) requireFile(path string) error {
	info, err := p.FS.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.New("is a directory")
	}
	return nil
}

func (p Preflight) ensureDir(path string, logger logging.Logger) error {
	exists, err := p.FS.Exists(path)
	if err != nil {
		return err
	}
	if exists {
		return p.requireDir(path)
	}
	logger.Warnf("Directory not found, creating: %s", path)
	return p.FS.MkdirAll(path, 0o755)
}
