package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"ifc2frag/internal/domain"
	"ifc2frag/internal/logging"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown report format %q, use json or yaml", value)
	}
}

// Writer persists one report file per run under Dir.
type Writer struct {
	Dir    string
	Format Format
}

func (w Writer) Path(now time.Time) string {
	ext := "json"
	if w.Format == FormatYAML {
		ext = "yaml"
	}
	return filepath.Join(w.Dir, fmt.Sprintf("conversion_report_%s.%s", now.Format(logging.StampLayout), ext))
}

func (w Writer) Write(r domain.Report, now time.Time) (string, error) {
	data, err := w.encode(r)
	if err != nil {
		return "", fmt.Errorf("report: encode: %w", err)
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("report: ensure dir: %w", err)
	}
	path := w.Path(now)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("report: write: %w", err)
	}
	return path, nil
}

func (w Writer) encode(r domain.Report) ([]byte, error) {
	if w.Format == FormatYAML {
		return yaml.Marshal(r)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
