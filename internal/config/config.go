package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ifc2frag/internal/infra/converter"
	"ifc2frag/internal/infra/report"
)

const (
	EnvPrefix         = "IFC2FRAG"
	DefaultConfigName = "ifc2frag"
	DefaultTimeoutSec = 300
)

// Default layout below the project root.
var (
	DefaultSourceDir    = filepath.Join("data", "ifc")
	DefaultTargetDir    = filepath.Join("data", "fragments")
	DefaultLogDir       = "logs"
	DefaultReportDir    = "reports"
	DefaultConverterDir = "frag_convert"
)

type Config struct {
	ConfigFile      string
	RootDir         string
	SourceDir       string
	TargetDir       string
	LogDir          string
	ReportDir       string
	ConverterDir    string
	ConverterScript string
	Runtime         string
	Timeout         time.Duration
	ReportFormat    report.Format
	Verbose         bool
	NoTUI           bool
}

// RegisterFlags defines every flag Load understands on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Config file (default: ifc2frag.yaml in the root directory)")
	fs.String("root", "", "Project root holding data/, logs/ and reports/ (default: current directory)")
	fs.StringP("source", "s", "", "Directory with IFC files (default: <root>/data/ifc)")
	fs.StringP("target", "t", "", "Directory for fragments files (default: <root>/data/fragments)")
	fs.String("log-dir", "", "Directory for run logs (default: <root>/logs)")
	fs.String("report-dir", "", "Directory for run reports (default: <root>/reports)")
	fs.String("converter-dir", "", "Converter package directory (default: <root>/frag_convert)")
	fs.String("converter-script", converter.DefaultScript, "Converter entrypoint, relative to the converter directory")
	fs.String("runtime", converter.DefaultRuntime, "Executable used to run the converter entrypoint")
	fs.Int("timeout", DefaultTimeoutSec, "Per-file conversion timeout in seconds")
	fs.String("report-format", string(report.FormatJSON), `Report format ("json" or "yaml")`)
	fs.BoolP("verbose", "v", false, "Verbose output")
	fs.Bool("no-tui", false, "Disable the interactive terminal UI")
}

// Load merges defaults, the optional config file, IFC2FRAG_* environment
// variables and flags, in increasing order of precedence. Relative paths are
// resolved against the root directory.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault("converter-script", converter.DefaultScript)
	v.SetDefault("runtime", converter.DefaultRuntime)
	v.SetDefault("timeout", DefaultTimeoutSec)
	v.SetDefault("report-format", string(report.FormatJSON))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	root, err := resolveRoot(v.GetString("root"))
	if err != nil {
		return Config{}, err
	}

	cfgFile := v.GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(root)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		ConfigFile:      v.ConfigFileUsed(),
		RootDir:         root,
		SourceDir:       resolveDir(root, v.GetString("source"), DefaultSourceDir),
		TargetDir:       resolveDir(root, v.GetString("target"), DefaultTargetDir),
		LogDir:          resolveDir(root, v.GetString("log-dir"), DefaultLogDir),
		ReportDir:       resolveDir(root, v.GetString("report-dir"), DefaultReportDir),
		ConverterDir:    resolveDir(root, v.GetString("converter-dir"), DefaultConverterDir),
		ConverterScript: strings.TrimSpace(v.GetString("converter-script")),
		Runtime:         strings.TrimSpace(v.GetString("runtime")),
		Verbose:         v.GetBool("verbose"),
		NoTUI:           v.GetBool("no-tui"),
	}

	timeout := v.GetInt("timeout")
	if timeout <= 0 {
		return Config{}, fmt.Errorf("timeout must be a positive number of seconds, got %d", timeout)
	}
	cfg.Timeout = time.Duration(timeout) * time.Second

	if cfg.Runtime == "" {
		return Config{}, errors.New("runtime is required")
	}
	if cfg.ConverterScript == "" {
		return Config{}, errors.New("converter script is required")
	}

	format, err := report.ParseFormat(strings.ToLower(strings.TrimSpace(v.GetString("report-format"))))
	if err != nil {
		return Config{}, err
	}
	cfg.ReportFormat = format

	return cfg, nil
}

func resolveRoot(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(value)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", value, err)
	}
	return abs, nil
}

func resolveDir(root, value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(root, value)
}
