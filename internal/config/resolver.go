package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/hurttlocker/agrovoz/internal/record"
)

type ValueSource string

const (
	SourceUnknown ValueSource = "unknown"
	SourceConfig  ValueSource = "config"
	SourceEnv     ValueSource = "env"
	SourceCLI     ValueSource = "cli"
	SourceDefault ValueSource = "default"
)

// Defaults used when neither file, env nor flags set a value.
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultOutputFormat = "json"
	DefaultWorkers      = 4
)

type ResolvedValue struct {
	Value  string      `json:"value" yaml:"value"`
	Source ValueSource `json:"source" yaml:"source"`
	From   string      `json:"from,omitempty" yaml:"from,omitempty"`
}

type ResolveOptions struct {
	ConfigPath      string
	CLIThreshold    string
	CLILogLevel     string
	CLILogFormat    string
	CLIOutputFormat string
	CLIWorkers      string
}

type ResolvedConfig struct {
	ConfigPath string `json:"config_path" yaml:"config_path"`

	ReviewThreshold ResolvedValue `json:"review_threshold" yaml:"review_threshold"`
	LogLevel        ResolvedValue `json:"log_level" yaml:"log_level"`
	LogFormat       ResolvedValue `json:"log_format" yaml:"log_format"`
	OutputFormat    ResolvedValue `json:"output_format" yaml:"output_format"`
	BatchWorkers    ResolvedValue `json:"batch_workers" yaml:"batch_workers"`
}

type fileConfig struct {
	ReviewThreshold *float64 `yaml:"review_threshold"`
	Log             struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Output struct {
		Format string `yaml:"format"`
	} `yaml:"output"`
	Batch struct {
		Workers int `yaml:"workers"`
	} `yaml:"batch"`
}

func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".agrovoz", "config.yaml")
}

// ResolveConfig merges defaults, the YAML file, AGROVOZ_* environment
// variables and CLI flags, in increasing order of precedence, and records
// where each value came from.
func ResolveConfig(opts ResolveOptions) (ResolvedConfig, error) {
	path := strings.TrimSpace(opts.ConfigPath)
	if path == "" {
		path = DefaultConfigPath()
	}
	path = expandUserPath(path)

	out := ResolvedConfig{
		ConfigPath:      path,
		ReviewThreshold: defaultValue(strconv.FormatFloat(record.DefaultReviewThreshold, 'f', -1, 64)),
		LogLevel:        defaultValue(DefaultLogLevel),
		LogFormat:       defaultValue(DefaultLogFormat),
		OutputFormat:    defaultValue(DefaultOutputFormat),
		BatchWorkers:    defaultValue(strconv.Itoa(DefaultWorkers)),
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return out, err
	}

	if cfg != nil {
		if cfg.ReviewThreshold != nil {
			apply(&out.ReviewThreshold, strconv.FormatFloat(*cfg.ReviewThreshold, 'f', -1, 64), SourceConfig, path)
		}
		apply(&out.LogLevel, cfg.Log.Level, SourceConfig, path)
		apply(&out.LogFormat, cfg.Log.Format, SourceConfig, path)
		apply(&out.OutputFormat, cfg.Output.Format, SourceConfig, path)
		if cfg.Batch.Workers > 0 {
			apply(&out.BatchWorkers, strconv.Itoa(cfg.Batch.Workers), SourceConfig, path)
		}
	}

	applyEnv(&out.ReviewThreshold, "AGROVOZ_REVIEW_THRESHOLD")
	applyEnv(&out.LogLevel, "AGROVOZ_LOG_LEVEL")
	applyEnv(&out.LogFormat, "AGROVOZ_LOG_FORMAT")
	applyEnv(&out.OutputFormat, "AGROVOZ_OUTPUT")
	applyEnv(&out.BatchWorkers, "AGROVOZ_WORKERS")

	apply(&out.ReviewThreshold, opts.CLIThreshold, SourceCLI, "--review-threshold")
	apply(&out.LogLevel, opts.CLILogLevel, SourceCLI, "--log-level")
	apply(&out.LogFormat, opts.CLILogFormat, SourceCLI, "--log-format")
	apply(&out.OutputFormat, opts.CLIOutputFormat, SourceCLI, "--output")
	apply(&out.BatchWorkers, opts.CLIWorkers, SourceCLI, "--workers")

	return out, nil
}

// Threshold parses the resolved review threshold. It must lie in [0, 1].
func (r ResolvedConfig) Threshold() (float64, error) {
	v, err := strconv.ParseFloat(r.ReviewThreshold.Value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "review threshold %q (from %s)", r.ReviewThreshold.Value, r.ReviewThreshold.Source)
	}
	if v < 0 || v > 1 {
		return 0, errors.WithHint(
			errors.Newf("review threshold %v out of range (from %s)", v, r.ReviewThreshold.Source),
			"use a value between 0 and 1, e.g. 0.7",
		)
	}
	return v, nil
}

// Workers parses the resolved batch worker count. It must be positive.
func (r ResolvedConfig) Workers() (int, error) {
	n, err := strconv.Atoi(r.BatchWorkers.Value)
	if err != nil {
		return 0, errors.Wrapf(err, "batch workers %q (from %s)", r.BatchWorkers.Value, r.BatchWorkers.Source)
	}
	if n <= 0 {
		return 0, errors.Newf("batch workers must be positive, got %d (from %s)", n, r.BatchWorkers.Source)
	}
	return n, nil
}

func defaultValue(v string) ResolvedValue {
	return ResolvedValue{Value: v, Source: SourceDefault, From: "built-in default"}
}

func apply(dst *ResolvedValue, raw string, source ValueSource, from string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	*dst = ResolvedValue{Value: v, Source: source, From: from}
}

func applyEnv(dst *ResolvedValue, envKey string) {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		*dst = ResolvedValue{Value: v, Source: SourceEnv, From: envKey}
	}
}

func loadConfig(path string) (*fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return &cfg, nil
}

func expandUserPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
