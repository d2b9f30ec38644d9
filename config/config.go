// Package config resolves wordagg settings from defaults, an optional YAML
// file and WORDAGG_* environment variables.
//
// Precedence, lowest first: defaults, config file, environment. Command-line
// flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/wordagg/aggerrors"
	"github.com/erraggy/wordagg/aggregator"
)

// DefaultFile is the config file read from the working directory when no
// explicit path is given. Its absence is not an error.
const DefaultFile = "wordagg.yaml"

// Environment variable names.
const (
	EnvInputDir    = "WORDAGG_INPUT_DIR"
	EnvOutput      = "WORDAGG_OUTPUT"
	EnvExtension   = "WORDAGG_EXTENSION"
	EnvFold        = "WORDAGG_FOLD"
	EnvWorkers     = "WORDAGG_WORKERS"
	EnvSkipInvalid = "WORDAGG_SKIP_INVALID"
	EnvASCIIOnly   = "WORDAGG_ASCII_ONLY"
	EnvLength      = "WORDAGG_LENGTH"
)

// EnvVars lists every environment variable read by ApplyEnv.
var EnvVars = []string{
	EnvInputDir, EnvOutput, EnvExtension, EnvFold,
	EnvWorkers, EnvSkipInvalid, EnvASCIIOnly, EnvLength,
}

// Config holds the settings of an aggregation run.
type Config struct {
	InputDir    string `yaml:"input_dir"    json:"input_dir"`
	Output      string `yaml:"output"       json:"output"`
	Extension   string `yaml:"extension"    json:"extension"`
	Fold        string `yaml:"fold"         json:"fold"`
	Workers     int    `yaml:"workers"      json:"workers"`
	SkipInvalid bool   `yaml:"skip_invalid" json:"skip_invalid"`
	ASCIIOnly   bool   `yaml:"ascii_only"   json:"ascii_only"`
	Length      int    `yaml:"length"       json:"length"`
}

// Default returns the conventional configuration: "words" in, "words.txt" out.
func Default() *Config {
	return &Config{
		InputDir:  aggregator.DefaultInputDir,
		Output:    aggregator.DefaultOutputPath,
		Extension: aggregator.DefaultExtension,
		Fold:      string(aggregator.FoldLower),
	}
}

// Load returns the defaults overlaid with the config file at path and then
// the environment. An empty path reads DefaultFile if it exists.
//
// Load does not validate the result, so a later layer such as a command-line
// flag can still replace a bad value. Call Validate once every layer is applied.
func Load(path string) (*Config, error) {
	cfg := Default()
	required := path != ""
	if path == "" {
		path = DefaultFile
	}
	if err := cfg.MergeFile(path, required); err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// MergeFile overlays the YAML document at path onto c. Keys absent from the
// file keep their current values. A missing file is an error only when
// required is set.
func (c *Config) MergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &aggerrors.ReadError{Path: path, Message: "reading config file", Cause: err}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &aggerrors.ConfigError{Option: "config", Value: path, Message: "invalid YAML", Cause: err}
	}
	return nil
}

// ApplyEnv overlays WORDAGG_* environment variables onto c.
// Invalid values log a warning and keep the current value.
func (c *Config) ApplyEnv() {
	c.InputDir = envString(EnvInputDir, c.InputDir)
	c.Output = envString(EnvOutput, c.Output)
	c.Extension = envString(EnvExtension, c.Extension)
	c.Fold = envFold(EnvFold, c.Fold)
	c.Workers = envInt(EnvWorkers, c.Workers)
	c.SkipInvalid = envBool(EnvSkipInvalid, c.SkipInvalid)
	c.ASCIIOnly = envBool(EnvASCIIOnly, c.ASCIIOnly)
	c.Length = envInt(EnvLength, c.Length)
}

// Validate reports the first invalid setting as a *aggerrors.ConfigError.
func (c *Config) Validate() error {
	_, err := aggregator.NewWithOptions(c.Options()...)
	if err != nil {
		var cfgErr *aggerrors.ConfigError
		if errors.As(err, &cfgErr) {
			return cfgErr
		}
		return err
	}
	return nil
}

// Options converts c into aggregator options.
func (c *Config) Options() []aggregator.Option {
	return []aggregator.Option{
		aggregator.WithInputDir(c.InputDir),
		aggregator.WithOutputPath(c.Output),
		aggregator.WithExtension(c.Extension),
		aggregator.WithFoldMode(aggregator.FoldMode(c.Fold)),
		aggregator.WithWorkers(c.Workers),
		aggregator.WithSkipInvalid(c.SkipInvalid),
		aggregator.WithASCIIOnly(c.ASCIIOnly),
		aggregator.WithLength(c.Length),
	}
}

// String renders c as YAML.
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%+v", *c)
	}
	return string(data)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envFold(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if _, err := aggregator.ParseFoldMode(v); err != nil {
		slog.Warn("invalid fold env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return v
}
