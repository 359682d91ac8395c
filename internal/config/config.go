// Package config loads the demo configuration: named sample matrices and
// output/logging settings, from TOML or YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/linalg/matrix"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrSampleNotFound is returned by Sample for an unknown name.
	ErrSampleNotFound = errors.New("config: sample not found")
)

// Format identifies the on-disk encoding of a config file.
type Format int

const (
	FormatUnknown Format = iota
	FormatTOML
	FormatYAML
)

// Config holds the complete demo configuration.
type Config struct {
	LogLevel string   `toml:"log_level" yaml:"log_level"`
	Boxed    bool     `toml:"boxed" yaml:"boxed"`
	Samples  []Sample `toml:"samples" yaml:"samples"`
}

// Sample is a named matrix given as literal rows.
type Sample struct {
	Name string      `toml:"name" yaml:"name"`
	Rows [][]float64 `toml:"rows" yaml:"rows"`
}

// Default returns the built-in configuration with the two demo matrices.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Samples: []Sample{
			{Name: "A", Rows: [][]float64{{1000, 0, 1}, {0, 3, 5}}},
			{Name: "B", Rows: [][]float64{{11, 3}, {7, 11}}},
		},
	}
}

// DetectFormat determines the configuration format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// Load reads path and decodes it on top of Default(). Samples in the file
// replace the default samples entirely when present.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(content, DetectFormat(path))
}

// Parse decodes content in the given format on top of Default().
func Parse(content []byte, format Format) (*Config, error) {
	cfg := Default()
	var fromFile Config

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &fromFile); err != nil {
			return nil, fmt.Errorf("config: TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &fromFile); err != nil {
			return nil, fmt.Errorf("config: YAML parse error: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	if fromFile.LogLevel != "" {
		cfg.LogLevel = fromFile.LogLevel
	}
	cfg.Boxed = fromFile.Boxed
	if len(fromFile.Samples) > 0 {
		cfg.Samples = fromFile.Samples
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Level parses LogLevel ("debug", "info", "warn", "error"; empty means info).
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}

// Sample returns the sample with the given name.
func (c *Config) Sample(name string) (Sample, error) {
	for _, s := range c.Samples {
		if s.Name == name {
			return s, nil
		}
	}

	return Sample{}, fmt.Errorf("%w: %q", ErrSampleNotFound, name)
}

// Names lists sample names in file order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Samples))
	for _, s := range c.Samples {
		names = append(names, s.Name)
	}

	return names
}

// Matrix builds the sample as a *matrix.Dense. The column count is taken from
// the first row; ragged rows surface as matrix.ErrShapeMismatch.
func (s Sample) Matrix(opts ...matrix.Option) (*matrix.Dense, error) {
	cols := 0
	if len(s.Rows) > 0 {
		cols = len(s.Rows[0])
	}
	m, err := matrix.NewFromRows(len(s.Rows), cols, s.Rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("sample %q: %w", s.Name, err)
	}

	return m, nil
}
