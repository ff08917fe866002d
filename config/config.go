// Package config loads the olsdiag CLI configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/olsdiag/compress"
	"github.com/arloliu/olsdiag/dataset"
	"github.com/arloliu/olsdiag/scene"
)

// Config is the CLI configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Chart   ChartConfig   `yaml:"chart"`
	Log     LogConfig     `yaml:"log"`
}

// DatasetConfig selects the input sample.
type DatasetConfig struct {
	Path   string `yaml:"path"`
	Limit  int    `yaml:"limit"`
	XField string `yaml:"x_field"`
	YField string `yaml:"y_field"`
	// Compression is a compress.Type name. Empty means detect from the file extension.
	Compression string `yaml:"compression"`
}

// ChartConfig is the size of the chart the scene is laid out for, in pixels.
type ChartConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `yaml:"level"`
	// File enables rotated JSON logs at this path in addition to stderr.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dataset: DatasetConfig{
			Limit:  dataset.DefaultLimit,
			XField: dataset.DefaultXField,
			YField: dataset.DefaultYField,
		},
		Chart: ChartConfig{Width: 560, Height: 560},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}
}

// Load reads the YAML file at path on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	var problems []error

	if c.Dataset.Limit < 0 {
		problems = append(problems, fmt.Errorf("dataset.limit must not be negative, got %d", c.Dataset.Limit))
	}
	if c.Dataset.XField == "" || c.Dataset.YField == "" {
		problems = append(problems, errors.New("dataset.x_field and dataset.y_field are required"))
	}
	if _, err := c.CompressionType(); err != nil {
		problems = append(problems, fmt.Errorf("dataset.compression: %w", err))
	}
	if _, err := c.Dimensions(); err != nil {
		problems = append(problems, fmt.Errorf("chart: %w", err))
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		problems = append(problems, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		problems = append(problems, errors.New("log rotation limits must not be negative"))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(problems...))
	}

	return nil
}

// CompressionType returns the configured compression, or zero for
// detect-by-extension.
func (c Config) CompressionType() (compress.Type, error) {
	if c.Dataset.Compression == "" {
		return 0, nil
	}

	return compress.ParseType(c.Dataset.Compression)
}

// Dimensions returns the chart dimensions with the default margins.
func (c Config) Dimensions() (scene.Dimensions, error) {
	return scene.NewDimensions(c.Chart.Width, c.Chart.Height)
}

// DatasetOptions returns the dataset loading options for the configuration.
func (c Config) DatasetOptions() ([]dataset.Option, error) {
	opts := []dataset.Option{
		dataset.WithLimit(c.Dataset.Limit),
		dataset.WithFields(c.Dataset.XField, c.Dataset.YField),
	}

	ct, err := c.CompressionType()
	if err != nil {
		return nil, err
	}
	if ct != 0 {
		opts = append(opts, dataset.WithCompression(ct))
	}

	return opts, nil
}

// ZapLevel parses Level.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(l.Level)
}
