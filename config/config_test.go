package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/olsdiag/compress"
	"github.com/arloliu/olsdiag/errs"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	require.Equal(t, 10, cfg.Dataset.Limit)
	require.Equal(t, "dewPoint", cfg.Dataset.XField)
	require.Equal(t, "humidity", cfg.Dataset.YField)

	dims, err := cfg.Dimensions()
	require.NoError(t, err)
	require.Equal(t, 500.0, dims.BoundedWidth)

	level, err := cfg.Log.ZapLevel()
	require.NoError(t, err)
	require.Equal(t, zapcore.InfoLevel, level)

	ct, err := cfg.CompressionType()
	require.NoError(t, err)
	require.Zero(t, ct)

	opts, err := cfg.DatasetOptions()
	require.NoError(t, err)
	require.Len(t, opts, 2)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "olsdiag.yaml"))
	require.NoError(t, err)

	require.Equal(t, "weather.json.zst", cfg.Dataset.Path)
	require.Equal(t, 8, cfg.Dataset.Limit)
	require.Equal(t, "dewPoint", cfg.Dataset.XField, "unset keys keep their defaults")
	require.Equal(t, 800.0, cfg.Chart.Width)
	require.Equal(t, 600.0, cfg.Chart.Height)
	require.Equal(t, "/tmp/olsdiag.log", cfg.Log.File)
	require.Equal(t, 2, cfg.Log.MaxBackups)
	require.Equal(t, 10, cfg.Log.MaxSizeMB)

	ct, err := cfg.CompressionType()
	require.NoError(t, err)
	require.Equal(t, compress.TypeZstd, ct)

	opts, err := cfg.DatasetOptions()
	require.NoError(t, err)
	require.Len(t, opts, 3)

	level, err := cfg.Log.ZapLevel()
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown key", yaml: "dataset:\n  sample_size: 3\n"},
		{name: "not yaml", yaml: "dataset: [\n"},
		{name: "negative limit", yaml: "dataset:\n  limit: -1\n"},
		{name: "empty field", yaml: "dataset:\n  x_field: \"\"\n"},
		{name: "bad compression", yaml: "dataset:\n  compression: brotli\n"},
		{name: "chart too small", yaml: "chart:\n  width: 40\n"},
		{name: "bad level", yaml: "log:\n  level: loud\n"},
		{name: "negative rotation", yaml: "log:\n  max_age_days: -3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Dataset.Compression = "brotli"
	cfg.Chart.Width = 10

	err := cfg.Validate()
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	require.ErrorIs(t, err, errs.ErrInvalidDimensions)
}
