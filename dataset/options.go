package dataset

import (
	"errors"

	"github.com/arloliu/olsdiag/compress"
	"github.com/arloliu/olsdiag/internal/options"
)

const (
	// DefaultLimit is the number of leading records kept from a dataset.
	DefaultLimit = 10
	// DefaultXField is the JSON field used for x values.
	DefaultXField = "dewPoint"
	// DefaultYField is the JSON field used for y values.
	DefaultYField = "humidity"
)

// LoadConfig holds dataset loading parameters.
type LoadConfig struct {
	// Limit is the number of leading records kept. Zero keeps all records.
	Limit int
	// XField and YField name the JSON fields mapped to x and y.
	XField string
	YField string
	// Compression overrides detection from the file extension when set.
	Compression compress.Type
}

func defaultLoadConfig() LoadConfig {
	return LoadConfig{
		Limit:  DefaultLimit,
		XField: DefaultXField,
		YField: DefaultYField,
	}
}

// Option is a functional option for LoadConfig.
type Option = options.Option[*LoadConfig]

// WithLimit sets how many leading records are kept. Zero keeps every record.
func WithLimit(n int) Option {
	return options.New(func(cfg *LoadConfig) error {
		if n < 0 {
			return errors.New("dataset limit cannot be negative")
		}
		cfg.Limit = n

		return nil
	})
}

// WithFields sets the JSON fields read as x and y.
func WithFields(xField, yField string) Option {
	return options.New(func(cfg *LoadConfig) error {
		if xField == "" || yField == "" {
			return errors.New("dataset field names cannot be empty")
		}
		cfg.XField = xField
		cfg.YField = yField

		return nil
	})
}

// WithCompression forces a compression type instead of detecting it from the
// file extension.
func WithCompression(t compress.Type) Option {
	return options.New(func(cfg *LoadConfig) error {
		if _, err := compress.GetCodec(t); err != nil {
			return err
		}
		cfg.Compression = t

		return nil
	})
}
