package interact

import (
	"errors"

	"go.uber.org/zap"

	"github.com/arloliu/olsdiag/internal/options"
)

// SessionConfig holds drag-session settings.
type SessionConfig struct {
	// Logger receives debug logs on phase transitions and warnings for
	// degenerate frames.
	Logger *zap.Logger
}

func defaultSessionConfig() SessionConfig {
	return SessionConfig{Logger: zap.NewNop()}
}

// Option is a functional option for SessionConfig.
type Option = options.Option[*SessionConfig]

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return options.New(func(cfg *SessionConfig) error {
		if logger == nil {
			return errors.New("session logger cannot be nil")
		}
		cfg.Logger = logger

		return nil
	})
}
