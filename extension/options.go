package extension

import "log/slog"

// Option configures an Extension.
type Option func(*config)

type config struct {
	logger            *slog.Logger
	legacyCreateClass bool
}

func defaultConfig() config {
	return config{logger: slog.Default()}
}

// WithLegacyCreateClass sends create_class with the four-field argument tuple
// (metadata, name, description, properties). Royalty rate and category ids are dropped.
func WithLegacyCreateClass() Option {
	return func(c *config) {
		c.legacyCreateClass = true
	}
}

// WithLogger sets the logger used for call tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
