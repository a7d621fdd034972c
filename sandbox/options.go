package sandbox

import (
	"io"
	"log/slog"

	"github.com/nftmart-dev/nftmart-contract-sdk/hostfuncs"
)

type config struct {
	logger         *slog.Logger
	stderr         io.Writer
	maxRequestSize uint32
}

func defaultConfig() config {
	return config{
		logger:         slog.Default(),
		stderr:         io.Discard,
		maxRequestSize: hostfuncs.DefaultMaxInputSize,
	}
}

// Option configures an executor.
type Option func(*config)

// WithLogger sets the logger used for call summaries and host function traces.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStderr tees the guest's WASI stderr, where the Go runtime prints panics.
// Stderr is always captured into the call's debug output as well.
func WithStderr(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.stderr = w
		}
	}
}

// WithMaxRequestSize limits the bytes the guest may pass to a single host function.
func WithMaxRequestSize(size uint32) Option {
	return func(c *config) {
		c.maxRequestSize = size
	}
}
