// Package log provides structured logging (slog) for contracts. Records are rendered as a
// single logfmt-style line and handed to the host's debug buffer via seal_debug_message;
// native builds write the same line to stderr.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DebugHandler implements slog.Handler on top of the host debug message channel.
type DebugHandler struct {
	opts   handlerConfig
	mu     *sync.Mutex
	attrs  []byte
	groups []string
}

// HandlerOption configures the DebugHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	out       io.Writer
	level     slog.Level
	addSource bool
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level: slog.LevelInfo,
		out:   os.Stderr,
	}
}

// WithLevel sets the minimum log level to report.
// Records below this level are dropped before crossing to the host.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// WithWriter redirects native output. Contracts always write to the host debug buffer.
func WithWriter(w io.Writer) HandlerOption {
	return func(c *handlerConfig) {
		if w != nil {
			c.out = w
		}
	}
}

// NewHandler creates a new DebugHandler with the given options.
func NewHandler(opts ...HandlerOption) *DebugHandler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &DebugHandler{opts: cfg, mu: &sync.Mutex{}}
}

// Install makes a DebugHandler the slog default.
func Install(opts ...HandlerOption) {
	slog.SetDefault(slog.New(NewHandler(opts...)))
}

// Enabled reports whether the handler handles records at the given level.
func (h *DebugHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level
}

// WithAttrs returns a handler whose records carry attrs.
func (h *DebugHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := h.clone()
	for _, a := range attrs {
		next.attrs = appendAttr(next.attrs, h.groups, a)
	}
	return next
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *DebugHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.groups = append(next.groups, name)
	return next
}

// Handle renders the record and hands it to the host.
func (h *DebugHandler) Handle(_ context.Context, record slog.Record) error {
	line := h.format(record)
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.emit(line)
}

func (h *DebugHandler) clone() *DebugHandler {
	return &DebugHandler{
		opts:   h.opts,
		mu:     h.mu,
		attrs:  append([]byte(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}
