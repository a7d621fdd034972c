package hostfuncs

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Middleware is a function that wraps an ExtensionHandler to add cross-cutting behavior.
// Middleware executes in FIFO order (first registered wraps first, onion model).
type Middleware func(next ExtensionHandler) ExtensionHandler

// RegistryOption is a functional option for configuring a HandlerRegistry.
type RegistryOption func(*registryBuilder)

// PanicRecoveryMiddleware returns a middleware that converts handler panics into a
// *PanicError, so a faulty handler traps the calling contract instead of crashing the host.
func PanicRecoveryMiddleware() Middleware {
	return func(next ExtensionHandler) ExtensionHandler {
		return func(ctx context.Context, input []byte) (resp Response, err error) {
			defer func() {
				if r := recover(); r != nil {
					resp = Response{}
					err = NewPanicError(r)
				}
			}()
			return next(ctx, input)
		}
	}
}

// LoggingMiddleware returns a middleware that logs every extension call.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next ExtensionHandler) ExtensionHandler {
		return func(ctx context.Context, input []byte) (Response, error) {
			attrs := []any{slog.Int("input_len", len(input))}
			if hc, ok := ctx.(HostContext); ok {
				attrs = append(attrs, slog.Int("func_id", int(hc.FuncID())), slog.String("func", hc.FunctionName()))
			}

			resp, err := next(ctx, input)
			if err != nil {
				logger.ErrorContext(ctx, "extension call trapped", append(attrs, slog.String("error", err.Error()))...)
				return resp, err
			}
			logger.DebugContext(ctx, "extension call completed",
				append(attrs, slog.Int("status", int(resp.Status)), slog.Int("output_len", len(resp.Output)))...)
			return resp, nil
		}
	}
}

// Metrics records extension call counts and latencies.
type Metrics struct {
	registry  *prometheus.Registry
	calls     *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewMetrics creates collectors under namespace and registers them on a private registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "nftmart"
	}
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extension_calls_total",
		Help:      "Chain extension calls by function and outcome.",
	}, []string{"func", "outcome"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "extension_call_duration_seconds",
		Help:      "Duration of chain extension calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"func"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(calls, durations)
	return &Metrics{registry: registry, calls: calls, durations: durations}
}

// Middleware returns the metrics middleware. The outcome label is the status code,
// or "trap" when the handler returned an error.
func (m *Metrics) Middleware() Middleware {
	return func(next ExtensionHandler) ExtensionHandler {
		return func(ctx context.Context, input []byte) (Response, error) {
			fn := "unknown"
			if hc, ok := ctx.(HostContext); ok {
				fn = hc.FunctionName()
			}

			start := time.Now()
			resp, err := next(ctx, input)
			m.durations.WithLabelValues(fn).Observe(time.Since(start).Seconds())

			outcome := "trap"
			if err == nil {
				outcome = strconv.FormatUint(uint64(resp.Status), 10)
			}
			m.calls.WithLabelValues(fn, outcome).Inc()
			return resp, err
		}
	}
}

// Registry exposes the underlying prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
