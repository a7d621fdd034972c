package hostfuncs

import (
	"context"
	"fmt"
	"sort"

	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
)

// HandlerRegistry is an immutable collection of extension handlers keyed by function id.
// Once created via NewRegistry, handlers cannot be added or removed.
// This ensures thread safety and lock-free lookups during execution.
type HandlerRegistry struct {
	handlers   map[extension.FuncID]ExtensionHandler
	ids        []extension.FuncID // sorted for consistent iteration
	middleware []Middleware
}

// registryBuilder accumulates configuration during registry construction.
type registryBuilder struct {
	handlers   map[extension.FuncID]ExtensionHandler
	middleware []Middleware
	errors     []error
}

// NewRegistry creates an immutable HandlerRegistry with the given options.
// Returns an error if any function id is registered twice.
//
// Example usage:
//
//	registry, err := NewRegistry(
//	    WithMiddleware(PanicRecoveryMiddleware(), LoggingMiddleware(logger)),
//	    WithBundle(ledger.Bundle()),
//	    WithHandler(extension.FuncFetchRandom, fetchRandom),
//	)
func NewRegistry(opts ...RegistryOption) (*HandlerRegistry, error) {
	b := &registryBuilder{
		handlers: make(map[extension.FuncID]ExtensionHandler),
	}

	for _, opt := range opts {
		opt(b)
	}

	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}

	ids := make([]extension.FuncID, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// Apply middleware chain to all handlers (FIFO order)
	wrapped := make(map[extension.FuncID]ExtensionHandler, len(b.handlers))
	for id, handler := range b.handlers {
		h := handler
		// Apply middleware in reverse order so first middleware wraps outermost
		for i := len(b.middleware) - 1; i >= 0; i-- {
			h = b.middleware[i](h)
		}
		wrapped[id] = h
	}

	return &HandlerRegistry{
		handlers:   wrapped,
		ids:        ids,
		middleware: b.middleware,
	}, nil
}

// Invoke dispatches an extension call by function id.
// An unregistered id yields an error wrapping ErrUnknownFunction.
func (r *HandlerRegistry) Invoke(ctx context.Context, id extension.FuncID, input []byte) (Response, error) {
	handler, ok := r.handlers[id]
	if !ok {
		return Response{}, fmt.Errorf("%w: %d", ErrUnknownFunction, id)
	}

	hctx := HostContextFrom(ctx, id)
	return handler(hctx, input)
}

// Has returns true if a handler is registered for id.
func (r *HandlerRegistry) Has(id extension.FuncID) bool {
	_, ok := r.handlers[id]
	return ok
}

// IDs returns the registered function ids in ascending order.
func (r *HandlerRegistry) IDs() []extension.FuncID {
	result := make([]extension.FuncID, len(r.ids))
	copy(result, r.ids)
	return result
}

func (b *registryBuilder) addHandler(id extension.FuncID, handler ExtensionHandler) error {
	if handler == nil {
		return fmt.Errorf("nil handler for function %d", id)
	}
	if _, exists := b.handlers[id]; exists {
		return fmt.Errorf("duplicate handler for function %d", id)
	}
	b.handlers[id] = handler
	return nil
}

// WithExtensionHandler registers a raw ExtensionHandler for id.
// Use WithHandler for type-safe registration with automatic SCALE handling.
func WithExtensionHandler(id extension.FuncID, handler ExtensionHandler) RegistryOption {
	return func(b *registryBuilder) {
		if err := b.addHandler(id, handler); err != nil {
			b.errors = append(b.errors, err)
		}
	}
}

// WithHandler registers a typed host function with automatic SCALE handling.
func WithHandler[Req any, Resp any](id extension.FuncID, fn HostFunc[Req, Resp]) RegistryOption {
	return func(b *registryBuilder) {
		if err := b.addHandler(id, NewSCALEHandler(fn)); err != nil {
			b.errors = append(b.errors, err)
		}
	}
}

// WithMiddleware adds middleware to the registry.
// Middleware executes in FIFO order (first added wraps first).
func WithMiddleware(mw ...Middleware) RegistryOption {
	return func(b *registryBuilder) {
		b.middleware = append(b.middleware, mw...)
	}
}

// WithBundle registers all handlers from a bundle.
func WithBundle(bundle HostFuncBundle) RegistryOption {
	return func(b *registryBuilder) {
		for id, handler := range bundle.Handlers() {
			if err := b.addHandler(id, handler); err != nil {
				b.errors = append(b.errors, err)
			}
		}
	}
}
