package hostfuncs

import (
	"context"

	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
)

// HostContext wraps a standard context.Context with extension call helpers.
// It provides access to the invoked function id and allows middleware to store
// request-scoped values without polluting the standard context.
type HostContext interface {
	context.Context

	// FuncID returns the id of the extension function being invoked.
	FuncID() extension.FuncID

	// FunctionName returns the catalogue name of the function, or "unknown".
	FunctionName() string

	// SetValue stores a request-scoped value. Unlike context.WithValue,
	// this mutates the existing HostContext for performance.
	SetValue(key, value any)

	// GetValue retrieves a request-scoped value set by SetValue.
	GetValue(key any) (value any, ok bool)
}

type hostContext struct {
	context.Context
	values map[any]any
	id     extension.FuncID
}

// NewHostContext creates a new HostContext wrapping the given context.
func NewHostContext(ctx context.Context, id extension.FuncID) HostContext {
	return &hostContext{
		Context: ctx,
		id:      id,
		values:  make(map[any]any),
	}
}

func (c *hostContext) FuncID() extension.FuncID {
	return c.id
}

func (c *hostContext) FunctionName() string {
	if op, ok := extension.Catalogue.Lookup(c.id); ok {
		return op.Name
	}
	return "unknown"
}

func (c *hostContext) SetValue(key, value any) {
	c.values[key] = value
}

func (c *hostContext) GetValue(key any) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// HostContextFrom extracts a HostContext from a context.Context.
// If the context is already a HostContext for the same id, it is returned directly.
// Otherwise, a new HostContext is created wrapping the given context.
func HostContextFrom(ctx context.Context, id extension.FuncID) HostContext {
	if hc, ok := ctx.(HostContext); ok && hc.FuncID() == id {
		return hc
	}
	return NewHostContext(ctx, id)
}
