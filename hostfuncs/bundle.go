package hostfuncs

import (
	"context"

	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
)

// HostFuncBundle is a pre-configured set of related extension handlers.
// Bundles allow registering multiple handlers at once.
type HostFuncBundle interface {
	// Handlers returns the handlers keyed by function id.
	Handlers() map[extension.FuncID]ExtensionHandler
}

type staticBundle struct {
	handlers map[extension.FuncID]ExtensionHandler
}

func (b *staticBundle) Handlers() map[extension.FuncID]ExtensionHandler {
	return b.handlers
}

// NewBundle returns a bundle with a fixed set of handlers.
func NewBundle(handlers map[extension.FuncID]ExtensionHandler) HostFuncBundle {
	return &staticBundle{handlers: handlers}
}

// StaticBundle returns a bundle answering every id with the same fixed response.
// It is useful for stubbing a whole extension in tests.
func StaticBundle(resp Response, ids ...extension.FuncID) HostFuncBundle {
	handlers := make(map[extension.FuncID]ExtensionHandler, len(ids))
	for _, id := range ids {
		handlers[id] = func(_ context.Context, _ []byte) (Response, error) {
			return resp, nil
		}
	}
	return &staticBundle{handlers: handlers}
}

type compositeBundle struct {
	bundles []HostFuncBundle
}

func (b *compositeBundle) Handlers() map[extension.FuncID]ExtensionHandler {
	result := make(map[extension.FuncID]ExtensionHandler)
	for _, bundle := range b.bundles {
		for id, handler := range bundle.Handlers() {
			result[id] = handler
		}
	}
	return result
}

// Compose combines bundles; a later bundle overrides an earlier one for the same id.
func Compose(bundles ...HostFuncBundle) HostFuncBundle {
	return &compositeBundle{bundles: bundles}
}
