package hostfuncs

import (
	"context"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
)

// ChainExtension connects guest-side code running natively to the registry.
// A handler error has no status to travel back as, so it panics with a *TrapError,
// which is what a trap looks like to natively executed contract code.
func ChainExtension(ctx context.Context, r *HandlerRegistry) ports.ChainExtension {
	return ports.ChainExtensionFunc(func(funcID uint32, input []byte) (uint32, []byte) {
		resp, err := r.Invoke(ctx, extension.FuncID(funcID), input)
		if err != nil {
			panic(&TrapError{FuncID: extension.FuncID(funcID), Err: err})
		}
		return resp.Status, resp.Output
	})
}
