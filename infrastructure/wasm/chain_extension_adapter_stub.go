//go:build !wasip1

package wasm

import "github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"

var _ ports.ChainExtension = (*ChainExtensionAdapter)(nil)

// ChainExtensionAdapter is a stub for non-WASM builds.
// Native code runs contracts against exttest or the sandbox instead.
type ChainExtensionAdapter struct{}

// NewChainExtensionAdapter creates a new chain extension adapter.
func NewChainExtensionAdapter() *ChainExtensionAdapter {
	return &ChainExtensionAdapter{}
}

// Call panics in non-WASM builds.
func (a *ChainExtensionAdapter) Call(uint32, []byte) (uint32, []byte) {
	panic("wasm: chain extension is only available in WASM builds")
}
