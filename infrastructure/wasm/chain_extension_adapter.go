//go:build wasip1

package wasm

import (
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/internal/abi"
	_ "github.com/nftmart-dev/nftmart-contract-sdk/log" // Initialize debug logging handler
)

// Compile-time interface compliance check
var _ ports.ChainExtension = (*ChainExtensionAdapter)(nil)

// ChainExtensionAdapter implements ports.ChainExtension over seal_call_chain_extension.
type ChainExtensionAdapter struct{}

// NewChainExtensionAdapter creates a new chain extension adapter.
func NewChainExtensionAdapter() *ChainExtensionAdapter {
	return &ChainExtensionAdapter{}
}

// Call forwards the encoded arguments and copies the host output out of scratch.
func (a *ChainExtensionAdapter) Call(funcID uint32, input []byte) (uint32, []byte) {
	out := abi.Scratch()
	status := seal_call_chain_extension(funcID, abi.Ptr(input), abi.Len(input), out.Ptr(), out.LenPtr())
	return status, out.Bytes()
}
