//go:build !wasip1

package wasm

import (
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
)

var _ ports.Environment = (*EnvironmentAdapter)(nil)

// EnvironmentAdapter is a stub for non-WASM builds.
type EnvironmentAdapter struct{}

// NewEnvironmentAdapter creates a new environment adapter.
func NewEnvironmentAdapter() *EnvironmentAdapter {
	return &EnvironmentAdapter{}
}

const stubMessage = "wasm: contract environment is only available in WASM builds"

// Caller panics in non-WASM builds.
func (a *EnvironmentAdapter) Caller() entities.AccountID { panic(stubMessage) }

// DepositEvent panics in non-WASM builds.
func (a *EnvironmentAdapter) DepositEvent([]entities.Hash, []byte) { panic(stubMessage) }

// GetStorage panics in non-WASM builds.
func (a *EnvironmentAdapter) GetStorage(entities.Hash) ([]byte, bool) { panic(stubMessage) }

// SetStorage panics in non-WASM builds.
func (a *EnvironmentAdapter) SetStorage(entities.Hash, []byte) { panic(stubMessage) }

// Input panics in non-WASM builds.
func (a *EnvironmentAdapter) Input() []byte { panic(stubMessage) }

// Return panics in non-WASM builds.
func (a *EnvironmentAdapter) Return(entities.ReturnFlags, []byte) { panic(stubMessage) }
