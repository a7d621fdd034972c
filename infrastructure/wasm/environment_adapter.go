//go:build wasip1

package wasm

import (
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/internal/abi"
	"github.com/nftmart-dev/nftmart-contract-sdk/wireformat"
)

var _ ports.Environment = (*EnvironmentAdapter)(nil)

// EnvironmentAdapter implements ports.Environment over the seal0 imports.
type EnvironmentAdapter struct{}

// NewEnvironmentAdapter creates a new environment adapter.
func NewEnvironmentAdapter() *EnvironmentAdapter {
	return &EnvironmentAdapter{}
}

// Caller returns the account that submitted the current call.
func (a *EnvironmentAdapter) Caller() entities.AccountID {
	out := abi.Scratch()
	seal_caller(out.Ptr(), out.LenPtr())
	var id entities.AccountID
	if err := wireformat.DecodeExact(out.Bytes(), &id); err != nil {
		panic(err)
	}
	return id
}

// DepositEvent publishes topics as a SCALE Vec<Hash> next to the event body.
func (a *EnvironmentAdapter) DepositEvent(topics []entities.Hash, data []byte) {
	enc := wireformat.MustEncode(topics)
	seal_deposit_event(abi.Ptr(enc), abi.Len(enc), abi.Ptr(data), abi.Len(data))
}

// GetStorage reads the value stored under key.
func (a *EnvironmentAdapter) GetStorage(key entities.Hash) ([]byte, bool) {
	out := abi.Scratch()
	if seal_get_storage(abi.Ptr(key[:]), out.Ptr(), out.LenPtr()) == returnKeyNotFound {
		return nil, false
	}
	return out.Bytes(), true
}

// SetStorage writes value under key.
func (a *EnvironmentAdapter) SetStorage(key entities.Hash, value []byte) {
	seal_set_storage(abi.Ptr(key[:]), abi.Ptr(value), abi.Len(value))
}

// Input returns the call data.
func (a *EnvironmentAdapter) Input() []byte {
	out := abi.Scratch()
	seal_input(out.Ptr(), out.LenPtr())
	return out.Bytes()
}

// Return ends execution. The host never resumes the guest after seal_return.
func (a *EnvironmentAdapter) Return(flags entities.ReturnFlags, data []byte) {
	seal_return(uint32(flags), abi.Ptr(data), abi.Len(data))
}
