package ports

import (
	"context"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
)

// ContractExecutor runs contract entry points against some host state.
//
// A trapped or reverted call is reported in the result, with its state changes discarded.
// An error means the call could not be attempted at all.
type ContractExecutor interface {
	Deploy(ctx context.Context, caller entities.AccountID, input []byte) (entities.ExecResult, error)
	Call(ctx context.Context, caller entities.AccountID, input []byte) (entities.ExecResult, error)
}
