package sandbox

import (
	"context"
	"fmt"

	"github.com/nftmart-dev/nftmart-contract-sdk/contract"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/exttest"
	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
	"github.com/nftmart-dev/nftmart-contract-sdk/hostfuncs"
)

var _ ports.ContractExecutor = (*NativeExecutor)(nil)

// NativeExecutor runs the contract package in-process.
type NativeExecutor struct {
	*state
	extOpts []extension.Option
}

// NewNative creates an executor that calls the contract package directly.
func NewNative(host *exttest.Host, env *exttest.Environment, opts ...Option) *NativeExecutor {
	s := newState(host, env, opts)
	return &NativeExecutor{
		state:   s,
		extOpts: []extension.Option{extension.WithLogger(s.cfg.logger)},
	}
}

// WithExtensionOptions passes options to the extension client used by the contract.
func (e *NativeExecutor) WithExtensionOptions(opts ...extension.Option) *NativeExecutor {
	e.extOpts = append(e.extOpts, opts...)
	return e
}

// Deploy runs the constructor.
func (e *NativeExecutor) Deploy(ctx context.Context, caller entities.AccountID, input []byte) (entities.ExecResult, error) {
	return e.execute(ctx, "deploy", caller, input, func(ctx context.Context) (string, error) {
		return "", e.guard(ctx, contract.Instantiate)
	}), nil
}

// Call runs the message selected by input.
func (e *NativeExecutor) Call(ctx context.Context, caller entities.AccountID, input []byte) (entities.ExecResult, error) {
	return e.execute(ctx, "call", caller, input, func(ctx context.Context) (string, error) {
		return "", e.guard(ctx, contract.Call)
	}), nil
}

type entryPoint func(context.Context, ports.Environment, *extension.Extension) error

// guard turns panics and entry point errors into traps, as the WASM build does.
func (e *NativeExecutor) guard(ctx context.Context, entry entryPoint) (trap error) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				trap = err
				return
			}
			trap = hostfuncs.NewPanicError(r)
		}
	}()

	ext := e.host.Extension(ctx, e.extOpts...)
	if err := entry(ctx, e.env, ext); err != nil {
		return fmt.Errorf("entry point failed: %w", err)
	}
	return nil
}
