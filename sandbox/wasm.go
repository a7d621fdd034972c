package sandbox

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/exttest"
)

var _ ports.ContractExecutor = (*WasmExecutor)(nil)

// WasmExecutor manages the lifecycle of a compiled contract.
type WasmExecutor struct {
	*state
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
}

// NewWasm compiles the contract and registers the seal0 host module.
func NewWasm(ctx context.Context, wasmBytes []byte, host *exttest.Host, env *exttest.Environment, opts ...Option) (*WasmExecutor, error) {
	e := &WasmExecutor{state: newState(host, env, opts)}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := e.registerHostFunctions(ctx); err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	compiled, err := rt.CompileModule(ctx, wasmBytes)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("failed to compile contract: %w", err)
	}
	for _, name := range []string{"deploy", "call"} {
		if _, ok := compiled.ExportedFunctions()[name]; !ok {
			_ = rt.Close(ctx)
			return nil, fmt.Errorf("contract does not export %q", name)
		}
	}
	e.compiled = compiled
	return e, nil
}

// Close releases resources held by the executor.
func (e *WasmExecutor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Deploy runs the deploy export.
func (e *WasmExecutor) Deploy(ctx context.Context, caller entities.AccountID, input []byte) (entities.ExecResult, error) {
	return e.invoke(ctx, "deploy", caller, input)
}

// Call runs the call export.
func (e *WasmExecutor) Call(ctx context.Context, caller entities.AccountID, input []byte) (entities.ExecResult, error) {
	return e.invoke(ctx, "call", caller, input)
}

// invoke runs entry in a fresh instance, so no guest memory survives between calls.
func (e *WasmExecutor) invoke(ctx context.Context, entry string, caller entities.AccountID, input []byte) (entities.ExecResult, error) {
	var setupErr error
	res := e.execute(ctx, entry, caller, input, func(ctx context.Context) (string, error) {
		var stderr bytes.Buffer
		cfg := wazero.NewModuleConfig().
			WithName("").
			WithStartFunctions().
			WithStderr(io.MultiWriter(&stderr, e.cfg.stderr))

		mod, err := e.runtime.InstantiateModule(ctx, e.compiled, cfg)
		if err != nil {
			setupErr = fmt.Errorf("failed to instantiate contract: %w", err)
			return "", nil
		}
		defer mod.Close(ctx)

		if init := mod.ExportedFunction("_initialize"); init != nil {
			if _, err := init.Call(ctx); err != nil {
				return stderr.String(), fmt.Errorf("failed to call _initialize: %w", err)
			}
		}

		_, err = mod.ExportedFunction(entry).Call(ctx)
		return stderr.String(), classifyExit(err, e.env)
	})
	if setupErr != nil {
		return entities.ExecResult{}, setupErr
	}
	return res, nil
}

// classifyExit separates seal_return, which unwinds the guest with exit code 0, from traps.
func classifyExit(err error, env *exttest.Environment) error {
	if err == nil {
		return nil
	}
	var exit *sys.ExitError
	if stderrors.As(err, &exit) && exit.ExitCode() == 0 {
		if _, _, returned := env.Returned(); returned {
			return nil
		}
	}
	return err
}
