package sandbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/sys"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
	"github.com/nftmart-dev/nftmart-contract-sdk/hostfuncs"
	"github.com/nftmart-dev/nftmart-contract-sdk/wireformat"
)

// sealModule is the import module name contracts use.
const sealModule = "seal0"

// seal_get_storage return codes.
const (
	returnSuccess     = 0
	returnKeyNotFound = 3
)

// registerHostFunctions exports the seal0 functions backed by the shared state.
// A panic inside a host function traps the calling contract.
func (e *WasmExecutor) registerHostFunctions(ctx context.Context) error {
	builder := e.runtime.NewHostModuleBuilder(sealModule)

	builder.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, funcID, inPtr, inLen, outPtr, outLenPtr uint32) uint32 {
			input := e.read(m, inPtr, inLen)
			resp, err := e.host.Registry().Invoke(ctx, extension.FuncID(funcID), input)
			if err != nil {
				e.cfg.logger.ErrorContext(ctx, "sandbox: extension handler failed",
					slog.Uint64("func_id", uint64(funcID)), slog.Any("error", err))
				panic(&hostfuncs.TrapError{FuncID: extension.FuncID(funcID), Err: err})
			}
			writeOutput(m, outPtr, outLenPtr, resp.Output)
			return resp.Status
		}).
		Export("seal_call_chain_extension")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, m api.Module, outPtr, outLenPtr uint32) {
			caller := e.env.Caller()
			writeOutput(m, outPtr, outLenPtr, caller[:])
		}).
		Export("seal_caller")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, m api.Module, topicsPtr, topicsLen, dataPtr, dataLen uint32) {
			var topics []entities.Hash
			if err := wireformat.DecodeExact(e.read(m, topicsPtr, topicsLen), &topics); err != nil {
				panic(fmt.Errorf("seal_deposit_event: malformed topics: %w", err))
			}
			e.env.DepositEvent(topics, e.read(m, dataPtr, dataLen))
		}).
		Export("seal_deposit_event")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, m api.Module, keyPtr, valuePtr, valueLen uint32) {
			e.env.SetStorage(readKey(m, keyPtr), e.read(m, valuePtr, valueLen))
		}).
		Export("seal_set_storage")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, m api.Module, keyPtr, outPtr, outLenPtr uint32) uint32 {
			value, ok := e.env.GetStorage(readKey(m, keyPtr))
			if !ok {
				return returnKeyNotFound
			}
			writeOutput(m, outPtr, outLenPtr, value)
			return returnSuccess
		}).
		Export("seal_get_storage")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, m api.Module, outPtr, outLenPtr uint32) {
			writeOutput(m, outPtr, outLenPtr, e.env.Input())
		}).
		Export("seal_input")

	builder.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, flags, dataPtr, dataLen uint32) {
			e.env.Return(entities.ReturnFlags(flags), e.read(m, dataPtr, dataLen))
			_ = m.CloseWithExitCode(ctx, 0)
			panic(sys.NewExitError(0))
		}).
		Export("seal_return")

	builder.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, strPtr, strLen uint32) uint32 {
			msg := e.read(m, strPtr, strLen)
			e.env.DebugMessage(msg)
			e.cfg.logger.DebugContext(ctx, "contract debug", slog.String("message", string(msg)))
			return returnSuccess
		}).
		Export("seal_debug_message")

	_, err := builder.Instantiate(ctx)
	return err
}

// read copies length bytes of guest memory.
func (e *WasmExecutor) read(m api.Module, ptr, length uint32) []byte {
	if length > e.cfg.maxRequestSize {
		panic(fmt.Errorf("guest buffer of %d bytes exceeds maximum %d bytes", length, e.cfg.maxRequestSize))
	}
	return readMemory(m, ptr, length)
}

func readMemory(m api.Module, ptr, length uint32) []byte {
	if length == 0 {
		return nil
	}
	data, ok := m.Memory().Read(ptr, length)
	if !ok {
		panic(fmt.Errorf("guest memory read out of range: ptr=%d len=%d", ptr, length))
	}
	return append([]byte(nil), data...)
}

func readKey(m api.Module, ptr uint32) entities.Hash {
	var key entities.Hash
	copy(key[:], readMemory(m, ptr, uint32(len(key))))
	return key
}

// writeOutput stores data at ptr and its length in the cell at lenPtr, which on entry holds
// the buffer capacity.
func writeOutput(m api.Module, ptr, lenPtr uint32, data []byte) {
	capacity, ok := m.Memory().ReadUint32Le(lenPtr)
	if !ok {
		panic(fmt.Errorf("guest length cell out of range: ptr=%d", lenPtr))
	}
	if uint32(len(data)) > capacity {
		panic(fmt.Errorf("guest output buffer too small: need %d bytes, have %d", len(data), capacity))
	}
	if len(data) > 0 && !m.Memory().Write(ptr, data) {
		panic(fmt.Errorf("guest memory write out of range: ptr=%d len=%d", ptr, len(data)))
	}
	m.Memory().WriteUint32Le(lenPtr, uint32(len(data)))
}
