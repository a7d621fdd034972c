package sandbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
	"github.com/nftmart-dev/nftmart-contract-sdk/exttest"
)

var (
	alice = entities.AccountID{0xA1}
	bob   = entities.AccountID{0xB0}
)

func newWasm(t *testing.T, hostOpts []exttest.HostOption, opts ...Option) (*WasmExecutor, *exttest.Host, *exttest.Environment) {
	t.Helper()
	ctx := context.Background()
	host, err := exttest.NewHost(hostOpts...)
	require.NoError(t, err)
	env := exttest.NewEnvironment(alice)

	exec, err := NewWasm(ctx, testContract(), host, env, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = exec.Close(ctx) })
	return exec, host, env
}

func call(t *testing.T, exec *WasmExecutor, caller entities.AccountID, input ...byte) entities.ExecResult {
	t.Helper()
	res, err := exec.Call(context.Background(), caller, input)
	require.NoError(t, err)
	return res
}

func TestWasm_Echo(t *testing.T) {
	exec, _, _ := newWasm(t, nil)

	res := call(t, exec, alice, 0, 9, 8)
	require.True(t, res.IsSuccess())
	assert.Equal(t, []byte{0, 9, 8}, res.Data)
	assert.Equal(t, OutcomeSuccess, Outcome(res))
}

func TestWasm_Deploy(t *testing.T) {
	exec, _, env := newWasm(t, nil)

	res, err := exec.Deploy(context.Background(), alice, []byte{0xAA})
	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	stored, ok := env.GetStorage(entities.Hash{})
	require.True(t, ok)
	assert.Equal(t, []byte{0xAA}, stored)
}

func TestWasm_StorageRoundTrip(t *testing.T) {
	exec, _, env := newWasm(t, nil)

	res := call(t, exec, alice, 3)
	require.True(t, res.IsSuccess())
	assert.Empty(t, res.Data, "empty slot")

	require.True(t, call(t, exec, alice, 2, 'a').IsSuccess())
	stored, ok := env.GetStorage(entities.Hash{})
	require.True(t, ok)
	assert.Equal(t, []byte{2, 'a'}, stored)

	res = call(t, exec, alice, 3)
	assert.Equal(t, []byte{2, 'a'}, res.Data)
}

func TestWasm_RevertRollsBackStorage(t *testing.T) {
	exec, _, env := newWasm(t, nil)
	require.True(t, call(t, exec, alice, 2, 1).IsSuccess())

	res := call(t, exec, alice, 1, 7)
	assert.True(t, res.IsReverted())
	assert.Equal(t, entities.FlagRevert, res.Flags)
	assert.Equal(t, OutcomeRevert, Outcome(res))

	stored, _ := env.GetStorage(entities.Hash{})
	assert.Equal(t, []byte{2, 1}, stored)
}

func TestWasm_Trap(t *testing.T) {
	exec, _, env := newWasm(t, nil)
	require.True(t, call(t, exec, alice, 2, 1).IsSuccess())

	res := call(t, exec, alice, 4)
	require.True(t, res.IsTrapped())
	assert.Equal(t, OutcomeTrap, Outcome(res))
	assert.Equal(t, "trap", res.Error.Type)
	assert.Nil(t, res.Data)

	stored, _ := env.GetStorage(entities.Hash{})
	assert.Equal(t, []byte{2, 1}, stored)

	assert.True(t, call(t, exec, alice, 0, 1).IsSuccess(), "the executor survives a trap")
}

func TestWasm_ChainExtension(t *testing.T) {
	exec, host, _ := newWasm(t, nil)

	res := call(t, exec, alice, 5)
	require.True(t, res.IsSuccess())
	require.Len(t, res.Data, 33)
	assert.Equal(t, byte(0), res.Data[0])

	reference, err := exttest.NewHost()
	require.NoError(t, err)
	want, err := reference.Extension(context.Background()).FetchRandom()
	require.NoError(t, err)
	assert.Equal(t, want[:], res.Data[1:])

	assert.Equal(t, []extension.FuncID{extension.FuncFetchRandom}, host.CallIDs())
}

func TestWasm_ChainExtensionFailure(t *testing.T) {
	exec, _, _ := newWasm(t, []exttest.HostOption{exttest.WithFailing(extension.FuncFetchRandom)})

	res := call(t, exec, alice, 5)
	require.True(t, res.IsSuccess())
	assert.Equal(t, []byte{1}, res.Data)
}

func TestWasm_Events(t *testing.T) {
	exec, _, _ := newWasm(t, nil)

	res := call(t, exec, alice, 6, 5)
	require.True(t, res.IsSuccess())
	require.Len(t, res.Events, 1)
	assert.Empty(t, res.Events[0].Topics)
	assert.Equal(t, []byte{6, 5}, res.Events[0].Data)

	res = call(t, exec, alice, 8, 5)
	assert.True(t, res.IsReverted())
	assert.Empty(t, res.Events, "reverted calls publish nothing")
}

func TestWasm_Caller(t *testing.T) {
	exec, _, _ := newWasm(t, nil)

	res := call(t, exec, bob, 7)
	assert.Equal(t, bob[:], res.Data)
}

func TestWasm_FallThroughReturnsNothing(t *testing.T) {
	exec, _, _ := newWasm(t, nil)

	res := call(t, exec, alice, 42)
	assert.True(t, res.IsSuccess())
	assert.Empty(t, res.Data)
}

func TestWasm_InputLargerThanBufferTraps(t *testing.T) {
	exec, _, _ := newWasm(t, nil)

	res := call(t, exec, alice, make([]byte, bufCap+1)...)
	require.True(t, res.IsTrapped())
	assert.Contains(t, res.Error.Message, "output buffer too small")
}

func TestWasm_MaxRequestSize(t *testing.T) {
	exec, _, env := newWasm(t, nil, WithMaxRequestSize(2))

	res := call(t, exec, alice, 2, 1, 2, 3)
	require.True(t, res.IsTrapped())
	assert.Contains(t, res.Error.Message, "exceeds maximum 2 bytes")

	_, ok := env.GetStorage(entities.Hash{})
	assert.False(t, ok)
}

func TestNewWasm_Rejects(t *testing.T) {
	ctx := context.Background()
	host, err := exttest.NewHost()
	require.NoError(t, err)
	env := exttest.NewEnvironment(alice)

	_, err = NewWasm(ctx, []byte("not wasm"), host, env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile contract")

	empty := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	_, err = NewWasm(ctx, empty, host, env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `does not export "deploy"`)
}
