package sandbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdk "github.com/nftmart-dev/nftmart-contract-sdk"
	"github.com/nftmart-dev/nftmart-contract-sdk/contract"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
	"github.com/nftmart-dev/nftmart-contract-sdk/exttest"
	"github.com/nftmart-dev/nftmart-contract-sdk/hostfuncs"
)

func newNative(t *testing.T, hostOpts ...exttest.HostOption) (*NativeExecutor, *exttest.Host) {
	t.Helper()
	host, err := exttest.NewHost(hostOpts...)
	require.NoError(t, err)
	exec := NewNative(host, exttest.NewEnvironment(alice))

	ctor, err := sdk.BuildCall(contract.ConstructorName, nil)
	require.NoError(t, err)
	res, err := exec.Deploy(context.Background(), alice, ctor)
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	return exec, host
}

func callMessage(t *testing.T, exec *NativeExecutor, message string, args sdk.Args) entities.ExecResult {
	t.Helper()
	input, err := sdk.BuildCall(message, args)
	require.NoError(t, err)
	res, err := exec.Call(context.Background(), alice, input)
	require.NoError(t, err)
	return res
}

func TestNative_UpdateThenGet(t *testing.T) {
	exec, _ := newNative(t)

	res := callMessage(t, exec, "get", nil)
	require.True(t, res.IsSuccess())
	assert.Equal(t, make([]byte, 32), res.Data)

	res = callMessage(t, exec, "update", nil)
	require.True(t, res.IsSuccess())
	assert.Equal(t, []byte{0x00}, res.Data)
	require.Len(t, res.Events, 1)

	ev, err := contract.DecodeEvent(res.Events[0].Data)
	require.NoError(t, err)
	updated, ok := ev.(contract.RandomUpdated)
	require.True(t, ok)

	res = callMessage(t, exec, "get", nil)
	assert.Equal(t, updated.New[:], res.Data)
}

func TestNative_FailureRevertsWithoutEvents(t *testing.T) {
	exec, _ := newNative(t, exttest.WithFailing(extension.FuncCreateClass))

	res := callMessage(t, exec, "create_class", sdk.Args{"metadata": "m", "name": "n", "description": "d"})
	assert.True(t, res.IsReverted())
	assert.Equal(t, []byte{0x01, 0x00}, res.Data)
	assert.Empty(t, res.Events)
}

func TestNative_RevertRollsBackLedger(t *testing.T) {
	fixture := entities.HostFixture{Classes: []entities.ClassFixture{{
		ID:     1,
		Owner:  alice,
		Tokens: []entities.TokenFixture{{ID: 0, Quantity: 5, Owner: exttest.DefaultContractAccount}},
	}}}
	exec, host := newNative(t, exttest.WithFixture(fixture))

	res := callMessage(t, exec, "transfer_all", sdk.Args{
		"to": bob.String(),
		"items": []any{
			map[string]any{"class_id": 1, "token_id": 0, "quantity": 2},
			map[string]any{"class_id": 1, "token_id": 9, "quantity": 1},
		},
	})
	require.True(t, res.IsReverted())

	assert.Equal(t, entities.Quantity(5), host.Ledger().Balance(1, 0, exttest.DefaultContractAccount))
	assert.Equal(t, entities.Quantity(0), host.Ledger().Balance(1, 0, bob))
	assert.Equal(t, []extension.FuncID{extension.FuncTransfer, extension.FuncTransfer}, host.CallIDs())
}

func TestNative_MalformedInputTraps(t *testing.T) {
	exec, _ := newNative(t)

	res, err := exec.Call(context.Background(), alice, []byte{0xde, 0xad, 0xbe, 0xef})
	require.NoError(t, err)
	require.True(t, res.IsTrapped())
	assert.Contains(t, res.Error.Message, "unknown message selector")
}

func TestNative_ProtocolViolationTraps(t *testing.T) {
	bogus := hostfuncs.StaticBundle(hostfuncs.Response{Status: 7}, extension.FuncFetchRandom)
	exec, _ := newNative(t, exttest.WithOverride(bogus))

	before := callMessage(t, exec, "get", nil)

	res := callMessage(t, exec, "update", nil)
	require.True(t, res.IsTrapped())
	require.NotNil(t, res.Error.Wrapped)
	assert.Equal(t, "protocol", res.Error.Wrapped.Type)

	after := callMessage(t, exec, "get", nil)
	assert.Equal(t, before.Data, after.Data)
}
