package contract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/errors"
	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
	"github.com/nftmart-dev/nftmart-contract-sdk/exttest"
	"github.com/nftmart-dev/nftmart-contract-sdk/wireformat"
)

func call(t *testing.T, name string, args any) []byte {
	t.Helper()
	input, err := EncodeCall(name, args)
	require.NoError(t, err)
	return input
}

func TestSelectorOf(t *testing.T) {
	h := blake2b.Sum256([]byte("transfer_all"))
	assert.Equal(t, Selector{h[0], h[1], h[2], h[3]}, SelectorOf("transfer_all"))

	seen := map[Selector]string{SelectorOf(ConstructorName): ConstructorName}
	for _, m := range Messages() {
		prev, dup := seen[m.Selector]
		require.False(t, dup, "selector clash between %s and %s", m.Name, prev)
		seen[m.Selector] = m.Name
	}
	assert.Len(t, seen, 9)
}

func TestEncodeCall_UnknownMessage(t *testing.T) {
	_, err := EncodeCall("burn", nil)
	assert.Error(t, err)
}

func TestDeploy(t *testing.T) {
	f := newFixture(t)
	ext := f.host.Extension(context.Background())

	_, err := Deploy(context.Background(), f.env, ext, []byte{1, 2, 3, 4})
	require.Error(t, err)

	out, err := Deploy(context.Background(), f.env, ext, call(t, ConstructorName, nil))
	require.NoError(t, err)
	assert.False(t, out.Flags.Reverted())

	raw, ok := f.env.GetStorage(StorageKey)
	require.True(t, ok)
	assert.Equal(t, make([]byte, 32), raw)
}

func TestDispatch_UpdateThenGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ext := f.host.Extension(ctx)

	out, err := Dispatch(ctx, f.env, ext, call(t, "update", nil))
	require.NoError(t, err)
	assert.Equal(t, entities.ReturnFlags(0), out.Flags)
	require.NoError(t, DecodeResult(out.Data))

	out, err = Dispatch(ctx, f.env, ext, call(t, "get", nil))
	require.NoError(t, err)

	var value [32]byte
	require.NoError(t, wireformat.DecodeExact(out.Data, &value))
	assert.NotEqual(t, [32]byte{}, value)

	ev, err := DecodeEvent(f.env.Events()[0].Data)
	require.NoError(t, err)
	assert.Equal(t, RandomUpdated{New: value}, ev)
}

func TestDispatch_FailureRevertsAndSkipsFlush(t *testing.T) {
	f := newFixture(t, exttest.WithFailing(extension.FuncFetchRandom))
	ctx := context.Background()

	out, err := Dispatch(ctx, f.env, f.host.Extension(ctx), call(t, "update", nil))
	require.NoError(t, err)
	assert.True(t, out.Flags.Reverted())
	assert.Equal(t, []byte{0x01, 0x00}, out.Data)
	assert.ErrorIs(t, DecodeResult(out.Data), errors.ErrFail)

	_, ok := f.env.GetStorage(StorageKey)
	assert.False(t, ok)
}

func TestDispatch_Tokens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := Dispatch(ctx, f.env, f.host.Extension(ctx), call(t, "tokens", TokensArgs{ClassID: 1, TokenID: 1}))
	require.NoError(t, err)

	// empty metadata, zero quantity, zero block
	assert.Equal(t, append([]byte{0x00}, make([]byte, 12)...), out.Data)
}

func TestDispatch_TransferAll(t *testing.T) {
	f := newFixture(t, contractOwnsToken(1, 0, 1))
	ctx := context.Background()

	out, err := Dispatch(ctx, f.env, f.host.Extension(ctx), call(t, "transfer_all", TransferAllArgs{
		To: bob,
		Items: []TransferItem{
			{ClassID: 1, TokenID: 0, Quantity: 1},
			{ClassID: 1, TokenID: 1, Quantity: 2},
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, out.Data)
	assert.Equal(t, entities.Quantity(2), f.host.Ledger().Balance(1, 1, bob))
}

func TestDispatch_ValidationRejectsWithoutHostCalls(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		args any
	}{
		{"zero quantity mint", "mint_nft", MintNFTArgs{ClassID: 1, Quantity: 0}},
		{"oversized metadata", "create_class", CreateClassArgs{Metadata: make(entities.Metadata, MaxMetadataLen+1)}},
		{"zero quantity item", "transfer_all", TransferAllArgs{To: bob, Items: []TransferItem{{ClassID: 1, Quantity: 0}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			out, err := Dispatch(ctx, f.env, f.host.Extension(ctx), call(t, tt.msg, tt.args))
			require.NoError(t, err)
			assert.True(t, out.Flags.Reverted())
			assert.ErrorIs(t, DecodeResult(out.Data), errors.ErrFail)
			assert.Empty(t, f.host.Calls())
		})
	}
}

func TestDispatch_MalformedInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ext := f.host.Extension(ctx)

	_, err := Dispatch(ctx, f.env, ext, []byte{0x01})
	assert.ErrorContains(t, err, "too short")

	_, err = Dispatch(ctx, f.env, ext, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	assert.ErrorContains(t, err, "unknown message selector")

	sel := SelectorOf("transfer")
	_, err = Dispatch(ctx, f.env, ext, append(sel[:], 0x01))
	assert.ErrorContains(t, err, "decoding transfer arguments")
}

func TestCall_ReturnsThroughEnvironment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.env.Begin(alice, call(t, "get", nil))
	require.NoError(t, Call(ctx, f.env, f.host.Extension(ctx)))

	flags, data, ok := f.env.Returned()
	require.True(t, ok)
	assert.False(t, flags.Reverted())
	assert.Equal(t, make([]byte, 32), data)
}

func TestEventEncoding(t *testing.T) {
	ev := CreateClassFromContract{Owner: alice, ClassID: 0x01020304}
	data := EncodeEvent(ev)

	assert.Equal(t, byte(1), data[0])
	assert.Equal(t, alice[:], data[1:33])
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, data[33:])

	topics := ev.Topics()
	require.Len(t, topics, 2)
	assert.Equal(t, entities.Hash(blake2b.Sum256([]byte("ContractDemo::CreateClassFromContract"))), topics[0])

	_, err := DecodeEvent([]byte{7})
	assert.Error(t, err)
	_, err = DecodeEvent(nil)
	assert.Error(t, err)
}

func TestResultCodec(t *testing.T) {
	assert.NoError(t, DecodeResult(EncodeResult(nil)))
	assert.ErrorIs(t, DecodeResult(EncodeResult(errors.ErrFail)), errors.ErrFail)
	assert.Error(t, DecodeResult([]byte{0x02}))
}
