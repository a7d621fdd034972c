package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStatus(t *testing.T) {
	tests := []struct {
		code uint32
		want StatusOutcome
	}{
		{0, StatusSuccess},
		{1, StatusFail},
		{2, StatusUnknown},
		{255, StatusUnknown},
		{^uint32(0), StatusUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodeStatus(tt.code), "code %d", tt.code)
	}
}

func TestFromStatusCode(t *testing.T) {
	assert.NoError(t, FromStatusCode(2004, 0))
	assert.ErrorIs(t, FromStatusCode(2004, 1), ErrFail)
}

func TestFromStatusCode_UnknownCodePanics(t *testing.T) {
	for _, code := range []uint32{2, 3, 100, ^uint32(0)} {
		var recovered any
		func() {
			defer func() { recovered = recover() }()
			_ = FromStatusCode(2001, code)
		}()

		require.NotNil(t, recovered, "code %d must not decode to success or Fail", code)
		pv, ok := recovered.(*ProtocolViolation)
		require.True(t, ok, "panic value must be a *ProtocolViolation, got %T", recovered)
		assert.Equal(t, uint32(2001), pv.FuncID)
		assert.Equal(t, code, pv.Status)
	}
}
