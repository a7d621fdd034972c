package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNFTMartErr(t *testing.T) {
	err := fmt.Errorf("transfer: %w", ErrFail)

	assert.Equal(t, "nftmart: Fail", ErrFail.Error())
	assert.True(t, errors.Is(err, ErrFail))
	assert.True(t, errors.Is(&NFTMartErr{Code: Fail}, ErrFail), "copies match by code")

	var nerr *NFTMartErr
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, Fail, nerr.Code)
}

func TestProtocolViolation(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := &ProtocolViolation{FuncID: 1001, Reason: "malformed output", Cause: cause}

	assert.Equal(t, "chain extension protocol violation (func 1001): malformed output: unexpected EOF", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrFail))
}

func TestValidationError(t *testing.T) {
	baseErr := fmt.Errorf("quantity must be at least 1")
	err := &ValidationError{Message: "mint_nft", Err: baseErr}

	assert.Equal(t, "invalid arguments for mint_nft: quantity must be at least 1", err.Error())
	assert.True(t, errors.Is(err, baseErr))
}

func TestSchemaError(t *testing.T) {
	baseErr := fmt.Errorf("unsupported type")
	err := &SchemaError{Type: "TransferAllArgs", Err: baseErr}

	assert.Equal(t, "schema error for type TransferAllArgs: unsupported type", err.Error())
	assert.Equal(t, "schema error: unsupported type", (&SchemaError{Err: baseErr}).Error())
}

func TestWireFormatError(t *testing.T) {
	baseErr := fmt.Errorf("balance overflows u128")
	err := &WireFormatError{Operation: "encode", Type: "TokenData", Err: baseErr}

	assert.Equal(t, "wire format encode failed for TokenData: balance overflows u128", err.Error())

	var wireErr *WireFormatError
	require.True(t, errors.As(err, &wireErr))
	assert.Equal(t, "encode", wireErr.Operation)
}

func TestToErrorDetail(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType string
		wantCode string
	}{
		{"fail", ErrFail, "extension", "Fail"},
		{"wrapped fail", fmt.Errorf("mint: %w", ErrFail), "extension", "Fail"},
		{"protocol", &ProtocolViolation{FuncID: 2001, Status: 7, Reason: "x"}, "protocol", "protocol_violation"},
		{"wire", &WireFormatError{Operation: "decode", Type: "T", Err: errors.New("eof")}, "wire_format", "decode"},
		{"plain", errors.New("boom"), "internal", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := ToErrorDetail(tt.err)
			require.NotNil(t, detail)
			assert.Equal(t, tt.wantType, detail.Type)
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}

	assert.Nil(t, ToErrorDetail(nil))

	existing := entities.NewErrorDetail("trap", "unreachable")
	assert.Same(t, existing, ToErrorDetail(existing))
}
