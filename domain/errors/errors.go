// Package errors provides the error taxonomy of the chain extension protocol.
// All error types support unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// DetailedError is an interface for error types that can convert themselves
// to a structured ErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to our structured ErrorDetail.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// NFTMartErrCode enumerates the variants of NFTMartErr. Fail is the only one.
type NFTMartErrCode uint8

const (
	// Fail is a declared failure reported by a fallible extension call.
	Fail NFTMartErrCode = 0
)

func (c NFTMartErrCode) String() string {
	if c == Fail {
		return "Fail"
	}
	return fmt.Sprintf("NFTMartErrCode(%d)", uint8(c))
}

// NFTMartErr is the single recoverable error of the extension protocol.
type NFTMartErr struct {
	Code NFTMartErrCode
}

// ErrFail is returned by every fallible extension call whose status code is 1.
var ErrFail = &NFTMartErr{Code: Fail}

func (e *NFTMartErr) Error() string {
	return "nftmart: " + e.Code.String()
}

// Is matches any NFTMartErr with the same code, so errors.Is(err, ErrFail) works on copies.
func (e *NFTMartErr) Is(target error) bool {
	t, ok := target.(*NFTMartErr)
	return ok && t.Code == e.Code
}

// ToErrorDetail implements DetailedError.
func (e *NFTMartErr) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "extension", Code: e.Code.String()}
}

// ProtocolViolation is the panic value raised when the host answers outside the protocol:
// an unknown status code or a result buffer that does not decode to the declared shape.
// It is never returned as an error; in a contract it aborts the call.
type ProtocolViolation struct {
	Cause  error
	Reason string
	FuncID uint32
	Status uint32
}

func (e *ProtocolViolation) Error() string {
	msg := fmt.Sprintf("chain extension protocol violation (func %d): %s", e.FuncID, e.Reason)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ProtocolViolation) Unwrap() error {
	return e.Cause
}

// ToErrorDetail implements DetailedError.
func (e *ProtocolViolation) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message: e.Error(),
		Type:    "protocol",
		Code:    "protocol_violation",
		Details: map[string]any{"func_id": e.FuncID, "status": e.Status},
	}
}

// ValidationError reports message arguments rejected before any host call is made.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Message, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ValidationError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "validation", Code: e.Message}
}

// SchemaError represents a metadata schema generation error.
type SchemaError struct {
	Err  error
	Type string
}

func (e *SchemaError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("schema error for type %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("schema error: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *SchemaError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "validation", Code: "schema"}
}

// WireFormatError represents a SCALE encoding or decoding failure.
type WireFormatError struct {
	Err       error
	Operation string
	Type      string
}

func (e *WireFormatError) Error() string {
	return fmt.Sprintf("wire format %s failed for %s: %v", e.Operation, e.Type, e.Err)
}

func (e *WireFormatError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *WireFormatError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "wire_format", Code: e.Operation}
}
