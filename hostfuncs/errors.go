package hostfuncs

import (
	"errors"
	"fmt"

	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
)

// ErrUnknownFunction is returned when no handler is registered for a function id.
var ErrUnknownFunction = errors.New("unknown chain extension function")

// PanicError is a handler panic recovered by PanicRecoveryMiddleware.
type PanicError struct {
	Value any
}

// NewPanicError wraps a recovered panic value.
func NewPanicError(value any) *PanicError {
	return &PanicError{Value: value}
}

func (e *PanicError) Error() string {
	switch v := e.Value.(type) {
	case error:
		return "panic: " + v.Error()
	case string:
		return "panic: " + v
	default:
		return fmt.Sprintf("panic: %v", v)
	}
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// TrapError aborts a contract call because an extension handler failed.
type TrapError struct {
	Err    error
	FuncID extension.FuncID
}

func (e *TrapError) Error() string {
	return fmt.Sprintf("contract trapped in extension function %d: %v", e.FuncID, e.Err)
}

func (e *TrapError) Unwrap() error {
	return e.Err
}
