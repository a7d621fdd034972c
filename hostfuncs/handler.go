package hostfuncs

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/errors"
	"github.com/nftmart-dev/nftmart-contract-sdk/wireformat"
)

// Status codes written back to the contract.
const (
	StatusOK   uint32 = 0
	StatusFail uint32 = 1
)

// Response is the host's answer to one extension call.
type Response struct {
	Output []byte
	Status uint32
}

// HostFunc is a typed extension function. Returning errors.ErrFail answers the contract
// with status 1; any other error traps the calling contract.
type HostFunc[Req any, Resp any] func(context.Context, Req) (Resp, error)

// ExtensionHandler receives the raw SCALE-encoded argument tuple.
// A non-nil error traps the calling contract.
type ExtensionHandler func(ctx context.Context, input []byte) (Response, error)

// NewSCALEHandler wraps a typed HostFunc into an ExtensionHandler.
// It decodes the request and encodes the response with the SCALE codec.
//
// Usage:
//
//	transfer := hostfuncs.NewSCALEHandler(func(ctx context.Context, req wireformat.TransferArgs) (wireformat.Unit, error) {
//	    return wireformat.Unit{}, ledger.Transfer(req)
//	})
func NewSCALEHandler[Req any, Resp any](fn HostFunc[Req, Resp]) ExtensionHandler {
	return func(ctx context.Context, input []byte) (Response, error) {
		var req Req
		if err := wireformat.DecodeExact(input, &req); err != nil {
			return Response{}, fmt.Errorf("failed to decode request: %w", err)
		}

		resp, err := fn(ctx, req)
		if stderrors.Is(err, errors.ErrFail) {
			return Response{Status: StatusFail}, nil
		}
		if err != nil {
			return Response{}, err
		}

		out, err := wireformat.Encode(resp)
		if err != nil {
			return Response{}, fmt.Errorf("failed to encode response: %w", err)
		}
		return Response{Output: out, Status: StatusOK}, nil
	}
}
