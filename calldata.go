package sdk

import (
	"fmt"

	"github.com/nftmart-dev/nftmart-contract-sdk/contract"
)

// CallOption configures BuildCall.
type CallOption func(*callConfig)

type callConfig struct {
	validate bool
}

// WithValidation rejects arguments that the contract would refuse, before any call is made.
func WithValidation(enabled bool) CallOption {
	return func(c *callConfig) { c.validate = enabled }
}

// BuildCall encodes call data for the named message or constructor.
func BuildCall(message string, args Args, opts ...CallOption) ([]byte, error) {
	var cfg callConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if message == contract.ConstructorName {
		return contract.EncodeCall(message, nil)
	}
	m, ok := contract.LookupMessage(message)
	if !ok {
		return nil, fmt.Errorf("unknown message %q", message)
	}

	target := m.NewArgs()
	bind := BindArgs
	if cfg.validate {
		bind = ValidateArgs
	}
	if err := bind(args, target); err != nil {
		return nil, fmt.Errorf("message %s: %w", message, err)
	}
	return contract.EncodeCall(message, target)
}
