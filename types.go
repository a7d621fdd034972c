// Package sdk is the client-side entry point of the NFTMart contract SDK. It turns loosely
// typed message arguments (as found in scenario files or JSON) into contract call data.
package sdk

import (
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/errors"
)

// Args holds message arguments keyed by their JSON field names.
type Args map[string]any

// ErrorDetail is re-exported from entities.
// Error Types: "extension", "protocol", "wire_format", "validation", "trap", "internal"
type ErrorDetail = entities.ErrorDetail

// ToErrorDetail converts a Go error to a structured ErrorDetail.
func ToErrorDetail(err error) *ErrorDetail {
	return errors.ToErrorDetail(err)
}

const (
	// Version of the SDK
	Version = "0.1.0-alpha"
	// ContractVersion is the version reported in contract metadata.
	ContractVersion = "0.1.0"
)
