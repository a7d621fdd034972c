package contract

import (
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/wireformat"
)

// MaxMetadataLen bounds class and token metadata accepted by the contract.
const MaxMetadataLen = 16 * 1024

// Message argument tuples. Field order is wire order.

// NoArgs is the argument tuple of messages without parameters.
type NoArgs struct{}

// TokensArgs are the arguments of tokens.
type TokensArgs struct {
	ClassID entities.ClassID `json:"class_id"`
	TokenID entities.TokenID `json:"token_id"`
}

// CreateClassArgs are the arguments of create_class.
type CreateClassArgs struct {
	Metadata    entities.Metadata `json:"metadata" validate:"max=16384"`
	Name        entities.Chars    `json:"name" validate:"max=16384"`
	Description entities.Chars    `json:"description" validate:"max=16384"`
	Properties  uint8             `json:"properties"`
}

// CreateClassWithRoyaltyArgs are the arguments of create_class_with_royalty.
type CreateClassWithRoyaltyArgs struct {
	Metadata    entities.Metadata   `json:"metadata" validate:"max=16384"`
	Name        entities.Chars      `json:"name" validate:"max=16384"`
	Description entities.Chars      `json:"description" validate:"max=16384"`
	Properties  uint8               `json:"properties"`
	RoyaltyRate entities.PerU16     `json:"royalty_rate"`
	CategoryIDs []entities.GlobalID `json:"category_ids"`
}

// MintNFTArgs are the arguments of mint_nft.
type MintNFTArgs struct {
	ClassID       entities.ClassID      `json:"class_id"`
	Metadata      entities.Metadata     `json:"metadata" validate:"max=16384"`
	Quantity      entities.Quantity     `json:"quantity" validate:"gte=1"`
	ChargeRoyalty wireformat.OptionBool `json:"charge_royalty"`
}

// TransferArgs are the arguments of transfer.
type TransferArgs struct {
	To       entities.AccountID `json:"to"`
	ClassID  entities.ClassID   `json:"class_id"`
	TokenID  entities.TokenID   `json:"token_id"`
	Quantity entities.Quantity  `json:"quantity" validate:"gte=1"`
}

// TransferAllArgs are the arguments of transfer_all.
type TransferAllArgs struct {
	To    entities.AccountID `json:"to"`
	Items []TransferItem     `json:"items" validate:"dive"`
}
