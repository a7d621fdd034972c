package wireformat

import (
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
)

// Field order below is wire order. Do not reorder.

// CreateClassArgs is the argument tuple of create_class (2002) as accepted by current hosts.
type CreateClassArgs struct {
	Metadata    entities.Metadata
	Name        entities.Chars
	Description entities.Chars
	Properties  uint8
	RoyaltyRate entities.PerU16
	CategoryIDs []entities.GlobalID
}

// Legacy returns the four-field tuple understood by older hosts.
func (a CreateClassArgs) Legacy() LegacyCreateClassArgs {
	return LegacyCreateClassArgs{
		Metadata:    a.Metadata,
		Name:        a.Name,
		Description: a.Description,
		Properties:  a.Properties,
	}
}

// LegacyCreateClassArgs is the four-field create_class tuple.
type LegacyCreateClassArgs struct {
	Metadata    entities.Metadata
	Name        entities.Chars
	Description entities.Chars
	Properties  uint8
}

// CreateClassResult is the (owner, class id) pair returned by create_class.
type CreateClassResult struct {
	Owner   entities.AccountID
	ClassID entities.ClassID
}

// ProxyMintArgs is the argument tuple of proxy_mint (2003).
type ProxyMintArgs struct {
	To            entities.AccountID
	ClassID       entities.ClassID
	Metadata      entities.Metadata
	Quantity      entities.Quantity
	ChargeRoyalty OptionBool
}

// ProxyMintResult is the (class owner, beneficiary, class id, token id, quantity) tuple
// returned by proxy_mint.
type ProxyMintResult struct {
	ClassOwner  entities.AccountID
	Beneficiary entities.AccountID
	ClassID     entities.ClassID
	TokenID     entities.TokenID
	Quantity    entities.Quantity
}

// TransferArgs is the argument tuple of transfer (2004).
type TransferArgs struct {
	To       entities.AccountID
	ClassID  entities.ClassID
	TokenID  entities.TokenID
	Quantity entities.Quantity
}

// TokensArgs is the argument tuple of the tokens query (1001).
type TokensArgs struct {
	ClassID entities.ClassID
	TokenID entities.TokenID
}

// Sr25519VerifyArgs is the argument tuple of sr25519_verify (1101).
type Sr25519VerifyArgs struct {
	Account   entities.AccountID
	Signature entities.Bytes
	Message   entities.Bytes
}
