package entities

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// TokenData is set by the host when a token is minted and never changes afterwards.
type TokenData struct {
	Deposit            Balance     `json:"deposit"`
	CreateBlock        BlockNumber `json:"create_block"`
	Royalty            bool        `json:"royalty"`
	Creator            AccountID   `json:"creator"`
	RoyaltyBeneficiary AccountID   `json:"royalty_beneficiary"`
}

// Encode implements scale.Encodeable.
func (t TokenData) Encode(e scale.Encoder) error {
	if err := e.Encode(t.Deposit); err != nil {
		return err
	}
	if err := e.Encode(uint32(t.CreateBlock)); err != nil {
		return err
	}
	if err := e.Encode(t.Royalty); err != nil {
		return err
	}
	if err := e.Encode(t.Creator); err != nil {
		return err
	}
	return e.Encode(t.RoyaltyBeneficiary)
}

// Decode implements scale.Decodeable.
func (t *TokenData) Decode(d scale.Decoder) error {
	if err := d.Decode(&t.Deposit); err != nil {
		return err
	}
	var block uint32
	if err := d.Decode(&block); err != nil {
		return err
	}
	t.CreateBlock = BlockNumber(block)
	if err := d.Decode(&t.Royalty); err != nil {
		return err
	}
	if err := d.Decode(&t.Creator); err != nil {
		return err
	}
	return d.Decode(&t.RoyaltyBeneficiary)
}

// TokenInfo is a snapshot of a token returned by the tokens query.
// The zero value is the empty TokenInfo substituted when a token is absent.
type TokenInfo struct {
	Metadata Metadata  `json:"metadata"`
	Quantity Quantity  `json:"quantity"`
	Data     TokenData `json:"data"`
}

// Encode implements scale.Encodeable.
func (t TokenInfo) Encode(e scale.Encoder) error {
	if err := e.Encode(t.Metadata); err != nil {
		return err
	}
	if err := e.Encode(uint64(t.Quantity)); err != nil {
		return err
	}
	return e.Encode(t.Data)
}

// Decode implements scale.Decodeable.
func (t *TokenInfo) Decode(d scale.Decoder) error {
	if err := d.Decode(&t.Metadata); err != nil {
		return err
	}
	var qty uint64
	if err := d.Decode(&qty); err != nil {
		return err
	}
	t.Quantity = Quantity(qty)
	return d.Decode(&t.Data)
}
