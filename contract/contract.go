package contract

import (
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
	"github.com/nftmart-dev/nftmart-contract-sdk/wireformat"
)

// Name prefixes event signatures and identifies the contract in metadata.
const Name = "ContractDemo"

// StorageKey is the storage cell holding the contract's 32-byte value.
var StorageKey = entities.Hash{}

// ContractDemo is the demonstration contract.
type ContractDemo struct {
	env   ports.Environment
	ext   *extension.Extension
	value [32]byte
}

// New constructs a fresh contract whose stored value is all zeros.
func New(env ports.Environment, ext *extension.Extension) *ContractDemo {
	return &ContractDemo{env: env, ext: ext}
}

// Load restores a contract from storage. A missing cell reads as zero.
func Load(env ports.Environment, ext *extension.Extension) (*ContractDemo, error) {
	c := New(env, ext)
	raw, ok := env.GetStorage(StorageKey)
	if !ok {
		return c, nil
	}
	if err := wireformat.DecodeExact(raw, &c.value); err != nil {
		return nil, err
	}
	return c, nil
}

// Flush writes the stored value back to storage.
func (c *ContractDemo) Flush() {
	c.env.SetStorage(StorageKey, wireformat.MustEncode(c.value))
}

// TokenSummary is the (metadata, quantity, creation block) triplet returned by Tokens.
type TokenSummary struct {
	Metadata    entities.Metadata    `json:"metadata"`
	Quantity    entities.Quantity    `json:"quantity"`
	CreateBlock entities.BlockNumber `json:"create_block"`
}

// Tokens returns the metadata, quantity and creation block of a token.
// An absent token yields the empty triplet; the two cases are indistinguishable here.
func (c *ContractDemo) Tokens(classID entities.ClassID, tokenID entities.TokenID) TokenSummary {
	info, _ := c.ext.Tokens(classID, tokenID)
	return TokenSummary{
		Metadata:    info.Metadata,
		Quantity:    info.Quantity,
		CreateBlock: info.Data.CreateBlock,
	}
}

// CreateClass creates a class with no royalty and no categories and emits
// CreateClassFromContract.
func (c *ContractDemo) CreateClass(metadata entities.Metadata, name, description entities.Chars, properties uint8) error {
	return c.CreateClassWithRoyalty(wireformat.CreateClassArgs{
		Metadata:    metadata,
		Name:        name,
		Description: description,
		Properties:  properties,
		CategoryIDs: []entities.GlobalID{},
	})
}

// CreateClassWithRoyalty is CreateClass with a royalty rate and category ids.
func (c *ContractDemo) CreateClassWithRoyalty(args wireformat.CreateClassArgs) error {
	res, err := c.ext.CreateClass(args)
	if err != nil {
		return err
	}
	c.emit(CreateClassFromContract{Owner: res.Owner, ClassID: res.ClassID})
	return nil
}

// MintNFT mints tokens of classID to the caller.
func (c *ContractDemo) MintNFT(classID entities.ClassID, metadata entities.Metadata, quantity entities.Quantity, chargeRoyalty wireformat.OptionBool) error {
	_, err := c.ext.ProxyMint(c.env.Caller(), classID, metadata, quantity, chargeRoyalty)
	return err
}

// Transfer moves quantity of one token to to.
func (c *ContractDemo) Transfer(to entities.AccountID, classID entities.ClassID, tokenID entities.TokenID, quantity entities.Quantity) error {
	return c.ext.Transfer(to, classID, tokenID, quantity)
}

// TransferItem is one entry of TransferAll.
type TransferItem struct {
	ClassID  entities.ClassID  `json:"class_id"`
	TokenID  entities.TokenID  `json:"token_id"`
	Quantity entities.Quantity `json:"quantity" validate:"gte=1"`
}

// TransferAll transfers every item to to in order. The first failure stops the batch and is
// returned; transfers already made are not undone here.
func (c *ContractDemo) TransferAll(to entities.AccountID, items []TransferItem) error {
	for _, item := range items {
		if err := c.ext.Transfer(to, item.ClassID, item.TokenID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// Update replaces the stored value with fresh host randomness and emits RandomUpdated.
func (c *ContractDemo) Update() error {
	random, err := c.ext.FetchRandom()
	if err != nil {
		return err
	}
	c.value = random
	c.emit(RandomUpdated{New: random})
	return nil
}

// Get returns the stored value.
func (c *ContractDemo) Get() [32]byte {
	return c.value
}
