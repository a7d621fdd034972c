// Package metadata describes the demonstration contract's ABI: constructors, messages,
// events and the chain extension functions it depends on.
package metadata

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	sdk "github.com/nftmart-dev/nftmart-contract-sdk"
	"github.com/nftmart-dev/nftmart-contract-sdk/application/schema"
	"github.com/nftmart-dev/nftmart-contract-sdk/contract"
	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
)

// ContractMetadata is the published description of a contract.
type ContractMetadata struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	SDKVersion   string            `json:"sdk_version"`
	Constructors []ConstructorSpec `json:"constructors"`
	Messages     []MessageSpec     `json:"messages"`
	Events       []EventSpec       `json:"events"`
	Extension    []FunctionSpec    `json:"chain_extension"`
}

// ConstructorSpec describes a constructor.
type ConstructorSpec struct {
	Name     string `json:"name"`
	Selector string `json:"selector"`
}

// MessageSpec describes a callable message.
type MessageSpec struct {
	Args     *jsonschema.Schema `json:"args"`
	Name     string             `json:"name"`
	Selector string             `json:"selector"`
	Returns  string             `json:"returns"`
	Mutates  bool               `json:"mutates"`
	Fallible bool               `json:"fallible"`
}

// EventSpec describes an event. Index is the leading variant byte of its payload.
type EventSpec struct {
	Fields  *jsonschema.Schema `json:"fields"`
	Name    string             `json:"name"`
	Indexed []string           `json:"indexed"`
	Index   int                `json:"index"`
}

// FunctionSpec describes a chain extension function used by the contract.
type FunctionSpec struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	ID     uint32 `json:"id"`
}

// Build collects the metadata of the demonstration contract.
func Build() *ContractMetadata {
	md := &ContractMetadata{
		Name:       contract.Name,
		Version:    sdk.ContractVersion,
		SDKVersion: sdk.Version,
		Constructors: []ConstructorSpec{{
			Name:     contract.ConstructorName,
			Selector: contract.SelectorOf(contract.ConstructorName).String(),
		}},
	}

	for _, m := range contract.Messages() {
		md.Messages = append(md.Messages, MessageSpec{
			Name:     m.Name,
			Selector: m.Selector.String(),
			Returns:  m.Returns,
			Mutates:  m.Mutates,
			Fallible: m.Fallible,
			Args:     schema.Reflect(m.NewArgs()),
		})
	}

	for i, ev := range contract.EventTypes() {
		md.Events = append(md.Events, EventSpec{
			Name:    ev.Name(),
			Index:   i,
			Indexed: ev.Indexed(),
			Fields:  schema.Reflect(ev),
		})
	}

	for _, op := range extension.Catalogue.Operations() {
		md.Extension = append(md.Extension, FunctionSpec{
			ID:     uint32(op.ID),
			Name:   op.Name,
			Status: op.Status.String(),
		})
	}
	return md
}

// JSON renders the metadata as indented JSON.
func (m *ContractMetadata) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return data, nil
}

// Message finds a message by name.
func (m *ContractMetadata) Message(name string) (MessageSpec, bool) {
	for _, msg := range m.Messages {
		if msg.Name == name {
			return msg, true
		}
	}
	return MessageSpec{}, false
}
