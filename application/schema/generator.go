// Package schema provides JSON schema generation for contract message arguments.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/errors"
	"github.com/nftmart-dev/nftmart-contract-sdk/wireformat"
)

var (
	bytesType      = reflect.TypeOf(entities.Bytes{})
	accountType    = reflect.TypeOf(entities.AccountID{})
	hashType       = reflect.TypeOf(entities.Hash{})
	optionBoolType = reflect.TypeOf(wireformat.OptionBool{})
	balanceType    = reflect.TypeOf(entities.Balance{})
)

// mapType describes types whose JSON form differs from their Go shape.
func mapType(t reflect.Type) *jsonschema.Schema {
	switch t {
	case bytesType:
		return &jsonschema.Schema{Type: "string", Description: "UTF-8 text or 0x-prefixed hex bytes"}
	case accountType, hashType:
		return &jsonschema.Schema{Type: "string", Pattern: "^0x[0-9a-fA-F]{64}$"}
	case optionBoolType:
		return &jsonschema.Schema{OneOf: []*jsonschema.Schema{{Type: "boolean"}, {Type: "null"}}}
	case balanceType:
		return &jsonschema.Schema{Type: "string", Description: "decimal u128"}
	}
	return nil
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
		DoNotReference: true,
		Anonymous:      true,
		Mapper:         mapType,
	}
}

// Reflect creates a JSON schema (Draft 2020-12) from a Go struct.
func Reflect(v any) *jsonschema.Schema {
	return newReflector().Reflect(v)
}

// GenerateSchema creates an indented JSON schema document from a Go struct.
func GenerateSchema(v any) ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(Reflect(v), "", "  ")
	if err != nil {
		return nil, &errors.SchemaError{Type: fmt.Sprintf("%T", v), Err: err}
	}
	return jsonBytes, nil
}
