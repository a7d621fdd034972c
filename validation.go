package sdk

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a package-level singleton for better performance.
// Creating a new validator on each call is expensive; reusing is recommended.
var validate = validator.New()

// BindArgs converts an Args map into a message argument struct by way of JSON.
func BindArgs(args Args, target any) error {
	if args == nil {
		args = Args{}
	}
	jsonBytes, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("failed to marshal args map: %w", err)
	}
	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("failed to unmarshal args into %T: %w", target, err)
	}
	return nil
}

// ValidateArgs binds args into targetStruct and runs the validator on the result.
func ValidateArgs(args Args, targetStruct any) error {
	if err := BindArgs(args, targetStruct); err != nil {
		return err
	}
	if err := validate.Struct(targetStruct); err != nil {
		return fmt.Errorf("args validation failed: %w", err)
	}
	return nil
}
