package wireformat

import (
	"encoding/json"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// OptionBool is an optional boolean. It has its own single-byte encoding:
// 0x00 for None, 0x01 for Some(true) and 0x02 for Some(false).
type OptionBool struct {
	Value   bool
	Present bool
}

// SomeBool returns a present OptionBool.
func SomeBool(v bool) OptionBool {
	return OptionBool{Value: v, Present: true}
}

// NoneBool returns an absent OptionBool.
func NoneBool() OptionBool {
	return OptionBool{}
}

// Encode implements scale.Encodeable.
func (o OptionBool) Encode(e scale.Encoder) error {
	switch {
	case !o.Present:
		return e.PushByte(0)
	case o.Value:
		return e.PushByte(1)
	default:
		return e.PushByte(2)
	}
}

// Decode implements scale.Decodeable.
func (o *OptionBool) Decode(d scale.Decoder) error {
	b, err := d.ReadOneByte()
	if err != nil {
		return err
	}
	switch b {
	case 0:
		*o = NoneBool()
	case 1:
		*o = SomeBool(true)
	case 2:
		*o = SomeBool(false)
	default:
		return fmt.Errorf("invalid OptionBool byte 0x%02x", b)
	}
	return nil
}

func (o OptionBool) String() string {
	if !o.Present {
		return "None"
	}
	return fmt.Sprintf("Some(%t)", o.Value)
}

// MarshalJSON renders None as null and Some(v) as v.
func (o OptionBool) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (o *OptionBool) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*o = NoneBool()
		return nil
	}
	*o = SomeBool(*v)
	return nil
}

// Option is an optional value encoded as 0x00 for None or 0x01 followed by the value.
type Option[T any] struct {
	Value   T
	Present bool
}

// Some returns a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// OrDefault returns the value, or the zero T when absent.
func (o Option[T]) OrDefault() T {
	if !o.Present {
		var zero T
		return zero
	}
	return o.Value
}

// Encode implements scale.Encodeable.
func (o Option[T]) Encode(e scale.Encoder) error {
	return e.EncodeOption(o.Present, o.Value)
}

// Decode implements scale.Decodeable.
func (o *Option[T]) Decode(d scale.Decoder) error {
	var v T
	if err := d.DecodeOption(&o.Present, &v); err != nil {
		return err
	}
	o.Value = v
	return nil
}

// Unit is the empty tuple. It encodes to no bytes.
type Unit struct{}

// Encode implements scale.Encodeable.
func (Unit) Encode(scale.Encoder) error { return nil }

// Decode implements scale.Decodeable.
func (*Unit) Decode(scale.Decoder) error { return nil }
