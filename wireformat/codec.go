package wireformat

import (
	"bytes"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/errors"
)

// Encode SCALE-encodes v.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := guard(func() error { return scale.NewEncoder(&buf).Encode(v) }); err != nil {
		return nil, &errors.WireFormatError{Operation: "encode", Type: fmt.Sprintf("%T", v), Err: err}
	}
	return buf.Bytes(), nil
}

// MustEncode is Encode for values whose encoding cannot fail.
func MustEncode(v any) []byte {
	data, err := Encode(v)
	if err != nil {
		panic(err)
	}
	return data
}

// Decode SCALE-decodes data into the value pointed to by v.
// Bytes left over after v is fully decoded are ignored.
func Decode(data []byte, v any) error {
	if err := guard(func() error { return scale.NewDecoder(bytes.NewReader(data)).Decode(v) }); err != nil {
		return &errors.WireFormatError{Operation: "decode", Type: fmt.Sprintf("%T", v), Err: err}
	}
	return nil
}

// DecodeExact is Decode but rejects trailing bytes.
func DecodeExact(data []byte, v any) error {
	r := bytes.NewReader(data)
	if err := guard(func() error { return scale.NewDecoder(r).Decode(v) }); err != nil {
		return &errors.WireFormatError{Operation: "decode", Type: fmt.Sprintf("%T", v), Err: err}
	}
	if r.Len() > 0 {
		return &errors.WireFormatError{
			Operation: "decode",
			Type:      fmt.Sprintf("%T", v),
			Err:       fmt.Errorf("%d trailing bytes", r.Len()),
		}
	}
	return nil
}

// guard turns a panic inside the reflection codec into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("codec panic: %v", r)
		}
	}()
	return fn()
}
