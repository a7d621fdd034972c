package entities

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// MaxBytesLen bounds the length prefix accepted when decoding a byte vector.
// Host output never exceeds the guest scratch buffer, so anything larger is malformed.
const MaxBytesLen = 1 << 20

type (
	// ClassID identifies a token class.
	ClassID uint32

	// TokenID identifies a token within a class.
	TokenID uint64

	// GlobalID identifies a category.
	GlobalID uint64

	// Quantity is a fungible amount of a token.
	Quantity uint64

	// PerU16 is a royalty rate in parts per 65535.
	PerU16 uint16

	// BlockNumber is the host block height.
	BlockNumber uint32
)

// Bytes is a variable-length byte vector, encoded with a compact length prefix.
type Bytes []byte

// Metadata is opaque class or token metadata.
type Metadata = Bytes

// Chars is UTF-8 text stored as bytes (class names and descriptions).
type Chars = Bytes

// Encode implements scale.Encodeable.
func (b Bytes) Encode(e scale.Encoder) error {
	if err := e.EncodeUintCompact(*big.NewInt(int64(len(b)))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return e.Write(b)
}

// Decode implements scale.Decodeable.
func (b *Bytes) Decode(d scale.Decoder) error {
	n, err := d.DecodeUintCompact()
	if err != nil {
		return err
	}
	if !n.IsUint64() || n.Uint64() > MaxBytesLen {
		return fmt.Errorf("byte vector length %s exceeds limit %d", n.String(), MaxBytesLen)
	}
	if n.Uint64() == 0 {
		*b = Bytes{}
		return nil
	}
	buf := make([]byte, n.Uint64())
	if err := d.Read(buf); err != nil {
		return err
	}
	*b = buf
	return nil
}

// AccountID is the host's 32-byte account identity.
// The codec writes fixed byte arrays raw, so it needs no Encode/Decode of its own;
// scale cannot decode into an array type that implements Decodeable.
type AccountID [32]byte

// String returns the 0x-prefixed hex form.
func (a AccountID) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// IsZero reports whether every byte is zero.
func (a AccountID) IsZero() bool {
	return a == AccountID{}
}

// ParseAccountID parses a 0x-prefixed or bare hex string of exactly 32 bytes.
func ParseAccountID(s string) (AccountID, error) {
	var a AccountID
	if err := parseHex32("account id", s, (*[32]byte)(&a)); err != nil {
		return a, err
	}
	return a, nil
}

func parseHex32(what, s string, dst *[32]byte) error {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	if len(raw) != len(dst) {
		return fmt.Errorf("invalid %s %q: want %d bytes, got %d", what, s, len(dst), len(raw))
	}
	copy(dst[:], raw)
	return nil
}

// UnmarshalText lets account ids appear as hex strings in YAML and JSON.
func (a *AccountID) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountID(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Hash is a 32-byte digest, used for storage keys and event topics.
type Hash [32]byte

// String returns the 0x-prefixed hex form.
func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// ParseHash parses a 0x-prefixed or bare hex string of exactly 32 bytes.
func ParseHash(s string) (Hash, error) {
	var h Hash
	if err := parseHex32("hash", s, (*[32]byte)(&h)); err != nil {
		return h, err
	}
	return h, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText accepts 0x-prefixed hex or plain UTF-8 text, so metadata and names can be
// written naturally in scenario files.
func (b *Bytes) UnmarshalText(text []byte) error {
	s := string(text)
	if strings.HasPrefix(s, "0x") {
		raw, err := hex.DecodeString(s[2:])
		if err != nil {
			return fmt.Errorf("invalid hex bytes %q: %w", s, err)
		}
		*b = raw
		return nil
	}
	*b = append(Bytes{}, text...)
	return nil
}

// MarshalText renders printable UTF-8 as-is and anything else as 0x-prefixed hex.
func (b Bytes) MarshalText() ([]byte, error) {
	if utf8.Valid(b) && !strings.HasPrefix(string(b), "0x") && isPrintable(b) {
		return append([]byte{}, b...), nil
	}
	return []byte("0x" + hex.EncodeToString(b)), nil
}

func isPrintable(b []byte) bool {
	for _, r := range string(b) {
		if !unicode.IsPrint(r) && r != '\n' && r != '\t' {
			return false
		}
	}
	return true
}
