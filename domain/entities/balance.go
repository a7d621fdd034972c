package entities

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/holiman/uint256"
)

// balanceBytes is the width of the host's u128 balance.
const balanceBytes = 16

// Balance is the host's u128 balance type.
type Balance struct {
	v uint256.Int
}

// NewBalance returns a Balance holding n.
func NewBalance(n uint64) Balance {
	var b Balance
	b.v.SetUint64(n)
	return b
}

// BalanceFromUint256 returns a Balance holding v, or an error if v does not fit in 128 bits.
func BalanceFromUint256(v *uint256.Int) (Balance, error) {
	var b Balance
	if v.BitLen() > balanceBytes*8 {
		return b, fmt.Errorf("balance %s overflows u128", v.Dec())
	}
	b.v.Set(v)
	return b, nil
}

// Uint256 returns a copy of the underlying value.
func (b Balance) Uint256() *uint256.Int {
	return new(uint256.Int).Set(&b.v)
}

// IsZero reports whether the balance is zero.
func (b Balance) IsZero() bool {
	return b.v.IsZero()
}

// String returns the decimal form.
func (b Balance) String() string {
	return b.v.Dec()
}

// MarshalText renders the decimal form, so JSON carries the full u128 as a string.
func (b Balance) MarshalText() ([]byte, error) {
	return []byte(b.v.Dec()), nil
}

// UnmarshalText parses a decimal u128.
func (b *Balance) UnmarshalText(text []byte) error {
	var v uint256.Int
	if err := v.SetFromDecimal(string(text)); err != nil {
		return fmt.Errorf("invalid balance %q: %w", text, err)
	}
	parsed, err := BalanceFromUint256(&v)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Encode implements scale.Encodeable: 16 bytes little endian.
func (b Balance) Encode(e scale.Encoder) error {
	if b.v.BitLen() > balanceBytes*8 {
		return fmt.Errorf("balance %s overflows u128", b.v.Dec())
	}
	be := b.v.Bytes32()
	le := make([]byte, balanceBytes)
	for i := 0; i < balanceBytes; i++ {
		le[i] = be[len(be)-1-i]
	}
	return e.Write(le)
}

// Decode implements scale.Decodeable.
func (b *Balance) Decode(d scale.Decoder) error {
	le := make([]byte, balanceBytes)
	if err := d.Read(le); err != nil {
		return err
	}
	be := make([]byte, balanceBytes)
	for i := range le {
		be[balanceBytes-1-i] = le[i]
	}
	b.v.SetBytes(be)
	return nil
}
