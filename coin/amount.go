package coin

import (
	"encoding/binary"
	"encoding/json"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	"github.com/iov-one/vesting/errors"
)

// AmountSize is the length of the binary representation of an Amount.
const AmountSize = 16

// Amount is an unsigned 128 bit integer value of the single asset held in
// escrow. The zero value is zero.
type Amount struct {
	hi, lo uint64
}

// NewAmount returns an amount holding given value.
func NewAmount(v uint64) Amount {
	return Amount{lo: v}
}

// MaxAmount returns the largest representable amount, 2^128 - 1.
func MaxAmount() Amount {
	return Amount{hi: ^uint64(0), lo: ^uint64(0)}
}

// ParseAmount parses a base 10 representation of an amount. Leading plus
// sign, fractions and negative values are rejected.
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return Amount{}, errors.Wrap(errors.ErrInput, "empty amount")
	}
	if strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return Amount{}, errors.Wrapf(errors.ErrInput, "invalid amount %q", s)
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return NewAmount(v), nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, errors.Wrapf(errors.ErrInput, "invalid amount %q", s)
	}
	return FromBig(n)
}

// FromBig converts a big integer into an amount. Negative values and values
// wider than 128 bits are rejected.
func FromBig(n *big.Int) (Amount, error) {
	if n.Sign() < 0 {
		return Amount{}, errors.Wrap(errors.ErrInput, "negative amount")
	}
	if n.Cmp(MaxAmount().Big()) > 0 {
		return Amount{}, errors.Wrap(errors.ErrOverflow, "amount exceeds 128 bits")
	}
	var buf [AmountSize]byte
	n.FillBytes(buf[:])
	return AmountFromBytes(buf[:])
}

// Big returns the value as a big integer.
func (a Amount) Big() *big.Int {
	b := a.Bytes()
	return new(big.Int).SetBytes(b)
}

// String returns the base 10 representation.
func (a Amount) String() string {
	if a.hi == 0 {
		return strconv.FormatUint(a.lo, 10)
	}
	return a.Big().String()
}

// IsZero returns true if the value is zero.
func (a Amount) IsZero() bool {
	return a.hi == 0 && a.lo == 0
}

// QuoUint64 returns the integer quotient a / d, dropping the remainder.
// Division by zero panics as it does for built in integers.
func (a Amount) QuoUint64(d uint64) Amount {
	q, _ := a.QuoRemUint64(d)
	return q
}

// QuoRemUint64 returns the integer quotient and the remainder of a / d.
func (a Amount) QuoRemUint64(d uint64) (Amount, uint64) {
	if d == 0 {
		panic("coin: division by zero")
	}
	hi, r := bits.Div64(0, a.hi, d)
	lo, r := bits.Div64(r, a.lo, d)
	return Amount{hi: hi, lo: lo}, r
}

// MulUint64 returns a * m. ErrOverflow is returned if the result does not fit
// in 128 bits.
func (a Amount) MulUint64(m uint64) (Amount, error) {
	loHi, lo := bits.Mul64(a.lo, m)
	hiHi, hi := bits.Mul64(a.hi, m)
	hi, carry := bits.Add64(hi, loHi, 0)
	if hiHi != 0 || carry != 0 {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s * %d", a, m)
	}
	return Amount{hi: hi, lo: lo}, nil
}

// Add returns a + b. ErrOverflow is returned if the result does not fit in
// 128 bits.
func (a Amount) Add(b Amount) (Amount, error) {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, carry := bits.Add64(a.hi, b.hi, carry)
	if carry != 0 {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s + %s", a, b)
	}
	return Amount{hi: hi, lo: lo}, nil
}

// Bytes returns the 16 byte big-endian representation.
func (a Amount) Bytes() []byte {
	b := make([]byte, AmountSize)
	binary.BigEndian.PutUint64(b[:8], a.hi)
	binary.BigEndian.PutUint64(b[8:], a.lo)
	return b
}

// AmountFromBytes decodes the representation returned by Bytes. An empty
// slice decodes to zero.
func AmountFromBytes(b []byte) (Amount, error) {
	switch len(b) {
	case 0:
		return Amount{}, nil
	case AmountSize:
		return Amount{
			hi: binary.BigEndian.Uint64(b[:8]),
			lo: binary.BigEndian.Uint64(b[8:]),
		}, nil
	default:
		return Amount{}, errors.Wrapf(errors.ErrEncoding, "amount must be %d bytes, got %d", AmountSize, len(b))
	}
}

// MarshalJSON encodes the amount as a decimal string. JSON numbers cannot
// carry 128 bit integers safely.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both a decimal string and a JSON number.
func (a *Amount) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return errors.Wrap(errors.ErrInput, "amount must be a string or a number")
		}
		s = n.String()
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
