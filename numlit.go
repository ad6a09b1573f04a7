package numlit

import (
	"fmt"
	"math/big"
)

// Kind identifies which variant a Number holds. The parse cascade always
// selects the narrowest kind that can hold a literal's value, so two Numbers
// of different kinds are never equal even when numerically identical.
type Kind int

const (
	KindInt32 Kind = iota + 1
	KindInt64
	KindBigInt
	KindFloat64
)

func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindBigInt:
		return "bigint"
	case KindFloat64:
		return "float64"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Radix is the numeral base a literal was written in.
type Radix int

const (
	RadixBinary  Radix = 2
	RadixOctal   Radix = 8
	RadixDecimal Radix = 10
	RadixHex     Radix = 16
)

func (r Radix) Valid() bool {
	switch r {
	case RadixBinary, RadixOctal, RadixDecimal, RadixHex:
		return true
	}
	return false
}

// Flags records lexical details of the text a Float64 was parsed from. They
// carry no numeric meaning; rendering uses them to reproduce the original
// form. Both flags may be set at once ("1.5e3").
type Flags uint8

const (
	HasDecimalPoint Flags = 1 << iota
	HasScientificNotation
)

// Number is an immutable numeric value tagged with the radix it was written
// in and an optional, opaque type annotation. Numbers are value types; all
// operations return new values.
//
// The zero Number is not a valid value; construct via the NumberFrom
// functions, Zero, or NumberFromString.
type Number struct {
	kind  Kind
	radix Radix
	typ   string
	flags Flags
	i     int64
	f     float64
	big   *big.Int
}

// NumberFromInt32 stores v verbatim under the given radix. No validation is
// performed beyond what int32 itself enforces.
func NumberFromInt32(v int32, radix Radix, typ string) Number {
	return Number{kind: KindInt32, radix: radix, typ: typ, i: int64(v)}
}

func NumberFromInt64(v int64, radix Radix, typ string) Number {
	return Number{kind: KindInt64, radix: radix, typ: typ, i: v}
}

// NumberFromBigInt copies v; later changes to v do not affect the Number.
func NumberFromBigInt(v *big.Int, radix Radix, typ string) Number {
	return Number{kind: KindBigInt, radix: radix, typ: typ, big: new(big.Int).Set(v)}
}

// NumberFromFloat64 stores v with the given lexical flags. Floats are always
// radix 10.
func NumberFromFloat64(v float64, flags Flags, typ string) Number {
	return Number{kind: KindFloat64, radix: RadixDecimal, typ: typ, flags: flags, f: v}
}

// Zero returns the canonical zero for the given radix, which must be one of
// 2, 8, 10 or 16; anything else fails with ErrInvalidRadix.
func Zero(radix Radix, typ string) (Number, error) {
	if !radix.Valid() {
		return Number{}, fmt.Errorf("numlit: radix %d: %w", radix, ErrInvalidRadix)
	}
	return Number{kind: KindInt32, radix: radix, typ: typ}, nil
}

func (n Number) Kind() Kind   { return n.kind }
func (n Number) Radix() Radix { return n.radix }
func (n Number) Flags() Flags { return n.flags }

// Type returns the literal's type annotation, or "" if it has none. The
// annotation is opaque to this package and excluded from equality.
func (n Number) Type() string { return n.typ }

// WithType returns a copy of n carrying a different type annotation.
func (n Number) WithType(typ string) Number {
	n.typ = typ
	return n
}

func (n Number) IsZero() bool {
	switch n.kind {
	case KindBigInt:
		return n.big.Sign() == 0
	case KindFloat64:
		return n.f == 0
	default:
		return n.i == 0
	}
}

// AsInt64 returns the value as an int64, truncating BigInt and Float64
// payloads that do not fit. Use IsInt64 to check in advance.
func (n Number) AsInt64() int64 {
	switch n.kind {
	case KindBigInt:
		return n.big.Int64()
	case KindFloat64:
		return int64(n.f)
	default:
		return n.i
	}
}

func (n Number) IsInt64() bool {
	switch n.kind {
	case KindBigInt:
		return n.big.IsInt64()
	case KindFloat64:
		return n.f == float64(int64(n.f))
	default:
		return true
	}
}

// AsBigInt allocates a new big.Int holding the value. Float64 payloads are
// truncated towards zero.
func (n Number) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	switch n.kind {
	case KindBigInt:
		b.Set(n.big)
	case KindFloat64:
		b.SetInt64(int64(n.f))
	default:
		b.SetInt64(n.i)
	}
	return b
}

func (n Number) AsFloat64() float64 {
	switch n.kind {
	case KindBigInt:
		f, _ := new(big.Float).SetInt(n.big).Float64()
		return f
	case KindFloat64:
		return n.f
	default:
		return float64(n.i)
	}
}

// Equal reports whether n and o hold the same variant, the same radix and
// the same payload value. The type annotation does not participate: two
// literals that differ only in annotation are equal. Variant identity is
// part of value identity, so an Int32 never equals an Int64 holding the
// same number.
func (n Number) Equal(o Number) bool {
	if n.kind != o.kind || n.radix != o.radix {
		return false
	}
	switch n.kind {
	case KindBigInt:
		return n.big.Cmp(o.big) == 0
	case KindFloat64:
		return n.f == o.f
	default:
		return n.i == o.i
	}
}

func (n Number) Format(s fmt.State, c rune) {
	if n.kind == KindFloat64 {
		big.NewFloat(n.f).Format(s, c)
		return
	}
	n.AsBigInt().Format(s, c)
}

func (n Number) MarshalText() ([]byte, error) {
	if n.radix != RadixDecimal && n.kind != KindBigInt {
		return []byte(n.PrintString(PrintConfig{RespectRadix: true})), nil
	}
	return []byte(n.String()), nil
}

func (n *Number) UnmarshalText(bts []byte) (err error) {
	v, ok, err := NumberFromString(string(bts), "")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("numlit: invalid number %q", string(bts))
	}
	*n = v
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	bts, err := n.MarshalText()
	if err != nil {
		return nil, err
	}
	return []byte(`"` + string(bts) + `"`), nil
}

func (n *Number) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("numlit: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return n.UnmarshalText(bts)
}
