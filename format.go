package numlit

import (
	"strconv"
	"strings"
)

// PrintConfig controls the document-writer facing print form of a Number.
type PrintConfig struct {
	// RespectRadix renders non-decimal values in their stored base with the
	// conventional 0b/0o/0x prefix. When unset, everything prints in base 10.
	RespectRadix bool

	// ExponentChar replaces the 'E' marker on scientific-notation output.
	// Zero means 'E'.
	ExponentChar rune
}

// String renders the value in base 10 with no radix prefix, in a form that
// parses back losslessly for decimal literals.
func (n Number) String() string {
	return n.PrintString(PrintConfig{})
}

// AsBasicString renders the value in the given base with no radix prefix.
// The base need not match the stored radix; the value is re-expressed.
// BigInt values render in base 10 only: any other base panics, as the format
// has no arbitrary-precision representation outside base 10.
//
// Float64 values are always base 10; their form follows the lexical flags
// captured at parse time, so a literal written "1.0" prints "1.0" and one
// written "1e10" prints "1E+10".
func (n Number) AsBasicString(radix Radix) string {
	switch n.kind {
	case KindBigInt:
		if radix != RadixDecimal {
			panic("numlit: bigint rendering is base 10 only")
		}
		return n.big.String()
	case KindFloat64:
		return n.floatString()
	default:
		return strconv.FormatInt(n.i, int(radix))
	}
}

// PrintString renders the complete literal for a document writer, honoring
// the print configuration.
func (n Number) PrintString(conf PrintConfig) string {
	return string(n.AppendPrint(nil, conf))
}

// AppendPrint appends the printed literal to dst and returns the extended
// buffer.
func (n Number) AppendPrint(dst []byte, conf PrintConfig) []byte {
	if conf.RespectRadix && n.radix != RadixDecimal {
		switch n.radix {
		case RadixBinary:
			dst = append(dst, "0b"...)
		case RadixOctal:
			dst = append(dst, "0o"...)
		case RadixHex:
			dst = append(dst, "0x"...)
		}
		return append(dst, n.AsBasicString(n.radix)...)
	}

	s := n.AsBasicString(RadixDecimal)
	if ec := conf.ExponentChar; ec != 0 && ec != 'E' {
		s = strings.Replace(s, "E", string(ec), 1)
	}
	return append(dst, s...)
}

func (n Number) floatString() string {
	if n.flags&HasScientificNotation != 0 {
		prec := 0
		if n.flags&HasDecimalPoint != 0 {
			prec = 1
		}
		return trimExponent(strconv.FormatFloat(n.f, 'E', prec, 64))
	}

	// Fractional literals always round-trip with a visible decimal point:
	// an integral double prints "1.0", never "1".
	s := strconv.FormatFloat(n.f, 'f', -1, 64)
	if strings.IndexByte(s, '.') < 0 {
		s += ".0"
	}
	return s
}

// trimExponent strips strconv's exponent zero padding: "1E+09" becomes
// "1E+9".
func trimExponent(s string) string {
	e := strings.IndexByte(s, 'E')
	if e < 0 || e+2 >= len(s) {
		return s
	}
	mant, exp := s[:e+2], s[e+2:]
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mant + exp
}
