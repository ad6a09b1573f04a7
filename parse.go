package numlit

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// NumberFromString parses the text of a numeric literal. A "0x", "0o" or
// "0b" prefix selects the radix and is stripped; any other leading character
// means radix 10. The narrowest variant that can hold the value is selected,
// widening int32 -> int64 -> big.Int on overflow.
//
// Empty or malformed text returns ok == false with a nil error: the text is
// not a number, and the caller's grammar decides whether that matters. A
// non-nil error is reserved for magnitudes the format cannot represent at
// all (see ErrUnsupportedMagnitude).
func NumberFromString(s string, typ string) (out Number, ok bool, err error) {
	if s == "" {
		return Number{}, false, nil
	}
	if s == "0" {
		z, _ := Zero(RadixDecimal, typ)
		return z, true, nil
	}

	radix, digits := RadixDecimal, s
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x':
			radix, digits = RadixHex, s[2:]
		case 'o':
			radix, digits = RadixOctal, s[2:]
		case 'b':
			radix, digits = RadixBinary, s[2:]
		}
	}

	var flags Flags
	if radix == RadixDecimal {
		if strings.ContainsAny(digits, "eE") {
			flags |= HasScientificNotation
		}
		if strings.IndexByte(digits, '.') >= 0 {
			flags |= HasDecimalPoint
		}
	}

	return NumberFromDigits(digits, radix, flags, typ)
}

// NumberFromDigits runs the overflow cascade on prefix-stripped digit text.
// Decimal-point and exponent forms go straight to Float64 (a "3.0" literal
// is always a float, never an integer); everything else walks
// int32 -> int64 -> big.Int, widening only on overflow.
func NumberFromDigits(digits string, radix Radix, flags Flags, typ string) (out Number, ok bool, err error) {
	if !radix.Valid() {
		return Number{}, false, fmt.Errorf("numlit: radix %d: %w", radix, ErrInvalidRadix)
	}
	if radix == RadixDecimal {
		return decimalFromDigits(digits, flags, typ)
	}
	return magnitudeFromDigits(digits, radix, typ)
}

func decimalFromDigits(digits string, flags Flags, typ string) (out Number, ok bool, err error) {
	switch {
	case flags&HasDecimalPoint != 0:
		f, ferr := strconv.ParseFloat(digits, 64)
		if ferr != nil {
			return Number{}, false, nil
		}
		return NumberFromFloat64(f, flags, typ), true, nil

	case flags&HasScientificNotation != 0:
		// Exponent forms parse through a decimal intermediate so the mantissa
		// is read exactly before the exponent is applied, keeping binary
		// rounding out of the intermediate step.
		d, _, derr := apd.NewFromString(digits)
		if derr != nil {
			return Number{}, false, nil
		}
		f, ferr := d.Float64()
		if ferr != nil {
			return Number{}, false, nil
		}
		return NumberFromFloat64(f, flags, typ), true, nil
	}

	if v, ierr := strconv.ParseInt(digits, 10, 32); ierr == nil {
		return NumberFromInt32(int32(v), RadixDecimal, typ), true, nil
	} else if !errors.Is(ierr, strconv.ErrRange) {
		return Number{}, false, nil
	}
	if v, ierr := strconv.ParseInt(digits, 10, 64); ierr == nil {
		return NumberFromInt64(v, RadixDecimal, typ), true, nil
	} else if !errors.Is(ierr, strconv.ErrRange) {
		return Number{}, false, nil
	}

	b, bok := new(big.Int).SetString(digits, 10)
	if !bok {
		return Number{}, false, nil
	}
	return Number{kind: KindBigInt, radix: RadixDecimal, typ: typ, big: b}, true, nil
}

// magnitudeFromDigits parses the unsigned-magnitude radices (2, 8, 16).
// These radices never hold negative values: a magnitude whose top bit would
// land in an int32 or int64 sign bit escalates to the next wider variant the
// same way a range overflow does, and a leading '-' is simply not a number.
func magnitudeFromDigits(digits string, radix Radix, typ string) (out Number, ok bool, err error) {
	u, uerr := strconv.ParseUint(digits, int(radix), 64)
	if uerr == nil {
		switch {
		case u <= math.MaxInt32:
			return NumberFromInt32(int32(u), radix, typ), true, nil
		case u <= math.MaxInt64:
			return NumberFromInt64(int64(u), radix, typ), true, nil
		}
	} else if !errors.Is(uerr, strconv.ErrRange) {
		return Number{}, false, nil
	}

	if radix != RadixHex {
		return Number{}, false, fmt.Errorf("numlit: radix %d: %w", radix, ErrUnsupportedMagnitude)
	}

	// The marker digit keeps the arbitrary-precision parse unsigned no
	// matter what sign convention the parser applies to a set high bit.
	b, bok := new(big.Int).SetString("0"+digits, 16)
	if !bok {
		return Number{}, false, nil
	}
	return Number{kind: KindBigInt, radix: RadixHex, typ: typ, big: b}, true, nil
}
