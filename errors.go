package numlit

import "errors"

var (
	// ErrInvalidRadix is returned when a radix outside 2, 8, 10 or 16 is
	// requested.
	ErrInvalidRadix = errors.New("numlit: invalid radix")

	// ErrUnsupportedMagnitude is returned when a syntactically valid literal
	// is too large for any representation the format supports in its radix.
	// The arbitrary-precision fallback only exists for radix 10 and 16;
	// binary and octal literals top out at 63 bits of magnitude.
	ErrUnsupportedMagnitude = errors.New("numlit: magnitude unsupported in radix")
)
