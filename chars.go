package numlit

// Character predicates consumed by an enclosing tokenizer to decide when a
// numeric literal begins. The parser itself assumes it only ever sees text
// these predicates accepted.

// IsNumberStart reports whether r can begin a numeric literal: an ASCII
// digit, or a sign whose following character the tokenizer must check
// separately.
func IsNumberStart(r rune) bool {
	return IsDigitRune(r) || r == '-' || r == '+'
}

func IsDigitRune(r rune) bool {
	return r >= '0' && r <= '9'
}

// DigitVal returns the value of r as a digit in the given radix, or -1 if r
// is not a digit of that radix. Hex digits are accepted in either case.
func DigitVal(r rune, radix Radix) int {
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'f':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		v = int(r-'A') + 10
	default:
		return -1
	}
	if v >= int(radix) {
		return -1
	}
	return v
}

// IsDigitInRadix reports whether r is a valid digit for the given radix.
func IsDigitInRadix(r rune, radix Radix) bool {
	return DigitVal(r, radix) >= 0
}
