/*
Package numlit provides lossless parsing and printing of numeric literals
for a radix-preserving document format.

Number is a value type; all operations return new values. A literal's text
parses into the narrowest of four variants (Int32, Int64, BigInt, Float64)
that can hold it:

	n, ok, err := NumberFromString("0xFF", "")
	fmt.Println(n.Kind(), n.PrintString(PrintConfig{RespectRadix: true}))
	// Output: int32 0xff

Numbers remember the radix they were written in (binary, octal, decimal or
hexadecimal) and, for floats, whether the original text used a decimal point
or scientific notation, so printing reproduces a form equivalent to the
original literal: "1.0" prints as "1.0", never "1", and "1e10" prints as
"1E+10".

Numbers can be created from a variety of sources:

	NumberFromString(s string, typ string) (out Number, ok bool, err error)
	NumberFromDigits(digits string, radix Radix, flags Flags, typ string) (out Number, ok bool, err error)
	NumberFromInt32(v int32, radix Radix, typ string) Number
	NumberFromInt64(v int64, radix Radix, typ string) Number
	NumberFromBigInt(v *big.Int, radix Radix, typ string) Number
	NumberFromFloat64(v float64, flags Flags, typ string) Number
	Zero(radix Radix, typ string) (Number, error)

Number supports the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
*/
package numlit
