/*
Package fixnum provides signed two's-complement integers of any fixed byte
width, from 1 byte up to 2048 bits.

The width is a type parameter: Int[[16]byte] is a 128-bit integer,
Int[[3]byte] is a 24-bit one. Aliases exist for the common widths (I128,
I256, I512, ...). Int values are plain arrays of bytes, so they are copied
by assignment, compared with ==, and never allocate.

All arithmetic wraps on overflow, modulo 2^(8*width), the same way Go's
native integers do. The only operations that can fail are division and
remainder by zero, which return ErrDivisionByZero.

Simple example:

	a := fixnum.FromInt[[32]byte](-3)
	b := fixnum.FromInt[[32]byte](4)
	fmt.Println(a.Mul(b))
	// Output: -12

Each operation comes in two forms: a value method that returns a new Int and
leaves its operands alone, and a pointer method that mutates the receiver:

	v := fixnum.One[[16]byte]()
	w := v.Add(v)   // v == 1, w == 2
	v.AddAssign(w)  // v == 3

Int values can be created from a variety of sources:

	FromInt[S, T constraints.Integer](v T) Int[S]
	From64[S](v int64) Int[S]
	FromU64[S](v uint64) Int[S]
	FromRaw[S](raw S) Int[S]
	FromBytes[S](le []byte) Int[S]
	FromBigInt[S](v *big.Int) (out Int[S], accurate bool)
	FromFloat64[S](f float64) (out Int[S], inRange bool)
	FromDecimal[S](d *apd.Decimal) (out Int[S], accurate bool)
	ParseInt[S](s string) (Int[S], error)

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler

Multiplication is performed by repeated addition and shifts by repeated
single-bit shifts, so both cost time proportional to the magnitude of the
right operand rather than to the width.
*/
package fixnum
