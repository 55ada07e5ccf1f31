package fixnum

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// FromInt creates an Int from any native integer. The bytes of v are copied
// into the low cells and the remaining cells are sign-extended: filled with
// 0xFF if v is negative and 0x00 otherwise. Unsigned values are never
// negative, so they are zero-extended.
//
// If T is wider than S, v is truncated to the width of S, exactly like a Go
// conversion between integer types (int8(int64(x))).
func FromInt[S Storage, T constraints.Integer](v T) (out Int[S]) {
	// Converting to uint64 sign-extends signed T and zero-extends unsigned T,
	// so the first 8 cells come straight from u.
	u := uint64(v)
	var fill byte
	if v < 0 {
		fill = 0xFF
	}
	for k := 0; k < len(out.raw); k++ {
		if k < 8 {
			out.raw[k] = byte(u >> (uint(k) * 8))
		} else {
			out.raw[k] = fill
		}
	}
	return out
}

func From64[S Storage](v int64) Int[S]   { return FromInt[S](v) }
func From32[S Storage](v int32) Int[S]   { return FromInt[S](v) }
func From16[S Storage](v int16) Int[S]   { return FromInt[S](v) }
func From8[S Storage](v int8) Int[S]     { return FromInt[S](v) }
func FromU64[S Storage](v uint64) Int[S] { return FromInt[S](v) }
func FromU32[S Storage](v uint32) Int[S] { return FromInt[S](v) }
func FromU16[S Storage](v uint16) Int[S] { return FromInt[S](v) }
func FromU8[S Storage](v uint8) Int[S]   { return FromInt[S](v) }

// Resize converts v to another width. Widening sign-extends; narrowing
// keeps the low cells and discards the rest, like a Go integer conversion.
func Resize[D, S Storage](v Int[S]) (out Int[D]) {
	var fill byte
	if v.IsNegative() {
		fill = 0xFF
	}
	for k := 0; k < len(out.raw); k++ {
		if k < len(v.raw) {
			out.raw[k] = v.raw[k]
		} else {
			out.raw[k] = fill
		}
	}
	return out
}

// AsInt64 truncates i to fit in an int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i Int[S]) AsInt64() int64 {
	var u uint64
	n := len(i.raw)
	for k := 0; k < 8; k++ {
		var c byte
		if k < n {
			c = i.raw[k]
		} else if i.IsNegative() {
			c = 0xFF
		}
		u |= uint64(c) << (uint(k) * 8)
	}
	return int64(u)
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int[S]) IsInt64() bool {
	n := len(i.raw)
	if n <= 8 {
		return true
	}
	// The cells above the low 8 must all repeat bit 63.
	top := 7
	var fill byte
	if i.raw[top]&signBit != 0 {
		fill = 0xFF
	}
	for k := top + 1; k < n; k++ {
		if i.raw[k] != fill {
			return false
		}
	}
	return true
}

// AsUint64 truncates i to fit in a uint64, as uint64(i.AsInt64()) would.
func (i Int[S]) AsUint64() uint64 {
	return uint64(i.AsInt64())
}

// IsUint64 reports whether i can be represented as a uint64.
func (i Int[S]) IsUint64() bool {
	if i.IsNegative() {
		return false
	}
	for k := 8; k < len(i.raw); k++ {
		if i.raw[k] != 0 {
			return false
		}
	}
	return true
}

// IntoBigInt copies i into a big.Int, allowing you to retain and recycle
// memory.
func (i Int[S]) IntoBigInt(b *big.Int) {
	n := len(i.raw)
	be := make([]byte, n)
	for k := 0; k < n; k++ {
		be[n-k-1] = i.raw[k]
	}
	b.SetBytes(be)
	if i.IsNegative() {
		b.Sub(b, wrapBig(n*8))
	}
}

// AsBigInt allocates a new big.Int and copies i into it.
func (i Int[S]) AsBigInt() *big.Int {
	b := new(big.Int)
	i.IntoBigInt(b)
	return b
}

// FromBigInt creates an Int from a big.Int. Values outside the range of S
// are clamped to Min or Max and accurate is set to false.
func FromBigInt[S Storage](v *big.Int) (out Int[S], accurate bool) {
	n := Width[S]()
	bits := n * 8

	if v.Sign() >= 0 {
		if v.BitLen() > bits-1 {
			return Max[S](), false
		}
		fillFromBig(&out, v)
		return out, true
	}

	// -(2^(bits-1)) is the only negative value whose magnitude needs all the
	// bits; everything else must fit in bits-1.
	mag := new(big.Int).Neg(v)
	if mag.BitLen() > bits || (mag.BitLen() == bits && mag.TrailingZeroBits() != uint(bits-1)) {
		return Min[S](), false
	}
	fillFromBig(&out, new(big.Int).Add(v, wrapBig(bits)))
	return out, true
}

// fillFromBig writes the non-negative v, which must fit, into out.
func fillFromBig[S Storage](out *Int[S], v *big.Int) {
	n := len(out.raw)
	be := v.FillBytes(make([]byte, n))
	for k := 0; k < n; k++ {
		out.raw[k] = be[n-k-1]
	}
}

// wrapBig returns 1 << bits, the modulus for an Int of that many bits.
func wrapBig(bits int) *big.Int {
	return new(big.Int).Lsh(big1, uint(bits))
}
