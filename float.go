package fixnum

import (
	"math"
	"math/big"
)

func FromFloat32[S Storage](f float32) (out Int[S], inRange bool) {
	return FromFloat64[S](float64(f))
}

// FromFloat64 creates an Int from a float64.
//
// Any fractional portion will be truncated towards zero.
//
// Floats outside the bounds of S are clamped to Min or Max and inRange will
// be set to false.
//
// NaN is treated as 0, inRange is set to false.
func FromFloat64[S Storage](f float64) (out Int[S], inRange bool) {
	if f == 0 {
		return out, true

	} else if f != f { // f != f == isnan
		return out, false

	} else if math.IsInf(f, 1) {
		return Max[S](), false

	} else if math.IsInf(f, -1) {
		return Min[S](), false
	}

	// Int() truncates towards zero.
	b, _ := new(big.Float).SetFloat64(f).Int(nil)
	return FromBigInt[S](b)
}

func (i Int[S]) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(i.AsBigInt())
}

// AsFloat64 returns the nearest float64 to i.
func (i Int[S]) AsFloat64() float64 {
	if i.IsInt64() {
		return float64(i.AsInt64())
	}
	f, _ := i.AsBigFloat().Float64()
	return f
}
