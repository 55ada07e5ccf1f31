package fixnum

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// AsDecimal returns i as an apd.Decimal with an exponent of 0.
func (i Int[S]) AsDecimal() *apd.Decimal {
	return apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(i.AsBigInt()), 0)
}

// FromDecimal creates an Int from the integral part of d. The fractional part
// is discarded, truncating towards zero.
//
// Decimals outside the bounds of S are clamped to Min or Max and accurate is
// set to false. NaN becomes 0 and Infinity is clamped, also with accurate set
// to false.
func FromDecimal[S Storage](d *apd.Decimal) (out Int[S], accurate bool) {
	switch d.Form {
	case apd.NaN, apd.NaNSignaling:
		return out, false
	case apd.Infinite:
		if d.Negative {
			return Min[S](), false
		}
		return Max[S](), false
	}

	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	if integ.Coeff.Sign() == 0 {
		return out, true
	}

	// Every non-zero coefficient scaled by 10^e with e >= Bits[S]() is
	// already out of range, so there's no need to build the power.
	if integ.Exponent >= int32(Bits[S]()) {
		if integ.Negative {
			return Min[S](), false
		}
		return Max[S](), false
	}

	v := integ.Coeff.MathBigInt()
	if integ.Exponent > 0 {
		scale := new(big.Int).Exp(big10, big.NewInt(int64(integ.Exponent)), nil)
		v.Mul(v, scale)
	}
	if integ.Negative {
		v.Neg(v)
	}
	return FromBigInt[S](v)
}
