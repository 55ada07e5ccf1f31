package fixnum

import (
	"math/bits"
)

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0,
// ErrDivisionByZero is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// Min / -1 overflows and wraps back to Min, with a remainder of 0.
func (i Int[S]) QuoRem(by Int[S]) (q, r Int[S], err error) {
	if by.IsZero() {
		return q, r, ErrDivisionByZero
	}

	qneg := i.IsNegative() != by.IsNegative()
	rneg := i.IsNegative()

	// Abs(Min) is still Min, but read as unsigned its bits are exactly the
	// magnitude 2^(bits-1), which is all the magnitude division needs.
	q, r = quoRemMagnitude(i.Abs(), by.Abs())
	if qneg {
		q.Negate()
	}
	if rneg {
		r.Negate()
	}
	return q, r, nil
}

// Quo returns the quotient i/by for by != 0. If by == 0, ErrDivisionByZero
// is returned. Quo implements truncated division (like Go); see QuoRem for
// more details.
func (i Int[S]) Quo(by Int[S]) (q Int[S], err error) {
	q, _, err = i.QuoRem(by)
	return q, err
}

// Rem returns the remainder of i%by for by != 0. If by == 0,
// ErrDivisionByZero is returned. Rem implements truncated modulus (like Go);
// see QuoRem for more details.
func (i Int[S]) Rem(by Int[S]) (r Int[S], err error) {
	_, r, err = i.QuoRem(by)
	return r, err
}

// QuoAssign divides i by by in place. On error, i is left unchanged.
func (i *Int[S]) QuoAssign(by Int[S]) error {
	q, _, err := i.QuoRem(by)
	if err != nil {
		return err
	}
	*i = q
	return nil
}

// RemAssign replaces i with i%by. On error, i is left unchanged.
func (i *Int[S]) RemAssign(by Int[S]) error {
	_, r, err := i.QuoRem(by)
	if err != nil {
		return err
	}
	*i = r
	return nil
}

// LeadingZeros returns the number of leading zero bits in i, treating the
// sign bit as an ordinary bit.
func (i Int[S]) LeadingZeros() int {
	var n int
	for k := len(i.raw) - 1; k >= 0; k-- {
		if i.raw[k] != 0 {
			return n + bits.LeadingZeros8(i.raw[k])
		}
		n += 8
	}
	return n
}

// TrailingZeros returns the number of trailing zero bits in i. Zero has
// BitLen() trailing zeros.
func (i Int[S]) TrailingZeros() int {
	var n int
	for k := 0; k < len(i.raw); k++ {
		if i.raw[k] != 0 {
			return n + bits.TrailingZeros8(i.raw[k])
		}
		n += 8
	}
	return n
}

// quoRemMagnitude divides u by by, reading both as unsigned integers. by must
// not be zero.
//
// It walks the bits of u from the highest set bit down, shifting each into a
// running remainder and subtracting the divisor whenever the remainder is not
// smaller than it.
func quoRemMagnitude[S Storage](u, by Int[S]) (q, r Int[S]) {
	top := u.BitLen() - u.LeadingZeros() - 1
	for bit := top; bit >= 0; bit-- {
		// {{{ Lsh(1) and bring down the next bit
		r.ShiftLeftOnce()
		r.raw[0] |= byte(u.Bit(bit))
		// }}}

		if !unsignedLess(r, by) {
			unsignedSubAssign(&r, by)
			q.raw[bit/8] |= 1 << (uint(bit) % 8)
		}
	}
	return q, r
}

// unsignedLess compares a and b as unsigned integers.
func unsignedLess[S Storage](a, b Int[S]) bool {
	for k := len(a.raw) - 1; k >= 0; k-- {
		if a.raw[k] != b.raw[k] {
			return a.raw[k] < b.raw[k]
		}
	}
	return false
}

// unsignedSubAssign subtracts b from a with an explicit borrow chain.
func unsignedSubAssign[S Storage](a *Int[S], b Int[S]) {
	var borrow bool
	for k := 0; k < len(a.raw); k++ {
		a.raw[k], borrow = subCell(a.raw[k], b.raw[k], borrow)
	}
}
