package fixnum

// Increment adds one to i in place. Overflow wraps Max around to Min.
func (i *Int[S]) Increment() {
	carry := true
	for k := 0; carry && k < len(i.raw); k++ {
		i.raw[k], carry = incCell(i.raw[k])
	}
}

// Decrement subtracts one from i in place. Underflow wraps Min around to
// Max.
func (i *Int[S]) Decrement() {
	borrow := true
	for k := 0; borrow && k < len(i.raw); k++ {
		i.raw[k], borrow = decCell(i.raw[k])
	}
}

// Negate replaces i with its two's complement. Negating Min yields Min.
func (i *Int[S]) Negate() {
	for k := 0; k < len(i.raw); k++ {
		i.raw[k] = ^i.raw[k]
	}
	i.Increment()
}

// AbsAssign replaces i with its absolute value. Like Negate, Min stays Min.
func (i *Int[S]) AbsAssign() {
	if i.IsNegative() {
		i.Negate()
	}
}

// AddAssign adds n to i in place. The carry out of the most significant cell
// is discarded.
func (i *Int[S]) AddAssign(n Int[S]) {
	var carry bool
	for k := 0; k < len(i.raw); k++ {
		i.raw[k], carry = addCell(i.raw[k], n.raw[k], carry)
	}
}

// SubAssign subtracts n from i in place by adding -n.
func (i *Int[S]) SubAssign(n Int[S]) {
	n.Negate()
	i.AddAssign(n)
}

// MulAssign multiplies i by n in place; see Mul.
func (i *Int[S]) MulAssign(n Int[S]) {
	*i = i.Mul(n)
}

func (i Int[S]) Inc() Int[S] {
	i.Increment()
	return i
}

func (i Int[S]) Dec() Int[S] {
	i.Decrement()
	return i
}

func (i Int[S]) Neg() Int[S] {
	i.Negate()
	return i
}

func (i Int[S]) Abs() Int[S] {
	i.AbsAssign()
	return i
}

func (i Int[S]) Add(n Int[S]) Int[S] {
	i.AddAssign(n)
	return i
}

func (i Int[S]) Sub(n Int[S]) Int[S] {
	i.SubAssign(n)
	return i
}

// Mul returns the product of i and n.
//
// Overflow wraps around, as per the Go spec.
//
// The product is found by adding i to an accumulator |n| times, counting with
// an Int of the same width. It costs time proportional to |n|, so put the
// smaller magnitude on the right.
func (i Int[S]) Mul(n Int[S]) (dest Int[S]) {
	neg := n.IsNegative()
	abs := n.Abs()

	if abs.IsNegative() {
		// n is Min, whose magnitude doesn't fit. i * 2^(bits-1) keeps only the
		// lowest bit of i, shifted into the sign position.
		if i.raw[0]&1 != 0 {
			return Min[S]()
		}
		return dest
	}

	for c := (Int[S]{}); c.LessThan(abs); c.Increment() {
		dest.AddAssign(i)
	}

	if neg {
		dest.Negate()
	}
	return dest
}
