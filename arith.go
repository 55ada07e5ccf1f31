package fixnum

// addCell adds two cells and an incoming carry, returning the sum and the
// outgoing carry.
//
// The carry is added in a second step rather than folded into the first sum:
// a + b can wrap and (a + b) + carry can wrap, and either one alone has to
// produce a carry. They cannot both wrap, so OR-ing the two is exact.
func addCell(a, b byte, carry bool) (sum byte, carryOut bool) {
	sum = a + b
	overflowedOnSum := sum < a // if the cell wrapped

	summed := sum
	if carry {
		sum++
	}
	overflowedOnCarry := sum < summed

	return sum, overflowedOnSum || overflowedOnCarry
}

// incCell adds one to a cell, reporting whether it wrapped to zero.
func incCell(c byte) (out byte, carry bool) {
	out = c + 1
	return out, c > out
}

// decCell subtracts one from a cell, reporting whether it wrapped to 0xFF.
func decCell(c byte) (out byte, borrow bool) {
	out = c - 1
	return out, c < out
}

// subCell subtracts b and an incoming borrow from a. Only the unsigned
// magnitude helpers in quo.go use it; signed subtraction goes through
// negation and addition.
func subCell(a, b byte, borrow bool) (diff byte, borrowOut bool) {
	diff = a - b
	underflowedOnDiff := diff > a

	diffed := diff
	if borrow {
		diff--
	}
	underflowedOnBorrow := diff > diffed

	return diff, underflowedOnDiff || underflowedOnBorrow
}
