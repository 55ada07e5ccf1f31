package fixnum

func (i Int[S]) Equal(n Int[S]) bool {
	for k := 0; k < len(i.raw); k++ {
		if i.raw[k] != n.raw[k] {
			return false
		}
	}
	return true
}

// LessThan reports whether i < n.
//
// If the signs differ the negative operand is smaller. Otherwise the
// magnitude bits of the top cell are compared, then the remaining cells from
// most to least significant as unsigned bytes. Two's complement makes this
// ordering correct for negative pairs as well as positive ones.
func (i Int[S]) LessThan(n Int[S]) bool {
	if ineg := i.IsNegative(); ineg != n.IsNegative() {
		return ineg
	}

	itop, ntop := i.MostSignificantByteNoSign(), n.MostSignificantByteNoSign()
	if itop != ntop {
		return itop < ntop
	}

	for k := len(i.raw) - 2; k >= 0; k-- {
		if i.raw[k] != n.raw[k] {
			return i.raw[k] < n.raw[k]
		}
	}
	return false
}

func (i Int[S]) LessOrEqualTo(n Int[S]) bool {
	return i.LessThan(n) || i.Equal(n)
}

func (i Int[S]) GreaterThan(n Int[S]) bool {
	return !i.LessOrEqualTo(n)
}

func (i Int[S]) GreaterOrEqualTo(n Int[S]) bool {
	return !i.LessThan(n)
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
func (i Int[S]) Cmp(n Int[S]) int {
	if i.Equal(n) {
		return 0
	} else if i.LessThan(n) {
		return -1
	}
	return 1
}
