package fixnum

func (i Int[S]) Not() (out Int[S]) {
	for k := 0; k < len(i.raw); k++ {
		out.raw[k] = ^i.raw[k]
	}
	return out
}

func (i Int[S]) And(n Int[S]) Int[S] {
	i.AndAssign(n)
	return i
}

func (i Int[S]) Or(n Int[S]) Int[S] {
	i.OrAssign(n)
	return i
}

func (i Int[S]) Xor(n Int[S]) Int[S] {
	i.XorAssign(n)
	return i
}

// AndNot returns i &^ n.
func (i Int[S]) AndNot(n Int[S]) Int[S] {
	i.AndNotAssign(n)
	return i
}

func (i *Int[S]) AndAssign(n Int[S]) {
	for k := 0; k < len(i.raw); k++ {
		i.raw[k] &= n.raw[k]
	}
}

func (i *Int[S]) OrAssign(n Int[S]) {
	for k := 0; k < len(i.raw); k++ {
		i.raw[k] |= n.raw[k]
	}
}

func (i *Int[S]) XorAssign(n Int[S]) {
	for k := 0; k < len(i.raw); k++ {
		i.raw[k] ^= n.raw[k]
	}
}

func (i *Int[S]) AndNotAssign(n Int[S]) {
	for k := 0; k < len(i.raw); k++ {
		i.raw[k] &^= n.raw[k]
	}
}

// ShiftLeftOnce shifts i left by one bit. Bit 7 of each cell carries into
// bit 0 of the next; the bit leaving the top cell is lost.
func (i *Int[S]) ShiftLeftOnce() {
	var carry byte
	for k := 0; k < len(i.raw); k++ {
		msb := i.raw[k] >> 7
		i.raw[k] = (i.raw[k] << 1) | carry
		carry = msb
	}
}

// ShiftRightOnce shifts i right by one bit, walking from the most to the
// least significant cell. This is a logical shift: a zero enters the sign
// bit, so negative numbers become positive.
func (i *Int[S]) ShiftRightOnce() {
	var carry byte
	for k := len(i.raw) - 1; k >= 0; k-- {
		lsb := i.raw[k] & 1
		i.raw[k] = (i.raw[k] >> 1) | (carry << 7)
		carry = lsb
	}
}

// Lsh returns i << by. Shifting by a negative amount does nothing.
func (i Int[S]) Lsh(by Int[S]) Int[S] {
	i.LshAssign(by)
	return i
}

// Rsh returns the logical right shift i >> by; see ShiftRightOnce. Shifting
// by a negative amount does nothing.
func (i Int[S]) Rsh(by Int[S]) Int[S] {
	i.RshAssign(by)
	return i
}

// LshAssign shifts i left in place, one bit at a time, counting with an Int
// of the same width until the counter is no longer less than by.
func (i *Int[S]) LshAssign(by Int[S]) {
	for n := (Int[S]{}); n.LessThan(by); n.Increment() {
		if i.IsZero() {
			return // every further shift is a no-op
		}
		i.ShiftLeftOnce()
	}
}

func (i *Int[S]) RshAssign(by Int[S]) {
	for n := (Int[S]{}); n.LessThan(by); n.Increment() {
		if i.IsZero() {
			return
		}
		i.ShiftRightOnce()
	}
}

// Bit returns the value of the i'th bit of i, counting from the least
// significant. It panics if idx is outside [0, BitLen()).
func (i Int[S]) Bit(idx int) uint {
	return uint(i.raw[idx/8]>>(uint(idx)%8)) & 1
}

// SetBit returns a copy of i with the idx'th bit set to b (0 or 1).
func (i Int[S]) SetBit(idx int, b uint) Int[S] {
	mask := byte(1) << (uint(idx) % 8)
	if b == 0 {
		i.raw[idx/8] &^= mask
	} else {
		i.raw[idx/8] |= mask
	}
	return i
}

// Mirror returns i with the order of its cells reversed.
func (i Int[S]) Mirror() (out Int[S]) {
	n := len(i.raw)
	for k := 0; k < n; k++ {
		out.raw[k] = i.raw[n-k-1]
	}
	return out
}
