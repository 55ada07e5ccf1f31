package fixnum

// Zero returns 0 at width S. It is the same as the zero value Int[S]{}.
func Zero[S Storage]() Int[S] { return Int[S]{} }

// One returns 1 at width S.
func One[S Storage]() (out Int[S]) {
	out.raw[0] = 1
	return out
}

// Min returns the smallest value representable at width S: only the sign
// bit set.
func Min[S Storage]() (out Int[S]) {
	out.FlipSignBit()
	return out
}

// Max returns the largest value representable at width S, the complement of
// Min.
func Max[S Storage]() Int[S] {
	return Min[S]().Not()
}

// Width returns the number of bytes in an Int[S].
func Width[S Storage]() int {
	var s S
	return len(s)
}

// Bits returns the number of bits in an Int[S], including the sign bit.
func Bits[S Storage]() int {
	return Width[S]() * 8
}
