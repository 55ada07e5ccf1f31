package fixnum

type RandSource interface {
	Uint64() uint64
}

// Rand generates a signed random integer of width S from an external source.
// Every bit, including the sign bit, is random.
func Rand[S Storage](source RandSource) (out Int[S]) {
	var word uint64
	for k := 0; k < len(out.raw); k++ {
		if k%8 == 0 {
			word = source.Uint64()
		}
		out.raw[k] = byte(word)
		word >>= 8
	}
	return out
}

// Larger returns the larger of a and b.
func Larger[S Storage](a, b Int[S]) Int[S] {
	if a.LessThan(b) {
		return b
	}
	return a
}

// Smaller returns the smaller of a and b.
func Smaller[S Storage](a, b Int[S]) Int[S] {
	if b.LessThan(a) {
		return b
	}
	return a
}

// Clamp limits v to the closed range [low, high]. If low > high the result
// is low whenever v < low, and high otherwise.
func Clamp[S Storage](v, low, high Int[S]) Int[S] {
	if v.LessThan(low) {
		return low
	} else if v.GreaterThan(high) {
		return high
	}
	return v
}

// Difference subtracts the smaller of a and b from the larger. The result
// wraps if the true difference does not fit.
func Difference[S Storage](a, b Int[S]) Int[S] {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}
