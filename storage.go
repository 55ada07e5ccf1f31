package fixnum

//go:generate go run ./internal/gen/storagewidths -out storage_widths.go -max 256

// Int is a signed two's-complement integer stored in len(S) bytes.
//
// Cell 0 is the least significant byte; bit 7 of the last cell is the sign
// bit. There are no padding bits, so two Ints are equal (==) exactly when
// they hold the same value.
type Int[S Storage] struct {
	raw S
}

type (
	I8    = Int[[1]byte]
	I16   = Int[[2]byte]
	I24   = Int[[3]byte]
	I32   = Int[[4]byte]
	I64   = Int[[8]byte]
	I128  = Int[[16]byte]
	I192  = Int[[24]byte]
	I256  = Int[[32]byte]
	I512  = Int[[64]byte]
	I1024 = Int[[128]byte]
	I2048 = Int[[256]byte]
)

const (
	signBit  = 0x80
	signMask = 0x7F
)

// FromRaw is the complement to Int.Raw(); it creates an Int from its
// little-endian cells.
func FromRaw[S Storage](raw S) Int[S] {
	return Int[S]{raw: raw}
}

// FromBytes creates an Int from a little-endian byte slice. If le is shorter
// than the width, it is sign-extended from its last byte; if it is longer,
// the extra high bytes are discarded.
func FromBytes[S Storage](le []byte) (out Int[S]) {
	n := len(out.raw)
	var fill byte
	if len(le) > 0 && le[len(le)-1]&signBit != 0 {
		fill = 0xFF
	}
	for i := 0; i < n; i++ {
		if i < len(le) {
			out.raw[i] = le[i]
		} else {
			out.raw[i] = fill
		}
	}
	return out
}

// Raw returns a copy of the underlying cells. See FromRaw() for the
// counterpart.
func (i Int[S]) Raw() S { return i.raw }

// Width returns the number of bytes in i.
func (i Int[S]) Width() int { return len(i.raw) }

// BitLen returns the number of bits in i, including the sign bit.
func (i Int[S]) BitLen() int { return len(i.raw) * 8 }

// Byte returns cell idx, where 0 is the least significant. It panics if idx
// is outside [0, Width()).
func (i Int[S]) Byte(idx int) byte { return i.raw[idx] }

// SetByte overwrites cell idx.
func (i *Int[S]) SetByte(idx int, b byte) { i.raw[idx] = b }

// Bytes returns the cells of i as a new little-endian slice.
func (i Int[S]) Bytes() []byte {
	out := make([]byte, len(i.raw))
	for k := 0; k < len(i.raw); k++ {
		out[k] = i.raw[k]
	}
	return out
}

func (i Int[S]) MostSignificantByte() byte {
	return i.raw[len(i.raw)-1]
}

// MostSignificantByteNoSign returns the most significant cell with the sign
// bit cleared.
func (i Int[S]) MostSignificantByteNoSign() byte {
	return i.raw[len(i.raw)-1] & signMask
}

func (i Int[S]) IsNegative() bool {
	return i.raw[len(i.raw)-1]&signBit != 0
}

// FlipSignBit toggles the sign bit and nothing else. It is not negation;
// it is used to build Min and Max.
func (i *Int[S]) FlipSignBit() {
	i.raw[len(i.raw)-1] ^= signBit
}

func (i Int[S]) IsZero() bool {
	for k := 0; k < len(i.raw); k++ {
		if i.raw[k] != 0 {
			return false
		}
	}
	return true
}

// Bool reports whether i is non-zero.
func (i Int[S]) Bool() bool { return !i.IsZero() }

func (i Int[S]) Sign() int {
	if i.IsNegative() {
		return -1
	} else if i.IsZero() {
		return 0
	}
	return 1
}
