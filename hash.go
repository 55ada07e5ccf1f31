package fixnum

import (
	"github.com/cespare/xxhash/v2"
)

// Hash returns the 64-bit xxhash of the little-endian cells of i. Every value
// has exactly one representation, so equal values always hash equally.
func (i Int[S]) Hash() uint64 {
	return xxhash.Sum64(i.Bytes())
}
