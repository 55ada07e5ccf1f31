package fixnum

import (
	"math/big"
)

var (
	big1  = new(big.Int).SetInt64(1)
	big10 = new(big.Int).SetInt64(10)
)
