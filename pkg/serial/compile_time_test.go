package serial

import (
	"fmt"

	"lukechampine.com/uint128"
)

var ( // compile-time checks
	_ fmt.Stringer = Number[uint8]{}
	_ fmt.Stringer = Number[uint128.Uint128]{}

	// Number is comparable with == so it can key maps.
	_ = map[Number[uint32]]struct{}{}
)
