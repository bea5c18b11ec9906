package serial

import (
	"github.com/eigerco/serialnumber/internal/safemath"
	"lukechampine.com/uint128"
)

// Width is the closed set of unsigned integer types a Number can hold.
type Width interface {
	uint8 | uint16 | uint32 | uint64 | uint128.Uint128
}

// Real is any Go integer or floating point type accepted as a plain operand.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Bits returns the width W of T in bits.
func Bits[T Width]() uint {
	var t T
	switch any(t).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		return 128
	}
}

// CriticalDistance returns 2^(W-1), the distance at which two serial numbers
// of width W have no defined order.
func CriticalDistance[T Width]() T {
	return narrow[T](half[T]())
}

func half[T Width]() uint128.Uint128 {
	return safemath.Half(Bits[T]())
}

// widen zero-extends v to 128 bits.
func widen[T Width](v T) uint128.Uint128 {
	switch x := any(v).(type) {
	case uint8:
		return uint128.From64(uint64(x))
	case uint16:
		return uint128.From64(uint64(x))
	case uint32:
		return uint128.From64(uint64(x))
	case uint64:
		return uint128.From64(x)
	default:
		return any(v).(uint128.Uint128)
	}
}

// narrow keeps the low Bits[T]() bits of u.
func narrow[T Width](u uint128.Uint128) T {
	var t T
	switch p := any(&t).(type) {
	case *uint8:
		*p = uint8(u.Lo)
	case *uint16:
		*p = uint16(u.Lo)
	case *uint32:
		*p = uint32(u.Lo)
	case *uint64:
		*p = u.Lo
	case *uint128.Uint128:
		*p = u
	}
	return t
}
