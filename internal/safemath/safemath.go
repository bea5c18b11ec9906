// Package safemath holds the wrapping 128-bit helpers that every serial number
// width is lifted onto.
package safemath

import (
	"lukechampine.com/uint128"
)

// MaxBits is the widest supported serial width.
const MaxBits = 128

var one = uint128.From64(1)

// Inc128 returns v+1 modulo 2^128.
func Inc128(v uint128.Uint128) uint128.Uint128 {
	return v.AddWrap(one)
}

// Half returns 2^(n-1), the critical distance for an n-bit serial space.
// n must be in [1, MaxBits].
func Half(n uint) uint128.Uint128 {
	return one.Lsh(n - 1)
}

// Mask returns 2^n - 1. n must be in [1, MaxBits].
func Mask(n uint) uint128.Uint128 {
	if n == MaxBits {
		return uint128.Max
	}
	return one.Lsh(n).SubWrap(one)
}

// AbsDiff returns |a-b| without any modular wrap.
func AbsDiff(a, b uint128.Uint128) uint128.Uint128 {
	if a.Cmp(b) < 0 {
		a, b = b, a
	}
	return a.SubWrap(b)
}

// Complement returns 2^n - d, the length of the other walk around an n-bit
// circle when one walk is d long. d must be in [1, 2^n - 1].
func Complement(d uint128.Uint128, n uint) uint128.Uint128 {
	return Inc128(Mask(n).SubWrap(d))
}
