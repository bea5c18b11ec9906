package serial

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"lukechampine.com/uint128"
)

var (
	mask64  = new(big.Int).SetUint64(math.MaxUint64)
	mask128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

// Truncate converts a plain number to the width of T the way a fixed width
// unsigned register would hold it. Integers keep the low Bits[T]() bits of
// their two's complement form, so Truncate[uint8](266) is 10 and
// Truncate[uint8](-1) is 255. Floats are first truncated toward zero and then
// reduced the same way; NaN and infinities become 0.
//
// Every comparison against a plain number goes through Truncate.
func Truncate[T Width, N Real](v N) T {
	if isFloat(v) {
		return narrow[T](fromBig(floatToInt(float64(v))))
	}
	u := uint128.From64(uint64(v))
	if v < 0 {
		u.Hi = math.MaxUint64
	}
	return narrow[T](u)
}

// Exact converts v to T like Truncate but fails with ErrOutOfRange unless v is
// a non-negative integer that fits in Bits[T]() bits.
func Exact[T Width, N Real](v N) (T, error) {
	var zero T
	if isFloat(v) {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return zero, fmt.Errorf("%v: %w", f, ErrOutOfRange)
		}
		i := floatToInt(f)
		if i.Sign() < 0 || uint(i.BitLen()) > Bits[T]() {
			return zero, fmt.Errorf("%v: %w", f, ErrOutOfRange)
		}
		return narrow[T](fromBig(i)), nil
	}
	if v < 0 {
		return zero, fmt.Errorf("%v: %w", v, ErrOutOfRange)
	}
	u := uint128.From64(uint64(v))
	t := narrow[T](u)
	if widen(t) != u {
		return zero, fmt.Errorf("%v: %w", v, ErrOutOfRange)
	}
	return t, nil
}

// Parse reads a serial number of width T from s. s uses Go integer literal
// syntax: decimal, or 0x, 0o and 0b prefixed, with optional underscores.
func Parse[T Width](s string) (Number[T], error) {
	i, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Number[T]{}, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}
	if i.Sign() < 0 || uint(i.BitLen()) > Bits[T]() {
		return Number[T]{}, fmt.Errorf("parse %q as %d-bit serial number: %w", s, Bits[T](), ErrOutOfRange)
	}
	return New(narrow[T](fromBig(i))), nil
}

func isFloat[N Real](v N) bool {
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

func floatToInt(f float64) *big.Int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return new(big.Int)
	}
	i, _ := big.NewFloat(f).Int(nil)
	return i
}

// fromBig reduces i modulo 2^128, using two's complement for negative values.
func fromBig(i *big.Int) uint128.Uint128 {
	r := new(big.Int).And(i, mask128)
	lo := new(big.Int).And(r, mask64).Uint64()
	hi := new(big.Int).Rsh(r, 64).Uint64()
	return uint128.New(lo, hi)
}
