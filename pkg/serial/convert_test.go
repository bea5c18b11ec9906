package serial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, uint8(10), Truncate[uint8](266))
	assert.Equal(t, uint8(255), Truncate[uint8](-1))
	assert.Equal(t, uint8(128), Truncate[uint8](int8(math.MinInt8)))
	assert.Equal(t, uint16(0xffff), Truncate[uint16](int64(-1)))
	assert.Equal(t, uint32(1), Truncate[uint32](uint64(1<<32+1)))
	assert.Equal(t, uint64(math.MaxUint64), Truncate[uint64](uint64(math.MaxUint64)))
	assert.Equal(t, uint128.Max, Truncate[uint128.Uint128](int32(-1)))
	assert.Equal(t, uint128.From64(42), Truncate[uint128.Uint128](uint(42)))

	type seq uint16
	assert.Equal(t, uint8(0x34), Truncate[uint8](seq(0x1234)))
}

func TestTruncate_Float(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"integral", 42, 42},
		{"fraction dropped", 42.9, 42},
		{"wider than width", 266.5, 10},
		{"negative", -1, 255},
		{"negative fraction toward zero", -1.5, 255},
		{"small negative fraction", -0.5, 0},
		// 1e30 is a multiple of 2^30
		{"huge", 1e30, 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
		{"negative inf", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate[uint8](tt.in))
		})
	}

	assert.Equal(t, uint128.New(0, 1), Truncate[uint128.Uint128](math.Exp2(64)))
	assert.Equal(t, uint16(3), Truncate[uint16](float32(3.99)))
}

func TestExact(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		v, err := Exact[uint8](255)
		require.NoError(t, err)
		assert.Equal(t, uint8(255), v)

		w, err := Exact[uint128.Uint128](uint64(math.MaxUint64))
		require.NoError(t, err)
		assert.Equal(t, uint128.From64(math.MaxUint64), w)

		f, err := Exact[uint16](1024.0)
		require.NoError(t, err)
		assert.Equal(t, uint16(1024), f)
	})

	tests := []struct {
		name string
		err  func() error
	}{
		{"too wide", func() error { _, err := Exact[uint8](266); return err }},
		{"negative", func() error { _, err := Exact[uint32](-1); return err }},
		{"fraction", func() error { _, err := Exact[uint16](1.5); return err }},
		{"negative float", func() error { _, err := Exact[uint16](-2.0); return err }},
		{"float too wide", func() error { _, err := Exact[uint8](256.0); return err }},
		{"nan", func() error { _, err := Exact[uint64](math.NaN()); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err(), ErrOutOfRange)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := Parse[uint8]("250")
		require.NoError(t, err)
		assert.Equal(t, uint8(250), s.Value())

		h, err := Parse[uint16]("0xffff")
		require.NoError(t, err)
		assert.Equal(t, uint16(math.MaxUint16), h.Value())

		b, err := Parse[uint32]("0b1010")
		require.NoError(t, err)
		assert.Equal(t, uint32(10), b.Value())

		w, err := Parse[uint128.Uint128]("340282366920938463463374607431768211455")
		require.NoError(t, err)
		assert.Equal(t, uint128.Max, w.Value())
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := Parse[uint8]("256")
		assert.ErrorIs(t, err, ErrOutOfRange)

		_, err = Parse[uint64]("-1")
		assert.ErrorIs(t, err, ErrOutOfRange)

		_, err = Parse[uint128.Uint128]("340282366920938463463374607431768211456")
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("syntax", func(t *testing.T) {
		for _, in := range []string{"", "ten", "1.5", "0xzz"} {
			_, err := Parse[uint16](in)
			assert.ErrorIs(t, err, ErrSyntax, "input %q", in)
		}
	})

	t.Run("round trips String", func(t *testing.T) {
		roundTrip(t, New[uint8](0), New[uint8](math.MaxUint8))
		roundTrip(t, New[uint16](12345))
		roundTrip(t, New[uint32](math.MaxUint32))
		roundTrip(t, New[uint64](math.MaxUint64))
		roundTrip(t, New(uint128.New(12345, 67890)))
	})
}

func roundTrip[T Width](t *testing.T, values ...Number[T]) {
	t.Helper()
	for _, v := range values {
		got, err := Parse[T](v.String())
		require.NoError(t, err)
		assert.True(t, got.Equal(v), "%v != %v", got, v)
	}
}
