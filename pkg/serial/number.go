package serial

import (
	"github.com/eigerco/serialnumber/internal/safemath"
)

// Number is an RFC 1982 serial number of width Bits[T](). The zero value
// holds 0. Numbers are plain values; copying one yields an independent
// counter.
type Number[T Width] struct {
	n T
}

// New returns a serial number holding v.
func New[T Width](v T) Number[T] {
	return Number[T]{n: v}
}

// From returns a serial number holding Truncate[T](v).
func From[T Width, N Real](v N) Number[T] {
	return Number[T]{n: Truncate[T](v)}
}

// Value returns the stored integer.
func (s Number[T]) Value() T {
	return s.n
}

// Set replaces the stored integer with v.
func (s *Number[T]) Set(v T) {
	s.n = v
}

// Assign replaces the stored integer with the one held by o.
func (s *Number[T]) Assign(o Number[T]) {
	s.n = o.n
}

// Inc advances s by one, wrapping from the maximum value to zero, and returns
// the new state.
func (s *Number[T]) Inc() Number[T] {
	s.n = narrow[T](safemath.Inc128(widen(s.n)))
	return *s
}

// PostInc advances s by one like Inc but returns the state from before the
// increment.
func (s *Number[T]) PostInc() Number[T] {
	prev := *s
	s.Inc()
	return prev
}

// Distance returns the modular distance between s and o: the shorter of the
// two walks around the circle of 2^W values.
func (s Number[T]) Distance(o Number[T]) T {
	var zero T
	if s.n == o.n {
		return zero
	}
	d := safemath.AbsDiff(widen(s.n), widen(o.n))
	rest := safemath.Complement(d, Bits[T]())
	if rest.Cmp(d) < 0 {
		return narrow[T](rest)
	}
	return narrow[T](d)
}

func (s Number[T]) String() string {
	return widen(s.n).String()
}
