package serial

import (
	"lukechampine.com/uint128"
)

// less reports whether i1 precedes i2. The difference is taken between the
// raw values after ordering them, so it never wraps; only its relation to
// 2^(W-1) decides the result. A difference of exactly 2^(W-1) is neither
// less nor greater.
func less[T Width](i1, i2 T) bool {
	a, b := widen(i1), widen(i2)
	switch c := a.Cmp(b); {
	case c == 0:
		return false
	case c < 0:
		return diff(b, a).Cmp(half[T]()) < 0
	default:
		return diff(a, b).Cmp(half[T]()) > 0
	}
}

func greater[T Width](i1, i2 T) bool {
	a, b := widen(i1), widen(i2)
	switch c := a.Cmp(b); {
	case c == 0:
		return false
	case c < 0:
		return diff(b, a).Cmp(half[T]()) > 0
	default:
		return diff(a, b).Cmp(half[T]()) < 0
	}
}

func diff(hi, lo uint128.Uint128) uint128.Uint128 {
	return hi.SubWrap(lo)
}

// Equal reports whether s and o hold the same integer.
func (s Number[T]) Equal(o Number[T]) bool { return s.n == o.n }

// NotEqual is the negation of Equal.
func (s Number[T]) NotEqual(o Number[T]) bool { return s.n != o.n }

// Less reports whether s precedes o in serial number order.
func (s Number[T]) Less(o Number[T]) bool { return less(s.n, o.n) }

// Greater reports whether s follows o in serial number order.
func (s Number[T]) Greater(o Number[T]) bool { return greater(s.n, o.n) }

// LessOrEqual reports whether s is equal to or precedes o.
func (s Number[T]) LessOrEqual(o Number[T]) bool { return s.n == o.n || less(s.n, o.n) }

// GreaterOrEqual reports whether s is equal to or follows o.
func (s Number[T]) GreaterOrEqual(o Number[T]) bool { return s.n == o.n || greater(s.n, o.n) }

// Compare returns -1, 0 or +1 as s precedes, equals or follows o. ok is
// false when s and o are exactly CriticalDistance apart and have no order.
func (s Number[T]) Compare(o Number[T]) (c int, ok bool) {
	switch {
	case s.n == o.n:
		return 0, true
	case less(s.n, o.n):
		return -1, true
	case greater(s.n, o.n):
		return 1, true
	}
	return 0, false
}

// EqualValue reports whether s equals v after truncation to the width of s.
func EqualValue[T Width, N Real](s Number[T], v N) bool {
	return s.n == Truncate[T](v)
}

// NotEqualValue is the negation of EqualValue.
func NotEqualValue[T Width, N Real](s Number[T], v N) bool {
	return s.n != Truncate[T](v)
}

// LessValue reports whether s precedes the truncated v.
func LessValue[T Width, N Real](s Number[T], v N) bool {
	return less(s.n, Truncate[T](v))
}

// GreaterValue reports whether s follows the truncated v.
func GreaterValue[T Width, N Real](s Number[T], v N) bool {
	return greater(s.n, Truncate[T](v))
}

// LessOrEqualValue reports whether s equals or precedes the truncated v.
func LessOrEqualValue[T Width, N Real](s Number[T], v N) bool {
	t := Truncate[T](v)
	return s.n == t || less(s.n, t)
}

// GreaterOrEqualValue reports whether s equals or follows the truncated v.
func GreaterOrEqualValue[T Width, N Real](s Number[T], v N) bool {
	t := Truncate[T](v)
	return s.n == t || greater(s.n, t)
}

// ValueEqual reports whether the truncated v equals s.
func ValueEqual[T Width, N Real](v N, s Number[T]) bool {
	return Truncate[T](v) == s.n
}

// ValueNotEqual is the negation of ValueEqual.
func ValueNotEqual[T Width, N Real](v N, s Number[T]) bool {
	return Truncate[T](v) != s.n
}

// ValueLess reports whether the truncated v precedes s.
func ValueLess[T Width, N Real](v N, s Number[T]) bool {
	return less(Truncate[T](v), s.n)
}

// ValueGreater reports whether the truncated v follows s.
func ValueGreater[T Width, N Real](v N, s Number[T]) bool {
	return greater(Truncate[T](v), s.n)
}

// ValueLessOrEqual reports whether the truncated v equals or precedes s.
func ValueLessOrEqual[T Width, N Real](v N, s Number[T]) bool {
	t := Truncate[T](v)
	return t == s.n || less(t, s.n)
}

// ValueGreaterOrEqual reports whether the truncated v equals or follows s.
func ValueGreaterOrEqual[T Width, N Real](v N, s Number[T]) bool {
	t := Truncate[T](v)
	return t == s.n || greater(t, s.n)
}
