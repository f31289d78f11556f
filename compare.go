package dynarray

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Comparison between arrays is element-wise: Equal requires matching
// lengths and equal elements at every index, Compare orders
// lexicographically with the first mismatching pair deciding and a
// shorter equal prefix comparing less. Sum and EqualSum are the
// separate, explicitly weaker scalar-accumulation comparison; see their
// doc comments.

// Equal reports whether a and b have the same length and equal elements
// at every index.
func Equal[T comparable](a, b *Array[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf[i] != b.buf[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal over arrays of possibly different element types,
// using eq to compare element pairs.
func EqualFunc[T, U any](a *Array[T], b *Array[U], eq func(T, U) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically, returning -1, 0 or 1. The
// first mismatching element pair decides; when one array is a prefix of
// the other, the shorter compares less.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare over arrays of possibly different element
// types, using fn to order element pairs.
func CompareFunc[T, U any](a *Array[T], b *Array[U], fn func(T, U) int) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := fn(a.buf[i], b.buf[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// Less reports whether a orders lexicographically before b.
func Less[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) < 0
}

// Number constrains the element types usable with Sum and EqualSum.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of all elements.
func Sum[T Number](a *Array[T]) T {
	var s T
	for i := 0; i < a.size; i++ {
		s += a.buf[i]
	}
	return s
}

// EqualSum reports whether the element sums of a and b are equal. This
// is a strictly weaker relation than Equal: arrays with different
// contents, or different lengths, compare equal whenever their sums
// coincide.
func EqualSum[T Number](a, b *Array[T]) bool {
	return Sum(a) == Sum(b)
}
