package dynarray

import "iter"

// Values returns a forward iterator over the live elements.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.buf[i]) {
				return
			}
		}
	}
}

// All returns a forward iterator over index/element pairs.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over index/element pairs, last
// element first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.size - 1; i >= 0; i-- {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}
