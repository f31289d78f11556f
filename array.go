// Package dynarray implements a growable contiguous container whose
// storage is managed through an allocator capability. Typical usage:
// build an array with one of the constructors, push and index elements,
// then Release() to return the storage to the allocator.
package dynarray

import "fmt"

// DefaultInitialCapacity is the capacity seeded on the first growth of
// an array that has never allocated.
const DefaultInitialCapacity = 8

// DefaultGrowthFactor is the default geometric growth multiplier.
const DefaultGrowthFactor = 2

// Array is a growable contiguous container of T. It owns exactly one
// allocator-provided buffer at a time; slots [0, size) hold live values,
// slots [size, len(buf)) are allocated but unconstructed. The zero-capacity
// state is a nil buffer.
//
// Not goroutine-safe. Callers needing shared access must serialize
// externally.
type Array[T any] struct {
	alloc      Allocator[T]
	buf        []T // nil iff capacity is zero; len(buf) is the capacity
	size       int
	initialCap int
	factor     int
}

// New returns an empty array with zero capacity. A nil alloc selects the
// runtime-backed GoAllocator.
func New[T any](alloc Allocator[T]) *Array[T] {
	return newArray(alloc, 0, 0)
}

// NewWithPolicy is New with an explicit growth policy. Values <= 0 (or a
// factor < 2) fall back to the defaults.
func NewWithPolicy[T any](initialCap, factor int, alloc Allocator[T]) *Array[T] {
	return newArray(alloc, initialCap, factor)
}

// Repeat returns an array of count copies of value. Capacity follows the
// geometric growth schedule, so it is the smallest initialCap*factor^k
// that holds count.
func Repeat[T any](count int, value T, alloc Allocator[T]) *Array[T] {
	if count < 0 {
		panic(fmt.Sprintf("dynarray: negative count %d", count))
	}
	a := newArray(alloc, 0, 0)
	a.buf = a.allocate(a.geometricCap(count))
	a.size = count
	a.constructRun(a.buf[:count], value)
	return a
}

// Zeroed returns an array of count zero values of T.
func Zeroed[T any](count int, alloc Allocator[T]) *Array[T] {
	var zero T
	return Repeat(count, zero, alloc)
}

// FromSlice returns an array holding a copy of each element of src, in
// order. src is read once and not retained.
func FromSlice[T any](src []T, alloc Allocator[T]) *Array[T] {
	a := newArray(alloc, 0, 0)
	a.buf = a.allocate(a.geometricCap(len(src)))
	a.size = len(src)
	a.constructCopy(a.buf, src)
	return a
}

// Of returns an array of the given values using the default allocator.
func Of[T any](values ...T) *Array[T] {
	return FromSlice(values, nil)
}

// Take move-constructs a new array: it assumes ownership of other's
// buffer and allocator and leaves other empty with zero capacity.
// The allocator travels with the buffer, so the eventual Deallocate is
// issued on the instance that performed the Allocate.
func Take[T any](other *Array[T]) *Array[T] {
	a := newArray(other.alloc, other.initialCap, other.factor)
	a.buf = other.buf
	a.size = other.size
	other.buf = nil
	other.size = 0
	return a
}

func newArray[T any](alloc Allocator[T], initialCap, factor int) *Array[T] {
	if alloc == nil {
		alloc = NewGoAllocator[T]()
	}
	if initialCap <= 0 {
		initialCap = DefaultInitialCapacity
	}
	if factor < 2 {
		factor = DefaultGrowthFactor
	}
	return &Array[T]{alloc: alloc, initialCap: initialCap, factor: factor}
}

// geometricCap returns the smallest capacity on the growth schedule that
// is >= minCap, seeding from the current capacity (or the initial
// capacity when nothing is allocated yet).
func (a *Array[T]) geometricCap(minCap int) int {
	c := len(a.buf)
	if c == 0 {
		c = a.initialCap
	}
	for c < minCap {
		c *= a.factor
	}
	return c
}

// allocate acquires n slots from the allocator, enforcing the failure
// contract: anything other than a length-n result is a failed allocation
// and panics before any container state has changed.
func (a *Array[T]) allocate(n int) []T {
	buf := a.alloc.Allocate(n)
	if len(buf) != n {
		panic(fmt.Sprintf("dynarray: allocator returned %d of %d requested slots", len(buf), n))
	}
	return buf
}

// realloc relocates the live elements into a fresh buffer of exactly
// newCap slots. The new buffer is acquired first, so a failing allocator
// leaves the array in its prior valid state. Old slots are destroyed
// after their value has been relocated and the old buffer is released at
// the capacity it was allocated with.
func (a *Array[T]) realloc(newCap int) {
	nb := a.allocate(newCap)
	a.constructCopy(nb, a.buf[:a.size])
	a.destroyRun(a.buf[:a.size])
	if a.buf != nil {
		a.alloc.Deallocate(a.buf, len(a.buf))
	}
	a.buf = nb
}

// grow ensures capacity >= minCap following the geometric schedule.
func (a *Array[T]) grow(minCap int) {
	target := a.geometricCap(minCap)
	if target == len(a.buf) {
		return
	}
	if a.buf == nil {
		a.buf = a.allocate(target)
		return
	}
	a.realloc(target)
}

// constructRun brings the slots of dst to life with copies of value.
func (a *Array[T]) constructRun(dst []T, value T) {
	for i := range dst {
		a.alloc.Construct(&dst[i], value)
	}
}

// constructCopy brings len(src) slots of dst to life with copies of
// src's elements, in order.
func (a *Array[T]) constructCopy(dst, src []T) {
	for i := range src {
		a.alloc.Construct(&dst[i], src[i])
	}
}

// destroyRun ends every live value in s.
func (a *Array[T]) destroyRun(s []T) {
	for i := range s {
		a.alloc.Destroy(&s[i])
	}
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.size }

// Capacity returns the number of allocated slots.
func (a *Array[T]) Capacity() int { return len(a.buf) }

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// At returns the element at index i.
func (a *Array[T]) At(i int) T {
	a.checkIndex(i)
	return a.buf[i]
}

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) {
	a.checkIndex(i)
	a.buf[i] = v
}

// Front returns the first element.
func (a *Array[T]) Front() T {
	if a.size == 0 {
		panic("dynarray: Front on empty array")
	}
	return a.buf[0]
}

// Back returns the last element.
func (a *Array[T]) Back() T {
	if a.size == 0 {
		panic("dynarray: Back on empty array")
	}
	return a.buf[a.size-1]
}

// Data returns the live elements as a contiguous slice sharing the
// array's storage. Any mutation that may reallocate (Push, Resize,
// Reserve, ShrinkToFit, assignment) invalidates the returned slice.
func (a *Array[T]) Data() []T { return a.buf[:a.size] }

// Push appends v, growing geometrically when size has reached capacity.
func (a *Array[T]) Push(v T) {
	if a.size == len(a.buf) {
		a.grow(a.size + 1)
	}
	a.alloc.Construct(&a.buf[a.size], v)
	a.size++
}

// PushAll appends each value in order.
func (a *Array[T]) PushAll(values ...T) {
	for _, v := range values {
		a.Push(v)
	}
}

// Pop removes and returns the last element. The vacated slot is
// destroyed so it is unconstructed for future overwrite.
func (a *Array[T]) Pop() T {
	if a.size == 0 {
		panic("dynarray: Pop on empty array")
	}
	a.size--
	v := a.buf[a.size]
	a.alloc.Destroy(&a.buf[a.size])
	return v
}

// RemoveAt deletes the element at index i, shifting every subsequent
// element one slot left. O(Len - i).
func (a *Array[T]) RemoveAt(i int) {
	a.checkIndex(i)
	a.size--
	for ; i < a.size; i++ {
		a.buf[i] = a.buf[i+1]
	}
	a.alloc.Destroy(&a.buf[a.size])
}

// Resize sets the length to n, destroying surplus elements or
// constructing zero values as needed. Grows capacity to exactly n when
// n exceeds it.
func (a *Array[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("dynarray: negative length %d", n))
	}
	if n > len(a.buf) {
		a.realloc(n)
	}
	if n < a.size {
		a.destroyRun(a.buf[n:a.size])
	}
	if n > a.size {
		var zero T
		a.constructRun(a.buf[a.size:n], zero)
	}
	a.size = n
}

// Clear destroys all live elements. Capacity is retained for reuse.
func (a *Array[T]) Clear() {
	a.destroyRun(a.buf[:a.size])
	a.size = 0
}

// Reserve grows capacity to exactly n when n exceeds the current
// capacity. Existing elements keep their values and indices.
func (a *Array[T]) Reserve(n int) {
	if n > len(a.buf) {
		a.realloc(n)
	}
}

// ShrinkToFit reallocates down to exactly Len() slots when capacity
// exceeds it. An empty array releases its buffer entirely.
func (a *Array[T]) ShrinkToFit() {
	if a.size == len(a.buf) {
		return
	}
	if a.size == 0 {
		a.alloc.Deallocate(a.buf, len(a.buf))
		a.buf = nil
		return
	}
	a.realloc(a.size)
}

// Slice returns a new array holding copies of the elements in
// [first, last). The new array uses this array's allocator.
func (a *Array[T]) Slice(first, last int) *Array[T] {
	if first < 0 || first > last || last > a.size {
		panic(fmt.Sprintf("dynarray: invalid slice bounds [%d, %d) with length %d", first, last, a.size))
	}
	return FromSlice(a.buf[first:last], a.alloc)
}

// CopyFrom replaces this array's contents with copies of other's
// elements, reusing the existing buffer when it is large enough.
// Self-assignment is a no-op.
func (a *Array[T]) CopyFrom(other *Array[T]) {
	if a == other {
		return
	}
	a.destroyRun(a.buf[:a.size])
	if len(a.buf) < other.size {
		old := a.buf
		a.buf = a.allocate(a.geometricCap(other.size))
		if old != nil {
			a.alloc.Deallocate(old, len(old))
		}
	}
	a.size = other.size
	a.constructCopy(a.buf, other.buf[:other.size])
}

// MoveFrom releases this array's storage and takes ownership of other's
// buffer, size and allocator, leaving other empty with zero capacity.
// Self-move is a no-op.
func (a *Array[T]) MoveFrom(other *Array[T]) {
	if a == other {
		return
	}
	a.destroyRun(a.buf[:a.size])
	if a.buf != nil {
		a.alloc.Deallocate(a.buf, len(a.buf))
	}
	a.buf = other.buf
	a.size = other.size
	a.alloc = other.alloc
	other.buf = nil
	other.size = 0
}

// Clone returns a copy of the array sharing its allocator. The clone's
// capacity covers the source's capacity, not just its length, preserving
// growth headroom.
func (a *Array[T]) Clone() *Array[T] {
	return a.CloneWith(a.alloc)
}

// CloneWith is Clone with a caller-supplied allocator for the copy.
func (a *Array[T]) CloneWith(alloc Allocator[T]) *Array[T] {
	c := newArray(alloc, a.initialCap, a.factor)
	c.buf = c.allocate(c.geometricCap(len(a.buf)))
	c.size = a.size
	c.constructCopy(c.buf, a.buf[:a.size])
	return c
}

// Release destroys every live element and returns the buffer to the
// allocator. The array is left valid and empty with zero capacity;
// releasing an empty array is a no-op.
func (a *Array[T]) Release() {
	if a.buf == nil {
		return
	}
	a.destroyRun(a.buf[:a.size])
	a.alloc.Deallocate(a.buf, len(a.buf))
	a.buf = nil
	a.size = 0
}

// Allocator returns the allocator instance held by the array.
func (a *Array[T]) Allocator() Allocator[T] { return a.alloc }

// SetAllocator replaces the allocator used for future allocations.
// The current buffer stays owned by the allocator that allocated it, so
// swapping while a buffer is live would break the deallocation pairing.
func (a *Array[T]) SetAllocator(alloc Allocator[T]) {
	if a.buf != nil {
		panic("dynarray: SetAllocator on array with live storage")
	}
	if alloc == nil {
		alloc = NewGoAllocator[T]()
	}
	a.alloc = alloc
}

func (a *Array[T]) checkIndex(i int) {
	if i < 0 || i >= a.size {
		panic(fmt.Sprintf("dynarray: index %d out of range [0, %d)", i, a.size))
	}
}
