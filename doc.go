// Package dynarray implements a generic, growable, contiguous-storage
// container whose memory is managed through an allocator capability.
//
// # Overview
//
// An Array owns one contiguous allocator-provided buffer plus a size and
// an allocator instance. Every lifecycle event funnels through the four
// allocator primitives — Allocate, Deallocate, Construct, Destroy — and
// the container guarantees they stay paired: each Construct meets exactly
// one Destroy, each Allocate meets exactly one Deallocate at the same
// slot count. This makes the package useful for:
//
//   - Element lifecycles that need hooks (pooled, tracked or counted storage)
//   - Predictable geometric growth independent of append's internals
//   - Auditing allocation behavior via CountingAllocator
//
// # Basic Usage
//
//	a := dynarray.Of(1, 2, 3)
//	defer a.Release() // return storage to the allocator
//
//	a.Push(4)
//	for _, v := range a.All() {
//		_ = v
//	}
//
//	b := dynarray.Repeat(3, 7, nil) // [7 7 7], default allocator
//	_ = dynarray.Equal(a, b)
//
// # Growth
//
// Capacity grows geometrically: the first growth seeds the initial
// capacity (default 8), then multiplies by the growth factor (default 2)
// until the requested minimum fits. Growth relocates live elements into
// the new buffer, destroys the old slots and releases the old buffer at
// the capacity it was allocated with. Reserve, Resize and ShrinkToFit
// reallocate to exact sizes instead.
//
// Reallocation invalidates anything previously returned by Data; there
// is no reference stability across mutation.
//
// # Thread Safety
//
// Array is not goroutine-safe and provides no internal synchronization.
// Callers needing shared access must serialize externally.
//
// # Errors
//
// Contract violations (out-of-range index, Pop on empty, invalid slice
// bounds) and allocation failures panic with a "dynarray:" prefixed
// message. A failed growth leaves the prior valid state intact: the new
// buffer is acquired before any field changes.
//
// # Comparison
//
// Equal and Compare are element-wise and lexicographic, in the manner of
// the standard slices package. Sum and EqualSum are a separate, strictly
// weaker scalar-accumulation comparison for numeric element types.
package dynarray
