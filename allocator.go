package dynarray

// Allocator is the capability set an Array needs from its storage provider:
// acquire a run of unconstructed slots, bring individual slots to life,
// end them, and release the run. Any type satisfying this interface is
// usable; the container consumes the capability, it never implements it.
//
// Contract: Allocate(n) returns a slice of length n on success. A result
// of any other length (nil included) is an allocation failure. Deallocate
// must be called with the same n the buffer was allocated with.
type Allocator[T any] interface {
	Allocate(n int) []T
	Deallocate(buf []T, n int)
	Construct(slot *T, v T)
	Destroy(slot *T)
}

// GoAllocator is the default Allocator backed by the Go runtime.
// Allocate uses make; Deallocate drops the reference and lets the GC
// reclaim the buffer. Destroy zeroes the slot so anything the element
// pointed at becomes collectable while the buffer itself lives on.
//
// GoAllocator is stateless and safe to share between arrays.
type GoAllocator[T any] struct{}

// NewGoAllocator returns the default runtime-backed allocator.
func NewGoAllocator[T any]() *GoAllocator[T] { return &GoAllocator[T]{} }

// Allocate returns n unconstructed slots.
func (*GoAllocator[T]) Allocate(n int) []T {
	if n <= 0 {
		return nil
	}
	return make([]T, n)
}

// Deallocate releases the buffer. With runtime-managed memory there is
// nothing to free eagerly; the reference drop is the release.
func (*GoAllocator[T]) Deallocate(buf []T, n int) {}

// Construct brings a slot to life with the value v.
func (*GoAllocator[T]) Construct(slot *T, v T) { *slot = v }

// Destroy ends a live slot's value by zeroing it.
func (*GoAllocator[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// CountingAllocator wraps an inner Allocator and counts every primitive
// call. It exists to make the container's pairing discipline observable:
// after an Array is released, Constructs must equal Destroys, Allocates
// must equal Deallocates, and LiveSlots must be zero.
//
// Not goroutine-safe, same as the container it serves.
type CountingAllocator[T any] struct {
	inner Allocator[T]

	allocates   int
	deallocates int
	constructs  int
	destroys    int
	liveSlots   int
}

// NewCountingAllocator wraps inner with call counting.
// A nil inner defaults to GoAllocator.
func NewCountingAllocator[T any](inner Allocator[T]) *CountingAllocator[T] {
	if inner == nil {
		inner = NewGoAllocator[T]()
	}
	return &CountingAllocator[T]{inner: inner}
}

// Allocate counts the call and forwards to the inner allocator.
func (c *CountingAllocator[T]) Allocate(n int) []T {
	buf := c.inner.Allocate(n)
	if len(buf) == n {
		c.allocates++
		c.liveSlots += n
	}
	return buf
}

// Deallocate counts the call and forwards to the inner allocator.
func (c *CountingAllocator[T]) Deallocate(buf []T, n int) {
	c.deallocates++
	c.liveSlots -= n
	c.inner.Deallocate(buf, n)
}

// Construct counts the call and forwards to the inner allocator.
func (c *CountingAllocator[T]) Construct(slot *T, v T) {
	c.constructs++
	c.inner.Construct(slot, v)
}

// Destroy counts the call and forwards to the inner allocator.
func (c *CountingAllocator[T]) Destroy(slot *T) {
	c.destroys++
	c.inner.Destroy(slot)
}

// AllocatorMetrics is a snapshot of a CountingAllocator's counters.
type AllocatorMetrics struct {
	Allocates   int // successful Allocate calls
	Deallocates int // Deallocate calls
	Constructs  int // Construct calls
	Destroys    int // Destroy calls
	LiveSlots   int // allocated slots minus deallocated slots
	LiveBuffers int // outstanding buffers (Allocates - Deallocates)
}

// Metrics returns a snapshot of the counters.
func (c *CountingAllocator[T]) Metrics() AllocatorMetrics {
	return AllocatorMetrics{
		Allocates:   c.allocates,
		Deallocates: c.deallocates,
		Constructs:  c.constructs,
		Destroys:    c.destroys,
		LiveSlots:   c.liveSlots,
		LiveBuffers: c.allocates - c.deallocates,
	}
}

// Balanced reports whether every Construct has been paired with a Destroy
// and every Allocate with a Deallocate of the same size.
func (c *CountingAllocator[T]) Balanced() bool {
	return c.constructs == c.destroys &&
		c.allocates == c.deallocates &&
		c.liveSlots == 0
}
