package dynarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoAllocator(t *testing.T) {
	alloc := NewGoAllocator[int]()

	buf := alloc.Allocate(4)
	require.Len(t, buf, 4)

	assert.Nil(t, alloc.Allocate(0))
	assert.Nil(t, alloc.Allocate(-1))

	alloc.Construct(&buf[0], 42)
	assert.Equal(t, 42, buf[0])

	alloc.Destroy(&buf[0])
	assert.Equal(t, 0, buf[0], "Destroy zeroes the slot")

	alloc.Deallocate(buf, 4)
}

func TestCountingAllocatorForwards(t *testing.T) {
	c := NewCountingAllocator[string](nil)

	buf := c.Allocate(2)
	require.Len(t, buf, 2)
	c.Construct(&buf[0], "a")
	c.Construct(&buf[1], "b")
	assert.Equal(t, []string{"a", "b"}, buf)

	c.Destroy(&buf[0])
	c.Destroy(&buf[1])
	c.Deallocate(buf, 2)

	m := c.Metrics()
	assert.Equal(t, 1, m.Allocates)
	assert.Equal(t, 1, m.Deallocates)
	assert.Equal(t, 2, m.Constructs)
	assert.Equal(t, 2, m.Destroys)
	assert.Equal(t, 0, m.LiveSlots)
	assert.Equal(t, 0, m.LiveBuffers)
	assert.True(t, c.Balanced())
}

// Every Construct must meet exactly one Destroy and every Allocate one
// Deallocate of the same size, across the full operation surface.
func TestPairingDiscipline(t *testing.T) {
	c := NewCountingAllocator[int](nil)

	a := NewWithPolicy[int](0, 0, c)
	for i := 0; i < 50; i++ {
		a.Push(i)
	}
	a.RemoveAt(10)
	a.Pop()
	a.Resize(60)
	a.Resize(20)
	a.Reserve(100)
	a.ShrinkToFit()

	s := a.Slice(5, 15)
	s.Release()

	b := a.Clone()
	b.Clear()
	b.Release()

	moved := Take(a)
	moved.Release()
	a.Release()

	m := c.Metrics()
	assert.Equal(t, m.Constructs, m.Destroys, "constructs must pair with destroys")
	assert.Equal(t, m.Allocates, m.Deallocates, "allocates must pair with deallocates")
	assert.Zero(t, m.LiveSlots, "every deallocate must use its allocate's size")
	assert.True(t, c.Balanced())
}

// failingAllocator refuses allocations past a budget, exercising the
// invariant-preservation contract on failed growth.
type failingAllocator struct {
	GoAllocator[int]
	budget int
}

func (f *failingAllocator) Allocate(n int) []int {
	if n > f.budget {
		return nil
	}
	return f.GoAllocator.Allocate(n)
}

func TestFailedGrowthPreservesState(t *testing.T) {
	a := New[int](&failingAllocator{budget: 8})
	for i := 0; i < 8; i++ {
		a.Push(i)
	}

	assert.Panics(t, func() { a.Push(8) }, "growth past the budget fails")

	// Prior valid state is intact.
	assert.Equal(t, 8, a.Len())
	assert.Equal(t, 8, a.Capacity())
	for i := 0; i < 8; i++ {
		assert.Equal(t, i, a.At(i))
	}
	a.Release()
}

func TestFailedConstructionAllocation(t *testing.T) {
	assert.Panics(t, func() { Repeat(3, 7, &failingAllocator{budget: 4}) })
}
