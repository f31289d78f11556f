package dynarray

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 when the array has no capacity.
func (a *Array[T]) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.size) / float64(len(a.buf))
}

// InitialCapacity returns the capacity seeded on the array's first
// growth.
func (a *Array[T]) InitialCapacity() int {
	return a.initialCap
}

// GrowthFactor returns the geometric growth multiplier.
func (a *Array[T]) GrowthFactor() int {
	return a.factor
}

// Metrics returns a snapshot of array statistics.
func (a *Array[T]) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Len:             a.size,
		Capacity:        len(a.buf),
		Utilization:     a.Utilization(),
		InitialCapacity: a.initialCap,
		GrowthFactor:    a.factor,
	}
}

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Len             int     // live elements
	Capacity        int     // allocated slots
	Utilization     float64 // ratio of live to allocated (0.0-1.0)
	InitialCapacity int     // first-growth seed capacity
	GrowthFactor    int     // geometric growth multiplier
}
