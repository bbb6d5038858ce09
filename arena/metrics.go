package arena

// SizeInUse returns the number of bytes currently issued, including
// alignment padding.
func (a *Arena) SizeInUse() int {
	return a.offset
}

// Capacity returns the fixed byte budget of the arena.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Remaining returns the bytes left before the next allocation is padded.
func (a *Arena) Remaining() int {
	return len(a.buf) - a.offset
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Remaining:   a.Remaining(),
		HighWater:   a.highWater,
		Utilization: a.Utilization(),
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	Remaining   int     // Bytes not yet issued
	HighWater   int     // Largest SizeInUse observed since creation
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
