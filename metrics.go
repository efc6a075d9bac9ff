package arena

// Capacity returns the number of slots in the current block.
func (a *Arena[T]) Capacity() int {
	return a.capacity
}

// Used returns the number of slots handed out since the last growth-free
// rewind (Reset or Release).
func (a *Arena[T]) Used() int {
	return a.used
}

// Available returns the number of slots that can be allocated without growth.
func (a *Arena[T]) Available() int {
	return a.capacity - a.used
}

// SizeInUse returns the number of bytes covered by used slots.
func (a *Arena[T]) SizeInUse() int {
	return a.used * int(a.size)
}

// Utilization returns the ratio of used slots to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	if a.capacity == 0 {
		return 0
	}
	return float64(a.used) / float64(a.capacity)
}

// Growths returns how many times the block has been replaced.
func (a *Arena[T]) Growths() int {
	return a.growths
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Used:           a.used,
		Capacity:       a.capacity,
		ElemSize:       int(a.size),
		SizeInUse:      a.SizeInUse(),
		Utilization:    a.Utilization(),
		Growths:        a.growths,
		BlocksAcquired: a.blocksAcquired,
		BlocksReleased: a.blocksReleased,
		ReleaseErrors:  a.releaseErrors,
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Used           int     // Slots handed out
	Capacity       int     // Slots in the current block
	ElemSize       int     // Bytes per slot
	SizeInUse      int     // Bytes covered by used slots
	Utilization    float64 // Ratio of used to total capacity (0.0-1.0)
	Growths        int     // Block replacements
	BlocksAcquired int     // Blocks obtained from the source
	BlocksReleased int     // Blocks handed back to the source
	ReleaseErrors  int     // Failed block releases
}
