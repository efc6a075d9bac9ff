package main

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	arena "github.com/pavanmanishd/bumparena"
	"github.com/pavanmanishd/bumparena/ordmap"
	"github.com/pavanmanishd/bumparena/vector"
)

// PushReport summarizes a push workload.
type PushReport struct {
	Count         int
	Len           int
	Reserved      int
	VectorGrowths int
	Arena         arena.ArenaMetrics
}

// MapReport summarizes a map workload.
type MapReport struct {
	Count int
	Len   int
	Min   int
	Max   int
	Arena arena.ArenaMetrics
}

// newSourceArena creates an int64 arena whose blocks come from the named
// source.
func newSourceArena(source string, capacity int, logger *slog.Logger) (*arena.Arena[int64], error) {
	opts := []arena.Option{arena.WithCapacity(capacity), arena.WithLogger(logger)}
	switch source {
	case "heap":
		return arena.New[int64](opts...)
	case "mmap":
		src, err := arena.NewMmapSource[int64]()
		if err != nil {
			return nil, err
		}
		return arena.NewWithSource[int64](src, opts...)
	default:
		return nil, errors.Newf("unknown source %q (want heap or mmap)", source)
	}
}

// runPushWorkload pushes 0..count-1 into a vector on a fresh arena, checks
// the iteration order and returns the statistics gathered before teardown.
func runPushWorkload(count, capacity int, source string, logger *slog.Logger) (PushReport, error) {
	a, err := newSourceArena(source, capacity, logger)
	if err != nil {
		return PushReport{}, errors.Wrap(err, "create arena")
	}
	defer func() {
		if err := a.Release(); err != nil {
			logger.Warn("arena release failed", "err", err)
		}
	}()

	v, err := vector.NewWithAllocator[int64](a, vector.WithCapacity(capacity))
	if err != nil {
		return PushReport{}, err
	}
	defer func() {
		if err := v.Release(); err != nil {
			logger.Warn("vector release failed", "err", err)
		}
	}()

	for i := 0; i < count; i++ {
		if err := v.Push(int64(i)); err != nil {
			return PushReport{}, errors.Wrapf(err, "push %d", i)
		}
	}
	for i, p := range v.All() {
		if *p != int64(i) {
			return PushReport{}, errors.AssertionFailedf("element %d holds %d", i, *p)
		}
	}

	return PushReport{
		Count:         count,
		Len:           v.Len(),
		Reserved:      v.Reserved(),
		VectorGrowths: v.Growths(),
		Arena:         a.Metrics(),
	}, nil
}

// runMapWorkload inserts keys count-1..0 with their squares into an ordered
// map rebound from an arena of the given capacity and checks ascending order.
func runMapWorkload(count, capacity int, logger *slog.Logger) (MapReport, error) {
	seed, err := arena.New[ordmap.Pair[int, int]](arena.WithCapacity(capacity), arena.WithLogger(logger))
	if err != nil {
		return MapReport{}, errors.Wrap(err, "create seed arena")
	}
	defer func() {
		if err := seed.Release(); err != nil {
			logger.Warn("seed arena release failed", "err", err)
		}
	}()

	m, err := ordmap.New[int, int](seed)
	if err != nil {
		return MapReport{}, err
	}
	defer func() {
		if err := m.Release(); err != nil {
			logger.Warn("map release failed", "err", err)
		}
	}()

	for i := count - 1; i >= 0; i-- {
		if err := m.Put(i, i*i); err != nil {
			return MapReport{}, errors.Wrapf(err, "put %d", i)
		}
	}
	next := 0
	for k, v := range m.All() {
		if k != next || v != k*k {
			return MapReport{}, errors.AssertionFailedf("entry %d is %d=%d", next, k, v)
		}
		next++
	}

	r := MapReport{Count: count, Len: m.Len(), Arena: m.Metrics()}
	if k, _, ok := m.Min(); ok {
		r.Min = k
	}
	if k, _, ok := m.Max(); ok {
		r.Max = k
	}
	return r, nil
}
