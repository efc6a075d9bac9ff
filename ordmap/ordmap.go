// Package ordmap implements an ordered map whose entries live in an arena.
//
// Entries are kept sorted by key in a vector.Vector. The caller supplies an
// arena of the user-facing Pair type; the map rebinds it to its internal
// entry type, seeded with the same capacity.
package ordmap

import (
	"cmp"
	"iter"

	"github.com/cockroachdb/errors"

	arena "github.com/pavanmanishd/bumparena"
	"github.com/pavanmanishd/bumparena/vector"
)

// Pair is a key/value pair as seen by users of the map.
type Pair[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

type entry[K cmp.Ordered, V any] struct {
	key K
	val V
}

// Destroy tears down the stored value.
func (e *entry[K, V]) Destroy() {
	if d, ok := any(&e.val).(arena.Destroyer); ok {
		d.Destroy()
	}
}

// Map is an ordered map from K to V. Not goroutine-safe.
type Map[K cmp.Ordered, V any] struct {
	alloc   *arena.Arena[entry[K, V]]
	entries *vector.Vector[entry[K, V]]
}

// New creates an empty Map. The map's arena is rebound from seed, which the
// caller keeps owning; a nil seed selects arena.DefaultCapacity.
func New[K cmp.Ordered, V any](seed *arena.Arena[Pair[K, V]]) (*Map[K, V], error) {
	var (
		a   *arena.Arena[entry[K, V]]
		err error
	)
	if seed == nil {
		a, err = arena.New[entry[K, V]]()
	} else {
		a, err = arena.Rebind[entry[K, V]](seed)
	}
	if err != nil {
		return nil, errors.Wrap(err, "ordmap: create arena")
	}
	entries, err := vector.NewWithAllocator[entry[K, V]](a, vector.WithCapacity(a.Capacity()))
	if err != nil {
		return nil, errors.CombineErrors(errors.Wrap(err, "ordmap: reserve entries"), a.Release())
	}
	return &Map[K, V]{alloc: a, entries: entries}, nil
}

// Put sets the value for k, replacing and destroying any previous value.
func (m *Map[K, V]) Put(k K, v V) error {
	i, found := m.search(k)
	if found {
		m.entries.Set(i, entry[K, V]{key: k, val: v})
		return nil
	}
	return m.entries.Insert(i, entry[K, V]{key: k, val: v})
}

// Get returns the value stored for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	i, found := m.search(k)
	if !found {
		var zero V
		return zero, false
	}
	return m.entries.Ptr(i).val, true
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, found := m.search(k)
	return found
}

// Delete removes k and destroys its value. It reports whether k was present.
// The freed slot is not reused by the arena.
func (m *Map[K, V]) Delete(k K) bool {
	i, found := m.search(k)
	if !found {
		return false
	}
	m.entries.Remove(i)
	return true
}

// Min returns the smallest key and its value.
func (m *Map[K, V]) Min() (K, V, bool) {
	if m.entries.Empty() {
		var (
			k K
			v V
		)
		return k, v, false
	}
	e := m.entries.Ptr(0)
	return e.key, e.val, true
}

// Max returns the largest key and its value.
func (m *Map[K, V]) Max() (K, V, bool) {
	if m.entries.Empty() {
		var (
			k K
			v V
		)
		return k, v, false
	}
	e := m.entries.Ptr(m.entries.Len() - 1)
	return e.key, e.val, true
}

// All returns an iterator over the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.entries.Len() }

// Empty reports whether the map has no entries.
func (m *Map[K, V]) Empty() bool { return m.entries.Empty() }

// Metrics returns the statistics of the map's arena.
func (m *Map[K, V]) Metrics() arena.ArenaMetrics { return m.alloc.Metrics() }

// Release destroys every entry and releases the map's arena.
// Calling Release again is a no-op.
func (m *Map[K, V]) Release() error {
	return errors.CombineErrors(m.entries.Release(), m.alloc.Release())
}

// search returns the index of k, or the index where k would be inserted.
func (m *Map[K, V]) search(k K) (int, bool) {
	lo, hi := 0, m.entries.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp.Less(m.entries.Ptr(mid).key, k) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < m.entries.Len() && cmp.Compare(m.entries.Ptr(lo).key, k) == 0
}
