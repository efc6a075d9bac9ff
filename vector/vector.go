// Package vector implements a dynamic array whose storage is managed by an
// arena.Allocator.
package vector

import (
	"iter"

	"github.com/cockroachdb/errors"

	arena "github.com/pavanmanishd/bumparena"
)

// DefaultCapacity is the number of elements reserved at construction.
const DefaultCapacity = 10

// Option configures a Vector.
type Option func(*config)

type config struct {
	capacity  int
	arenaOpts []arena.Option
}

// WithCapacity sets the initial number of reserved elements.
// Values <= 0 select DefaultCapacity.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithArenaOptions passes options to the arena created by New.
func WithArenaOptions(opts ...arena.Option) Option {
	return func(c *config) { c.arenaOpts = append(c.arenaOpts, opts...) }
}

func newConfig(opts []Option) config {
	c := config{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&c)
	}
	if c.capacity <= 0 {
		c.capacity = DefaultCapacity
	}
	return c
}

// Vector is a growable sequence of T. Elements [0, Len()) are constructed;
// the remaining reserved slots are raw.
// Not goroutine-safe.
type Vector[T any] struct {
	alloc    arena.Allocator[T]
	owned    *arena.Arena[T]
	data     []T // len(data) is the reserved capacity
	length   int
	growths  int
	released bool
}

// New creates a Vector backed by a fresh arena of its own, which is
// released together with the vector.
func New[T any](opts ...Option) (*Vector[T], error) {
	c := newConfig(opts)
	aopts := append([]arena.Option{arena.WithCapacity(c.capacity)}, c.arenaOpts...)
	a, err := arena.New[T](aopts...)
	if err != nil {
		return nil, errors.Wrap(err, "vector: create arena")
	}
	v, err := newVector[T](a, c.capacity)
	if err != nil {
		return nil, errors.CombineErrors(err, a.Release())
	}
	v.owned = a
	return v, nil
}

// NewWithAllocator creates a Vector on a caller-owned allocator.
// Release returns the vector's storage but leaves the allocator alive.
// Allocations made on a by anyone else may move the vector's storage, so the
// vector should be its only consumer.
func NewWithAllocator[T any](a arena.Allocator[T], opts ...Option) (*Vector[T], error) {
	c := newConfig(opts)
	return newVector(a, c.capacity)
}

func newVector[T any](a arena.Allocator[T], capacity int) (*Vector[T], error) {
	data, err := a.Allocate(capacity)
	if err != nil {
		return nil, errors.Wrapf(err, "vector: reserve %d elements", capacity)
	}
	return &Vector[T]{alloc: a, data: data}, nil
}

// Push appends x to the end of the vector, doubling the reserved capacity
// first when it is full.
func (v *Vector[T]) Push(x T) error {
	v.panicIfReleased()
	if v.length == len(v.data) {
		if err := v.grow(len(v.data) * 2); err != nil {
			return err
		}
	}
	v.alloc.Construct(&v.data[v.length], x)
	v.length++
	return nil
}

// Append appends xs in order, growing at most once.
func (v *Vector[T]) Append(xs ...T) error {
	v.panicIfReleased()
	if err := v.ensure(v.length + len(xs)); err != nil {
		return err
	}
	for _, x := range xs {
		v.alloc.Construct(&v.data[v.length], x)
		v.length++
	}
	return nil
}

// Reserve ensures at least n elements fit without further growth.
func (v *Vector[T]) Reserve(n int) error {
	v.panicIfReleased()
	return v.ensure(n)
}

// Insert places x at index i, shifting later elements up by one.
// Panics if i is out of range [0, Len()].
func (v *Vector[T]) Insert(i int, x T) error {
	v.panicIfReleased()
	if i < 0 || i > v.length {
		panic(errors.Newf("vector: insert index %d out of range [0:%d]", i, v.length))
	}
	if v.length == len(v.data) {
		if err := v.grow(len(v.data) * 2); err != nil {
			return err
		}
	}
	for j := v.length; j > i; j-- {
		arena.Move(&v.data[j], &v.data[j-1])
	}
	v.alloc.Construct(&v.data[i], x)
	v.length++
	return nil
}

// Remove destroys the element at index i and shifts later elements down.
// Panics if i is out of range.
func (v *Vector[T]) Remove(i int) {
	v.panicIfReleased()
	v.alloc.Destroy(&v.data[:v.length][i])
	for j := i; j < v.length-1; j++ {
		arena.Move(&v.data[j], &v.data[j+1])
	}
	v.length--
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) T {
	return v.data[:v.length][i]
}

// Ptr returns a pointer to the element at index i. The pointer is valid
// until the next call that may grow the vector.
func (v *Vector[T]) Ptr(i int) *T {
	return &v.data[:v.length][i]
}

// Set replaces the element at index i, destroying the previous value.
func (v *Vector[T]) Set(i int, x T) {
	p := &v.data[:v.length][i]
	v.alloc.Destroy(p)
	v.alloc.Construct(p, x)
}

// All returns an iterator over index and element pointer pairs in index
// order. The iterator reads the live vector; growing it mid-iteration is
// not supported.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, &v.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.length }

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool { return v.length == 0 }

// Reserved returns the number of elements that fit without growth.
func (v *Vector[T]) Reserved() int { return len(v.data) }

// Growths returns how many times the storage has been replaced.
func (v *Vector[T]) Growths() int { return v.growths }

// Allocator returns the allocator backing the vector.
func (v *Vector[T]) Allocator() arena.Allocator[T] { return v.alloc }

// Release destroys every element and returns the storage to the allocator.
// An arena created by New is released as well. Calling Release again is a
// no-op; any other use afterwards panics.
func (v *Vector[T]) Release() error {
	if v.released {
		return nil
	}
	v.released = true
	for i := 0; i < v.length; i++ {
		v.alloc.Destroy(&v.data[i])
	}
	err := v.alloc.Deallocate(v.data, len(v.data))
	if v.owned != nil {
		err = errors.CombineErrors(err, v.owned.Release())
	}
	v.data = nil
	v.length = 0
	return err
}

// ensure grows the storage when fewer than n elements fit.
func (v *Vector[T]) ensure(n int) error {
	if n <= len(v.data) {
		return nil
	}
	return v.grow(max(len(v.data)*2, n))
}

// grow moves the elements into a fresh range of newCap slots.
func (v *Vector[T]) grow(newCap int) error {
	fresh, err := v.alloc.Allocate(newCap)
	if err != nil {
		return errors.Wrapf(err, "vector: grow from %d to %d", len(v.data), newCap)
	}
	// Growing the allocator may have moved our elements.
	old, err := v.alloc.Resolve(v.data)
	if err != nil {
		return errors.Wrap(err, "vector: locate elements after allocation")
	}
	for i := 0; i < v.length; i++ {
		arena.Move(&fresh[i], &old[i])
	}
	for i := 0; i < v.length; i++ {
		v.alloc.Destroy(&old[i])
	}
	v.data = fresh
	v.growths++
	if err := v.alloc.Deallocate(old, len(old)); err != nil {
		return errors.Wrap(err, "vector: return old storage")
	}
	return nil
}

func (v *Vector[T]) panicIfReleased() {
	if v.released {
		panic("vector: use after Release()")
	}
}
