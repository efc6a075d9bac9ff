// Package arena implements a growable bump allocator (memory arena).
// One Arena owns a single contiguous block; when a request does not fit,
// the block is replaced by one at least twice as large and the live slots
// are moved across.
package arena

import (
	"log/slog"
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// span records the address range of a block that has been retired.
// base keeps a heap block reachable, so its addresses cannot be handed to
// another allocation while Resolve may still match them.
type span struct {
	base  unsafe.Pointer
	slots int
}

// Arena is a bump allocator for values of type T backed by one block.
// Not goroutine-safe.
type Arena[T any] struct {
	block    []T
	capacity int
	used     int

	src    Source[T]
	size   uintptr
	logger *slog.Logger

	retired  []span
	released bool

	growths        int
	blocksAcquired int
	blocksReleased int
	releaseErrors  int
}

// New creates an Arena on the Go heap with the configured capacity
// (DefaultCapacity unless WithCapacity is given).
func New[T any](opts ...Option) (*Arena[T], error) {
	c := newConfig(opts)
	return newArena(HeapSource[T]{Limit: c.limit}, c)
}

// MustNew is like New but panics if the initial block cannot be acquired.
func MustNew[T any](opts ...Option) *Arena[T] {
	a, err := New[T](opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// NewWithSource creates an Arena whose blocks come from src.
func NewWithSource[T any](src Source[T], opts ...Option) (*Arena[T], error) {
	return newArena(src, newConfig(opts))
}

func newArena[T any](src Source[T], c config) (*Arena[T], error) {
	a := &Arena[T]{
		src:    src,
		size:   elemSize[T](),
		logger: c.logger,
	}
	block, err := a.acquire(c.capacity)
	if err != nil {
		return nil, err
	}
	a.block = block
	a.capacity = len(block)
	return a, nil
}

// Allocate returns n consecutive raw slots. Slots hold the zero value until
// constructed. When used+n exceeds the capacity the arena grows first, which
// moves every live slot; ranges obtained earlier must be passed through
// Resolve before they are touched again.
// Returns nil for n == 0.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	a.panicIfReleased()
	if n < 0 {
		return nil, allocationFailure(nil, "negative allocation of %d slots", n)
	}
	if n == 0 {
		return nil, nil
	}

	// Fast path: room left in the current block
	if n <= a.capacity-a.used {
		return a.take(n), nil
	}

	if err := a.grow(n); err != nil {
		return nil, err
	}
	return a.take(n), nil
}

// take hands out the next n slots. The caller has ensured they fit.
func (a *Arena[T]) take(n int) []T {
	start := a.used
	a.used += n
	return a.block[start:a.used:a.used]
}

// Deallocate checks that p was carved from the current block. Slots are not
// reclaimed individually; the whole block is released on growth or Release.
// A nil or empty p is accepted.
func (a *Arena[T]) Deallocate(p []T, n int) error {
	if len(p) == 0 {
		return nil
	}
	if a.released {
		return ErrOwnershipViolation
	}
	if _, ok := a.offset(p, a.base(), a.capacity); !ok {
		return ErrOwnershipViolation
	}
	return nil
}

// Construct places v in the slot at p.
func (a *Arena[T]) Construct(p *T, v T) {
	Construct(p, v)
}

// Destroy tears down the value at p and leaves the zero value behind.
func (a *Arena[T]) Destroy(p *T) {
	Destroy(p)
}

// Resolve returns where the slots of p live now. Ranges from the current
// block are returned unchanged; ranges from a retired block map to the same
// offsets in the current one.
func (a *Arena[T]) Resolve(p []T) ([]T, error) {
	a.panicIfReleased()
	if len(p) == 0 {
		return p, nil
	}
	if _, ok := a.offset(p, a.base(), a.capacity); ok {
		return p, nil
	}
	for i := len(a.retired) - 1; i >= 0; i-- {
		r := a.retired[i]
		off, ok := a.offset(p, uintptr(r.base), r.slots)
		if !ok {
			continue
		}
		end := off + len(p)
		if end > a.capacity {
			return nil, ErrOwnershipViolation
		}
		return a.block[off:end:end], nil
	}
	return nil, ErrOwnershipViolation
}

// EnsureCapacity ensures the next n slots can be allocated without growth.
// If not, it grows the block.
func (a *Arena[T]) EnsureCapacity(n int) error {
	a.panicIfReleased()
	if n <= a.capacity-a.used {
		return nil
	}
	return a.grow(n)
}

// Reset destroys every used slot and rewinds the arena to empty while
// keeping its block for reuse. Ranges from retired blocks no longer resolve,
// and their memory is left to the source.
func (a *Arena[T]) Reset() {
	a.panicIfReleased()
	destroyAll(a.block[:a.used])
	a.used = 0
	a.retired = nil
}

// Release destroys every used slot and returns the block to its source.
// The arena is unusable afterwards; further allocation panics.
// Calling Release again is a no-op.
func (a *Arena[T]) Release() error {
	if a.released {
		return nil
	}
	destroyAll(a.block[:a.used])
	err := a.releaseBlock(a.block)
	a.block = nil
	a.capacity = 0
	a.used = 0
	a.retired = nil
	a.released = true
	a.logger.Debug("arena released", "blocks_acquired", a.blocksAcquired, "blocks_released", a.blocksReleased)
	return err
}

// Equal reports whether b can stand in for a. All arenas of one element type
// are interchangeable to containers; this says nothing about shared storage.
func (a *Arena[T]) Equal(b *Arena[T]) bool {
	return true
}

// grow replaces the block with one that fits n more slots.
func (a *Arena[T]) grow(n int) error {
	doubled := a.capacity * 2
	if a.capacity > math.MaxInt/2 {
		doubled = math.MaxInt
	}
	required := a.used + n
	if required < a.used {
		// used+n wrapped around
		return invalidGrowth(required, a.used)
	}
	newCap := max(doubled, required)
	if newCap <= a.used {
		return invalidGrowth(newCap, a.used)
	}

	block, err := a.acquire(newCap)
	if err != nil {
		return err
	}

	old := a.block
	for i := 0; i < a.used; i++ {
		Move(&block[i], &old[i])
	}
	destroyAll(old[:a.used])
	oldBase := unsafe.Pointer(unsafe.SliceData(old))
	if err := a.releaseBlock(old); err != nil {
		a.logger.Warn("arena: release of retired block failed", "capacity", len(old), "err", err)
	}

	a.retired = append(a.retired, span{base: oldBase, slots: len(old)})
	a.block = block
	a.capacity = len(block)
	a.growths++
	a.logger.Debug("arena grew", "from", len(old), "to", a.capacity, "used", a.used)
	return nil
}

// acquire obtains a block of n slots from the source.
func (a *Arena[T]) acquire(n int) ([]T, error) {
	block, err := a.src.Acquire(n)
	if err != nil {
		return nil, allocationFailure(err, "acquire block of %d slots", n)
	}
	if len(block) < n {
		err := allocationFailure(nil, "source returned %d of %d slots", len(block), n)
		if rerr := a.src.Release(block); rerr != nil {
			a.releaseErrors++
			err = errors.CombineErrors(err, rerr)
		}
		return nil, err
	}
	a.blocksAcquired++
	return block[:n:n], nil
}

// releaseBlock hands a block back to the source exactly once.
func (a *Arena[T]) releaseBlock(block []T) error {
	if block == nil {
		return nil
	}
	a.blocksReleased++
	if err := a.src.Release(block); err != nil {
		a.releaseErrors++
		return err
	}
	return nil
}

// base returns the address of the first slot of the current block.
func (a *Arena[T]) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.block)))
}

// offset returns the slot index of p within the block at base, if p starts
// inside it.
func (a *Arena[T]) offset(p []T, base uintptr, slots int) (int, bool) {
	if slots <= 0 {
		return 0, false
	}
	if a.size == 0 {
		// Zero-sized values share addresses; any range is acceptable.
		return 0, true
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	if addr < base || addr >= base+uintptr(slots)*a.size {
		return 0, false
	}
	delta := addr - base
	if delta%a.size != 0 {
		return 0, false
	}
	return int(delta / a.size), true
}

// panicIfReleased panics if the arena has been released.
func (a *Arena[T]) panicIfReleased() {
	if a.released {
		panic("arena: use after Release()")
	}
}
