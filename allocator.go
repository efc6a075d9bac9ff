package arena

// Allocator is the capability set containers rely on to manage element
// storage. Consumers construct and destroy only slots they obtained from
// the same allocator, and deallocate with the range and count they were given.
type Allocator[T any] interface {
	// Allocate returns n raw slots.
	Allocate(n int) ([]T, error)
	// Deallocate returns a range obtained from Allocate.
	Deallocate(p []T, n int) error
	// Construct places v in the slot at p.
	Construct(p *T, v T)
	// Destroy tears down the value at p.
	Destroy(p *T)
	// Capacity reports the number of reserved slots.
	Capacity() int
	// Resolve returns the current location of a range obtained from Allocate.
	// Ranges held across an Allocate call must be resolved before use.
	Resolve(p []T) ([]T, error)
}

var (
	_ Allocator[int] = (*Arena[int])(nil)
	_ Allocator[int] = GoAllocator[int]{}
)

// GoAllocator serves every request with a fresh slice from the Go heap.
// Ranges never move and are reclaimed by the garbage collector.
type GoAllocator[T any] struct{}

// Allocate returns n zeroed slots. Returns nil for n == 0.
func (GoAllocator[T]) Allocate(n int) ([]T, error) {
	if err := checkBlockSize[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate is a no-op.
func (GoAllocator[T]) Deallocate(p []T, n int) error {
	return nil
}

// Construct places v in the slot at p.
func (GoAllocator[T]) Construct(p *T, v T) {
	Construct(p, v)
}

// Destroy tears down the value at p.
func (GoAllocator[T]) Destroy(p *T) {
	Destroy(p)
}

// Capacity always reports 0; nothing is reserved up front.
func (GoAllocator[T]) Capacity() int {
	return 0
}

// Resolve returns p unchanged.
func (GoAllocator[T]) Resolve(p []T) ([]T, error) {
	return p, nil
}
