//go:build unix

package arena

import (
	"reflect"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// MmapSource acquires blocks as anonymous private memory mappings outside the
// Go heap. Only pointer-free element types are accepted, because the garbage
// collector does not scan mapped memory.
type MmapSource[T any] struct {
	size uintptr
}

// NewMmapSource returns a mapping-backed source for T.
func NewMmapSource[T any]() (*MmapSource[T], error) {
	t := reflect.TypeFor[T]()
	if !pointerFree(t) {
		return nil, errors.Wrapf(ErrUnsupportedType, "mmap source: %s contains pointers", t)
	}
	return &MmapSource[T]{size: elemSize[T]()}, nil
}

// Acquire maps a zero-filled block of n slots.
func (s *MmapSource[T]) Acquire(n int) ([]T, error) {
	if err := checkBlockSize[T](n); err != nil {
		return nil, err
	}
	if n == 0 || s.size == 0 {
		// Nothing to map; zero-sized blocks need no backing pages.
		return make([]T, n), nil
	}
	b, err := unix.Mmap(-1, 0, n*int(s.size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, allocationFailure(err, "mmap %d bytes", n*int(s.size))
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// Release unmaps a block returned by Acquire.
func (s *MmapSource[T]) Release(block []T) error {
	if len(block) == 0 || s.size == 0 {
		return nil
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(block))), len(block)*int(s.size))
	if err := unix.Munmap(b); err != nil {
		return errors.Wrapf(err, "munmap %d bytes", len(b))
	}
	return nil
}
