package arena

import (
	"math"
	"reflect"
	"unsafe"
)

// Source provides the raw blocks an Arena carves its slots from.
// Every block returned by Acquire is handed back to Release exactly once.
type Source[T any] interface {
	Acquire(n int) ([]T, error)
	Release(block []T) error
}

// HeapSource acquires blocks from the Go heap.
// A positive Limit caps the number of slots a single block may hold.
type HeapSource[T any] struct {
	Limit int
}

// Acquire returns a zeroed block of n slots.
func (s HeapSource[T]) Acquire(n int) ([]T, error) {
	if err := checkBlockSize[T](n); err != nil {
		return nil, err
	}
	if s.Limit > 0 && n > s.Limit {
		return nil, allocationFailure(nil, "block of %d slots exceeds limit %d", n, s.Limit)
	}
	return make([]T, n), nil
}

// Release drops the block; the garbage collector reclaims it.
func (s HeapSource[T]) Release(block []T) error {
	return nil
}

// checkBlockSize rejects sizes whose byte length cannot be represented.
func checkBlockSize[T any](n int) error {
	if n < 0 {
		return allocationFailure(nil, "negative block size %d", n)
	}
	size := elemSize[T]()
	if size > 0 && uintptr(n) > uintptr(math.MaxInt)/size {
		return allocationFailure(nil, "block of %d slots of %d bytes overflows", n, size)
	}
	return nil
}

// elemSize returns the size in bytes of one T.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// pointerFree reports whether values of t contain no Go pointers and may
// therefore live in memory the garbage collector does not scan.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
