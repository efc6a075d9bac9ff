//go:build !unix

package arena

import "github.com/cockroachdb/errors"

// MmapSource is unavailable on this platform.
type MmapSource[T any] struct{}

// NewMmapSource always fails with ErrUnsupportedPlatform.
func NewMmapSource[T any]() (*MmapSource[T], error) {
	return nil, errors.Wrap(ErrUnsupportedPlatform, "mmap source")
}

// Acquire always fails with ErrUnsupportedPlatform.
func (s *MmapSource[T]) Acquire(n int) ([]T, error) {
	return nil, allocationFailure(ErrUnsupportedPlatform, "mmap %d slots", n)
}

// Release is a no-op.
func (s *MmapSource[T]) Release(block []T) error {
	return nil
}
