package arena

import (
	"math"
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapSource(t *testing.T) {
	t.Run("acquire", func(t *testing.T) {
		b, err := HeapSource[int]{}.Acquire(8)
		require.NoError(t, err)
		assert.Len(t, b, 8)
		assert.NoError(t, HeapSource[int]{}.Release(b))
	})

	t.Run("limit", func(t *testing.T) {
		src := HeapSource[int]{Limit: 4}
		_, err := src.Acquire(4)
		require.NoError(t, err)
		_, err = src.Acquire(5)
		assert.True(t, errors.Is(err, ErrAllocationFailure))
	})

	t.Run("negative", func(t *testing.T) {
		_, err := HeapSource[int]{}.Acquire(-1)
		assert.True(t, errors.Is(err, ErrAllocationFailure))
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := HeapSource[int64]{}.Acquire(math.MaxInt)
		assert.True(t, errors.Is(err, ErrAllocationFailure))
	})

	t.Run("zero sized", func(t *testing.T) {
		b, err := HeapSource[struct{}]{}.Acquire(1 << 40)
		require.NoError(t, err)
		assert.Equal(t, 1<<40, len(b))
	})
}

func TestPointerFree(t *testing.T) {
	type flat struct {
		a int64
		b [4]uint8
		c float64
	}
	type nested struct {
		f flat
		g [2]complex128
	}
	type withString struct {
		a int
		s string
	}
	type withPointer struct {
		p *int
	}

	tests := []struct {
		name     string
		typ      reflect.Type
		expected bool
	}{
		{"int", reflect.TypeFor[int](), true},
		{"flat struct", reflect.TypeFor[flat](), true},
		{"nested struct", reflect.TypeFor[nested](), true},
		{"empty struct", reflect.TypeFor[struct{}](), true},
		{"array of strings", reflect.TypeFor[[2]string](), false},
		{"empty array of pointers", reflect.TypeFor[[0]*int](), true},
		{"string", reflect.TypeFor[string](), false},
		{"slice", reflect.TypeFor[[]byte](), false},
		{"map", reflect.TypeFor[map[int]int](), false},
		{"struct with string", reflect.TypeFor[withString](), false},
		{"struct with pointer", reflect.TypeFor[withPointer](), false},
		{"interface", reflect.TypeFor[any](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pointerFree(tt.typ))
		})
	}
}
