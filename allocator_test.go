package arena

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoAllocator(t *testing.T) {
	var a Allocator[int] = GoAllocator[int]{}

	s, err := a.Allocate(4)
	require.NoError(t, err)
	require.Len(t, s, 4)

	a.Construct(&s[0], 11)
	assert.Equal(t, 11, s[0])

	// Ranges never move
	r, err := a.Resolve(s)
	require.NoError(t, err)
	assert.Same(t, &s[0], &r[0])

	a.Destroy(&s[0])
	assert.Zero(t, s[0])

	assert.NoError(t, a.Deallocate(s, len(s)))
	assert.NoError(t, a.Deallocate(nil, 0))
	assert.Zero(t, a.Capacity())

	empty, err := a.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = a.Allocate(-3)
	assert.True(t, errors.Is(err, ErrAllocationFailure))
}

func TestArenaSatisfiesAllocator(t *testing.T) {
	var a Allocator[string] = MustNew[string](WithCapacity(2))
	defer a.(*Arena[string]).Release()

	s, err := a.Allocate(2)
	require.NoError(t, err)
	a.Construct(&s[0], "a")
	a.Construct(&s[1], "b")
	assert.Equal(t, 2, a.Capacity())

	_, err = a.Allocate(1)
	require.NoError(t, err)
	assert.Equal(t, 4, a.Capacity())

	moved, err := a.Resolve(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, moved)
}
