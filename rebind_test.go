package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	key         int
	left, right int32
}

func TestRebind(t *testing.T) {
	src := MustNew[int](WithCapacity(10))
	defer src.Release()

	_, err := src.Allocate(7)
	require.NoError(t, err)
	_, err = src.Allocate(6) // grows to 20
	require.NoError(t, err)

	dst, err := Rebind[node](src)
	require.NoError(t, err)
	defer dst.Release()

	assert.Equal(t, 20, dst.Capacity(), "seeded with capacity, not used count")
	assert.Zero(t, dst.Used())
	assert.Zero(t, dst.Growths())
	assert.Same(t, src.logger, dst.logger)

	// Independent storage
	_, err = dst.Allocate(20)
	require.NoError(t, err)
	assert.Equal(t, 13, src.Used())
	assert.Equal(t, 20, src.Capacity())
}

func TestRebindOptionsOverride(t *testing.T) {
	src := MustNew[int](WithCapacity(32))
	defer src.Release()

	dst, err := Rebind[string](src, WithCapacity(4))
	require.NoError(t, err)
	defer dst.Release()
	assert.Equal(t, 4, dst.Capacity())
}

func TestRebindWithSource(t *testing.T) {
	src := MustNew[int](WithCapacity(12))
	defer src.Release()

	counting := &countingSource[node]{}
	dst, err := RebindWithSource[node](src, counting)
	require.NoError(t, err)

	assert.Equal(t, 12, dst.Capacity())
	require.Len(t, counting.blocks, 1)
	require.NoError(t, dst.Release())
	assert.Equal(t, []int{1}, counting.releases)
}

func TestRebindReleased(t *testing.T) {
	src := MustNew[int](WithCapacity(12))
	require.NoError(t, src.Release())

	assert.PanicsWithValue(t, "arena: use after Release()", func() { _, _ = Rebind[int](src) })
	assert.PanicsWithValue(t, "arena: use after Release()", func() {
		_, _ = RebindWithSource[node](src, &countingSource[node]{})
	})
}
