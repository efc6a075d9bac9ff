package ordmap

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arena "github.com/pavanmanishd/bumparena"
)

type handle struct {
	id     int
	closed *[]int
}

func (h *handle) Destroy() {
	if h.closed != nil {
		*h.closed = append(*h.closed, h.id)
	}
}

func TestNewRebindsSeed(t *testing.T) {
	seed, err := arena.New[Pair[int, string]](arena.WithCapacity(32))
	require.NoError(t, err)
	defer seed.Release()

	m, err := New[int, string](seed)
	require.NoError(t, err)
	defer m.Release()

	met := m.Metrics()
	assert.Equal(t, 32, met.Capacity, "entry arena seeded with the seed capacity")
	assert.Zero(t, seed.Used(), "seed arena untouched")
	assert.True(t, m.Empty())
}

func TestNewNilSeed(t *testing.T) {
	m, err := New[string, int](nil)
	require.NoError(t, err)
	defer m.Release()
	assert.Equal(t, arena.DefaultCapacity, m.Metrics().Capacity)
}

func TestPutGetDelete(t *testing.T) {
	m, err := New[int, int](nil)
	require.NoError(t, err)
	defer m.Release()

	for i := 9; i >= 0; i-- {
		require.NoError(t, m.Put(i, i*i))
	}
	assert.Equal(t, 10, m.Len())

	v, ok := m.Get(7)
	assert.True(t, ok)
	assert.Equal(t, 49, v)

	_, ok = m.Get(10)
	assert.False(t, ok)
	assert.True(t, m.Has(0))

	require.NoError(t, m.Put(7, -1))
	v, _ = m.Get(7)
	assert.Equal(t, -1, v)
	assert.Equal(t, 10, m.Len())

	assert.True(t, m.Delete(7))
	assert.False(t, m.Delete(7))
	assert.False(t, m.Has(7))
	assert.Equal(t, 9, m.Len())

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 8, 9}, slices.Collect(m.Keys()))
}

func TestMinMax(t *testing.T) {
	m, err := New[string, int](nil)
	require.NoError(t, err)
	defer m.Release()

	_, _, ok := m.Min()
	assert.False(t, ok)
	_, _, ok = m.Max()
	assert.False(t, ok)

	for _, k := range []string{"pear", "apple", "zucchini", "fig"} {
		require.NoError(t, m.Put(k, len(k)))
	}
	k, v, ok := m.Min()
	require.True(t, ok)
	assert.Equal(t, "apple", k)
	assert.Equal(t, 5, v)

	k, v, ok = m.Max()
	require.True(t, ok)
	assert.Equal(t, "zucchini", k)
	assert.Equal(t, 8, v)
}

func TestMatchesTreeMap(t *testing.T) {
	seed, err := arena.New[Pair[int, int]](arena.WithCapacity(4))
	require.NoError(t, err)
	defer seed.Release()

	m, err := New[int, int](seed)
	require.NoError(t, err)
	defer m.Release()

	ref := treemap.NewWithIntComparator()
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 5000; i++ {
		k := rng.IntN(500)
		switch rng.IntN(3) {
		case 0, 1:
			require.NoError(t, m.Put(k, i))
			ref.Put(k, i)
		default:
			_, found := ref.Get(k)
			require.Equal(t, found, m.Delete(k))
			ref.Remove(k)
		}
	}

	require.Equal(t, ref.Size(), m.Len())
	keys := ref.Keys()
	values := ref.Values()
	i := 0
	for k, v := range m.All() {
		require.Equal(t, keys[i], k, "key at %d", i)
		require.Equal(t, values[i], v, "value at %d", i)
		i++
	}
	assert.Equal(t, len(keys), i)
	assert.Greater(t, m.Metrics().Growths, 0)
}

func TestValuesDestroyed(t *testing.T) {
	var closed []int
	m, err := New[string, handle](nil)
	require.NoError(t, err)

	require.NoError(t, m.Put("a", handle{id: 1, closed: &closed}))
	require.NoError(t, m.Put("b", handle{id: 2, closed: &closed}))
	require.NoError(t, m.Put("c", handle{id: 3, closed: &closed}))

	// Replacing destroys the old value
	require.NoError(t, m.Put("b", handle{id: 4, closed: &closed}))
	assert.Equal(t, []int{2}, closed)

	assert.True(t, m.Delete("a"))
	assert.Equal(t, []int{2, 1}, closed)

	require.NoError(t, m.Release())
	assert.Equal(t, []int{2, 1, 4, 3}, closed)

	// Multiple releases are safe
	require.NoError(t, m.Release())
	assert.Len(t, closed, 4)
}

func TestRelease(t *testing.T) {
	m, err := New[int, int](nil)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		require.NoError(t, m.Put(i, i))
	}
	require.NoError(t, m.Release())

	met := m.Metrics()
	assert.Equal(t, met.BlocksAcquired, met.BlocksReleased)
	assert.Zero(t, m.Len())
	assert.Panics(t, func() { _ = m.Put(1, 1) })
}
