package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaMetrics(t *testing.T) {
	a := MustNew[int64](WithCapacity(10))

	// Test initial state
	assert.Zero(t, a.Used())
	assert.Equal(t, 10, a.Capacity())
	assert.Equal(t, 10, a.Available())
	assert.Zero(t, a.SizeInUse())
	assert.Zero(t, a.Utilization())

	_, err := a.Allocate(5)
	require.NoError(t, err)
	assert.Equal(t, 40, a.SizeInUse())
	assert.InDelta(t, 0.5, a.Utilization(), 1e-9)
	assert.Equal(t, 5, a.Available())

	// Force growth
	_, err = a.Allocate(6)
	require.NoError(t, err)

	m := a.Metrics()
	assert.Equal(t, ArenaMetrics{
		Used:           11,
		Capacity:       20,
		ElemSize:       8,
		SizeInUse:      88,
		Utilization:    0.55,
		Growths:        1,
		BlocksAcquired: 2,
		BlocksReleased: 1,
	}, m)

	require.NoError(t, a.Release())
	m = a.Metrics()
	assert.Zero(t, m.Used)
	assert.Zero(t, m.Capacity)
	assert.Zero(t, m.Utilization)
	assert.Equal(t, 2, m.BlocksReleased)
}

func TestArenaMetricsAfterReset(t *testing.T) {
	a := MustNew[int32](WithCapacity(8))
	defer a.Release()

	_, err := a.Allocate(8)
	require.NoError(t, err)
	assert.Equal(t, 1.0, a.Utilization())

	a.Reset()
	m := a.Metrics()
	assert.Zero(t, m.Used)
	assert.Zero(t, m.SizeInUse)
	assert.Equal(t, 8, m.Capacity)
	assert.Equal(t, 1, m.BlocksAcquired)
	assert.Zero(t, m.BlocksReleased)
}
