// Package collector exports arena statistics to Prometheus.
package collector

import (
	"maps"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	arena "github.com/pavanmanishd/bumparena"
)

// MetricsSource is anything that can report arena statistics, such as an
// *arena.Arena or an *ordmap.Map.
type MetricsSource interface {
	Metrics() arena.ArenaMetrics
}

// Collector is a prometheus.Collector over a set of named arenas.
// Add and Remove must not run concurrently with Collect.
type Collector struct {
	sources map[string]MetricsSource

	used           *prometheus.Desc
	capacity       *prometheus.Desc
	bytesInUse     *prometheus.Desc
	utilization    *prometheus.Desc
	growths        *prometheus.Desc
	blocksAcquired *prometheus.Desc
	blocksReleased *prometheus.Desc
	releaseErrors  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// New creates a Collector whose metric names start with namespace.
func New(namespace string) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "arena", name), help, []string{"arena"}, nil)
	}
	return &Collector{
		sources:        make(map[string]MetricsSource),
		used:           desc("used_slots", "Slots handed out by the arena."),
		capacity:       desc("capacity_slots", "Slots in the arena's current block."),
		bytesInUse:     desc("bytes_in_use", "Bytes covered by used slots."),
		utilization:    desc("utilization_ratio", "Ratio of used slots to capacity."),
		growths:        desc("growths_total", "Block replacements."),
		blocksAcquired: desc("blocks_acquired_total", "Blocks obtained from the block source."),
		blocksReleased: desc("blocks_released_total", "Blocks handed back to the block source."),
		releaseErrors:  desc("release_errors_total", "Failed block releases."),
	}
}

// Add registers src under name, replacing any previous source of that name.
func (c *Collector) Add(name string, src MetricsSource) {
	c.sources[name] = src
}

// Remove drops the source registered under name.
func (c *Collector) Remove(name string) {
	delete(c.sources, name)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.used
	ch <- c.capacity
	ch <- c.bytesInUse
	ch <- c.utilization
	ch <- c.growths
	ch <- c.blocksAcquired
	ch <- c.blocksReleased
	ch <- c.releaseErrors
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, name := range slices.Sorted(maps.Keys(c.sources)) {
		m := c.sources[name].Metrics()
		ch <- prometheus.MustNewConstMetric(c.used, prometheus.GaugeValue, float64(m.Used), name)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Capacity), name)
		ch <- prometheus.MustNewConstMetric(c.bytesInUse, prometheus.GaugeValue, float64(m.SizeInUse), name)
		ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization, name)
		ch <- prometheus.MustNewConstMetric(c.growths, prometheus.CounterValue, float64(m.Growths), name)
		ch <- prometheus.MustNewConstMetric(c.blocksAcquired, prometheus.CounterValue, float64(m.BlocksAcquired), name)
		ch <- prometheus.MustNewConstMetric(c.blocksReleased, prometheus.CounterValue, float64(m.BlocksReleased), name)
		ch <- prometheus.MustNewConstMetric(c.releaseErrors, prometheus.CounterValue, float64(m.ReleaseErrors), name)
	}
}
