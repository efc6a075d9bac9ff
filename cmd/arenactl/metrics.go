package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	arena "github.com/pavanmanishd/bumparena"
	"github.com/pavanmanishd/bumparena/collector"
)

var (
	metricsCount  int
	metricsSource string
)

func init() {
	cmd := newMetricsCmd()
	cmd.Flags().IntVarP(&metricsCount, "count", "n", 1000, "Elements per workload")
	cmd.Flags().StringVar(&metricsSource, "source", "heap", "Block source for the push workload: heap or mmap")
	rootCmd.AddCommand(cmd)
}

func newMetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Run both workloads and print Prometheus metrics",
		Long: `The metrics command runs the push and map workloads and prints the
arena statistics of both in the Prometheus text exposition format.

Example:
  arenactl metrics --count 1000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeMetrics(os.Stdout, metricsCount, metricsSource)
		},
	}
	return cmd
}

// frozen serves a metrics snapshot taken before its arena was released.
type frozen arena.ArenaMetrics

func (f frozen) Metrics() arena.ArenaMetrics { return arena.ArenaMetrics(f) }

// writeMetrics runs both workloads and writes one gathering of their arena
// statistics to w.
func writeMetrics(w io.Writer, count int, source string) error {
	logger := newLogger()
	push, err := runPushWorkload(count, arena.DefaultCapacity, source, logger)
	if err != nil {
		return err
	}
	m, err := runMapWorkload(count, arena.DefaultCapacity, logger)
	if err != nil {
		return err
	}

	c := collector.New("arenactl")
	c.Add("vector", frozen(push.Arena))
	c.Add("ordmap", frozen(m.Arena))
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return errors.Wrap(err, "register collector")
	}

	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrapf(err, "write %s", mf.GetName())
		}
	}
	return nil
}
