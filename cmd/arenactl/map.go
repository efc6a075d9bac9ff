package main

import (
	"fmt"

	"github.com/spf13/cobra"

	arena "github.com/pavanmanishd/bumparena"
)

var (
	mapCount    int
	mapCapacity int
)

func init() {
	cmd := newMapCmd()
	cmd.Flags().IntVarP(&mapCount, "count", "n", 10, "Number of keys to insert")
	cmd.Flags().IntVar(&mapCapacity, "capacity", 10, "Capacity of the seed arena")
	rootCmd.AddCommand(cmd)
}

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Fill an ordered map rebound from a seed arena",
		Long: `The map command inserts count keys in descending order into an ordered
map whose entry arena is rebound from a seed arena, verifies that
iteration is ascending and reports the entry arena statistics.

Example:
  arenactl map --count 10
  arenactl map --count 5000 --capacity 64 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap()
		},
	}
	return cmd
}

func runMap() error {
	r, err := runMapWorkload(mapCount, mapCapacity, newLogger())
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(r)
	}
	fmt.Printf("Entries:         %d\n", r.Len)
	fmt.Printf("Key range:       %d..%d\n", r.Min, r.Max)
	printArena(r.Arena)
	return nil
}

// printArena prints arena statistics in the plain output format.
func printArena(m arena.ArenaMetrics) {
	fmt.Printf("Arena used:      %d slots (%d bytes)\n", m.Used, m.SizeInUse)
	fmt.Printf("Arena capacity:  %d slots\n", m.Capacity)
	fmt.Printf("Utilization:     %.2f%%\n", m.Utilization*100)
	fmt.Printf("Arena growths:   %d\n", m.Growths)
	fmt.Printf("Blocks:          %d acquired, %d released\n", m.BlocksAcquired, m.BlocksReleased)
}
