package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	pushCount    int
	pushCapacity int
	pushSource   string
)

func init() {
	cmd := newPushCmd()
	cmd.Flags().IntVarP(&pushCount, "count", "n", 20, "Number of elements to push")
	cmd.Flags().IntVar(&pushCapacity, "capacity", 10, "Initial arena and vector capacity")
	cmd.Flags().StringVar(&pushSource, "source", "heap", "Block source: heap or mmap")
	rootCmd.AddCommand(cmd)
}

func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push integers into an arena-backed vector",
		Long: `The push command appends 0..count-1 to a dynamic array whose storage
comes from a single growable arena, verifies the iteration order and
reports how the vector and the arena grew.

Example:
  arenactl push --count 20
  arenactl push --count 100000 --source mmap --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush()
		},
	}
	return cmd
}

func runPush() error {
	r, err := runPushWorkload(pushCount, pushCapacity, pushSource, newLogger())
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(r)
	}
	fmt.Printf("Elements:        %d\n", r.Len)
	fmt.Printf("Reserved:        %d\n", r.Reserved)
	fmt.Printf("Vector growths:  %d\n", r.VectorGrowths)
	printArena(r.Arena)
	return nil
}
