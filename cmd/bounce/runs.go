package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

var (
	flagRunsToy   string
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs [id]",
	Short: "List recorded simulation runs",
	Long: `List the most recent runs stored with 'bounce sim --record', or
show one run in full, including the parameters it was started with.

Examples:
  bounce runs
  bounce runs --limit 5
  bounce runs 12`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsToy, "toy", "", "Only show runs of this toy")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to list")
}

func runRuns(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showRun(store, args[0])
		return
	}

	runs, err := store.RecentRuns(flagRunsToy, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Record one with 'bounce sim --record'.")
		return
	}

	fmt.Printf("  %-5s  %-8s  %-8s  %-6s  %-7s  %-10s  %-9s  %s\n",
		"ID", "Toy", "Ticks", "Bodies", "Resting", "Kinetic", "Elapsed", "Date")
	fmt.Printf("  %-5s  %-8s  %-8s  %-6s  %-7s  %-10s  %-9s  %s\n",
		"--", "---", "-----", "------", "-------", "-------", "-------", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-8s  %-8d  %-6d  %-7d  %-10.3f  %-9s  %s\n",
			r.ID, r.Toy, r.Ticks, r.Bodies, r.Resting, r.Kinetic,
			r.Duration.Round(time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func showRun(store *storage.Store, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", arg)
		return
	}

	r, err := store.RunByID(id)
	if errors.Is(err, storage.ErrRunNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no run with id %d\n", id)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		return
	}

	fmt.Printf("Run %d (%s)\n\n", r.ID, r.Toy)
	fmt.Printf("  Seed:     %d\n", r.Seed)
	fmt.Printf("  Ticks:    %d\n", r.Ticks)
	fmt.Printf("  Bodies:   %d (%d resting)\n", r.Bodies, r.Resting)
	fmt.Printf("  Kinetic:  %.3f\n", r.Kinetic)
	fmt.Printf("  Elapsed:  %s\n", r.Duration.Round(time.Millisecond))
	fmt.Printf("  Recorded: %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	if r.Params != "" {
		fmt.Println()
		fmt.Println("Parameters:")
		fmt.Println(r.Params)
	}
}
