package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pet/internal/platform/tui"
	"github.com/vovakirdan/tui-pet/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsRecent bool
	flagRunsBoard  bool
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show past runs",
	Long: `Display the longest-surviving pets, or the most recent runs.

Examples:
  vpet runs
  vpet runs --recent --limit 5
  vpet runs --board
  vpet runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsRecent, "recent", false, "Show the most recent runs instead of the longest")
	runsCmd.Flags().BoolVar(&flagRunsBoard, "board", false, "Open the interactive history board")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagRunsClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return

	case flagRunsBoard:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistoryBoard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	title := "Longest runs"
	var runs []storage.Run
	if flagRunsRecent {
		title = "Recent runs"
		runs, err = store.RecentRuns(flagRunsLimit)
	} else {
		runs, err = store.TopRuns(flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'vpet play' to raise your first pet!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-9s  %-5s  %-10s  %s\n", "Rank", "Pet", "Survived", "Items", "Cause", "Date")
	fmt.Printf("  %-4s  %-12s  %-9s  %-5s  %-10s  %s\n", "----", "---", "--------", "-----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-9s  %-5d  %-10s  %s\n",
			i+1, r.PetName, fmt.Sprintf("%.1fs", r.Survived.Seconds()), r.ItemsUsed, r.Cause,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.BestRun(); err == nil && best != nil {
		fmt.Println()
		fmt.Printf("Best: %s survived %.1fs\n", best.PetName, best.Survived.Seconds())
	}
}
