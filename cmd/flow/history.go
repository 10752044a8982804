package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flow/internal/games/flow"
	"github.com/vovakirdan/tui-flow/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistoryRecent bool
)

var historyCmd = &cobra.Command{
	Use:   "history [easy|hard|impossible]",
	Short: "Show cleared levels for a mode",
	Long: `Display the fastest cleared levels for a mode (easy when omitted).

Examples:
  flow history
  flow history hard
  flow history impossible --recent --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of clears to show")
	historyCmd.Flags().BoolVar(&flagHistoryRecent, "recent", false, "Newest first instead of fastest first")
}

func runHistory(_ *cobra.Command, args []string) error {
	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}
	gameID, err := resolveGameID(arg)
	if err != nil {
		return err
	}
	mode, _ := flow.ModeFromID(gameID)
	title := flow.New(mode).Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening clears database: %w", err)
	}
	defer store.Close()

	var clears []storage.ClearRecord
	if flagHistoryRecent {
		clears, err = store.RecentClears(gameID, flagHistoryLimit)
	} else {
		clears, err = store.FastestClears(gameID, flagHistoryLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving clears: %w", err)
	}

	fmt.Printf("Cleared levels - %s\n", title)
	fmt.Println()

	if len(clears) == 0 {
		fmt.Println("No levels cleared yet.")
		fmt.Println()
		fmt.Printf("Play 'flow play %s' to record the first clear!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-5s  %-8s  %-8s  %s\n", "Rank", "Level", "Grid", "Time", "Restarts", "Date")
	fmt.Printf("  %-4s  %-5s  %-5s  %-8s  %-8s  %s\n", "----", "-----", "----", "----", "--------", "----")

	for i, c := range clears {
		grid := fmt.Sprintf("%dx%d", c.GridSize, c.GridSize)
		fmt.Printf("  %-4d  %-5d  %-5s  %-8s  %-8d  %s\n",
			i+1, c.Level, grid, c.Duration.Round(100*time.Millisecond), c.Attempts,
			c.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Clears: %d  Best level: %d  Fastest: %s  Average: %s  Runs: %d\n",
		stats.Clears, stats.HighestLevel,
		stats.Fastest.Round(100*time.Millisecond), stats.Average.Round(100*time.Millisecond), stats.Runs)

	return nil
}
