package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs",
	Long: `Display the most recent mission attempts with their outcome,
score and accuracy, plus aggregate statistics.

Examples:
  neonrift history
  neonrift history --limit 50`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Printf("Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'neonrift play' to record your first mission.")
		return
	}

	fmt.Println("Recent runs:")
	fmt.Println()
	fmt.Printf("  %-16s  %-14s  %-7s  %-6s  %-5s  %s\n",
		"Date", "Mission", "Result", "Score", "Acc", "Streak")
	fmt.Printf("  %-16s  %-14s  %-7s  %-6s  %-5s  %s\n",
		"----", "-------", "------", "-----", "---", "------")

	for _, r := range runs {
		result := "failed"
		if r.Success {
			result = "won"
		}
		fmt.Printf("  %-16s  %-14s  %-7s  %-6d  %3.0f%%  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.MissionName,
			result, r.Score, r.Accuracy*100, r.PeakStreak)
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Totals: %d runs, %d wins, best score %d, avg accuracy %.0f%%\n",
		stats.TotalRuns, stats.Wins, stats.BestScore, stats.AvgAccuracy*100)
}
