// neonrift is a terminal arithmetic trivia game set in a neon cyber grid.
//
// Usage:
//
//	neonrift play               - Start the interactive game
//	neonrift missions           - List the mission catalogue
//	neonrift profile            - Show the player profile
//	neonrift daily              - Claim the daily reward
//	neonrift history            - Show recent runs
//	neonrift serve              - Start SSH server for remote play
//
// Global flags:
//
//	--tick <rate>   - Engine ticks per second (default: 10)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.neonrift/neonrift.db)
//	--config <path> - Path to custom rules YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neonrift/neonrift/internal/config"
	"github.com/neonrift/neonrift/internal/storage"
)

var (
	// Global flags
	flagTick   int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonrift",
	Short: "Neon Rift - Arithmetic trivia in your terminal",
	Long: `Neon Rift is a terminal trivia game: race a countdown through 40
missions of arithmetic, comparison, memory, pattern and logic questions,
build streaks and combos, and survive the rift events.

Available commands:
  play     - Start the interactive game
  missions - List the mission catalogue
  profile  - View level, XP, achievements and inventory
  daily    - Claim the daily reward
  history  - View recent runs and aggregate stats
  serve    - Start SSH server for remote play

Examples:
  neonrift play
  neonrift play --seed 42
  neonrift missions
  neonrift serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 10, "Engine ticks per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neonrift/neonrift.db", "Path to database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(missionsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadRules loads the game rules, falling back to defaults on error.
func loadRules() config.Config {
	rules, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		return config.Default()
	}
	return rules
}

// openStore opens the database, or returns nil when it cannot be opened.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}
