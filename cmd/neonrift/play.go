package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/neonrift/neonrift/internal/engine"
	"github.com/neonrift/neonrift/internal/mission"
	"github.com/neonrift/neonrift/internal/platform/tui"
	"github.com/neonrift/neonrift/internal/profile"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive game",
	Long: `Start the Neon Rift session: pick a mission, answer questions
against the countdown, trigger power-ups and survive rift events.

Controls:
  1-4        - Pick a choice answer
  Enter      - Submit a typed answer
  F1-F4      - Power-ups (time boost, double XP, skip, freeze)
  F5         - Arm risk mode
  Esc        - Abandon the run
  Q/Ctrl+C   - Quit

Examples:
  neonrift play
  neonrift play --seed 42
  neonrift play --config ./my-rules.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	rules := loadRules()
	catalogue := mission.Build(rules.Missions)

	store := openStore()

	prof := profile.New(rules.PowerUps)
	opts := engine.Options{Seed: flagSeed, TicksPerSecond: flagTick}
	if store != nil {
		loaded, err := store.LoadProfile(rules.PowerUps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load profile: %v\n", err)
		} else {
			prof = loaded
		}
		opts.Saver = store
	}

	// The TUI adapts to the terminal; a probe here only validates that we
	// actually have one before entering the alt screen.
	if _, _, err := term.GetSize(int(os.Stdout.Fd())); err != nil {
		fmt.Fprintln(os.Stderr, "Error: neonrift play needs an interactive terminal")
		os.Exit(1)
	}

	eng := engine.New(rules, catalogue, prof, opts)

	runErr := tui.Run(eng, store, flagTick)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
