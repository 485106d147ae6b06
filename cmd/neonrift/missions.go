package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neonrift/neonrift/internal/mission"
)

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List the mission catalogue",
	Long: `Show every mission with its archetype, goal, time limit and
reward. Missions above your unlock watermark are marked as locked.`,
	Run: runMissions,
}

func runMissions(cmd *cobra.Command, args []string) {
	rules := loadRules()
	catalogue := mission.Build(rules.Missions)

	unlocked := 1
	if store := openStore(); store != nil {
		if prof, err := store.LoadProfile(rules.PowerUps); err == nil {
			unlocked = prof.UnlockedMissions
		}
		store.Close()
	}

	fmt.Println("Neon Rift missions:")
	fmt.Println()
	fmt.Printf("  %-3s  %-14s  %-22s  %-7s  %-6s  %s\n",
		"ID", "Name", "Archetype", "Target", "Time", "Reward")
	fmt.Printf("  %-3s  %-14s  %-22s  %-7s  %-6s  %s\n",
		"--", "----", "---------", "------", "----", "------")

	for _, m := range catalogue.All() {
		lock := ""
		if m.ID > unlocked {
			lock = "  (locked)"
		}
		fmt.Printf("  %-3d  %-14s  %-22s  %-7d  %-6s  %d XP%s\n",
			m.ID, m.Name, m.Archetype, m.TargetCorrect,
			fmt.Sprintf("%ds", m.TimeLimitSeconds), m.BaseXpReward, lock)
	}

	fmt.Println()
	fmt.Printf("Unlocked: %d/%d. Run 'neonrift play' to continue.\n", unlocked, catalogue.Len())
}
