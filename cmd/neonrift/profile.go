package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neonrift/neonrift/internal/engine"
	"github.com/neonrift/neonrift/internal/mission"
	"github.com/neonrift/neonrift/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the player profile",
	Long:  `Display level, XP, unlocked missions, achievements and the power-up inventory.`,
	Run:   runProfile,
}

func runProfile(cmd *cobra.Command, args []string) {
	rules := loadRules()
	catalogue := mission.Build(rules.Missions)

	store := mustOpenStore()
	defer store.Close()

	prof, err := store.LoadProfile(rules.PowerUps)
	if err != nil {
		fmt.Printf("Error loading profile: %v\n", err)
		return
	}

	required := rules.Levels.BaseRequired + prof.Level*rules.Levels.PerLevel

	fmt.Println("Neon Rift profile")
	fmt.Println()
	fmt.Printf("  Level:       %d (%d/%d XP to next)\n", prof.Level, prof.Xp, required)
	fmt.Printf("  Total XP:    %d\n", prof.TotalXp)
	fmt.Printf("  Missions:    %d/%d unlocked\n", prof.UnlockedMissions, catalogue.Len())
	fmt.Printf("  Best streak: %d\n", prof.BestStreak)
	fmt.Printf("  Boss wins:   %d\n", prof.BossWins)
	if prof.DailyClaim != "" {
		fmt.Printf("  Last daily:  %s\n", prof.DailyClaim)
	}

	fmt.Println()
	fmt.Println("  Power-ups:")
	for _, kind := range profile.Kinds {
		slot := prof.PowerUps[kind]
		if slot == nil {
			continue
		}
		fmt.Printf("    %-12s x%d  (%ds cooldown)\n", kind.Label(), slot.Count, slot.CooldownSeconds)
	}

	fmt.Println()
	fmt.Printf("  Achievements: %d/%d\n", len(prof.Achievements), engine.AchievementCount())
	for _, id := range prof.Achievements {
		fmt.Printf("    %s\n", id)
	}
}
