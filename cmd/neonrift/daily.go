package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/neonrift/neonrift/internal/engine"
	"github.com/neonrift/neonrift/internal/mission"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Claim the daily reward",
	Long: `Claim today's reward: bonus XP, an extra power-up charge, and one
mission unlock. Can be claimed once per calendar day.`,
	Run: runDaily,
}

func runDaily(cmd *cobra.Command, args []string) {
	rules := loadRules()
	catalogue := mission.Build(rules.Missions)

	store := mustOpenStore()
	defer store.Close()

	prof, err := store.LoadProfile(rules.PowerUps)
	if err != nil {
		fmt.Printf("Error loading profile: %v\n", err)
		return
	}

	eng := engine.New(rules, catalogue, prof, engine.Options{Saver: store})

	today := time.Now().Format("2006-01-02")
	ok, unlocked := eng.ClaimDaily(today)
	if !ok {
		fmt.Println("Daily reward already claimed today. Come back tomorrow.")
		return
	}

	fmt.Printf("Daily reward claimed: +%d XP", rules.Daily.Xp)
	if rules.Daily.BonusPowerUp != "" {
		fmt.Printf(", +1 %s", rules.Daily.BonusPowerUp)
	}
	if rules.Daily.UnlocksMission {
		fmt.Printf(", mission watermark now %d", prof.UnlockedMissions)
	}
	fmt.Println()

	for _, u := range unlocked {
		fmt.Printf("Unlocked: %s (%s)\n", u.Name, u.Desc)
	}
}
