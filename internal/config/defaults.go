package config

import (
	_ "embed"
)

//go:embed defaults/neonrift.yaml
var defaultYAML []byte

// Default returns the canonical rule set. The embedded YAML mirrors these
// values; this struct is the fallback if the embed ever fails to parse.
func Default() Config {
	return Config{
		Scoring: ScoringConfig{
			BaseGain:        12,
			RiskBonus:       40,
			RiskPenaltyFrac: 0.25,
			FailXp:          FailXpNone,
		},
		Levels: LevelConfig{
			BaseRequired: 200,
			PerLevel:     120,
		},
		Events: EventConfig{
			ActivationChance: 0.003,
			DurationSeconds:  12,
			SlowFactor:       0.6,
			DistortFactor:    1.4,
			GlitchStormBoost: 0.3,
		},
		PowerUps: PowerUpConfig{
			TimeBoostSeconds: 10,
			DoubleXpSeconds:  15,
			FreezeSeconds:    5,
			Inventory: map[string]Slot{
				"time_boost": {Count: 2, Cooldown: 25},
				"double_xp":  {Count: 1, Cooldown: 35},
				"skip":       {Count: 2, Cooldown: 20},
				"freeze":     {Count: 1, Cooldown: 40},
			},
		},
		Questions: QuestionConfig{
			GlitchChance:    0.12,
			FreeTextChance:  0.45,
			MemoryChance:    0.6,
			MemoryBufferCap: 6,
			DecoyCount:      3,
		},
		Daily: DailyConfig{
			Xp:             120,
			BonusPowerUp:   "time_boost",
			UnlocksMission: true,
		},
		Missions: MissionConfig{
			Count:       40,
			BossEvery:   4,
			TargetBase:  12,
			TimeBase:    55,
			BossTime:    70,
			BaseXp:      120,
			XpPerId:     4,
			BossBaseXp:  220,
			BossXpPerId: 6,
		},
	}
}
