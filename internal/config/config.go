// Package config provides YAML-based tuning for the Neon Rift engine.
// Every numeric rule constant (scoring, level curve, events, power-ups,
// question generation, daily reward, mission formula) lives here so
// balance changes never touch control flow.
package config

// Config is the root configuration for the game.
type Config struct {
	Scoring   ScoringConfig  `yaml:"scoring"`
	Levels    LevelConfig    `yaml:"levels"`
	Events    EventConfig    `yaml:"events"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Questions QuestionConfig `yaml:"questions"`
	Daily     DailyConfig    `yaml:"daily"`
	Missions  MissionConfig  `yaml:"missions"`
}

// FailXpPolicy controls how much run XP is committed when a mission fails.
type FailXpPolicy string

const (
	// FailXpNone discards all run XP on failure.
	FailXpNone FailXpPolicy = "none"
	// FailXpHalf commits half of the run XP on failure.
	FailXpHalf FailXpPolicy = "half"
)

// ScoringConfig defines XP arithmetic for answer submissions.
type ScoringConfig struct {
	BaseGain        int          `yaml:"base_gain"`         // Flat XP per correct answer, combo is added on top
	RiskBonus       int          `yaml:"risk_bonus"`        // Flat XP for winning an armed risk answer
	RiskPenaltyFrac float64      `yaml:"risk_penalty_frac"` // Fraction of run XP lost on a failed risk answer
	FailXp          FailXpPolicy `yaml:"fail_xp"`           // Run XP committed on mission failure
}

// LevelConfig defines the level-up curve: required = base + level*per_level.
type LevelConfig struct {
	BaseRequired int `yaml:"base_required"`
	PerLevel     int `yaml:"per_level"`
}

// EventConfig defines rift event behaviour.
type EventConfig struct {
	// ActivationChance is rolled once per engine tick while no event is
	// active. At the default 10 ticks per second, 0.003 triggers an event
	// roughly every 33 seconds of play.
	ActivationChance float64 `yaml:"activation_chance"`
	DurationSeconds  float64 `yaml:"duration_seconds"`
	SlowFactor       float64 `yaml:"slow_factor"`        // Timer speed during slow_motion
	DistortFactor    float64 `yaml:"distort_factor"`     // Timer speed during time_distortion
	GlitchStormBoost float64 `yaml:"glitch_storm_boost"` // Added glitch probability during glitch_storm
}

// PowerUpConfig defines power-up effects and the starting inventory.
type PowerUpConfig struct {
	TimeBoostSeconds float64         `yaml:"time_boost_seconds"`
	DoubleXpSeconds  float64         `yaml:"double_xp_seconds"`
	FreezeSeconds    float64         `yaml:"freeze_seconds"`
	Inventory        map[string]Slot `yaml:"inventory"`
}

// Slot is the starting count and cooldown for one power-up kind.
type Slot struct {
	Count    int `yaml:"count"`
	Cooldown int `yaml:"cooldown"` // Seconds between uses within a run
}

// QuestionConfig defines generator behaviour.
type QuestionConfig struct {
	GlitchChance    float64 `yaml:"glitch_chance"`     // Base probability a question is relabelled as a glitch
	FreeTextChance  float64 `yaml:"free_text_chance"`  // Probability an arithmetic question uses free-text input
	MemoryChance    float64 `yaml:"memory_chance"`     // Probability a memory mission replays a buffered prompt
	MemoryBufferCap int     `yaml:"memory_buffer_cap"` // Max buffered (prompt, answer) pairs per run
	DecoyCount      int     `yaml:"decoy_count"`       // Wrong choices added next to the correct answer
}

// DailyConfig defines the once-per-calendar-day reward.
type DailyConfig struct {
	Xp             int    `yaml:"xp"`
	BonusPowerUp   string `yaml:"bonus_powerup"` // Power-up kind granted on claim, empty disables
	UnlocksMission bool   `yaml:"unlocks_mission"`
}

// MissionConfig defines the catalogue formula.
type MissionConfig struct {
	Count       int `yaml:"count"`
	BossEvery   int `yaml:"boss_every"`
	TargetBase  int `yaml:"target_base"` // target = target_base + id
	TimeBase    int `yaml:"time_base"`   // time = time_base + id/2 for standard missions
	BossTime    int `yaml:"boss_time"`   // Fixed time limit for boss missions
	BaseXp      int `yaml:"base_xp"`     // reward = base_xp + id*xp_per_id
	XpPerId     int `yaml:"xp_per_id"`
	BossBaseXp  int `yaml:"boss_base_xp"` // reward = boss_base_xp + id*boss_xp_per_id
	BossXpPerId int `yaml:"boss_xp_per_id"`
}
