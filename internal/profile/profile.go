// Package profile holds the persistent player state: level, XP, unlocked
// missions, achievements and the power-up inventory. The engine mutates a
// profile only at well-defined transition points (mission end, power-up
// use, daily claim); persistence lives in the storage package.
package profile

import (
	"github.com/neonrift/neonrift/internal/config"
)

// PowerUpKind identifies one consumable power-up.
type PowerUpKind string

const (
	PowerTimeBoost PowerUpKind = "time_boost"
	PowerDoubleXp  PowerUpKind = "double_xp"
	PowerSkip      PowerUpKind = "skip"
	PowerFreeze    PowerUpKind = "freeze"
)

// Kinds lists all power-up kinds in display order.
var Kinds = []PowerUpKind{PowerTimeBoost, PowerDoubleXp, PowerSkip, PowerFreeze}

// Label returns the display name for the kind.
func (k PowerUpKind) Label() string {
	switch k {
	case PowerTimeBoost:
		return "Time Boost"
	case PowerDoubleXp:
		return "Double XP"
	case PowerSkip:
		return "Skip"
	case PowerFreeze:
		return "Freeze Timer"
	default:
		return string(k)
	}
}

// PowerUpState is the inventory entry for one kind. LastUsedMs is the
// run-clock timestamp of the last activation; the engine resets it at
// mission start so cooldowns are per run.
type PowerUpState struct {
	Count           int   `json:"count"`
	CooldownSeconds int   `json:"cooldown"`
	LastUsedMs      int64 `json:"last_used_ms"`
}

// Profile is the long-lived player state.
type Profile struct {
	Level            int                            `json:"level"`
	Xp               int                            `json:"xp"`
	TotalXp          int                            `json:"total_xp"`
	UnlockedMissions int                            `json:"unlocked_missions"`
	BestStreak       int                            `json:"best_streak"`
	BossWins         int                            `json:"boss_wins"`
	Achievements     []string                       `json:"achievements"`
	PowerUps         map[PowerUpKind]*PowerUpState  `json:"powerups"`
	DailyClaim       string                         `json:"daily_claim"` // Calendar date of the last claim, empty if never
}

// New creates a fresh profile with the starting inventory from cfg.
func New(cfg config.PowerUpConfig) *Profile {
	p := &Profile{
		Level:            1,
		UnlockedMissions: 1,
		Achievements:     []string{},
		PowerUps:         make(map[PowerUpKind]*PowerUpState, len(Kinds)),
	}
	p.Normalize(cfg)
	return p
}

// Normalize fills in inventory slots missing from an older save so new
// power-up kinds survive schema growth. Existing slots are untouched.
func (p *Profile) Normalize(cfg config.PowerUpConfig) {
	if p.PowerUps == nil {
		p.PowerUps = make(map[PowerUpKind]*PowerUpState, len(Kinds))
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.UnlockedMissions < 1 {
		p.UnlockedMissions = 1
	}
	for _, kind := range Kinds {
		if _, ok := p.PowerUps[kind]; !ok {
			slot := cfg.Inventory[string(kind)]
			p.PowerUps[kind] = &PowerUpState{
				Count:           slot.Count,
				CooldownSeconds: slot.Cooldown,
			}
		}
	}
}

// HasAchievement reports membership in the unlocked set.
func (p *Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// Unlock adds an achievement id. Returns false if it was already present;
// an unlocked achievement is never removed.
func (p *Profile) Unlock(id string) bool {
	if p.HasAchievement(id) {
		return false
	}
	p.Achievements = append(p.Achievements, id)
	return true
}

// GrantXp adds XP to both counters and applies the level-up loop.
// Returns the number of levels gained; large grants may cross several
// thresholds in one call.
func (p *Profile) GrantXp(amount int, cfg config.LevelConfig) int {
	if amount <= 0 {
		return 0
	}
	p.Xp += amount
	p.TotalXp += amount

	levels := 0
	for {
		required := cfg.BaseRequired + p.Level*cfg.PerLevel
		if p.Xp < required {
			break
		}
		p.Xp -= required
		p.Level++
		levels++
	}
	return levels
}

// UnlockNextMission advances the mission watermark, capped at the
// catalogue size.
func (p *Profile) UnlockNextMission(catalogueSize int) {
	if p.UnlockedMissions < catalogueSize {
		p.UnlockedMissions++
	}
}

// ClaimDaily applies the daily reward if today's date differs from the
// stored claim date. Returns false (and changes nothing) when already
// claimed today, along with any levels gained from the XP grant.
func (p *Profile) ClaimDaily(today string, daily config.DailyConfig, levels config.LevelConfig, catalogueSize int) (bool, int) {
	if p.DailyClaim == today {
		return false, 0
	}
	p.DailyClaim = today

	gained := p.GrantXp(daily.Xp, levels)
	if daily.BonusPowerUp != "" {
		if slot, ok := p.PowerUps[PowerUpKind(daily.BonusPowerUp)]; ok {
			slot.Count++
		}
	}
	if daily.UnlocksMission {
		p.UnlockNextMission(catalogueSize)
	}
	return true, gained
}
