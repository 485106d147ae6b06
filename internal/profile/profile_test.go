package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonrift/neonrift/internal/config"
)

func TestNewProfileDefaults(t *testing.T) {
	p := New(config.Default().PowerUps)

	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.Xp)
	assert.Equal(t, 1, p.UnlockedMissions)
	assert.Empty(t, p.Achievements)

	require.Contains(t, p.PowerUps, PowerTimeBoost)
	assert.Equal(t, 2, p.PowerUps[PowerTimeBoost].Count)
	assert.Equal(t, 25, p.PowerUps[PowerTimeBoost].CooldownSeconds)
	assert.Equal(t, 1, p.PowerUps[PowerFreeze].Count)
	assert.Equal(t, 40, p.PowerUps[PowerFreeze].CooldownSeconds)
}

func TestNormalizeFillsMissingSlots(t *testing.T) {
	p := &Profile{Level: 3, PowerUps: map[PowerUpKind]*PowerUpState{
		PowerSkip: {Count: 9, CooldownSeconds: 5},
	}}
	p.Normalize(config.Default().PowerUps)

	// Existing slot untouched, missing slots filled with defaults.
	assert.Equal(t, 9, p.PowerUps[PowerSkip].Count)
	assert.Equal(t, 1, p.PowerUps[PowerDoubleXp].Count)
	assert.NotNil(t, p.Achievements)
}

func TestGrantXpLevelLoop(t *testing.T) {
	cfg := config.Default().Levels
	p := New(config.Default().PowerUps)

	// Level 1 requires 320. A huge grant must cross several thresholds
	// and still terminate with xp below the next requirement.
	gained := p.GrantXp(2000, cfg)
	assert.Greater(t, gained, 1)
	required := cfg.BaseRequired + p.Level*cfg.PerLevel
	assert.Less(t, p.Xp, required)
	assert.Equal(t, 2000, p.TotalXp)

	// Zero and negative grants are no-ops.
	before := *p
	assert.Zero(t, p.GrantXp(0, cfg))
	assert.Zero(t, p.GrantXp(-10, cfg))
	assert.Equal(t, before.Xp, p.Xp)
	assert.Equal(t, before.Level, p.Level)
}

func TestGrantXpSingleLevel(t *testing.T) {
	cfg := config.Default().Levels
	p := New(config.Default().PowerUps)

	assert.Zero(t, p.GrantXp(319, cfg))
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 1, p.GrantXp(1, cfg))
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 0, p.Xp)
}

func TestUnlockIdempotent(t *testing.T) {
	p := New(config.Default().PowerUps)

	assert.True(t, p.Unlock("first_blood"))
	assert.False(t, p.Unlock("first_blood"))
	assert.Len(t, p.Achievements, 1)
	assert.True(t, p.HasAchievement("first_blood"))
}

func TestUnlockNextMissionCapped(t *testing.T) {
	p := New(config.Default().PowerUps)
	p.UnlockedMissions = 40
	p.UnlockNextMission(40)
	assert.Equal(t, 40, p.UnlockedMissions)

	p.UnlockedMissions = 39
	p.UnlockNextMission(40)
	assert.Equal(t, 40, p.UnlockedMissions)
}

func TestClaimDailyIdempotentPerDay(t *testing.T) {
	cfg := config.Default()
	p := New(cfg.PowerUps)
	boostBefore := p.PowerUps[PowerTimeBoost].Count

	ok, _ := p.ClaimDaily("2026-08-30", cfg.Daily, cfg.Levels, 40)
	require.True(t, ok)
	assert.Equal(t, 120, p.TotalXp)
	assert.Equal(t, boostBefore+1, p.PowerUps[PowerTimeBoost].Count)
	assert.Equal(t, 2, p.UnlockedMissions)

	ok, _ = p.ClaimDaily("2026-08-30", cfg.Daily, cfg.Levels, 40)
	assert.False(t, ok)
	assert.Equal(t, 120, p.TotalXp)

	// A new day claims again.
	ok, _ = p.ClaimDaily("2026-08-31", cfg.Daily, cfg.Levels, 40)
	assert.True(t, ok)
	assert.Equal(t, 240, p.TotalXp)
}
