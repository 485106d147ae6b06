// Package mission defines the static mission catalogue. Missions are
// generated deterministically from their id: difficulty, time limit and
// reward all scale with id, and every Nth mission is a boss rift.
package mission

import (
	"fmt"

	"github.com/neonrift/neonrift/internal/config"
)

// Archetype selects which question family a mission draws from.
type Archetype int

const (
	Arithmetic Archetype = iota
	Comparison
	Memory
	Pattern
	Logic
	Boss
)

// String returns the display name for the archetype.
func (a Archetype) String() string {
	switch a {
	case Arithmetic:
		return "Speed Arithmetic"
	case Comparison:
		return "Comparison Challenge"
	case Memory:
		return "Memory Echo"
	case Pattern:
		return "Pattern Recognition"
	case Logic:
		return "Logic Breach"
	case Boss:
		return "Boss Rift"
	default:
		return "Unknown"
	}
}

// rotation is the archetype cycle for non-boss missions.
var rotation = []Archetype{Arithmetic, Comparison, Memory, Pattern, Logic}

// Mission is one playable level. Immutable after construction.
type Mission struct {
	ID               int
	Name             string
	Archetype        Archetype
	IsBoss           bool
	TargetCorrect    int
	TimeLimitSeconds int
	BaseXpReward     int
}

// Objective returns the human-readable mission goal.
func (m Mission) Objective() string {
	if m.IsBoss {
		return "Survive the hybrid breach"
	}
	return fmt.Sprintf("Complete %d correct answers", m.TargetCorrect)
}

// Catalogue is the ordered, immutable set of all missions.
type Catalogue struct {
	missions []Mission
}

// Build generates the catalogue from the formula parameters.
func Build(cfg config.MissionConfig) *Catalogue {
	missions := make([]Mission, 0, cfg.Count)
	for id := 1; id <= cfg.Count; id++ {
		boss := cfg.BossEvery > 0 && id%cfg.BossEvery == 0

		m := Mission{
			ID:            id,
			TargetCorrect: cfg.TargetBase + id,
		}
		if boss {
			m.Name = fmt.Sprintf("Boss Rift %d", id)
			m.Archetype = Boss
			m.IsBoss = true
			m.TimeLimitSeconds = cfg.BossTime
			m.BaseXpReward = cfg.BossBaseXp + id*cfg.BossXpPerId
		} else {
			m.Name = fmt.Sprintf("Mission %d", id)
			m.Archetype = rotation[(id-1)%len(rotation)]
			m.TimeLimitSeconds = cfg.TimeBase + id/2
			m.BaseXpReward = cfg.BaseXp + id*cfg.XpPerId
		}
		missions = append(missions, m)
	}
	return &Catalogue{missions: missions}
}

// Get returns the mission with the given id, or false if out of range.
func (c *Catalogue) Get(id int) (Mission, bool) {
	if id < 1 || id > len(c.missions) {
		return Mission{}, false
	}
	return c.missions[id-1], true
}

// All returns the missions in id order. The slice is a copy.
func (c *Catalogue) All() []Mission {
	out := make([]Mission, len(c.missions))
	copy(out, c.missions)
	return out
}

// Len returns the number of missions in the catalogue.
func (c *Catalogue) Len() int {
	return len(c.missions)
}
