package engine

import (
	"github.com/neonrift/neonrift/internal/mission"
	"github.com/neonrift/neonrift/internal/question"
)

// Run is the ephemeral state of one mission attempt. It is created at
// mission start, mutated by ticks and submissions, and discarded when the
// mission ends. Never persisted.
type Run struct {
	Mission mission.Mission
	Tick    uint64 // Run clock, advanced once per engine tick

	TimeLeft float64 // Seconds, always within [0, TimeLimitSeconds]
	Score    int
	XpGained int

	Streak     int
	Combo      int
	PeakStreak int
	PeakCombo  int

	CorrectCount   int
	TotalAnswered  int
	RecentMistakes int

	// Per-kind correct counters for achievements.
	MemoryCorrect  int
	PatternCorrect int
	LogicCorrect   int

	RiskArmed bool
	RiskWins  int

	PowerUses       int
	EventsTriggered int
	SkipPending     bool
	FreezeActive    bool
	DoubleXpPower   bool
	DoubleXpEvent   bool
	SpeedModifier   float64
	GlitchBoost     float64
	Inverted        bool

	ActiveEvent      EventKind // Empty when no event is active
	ActiveEventLabel string

	CurrentQuestion *question.Question
	Echoes          *question.EchoBuffer

	// Set when the run ends.
	Finished         bool
	Success          bool
	CompletedMission int // Mission id on success, 0 otherwise
	BossComplete     bool

	// Per-run power-up cooldown stamps in run-clock milliseconds, keyed
	// by kind. Absent means the kind has not been used this run.
	powerLastUsedMs map[string]int64
}

// Accuracy returns correct/total, or 0 before any answer.
func (r *Run) Accuracy() float64 {
	if r.TotalAnswered == 0 {
		return 0
	}
	return float64(r.CorrectCount) / float64(r.TotalAnswered)
}
