package engine

import (
	"github.com/neonrift/neonrift/internal/mission"
	"github.com/neonrift/neonrift/internal/profile"
	"github.com/neonrift/neonrift/internal/question"
)

// Snapshot is the read-only view of an in-progress run handed to the
// renderer after every state change.
type Snapshot struct {
	State   State
	Mission mission.Mission

	TimeLeft      float64
	Score         int
	XpGained      int
	Streak        int
	Combo         int
	CorrectCount  int
	TotalAnswered int
	Accuracy      float64

	EventLabel  string // "None" when no rift event is active
	Inverted    bool
	FrozenTimer bool
	RiskArmed   bool
	SkipPending bool
	DoubleXp    bool

	Question *question.Question

	PowerUps []PowerUpView
}

// PowerUpView is one inventory slot with its live availability.
type PowerUpView struct {
	Kind  profile.PowerUpKind
	Label string
	Count int
	Ready bool
}

// Summary is the result of a finished run, for the results screen and
// run history.
type Summary struct {
	Mission      mission.Mission
	Success      bool
	Score        int
	XpGained     int
	XpCommitted  int // XP actually added to the profile (fail policy applies)
	Accuracy     float64
	PeakStreak   int
	PeakCombo    int
	TimeLeft     float64
	LevelsGained int
	Unlocked     []Unlock
}

// Snapshot builds the renderer view of the current run. Valid in
// Running, Completed and Failed states; zero value otherwise.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{State: e.state, EventLabel: "None"}
	r := e.run
	if r == nil {
		return s
	}

	s.Mission = r.Mission
	s.TimeLeft = r.TimeLeft
	s.Score = r.Score
	s.XpGained = r.XpGained
	s.Streak = r.Streak
	s.Combo = r.Combo
	s.CorrectCount = r.CorrectCount
	s.TotalAnswered = r.TotalAnswered
	s.Accuracy = r.Accuracy()
	if r.ActiveEventLabel != "" {
		s.EventLabel = r.ActiveEventLabel
	}
	s.Inverted = r.Inverted
	s.FrozenTimer = r.FreezeActive
	s.RiskArmed = r.RiskArmed
	s.SkipPending = r.SkipPending
	s.DoubleXp = r.DoubleXpPower || r.DoubleXpEvent
	s.Question = r.CurrentQuestion

	for _, kind := range profile.Kinds {
		slot := e.profile.PowerUps[kind]
		if slot == nil {
			continue
		}
		s.PowerUps = append(s.PowerUps, PowerUpView{
			Kind:  kind,
			Label: kind.Label(),
			Count: slot.Count,
			Ready: e.PowerUpReady(kind),
		})
	}
	return s
}
