// Package engine implements the Neon Rift run engine: the state machine
// that owns mission attempts. It drives the countdown clock, scores
// answer submissions, applies rift events and power-ups, evaluates
// achievements, and commits results to the player profile.
//
// The engine is single-threaded by design. Callers drive it with Tick()
// at a fixed cadence plus synchronous calls (Submit, ActivatePowerUp,
// ArmRisk); all delayed effects run through one scheduler that is cleared
// whenever a run ends, so nothing can mutate a discarded run.
package engine

import (
	"errors"
	"time"

	"github.com/neonrift/neonrift/internal/config"
	"github.com/neonrift/neonrift/internal/mission"
	"github.com/neonrift/neonrift/internal/profile"
	"github.com/neonrift/neonrift/internal/question"
	"github.com/neonrift/neonrift/internal/rng"
)

// State is the engine lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Rejections surfaced by StartMission.
var (
	ErrUnknownMission = errors.New("engine: unknown mission")
	ErrMissionLocked  = errors.New("engine: mission locked")
)

// ProfileSaver persists the player profile. A nil saver disables
// persistence; the engine continues regardless of save errors.
type ProfileSaver interface {
	SaveProfile(p *profile.Profile) error
}

// Options tunes engine construction.
type Options struct {
	Seed           int64        // RNG seed, 0 means derive from current time
	TicksPerSecond int          // Countdown resolution, default 10 (100ms ticks)
	Saver          ProfileSaver // Optional persistence collaborator
}

// Engine owns the player profile and at most one active run.
type Engine struct {
	cfg       config.Config
	catalogue *mission.Catalogue
	profile   *profile.Profile
	saver     ProfileSaver

	rng *rng.Source
	gen *question.Generator

	tps   int
	state State
	run   *Run
	sched scheduler

	lastSummary *Summary
}

// New creates an engine for the given profile. The catalogue and config
// are shared, immutable collaborators.
func New(cfg config.Config, cat *mission.Catalogue, prof *profile.Profile, opts Options) *Engine {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tps := opts.TicksPerSecond
	if tps <= 0 {
		tps = 10
	}

	src := rng.New(seed)
	return &Engine{
		cfg:       cfg,
		catalogue: cat,
		profile:   prof,
		saver:     opts.Saver,
		rng:       src,
		gen:       question.NewGenerator(cfg.Questions, src),
		tps:       tps,
		state:     StateIdle,
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Profile returns the engine's player profile.
func (e *Engine) Profile() *profile.Profile { return e.profile }

// Catalogue returns the mission catalogue.
func (e *Engine) Catalogue() *mission.Catalogue { return e.catalogue }

// Run returns the active run, or nil outside of Running/Completed/Failed.
func (e *Engine) Run() *Run { return e.run }

// LastSummary returns the result of the most recently finished run.
func (e *Engine) LastSummary() *Summary { return e.lastSummary }

// StartMission begins a run for the given mission id. Any in-progress run
// is abandoned first. Rejected with ErrMissionLocked when the id is above
// the unlock watermark.
func (e *Engine) StartMission(id int) error {
	m, ok := e.catalogue.Get(id)
	if !ok {
		return ErrUnknownMission
	}
	if id > e.profile.UnlockedMissions {
		return ErrMissionLocked
	}

	e.teardown()

	e.run = &Run{
		Mission:         m,
		TimeLeft:        float64(m.TimeLimitSeconds),
		SpeedModifier:   1,
		Echoes:          question.NewEchoBuffer(e.cfg.Questions.MemoryBufferCap),
		powerLastUsedMs: make(map[string]int64),
	}
	e.state = StateRunning
	e.nextQuestion()
	return nil
}

// TickResult reports what happened during one tick.
type TickResult struct {
	State       State
	EventNotice string // Set when a rift event activated this tick
	Failed      bool   // Set when the countdown expired this tick
	Unlocked    []Unlock
}

// Tick advances the run clock by one step: fires due scheduled effects,
// decrements the countdown (scaled by the active event, paused during
// freeze), fails the run at zero, and offers the event controller a roll.
func (e *Engine) Tick() TickResult {
	if e.state != StateRunning || e.run == nil {
		return TickResult{State: e.state}
	}

	r := e.run
	r.Tick++
	e.sched.advance(r.Tick)

	// A scheduled callback may have ended nothing, but play it safe: the
	// run can only end via this tick's own countdown below, so r remains
	// valid here.
	if !r.FreezeActive {
		step := (1.0 / float64(e.tps)) * r.SpeedModifier
		r.TimeLeft = rng.ClampF(r.TimeLeft-step, 0, float64(r.Mission.TimeLimitSeconds))
		if r.TimeLeft <= 0 {
			r.TimeLeft = 0
			unlocked := e.finishMission(false)
			return TickResult{State: e.state, Failed: true, Unlocked: unlocked}
		}
	}

	notice := e.maybeTriggerEvent()
	return TickResult{State: e.state, EventNotice: notice}
}

// Verdict classifies a submission.
type Verdict int

const (
	VerdictRejected Verdict = iota // No active question or not running
	VerdictSkipped                 // A pending skip consumed the question
	VerdictCorrect
	VerdictIncorrect
)

// SubmitResult reports the outcome of one answer submission.
type SubmitResult struct {
	Verdict      Verdict
	XpGain       int // XP awarded for this answer, including risk bonus
	RiskBonus    int
	RiskPenalty  int
	State        State // StateCompleted when this answer finished the mission
	Unlocked     []Unlock
	LevelsGained int
}

// Submit scores a raw answer against the current question. Submissions
// outside Running (including after the timer already expired) are
// rejected without touching any state.
func (e *Engine) Submit(raw string) SubmitResult {
	if e.state != StateRunning || e.run == nil || e.run.CurrentQuestion == nil {
		return SubmitResult{Verdict: VerdictRejected, State: e.state}
	}

	r := e.run
	q := r.CurrentQuestion

	if r.SkipPending {
		// Skip consumes the question without affecting streak or accuracy.
		r.SkipPending = false
		e.nextQuestion()
		return SubmitResult{Verdict: VerdictSkipped, State: e.state}
	}

	correct := q.Check(raw)
	r.TotalAnswered++

	res := SubmitResult{State: e.state}
	if correct {
		res.Verdict = VerdictCorrect
		r.CorrectCount++
		r.Streak++
		r.Combo++
		if r.Streak > r.PeakStreak {
			r.PeakStreak = r.Streak
		}
		if r.Combo > r.PeakCombo {
			r.PeakCombo = r.Combo
		}
		r.RecentMistakes = 0
		e.countKind(q)

		gain := e.cfg.Scoring.BaseGain + r.Combo
		if r.DoubleXpPower || r.DoubleXpEvent {
			gain *= 2
		}
		r.XpGained += gain
		r.Score += gain
		res.XpGain = gain

		if r.RiskArmed {
			r.RiskWins++
			r.XpGained += e.cfg.Scoring.RiskBonus
			res.RiskBonus = e.cfg.Scoring.RiskBonus
			res.XpGain += e.cfg.Scoring.RiskBonus
			r.RiskArmed = false
		}
	} else {
		res.Verdict = VerdictIncorrect
		r.Streak = 0
		r.Combo = 0
		r.RecentMistakes++

		if r.RiskArmed {
			penalty := int(float64(r.XpGained) * e.cfg.Scoring.RiskPenaltyFrac)
			if penalty > r.XpGained {
				penalty = r.XpGained
			}
			r.XpGained -= penalty
			res.RiskPenalty = penalty
			r.RiskArmed = false
		}
	}

	if r.CorrectCount >= r.Mission.TargetCorrect {
		res.Unlocked = e.finishMission(true)
		res.State = e.state
		res.LevelsGained = e.lastSummary.LevelsGained
		return res
	}

	res.Unlocked = evaluateAchievements(r, e.profile)
	if len(res.Unlocked) > 0 {
		e.saveProfile()
	}
	e.nextQuestion()
	return res
}

// ArmRisk arms risk mode: the next answer wins a bonus or loses a slice
// of the run's XP. Returns false outside a run.
func (e *Engine) ArmRisk() bool {
	if e.state != StateRunning || e.run == nil {
		return false
	}
	e.run.RiskArmed = true
	return true
}

// Abandon ends the current run with zero reward. All pending timers are
// cancelled; achievements already unlocked mid-run stay unlocked.
func (e *Engine) Abandon() {
	if e.run == nil {
		e.state = StateIdle
		return
	}
	e.teardown()
	e.saveProfile()
	e.state = StateIdle
}

// Reset returns the engine to Idle after a Completed/Failed run, keeping
// the last summary available.
func (e *Engine) Reset() {
	e.teardown()
	e.state = StateIdle
}

// ClaimDaily applies the daily reward for the given calendar date string.
// Idempotent per day. Returns false when already claimed.
func (e *Engine) ClaimDaily(today string) (bool, []Unlock) {
	ok, _ := e.profile.ClaimDaily(today, e.cfg.Daily, e.cfg.Levels, e.catalogue.Len())
	if !ok {
		return false, nil
	}
	unlocked := evaluateAchievements(nil, e.profile)
	e.saveProfile()
	return true, unlocked
}

// --- internals ---

// nextQuestion generates the next question from the live difficulty.
func (e *Engine) nextQuestion() {
	r := e.run
	d := question.Scale(e.profile.Level, r.CorrectCount, r.TotalAnswered, r.Combo)
	q := e.gen.Generate(r.Mission, d, r.Echoes, r.GlitchBoost)
	r.CurrentQuestion = &q
}

// countKind feeds the per-kind achievement counters. Glitched questions
// count as logic repairs regardless of their underlying kind.
func (e *Engine) countKind(q *question.Question) {
	r := e.run
	if q.Glitched {
		r.LogicCorrect++
		return
	}
	switch q.Kind {
	case question.KindMemory:
		r.MemoryCorrect++
	case question.KindPattern:
		r.PatternCorrect++
	case question.KindLogic:
		r.LogicCorrect++
	}
}

// finishMission ends the run: commits XP to the profile per the success
// or failure policy, advances the watermark, runs the level-up loop and
// a final achievement evaluation, persists, and cancels all timers.
func (e *Engine) finishMission(success bool) []Unlock {
	r := e.run
	r.Finished = true
	r.Success = success
	r.CurrentQuestion = nil

	commit := 0
	if success {
		r.CompletedMission = r.Mission.ID
		r.BossComplete = r.Mission.IsBoss
		if r.BossComplete {
			e.profile.BossWins++
		}
		r.XpGained += r.Mission.BaseXpReward
		commit = r.XpGained
	} else {
		switch e.cfg.Scoring.FailXp {
		case config.FailXpHalf:
			commit = r.XpGained / 2
		default:
			commit = 0
		}
	}

	levels := e.profile.GrantXp(commit, e.cfg.Levels)
	if success {
		if r.PeakStreak > e.profile.BestStreak {
			e.profile.BestStreak = r.PeakStreak
		}
		if r.Mission.ID == e.profile.UnlockedMissions {
			e.profile.UnlockNextMission(e.catalogue.Len())
		}
	}

	unlocked := evaluateAchievements(r, e.profile)
	e.saveProfile()

	e.lastSummary = &Summary{
		Mission:      r.Mission,
		Success:      success,
		Score:        r.Score,
		XpGained:     r.XpGained,
		XpCommitted:  commit,
		Accuracy:     r.Accuracy(),
		PeakStreak:   r.PeakStreak,
		PeakCombo:    r.PeakCombo,
		TimeLeft:     r.TimeLeft,
		LevelsGained: levels,
		Unlocked:     unlocked,
	}

	// Cancel every pending delayed effect and revert the active event so
	// nothing leaks into the next run.
	e.deactivateEvent()
	e.sched.cancelAll()

	if success {
		e.state = StateCompleted
	} else {
		e.state = StateFailed
	}
	return unlocked
}

// teardown discards the run and every timer it owns.
func (e *Engine) teardown() {
	e.deactivateEvent()
	e.sched.cancelAll()
	e.run = nil
}

// saveProfile persists best-effort through the configured saver.
func (e *Engine) saveProfile() {
	if e.saver != nil {
		//nolint:errcheck // Best-effort save, gameplay continues regardless
		e.saver.SaveProfile(e.profile)
	}
}

// secondsToTicks converts a duration in seconds to run-clock ticks.
func (e *Engine) secondsToTicks(seconds float64) uint64 {
	t := uint64(seconds * float64(e.tps))
	if t < 1 {
		t = 1
	}
	return t
}

// nowMs is the run clock in milliseconds.
func (e *Engine) nowMs() int64 {
	if e.run == nil {
		return 0
	}
	return int64(e.run.Tick) * 1000 / int64(e.tps)
}
