package engine

import (
	"testing"

	"github.com/neonrift/neonrift/internal/config"
	"github.com/neonrift/neonrift/internal/mission"
	"github.com/neonrift/neonrift/internal/profile"
)

// testConfig returns the default rules with events disabled and a tiny
// mission catalogue so runs can be completed in a few answers.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Events.ActivationChance = 0
	cfg.Missions = config.MissionConfig{
		Count:      3,
		BossEvery:  0,
		TargetBase: 4, // mission 1 needs 5 correct
		TimeBase:   30,
		BaseXp:     100,
	}
	return cfg
}

func newTestEngine(t *testing.T, cfg config.Config, seed int64) *Engine {
	t.Helper()
	cat := mission.Build(cfg.Missions)
	prof := profile.New(cfg.PowerUps)
	return New(cfg, cat, prof, Options{Seed: seed, TicksPerSecond: 10})
}

// answerCorrectly submits the current question's own answer.
func answerCorrectly(t *testing.T, e *Engine) SubmitResult {
	t.Helper()
	q := e.Run().CurrentQuestion
	if q == nil {
		t.Fatal("no current question")
	}
	return e.Submit(q.Answer)
}

func TestStartMissionInitializesRun(t *testing.T) {
	e := newTestEngine(t, testConfig(), 1)
	if err := e.StartMission(1); err != nil {
		t.Fatalf("StartMission: %v", err)
	}

	r := e.Run()
	if e.State() != StateRunning {
		t.Fatalf("state %v, want running", e.State())
	}
	if r.TimeLeft != float64(r.Mission.TimeLimitSeconds) {
		t.Errorf("timeLeft %v, want %d", r.TimeLeft, r.Mission.TimeLimitSeconds)
	}
	if r.Combo != 0 || r.Streak != 0 {
		t.Errorf("fresh run has combo=%d streak=%d", r.Combo, r.Streak)
	}
	if r.CurrentQuestion == nil {
		t.Error("no first question generated")
	}
}

func TestStartMissionLocked(t *testing.T) {
	e := newTestEngine(t, testConfig(), 1)

	if err := e.StartMission(2); err != ErrMissionLocked {
		t.Errorf("expected ErrMissionLocked, got %v", err)
	}
	if err := e.StartMission(99); err != ErrUnknownMission {
		t.Errorf("expected ErrUnknownMission, got %v", err)
	}
	if e.State() != StateIdle {
		t.Errorf("rejected start mutated state to %v", e.State())
	}
}

func TestCompleteMissionCommitsXp(t *testing.T) {
	e := newTestEngine(t, testConfig(), 42)
	if err := e.StartMission(1); err != nil {
		t.Fatal(err)
	}

	var last SubmitResult
	for i := 0; i < 5; i++ {
		last = answerCorrectly(t, e)
		if last.Verdict != VerdictCorrect {
			t.Fatalf("answer %d: verdict %v", i, last.Verdict)
		}
	}

	if e.State() != StateCompleted {
		t.Fatalf("state %v after target met", e.State())
	}
	sum := e.LastSummary()
	if sum == nil || !sum.Success {
		t.Fatal("missing success summary")
	}
	if e.Run().CorrectCount != 5 {
		t.Errorf("correctCount %d, want 5", e.Run().CorrectCount)
	}
	if sum.Score <= 0 {
		t.Errorf("score %d, want > 0", sum.Score)
	}

	// Per-answer gains are 12+combo with no multipliers: 13+14+15+16+17,
	// plus the mission reward of 100.
	wantXp := 13 + 14 + 15 + 16 + 17 + 100
	if sum.XpGained != wantXp {
		t.Errorf("xpGained %d, want %d", sum.XpGained, wantXp)
	}
	if e.Profile().TotalXp != sum.XpGained {
		t.Errorf("profile TotalXp %d, want committed %d", e.Profile().TotalXp, sum.XpGained)
	}
	if e.Profile().UnlockedMissions != 2 {
		t.Errorf("watermark %d, want 2", e.Profile().UnlockedMissions)
	}
	if e.Profile().BestStreak != 5 {
		t.Errorf("bestStreak %d, want 5", e.Profile().BestStreak)
	}
}

func TestReplayDoesNotAdvanceWatermark(t *testing.T) {
	e := newTestEngine(t, testConfig(), 42)

	// Complete mission 1 twice; watermark moves only when the completed
	// mission sits at the watermark.
	for attempt := 0; attempt < 2; attempt++ {
		if err := e.StartMission(1); err != nil {
			t.Fatal(err)
		}
		for e.State() == StateRunning {
			answerCorrectly(t, e)
		}
	}
	if e.Profile().UnlockedMissions != 2 {
		t.Errorf("watermark %d after replay, want 2", e.Profile().UnlockedMissions)
	}
}

func TestTimeoutFailsRun(t *testing.T) {
	e := newTestEngine(t, testConfig(), 7)
	if err := e.StartMission(1); err != nil {
		t.Fatal(err)
	}

	limit := e.Run().Mission.TimeLimitSeconds // 30s -> ~300 ticks at 10/s
	var failedAt int
	for i := 1; i <= limit*10+20; i++ {
		res := e.Tick()
		if res.Failed {
			failedAt = i
			break
		}
	}
	if failedAt == 0 {
		t.Fatal("run never failed")
	}
	if failedAt < limit*10-2 || failedAt > limit*10+2 {
		t.Errorf("failed at tick %d, want about %d", failedAt, limit*10)
	}
	if e.State() != StateFailed {
		t.Fatalf("state %v", e.State())
	}
	if e.Run().TimeLeft != 0 {
		t.Errorf("timeLeft %v at failure", e.Run().TimeLeft)
	}
	if e.Profile().TotalXp != 0 {
		t.Errorf("failed run committed %d XP under the none policy", e.Profile().TotalXp)
	}
}

func TestFailHalfPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.Scoring.FailXp = config.FailXpHalf
	e := newTestEngine(t, cfg, 7)
	if err := e.StartMission(1); err != nil {
		t.Fatal(err)
	}

	// Earn some XP first: 13 + 14.
	answerCorrectly(t, e)
	answerCorrectly(t, e)

	for i := 0; i < 400 && e.State() == StateRunning; i++ {
		e.Tick()
	}
	if e.State() != StateFailed {
		t.Fatal("run did not fail")
	}
	if e.Profile().TotalXp != 27/2 {
		t.Errorf("half policy committed %d, want %d", e.Profile().TotalXp, 27/2)
	}
}

func TestSubmitAfterFailureRejected(t *testing.T) {
	e := newTestEngine(t, testConfig(), 7)
	if err := e.StartMission(1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 400 && e.State() == StateRunning; i++ {
		e.Tick()
	}
	if e.State() != StateFailed {
		t.Fatal("run did not fail")
	}

	res := e.Submit("42")
	if res.Verdict != VerdictRejected {
		t.Errorf("submission after failure: verdict %v", res.Verdict)
	}
}

func TestIncorrectResetsStreakAndCombo(t *testing.T) {
	e := newTestEngine(t, testConfig(), 9)
	if err := e.StartMission(1); err != nil {
		t.Fatal(err)
	}

	answerCorrectly(t, e)
	answerCorrectly(t, e)
	answerCorrectly(t, e)
	r := e.Run()
	if r.Streak != 3 || r.Combo != 3 {
		t.Fatalf("streak=%d combo=%d before miss", r.Streak, r.Combo)
	}

	res := e.Submit("definitely wrong")
	if res.Verdict != VerdictIncorrect {
		t.Fatalf("verdict %v", res.Verdict)
	}
	if r.Streak != 0 || r.Combo != 0 {
		t.Errorf("streak=%d combo=%d after miss, want 0,0", r.Streak, r.Combo)
	}
	if r.PeakStreak != 3 || r.PeakCombo != 3 {
		t.Errorf("peaks %d/%d, want 3/3", r.PeakStreak, r.PeakCombo)
	}
	if r.CorrectCount != 3 || r.TotalAnswered != 4 {
		t.Errorf("correct=%d total=%d", r.CorrectCount, r.TotalAnswered)
	}
}

func TestRiskModeWinAndLoss(t *testing.T) {
	e := newTestEngine(t, testConfig(), 13)
	if err := e.StartMission(1); err != nil {
		t.Fatal(err)
	}

	if !e.ArmRisk() {
		t.Fatal("ArmRisk failed during a run")
	}
	res := answerCorrectly(t, e)
	if res.RiskBonus != 40 {
		t.Errorf("risk bonus %d, want 40", res.RiskBonus)
	}
	r := e.Run()
	if r.RiskArmed {
		t.Error("risk still armed after resolution")
	}
	if r.RiskWins != 1 {
		t.Errorf("riskWins %d, want 1", r.RiskWins)
	}

	xpBefore := r.XpGained
	e.ArmRisk()
	res = e.Submit("definitely wrong")
	if res.Verdict != VerdictIncorrect {
		t.Fatalf("verdict %v", res.Verdict)
	}
	wantPenalty := xpBefore / 4
	if res.RiskPenalty != wantPenalty {
		t.Errorf("penalty %d, want %d", res.RiskPenalty, wantPenalty)
	}
	if r.XpGained != xpBefore-wantPenalty {
		t.Errorf("xpGained %d, want %d", r.XpGained, xpBefore-wantPenalty)
	}
	if r.RiskArmed {
		t.Error("risk still armed after loss")
	}
}

func TestRiskPenaltyFloorsAtZero(t *testing.T) {
	e := newTestEngine(t, testConfig(), 13)
	if err := e.StartMission(1); err != nil {
		t.Fatal(err)
	}

	e.ArmRisk()
	e.Submit("definitely wrong") // No XP yet, penalty must be 0
	if e.Run().XpGained != 0 {
		t.Errorf("xpGained %d, want 0", e.Run().XpGained)
	}
}

func TestArmRiskRejectedWhenIdle(t *testing.T) {
	e := newTestEngine(t, testConfig(), 13)
	if e.ArmRisk() {
		t.Error("ArmRisk succeeded with no run")
	}
}

func TestAbandonCancelsEverything(t *testing.T) {
	e := newTestEngine(t, testConfig(), 17)
	if err := e.StartMission(1); err != nil {
		t.Fatal(err)
	}

	// Arm several delayed effects, then abandon before they expire.
	if res := e.ActivatePowerUp(profile.PowerFreeze); !res.Activated {
		t.Fatalf("freeze rejected: %s", res.Reason)
	}
	if res := e.ActivatePowerUp(profile.PowerDoubleXp); !res.Activated {
		t.Fatalf("double xp rejected: %s", res.Reason)
	}
	if e.sched.pending() == 0 {
		t.Fatal("expected pending scheduled effects")
	}

	e.Abandon()
	if e.State() != StateIdle {
		t.Fatalf("state %v after abandon", e.State())
	}
	if e.Run() != nil {
		t.Fatal("run survived abandon")
	}
	if e.sched.pending() != 0 {
		t.Errorf("%d timers survived abandon", e.sched.pending())
	}
	if e.Profile().TotalXp != 0 {
		t.Error("abandon committed XP")
	}

	// A new run must start clean even though the old effects never expired.
	if err := e.StartMission(1); err != nil {
		t.Fatal(err)
	}
	r := e.Run()
	if r.FreezeActive || r.DoubleXpPower {
		t.Error("effects leaked into the new run")
	}
	if r.TimeLeft != float64(r.Mission.TimeLimitSeconds) {
		t.Errorf("new run timeLeft %v", r.TimeLeft)
	}
	for i := 0; i < 200; i++ {
		e.Tick()
	}
	if r.FreezeActive || r.DoubleXpPower {
		t.Error("stale callbacks fired into the new run")
	}
}

func TestDailyClaimThroughEngine(t *testing.T) {
	e := newTestEngine(t, testConfig(), 19)

	ok, unlocked := e.ClaimDaily("2026-08-30")
	if !ok {
		t.Fatal("first claim rejected")
	}
	found := false
	for _, u := range unlocked {
		if u.ID == "daily_1" {
			found = true
		}
	}
	if !found {
		t.Error("daily_1 achievement not unlocked on claim")
	}

	ok, _ = e.ClaimDaily("2026-08-30")
	if ok {
		t.Error("second claim on the same day accepted")
	}
}
