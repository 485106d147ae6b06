package engine

import "github.com/neonrift/neonrift/internal/profile"

// Unlock describes one newly unlocked achievement.
type Unlock struct {
	ID   string
	Name string
	Desc string
}

type achievementRule struct {
	id    string
	name  string
	desc  string
	check func(r *Run, p *profile.Profile) bool
}

// achievementRules is the static rule table, evaluated in order after
// every answer, at mission end, and after a daily claim (with a nil run).
var achievementRules = []achievementRule{
	{"first_blood", "First Blood", "Answer 1 question",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.TotalAnswered >= 1 }},
	{"streak_5", "Streak 5", "Reach streak 5",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.PeakStreak >= 5 }},
	{"streak_10", "Streak 10", "Reach streak 10",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.PeakStreak >= 10 }},
	{"combo_5", "Combo 5", "Reach combo 5",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.PeakCombo >= 5 }},
	{"combo_10", "Combo 10", "Reach combo 10",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.PeakCombo >= 10 }},
	{"accuracy_90", "Precision 90", "Achieve 90% accuracy",
		func(r *Run, _ *profile.Profile) bool {
			return r != nil && r.TotalAnswered >= 10 && r.Accuracy() >= 0.9
		}},
	{"accuracy_100", "Perfect Run", "Achieve 100% accuracy",
		func(r *Run, _ *profile.Profile) bool {
			return r != nil && r.TotalAnswered >= 10 && r.CorrectCount == r.TotalAnswered
		}},
	{"xp_500", "XP 500", "Earn 500 XP total",
		func(_ *Run, p *profile.Profile) bool { return p.TotalXp >= 500 }},
	{"xp_2000", "XP 2000", "Earn 2000 XP total",
		func(_ *Run, p *profile.Profile) bool { return p.TotalXp >= 2000 }},
	{"mission_1", "Mission 1", "Complete mission 1",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.CompletedMission == 1 }},
	{"mission_10", "Mission 10", "Complete mission 10",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.CompletedMission >= 10 }},
	{"mission_20", "Mission 20", "Complete mission 20",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.CompletedMission >= 20 }},
	{"boss_1", "First Boss", "Defeat a boss mission",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.BossComplete }},
	{"boss_3", "Boss Hunter", "Defeat 3 bosses",
		func(_ *Run, p *profile.Profile) bool { return p.BossWins >= 3 }},
	{"memory_3", "Memory Echo", "Answer 3 memory questions",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.MemoryCorrect >= 3 }},
	{"pattern_3", "Pattern Seeker", "Answer 3 pattern questions",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.PatternCorrect >= 3 }},
	{"logic_3", "Logic Repair", "Repair 3 logic breaches",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.LogicCorrect >= 3 }},
	{"risk_1", "Risk Taker", "Win a risk mode challenge",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.RiskWins >= 1 }},
	{"risk_5", "High Roller", "Win 5 risk mode challenges",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.RiskWins >= 5 }},
	{"power_5", "Power Operator", "Use 5 power-ups",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.PowerUses >= 5 }},
	{"event_3", "Event Rider", "Survive 3 rift events",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.EventsTriggered >= 3 }},
	{"speed_25", "Speed Core", "Answer 25 questions",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.TotalAnswered >= 25 }},
	{"level_3", "Level 3", "Reach level 3",
		func(_ *Run, p *profile.Profile) bool { return p.Level >= 3 }},
	{"level_5", "Level 5", "Reach level 5",
		func(_ *Run, p *profile.Profile) bool { return p.Level >= 5 }},
	{"level_8", "Level 8", "Reach level 8",
		func(_ *Run, p *profile.Profile) bool { return p.Level >= 8 }},
	{"daily_1", "Daily Claim", "Claim a daily reward",
		func(_ *Run, p *profile.Profile) bool { return p.DailyClaim != "" }},
	{"time_master", "Time Master", "Finish a mission with 10s left",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.Success && r.TimeLeft >= 10 }},
	{"steady", "Steady Hand", "No wrong answers in the last 10",
		func(r *Run, _ *profile.Profile) bool {
			return r != nil && r.TotalAnswered >= 10 && r.RecentMistakes == 0
		}},
	{"echo_master", "Echo Master", "Answer 8 memory echoes",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.MemoryCorrect >= 8 }},
	{"pattern_master", "Pattern Master", "Answer 8 patterns",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.PatternCorrect >= 8 }},
	{"logic_master", "Logic Master", "Repair 8 breaches",
		func(r *Run, _ *profile.Profile) bool { return r != nil && r.LogicCorrect >= 8 }},
}

// evaluateAchievements unlocks every rule whose predicate holds and whose
// id is not already on the profile. Idempotent: a second call with the
// same state unlocks nothing.
func evaluateAchievements(r *Run, p *profile.Profile) []Unlock {
	var unlocked []Unlock
	for _, rule := range achievementRules {
		if p.HasAchievement(rule.id) {
			continue
		}
		if rule.check(r, p) {
			p.Unlock(rule.id)
			unlocked = append(unlocked, Unlock{ID: rule.id, Name: rule.name, Desc: rule.desc})
		}
	}
	return unlocked
}

// AchievementCount returns the size of the rule table, for display.
func AchievementCount() int {
	return len(achievementRules)
}
