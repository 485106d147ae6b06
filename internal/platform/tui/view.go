package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/neonrift/neonrift/internal/engine"
)

// Styles for the neon look. Kept package-level so every screen shares
// the same palette.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213")).
			Bold(true)

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	bossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	glitchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("201")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("48")).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("51")).
			Padding(0, 2)
)

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenHome:
		return m.viewHome()
	case screenMissions:
		return m.viewMissions()
	case screenGame:
		return m.viewGame()
	case screenResult:
		return m.viewResult()
	}
	return ""
}

func (m SessionModel) viewHome() string {
	p := m.eng.Profile()

	var b strings.Builder
	b.WriteString(titleStyle.Render("N E O N   R I F T"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Arithmetic trivia from the grid"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Level %d   XP %d   Total XP %d\n", p.Level, p.Xp, p.TotalXp))
	b.WriteString(fmt.Sprintf("Missions unlocked: %d/%d   Best streak: %d   Boss wins: %d\n",
		p.UnlockedMissions, m.eng.Catalogue().Len(), p.BestStreak, p.BossWins))
	b.WriteString(fmt.Sprintf("Achievements: %d/%d\n", len(p.Achievements), engine.AchievementCount()))

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(eventStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("enter: missions   d: daily reward   q: quit"))
	b.WriteString("\n")

	return panelStyle.Render(b.String())
}

func (m SessionModel) viewMissions() string {
	p := m.eng.Profile()

	var b strings.Builder
	b.WriteString(titleStyle.Render("MISSIONS"))
	b.WriteString("\n\n")

	missions := m.eng.Catalogue().All()
	// Keep the cursor visible on small terminals by windowing the list.
	window := m.height - 10
	if window < 5 {
		window = 5
	}
	start := 0
	if m.cursor >= window {
		start = m.cursor - window + 1
	}
	end := start + window
	if end > len(missions) {
		end = len(missions)
	}

	for i := start; i < end; i++ {
		mi := missions[i]
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}

		line := fmt.Sprintf("%2d. %s [%s]", mi.ID, mi.Name, mi.Archetype)
		switch {
		case mi.ID > p.UnlockedMissions:
			line = lockedStyle.Render(line + "  (locked)")
		case mi.IsBoss:
			line = bossStyle.Render(line)
		}

		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")
	}

	sel := missions[m.cursor]
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("%s   %ds   %d XP",
		sel.Objective(), sel.TimeLimitSeconds, sel.BaseXpReward)))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(failStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.menuKeys))
	b.WriteString("\n")

	return panelStyle.Render(b.String())
}

func (m SessionModel) viewGame() string {
	snap := m.eng.Snapshot()

	var b strings.Builder
	header := fmt.Sprintf("%s   %s", snap.Mission.Name, snap.Mission.Objective())
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	timer := fmt.Sprintf("%5.1fs", snap.TimeLeft)
	if snap.FrozenTimer {
		timer += " [frozen]"
	}
	b.WriteString(fmt.Sprintf("Time %s   Score %d   Streak %d   Combo %d   %d/%d correct\n",
		timer, snap.Score, snap.Streak, snap.Combo, snap.CorrectCount, snap.Mission.TargetCorrect))

	if snap.EventLabel != "None" {
		b.WriteString(eventStyle.Render("RIFT EVENT: " + snap.EventLabel))
		b.WriteString("\n")
	}
	if snap.RiskArmed {
		b.WriteString(bossStyle.Render("RISK ARMED"))
		b.WriteString("\n")
	}
	if snap.DoubleXp {
		b.WriteString(successStyle.Render("DOUBLE XP"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if q := snap.Question; q != nil {
		label := q.Label
		if q.Glitched {
			label = glitchStyle.Render(label)
		} else {
			label = subtleStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(q.Prompt)
		b.WriteString("\n\n")

		if len(q.Choices) > 0 {
			for i, c := range q.Choices {
				b.WriteString(fmt.Sprintf("  %d) %s\n", i+1, c))
			}
		} else {
			b.WriteString(m.input.View())
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	for _, pu := range snap.PowerUps {
		state := successStyle
		if !pu.Ready {
			state = lockedStyle
		}
		b.WriteString(state.Render(fmt.Sprintf("[%s x%d] ", pu.Label, pu.Count)))
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(eventStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(subtleStyle.Render("F1-F4: power-ups   F5: risk   esc: abandon"))
	b.WriteString("\n")

	if snap.Inverted {
		return panelStyle.Reverse(true).Render(b.String())
	}
	return panelStyle.Render(b.String())
}

func (m SessionModel) viewResult() string {
	sum := m.eng.LastSummary()
	if sum == nil {
		return ""
	}

	var b strings.Builder
	if sum.Success {
		b.WriteString(successStyle.Render("MISSION COMPLETE"))
	} else {
		b.WriteString(failStyle.Render("MISSION FAILED"))
	}
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s\n", sum.Mission.Name))
	b.WriteString(fmt.Sprintf("Score %d   XP earned %d   XP banked %d\n",
		sum.Score, sum.XpGained, sum.XpCommitted))
	b.WriteString(fmt.Sprintf("Accuracy %.0f%%   Peak streak %d   Peak combo %d\n",
		sum.Accuracy*100, sum.PeakStreak, sum.PeakCombo))
	if sum.LevelsGained > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("LEVEL UP x%d", sum.LevelsGained)))
		b.WriteString("\n")
	}

	if len(sum.Unlocked) > 0 {
		b.WriteString("\nUnlocked:\n")
		for _, u := range sum.Unlocked {
			b.WriteString(fmt.Sprintf("  %s: %s\n", u.Name, u.Desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("enter: missions   q: quit"))
	b.WriteString("\n")

	return panelStyle.Render(b.String())
}
