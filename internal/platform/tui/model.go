package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neonrift/neonrift/internal/engine"
	"github.com/neonrift/neonrift/internal/profile"
	"github.com/neonrift/neonrift/internal/storage"
)

// screen identifies which view the session is showing.
type screen int

const (
	screenHome screen = iota
	screenMissions
	screenGame
	screenResult
)

// SessionModel is the top-level Bubble Tea model: home -> mission select
// -> run -> result, in a loop.
type SessionModel struct {
	eng      *engine.Engine
	store    *storage.Store
	tickRate int

	screen   screen
	cursor   int
	input    textinput.Model
	gameKeys GameKeyMap
	menuKeys MenuKeyMap
	help     help.Model

	width  int
	height int

	notice   string // Transient banner: events, power-ups, daily reward
	runSaved bool
	quitting bool
}

// NewSessionModel creates the session model around a ready engine. The
// store may be nil, which disables run history.
func NewSessionModel(eng *engine.Engine, store *storage.Store, tickRate int) SessionModel {
	if tickRate <= 0 {
		tickRate = 10
	}

	input := textinput.New()
	input.Placeholder = "answer"
	input.CharLimit = 16
	input.Width = 18

	return SessionModel{
		eng:      eng,
		store:    store,
		tickRate: tickRate,
		input:    input,
		gameKeys: DefaultGameKeyMap(),
		menuKeys: DefaultMenuKeyMap(),
		help:     help.New(),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and drives the screen flow.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey dispatches input to the active screen.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.gameKeys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenHome:
		return m.handleHomeKey(msg)
	case screenMissions:
		return m.handleMissionKey(msg)
	case screenGame:
		return m.handleGameKey(msg)
	case screenResult:
		return m.handleResultKey(msg)
	}
	return m, nil
}

func (m SessionModel) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.menuKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.menuKeys.Select):
		m.screen = screenMissions
		m.cursor = m.eng.Profile().UnlockedMissions - 1
		m.notice = ""
	case key.Matches(msg, m.menuKeys.Daily):
		today := time.Now().Format("2006-01-02")
		if ok, unlocked := m.eng.ClaimDaily(today); ok {
			m.notice = "Daily reward claimed"
			if len(unlocked) > 0 {
				m.notice += ": " + unlocked[0].Name
			}
		} else {
			m.notice = "Daily reward already claimed"
		}
	}
	return m, nil
}

func (m SessionModel) handleMissionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.menuKeys.Back):
		m.screen = screenHome
	case key.Matches(msg, m.menuKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.menuKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.menuKeys.Down):
		if m.cursor < m.eng.Catalogue().Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.menuKeys.Select):
		if err := m.eng.StartMission(m.cursor + 1); err != nil {
			m.notice = "Mission locked"
			return m, nil
		}
		m.screen = screenGame
		m.notice = ""
		m.runSaved = false
		m.input.Reset()
		m.input.Focus()
		return m, tickCmd(m.tickRate)
	}
	return m, nil
}

func (m SessionModel) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.eng.Snapshot()

	switch {
	case key.Matches(msg, m.gameKeys.Abandon):
		m.eng.Abandon()
		m.screen = screenMissions
		return m, nil
	case key.Matches(msg, m.gameKeys.TimeBoost):
		m.applyPowerUp(profile.PowerTimeBoost)
		return m, nil
	case key.Matches(msg, m.gameKeys.DoubleXp):
		m.applyPowerUp(profile.PowerDoubleXp)
		return m, nil
	case key.Matches(msg, m.gameKeys.Skip):
		if res := m.eng.ActivatePowerUp(profile.PowerSkip); res.Activated {
			// A pending skip consumes the question immediately.
			return m.submitAnswer("")
		} else {
			m.notice = res.Reason
		}
		return m, nil
	case key.Matches(msg, m.gameKeys.Freeze):
		m.applyPowerUp(profile.PowerFreeze)
		return m, nil
	case key.Matches(msg, m.gameKeys.Risk):
		if m.eng.ArmRisk() {
			m.notice = "Risk armed: next answer counts double or costs you"
		}
		return m, nil
	}

	if snap.Question != nil && len(snap.Question.Choices) > 0 {
		if idx, ok := choiceIndex(msg, m.gameKeys); ok {
			if idx < len(snap.Question.Choices) {
				return m.submitAnswer(snap.Question.Choices[idx])
			}
			return m, nil
		}
	}

	if key.Matches(msg, m.gameKeys.Submit) {
		raw := m.input.Value()
		if raw == "" {
			return m, nil
		}
		return m.submitAnswer(raw)
	}

	// Everything else feeds the free-text input.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SessionModel) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.menuKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.menuKeys.Select), key.Matches(msg, m.menuKeys.Back):
		m.eng.Reset()
		m.screen = screenMissions
		m.notice = ""
	}
	return m, nil
}

// handleTick advances the engine while a run is live.
func (m SessionModel) handleTick() (tea.Model, tea.Cmd) {
	if m.screen != screenGame {
		return m, nil
	}

	res := m.eng.Tick()
	if res.EventNotice != "" {
		m.notice = "Rift event: " + res.EventNotice
	}
	if res.Failed {
		m.finishRun()
		return m, nil
	}
	return m, tickCmd(m.tickRate)
}

// submitAnswer routes one answer through the engine and reacts to the
// outcome.
func (m SessionModel) submitAnswer(raw string) (tea.Model, tea.Cmd) {
	res := m.eng.Submit(raw)
	m.input.Reset()

	switch res.Verdict {
	case engine.VerdictCorrect:
		m.notice = ""
		if res.RiskBonus > 0 {
			m.notice = "Risk won"
		}
	case engine.VerdictIncorrect:
		m.notice = "Wrong"
		if res.RiskPenalty > 0 {
			m.notice = "Risk lost"
		}
	}
	if len(res.Unlocked) > 0 {
		m.notice = "Unlocked: " + res.Unlocked[0].Name
	}

	if res.State == engine.StateCompleted {
		m.finishRun()
		return m, nil
	}
	return m, nil
}

// applyPowerUp activates a power-up and surfaces the outcome as a notice.
func (m *SessionModel) applyPowerUp(kind profile.PowerUpKind) {
	res := m.eng.ActivatePowerUp(kind)
	if res.Activated {
		m.notice = res.Notice
	} else {
		m.notice = res.Reason
	}
}

// finishRun records the run and switches to the result screen.
func (m *SessionModel) finishRun() {
	m.screen = screenResult
	m.input.Blur()

	sum := m.eng.LastSummary()
	if sum == nil || m.store == nil || m.runSaved {
		return
	}
	//nolint:errcheck // Best-effort save, the result screen shows regardless
	m.store.SaveRun(storage.RunRecord{
		MissionID:   sum.Mission.ID,
		MissionName: sum.Mission.Name,
		Success:     sum.Success,
		Score:       sum.Score,
		XpGained:    sum.XpGained,
		Accuracy:    sum.Accuracy,
		PeakStreak:  sum.PeakStreak,
		TimeLeft:    sum.TimeLeft,
	})
	m.runSaved = true
}

// choiceIndex maps a digit key to a choice slot.
func choiceIndex(msg tea.KeyMsg, keys GameKeyMap) (int, bool) {
	switch {
	case key.Matches(msg, keys.Choice1):
		return 0, true
	case key.Matches(msg, keys.Choice2):
		return 1, true
	case key.Matches(msg, keys.Choice3):
		return 2, true
	case key.Matches(msg, keys.Choice4):
		return 3, true
	}
	return 0, false
}

// Run starts a local (non-SSH) Bubble Tea program for the session.
func Run(eng *engine.Engine, store *storage.Store, tickRate int) error {
	model := NewSessionModel(eng, store, tickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
