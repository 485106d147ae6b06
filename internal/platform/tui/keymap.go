package tui

import "github.com/charmbracelet/bubbles/key"

// GameKeyMap defines the key bindings active during a run.
type GameKeyMap struct {
	Choice1   key.Binding
	Choice2   key.Binding
	Choice3   key.Binding
	Choice4   key.Binding
	Submit    key.Binding
	TimeBoost key.Binding
	DoubleXp  key.Binding
	Skip      key.Binding
	Freeze    key.Binding
	Risk      key.Binding
	Abandon   key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the in-run help line.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Risk, k.Skip, k.Abandon}
}

// FullHelp returns key bindings for the expanded help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Choice1, k.Choice2, k.Choice3, k.Choice4, k.Submit},
		{k.TimeBoost, k.DoubleXp, k.Skip, k.Freeze, k.Risk},
		{k.Abandon, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-run bindings. Power-up keys
// use function keys so digits stay free for choice answers and the text
// input.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Choice1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "choice 1"),
		),
		Choice2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "choice 2"),
		),
		Choice3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "choice 3"),
		),
		Choice4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "choice 4"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "answer"),
		),
		TimeBoost: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "time boost"),
		),
		DoubleXp: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "double xp"),
		),
		Skip: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "skip"),
		),
		Freeze: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("F4", "freeze"),
		),
		Risk: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("F5", "risk mode"),
		),
		Abandon: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "abandon"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// MenuKeyMap defines the key bindings for the home and mission screens.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Daily  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the menu help line.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Daily, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Daily, k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Daily: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "daily reward"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
