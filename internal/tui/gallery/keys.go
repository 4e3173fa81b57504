package gallery

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevKind  key.Binding
	NextKind  key.Binding
	PrevState key.Binding
	NextState key.Binding
	Check     key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevKind: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous widget"),
		),
		NextKind: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next widget"),
		),
		PrevState: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous state"),
		),
		NextState: key.NewBinding(
			key.WithKeys("right", "l", " "),
			key.WithHelp("→/space", "next state"),
		),
		Check: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle checked"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextKind, k.NextState, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevKind, k.NextKind},
		{k.PrevState, k.NextState},
		{k.Check, k.Theme},
		{k.Help, k.Quit},
	}
}
