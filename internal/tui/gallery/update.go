package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-listWidth-4, minSwatchWidth)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevKind):
		m.kindIdx = (m.kindIdx + len(m.kinds) - 1) % len(m.kinds)
		m.stateIdx = 0
	case key.Matches(msg, m.keys.NextKind):
		m.kindIdx = (m.kindIdx + 1) % len(m.kinds)
		m.stateIdx = 0
	case key.Matches(msg, m.keys.PrevState):
		if n := len(m.Kind().States()); n > 0 {
			m.stateIdx = (m.stateIdx + n - 1) % n
		}
	case key.Matches(msg, m.keys.NextState):
		if n := len(m.Kind().States()); n > 0 {
			m.stateIdx = (m.stateIdx + 1) % n
		}
	case key.Matches(msg, m.keys.Check):
		m.checked = !m.checked
	case key.Matches(msg, m.keys.Theme):
		m.nextTheme()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) nextTheme() {
	names := m.manager.Registry().Names()
	if len(names) == 0 {
		return
	}
	current := m.Theme()
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}

	if err := m.manager.Select(next); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.log.WithFields(map[string]any{"theme": next}).Debug("gallery theme changed")
}
