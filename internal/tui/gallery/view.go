package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/render"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sheet := m.manager.Active()
	swatches := render.New(sheet, render.Options{Width: m.width, Output: m.output})

	var b strings.Builder
	b.WriteString(titleStyle.Render("themekit gallery · " + sheet.Name()))
	b.WriteString("\n")

	list := make([]string, 0, len(m.kinds))
	for i, kind := range m.kinds {
		if i == m.kindIdx {
			list = append(list, selectedItemStyle.Render(kind.String()))
			continue
		}
		list = append(list, itemStyle.Render(kind.String()))
	}
	left := lipgloss.NewStyle().Width(listWidth).Render(lipgloss.JoinVertical(lipgloss.Left, list...))

	swatch, err := swatches.Kind(m.Kind(), m.State(), m.checked)
	if err != nil {
		swatch = errorStyle.Render(err.Error())
	}
	right := lipgloss.JoinVertical(lipgloss.Left, swatch, "", captionStyle.Render(m.caption()))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) caption() string {
	state := m.State()
	if state == "" {
		state = "single style"
	}
	if m.Kind().Checkable() {
		return fmt.Sprintf("state: %s  checked: %t", state, m.checked)
	}
	return "state: " + state
}
