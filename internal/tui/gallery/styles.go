package gallery

import "github.com/charmbracelet/lipgloss"

var (
	mutedColor = lipgloss.Color("245")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true)

	captionStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			MarginTop(1)
)
