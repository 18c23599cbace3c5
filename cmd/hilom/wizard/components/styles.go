package components

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("63")).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		MarginBottom(1)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	LabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Bold(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	KeysStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
)
