package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("12")
	colorSuccess = lipgloss.Color("10")
	colorWarning = lipgloss.Color("11")
	colorDanger  = lipgloss.Color("9")
	colorMuted   = lipgloss.Color("8")

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorMuted)

	activeTabStyle = tabStyle.
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)

	labelStyle = lipgloss.NewStyle().
			Width(26).
			Foreground(colorMuted)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	positiveStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	negativeStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// statusStyle picks the goal status color.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "on_track":
		return positiveStyle
	case "attention":
		return warningStyle
	case "at_risk":
		return negativeStyle
	}
	return valueStyle
}
