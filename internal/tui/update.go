package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/internal/portfolio"
)

type resultMsg struct {
	household domain.Household
	result    domain.ProjectionResult
	analysis  portfolio.Analysis
}

type errMsg struct {
	err error
}

// Update handles navigation and calculation results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.readiness.Width = min(msg.Width-10, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
			return m, nil
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tabCount - 1) % tabCount
			return m, nil
		case "r":
			m.loaded = false
			m.err = nil
			return m, calculateCmd(m.inputPath)
		}
		return m, nil

	case resultMsg:
		m.household = msg.household
		m.result = msg.result
		m.analysis = msg.analysis
		m.loaded = true
		m.err = nil
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
