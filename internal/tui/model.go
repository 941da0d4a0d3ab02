// Package tui is the interactive planner dashboard: load a planner
// document, run the projection and browse the result by tab.
package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/retplan/retplan/internal/calculation"
	"github.com/retplan/retplan/internal/config"
	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/internal/portfolio"
)

// Tab identifies one dashboard view.
type Tab int

const (
	TabOverview Tab = iota
	TabIncome
	TabPortfolio
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabIncome:
		return "Income"
	case TabPortfolio:
		return "Portfolio"
	}
	return "?"
}

// Model is the dashboard state.
type Model struct {
	inputPath string

	tab    Tab
	width  int
	height int

	household domain.Household
	result    domain.ProjectionResult
	analysis  portfolio.Analysis
	loaded    bool
	err       error

	readiness progress.Model
}

// NewModel creates the dashboard for one planner document.
func NewModel(inputPath string) Model {
	return Model{
		inputPath: inputPath,
		readiness: progress.New(progress.WithDefaultGradient()),
		width:     80,
		height:    24,
	}
}

// Init kicks off the calculation.
func (m Model) Init() tea.Cmd {
	return calculateCmd(m.inputPath)
}

// calculateCmd loads the document and runs the projection off the UI loop.
func calculateCmd(path string) tea.Cmd {
	return func() tea.Msg {
		household, err := config.NewInputParser().LoadHousehold(path)
		if err != nil {
			return errMsg{err}
		}

		engine := calculation.NewCalculationEngine()
		result := engine.CalculateRetirement(household)
		analysis := portfolio.NewOptimizer().Analyze(household)

		return resultMsg{
			household: household,
			result:    result,
			analysis:  analysis,
		}
	}
}
