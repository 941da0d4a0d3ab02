package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/retplan/retplan/internal/output"
)

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Retirement Plan Dashboard"))
	b.WriteString("  ")
	b.WriteString(statusBarStyle.Render(m.inputPath))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(statusBarStyle.Render("r retry · q quit"))
		return appStyle.Render(b.String())
	}
	if !m.loaded {
		b.WriteString("Calculating projection...")
		return appStyle.Render(b.String())
	}

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case TabIncome:
		b.WriteString(m.renderIncome())
	case TabPortfolio:
		b.WriteString(m.renderPortfolio())
	default:
		b.WriteString(m.renderOverview())
	}

	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render("tab/←/→ switch view · r recalculate · q quit"))
	return appStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, int(tabCount))
	for t := TabOverview; t < tabCount; t++ {
		style := tabStyle
		if t == m.tab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderOverview() string {
	r := m.result.Result
	var b strings.Builder

	b.WriteString(metricLine("Total Savings", output.FormatCurrency(m.result.TotalSavings)))
	b.WriteString(metricLine("Monthly Income (net)", output.FormatCurrency(m.result.MonthlyIncome)))
	b.WriteString(metricLine("Target Monthly Income", output.FormatCurrency(r.GoalsAnalysis.TargetMonthlyIncome)))

	gap := r.GoalsAnalysis.Gap
	gapStyle := positiveStyle
	if gap.IsPositive() {
		gapStyle = negativeStyle
	}
	b.WriteString(labelStyle.Render("Gap:"))
	b.WriteString(gapStyle.Render(output.FormatCurrency(gap)))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Status:"))
	b.WriteString(statusStyle(r.GoalsAnalysis.Status).Render(r.GoalsAnalysis.Status))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Readiness Score:"))
	b.WriteString(fmt.Sprintf("%d / 100\n", r.ReadinessScore))
	b.WriteString(m.readiness.ViewAs(float64(r.ReadinessScore) / 100))
	b.WriteString("\n")

	return boxStyle.Render(b.String())
}

func (m Model) renderIncome() string {
	r := m.result.Result
	src := r.RetirementIncome.BySource
	var b strings.Builder

	b.WriteString(metricLine("Pension", output.FormatCurrency(src.Pension)))
	b.WriteString(metricLine("Training Fund", output.FormatCurrency(src.TrainingFund)))
	b.WriteString(metricLine("Personal Portfolio", output.FormatCurrency(src.PersonalPortfolio)))
	b.WriteString(metricLine("Crypto", output.FormatCurrency(src.Crypto)))
	b.WriteString(metricLine("Real Estate", output.FormatCurrency(src.RealEstate)))
	b.WriteString(metricLine("Social Security", output.FormatCurrency(src.SocialSecurity)))
	b.WriteString(metricLine("Additional Income", output.FormatCurrency(src.AdditionalIncome)))
	if !src.Partner.IsZero() {
		b.WriteString(metricLine("Partner", output.FormatCurrency(src.Partner)))
	}
	b.WriteString("\n")
	b.WriteString(metricLine("Total Monthly", output.FormatCurrency(r.RetirementIncome.Total.Monthly)))
	b.WriteString(metricLine("Total Annual", output.FormatCurrency(r.RetirementIncome.Total.Annual)))
	b.WriteString(metricLine("Future Expenses", output.FormatCurrency(r.Expenses.FutureMonthly)))
	b.WriteString(metricLine("Weighted Tax Rate", r.WeightedTaxRate.StringFixed(1)+"%"))

	return boxStyle.Render(b.String())
}

func (m Model) renderPortfolio() string {
	a := m.analysis
	var b strings.Builder

	b.WriteString(metricLine("Expected Return", a.Metrics.ExpectedReturn.StringFixed(2)+"%"))
	b.WriteString(metricLine("Volatility", a.Metrics.Volatility.StringFixed(2)+"%"))
	b.WriteString(metricLine("Sharpe Ratio", a.Metrics.SharpeRatio.StringFixed(2)))
	b.WriteString(metricLine("Diversification", a.Metrics.DiversificationScore.StringFixed(0)+" / 100"))
	b.WriteString(metricLine("Risk Score", a.Metrics.RiskScore.StringFixed(0)+" / 100"))

	if len(a.Rebalancing) > 0 {
		b.WriteString("\nRebalancing:\n")
		for _, act := range a.Rebalancing {
			style := valueStyle
			if act.Priority == "high" {
				style = negativeStyle
			}
			b.WriteString(fmt.Sprintf("  %s %s.%s %s%% -> %s%%\n",
				style.Render(strings.ToUpper(act.Action)),
				act.Category, act.Asset,
				act.CurrentPercentage.StringFixed(1),
				act.TargetPercentage.StringFixed(1)))
		}
	}

	if len(a.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range a.Recommendations {
			b.WriteString("  • " + rec.Title + "\n")
		}
	}

	return boxStyle.Render(b.String())
}

func metricLine(label, value string) string {
	return labelStyle.Render(label+":") + valueStyle.Render(value) + "\n"
}
