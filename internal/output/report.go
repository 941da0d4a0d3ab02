// Package output renders calculation results as console text, JSON
// snapshots and CSV tables.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/internal/portfolio"
)

// ReportGenerator handles report generation in various formats.
type ReportGenerator struct {
	w io.Writer
}

// NewReportGenerator creates a report generator writing to w.
func NewReportGenerator(w io.Writer) *ReportGenerator {
	return &ReportGenerator{w: w}
}

// GenerateReport renders a projection in the requested format.
func (rg *ReportGenerator) GenerateReport(result domain.ProjectionResult, analysis *portfolio.Analysis, format string) error {
	switch format {
	case "console":
		return rg.GenerateConsoleReport(result, analysis)
	case "json":
		return rg.GenerateJSONReport(result, analysis)
	case "csv":
		return rg.GenerateCSVReport(result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateConsoleReport renders the human-readable summary.
func (rg *ReportGenerator) GenerateConsoleReport(result domain.ProjectionResult, analysis *portfolio.Analysis) error {
	r := result.Result

	fmt.Fprintln(rg.w, strings.Repeat("=", 72))
	fmt.Fprintln(rg.w, "RETIREMENT PLAN PROJECTION")
	fmt.Fprintln(rg.w, strings.Repeat("=", 72))
	fmt.Fprintln(rg.w)

	fmt.Fprintln(rg.w, "PROJECTED BALANCES AT RETIREMENT")
	fmt.Fprintln(rg.w, strings.Repeat("-", 40))
	b := result.BalancesAtRetirement
	printBalance(rg.w, "Pension", b.Pension)
	printBalance(rg.w, "Training Fund", b.TrainingFund)
	printBalance(rg.w, "Personal Portfolio", b.PersonalPortfolio)
	printBalance(rg.w, "Real Estate", b.RealEstate)
	printBalance(rg.w, "Crypto", b.Crypto)
	printBalance(rg.w, "Cash", b.Cash)
	printBalance(rg.w, "TOTAL", result.TotalSavings)
	fmt.Fprintln(rg.w)

	fmt.Fprintln(rg.w, "MONTHLY RETIREMENT INCOME (NET)")
	fmt.Fprintln(rg.w, strings.Repeat("-", 40))
	src := r.RetirementIncome.BySource
	printBalance(rg.w, "Pension", src.Pension)
	printBalance(rg.w, "Training Fund", src.TrainingFund)
	printBalance(rg.w, "Personal Portfolio", src.PersonalPortfolio)
	printBalance(rg.w, "Crypto", src.Crypto)
	printBalance(rg.w, "Real Estate", src.RealEstate)
	printBalance(rg.w, "Social Security", src.SocialSecurity)
	printBalance(rg.w, "Additional Income", src.AdditionalIncome)
	if !src.Partner.IsZero() {
		printBalance(rg.w, "Partner", src.Partner)
	}
	printBalance(rg.w, "TOTAL MONTHLY", r.RetirementIncome.Total.Monthly)
	printBalance(rg.w, "TOTAL ANNUAL", r.RetirementIncome.Total.Annual)
	fmt.Fprintln(rg.w)

	fmt.Fprintln(rg.w, "GOALS")
	fmt.Fprintln(rg.w, strings.Repeat("-", 40))
	g := r.GoalsAnalysis
	printBalance(rg.w, "Target Monthly Income", g.TargetMonthlyIncome)
	printBalance(rg.w, "Gap", g.Gap)
	fmt.Fprintf(rg.w, "%-24s %s\n", "Status:", g.Status)
	fmt.Fprintf(rg.w, "%-24s %d / 100\n", "Readiness Score:", r.ReadinessScore)
	fmt.Fprintln(rg.w)

	if analysis != nil {
		rg.writePortfolioSection(*analysis)
	}

	return nil
}

func (rg *ReportGenerator) writePortfolioSection(a portfolio.Analysis) {
	fmt.Fprintln(rg.w, "PORTFOLIO")
	fmt.Fprintln(rg.w, strings.Repeat("-", 40))
	fmt.Fprintf(rg.w, "%-24s %s%%\n", "Expected Return:", a.Metrics.ExpectedReturn)
	fmt.Fprintf(rg.w, "%-24s %s%%\n", "Volatility:", a.Metrics.Volatility)
	fmt.Fprintf(rg.w, "%-24s %s\n", "Sharpe Ratio:", a.Metrics.SharpeRatio)
	fmt.Fprintf(rg.w, "%-24s %s / 100\n", "Diversification:", a.Metrics.DiversificationScore)

	if len(a.Rebalancing) > 0 {
		fmt.Fprintln(rg.w)
		fmt.Fprintln(rg.w, "REBALANCING ACTIONS")
		for _, act := range a.Rebalancing {
			fmt.Fprintf(rg.w, "  [%s] %s %s.%s: %s%% -> %s%% (%s)\n",
				strings.ToUpper(act.Priority), act.Action, act.Category, act.Asset,
				act.CurrentPercentage, act.TargetPercentage, FormatCurrency(act.Amount.Decimal))
		}
	}

	if len(a.Recommendations) > 0 {
		fmt.Fprintln(rg.w)
		fmt.Fprintln(rg.w, "RECOMMENDATIONS")
		for _, rec := range a.Recommendations {
			fmt.Fprintf(rg.w, "  [%s] %s\n      %s\n", strings.ToUpper(rec.Priority), rec.Title, rec.Action)
		}
	}
	fmt.Fprintln(rg.w)
}

func printBalance(w io.Writer, label string, amount decimal.Decimal) {
	fmt.Fprintf(w, "%-24s %s\n", label+":", FormatCurrency(amount))
}

// FormatCurrency renders an amount with thousands separators and two
// decimal places.
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var sb strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}

	out := sb.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}
