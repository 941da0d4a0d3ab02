package output

import (
	"encoding/csv"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/internal/domain"
)

// GenerateCSVReport writes the projection as key/value rows, one metric per
// line, for spreadsheet import.
func (rg *ReportGenerator) GenerateCSVReport(result domain.ProjectionResult) error {
	w := csv.NewWriter(rg.w)

	r := result.Result
	rows := [][]string{
		{"metric", "value"},
		{"totalSavings", fixed(result.TotalSavings)},
		{"monthlyIncome", fixed(result.MonthlyIncome)},
		{"balances.pension", fixed(result.BalancesAtRetirement.Pension)},
		{"balances.trainingFund", fixed(result.BalancesAtRetirement.TrainingFund)},
		{"balances.personalPortfolio", fixed(result.BalancesAtRetirement.PersonalPortfolio)},
		{"balances.realEstate", fixed(result.BalancesAtRetirement.RealEstate)},
		{"balances.crypto", fixed(result.BalancesAtRetirement.Crypto)},
		{"balances.cash", fixed(result.BalancesAtRetirement.Cash)},
		{"income.pension", fixed(r.RetirementIncome.BySource.Pension)},
		{"income.trainingFund", fixed(r.RetirementIncome.BySource.TrainingFund)},
		{"income.personalPortfolio", fixed(r.RetirementIncome.BySource.PersonalPortfolio)},
		{"income.crypto", fixed(r.RetirementIncome.BySource.Crypto)},
		{"income.realEstate", fixed(r.RetirementIncome.BySource.RealEstate)},
		{"income.socialSecurity", fixed(r.RetirementIncome.BySource.SocialSecurity)},
		{"income.additionalIncome", fixed(r.RetirementIncome.BySource.AdditionalIncome)},
		{"income.partner", fixed(r.RetirementIncome.BySource.Partner)},
		{"income.totalMonthly", fixed(r.RetirementIncome.Total.Monthly)},
		{"income.totalAnnual", fixed(r.RetirementIncome.Total.Annual)},
		{"expenses.futureMonthly", fixed(r.Expenses.FutureMonthly)},
		{"goals.targetMonthlyIncome", fixed(r.GoalsAnalysis.TargetMonthlyIncome)},
		{"goals.gap", fixed(r.GoalsAnalysis.Gap)},
		{"goals.status", r.GoalsAnalysis.Status},
		{"readinessScore", fmt.Sprintf("%d", r.ReadinessScore)},
		{"weightedTaxRate", fixed(r.WeightedTaxRate)},
		{"socialSecurityCountry", r.SocialSecurityCountry},
	}

	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}
	return nil
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}
