package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/pkg/money"
)

// BreakEvenResult is the outcome of the savings-rate solver.
type BreakEvenResult struct {
	ContributionRate decimal.Decimal         `json:"contributionRate"` // percent of salary
	Projection       domain.ProjectionResult `json:"projection"`
}

// CalculateBreakEvenSavingsRate finds the pension contribution rate that
// makes projected net income meet the target replacement income, via binary
// search over [0%, 40%] of salary. It errors when the plan has no target or
// when even the maximum rate cannot close the gap.
func (ce *CalculationEngine) CalculateBreakEvenSavingsRate(household domain.Household) (*BreakEvenResult, error) {
	baseline := ce.CalculateRetirement(household)
	target := baseline.Result.GoalsAnalysis.TargetMonthlyIncome
	if target.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("no target income to solve for: set a replacement rate and a salary")
	}

	projectAt := func(rate decimal.Decimal) domain.ProjectionResult {
		scenario := household
		scenario.Primary.PensionContribution = money.RateFromDecimal(rate)
		if scenario.Partner != nil {
			partner := *scenario.Partner
			partner.PensionContribution = money.RateFromDecimal(rate)
			scenario.Partner = &partner
		}
		return ce.CalculateRetirement(scenario)
	}

	minRate := decimal.Zero
	maxRate := decimal.NewFromInt(40)
	tolerance := decimal.NewFromInt(1) // within one currency unit per month
	maxIterations := 50

	ceiling := projectAt(maxRate)
	if ceiling.Result.RetirementIncome.Total.Monthly.LessThan(target.Sub(tolerance)) {
		return nil, fmt.Errorf("target income %s unreachable even at a %s%% contribution rate",
			target.StringFixed(2), maxRate.StringFixed(0))
	}

	var best domain.ProjectionResult
	bestRate := maxRate
	for i := 0; i < maxIterations; i++ {
		testRate := minRate.Add(maxRate).Div(decimal.NewFromInt(2))
		projection := projectAt(testRate)
		diff := projection.Result.RetirementIncome.Total.Monthly.Sub(target)

		if diff.Abs().LessThan(tolerance) {
			return &BreakEvenResult{ContributionRate: testRate.Round(3), Projection: projection}, nil
		}
		if diff.LessThan(decimal.Zero) {
			minRate = testRate
		} else {
			maxRate = testRate
			best = projection
			bestRate = testRate
		}

		if maxRate.Sub(minRate).LessThan(decimal.NewFromFloat(0.001)) {
			break
		}
	}

	if best.Result.RetirementIncome.Total.Monthly.IsZero() {
		best = ceiling
		bestRate = decimal.NewFromInt(40)
	}
	return &BreakEvenResult{ContributionRate: bestRate.Round(3), Projection: best}, nil
}
