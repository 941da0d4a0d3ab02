package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retplan/retplan/internal/domain"
)

func TestBreakEvenSolvesContributionRate(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:            30,
		RetirementAge:         65,
		CurrentMonthlySalary:  20000,
		TargetReplacementRate: 60,
	})

	result, err := engine.CalculateBreakEvenSavingsRate(household)
	require.NoError(t, err)

	assert.True(t, result.ContributionRate.IsPositive())
	assert.True(t, result.ContributionRate.LessThanOrEqual(decimal.NewFromInt(40)))

	// The solved projection must meet the target within the solver tolerance.
	target := result.Projection.Result.GoalsAnalysis.TargetMonthlyIncome
	income := result.Projection.Result.RetirementIncome.Total.Monthly
	assert.True(t, income.GreaterThanOrEqual(target.Sub(decimal.NewFromInt(1))),
		"income %s should reach target %s", income, target)
}

func TestBreakEvenRequiresTarget(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:    30,
		RetirementAge: 65,
	})

	_, err := engine.CalculateBreakEvenSavingsRate(household)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no target income")
}

func TestBreakEvenUnreachableTarget(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:            64,
		RetirementAge:         65,
		CurrentMonthlySalary:  20000,
		TargetReplacementRate: 60,
	})

	_, err := engine.CalculateBreakEvenSavingsRate(household)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}
