package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retplan/retplan/internal/calculation"
	"github.com/retplan/retplan/internal/domain"
)

func compareHousehold() domain.Household {
	return domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:              40,
		RetirementAge:           65,
		CurrentMonthlySalary:    20000,
		PensionContributionRate: 10,
		TargetReplacementRate:   70,
		CurrentSavings:          400000,
	})
}

func TestCompareRequiresTemplates(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())
	_, err := ce.Compare(compareHousehold(), nil)
	assert.Error(t, err)
}

func TestCompareRejectsUnknownTemplate(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())
	_, err := ce.Compare(compareHousehold(), []string{"postpone_1yr", "time_travel"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown template "time_travel"`)
}

func TestComparePostponingRaisesIncome(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())
	set, err := ce.Compare(compareHousehold(), []string{"postpone_5yr"})
	require.NoError(t, err)
	require.Len(t, set.AlternativeResults, 1)

	base := set.BaseResult
	alt := set.AlternativeResults[0]

	assert.Equal(t, "base", base.ScenarioName)
	assert.Equal(t, "postpone_5yr", alt.ScenarioName)
	assert.Equal(t, 70, alt.RetirementAge)
	assert.True(t, alt.TotalSavings.GreaterThan(base.TotalSavings))
	assert.True(t, alt.MonthlyIncome.GreaterThan(base.MonthlyIncome))
	assert.True(t, alt.IncomeDiffFromBase.IsPositive())
	assert.True(t, alt.SavingsDiffFromBase.IsPositive())
	assert.True(t, alt.IncomePctFromBase.IsPositive())
}

func TestCompareDoesNotMutateHousehold(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())
	household := compareHousehold()

	_, err := ce.Compare(household, []string{"postpone_2yr", "boost_contribution_5pct"})
	require.NoError(t, err)

	assert.Equal(t, 65, household.Primary.RetirementAge)
	assert.Equal(t, "10", household.Primary.PensionContribution.Percent().String())
}

func TestCompareProducesRecommendations(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())
	set, err := ce.Compare(compareHousehold(), []string{"postpone_5yr", "low_fees"})
	require.NoError(t, err)

	assert.NotEmpty(t, set.Recommendations)
}
