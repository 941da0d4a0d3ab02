package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retplan/retplan/internal/domain"
)

func TestProjectionGrowsContributingVehicles(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:                   35,
		RetirementAge:                36,
		CurrentMonthlySalary:         10000,
		PensionContributionRate:      10,
		TrainingFundContributionRate: 7.5,
		CurrentSavings:               100000,
		CurrentPersonalPortfolio:     50000,
		CurrentSavingsAccount:        10000,
	})

	projection := engine.CalculateRetirement(household)

	// One year at the default 7% return: (100000 + 12000) * 1.07.
	assert.Equal(t, "119840.00", projection.BalancesAtRetirement.Pension.StringFixed(2))
	// Training fund: 10000 * 7.5% * 12 contributed, then compounded.
	assert.Equal(t, "9630.00", projection.BalancesAtRetirement.TrainingFund.StringFixed(2))
	// Portfolio compounds without contributions.
	assert.Equal(t, "53500.00", projection.BalancesAtRetirement.PersonalPortfolio.StringFixed(2))
	// Cash does not compound.
	assert.Equal(t, "10000.00", projection.BalancesAtRetirement.Cash.StringFixed(2))
}

func TestProjectionAtRetirementAgeKeepsBalances(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:              65,
		RetirementAge:           65,
		CurrentMonthlySalary:    10000,
		PensionContributionRate: 10,
		CurrentSavings:          200000,
	})

	projection := engine.CalculateRetirement(household)
	assert.Equal(t, "200000.00", projection.BalancesAtRetirement.Pension.StringFixed(2))
}

func TestFeesAboveReturnClampToZeroGrowth(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:               30,
		RetirementAge:            40,
		ExpectedAnnualReturn:     2,
		AccumulationFees:         5,
		CurrentPersonalPortfolio: 50000,
	})

	projection := engine.CalculateRetirement(household)
	assert.Equal(t, "50000.00", projection.BalancesAtRetirement.PersonalPortfolio.StringFixed(2))
}

func TestTrainingFundContributionsRespectCeiling(t *testing.T) {
	engine := NewCalculationEngine()
	base := domain.PlannerInputs{
		Country:                      "israel",
		CurrentAge:                   40,
		RetirementAge:                41,
		TrainingFundContributionRate: 10,
	}

	atCeiling := base
	atCeiling.CurrentMonthlySalary = 15712
	aboveCeiling := base
	aboveCeiling.CurrentMonthlySalary = 20000

	first := engine.CalculateRetirement(domain.NormalizeHousehold(atCeiling))
	second := engine.CalculateRetirement(domain.NormalizeHousehold(aboveCeiling))

	assert.True(t, first.BalancesAtRetirement.TrainingFund.Equal(second.BalancesAtRetirement.TrainingFund),
		"contributions above the salary ceiling must be capped")
}

func TestCalculateRetirementIsDeterministic(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:              30,
		RetirementAge:           65,
		CurrentMonthlySalary:    20000,
		PensionContributionRate: 12.5,
		TargetReplacementRate:   70,
		CurrentSavings:          150000,
	})

	first := engine.CalculateRetirement(household)
	second := engine.CalculateRetirement(household)
	assert.Equal(t, first, second)
}

func TestCoupleProjectionSumsBothPartners(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		PlanningType: domain.PlanningCouple,
		Partner1: &domain.PartnerInputs{
			CurrentAge:     64,
			RetirementAge:  65,
			CurrentSavings: 100000,
		},
		Partner2: &domain.PartnerInputs{
			CurrentAge:     64,
			RetirementAge:  65,
			CurrentSavings: 50000,
		},
	})
	require.True(t, household.IsCouple())

	projection := engine.CalculateRetirement(household)

	// One growth year at 7% on both pensions: 107000 + 53500.
	assert.Equal(t, "160500", projection.TotalSavings.String())
}

func TestYoungProfessionalAccumulates(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:              25,
		RetirementAge:           67,
		CurrentMonthlySalary:    20000,
		PensionContributionRate: 12.5,
		CurrentSavings:          5000,
	})

	projection := engine.CalculateRetirement(household)
	assert.True(t, projection.TotalSavings.IsPositive())
	assert.True(t, projection.MonthlyIncome.IsPositive())
}

func TestZeroSalaryAndExpensesStaysDefined(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:    30,
		RetirementAge: 65,
		WorkPeriods: []domain.WorkPeriod{
			{Country: "israel", StartAge: 25, EndAge: 30},
		},
	})

	projection := engine.CalculateRetirement(household)
	assert.True(t, projection.TotalSavings.IsZero())
	assert.True(t, projection.BalancesAtRetirement.Total().IsZero())
	// The state benefit keeps income defined even with nothing saved.
	assert.True(t, projection.MonthlyIncome.IsPositive())
}

func TestStateBenefitRequiresWorkHistory(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:    30,
		RetirementAge: 65,
	})

	projection := engine.CalculateRetirement(household)
	assert.True(t, projection.MonthlyIncome.IsZero())
	assert.True(t, projection.Result.RetirementIncome.BySource.SocialSecurity.IsZero())
}

func TestRunScenariosRequiresAges(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{CurrentAge: 40})

	_, err := engine.RunScenarios(household, nil)
	assert.Error(t, err)
}

func TestRunScenariosRejectsPastAges(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{CurrentAge: 40})

	_, err := engine.RunScenarios(household, []int{60, 40})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not after current age")
}

func TestRunScenariosLaterAgesAccumulateMore(t *testing.T) {
	engine := NewCalculationEngine()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:              40,
		RetirementAge:           65,
		CurrentMonthlySalary:    20000,
		PensionContributionRate: 10,
		CurrentSavings:          100000,
	})

	summaries, err := engine.RunScenarios(household, []int{60, 65, 70})
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, 60, summaries[0].RetirementAge)
	assert.Equal(t, 65, summaries[1].RetirementAge)
	assert.Equal(t, 70, summaries[2].RetirementAge)
	assert.True(t, summaries[1].TotalSavings.GreaterThan(summaries[0].TotalSavings))
	assert.True(t, summaries[2].TotalSavings.GreaterThan(summaries[1].TotalSavings))
}
