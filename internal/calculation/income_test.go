package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/pkg/money"
)

func TestCalculateRetirementIncomeEmptyInputs(t *testing.T) {
	calc := NewRetirementIncomeCalculator()
	result := calc.CalculateRetirementIncome(IncomeParams{
		Household: domain.NormalizeHousehold(domain.PlannerInputs{}),
	})

	// No balances, no salary, no work history, no target: every amount is
	// zero. The state benefit needs a recorded career to accrue.
	assert.True(t, result.RetirementIncome.BySource.Pension.IsZero())
	assert.True(t, result.RetirementIncome.BySource.TrainingFund.IsZero())
	assert.True(t, result.RetirementIncome.BySource.SocialSecurity.IsZero())
	assert.True(t, result.RetirementIncome.Total.Monthly.IsZero())
	assert.True(t, result.RetirementIncome.Total.Annual.IsZero())
	assert.Equal(t, 50, result.ReadinessScore)
	assert.Equal(t, domain.GoalStatusUnknown, result.GoalsAnalysis.Status)
	assert.False(t, result.GoalsAnalysis.AchievesTarget)
	assert.Equal(t, "israel", result.SocialSecurityCountry)
}

func TestVehicleWithdrawalRates(t *testing.T) {
	calc := NewRetirementIncomeCalculator()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		Country: "israel",
		WorkPeriods: []domain.WorkPeriod{
			{Country: "israel", StartAge: 25, EndAge: 60, MonthlySalary: 10000, PensionContributionRate: 10},
		},
	})

	result := calc.CalculateRetirementIncome(IncomeParams{
		Household: household,
		Balances: domain.VehicleBalances{
			Pension:      money.FromFloat(300000),
			TrainingFund: money.FromFloat(120000),
		},
	})

	// Pension: 300000 * 4% / 12 = 1000 gross, israel taxes 15% -> 850 net.
	assert.Equal(t, "850.00", result.RetirementIncome.BySource.Pension.StringFixed(2))
	assert.Equal(t, "150.00", result.RetirementIncome.TaxWithheld.Pension.StringFixed(2))

	// Training fund: 120000 * 5% / 12 = 500, tax-free.
	assert.Equal(t, "500.00", result.RetirementIncome.BySource.TrainingFund.StringFixed(2))
	assert.True(t, result.RetirementIncome.TaxWithheld.TrainingFund.IsZero())
}

func TestVehicleWithdrawalsUsePerVehicleTaxRates(t *testing.T) {
	calc := NewRetirementIncomeCalculator()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		PortfolioTaxRate: 25,
		CryptoTaxRate:    50,
	})

	result := calc.CalculateRetirementIncome(IncomeParams{
		Household: household,
		Balances: domain.VehicleBalances{
			PersonalPortfolio: money.FromFloat(600000),
			Crypto:            money.FromFloat(300000),
		},
	})

	// Portfolio: 600000*4%/12 = 2000 gross, 25% -> 1500 net.
	assert.Equal(t, "1500.00", result.RetirementIncome.BySource.PersonalPortfolio.StringFixed(2))
	// Crypto: 300000*4%/12 = 1000 gross, 50% -> 500 net.
	assert.Equal(t, "500.00", result.RetirementIncome.BySource.Crypto.StringFixed(2))
}

func TestWeightedPensionTaxRate(t *testing.T) {
	calc := NewRetirementIncomeCalculator()

	// Two periods with equal contribution weight: israel 15%, germany 25%.
	periods := []domain.WorkPeriod{
		{Country: "israel", StartAge: 25, EndAge: 35, MonthlySalary: 10000, PensionContributionRate: 10},
		{Country: "germany", StartAge: 35, EndAge: 45, MonthlySalary: 10000, PensionContributionRate: 10},
	}
	rate := calc.WeightedPensionTaxRate(periods)
	assert.Equal(t, "20", rate.String())
}

func TestWeightedPensionTaxRateFallbacks(t *testing.T) {
	calc := NewRetirementIncomeCalculator()

	// No periods at all: flat 25.
	assert.Equal(t, "25", calc.WeightedPensionTaxRate(nil).String())

	// Periods with zero weight: first period's country rate.
	periods := []domain.WorkPeriod{
		{Country: "uk", StartAge: 30, EndAge: 30, MonthlySalary: 10000, PensionContributionRate: 10},
	}
	assert.Equal(t, "20", calc.WeightedPensionTaxRate(periods).String())
}

func TestSocialSecurityCountryFromLastPeriod(t *testing.T) {
	calc := NewRetirementIncomeCalculator()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		Country: "israel",
		WorkPeriods: []domain.WorkPeriod{
			{Country: "usa", StartAge: 40, EndAge: 60, MonthlySalary: 10000, PensionContributionRate: 10},
			{Country: "israel", StartAge: 25, EndAge: 40, MonthlySalary: 8000, PensionContributionRate: 10},
		},
	})

	result := calc.CalculateRetirementIncome(IncomeParams{Household: household})

	assert.Equal(t, "usa", result.SocialSecurityCountry)
	assert.Equal(t, "1800", result.RetirementIncome.BySource.SocialSecurity.String())
}

func TestTargetIncomeFromFinalSalaryAndReplacementRate(t *testing.T) {
	calc := NewRetirementIncomeCalculator()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		TargetReplacementRate: 70,
		WorkPeriods: []domain.WorkPeriod{
			{Country: "israel", StartAge: 25, EndAge: 60, MonthlySalary: 20000, PensionContributionRate: 10},
		},
	})

	result := calc.CalculateRetirementIncome(IncomeParams{Household: household})
	assert.Equal(t, "14000.00", result.GoalsAnalysis.TargetMonthlyIncome.StringFixed(2))
}

func TestTargetIncomeFallsBackToCurrentSalary(t *testing.T) {
	calc := NewRetirementIncomeCalculator()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentMonthlySalary:  18000,
		TargetReplacementRate: 50,
	})

	result := calc.CalculateRetirementIncome(IncomeParams{Household: household})
	assert.Equal(t, "9000.00", result.GoalsAnalysis.TargetMonthlyIncome.StringFixed(2))
}

func TestCoupleSumsPartnerIncome(t *testing.T) {
	calc := NewRetirementIncomeCalculator()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		PlanningType: domain.PlanningCouple,
		Partner1: &domain.PartnerInputs{
			CurrentMonthlySalary: 20000,
			WorkPeriods: []domain.WorkPeriod{
				{Country: "israel", StartAge: 25, EndAge: 60, MonthlySalary: 20000, PensionContributionRate: 10},
			},
		},
		Partner2: &domain.PartnerInputs{
			CurrentMonthlySalary: 15000,
		},
	})
	require.True(t, household.IsCouple())

	partnerBalances := domain.VehicleBalances{Pension: money.FromFloat(300000)}
	result := calc.CalculateRetirementIncome(IncomeParams{
		Household:       household,
		PartnerBalances: &partnerBalances,
	})

	// Partner draws 850 pension net plus the shared 2500 state benefit.
	assert.Equal(t, "3350.00", result.RetirementIncome.BySource.Partner.StringFixed(2))
}

func TestCoupleKeepsPartnerAdditionalIncomeWithoutBalances(t *testing.T) {
	calc := NewRetirementIncomeCalculator()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		PlanningType: domain.PlanningCouple,
		Partner1: &domain.PartnerInputs{
			CurrentMonthlySalary: 20000,
			WorkPeriods: []domain.WorkPeriod{
				{Country: "israel", StartAge: 25, EndAge: 60, MonthlySalary: 20000, PensionContributionRate: 10},
			},
		},
		Partner2: &domain.PartnerInputs{
			AnnualBonus:  24000,
			BonusTaxRate: 25,
		},
	})
	require.True(t, household.IsCouple())

	// No partner balances supplied: the partner's bonus income and the
	// shared state benefit still count.
	result := calc.CalculateRetirementIncome(IncomeParams{Household: household})

	// Bonus: 24000 / 12 = 2000 gross, 25% tax leaves 1500 net, plus 2500.
	assert.Equal(t, "4000.00", result.RetirementIncome.BySource.Partner.StringFixed(2))
	assert.Equal(t, "500.00", result.RetirementIncome.TaxWithheld.Partner.StringFixed(2))
}

func TestFutureExpensesCompound(t *testing.T) {
	calc := NewRetirementIncomeCalculator()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentMonthlyExpenses:  10000,
		YearlyExpenseAdjustment: 2,
	})

	result := calc.CalculateRetirementIncome(IncomeParams{
		Household:         household,
		YearsToRetirement: 10,
	})

	// 10000 * 1.02^10
	assert.Equal(t, "12189.94", result.Expenses.FutureMonthly.StringFixed(2))
}

func TestFutureExpensesPreferCategoryBreakdown(t *testing.T) {
	calc := NewRetirementIncomeCalculator()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentMonthlyExpenses: 9999,
		ExpenseCategories: map[string]float64{
			"housing": 6000,
			"food":    2000,
		},
	})

	result := calc.CalculateRetirementIncome(IncomeParams{Household: household})
	assert.Equal(t, "8000.00", result.Expenses.FutureMonthly.StringFixed(2))
}

func TestAuxiliaryAnalysesArePopulated(t *testing.T) {
	calc := NewRetirementIncomeCalculator()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		InflationRate:         3,
		CurrentMonthlySalary:  20000,
		TargetReplacementRate: 70,
	})

	result := calc.CalculateRetirementIncome(IncomeParams{
		Household: household,
		Balances:  domain.VehicleBalances{Pension: money.FromFloat(1000000)},
	})

	require.NotNil(t, result.InflationAnalysis)
	assert.True(t, result.InflationAnalysis.ProtectionScore.IsPositive())
	require.NotNil(t, result.TaxOptimization)
	assert.True(t, result.TaxOptimization.EffectiveTaxRate.IsPositive())
}

func TestUnnormalizedHouseholdDoesNotPanic(t *testing.T) {
	calc := NewRetirementIncomeCalculator()
	result := calc.CalculateRetirementIncome(IncomeParams{
		Household: domain.Household{Country: "israel"},
	})

	// A household built without normalization still cannot panic the
	// auxiliary analyses.
	assert.Equal(t, 50, result.ReadinessScore)
	assert.Equal(t, "unknown", result.GoalsAnalysis.Status)
}
