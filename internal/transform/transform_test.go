package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retplan/retplan/internal/domain"
)

func baseHousehold() domain.Household {
	return domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:              40,
		RetirementAge:           65,
		CurrentMonthlySalary:    20000,
		PensionContributionRate: 10,
		AccumulationFees:        0.8,
	})
}

func TestShiftRetirementAge(t *testing.T) {
	h := baseHousehold()
	shifted := (&ShiftRetirementAge{Years: 3}).Apply(h)

	assert.Equal(t, 68, shifted.Primary.RetirementAge)
	// The input household stays untouched.
	assert.Equal(t, 65, h.Primary.RetirementAge)
}

func TestShiftRetirementAgeFloorsAtCurrentAge(t *testing.T) {
	h := baseHousehold()
	shifted := (&ShiftRetirementAge{Years: -30}).Apply(h)
	assert.Equal(t, 40, shifted.Primary.RetirementAge)
}

func TestShiftRetirementAgeCopiesPartner(t *testing.T) {
	h := domain.NormalizeHousehold(domain.PlannerInputs{
		PlanningType: domain.PlanningCouple,
		Partner1:     &domain.PartnerInputs{CurrentAge: 40, RetirementAge: 65},
		Partner2:     &domain.PartnerInputs{CurrentAge: 38, RetirementAge: 65},
	})
	require.True(t, h.IsCouple())

	shifted := (&ShiftRetirementAge{Years: 2}).Apply(h)

	assert.Equal(t, 67, shifted.Partner.RetirementAge)
	assert.Equal(t, 65, h.Partner.RetirementAge)
}

func TestBoostPensionContributionClamps(t *testing.T) {
	h := baseHousehold()

	boosted := (&BoostPensionContribution{Points: 5}).Apply(h)
	assert.Equal(t, "15", boosted.Primary.PensionContribution.Percent().String())

	maxed := (&BoostPensionContribution{Points: 500}).Apply(h)
	assert.Equal(t, "100", maxed.Primary.PensionContribution.Percent().String())
}

func TestReduceFeesFloorsAtZero(t *testing.T) {
	h := baseHousehold()

	cut := (&ReduceFees{Points: 0.5}).Apply(h)
	assert.Equal(t, "0.3", cut.AccumulationFees.Percent().String())

	floored := (&ReduceFees{Points: 5}).Apply(h)
	assert.True(t, floored.AccumulationFees.Percent().IsZero())
}

func TestSetRiskToleranceIgnoresInvalid(t *testing.T) {
	h := baseHousehold()

	set := (&SetRiskTolerance{Tolerance: domain.RiskAggressive}).Apply(h)
	assert.Equal(t, domain.RiskAggressive, set.RiskTolerance)

	unchanged := (&SetRiskTolerance{Tolerance: "bananas"}).Apply(h)
	assert.Equal(t, h.RiskTolerance, unchanged.RiskTolerance)
}

func TestBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	names := registry.List()
	assert.Contains(t, names, "postpone_1yr")
	assert.Contains(t, names, "boost_contribution_5pct")
	assert.Contains(t, names, "work_longer_save_more")

	// Lookup is case-insensitive.
	tmpl, ok := registry.Get("POSTPONE_2YR")
	require.True(t, ok)

	h := baseHousehold()
	applied := tmpl.Apply(h)
	assert.Equal(t, 67, applied.Primary.RetirementAge)

	_, ok = registry.Get("does_not_exist")
	assert.False(t, ok)
}

func TestCompositeTemplateAppliesAllTransforms(t *testing.T) {
	registry := CreateBuiltInTemplates()
	tmpl, ok := registry.Get("work_longer_save_more")
	require.True(t, ok)

	applied := tmpl.Apply(baseHousehold())
	assert.Equal(t, 67, applied.Primary.RetirementAge)
	assert.Equal(t, "13", applied.Primary.PensionContribution.Percent().String())
}

func TestParseTemplateList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseTemplateList(" a , b ,"))
	assert.Empty(t, ParseTemplateList("  ,  "))
}

func TestGetTemplateHelpListsEverything(t *testing.T) {
	registry := CreateBuiltInTemplates()
	help := GetTemplateHelp(registry)
	for _, name := range registry.List() {
		assert.Contains(t, help, name)
	}
}
