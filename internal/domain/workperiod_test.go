package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkPeriodYears(t *testing.T) {
	assert.Equal(t, 10, WorkPeriod{StartAge: 25, EndAge: 35}.Years())
	assert.Equal(t, 0, WorkPeriod{StartAge: 35, EndAge: 25}.Years())
	assert.Equal(t, 0, WorkPeriod{StartAge: 30, EndAge: 30}.Years())
}

func TestContributionGrowth(t *testing.T) {
	wp := WorkPeriod{
		StartAge:                25,
		EndAge:                  30,
		MonthlySalary:           10000,
		PensionContributionRate: 10,
	}
	// 10000 * 10% * 60 months
	assert.Equal(t, "60000", wp.ContributionGrowth().String())
}

func TestContributionGrowthZeroForInvertedPeriod(t *testing.T) {
	wp := WorkPeriod{StartAge: 40, EndAge: 30, MonthlySalary: 10000, PensionContributionRate: 10}
	assert.True(t, wp.ContributionGrowth().IsZero())
}

func TestSortWorkPeriodsDoesNotMutate(t *testing.T) {
	periods := []WorkPeriod{
		{StartAge: 40, EndAge: 50, Country: "usa"},
		{StartAge: 25, EndAge: 40, Country: "israel"},
	}
	sorted := SortWorkPeriods(periods)

	assert.Equal(t, "israel", sorted[0].Country)
	assert.Equal(t, "usa", sorted[1].Country)
	// input order unchanged
	assert.Equal(t, "usa", periods[0].Country)
}

func TestFinalSalary(t *testing.T) {
	periods := []WorkPeriod{
		{StartAge: 40, EndAge: 50, MonthlySalary: 30000},
		{StartAge: 25, EndAge: 40, MonthlySalary: 12000},
	}
	assert.Equal(t, "30000", FinalSalary(periods).String())
	assert.True(t, FinalSalary(nil).IsZero())
}
