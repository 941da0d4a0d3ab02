package domain

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/pkg/money"
)

// WorkPeriod is one interval of a career: where the person worked, what they
// earned and what they contributed. An ordered sequence of periods drives the
// contribution-weighted average tax rate and the final salary used for
// target-income calculations.
type WorkPeriod struct {
	Country                      string  `yaml:"country" json:"country"`
	StartAge                     int     `yaml:"start_age" json:"startAge"`
	EndAge                       int     `yaml:"end_age" json:"endAge"`
	MonthlySalary                float64 `yaml:"monthly_salary" json:"monthlySalary"`
	PensionContributionRate      float64 `yaml:"pension_contribution_rate" json:"pensionContributionRate"`
	TrainingFundContributionRate float64 `yaml:"training_fund_contribution_rate" json:"trainingFundContributionRate"`
}

// Years returns the length of the period, floored at zero.
func (wp WorkPeriod) Years() int {
	if wp.EndAge <= wp.StartAge {
		return 0
	}
	return wp.EndAge - wp.StartAge
}

// ContributionGrowth estimates the total pension contributions accumulated
// over the period. This is the weight a period carries when averaging tax
// rates across a multi-country career.
func (wp WorkPeriod) ContributionGrowth() decimal.Decimal {
	salary := money.FromFloat(wp.MonthlySalary)
	rate := money.RateFromFloat(wp.PensionContributionRate)
	months := decimal.NewFromInt(int64(wp.Years() * 12))
	return salary.Decimal.Mul(rate.Fraction()).Mul(months)
}

// SortWorkPeriods returns the periods in chronological order by start age.
// The input slice is not mutated.
func SortWorkPeriods(periods []WorkPeriod) []WorkPeriod {
	sorted := make([]WorkPeriod, len(periods))
	copy(sorted, periods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartAge < sorted[j].StartAge
	})
	return sorted
}

// FinalSalary returns the monthly salary of the chronologically last period,
// or zero when no periods exist.
func FinalSalary(periods []WorkPeriod) money.Money {
	if len(periods) == 0 {
		return money.Zero()
	}
	sorted := SortWorkPeriods(periods)
	return money.FromFloat(sorted[len(sorted)-1].MonthlySalary)
}
