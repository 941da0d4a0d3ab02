package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/internal/domain"
)

// Readiness score bands over the income/target ratio. The score is a single
// 0-100 summary of whether projected income meets the replacement target.
var readinessBands = []struct {
	ratio decimal.Decimal
	score int
}{
	{decimal.NewFromFloat(1.2), 100},
	{decimal.NewFromFloat(1.0), 90},
	{decimal.NewFromFloat(0.8), 70},
	{decimal.NewFromFloat(0.6), 50},
	{decimal.NewFromFloat(0.4), 30},
}

// readinessFloor applies below every band.
const readinessFloor = 20

// readinessUnknown is returned when no target exists to evaluate against.
const readinessUnknown = 50

// CalculateReadinessScore maps projected net income against the target to a
// 0-100 score. With a zero or missing target the plan cannot be evaluated and
// scores a neutral 50.
func CalculateReadinessScore(totalNetIncome, targetMonthlyIncome decimal.Decimal) int {
	if targetMonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return readinessUnknown
	}

	ratio := totalNetIncome.Div(targetMonthlyIncome)
	score := readinessFloor
	for _, band := range readinessBands {
		if ratio.GreaterThanOrEqual(band.ratio) {
			score = band.score
			break
		}
	}

	return clampScore(score)
}

// GoalStatus derives the goalsAnalysis.status label from the income/target
// ratio.
func GoalStatus(totalNetIncome, targetMonthlyIncome decimal.Decimal) string {
	if targetMonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return domain.GoalStatusUnknown
	}
	ratio := totalNetIncome.Div(targetMonthlyIncome)
	switch {
	case ratio.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return domain.GoalStatusOnTrack
	case ratio.GreaterThanOrEqual(decimal.NewFromFloat(0.8)):
		return domain.GoalStatusAttention
	default:
		return domain.GoalStatusAtRisk
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
