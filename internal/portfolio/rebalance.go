package portfolio

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/pkg/money"
)

const (
	// Drift below this many percentage points is left alone.
	rebalanceThreshold = 5.0
	// Drift at or beyond this many points is flagged high priority.
	highPriorityDrift = 10.0
)

// Action verbs and priorities for rebalancing steps.
const (
	ActionBuy  = "buy"
	ActionSell = "sell"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// RebalanceAction describes one trade needed to move the current allocation
// toward the optimal one.
type RebalanceAction struct {
	Category             string          `json:"category"`
	Asset                string          `json:"asset"`
	Action               string          `json:"action"`
	CurrentPercentage    decimal.Decimal `json:"currentPercentage"`
	TargetPercentage     decimal.Decimal `json:"targetPercentage"`
	DifferencePercentage decimal.Decimal `json:"differencePercentage"`
	Amount               money.Money     `json:"amount"`
	Priority             string          `json:"priority"`
}

// CalculateRebalancing diffs the current allocation against the optimal one
// and emits an action per asset whose drift exceeds the threshold. Amounts
// are the drift applied to total assets; actions sort by priority, then by
// drift magnitude descending.
func (o *Optimizer) CalculateRebalancing(current, optimal Portfolio, totalAssets money.Money) []RebalanceAction {
	threshold := decimal.NewFromFloat(rebalanceThreshold)
	highDrift := decimal.NewFromFloat(highPriorityDrift)

	actions := make([]RebalanceAction, 0, 4)
	for _, category := range sortedCategories() {
		for _, asset := range sortedAssets(category) {
			cur := current.Get(category, asset)
			target := optimal.Get(category, asset)
			diff := target.Sub(cur)
			drift := diff.Abs()
			if drift.LessThan(threshold) {
				continue
			}

			action := ActionBuy
			if diff.IsNegative() {
				action = ActionSell
			}
			priority := PriorityMedium
			if drift.GreaterThanOrEqual(highDrift) {
				priority = PriorityHigh
			}

			actions = append(actions, RebalanceAction{
				Category:             category,
				Asset:                asset,
				Action:               action,
				CurrentPercentage:    cur.Round(2),
				TargetPercentage:     target.Round(2),
				DifferencePercentage: diff.Round(2),
				Amount:               totalAssets.Mul(drift.Div(decimalHundred)).Round(),
				Priority:             priority,
			})
		}
	}

	sort.SliceStable(actions, func(i, j int) bool {
		if actions[i].Priority != actions[j].Priority {
			return priorityRank(actions[i].Priority) < priorityRank(actions[j].Priority)
		}
		return actions[i].DifferencePercentage.Abs().GreaterThan(actions[j].DifferencePercentage.Abs())
	})
	return actions
}

func priorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

func sortedCategories() []string {
	keys := make([]string, 0, len(AssetClasses))
	for category := range AssetClasses {
		keys = append(keys, category)
	}
	sort.Strings(keys)
	return keys
}

func sortedAssets(category string) []string {
	keys := make([]string, 0, len(AssetClasses[category]))
	for asset := range AssetClasses[category] {
		keys = append(keys, asset)
	}
	sort.Strings(keys)
	return keys
}
