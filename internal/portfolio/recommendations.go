package portfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Recommendation is one rule-driven suggestion presented alongside the
// optimization result.
type Recommendation struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Recommendation type keys.
const (
	RecTypeGlidePath       = "glide_path"
	RecTypeReduceRisk      = "reduce_risk"
	RecTypeDiversify       = "diversify"
	RecTypeDeployCash      = "deploy_cash"
	RecTypeInternational   = "international_exposure"
	recImmediacyHorizonYrs = 10
)

var (
	excessEquityThreshold = decimal.NewFromInt(10) // percentage points
	lowDiversification    = decimal.NewFromInt(60)
	highCashAllocation    = decimal.NewFromInt(20)
	lowInternational      = decimal.NewFromInt(15)
)

// GenerateRecommendations evaluates the advisory rules against the current
// allocation, target allocation and metrics. Rules are independent; the
// result may be empty.
func (o *Optimizer) GenerateRecommendations(current, optimal Portfolio, metrics Metrics, age, retirementAge int) []Recommendation {
	recs := make([]Recommendation, 0, 3)

	yearsToRetirement := retirementAge - age
	if yearsToRetirement < recImmediacyHorizonYrs {
		recs = append(recs, Recommendation{
			Type:     RecTypeGlidePath,
			Priority: PriorityHigh,
			Title:    "Retirement approaching",
			Description: fmt.Sprintf(
				"With %d years to retirement, the portfolio should be shifting toward capital preservation.",
				maxInt(yearsToRetirement, 0)),
			Action: "Review the target allocation annually and reduce equity exposure on schedule.",
		})
	}

	currentEquity := current.CategoryTotal(CategoryStocks)
	optimalEquity := optimal.CategoryTotal(CategoryStocks)
	if currentEquity.Sub(optimalEquity).GreaterThan(excessEquityThreshold) {
		recs = append(recs, Recommendation{
			Type:     RecTypeReduceRisk,
			Priority: PriorityHigh,
			Title:    "Equity exposure above target",
			Description: fmt.Sprintf(
				"Stocks make up %s%% of the portfolio against a %s%% target.",
				currentEquity.Round(1), optimalEquity.Round(1)),
			Action: "Sell down stock positions toward the target allocation.",
		})
	}

	if metrics.DiversificationScore.LessThan(lowDiversification) {
		recs = append(recs, Recommendation{
			Type:        RecTypeDiversify,
			Priority:    PriorityMedium,
			Title:       "Portfolio is concentrated",
			Description: "Holdings are concentrated in few asset classes, raising exposure to any single market.",
			Action:      "Spread new contributions across underweighted asset classes.",
		})
	}

	if current.Get(CategoryCash, AssetCash).GreaterThan(highCashAllocation) {
		recs = append(recs, Recommendation{
			Type:        RecTypeDeployCash,
			Priority:    PriorityMedium,
			Title:       "Large cash position",
			Description: "Cash above an emergency reserve loses purchasing power to inflation every year.",
			Action:      "Invest excess cash according to the target allocation.",
		})
	}

	if current.Get(CategoryStocks, AssetInternational).LessThan(lowInternational) {
		recs = append(recs, Recommendation{
			Type:        RecTypeInternational,
			Priority:    PriorityLow,
			Title:       "Low international exposure",
			Description: "International stocks are below 15% of the portfolio, concentrating risk in the home market.",
			Action:      "Add international index exposure to improve geographic diversification.",
		})
	}

	return recs
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
