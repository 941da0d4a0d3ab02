package portfolio

import (
	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/pkg/money"
)

// Analysis bundles everything the optimizer produces for one household.
type Analysis struct {
	CurrentPortfolio  Portfolio         `json:"currentPortfolio"`
	OptimalAllocation Portfolio         `json:"optimalAllocation"`
	Rebalancing       []RebalanceAction `json:"rebalancing"`
	Metrics           Metrics           `json:"metrics"`
	OptimalMetrics    Metrics           `json:"optimalMetrics"`
	Recommendations   []Recommendation  `json:"recommendations"`
	TotalAssets       money.Money       `json:"totalAssets"`
}

// Analyze runs the full optimization pipeline for a household's primary
// member: parse the current allocation, build the target, diff the two and
// evaluate the advisory rules.
func (o *Optimizer) Analyze(h domain.Household) Analysis {
	p := h.Primary
	total := p.Balances.Total()

	current := o.ParseCurrentPortfolio(p.Balances, h.StockPercentage.Percent())
	optimal := o.CalculateOptimalAllocation(p.CurrentAge, p.RetirementAge, h.RiskTolerance)

	return Analysis{
		CurrentPortfolio:  current,
		OptimalAllocation: optimal,
		Rebalancing:       o.CalculateRebalancing(current, optimal, total),
		Metrics:           o.CalculatePortfolioMetrics(current),
		OptimalMetrics:    o.CalculatePortfolioMetrics(optimal),
		Recommendations: o.GenerateRecommendations(
			current, optimal, o.CalculatePortfolioMetrics(current), p.CurrentAge, p.RetirementAge),
		TotalAssets: total,
	}
}
