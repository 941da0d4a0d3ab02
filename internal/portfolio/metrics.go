package portfolio

import (
	"math"

	"github.com/shopspring/decimal"
)

// ASSUMPTIONS:
// - Volatility uses sqrt(sum((weight*sigma)^2)), which treats asset classes
//   as uncorrelated. The correlation column in AssetClasses is reference
//   data for a future covariance model.
// - Sharpe ratio uses a 2% risk-free rate in percent space.

const riskFreeRate = 2.0 // percent

// Metrics summarizes the statistical profile of an allocation.
type Metrics struct {
	ExpectedReturn       decimal.Decimal `json:"expectedReturn"`
	Volatility           decimal.Decimal `json:"volatility"`
	SharpeRatio          decimal.Decimal `json:"sharpeRatio"`
	DiversificationScore decimal.Decimal `json:"diversificationScore"`
	RiskScore            decimal.Decimal `json:"riskScore"`
}

// CalculatePortfolioMetrics computes expected return, volatility, Sharpe
// ratio, a diversification score in [0, 100] and a risk score in [0, 100]
// for an allocation. An all-zero portfolio yields all-zero metrics.
func (o *Optimizer) CalculatePortfolioMetrics(p Portfolio) Metrics {
	var (
		expectedReturn float64
		variance       float64
		herfindahl     float64
	)

	for category, assets := range p {
		for asset, pct := range assets {
			ac, ok := LookupAsset(category, asset)
			if !ok {
				continue
			}
			weight, _ := pct.Div(decimalHundred).Float64()
			ret, _ := ac.ExpectedReturn.Float64()
			sigma, _ := ac.Volatility.Float64()

			expectedReturn += weight * ret
			variance += (weight * sigma) * (weight * sigma)
			herfindahl += weight * weight
		}
	}

	volatility := math.Sqrt(variance)

	sharpe := 0.0
	if volatility > 0 {
		sharpe = (expectedReturn - riskFreeRate) / volatility
	}

	// Herfindahl concentration mapped onto [0, 100]: a single-asset
	// portfolio scores 0, an evenly spread one approaches 100.
	diversification := 0.0
	if herfindahl > 0 {
		diversification = clampScore((1 - herfindahl) * 115)
	}

	riskScore := clampScore(volatility * 5)

	return Metrics{
		ExpectedReturn:       decimal.NewFromFloat(expectedReturn).Round(2),
		Volatility:           decimal.NewFromFloat(volatility).Round(2),
		SharpeRatio:          decimal.NewFromFloat(sharpe).Round(2),
		DiversificationScore: decimal.NewFromFloat(diversification).Round(0),
		RiskScore:            decimal.NewFromFloat(riskScore).Round(0),
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
