package portfolio

// ASSUMPTIONS:
// - Pension, training fund and personal portfolio balances share a single
//   user-declared stock percentage; per-vehicle allocations are not modeled.
// - Stock and bond buckets split 60/40 between their two assets by
//   convention (domestic/international, government/corporate).
// - The glide path reduces equity by up to 20 percentage points linearly
//   over the 35 years before retirement; freed equity flows 70/30 into
//   government and corporate bonds.

import (
	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/internal/domain"
)

var (
	decimalHundred = decimal.NewFromInt(100)

	domesticSplit      = decimal.NewFromFloat(0.60)
	internationalSplit = decimal.NewFromFloat(0.40)
	governmentSplit    = decimal.NewFromFloat(0.60)
	corporateSplit     = decimal.NewFromFloat(0.40)

	maxEquityReduction  = decimal.NewFromInt(20) // percentage points
	glidePathYears      = decimal.NewFromInt(35)
	reductionToGovSplit = decimal.NewFromFloat(0.70)
	reductionToCorp     = decimal.NewFromFloat(0.30)
)

// Optimizer produces target allocations and rebalancing plans.
type Optimizer struct{}

// NewOptimizer creates an Optimizer.
func NewOptimizer() *Optimizer {
	return &Optimizer{}
}

// ParseCurrentPortfolio derives the current allocation percentages from raw
// vehicle balances and the declared stock percentage. Market-invested
// vehicles (pension, training fund, personal portfolio) split between the
// stock and bond buckets by the declared percentage; real estate and crypto
// map directly to their alternative assets; savings-account cash is cash.
// A household with zero total assets yields an all-zero portfolio.
func (o *Optimizer) ParseCurrentPortfolio(balances domain.VehicleBalances, stockPercentage decimal.Decimal) Portfolio {
	p := NewPortfolio()

	total := balances.Total().Decimal
	if total.IsZero() || total.IsNegative() {
		return p
	}

	invested := balances.Pension.Decimal.
		Add(balances.TrainingFund.Decimal).
		Add(balances.PersonalPortfolio.Decimal)

	stockFraction := stockPercentage.Div(decimalHundred)
	if stockFraction.IsNegative() {
		stockFraction = decimal.Zero
	}
	if stockFraction.GreaterThan(decimal.NewFromInt(1)) {
		stockFraction = decimal.NewFromInt(1)
	}

	stockValue := invested.Mul(stockFraction)
	bondValue := invested.Sub(stockValue)

	pct := func(value decimal.Decimal) decimal.Decimal {
		return value.Div(total).Mul(decimalHundred)
	}

	p.Set(CategoryStocks, AssetDomestic, pct(stockValue.Mul(domesticSplit)))
	p.Set(CategoryStocks, AssetInternational, pct(stockValue.Mul(internationalSplit)))
	p.Set(CategoryBonds, AssetGovernment, pct(bondValue.Mul(governmentSplit)))
	p.Set(CategoryBonds, AssetCorporate, pct(bondValue.Mul(corporateSplit)))
	p.Set(CategoryAlternatives, AssetRealEstate, pct(balances.RealEstate.Decimal))
	p.Set(CategoryAlternatives, AssetCrypto, pct(balances.Crypto.Decimal))
	p.Set(CategoryCash, AssetCash, pct(balances.Cash.Decimal))

	return p.Normalize()
}

// modelPortfolio returns the base allocation for a risk tolerance. Unknown
// tolerances fall back to moderate.
func modelPortfolio(risk domain.RiskTolerance) Portfolio {
	p := NewPortfolio()
	switch risk {
	case domain.RiskConservative:
		p.Set(CategoryStocks, AssetDomestic, decimal.NewFromInt(20))
		p.Set(CategoryStocks, AssetInternational, decimal.NewFromInt(10))
		p.Set(CategoryBonds, AssetGovernment, decimal.NewFromInt(40))
		p.Set(CategoryBonds, AssetCorporate, decimal.NewFromInt(20))
		p.Set(CategoryAlternatives, AssetRealEstate, decimal.NewFromInt(5))
		p.Set(CategoryCash, AssetCash, decimal.NewFromInt(5))
	case domain.RiskAggressive:
		p.Set(CategoryStocks, AssetDomestic, decimal.NewFromInt(45))
		p.Set(CategoryStocks, AssetInternational, decimal.NewFromInt(25))
		p.Set(CategoryBonds, AssetGovernment, decimal.NewFromInt(5))
		p.Set(CategoryBonds, AssetCorporate, decimal.NewFromInt(5))
		p.Set(CategoryAlternatives, AssetRealEstate, decimal.NewFromInt(10))
		p.Set(CategoryAlternatives, AssetCrypto, decimal.NewFromInt(5))
		p.Set(CategoryCash, AssetCash, decimal.NewFromInt(5))
	default:
		p.Set(CategoryStocks, AssetDomestic, decimal.NewFromInt(35))
		p.Set(CategoryStocks, AssetInternational, decimal.NewFromInt(20))
		p.Set(CategoryBonds, AssetGovernment, decimal.NewFromInt(20))
		p.Set(CategoryBonds, AssetCorporate, decimal.NewFromInt(10))
		p.Set(CategoryAlternatives, AssetRealEstate, decimal.NewFromInt(10))
		p.Set(CategoryCash, AssetCash, decimal.NewFromInt(5))
	}
	return p
}

// CalculateOptimalAllocation builds the target allocation: the model
// portfolio for the risk tolerance, equity reduced along the glide path as
// retirement approaches, the reduction redirected into bonds, and the
// result renormalized to 100.
func (o *Optimizer) CalculateOptimalAllocation(age, retirementAge int, risk domain.RiskTolerance) Portfolio {
	p := modelPortfolio(risk)

	yearsToRetirement := retirementAge - age
	if yearsToRetirement < 0 {
		yearsToRetirement = 0
	}

	progress := decimal.NewFromInt(1).Sub(
		decimal.Min(decimal.NewFromInt(1), decimal.NewFromInt(int64(yearsToRetirement)).Div(glidePathYears)))
	reduction := maxEquityReduction.Mul(progress)
	if reduction.IsZero() {
		return p.Normalize()
	}

	equity := p.CategoryTotal(CategoryStocks)
	if reduction.GreaterThan(equity) {
		reduction = equity
	}
	if equity.IsPositive() {
		// Trim each stock asset proportionally to its share of equity.
		factor := equity.Sub(reduction).Div(equity)
		for asset, pct := range p[CategoryStocks] {
			p[CategoryStocks][asset] = pct.Mul(factor)
		}
	}

	p.Set(CategoryBonds, AssetGovernment,
		p.Get(CategoryBonds, AssetGovernment).Add(reduction.Mul(reductionToGovSplit)))
	p.Set(CategoryBonds, AssetCorporate,
		p.Get(CategoryBonds, AssetCorporate).Add(reduction.Mul(reductionToCorp)))

	return p.Normalize()
}
