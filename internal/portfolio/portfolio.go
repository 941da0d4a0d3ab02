package portfolio

import (
	"github.com/shopspring/decimal"
)

// Portfolio holds allocation percentages keyed by category and asset.
// Values are percentage points; a well formed portfolio sums to 100.
type Portfolio map[string]map[string]decimal.Decimal

// NewPortfolio returns an empty portfolio with every known category present.
func NewPortfolio() Portfolio {
	p := make(Portfolio, len(AssetClasses))
	for category := range AssetClasses {
		p[category] = make(map[string]decimal.Decimal)
	}
	return p
}

// Get returns the allocation for a category.asset cell, zero when absent.
func (p Portfolio) Get(category, asset string) decimal.Decimal {
	assets, ok := p[category]
	if !ok {
		return decimal.Zero
	}
	return assets[asset]
}

// Set stores an allocation, creating the category bucket on demand.
func (p Portfolio) Set(category, asset string, pct decimal.Decimal) {
	assets, ok := p[category]
	if !ok {
		assets = make(map[string]decimal.Decimal)
		p[category] = assets
	}
	assets[asset] = pct
}

// Total sums every allocation cell.
func (p Portfolio) Total() decimal.Decimal {
	total := decimal.Zero
	for _, assets := range p {
		for _, pct := range assets {
			total = total.Add(pct)
		}
	}
	return total
}

// CategoryTotal sums the allocations within one category.
func (p Portfolio) CategoryTotal(category string) decimal.Decimal {
	total := decimal.Zero
	for _, pct := range p[category] {
		total = total.Add(pct)
	}
	return total
}

// Normalize rescales the portfolio so cells sum to exactly 100. A portfolio
// with a zero total is returned unchanged.
func (p Portfolio) Normalize() Portfolio {
	total := p.Total()
	if total.IsZero() {
		return p
	}
	factor := decimal.NewFromInt(100).Div(total)
	for category, assets := range p {
		for asset, pct := range assets {
			p[category][asset] = pct.Mul(factor)
		}
	}
	return p
}

// Clone returns a deep copy.
func (p Portfolio) Clone() Portfolio {
	out := make(Portfolio, len(p))
	for category, assets := range p {
		bucket := make(map[string]decimal.Decimal, len(assets))
		for asset, pct := range assets {
			bucket[asset] = pct
		}
		out[category] = bucket
	}
	return out
}
