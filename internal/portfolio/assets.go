// Package portfolio implements the allocation optimizer: asset-class
// reference data, age and risk based model portfolios, rebalancing deltas,
// portfolio metrics and the rule-based recommendations derived from them.
package portfolio

import (
	"github.com/shopspring/decimal"
)

// Asset category and name keys. The category.asset pair addresses one cell
// of a Portfolio.
const (
	CategoryStocks       = "stocks"
	CategoryBonds        = "bonds"
	CategoryAlternatives = "alternatives"
	CategoryCash         = "cash"

	AssetDomestic      = "domestic"
	AssetInternational = "international"
	AssetGovernment    = "government"
	AssetCorporate     = "corporate"
	AssetRealEstate    = "realEstate"
	AssetCrypto        = "crypto"
	AssetCash          = "cash"
)

// AssetClass is the static reference data for one investable asset class.
// Correlation is measured against the domestic equity market; it is carried
// for completeness but the volatility model below does not use it yet (the
// historical formula assumes independence; see CalculatePortfolioMetrics).
type AssetClass struct {
	Name           string
	ExpectedReturn decimal.Decimal // percent per year
	Volatility     decimal.Decimal // percent
	Correlation    decimal.Decimal // vs domestic equities
}

// AssetClasses is the category -> asset reference table.
var AssetClasses = map[string]map[string]AssetClass{
	CategoryStocks: {
		AssetDomestic: {
			Name:           "Domestic Stocks",
			ExpectedReturn: decimal.NewFromFloat(8.0),
			Volatility:     decimal.NewFromFloat(18.0),
			Correlation:    decimal.NewFromFloat(1.0),
		},
		AssetInternational: {
			Name:           "International Stocks",
			ExpectedReturn: decimal.NewFromFloat(7.5),
			Volatility:     decimal.NewFromFloat(20.0),
			Correlation:    decimal.NewFromFloat(0.85),
		},
	},
	CategoryBonds: {
		AssetGovernment: {
			Name:           "Government Bonds",
			ExpectedReturn: decimal.NewFromFloat(3.5),
			Volatility:     decimal.NewFromFloat(5.0),
			Correlation:    decimal.NewFromFloat(-0.2),
		},
		AssetCorporate: {
			Name:           "Corporate Bonds",
			ExpectedReturn: decimal.NewFromFloat(4.5),
			Volatility:     decimal.NewFromFloat(8.0),
			Correlation:    decimal.NewFromFloat(0.3),
		},
	},
	CategoryAlternatives: {
		AssetRealEstate: {
			Name:           "Real Estate",
			ExpectedReturn: decimal.NewFromFloat(6.0),
			Volatility:     decimal.NewFromFloat(14.0),
			Correlation:    decimal.NewFromFloat(0.6),
		},
		AssetCrypto: {
			Name:           "Crypto",
			ExpectedReturn: decimal.NewFromFloat(12.0),
			Volatility:     decimal.NewFromFloat(60.0),
			Correlation:    decimal.NewFromFloat(0.35),
		},
	},
	CategoryCash: {
		AssetCash: {
			Name:           "Cash",
			ExpectedReturn: decimal.NewFromFloat(1.5),
			Volatility:     decimal.NewFromFloat(0.5),
			Correlation:    decimal.Zero,
		},
	},
}

// LookupAsset returns the reference data for a category.asset pair.
func LookupAsset(category, asset string) (AssetClass, bool) {
	assets, ok := AssetClasses[category]
	if !ok {
		return AssetClass{}, false
	}
	ac, ok := assets[asset]
	return ac, ok
}
