package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/pkg/money"
)

// INFLATION CALCULATION ASSUMPTIONS:
//
// 1. Real values use simple discounting: nominal / (1+rate)^years.
//    The denominator is clamped away from zero so a -100% rate cannot
//    divide by zero.
//
// 2. Real returns use the Fisher relation (1+nominal)/(1+inflation) - 1,
//    not the nominal-minus-inflation approximation.
//
// 3. The protection score is a balance-weighted heuristic over how well each
//    vehicle historically tracks inflation. It is a 0-100 indicator, not a
//    forecast.

var minDiscountBase = decimal.NewFromFloat(0.01)

// InflationCalculator computes real (inflation-adjusted) values and the
// inflation protection heuristics. All methods are pure and total: no input
// can cause an error or a non-finite result.
type InflationCalculator struct{}

// NewInflationCalculator creates a new inflation calculator.
func NewInflationCalculator() *InflationCalculator {
	return &InflationCalculator{}
}

// AdjustForInflation discounts a nominal amount to today's purchasing power:
// nominal / (1+rate/100)^years. A zero horizon returns the nominal unchanged.
func (ic *InflationCalculator) AdjustForInflation(nominal money.Money, rate money.Rate, years int) money.Money {
	if years <= 0 {
		return nominal
	}
	base := decimal.NewFromInt(1).Add(rate.Fraction())
	if base.LessThan(minDiscountBase) {
		base = minDiscountBase
	}
	divisor := base.Pow(decimal.NewFromInt(int64(years)))
	return money.FromDecimal(nominal.Decimal.Div(divisor))
}

// PurchasingPowerErosion returns the percentage of purchasing power lost over
// the horizon at the given rate.
func (ic *InflationCalculator) PurchasingPowerErosion(rate money.Rate, years int) decimal.Decimal {
	one := money.FromFloat(1)
	real := ic.AdjustForInflation(one, rate, years)
	erosion := decimal.NewFromInt(1).Sub(real.Decimal).Mul(decimal.NewFromInt(100))
	if erosion.IsNegative() {
		return decimal.Zero
	}
	return erosion.Round(2)
}

// Inflation-resistance weights per vehicle. Real assets and equities track
// inflation; cash does not.
var protectionWeights = []struct {
	weight decimal.Decimal
	pick   func(domain.VehicleBalances) decimal.Decimal
}{
	{decimal.NewFromInt(90), func(b domain.VehicleBalances) decimal.Decimal { return b.RealEstate.Decimal }},
	{decimal.NewFromInt(80), func(b domain.VehicleBalances) decimal.Decimal { return b.PersonalPortfolio.Decimal }},
	{decimal.NewFromInt(70), func(b domain.VehicleBalances) decimal.Decimal { return b.Pension.Decimal }},
	{decimal.NewFromInt(60), func(b domain.VehicleBalances) decimal.Decimal { return b.TrainingFund.Decimal }},
	{decimal.NewFromInt(50), func(b domain.VehicleBalances) decimal.Decimal { return b.Crypto.Decimal }},
	{decimal.NewFromInt(10), func(b domain.VehicleBalances) decimal.Decimal { return b.Cash.Decimal }},
}

// CalculateInflationProtection scores how well a balance mix preserves
// purchasing power, in [0,100]. An empty balance sheet scores a neutral 50.
func (ic *InflationCalculator) CalculateInflationProtection(balances domain.VehicleBalances) decimal.Decimal {
	total := balances.Total().Decimal
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.NewFromInt(50)
	}

	var weighted decimal.Decimal
	for _, pw := range protectionWeights {
		amount := pw.pick(balances)
		if amount.IsPositive() {
			weighted = weighted.Add(pw.weight.Mul(amount))
		}
	}

	score := weighted.Div(total)
	if score.GreaterThan(decimal.NewFromInt(100)) {
		score = decimal.NewFromInt(100)
	}
	if score.IsNegative() {
		score = decimal.Zero
	}
	return score.Round(1)
}

// CalculateRealReturns converts nominal per-vehicle returns into real returns
// via the Fisher relation. Keys are preserved; the input map is not mutated.
func (ic *InflationCalculator) CalculateRealReturns(nominal map[string]money.Rate, inflation money.Rate) map[string]money.Rate {
	base := decimal.NewFromInt(1).Add(inflation.Fraction())
	if base.LessThan(minDiscountBase) {
		base = minDiscountBase
	}

	real := make(map[string]money.Rate, len(nominal))
	for vehicle, rate := range nominal {
		grown := decimal.NewFromInt(1).Add(rate.Fraction())
		fisher := grown.Div(base).Sub(decimal.NewFromInt(1))
		real[vehicle] = money.RateFromDecimal(fisher.Mul(decimal.NewFromInt(100)).Round(4))
	}
	return real
}
