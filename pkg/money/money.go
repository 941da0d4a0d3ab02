// Package money provides the validated numeric types used throughout the
// planning engine. Planner input arrives from browsers and spreadsheets as
// float64 and is frequently absent, NaN or infinite; every value is routed
// through the constructors here so that downstream arithmetic never sees an
// invalid number.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Money represents a monetary amount with financial precision.
type Money struct {
	decimal.Decimal
}

// FromFloat creates a Money from a float64. NaN and ±Inf normalize to zero.
func FromFloat(value float64) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}
	}
	return Money{decimal.NewFromFloat(value)}
}

// FromDecimal wraps an existing decimal value.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Zero returns a zero Money amount.
func Zero() Money {
	return Money{}
}

// Round rounds the amount to cents.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(twelve)}
}

// Monthly converts an annual amount to monthly.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(twelve)}
}

// AfterTax applies a tax rate, returning the net amount.
func (m Money) AfterTax(rate Rate) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(1).Sub(rate.Fraction()))}
}

// Add adds another Money amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// ClampNonNegative floors the amount at zero.
func (m Money) ClampNonNegative() Money {
	if m.Decimal.IsNegative() {
		return Money{}
	}
	return m
}

// Float returns the amount as a float64 for display and JSON encoding.
func (m Money) Float() float64 {
	f, _ := m.Decimal.Float64()
	return f
}

// Min returns the smaller of two amounts.
func Min(a, b Money) Money {
	if a.Decimal.LessThan(b.Decimal) {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b Money) Money {
	if a.Decimal.GreaterThan(b.Decimal) {
		return a
	}
	return b
}

// Rate is a percentage expressed in whole points (40 means 40%). Like Money,
// invalid floats normalize to zero at construction.
type Rate struct {
	decimal.Decimal
}

// RateFromFloat creates a Rate from a percentage value. NaN and ±Inf
// normalize to zero.
func RateFromFloat(percent float64) Rate {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return Rate{}
	}
	return Rate{decimal.NewFromFloat(percent)}
}

// RateFromDecimal wraps an existing decimal percentage.
func RateFromDecimal(d decimal.Decimal) Rate {
	return Rate{d}
}

// Fraction returns the rate as a fraction of one (40% -> 0.40).
func (r Rate) Fraction() decimal.Decimal {
	return r.Decimal.Div(hundred)
}

// Percent returns the rate in whole points.
func (r Rate) Percent() decimal.Decimal {
	return r.Decimal
}

// Clamp bounds the rate to [min, max] points.
func (r Rate) Clamp(min, max float64) Rate {
	lo := decimal.NewFromFloat(min)
	hi := decimal.NewFromFloat(max)
	if r.Decimal.LessThan(lo) {
		return Rate{lo}
	}
	if r.Decimal.GreaterThan(hi) {
		return Rate{hi}
	}
	return r
}

// Float returns the rate in whole points as a float64.
func (r Rate) Float() float64 {
	f, _ := r.Decimal.Float64()
	return f
}
