package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromFloatNormalizesInvalidValues(t *testing.T) {
	assert.True(t, FromFloat(math.NaN()).IsZero())
	assert.True(t, FromFloat(math.Inf(1)).IsZero())
	assert.True(t, FromFloat(math.Inf(-1)).IsZero())
	assert.True(t, RateFromFloat(math.NaN()).IsZero())
	assert.True(t, RateFromFloat(math.Inf(-1)).IsZero())
}

func TestFromFloatKeepsValidValues(t *testing.T) {
	m := FromFloat(1234.56)
	assert.Equal(t, "1234.56", m.StringFixed(2))
	assert.Equal(t, 1234.56, m.Float())
}

func TestMonthlyAnnualRoundTrip(t *testing.T) {
	annual := FromFloat(120000)
	monthly := annual.Monthly()
	assert.Equal(t, "10000.00", monthly.StringFixed(2))
	assert.True(t, monthly.Annual().Equal(annual.Decimal))
}

func TestAfterTax(t *testing.T) {
	gross := FromFloat(1000)
	net := gross.AfterTax(RateFromFloat(25))
	assert.Equal(t, "750.00", net.StringFixed(2))

	// A zero rate passes through unchanged.
	assert.True(t, gross.AfterTax(Rate{}).Equal(gross.Decimal))
}

func TestClampNonNegative(t *testing.T) {
	assert.True(t, FromFloat(-50).ClampNonNegative().IsZero())
	assert.Equal(t, "50.00", FromFloat(50).ClampNonNegative().StringFixed(2))
}

func TestRateClamp(t *testing.T) {
	assert.Equal(t, "100", RateFromFloat(150).Clamp(0, 100).Percent().String())
	assert.Equal(t, "0", RateFromFloat(-10).Clamp(0, 100).Percent().String())
	assert.Equal(t, "42", RateFromFloat(42).Clamp(0, 100).Percent().String())
}

func TestRateFraction(t *testing.T) {
	assert.True(t, RateFromFloat(40).Fraction().Equal(decimal.NewFromFloat(0.4)))
}

func TestMinMax(t *testing.T) {
	a, b := FromFloat(10), FromFloat(20)
	assert.True(t, Min(a, b).Equal(a.Decimal))
	assert.True(t, Max(a, b).Equal(b.Decimal))
}
