package portfolio

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retplan/retplan/pkg/money"
)

func TestRebalancingFlagsLargeDrift(t *testing.T) {
	o := NewOptimizer()
	current := NewPortfolio()
	current.Set(CategoryStocks, AssetDomestic, decimal.NewFromInt(50))
	current.Set(CategoryBonds, AssetGovernment, decimal.NewFromInt(50))
	optimal := NewPortfolio()
	optimal.Set(CategoryStocks, AssetDomestic, decimal.NewFromInt(40))
	optimal.Set(CategoryBonds, AssetGovernment, decimal.NewFromInt(50))

	actions := o.CalculateRebalancing(current, optimal, money.FromFloat(500000))
	require.Len(t, actions, 1)

	act := actions[0]
	assert.Equal(t, CategoryStocks, act.Category)
	assert.Equal(t, AssetDomestic, act.Asset)
	assert.Equal(t, ActionSell, act.Action)
	assert.Equal(t, PriorityHigh, act.Priority)
	assert.Equal(t, "-10.00", act.DifferencePercentage.StringFixed(2))
	assert.Equal(t, "50000", act.Amount.String())
}

func TestRebalancingIgnoresSmallDrift(t *testing.T) {
	o := NewOptimizer()
	current := NewPortfolio()
	current.Set(CategoryStocks, AssetDomestic, decimal.NewFromFloat(42.1))
	optimal := NewPortfolio()
	optimal.Set(CategoryStocks, AssetDomestic, decimal.NewFromInt(40))

	actions := o.CalculateRebalancing(current, optimal, money.FromFloat(100000))
	assert.Empty(t, actions)
}

func TestRebalancingPriorityBoundaries(t *testing.T) {
	o := NewOptimizer()
	current := NewPortfolio()
	current.Set(CategoryStocks, AssetDomestic, decimal.NewFromInt(45))
	current.Set(CategoryBonds, AssetGovernment, decimal.NewFromFloat(30.5))
	optimal := NewPortfolio()
	optimal.Set(CategoryStocks, AssetDomestic, decimal.NewFromInt(35))
	optimal.Set(CategoryBonds, AssetGovernment, decimal.NewFromFloat(25.5))

	actions := o.CalculateRebalancing(current, optimal, money.FromFloat(100000))
	require.Len(t, actions, 2)

	// Ten points of drift is high priority, five is medium.
	assert.Equal(t, PriorityHigh, actions[0].Priority)
	assert.Equal(t, AssetDomestic, actions[0].Asset)
	assert.Equal(t, PriorityMedium, actions[1].Priority)
	assert.Equal(t, AssetGovernment, actions[1].Asset)
}

func TestRebalancingSortsByPriorityThenMagnitude(t *testing.T) {
	o := NewOptimizer()
	current := NewPortfolio()
	current.Set(CategoryStocks, AssetDomestic, decimal.NewFromInt(55))
	current.Set(CategoryBonds, AssetGovernment, decimal.NewFromInt(10))
	current.Set(CategoryAlternatives, AssetCrypto, decimal.NewFromInt(0))
	optimal := NewPortfolio()
	optimal.Set(CategoryStocks, AssetDomestic, decimal.NewFromInt(35))
	optimal.Set(CategoryBonds, AssetGovernment, decimal.NewFromInt(22))
	optimal.Set(CategoryAlternatives, AssetCrypto, decimal.NewFromInt(6))

	actions := o.CalculateRebalancing(current, optimal, money.FromFloat(100000))
	require.Len(t, actions, 3)

	assert.Equal(t, AssetDomestic, actions[0].Asset)
	assert.Equal(t, AssetGovernment, actions[1].Asset)
	assert.Equal(t, AssetCrypto, actions[2].Asset)
	assert.Equal(t, PriorityMedium, actions[2].Priority)
}

func TestRebalancingAlignedPortfolioNeedsNothing(t *testing.T) {
	o := NewOptimizer()
	p := modelPortfolio("moderate")
	actions := o.CalculateRebalancing(p, p.Clone(), money.FromFloat(250000))
	assert.Empty(t, actions)
}
