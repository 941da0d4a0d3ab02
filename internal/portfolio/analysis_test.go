package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retplan/retplan/internal/domain"
)

func TestAnalyzeRunsFullPipeline(t *testing.T) {
	o := NewOptimizer()
	household := domain.NormalizeHousehold(domain.PlannerInputs{
		CurrentAge:            40,
		RetirementAge:         65,
		CurrentSavings:        400000,
		CurrentSavingsAccount: 100000,
		StockPercentage:       80,
		RiskTolerance:         domain.RiskAggressive,
	})

	analysis := o.Analyze(household)

	assert.Equal(t, "500000", analysis.TotalAssets.String())
	assertSumsToHundred(t, analysis.CurrentPortfolio)
	assertSumsToHundred(t, analysis.OptimalAllocation)
	require.NotEmpty(t, analysis.Rebalancing)
	assert.True(t, analysis.Metrics.Volatility.IsPositive())
	assert.True(t, analysis.OptimalMetrics.ExpectedReturn.IsPositive())
}

func TestAnalyzeEmptyHousehold(t *testing.T) {
	o := NewOptimizer()
	analysis := o.Analyze(domain.NormalizeHousehold(domain.PlannerInputs{}))

	assert.True(t, analysis.TotalAssets.IsZero())
	assert.True(t, analysis.CurrentPortfolio.Total().IsZero())
	// The target allocation is always defined, even with nothing saved.
	assertSumsToHundred(t, analysis.OptimalAllocation)
}
