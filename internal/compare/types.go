// Package compare evaluates what-if scenario templates against a base plan
// and formats the results side by side.
package compare

import (
	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/internal/domain"
)

// ComparisonResult is one scenario's headline numbers plus its deltas
// against the base plan.
type ComparisonResult struct {
	ScenarioName string `json:"scenarioName"`
	Description  string `json:"description"`

	RetirementAge  int             `json:"retirementAge"`
	TotalSavings   decimal.Decimal `json:"totalSavings"`
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome"`
	ReadinessScore int             `json:"readinessScore"`
	AchievesTarget bool            `json:"achievesTarget"`

	IncomeDiffFromBase  decimal.Decimal `json:"incomeDiffFromBase"`
	IncomePctFromBase   decimal.Decimal `json:"incomePctFromBase"`
	SavingsDiffFromBase decimal.Decimal `json:"savingsDiffFromBase"`

	Projection domain.ProjectionResult `json:"-"`
}

// ComparisonSet is the base result plus every alternative.
type ComparisonSet struct {
	BaseResult         ComparisonResult   `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	InputPath          string             `json:"inputPath,omitempty"`
}
