package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/internal/calculation"
	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/internal/transform"
)

// CompareEngine runs scenario templates through the calculation engine.
type CompareEngine struct {
	engine    *calculation.CalculationEngine
	templates *transform.TemplateRegistry
}

// NewCompareEngine creates a comparison engine around a calculation engine.
func NewCompareEngine(engine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		engine:    engine,
		templates: transform.CreateBuiltInTemplates(),
	}
}

// Compare evaluates the base plan and each named template against it.
// Unknown template names error before any calculation runs.
func (ce *CompareEngine) Compare(household domain.Household, templateNames []string) (*ComparisonSet, error) {
	if len(templateNames) == 0 {
		return nil, fmt.Errorf("no templates to compare; available: %v", ce.templates.List())
	}

	templates := make([]transform.Template, 0, len(templateNames))
	for _, name := range templateNames {
		t, ok := ce.templates.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown template %q; available: %v", name, ce.templates.List())
		}
		templates = append(templates, t)
	}

	base := summarize("base", "Current plan unchanged", household, ce.engine.CalculateRetirement(household))

	set := &ComparisonSet{BaseResult: base}
	for _, t := range templates {
		scenario := t.Apply(household)
		result := summarize(t.Name, t.Description, scenario, ce.engine.CalculateRetirement(scenario))

		result.IncomeDiffFromBase = result.MonthlyIncome.Sub(base.MonthlyIncome).Round(2)
		if base.MonthlyIncome.IsPositive() {
			result.IncomePctFromBase = result.IncomeDiffFromBase.
				Div(base.MonthlyIncome).
				Mul(decimal.NewFromInt(100)).
				Round(1)
		}
		result.SavingsDiffFromBase = result.TotalSavings.Sub(base.TotalSavings).Round(2)

		set.AlternativeResults = append(set.AlternativeResults, result)
	}

	set.Recommendations = ce.recommend(set)
	return set, nil
}

func summarize(name, description string, household domain.Household, projection domain.ProjectionResult) ComparisonResult {
	return ComparisonResult{
		ScenarioName:   name,
		Description:    description,
		RetirementAge:  household.Primary.RetirementAge,
		TotalSavings:   projection.TotalSavings,
		MonthlyIncome:  projection.MonthlyIncome,
		ReadinessScore: projection.Result.ReadinessScore,
		AchievesTarget: projection.Result.GoalsAnalysis.AchievesTarget,
		Projection:     projection,
	}
}

// recommend derives simple conclusions from the comparison.
func (ce *CompareEngine) recommend(set *ComparisonSet) []string {
	var recs []string

	if !set.BaseResult.AchievesTarget {
		for _, alt := range set.AlternativeResults {
			if alt.AchievesTarget {
				recs = append(recs, fmt.Sprintf(
					"%s closes the income gap (%s more per month)",
					alt.ScenarioName, alt.IncomeDiffFromBase.StringFixed(0)))
			}
		}
		if len(recs) == 0 {
			recs = append(recs, "No compared scenario meets the income target; consider combining changes")
		}
		return recs
	}

	best := set.BaseResult
	for _, alt := range set.AlternativeResults {
		if alt.MonthlyIncome.GreaterThan(best.MonthlyIncome) {
			best = alt
		}
	}
	if best.ScenarioName != set.BaseResult.ScenarioName {
		recs = append(recs, fmt.Sprintf(
			"%s yields the highest monthly income (+%s%%)",
			best.ScenarioName, best.IncomePctFromBase.StringFixed(1)))
	}
	return recs
}
