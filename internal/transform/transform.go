// Package transform builds what-if variants of a household: each transform
// is a small, composable edit (retire later, save more, pay lower fees) that
// the comparison engine applies to produce alternative scenarios.
package transform

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/pkg/money"
)

// ScenarioTransform is one edit applied to a household. Apply must not
// mutate its input; it returns the edited copy.
type ScenarioTransform interface {
	Name() string
	Describe() string
	Apply(h domain.Household) domain.Household
}

// ShiftRetirementAge moves the retirement age of both members by a signed
// number of years.
type ShiftRetirementAge struct {
	Years int
}

func (t *ShiftRetirementAge) Name() string { return "shift_retirement_age" }

func (t *ShiftRetirementAge) Describe() string {
	if t.Years < 0 {
		return fmt.Sprintf("Retire %d years earlier", -t.Years)
	}
	return fmt.Sprintf("Postpone retirement by %d years", t.Years)
}

func (t *ShiftRetirementAge) Apply(h domain.Household) domain.Household {
	h.Primary.RetirementAge += t.Years
	if h.Primary.RetirementAge < h.Primary.CurrentAge {
		h.Primary.RetirementAge = h.Primary.CurrentAge
	}
	if h.Partner != nil {
		partner := *h.Partner
		partner.RetirementAge += t.Years
		if partner.RetirementAge < partner.CurrentAge {
			partner.RetirementAge = partner.CurrentAge
		}
		h.Partner = &partner
	}
	return h
}

// BoostPensionContribution raises the pension contribution rate by a number
// of percentage points, both members.
type BoostPensionContribution struct {
	Points float64
}

func (t *BoostPensionContribution) Name() string { return "boost_pension_contribution" }

func (t *BoostPensionContribution) Describe() string {
	return fmt.Sprintf("Raise pension contributions by %.1f points", t.Points)
}

func (t *BoostPensionContribution) Apply(h domain.Household) domain.Household {
	delta := decimal.NewFromFloat(t.Points)
	h.Primary.PensionContribution = money.RateFromDecimal(
		h.Primary.PensionContribution.Percent().Add(delta)).Clamp(0, 100)
	if h.Partner != nil {
		partner := *h.Partner
		partner.PensionContribution = money.RateFromDecimal(
			partner.PensionContribution.Percent().Add(delta)).Clamp(0, 100)
		h.Partner = &partner
	}
	return h
}

// ReduceFees lowers the accumulation fee rate by a number of percentage
// points, floored at zero.
type ReduceFees struct {
	Points float64
}

func (t *ReduceFees) Name() string { return "reduce_fees" }

func (t *ReduceFees) Describe() string {
	return fmt.Sprintf("Cut accumulation fees by %.2f points", t.Points)
}

func (t *ReduceFees) Apply(h domain.Household) domain.Household {
	reduced := h.AccumulationFees.Percent().Sub(decimal.NewFromFloat(t.Points))
	if reduced.IsNegative() {
		reduced = decimal.Zero
	}
	h.AccumulationFees = money.RateFromDecimal(reduced)
	return h
}

// SetRiskTolerance swaps the model portfolio family.
type SetRiskTolerance struct {
	Tolerance domain.RiskTolerance
}

func (t *SetRiskTolerance) Name() string { return "set_risk_tolerance" }

func (t *SetRiskTolerance) Describe() string {
	return fmt.Sprintf("Switch to a %s allocation", t.Tolerance)
}

func (t *SetRiskTolerance) Apply(h domain.Household) domain.Household {
	if t.Tolerance.Valid() {
		h.RiskTolerance = t.Tolerance
	}
	return h
}

// SetExpectedReturn overrides the expected annual return assumption.
type SetExpectedReturn struct {
	Percent float64
}

func (t *SetExpectedReturn) Name() string { return "set_expected_return" }

func (t *SetExpectedReturn) Describe() string {
	return fmt.Sprintf("Assume a %.1f%% annual return", t.Percent)
}

func (t *SetExpectedReturn) Apply(h domain.Household) domain.Household {
	h.ExpectedReturn = money.RateFromFloat(t.Percent)
	return h
}
