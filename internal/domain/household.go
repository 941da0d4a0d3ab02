package domain

import (
	"github.com/retplan/retplan/pkg/money"
)

// VehicleBalances holds the accumulated balance of every savings vehicle.
type VehicleBalances struct {
	Pension           money.Money
	TrainingFund      money.Money
	PersonalPortfolio money.Money
	RealEstate        money.Money
	Crypto            money.Money
	Cash              money.Money
}

// Total sums all vehicle balances.
func (vb VehicleBalances) Total() money.Money {
	return vb.Pension.
		Add(vb.TrainingFund).
		Add(vb.PersonalPortfolio).
		Add(vb.RealEstate).
		Add(vb.Crypto).
		Add(vb.Cash)
}

// AdditionalIncome describes the income sources earned on top of salary.
// Amounts are monthly unless named otherwise.
type AdditionalIncome struct {
	AnnualBonus      money.Money
	BonusTaxRate     money.Rate
	RSUUnits         money.Money
	RSUStockPrice    money.Money
	RSUFrequency     RSUFrequency
	RSUTaxRate       money.Rate
	Freelance        money.Money
	FreelanceTaxRate money.Rate
	Rental           money.Money
	RentalTaxRate    money.Rate
	Dividend         money.Money
	DividendTaxRate  money.Rate
}

// WithdrawalTaxRates are the per-vehicle tax rates applied to retirement
// withdrawals. The pension rate comes from the work history instead and the
// training fund is tax-free, so neither appears here.
type WithdrawalTaxRates struct {
	PersonalPortfolio money.Rate
	Crypto            money.Rate
	RealEstate        money.Rate
}

// Expenses captures the household spending picture used for the gap analysis.
type Expenses struct {
	CurrentMonthly   money.Money
	Categories       map[string]money.Money
	YearlyAdjustment money.Rate
}

// Person is the canonical, fully coerced description of one plan member.
// NormalizeHousehold builds it from the raw PlannerInputs shapes; by the time
// a Person exists every numeric has passed through the money constructors.
type Person struct {
	Name          string
	CurrentAge    int
	RetirementAge int

	MonthlySalary            money.Money
	PensionContribution      money.Rate
	TrainingFundContribution money.Rate

	Balances         VehicleBalances
	AdditionalIncome AdditionalIncome
	WithdrawalTaxes  WithdrawalTaxRates
	WorkPeriods      []WorkPeriod
}

// YearsToRetirement returns the remaining accumulation horizon, floored at
// zero for people already past their retirement age.
func (p Person) YearsToRetirement() int {
	if p.RetirementAge <= p.CurrentAge {
		return 0
	}
	return p.RetirementAge - p.CurrentAge
}

// Household is the tagged one-or-two-person variant the engine calculates
// over. Partner is nil for individual plans.
type Household struct {
	Type    PlanningType
	Primary Person
	Partner *Person

	Country           string
	RiskTolerance     RiskTolerance
	StockPercentage   money.Rate
	ExpectedReturn    money.Rate
	AccumulationFees  money.Rate
	InflationRate     money.Rate
	Expenses          Expenses
	TargetReplacement money.Rate
}

// IsCouple reports whether a partner is present.
func (h Household) IsCouple() bool {
	return h.Type == PlanningCouple && h.Partner != nil
}

// NormalizeHousehold maps a raw planner document into the canonical household
// variant. It accepts all three historical partner shapes (nested partner1/
// partner2 blocks, a single nested partner block, and flat partner-prefixed
// fields) and resolves missing values to the documented defaults (zero
// amounts, moderate risk, israel).
func NormalizeHousehold(inputs PlannerInputs) Household {
	h := Household{
		Type:             inputs.PlanningType,
		Country:          inputs.Country,
		RiskTolerance:    inputs.RiskTolerance,
		StockPercentage:  money.RateFromFloat(inputs.StockPercentage).Clamp(0, 100),
		ExpectedReturn:   money.RateFromFloat(inputs.ExpectedAnnualReturn),
		AccumulationFees: money.RateFromFloat(inputs.AccumulationFees),
		InflationRate:    money.RateFromFloat(inputs.InflationRate),
		Expenses: Expenses{
			CurrentMonthly:   money.FromFloat(inputs.CurrentMonthlyExpenses),
			Categories:       coerceCategories(inputs.ExpenseCategories),
			YearlyAdjustment: money.RateFromFloat(inputs.YearlyExpenseAdjustment),
		},
		TargetReplacement: money.RateFromFloat(inputs.TargetReplacementRate),
	}

	if h.Type != PlanningCouple {
		h.Type = PlanningIndividual
	}
	if h.Country == "" {
		h.Country = "israel"
	}
	if !h.RiskTolerance.Valid() {
		h.RiskTolerance = RiskModerate
	}

	h.Primary = primaryPerson(inputs)

	if h.Type == PlanningCouple {
		if partner := partnerPerson(inputs); partner != nil {
			h.Partner = partner
		} else {
			h.Type = PlanningIndividual
		}
	}

	return h
}

// primaryPerson builds the primary plan member. When a partner1 block exists
// it takes precedence over the top-level fields, matching how the wizard
// writes couple documents.
func primaryPerson(inputs PlannerInputs) Person {
	if inputs.Partner1 != nil {
		p := personFromPartnerInputs(*inputs.Partner1)
		if p.CurrentAge == 0 {
			p.CurrentAge = inputs.CurrentAge
		}
		if p.RetirementAge == 0 {
			p.RetirementAge = inputs.RetirementAge
		}
		return p
	}

	p := Person{
		Name:          inputs.Partner1Name,
		CurrentAge:    inputs.CurrentAge,
		RetirementAge: inputs.RetirementAge,

		MonthlySalary:            money.FromFloat(inputs.CurrentMonthlySalary),
		PensionContribution:      money.RateFromFloat(inputs.PensionContributionRate),
		TrainingFundContribution: money.RateFromFloat(inputs.TrainingFundContributionRate),

		Balances: VehicleBalances{
			Pension:           money.FromFloat(inputs.CurrentSavings),
			TrainingFund:      money.FromFloat(inputs.CurrentTrainingFund),
			PersonalPortfolio: money.FromFloat(inputs.CurrentPersonalPortfolio),
			RealEstate:        money.FromFloat(inputs.CurrentRealEstate),
			Crypto:            money.FromFloat(inputs.CurrentCrypto),
			Cash:              money.FromFloat(inputs.CurrentSavingsAccount),
		},
		AdditionalIncome: AdditionalIncome{
			AnnualBonus:      money.FromFloat(inputs.AnnualBonus),
			BonusTaxRate:     money.RateFromFloat(inputs.BonusTaxRate),
			RSUUnits:         money.FromFloat(inputs.RSUUnits),
			RSUStockPrice:    money.FromFloat(inputs.RSUCurrentStockPrice),
			RSUFrequency:     inputs.RSUFrequency,
			RSUTaxRate:       money.RateFromFloat(inputs.RSUTaxRate),
			Freelance:        money.FromFloat(inputs.FreelanceIncome),
			FreelanceTaxRate: money.RateFromFloat(inputs.FreelanceTaxRate),
			Rental:           money.FromFloat(inputs.RentalIncome),
			RentalTaxRate:    money.RateFromFloat(inputs.RentalTaxRate),
			Dividend:         money.FromFloat(inputs.DividendIncome),
			DividendTaxRate:  money.RateFromFloat(inputs.DividendTaxRate),
		},
		WithdrawalTaxes: WithdrawalTaxRates{
			PersonalPortfolio: money.RateFromFloat(inputs.PortfolioTaxRate),
			Crypto:            money.RateFromFloat(inputs.CryptoTaxRate),
			RealEstate:        money.RateFromFloat(inputs.RealEstateTaxRate),
		},
		WorkPeriods: inputs.WorkPeriods,
	}
	// Flat partner1 fields override the top-level ones when present.
	if inputs.Partner1Salary != 0 {
		p.MonthlySalary = money.FromFloat(inputs.Partner1Salary)
	}
	if inputs.Partner1CurrentSavings != 0 {
		p.Balances.Pension = money.FromFloat(inputs.Partner1CurrentSavings)
	}
	if inputs.Partner1CurrentTrainingFund != 0 {
		p.Balances.TrainingFund = money.FromFloat(inputs.Partner1CurrentTrainingFund)
	}
	if inputs.Partner1PersonalPortfolio != 0 {
		p.Balances.PersonalPortfolio = money.FromFloat(inputs.Partner1PersonalPortfolio)
	}
	return p
}

// partnerPerson resolves the second plan member from whichever shape the
// document carries, or nil when no partner data exists.
func partnerPerson(inputs PlannerInputs) *Person {
	var block *PartnerInputs
	switch {
	case inputs.Partner2 != nil:
		block = inputs.Partner2
	case inputs.Partner != nil:
		block = inputs.Partner
	}
	if block != nil {
		p := personFromPartnerInputs(*block)
		if p.CurrentAge == 0 {
			p.CurrentAge = inputs.CurrentAge
		}
		if p.RetirementAge == 0 {
			p.RetirementAge = inputs.RetirementAge
		}
		return &p
	}

	if inputs.Partner2Name == "" && inputs.Partner2Salary == 0 && inputs.Partner2CurrentSavings == 0 {
		return nil
	}
	p := Person{
		Name:          inputs.Partner2Name,
		CurrentAge:    inputs.CurrentAge,
		RetirementAge: inputs.RetirementAge,
		MonthlySalary: money.FromFloat(inputs.Partner2Salary),
		Balances: VehicleBalances{
			Pension:           money.FromFloat(inputs.Partner2CurrentSavings),
			TrainingFund:      money.FromFloat(inputs.Partner2CurrentTrainingFund),
			PersonalPortfolio: money.FromFloat(inputs.Partner2PersonalPortfolio),
		},
	}
	return &p
}

// personFromPartnerInputs coerces a nested partner block.
func personFromPartnerInputs(in PartnerInputs) Person {
	return Person{
		Name:          in.Name,
		CurrentAge:    in.CurrentAge,
		RetirementAge: in.RetirementAge,

		MonthlySalary:            money.FromFloat(in.CurrentMonthlySalary),
		PensionContribution:      money.RateFromFloat(in.PensionContributionRate),
		TrainingFundContribution: money.RateFromFloat(in.TrainingFundContributionRate),

		Balances: VehicleBalances{
			Pension:           money.FromFloat(in.CurrentSavings),
			TrainingFund:      money.FromFloat(in.CurrentTrainingFund),
			PersonalPortfolio: money.FromFloat(in.CurrentPersonalPortfolio),
			RealEstate:        money.FromFloat(in.CurrentRealEstate),
			Crypto:            money.FromFloat(in.CurrentCrypto),
		},
		AdditionalIncome: AdditionalIncome{
			AnnualBonus:      money.FromFloat(in.AnnualBonus),
			BonusTaxRate:     money.RateFromFloat(in.BonusTaxRate),
			RSUUnits:         money.FromFloat(in.RSUUnits),
			RSUStockPrice:    money.FromFloat(in.RSUCurrentStockPrice),
			RSUFrequency:     in.RSUFrequency,
			RSUTaxRate:       money.RateFromFloat(in.RSUTaxRate),
			Freelance:        money.FromFloat(in.FreelanceIncome),
			FreelanceTaxRate: money.RateFromFloat(in.FreelanceTaxRate),
			Rental:           money.FromFloat(in.RentalIncome),
			RentalTaxRate:    money.RateFromFloat(in.RentalTaxRate),
			Dividend:         money.FromFloat(in.DividendIncome),
			DividendTaxRate:  money.RateFromFloat(in.DividendTaxRate),
		},
		WithdrawalTaxes: WithdrawalTaxRates{
			PersonalPortfolio: money.RateFromFloat(in.PortfolioTaxRate),
			Crypto:            money.RateFromFloat(in.CryptoTaxRate),
			RealEstate:        money.RateFromFloat(in.RealEstateTaxRate),
		},
		WorkPeriods: in.WorkPeriods,
	}
}

func coerceCategories(raw map[string]float64) map[string]money.Money {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]money.Money, len(raw))
	for name, amount := range raw {
		out[name] = money.FromFloat(amount)
	}
	return out
}
