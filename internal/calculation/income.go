package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/internal/countries"
	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/pkg/money"
)

// RETIREMENT INCOME ASSUMPTIONS:
//
// 1. Withdrawal rates are flat annual percentages of the accumulated balance:
//    4% for pension, personal portfolio, crypto and real estate, 5% for the
//    training fund (shorter vesting, earlier drawdown). Divided by 12 for
//    monthly figures.
//
// 2. The pension tax rate is the contribution-weighted average across all
//    work periods. A career with no usable periods falls back to the first
//    period's country rate, then to a flat 25%.
//
// 3. Training fund withdrawals are tax-free. Portfolio, crypto and real
//    estate use their configured per-vehicle rates.
//
// 4. Social security resolves from the chronologically last work period's
//    country; partners are assumed to share that country.
//
// 5. Auxiliary analyses (inflation, tax optimization) are non-fatal by
//    design: on failure the corresponding result field is null and the core
//    numbers are still returned.

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)

	withdrawalRateStandard     = decimal.NewFromFloat(0.04) // pension, portfolio, crypto, real estate
	withdrawalRateTrainingFund = decimal.NewFromFloat(0.05)

	fallbackPensionTaxRate = decimal.NewFromInt(25) // percent
)

// IncomeParams are the inputs to the income calculation: the normalized
// household plus the per-person balances to draw from (typically the
// projected balances at retirement age).
type IncomeParams struct {
	Household         domain.Household
	Balances          domain.VehicleBalances
	PartnerBalances   *domain.VehicleBalances
	YearsToRetirement int
}

// RetirementIncomeCalculator aggregates every income source into the single
// consistent retirement readiness result.
type RetirementIncomeCalculator struct {
	Taxes     *AdditionalIncomeTaxCalculator
	Inflation *InflationCalculator
	Logger    Logger
}

// NewRetirementIncomeCalculator creates an income calculator with the default
// collaborators.
func NewRetirementIncomeCalculator() *RetirementIncomeCalculator {
	return &RetirementIncomeCalculator{
		Taxes:     NewAdditionalIncomeTaxCalculator(),
		Inflation: NewInflationCalculator(),
		Logger:    NopLogger{},
	}
}

// SetLogger replaces the calculator's logger. A nil logger becomes a no-op.
func (c *RetirementIncomeCalculator) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	c.Logger = logger
}

// CalculateRetirementIncome computes monthly and annual net income by source,
// the expense projection, the target gap and the readiness score. It is a
// pure function over its params: no input can make it error or panic.
func (c *RetirementIncomeCalculator) CalculateRetirementIncome(params IncomeParams) domain.CalculationResult {
	household := params.Household
	primary := household.Primary

	weightedTaxRate := c.WeightedPensionTaxRate(primary.WorkPeriods)

	bySource, withheld := c.vehicleIncome(params.Balances, weightedTaxRate, primary.WithdrawalTaxes)

	ssCountry := c.socialSecurityCountry(primary.WorkPeriods, household.Country)
	ssRules := countries.Lookup(ssCountry)
	ssMonthly := c.stateBenefit(ssRules, primary.WorkPeriods)
	bySource.SocialSecurity = ssMonthly.Round(2)

	// Additional income through the tax component, with a simplified
	// gross-based approximation when the component is absent.
	primaryAdditional, partnerAdditional := c.additionalIncome(household)
	bySource.AdditionalIncome = primaryAdditional.TotalMonthlyNet
	withheld.AdditionalIncome = primaryAdditional.TotalMonthlyTax

	// Partner mirror: same weighted tax rate, same social security country.
	// Partner balances are optional; the partner's additional income and the
	// shared state benefit apply either way.
	if household.IsCouple() {
		partnerTotal := partnerAdditional.TotalMonthlyNet.Add(ssMonthly)
		partnerTax := partnerAdditional.TotalMonthlyTax
		if params.PartnerBalances != nil {
			partnerBySource, partnerWithheld := c.vehicleIncome(*params.PartnerBalances, weightedTaxRate, household.Partner.WithdrawalTaxes)
			partnerTotal = partnerTotal.Add(partnerBySource.Sum())
			partnerTax = partnerTax.Add(partnerWithheld.Sum())
		}
		bySource.Partner = partnerTotal.Round(2)
		withheld.Partner = partnerTax.Round(2)
	}

	totalMonthly := bySource.Sum().Round(2)

	futureExpenses := c.futureMonthlyExpenses(household.Expenses, params.YearsToRetirement)
	remaining := totalMonthly.Sub(futureExpenses).Round(2)

	target := c.targetMonthlyIncome(household)
	gap := target.Sub(totalMonthly).Round(2)

	result := domain.CalculationResult{
		RetirementIncome: domain.RetirementIncome{
			BySource:    bySource,
			TaxWithheld: withheld,
			Total: domain.IncomeTotal{
				Monthly: totalMonthly,
				Annual:  totalMonthly.Mul(decimalTwelve).Round(2),
			},
		},
		Expenses: domain.ExpenseProjection{
			FutureMonthly:          futureExpenses,
			RemainingAfterExpenses: remaining,
		},
		GoalsAnalysis: domain.GoalsAnalysis{
			TargetMonthlyIncome: target,
			Gap:                 gap,
			AchievesTarget:      totalMonthly.GreaterThanOrEqual(target) && target.IsPositive(),
			Status:              GoalStatus(totalMonthly, target),
		},
		ReadinessScore:        CalculateReadinessScore(totalMonthly, target),
		WeightedTaxRate:       weightedTaxRate.Round(2),
		SocialSecurityCountry: ssRules.Key,
	}

	// Auxiliary analyses never abort the primary result.
	result.InflationAnalysis = c.safeInflationAnalysis(household, params, totalMonthly)
	result.TaxOptimization = c.safeTaxOptimization(result)

	return result
}

// vehicleIncome computes gross withdrawals per vehicle and nets them against
// the applicable tax rates. Training fund income is tax-free.
func (c *RetirementIncomeCalculator) vehicleIncome(balances domain.VehicleBalances, pensionTaxRate decimal.Decimal, taxes domain.WithdrawalTaxRates) (domain.IncomeBySource, domain.IncomeBySource) {
	grossPension := monthlyWithdrawal(balances.Pension, withdrawalRateStandard)
	grossTrainingFund := monthlyWithdrawal(balances.TrainingFund, withdrawalRateTrainingFund)
	grossPortfolio := monthlyWithdrawal(balances.PersonalPortfolio, withdrawalRateStandard)
	grossCrypto := monthlyWithdrawal(balances.Crypto, withdrawalRateStandard)
	grossRealEstate := monthlyWithdrawal(balances.RealEstate, withdrawalRateStandard)

	pensionTax := grossPension.Mul(pensionTaxRate.Div(decimalHundred))
	portfolioTax := grossPortfolio.Mul(taxes.PersonalPortfolio.Fraction())
	cryptoTax := grossCrypto.Mul(taxes.Crypto.Fraction())
	realEstateTax := grossRealEstate.Mul(taxes.RealEstate.Fraction())

	net := domain.IncomeBySource{
		Pension:           grossPension.Sub(pensionTax).Round(2),
		TrainingFund:      grossTrainingFund.Round(2),
		PersonalPortfolio: grossPortfolio.Sub(portfolioTax).Round(2),
		Crypto:            grossCrypto.Sub(cryptoTax).Round(2),
		RealEstate:        grossRealEstate.Sub(realEstateTax).Round(2),
	}
	withheld := domain.IncomeBySource{
		Pension:           pensionTax.Round(2),
		PersonalPortfolio: portfolioTax.Round(2),
		Crypto:            cryptoTax.Round(2),
		RealEstate:        realEstateTax.Round(2),
	}
	return net, withheld
}

// WeightedPensionTaxRate computes the contribution-weighted average pension
// tax rate across a work history, in percent. Zero total weight falls back to
// the first period's country rate, then to 25%.
func (c *RetirementIncomeCalculator) WeightedPensionTaxRate(periods []domain.WorkPeriod) decimal.Decimal {
	sorted := domain.SortWorkPeriods(periods)

	var weightedSum, totalWeight decimal.Decimal
	for _, period := range sorted {
		weight := period.ContributionGrowth()
		if weight.LessThanOrEqual(decimal.Zero) {
			continue
		}
		rate := countries.Lookup(period.Country).PensionTaxRate
		weightedSum = weightedSum.Add(rate.Mul(weight))
		totalWeight = totalWeight.Add(weight)
	}

	if totalWeight.IsPositive() {
		return weightedSum.Div(totalWeight)
	}
	if len(sorted) > 0 {
		return countries.Lookup(sorted[0].Country).PensionTaxRate
	}
	return fallbackPensionTaxRate
}

// socialSecurityCountry resolves where state benefits are drawn from: the
// chronologically last work period's country, else the household country.
func (c *RetirementIncomeCalculator) socialSecurityCountry(periods []domain.WorkPeriod, householdCountry string) string {
	if len(periods) > 0 {
		sorted := domain.SortWorkPeriods(periods)
		return sorted[len(sorted)-1].Country
	}
	return householdCountry
}

// stateBenefit returns the flat monthly state benefit, or zero when no work
// history is on record: benefits accrue through employment, so a household
// that never worked has no entitlement.
func (c *RetirementIncomeCalculator) stateBenefit(rules countries.Rules, periods []domain.WorkPeriod) decimal.Decimal {
	if len(periods) == 0 {
		return decimal.Zero
	}
	return rules.SocialSecurityMonthly
}

// additionalIncome nets the extra income sources, falling back to simplified
// gross-based approximations when no tax component is wired in.
func (c *RetirementIncomeCalculator) additionalIncome(household domain.Household) (AdditionalIncomeResult, AdditionalIncomeResult) {
	if c.Taxes != nil {
		return c.Taxes.AfterTaxForCouple(household)
	}

	c.Logger.Warnf("additional income tax calculator unavailable, using simplified approximation")
	primary := approximateAdditionalIncome(household.Primary.AdditionalIncome)
	var partner AdditionalIncomeResult
	if household.IsCouple() {
		partner = approximateAdditionalIncome(household.Partner.AdditionalIncome)
	}
	return primary, partner
}

// approximateAdditionalIncome is the documented fallback: a flat 40% haircut
// on equity income and pass-through of the rest, gross.
func approximateAdditionalIncome(income domain.AdditionalIncome) AdditionalIncomeResult {
	equityGross := income.AnnualBonus.Monthly().Decimal
	if !income.RSUUnits.IsZero() && !income.RSUStockPrice.IsZero() {
		annual := income.RSUUnits.Decimal.Mul(income.RSUStockPrice.Decimal).
			Mul(decimal.NewFromInt(int64(income.RSUFrequency.Multiplier())))
		equityGross = equityGross.Add(annual.Div(decimalTwelve))
	}
	equityNet := equityGross.Mul(decimal.NewFromFloat(0.6))
	other := income.Freelance.Add(income.Rental).Add(income.Dividend).Decimal

	return AdditionalIncomeResult{
		MonthlyNetBonus: income.AnnualBonus.Monthly().Decimal.Mul(decimal.NewFromFloat(0.6)).Round(2),
		MonthlyNetRSU:   equityNet.Sub(income.AnnualBonus.Monthly().Decimal.Mul(decimal.NewFromFloat(0.6))).Round(2),
		MonthlyNetOther: other.Round(2),
		TotalMonthlyNet: equityNet.Add(other).Round(2),
		TotalMonthlyTax: equityGross.Sub(equityNet).Round(2),
	}
}

// futureMonthlyExpenses projects spending to retirement: the detailed
// category breakdown when present, otherwise the flat current figure, both
// compounded by the yearly adjustment rate.
func (c *RetirementIncomeCalculator) futureMonthlyExpenses(expenses domain.Expenses, years int) decimal.Decimal {
	base := expenses.CurrentMonthly.Decimal
	if len(expenses.Categories) > 0 {
		base = decimal.Zero
		for _, amount := range expenses.Categories {
			base = base.Add(amount.Decimal)
		}
	}
	if base.LessThanOrEqual(decimal.Zero) || years <= 0 {
		return base.Round(2)
	}

	growth := decimalOne.Add(expenses.YearlyAdjustment.Fraction())
	if growth.LessThan(minDiscountBase) {
		growth = minDiscountBase
	}
	return base.Mul(growth.Pow(decimal.NewFromInt(int64(years)))).Round(2)
}

// targetMonthlyIncome is the household's final salary times the replacement
// target. Final salary prefers the work history; without one the current
// salary stands in.
func (c *RetirementIncomeCalculator) targetMonthlyIncome(household domain.Household) decimal.Decimal {
	finalSalary := domain.FinalSalary(household.Primary.WorkPeriods).Decimal
	if finalSalary.IsZero() {
		finalSalary = household.Primary.MonthlySalary.Decimal
	}
	if household.IsCouple() {
		partnerFinal := domain.FinalSalary(household.Partner.WorkPeriods).Decimal
		if partnerFinal.IsZero() {
			partnerFinal = household.Partner.MonthlySalary.Decimal
		}
		finalSalary = finalSalary.Add(partnerFinal)
	}
	return finalSalary.Mul(household.TargetReplacement.Fraction()).Round(2)
}

// safeInflationAnalysis runs the optional purchasing-power analysis; a panic
// degrades to null rather than aborting the primary result.
func (c *RetirementIncomeCalculator) safeInflationAnalysis(household domain.Household, params IncomeParams, totalMonthly decimal.Decimal) (analysis *domain.InflationAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			c.Logger.Errorf("inflation analysis failed: %v", r)
			analysis = nil
		}
	}()

	if c.Inflation == nil {
		return nil
	}

	real := c.Inflation.AdjustForInflation(money.FromDecimal(totalMonthly), household.InflationRate, params.YearsToRetirement)
	return &domain.InflationAnalysis{
		RealMonthlyIncome:      real.Round().Decimal,
		PurchasingPowerErosion: c.Inflation.PurchasingPowerErosion(household.InflationRate, params.YearsToRetirement),
		ProtectionScore:        c.Inflation.CalculateInflationProtection(params.Balances),
	}
}

// safeTaxOptimization runs the optional tax-planning analysis; a panic
// degrades to null rather than aborting the primary result.
func (c *RetirementIncomeCalculator) safeTaxOptimization(result domain.CalculationResult) (opt *domain.TaxOptimization) {
	defer func() {
		if r := recover(); r != nil {
			c.Logger.Errorf("tax optimization failed: %v", r)
			opt = nil
		}
	}()

	monthlyTax := result.RetirementIncome.TaxWithheld.Sum()
	monthlyGross := result.RetirementIncome.Total.Monthly.Add(monthlyTax)
	if monthlyGross.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	effective := monthlyTax.Div(monthlyGross).Mul(decimalHundred)

	var actions []string
	if result.WeightedTaxRate.GreaterThan(decimal.NewFromInt(20)) {
		actions = append(actions, "Spread pension withdrawals to stay in lower brackets")
	}
	if result.RetirementIncome.TaxWithheld.PersonalPortfolio.GreaterThan(result.RetirementIncome.TaxWithheld.Pension) {
		actions = append(actions, "Prefer tax-advantaged vehicles over the taxable portfolio")
	}
	if result.RetirementIncome.BySource.TrainingFund.IsZero() {
		actions = append(actions, "A training fund adds a tax-free income stream")
	}

	return &domain.TaxOptimization{
		EffectiveTaxRate:   effective.Round(2),
		AnnualTaxWithheld:  monthlyTax.Mul(decimalTwelve).Round(2),
		PotentialSavings:   monthlyTax.Mul(decimalTwelve).Mul(decimal.NewFromFloat(0.1)).Round(2),
		RecommendedActions: actions,
	}
}

// monthlyWithdrawal applies a flat annual withdrawal rate to a balance.
func monthlyWithdrawal(balance money.Money, annualRate decimal.Decimal) decimal.Decimal {
	if balance.Decimal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return balance.Decimal.Mul(annualRate).Div(decimalTwelve)
}
