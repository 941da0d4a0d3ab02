package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/pkg/money"
)

// ADDITIONAL INCOME TAX ASSUMPTIONS:
//
// 1. RSU income annualizes as units * price * vesting events per year
//    (monthly=12, quarterly=4, yearly=1), then divides by 12 for a monthly
//    figure. A missing price or unit count yields zero RSU income.
//
// 2. RSU and bonus income default to a 40% marginal rate when no per-item
//    rate is given, matching how employers withhold equity compensation.
//    Freelance, rental and dividend rates pass through as given.
//
// 3. There are no error paths: net income is gross * (1 - rate) with all
//    inputs already coerced to valid numbers.

// DefaultEquityTaxRate is the marginal rate assumed for untagged RSU and
// bonus income, in percent.
var DefaultEquityTaxRate = money.RateFromFloat(40)

// AdditionalIncomeResult is the after-tax monthly breakdown of income earned
// on top of salary.
type AdditionalIncomeResult struct {
	MonthlyNetBonus decimal.Decimal `json:"monthlyNetBonus"`
	MonthlyNetRSU   decimal.Decimal `json:"monthlyNetRSU"`
	MonthlyNetOther decimal.Decimal `json:"monthlyNetOther"`
	TotalMonthlyNet decimal.Decimal `json:"totalMonthlyNet"`
	TotalMonthlyTax decimal.Decimal `json:"totalMonthlyTax"`
}

// AdditionalIncomeTaxCalculator converts gross additional income (bonus, RSU,
// freelance, rental, dividend) to after-tax monthly amounts.
type AdditionalIncomeTaxCalculator struct{}

// NewAdditionalIncomeTaxCalculator creates a new additional income tax
// calculator.
func NewAdditionalIncomeTaxCalculator() *AdditionalIncomeTaxCalculator {
	return &AdditionalIncomeTaxCalculator{}
}

// AfterTaxAdditionalIncome nets all additional income sources for one person.
func (tc *AdditionalIncomeTaxCalculator) AfterTaxAdditionalIncome(income domain.AdditionalIncome) AdditionalIncomeResult {
	bonusRate := orDefaultRate(income.BonusTaxRate, DefaultEquityTaxRate)
	rsuRate := orDefaultRate(income.RSUTaxRate, DefaultEquityTaxRate)

	monthlyGrossBonus := income.AnnualBonus.Monthly()
	netBonus := monthlyGrossBonus.AfterTax(bonusRate)

	monthlyGrossRSU := tc.MonthlyRSUIncome(income)
	netRSU := monthlyGrossRSU.AfterTax(rsuRate)

	netFreelance := income.Freelance.AfterTax(income.FreelanceTaxRate)
	netRental := income.Rental.AfterTax(income.RentalTaxRate)
	netDividend := income.Dividend.AfterTax(income.DividendTaxRate)
	netOther := netFreelance.Add(netRental).Add(netDividend)

	totalNet := netBonus.Add(netRSU).Add(netOther)
	totalGross := monthlyGrossBonus.Add(monthlyGrossRSU).
		Add(income.Freelance).Add(income.Rental).Add(income.Dividend)

	return AdditionalIncomeResult{
		MonthlyNetBonus: netBonus.Round().Decimal,
		MonthlyNetRSU:   netRSU.Round().Decimal,
		MonthlyNetOther: netOther.Round().Decimal,
		TotalMonthlyNet: totalNet.Round().Decimal,
		TotalMonthlyTax: totalGross.Sub(totalNet).ClampNonNegative().Round().Decimal,
	}
}

// MonthlyRSUIncome returns the gross monthly value of the RSU grant.
func (tc *AdditionalIncomeTaxCalculator) MonthlyRSUIncome(income domain.AdditionalIncome) money.Money {
	if income.RSUUnits.IsZero() || income.RSUStockPrice.IsZero() {
		return money.Zero()
	}
	perVest := income.RSUUnits.Decimal.Mul(income.RSUStockPrice.Decimal)
	annual := perVest.Mul(decimal.NewFromInt(int64(income.RSUFrequency.Multiplier())))
	return money.FromDecimal(annual).Monthly()
}

// AfterTaxForCouple nets additional income independently for each partner.
// The partner entry is zero-valued for individual plans.
func (tc *AdditionalIncomeTaxCalculator) AfterTaxForCouple(household domain.Household) (primary, partner AdditionalIncomeResult) {
	primary = tc.AfterTaxAdditionalIncome(household.Primary.AdditionalIncome)
	if household.IsCouple() {
		partner = tc.AfterTaxAdditionalIncome(household.Partner.AdditionalIncome)
	}
	return primary, partner
}

// orDefaultRate substitutes the default when no per-item rate was given.
// A zero rate means "not set" in the historical wizard documents.
func orDefaultRate(rate, fallback money.Rate) money.Rate {
	if rate.Decimal.IsZero() {
		return fallback
	}
	return rate
}
