package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retplan/retplan/internal/countries"
	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/pkg/money"
)

// defaultAnnualReturn applies when a document carries no expected return, in
// percent.
var defaultAnnualReturn = decimal.NewFromInt(7)

// CalculationEngine orchestrates the retirement projection: it grows the
// household's balances to retirement age and hands them to the income
// calculator.
type CalculationEngine struct {
	Income *RetirementIncomeCalculator
	Logger Logger
}

// NewCalculationEngine creates an engine with the default collaborators.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Income: NewRetirementIncomeCalculator(),
		Logger: NopLogger{},
	}
}

// SetLogger replaces the engine's logger. A nil logger becomes a no-op.
func (ce *CalculationEngine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	ce.Logger = logger
	if ce.Income != nil {
		ce.Income.SetLogger(logger)
	}
}

// CalculateRetirement projects every vehicle balance from the current age to
// the retirement age, then computes retirement income over the projected
// balances. It never errors: degenerate input produces a zeroed but fully
// populated result.
func (ce *CalculationEngine) CalculateRetirement(household domain.Household) domain.ProjectionResult {
	netReturn := ce.netAnnualReturn(household)

	primaryBalances := ce.projectBalances(household.Primary, household, netReturn)
	var partnerBalances *domain.VehicleBalances
	if household.IsCouple() {
		projected := ce.projectBalances(*household.Partner, household, netReturn)
		partnerBalances = &projected
	}

	result := ce.Income.CalculateRetirementIncome(IncomeParams{
		Household:         household,
		Balances:          primaryBalances,
		PartnerBalances:   partnerBalances,
		YearsToRetirement: household.Primary.YearsToRetirement(),
	})

	total := primaryBalances.Total()
	if partnerBalances != nil {
		total = total.Add(partnerBalances.Total())
	}

	return domain.ProjectionResult{
		TotalSavings:  total.Round().Decimal,
		MonthlyIncome: result.RetirementIncome.Total.Monthly,
		BalancesAtRetirement: domain.BalanceSheet{
			Pension:           primaryBalances.Pension.Round().Decimal,
			TrainingFund:      primaryBalances.TrainingFund.Round().Decimal,
			PersonalPortfolio: primaryBalances.PersonalPortfolio.Round().Decimal,
			RealEstate:        primaryBalances.RealEstate.Round().Decimal,
			Crypto:            primaryBalances.Crypto.Round().Decimal,
			Cash:              primaryBalances.Cash.Round().Decimal,
		},
		Result: result,
	}
}

// projectBalances grows one person's balances year by year until retirement.
// Pension and training fund receive contributions; every invested vehicle
// compounds at the net return, cash does not.
func (ce *CalculationEngine) projectBalances(person domain.Person, household domain.Household, netReturn decimal.Decimal) domain.VehicleBalances {
	balances := person.Balances
	years := person.YearsToRetirement()
	if years == 0 {
		return balances
	}

	rules := countries.Lookup(household.Country)
	growth := decimalOne.Add(netReturn.Div(decimalHundred))

	annualPension := person.MonthlySalary.Decimal.
		Mul(person.PensionContribution.Fraction()).
		Mul(decimalTwelve)

	// Training fund contributions respect the country's salary ceiling.
	tfBase := person.MonthlySalary.Decimal
	if rules.TrainingFundCeiling.IsPositive() && tfBase.GreaterThan(rules.TrainingFundCeiling) {
		tfBase = rules.TrainingFundCeiling
	}
	annualTrainingFund := tfBase.
		Mul(person.TrainingFundContribution.Fraction()).
		Mul(decimalTwelve)

	pension := balances.Pension.Decimal
	trainingFund := balances.TrainingFund.Decimal
	portfolio := balances.PersonalPortfolio.Decimal
	realEstate := balances.RealEstate.Decimal
	crypto := balances.Crypto.Decimal

	for year := 0; year < years; year++ {
		pension = pension.Add(annualPension).Mul(growth)
		trainingFund = trainingFund.Add(annualTrainingFund).Mul(growth)
		portfolio = portfolio.Mul(growth)
		realEstate = realEstate.Mul(growth)
		crypto = crypto.Mul(growth)
	}

	return domain.VehicleBalances{
		Pension:           money.FromDecimal(pension),
		TrainingFund:      money.FromDecimal(trainingFund),
		PersonalPortfolio: money.FromDecimal(portfolio),
		RealEstate:        money.FromDecimal(realEstate),
		Crypto:            money.FromDecimal(crypto),
		Cash:              balances.Cash,
	}
}

// netAnnualReturn resolves the growth assumption: expected return minus
// accumulation fees, defaulting to 7% gross when no return was given.
func (ce *CalculationEngine) netAnnualReturn(household domain.Household) decimal.Decimal {
	expected := household.ExpectedReturn.Percent()
	if expected.IsZero() {
		expected = defaultAnnualReturn
	}
	net := expected.Sub(household.AccumulationFees.Percent())
	if net.IsNegative() {
		net = decimal.Zero
	}
	return net
}

// ScenarioSummary is the headline comparison row for one candidate
// retirement age.
type ScenarioSummary struct {
	RetirementAge  int             `json:"retirementAge"`
	TotalSavings   decimal.Decimal `json:"totalSavings"`
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome"`
	ReadinessScore int             `json:"readinessScore"`
	AchievesTarget bool            `json:"achievesTarget"`
}

// RunScenarios evaluates the plan at several candidate retirement ages and
// returns one summary per age, in input order.
func (ce *CalculationEngine) RunScenarios(household domain.Household, retirementAges []int) ([]ScenarioSummary, error) {
	if len(retirementAges) == 0 {
		return nil, fmt.Errorf("no retirement ages provided")
	}

	summaries := make([]ScenarioSummary, len(retirementAges))
	for i, age := range retirementAges {
		if age <= household.Primary.CurrentAge {
			return nil, fmt.Errorf("retirement age %d is not after current age %d", age, household.Primary.CurrentAge)
		}

		scenario := household
		scenario.Primary.RetirementAge = age
		if scenario.Partner != nil {
			partner := *scenario.Partner
			partner.RetirementAge = age
			scenario.Partner = &partner
		}

		projection := ce.CalculateRetirement(scenario)
		summaries[i] = ScenarioSummary{
			RetirementAge:  age,
			TotalSavings:   projection.TotalSavings,
			MonthlyIncome:  projection.MonthlyIncome,
			ReadinessScore: projection.Result.ReadinessScore,
			AchievesTarget: projection.Result.GoalsAnalysis.AchievesTarget,
		}
	}

	return summaries, nil
}
