package domain

// PlanningType selects between a single-person plan and a couple plan.
type PlanningType string

const (
	PlanningIndividual PlanningType = "individual"
	PlanningCouple     PlanningType = "couple"
)

// RiskTolerance selects the model portfolio family used by the optimizer.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// Valid reports whether the tolerance is one of the three model families.
func (r RiskTolerance) Valid() bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// RSUFrequency is the vesting cadence of an RSU grant.
type RSUFrequency string

const (
	RSUMonthly   RSUFrequency = "monthly"
	RSUQuarterly RSUFrequency = "quarterly"
	RSUYearly    RSUFrequency = "yearly"
)

// Multiplier returns the number of vesting events per year. Unknown
// frequencies vest yearly.
func (f RSUFrequency) Multiplier() int {
	switch f {
	case RSUMonthly:
		return 12
	case RSUQuarterly:
		return 4
	default:
		return 1
	}
}

// PlannerInputs is the flat input record describing one person's (or one
// couple's) financial state. It mirrors the wizard's historical field set:
// every field is optional, every numeric defaults to zero, and partner data
// appears both as partner1X/partner2X prefixed fields and as nested partner
// blocks. NormalizeHousehold reconciles the shapes; nothing downstream of it
// reads this struct directly.
type PlannerInputs struct {
	PlanningType PlanningType `yaml:"planning_type" json:"planningType"`
	Country      string       `yaml:"country" json:"country"`
	Language     string       `yaml:"language" json:"language"`

	CurrentAge    int `yaml:"current_age" json:"currentAge"`
	RetirementAge int `yaml:"retirement_age" json:"retirementAge"`

	// Balances per savings vehicle.
	CurrentSavings           float64 `yaml:"current_savings" json:"currentSavings"` // pension accumulation
	CurrentTrainingFund      float64 `yaml:"current_training_fund" json:"currentTrainingFund"`
	CurrentPersonalPortfolio float64 `yaml:"current_personal_portfolio" json:"currentPersonalPortfolio"`
	CurrentRealEstate        float64 `yaml:"current_real_estate" json:"currentRealEstate"`
	CurrentCrypto            float64 `yaml:"current_crypto" json:"currentCrypto"`
	CurrentSavingsAccount    float64 `yaml:"current_savings_account" json:"currentSavingsAccount"`

	// Salary and contribution terms.
	CurrentMonthlySalary         float64 `yaml:"current_monthly_salary" json:"currentMonthlySalary"`
	PensionContributionRate      float64 `yaml:"pension_contribution_rate" json:"pensionContributionRate"`
	TrainingFundContributionRate float64 `yaml:"training_fund_contribution_rate" json:"trainingFundContributionRate"`
	AccumulationFees             float64 `yaml:"accumulation_fees" json:"accumulationFees"`
	ExpectedAnnualReturn         float64 `yaml:"expected_annual_return" json:"expectedAnnualReturn"`

	// Withdrawal-phase tax rates per vehicle, in percent.
	PortfolioTaxRate  float64 `yaml:"portfolio_tax_rate" json:"portfolioTaxRate"`
	CryptoTaxRate     float64 `yaml:"crypto_tax_rate" json:"cryptoTaxRate"`
	RealEstateTaxRate float64 `yaml:"real_estate_tax_rate" json:"realEstateTaxRate"`

	// Additional income sources.
	AnnualBonus          float64      `yaml:"annual_bonus" json:"annualBonus"`
	BonusTaxRate         float64      `yaml:"bonus_tax_rate" json:"bonusTaxRate"`
	RSUUnits             float64      `yaml:"rsu_units" json:"rsuUnits"`
	RSUCurrentStockPrice float64      `yaml:"rsu_current_stock_price" json:"rsuCurrentStockPrice"`
	RSUFrequency         RSUFrequency `yaml:"rsu_frequency" json:"rsuFrequency"`
	RSUTaxRate           float64      `yaml:"rsu_tax_rate" json:"rsuTaxRate"`
	FreelanceIncome      float64      `yaml:"freelance_income" json:"freelanceIncome"`
	FreelanceTaxRate     float64      `yaml:"freelance_tax_rate" json:"freelanceTaxRate"`
	RentalIncome         float64      `yaml:"rental_income" json:"rentalIncome"`
	RentalTaxRate        float64      `yaml:"rental_tax_rate" json:"rentalTaxRate"`
	DividendIncome       float64      `yaml:"dividend_income" json:"dividendIncome"`
	DividendTaxRate      float64      `yaml:"dividend_tax_rate" json:"dividendTaxRate"`

	// Expenses and targets.
	CurrentMonthlyExpenses  float64            `yaml:"current_monthly_expenses" json:"currentMonthlyExpenses"`
	ExpenseCategories       map[string]float64 `yaml:"expense_categories,omitempty" json:"expenseCategories,omitempty"`
	YearlyExpenseAdjustment float64            `yaml:"yearly_expense_adjustment" json:"yearlyExpenseAdjustment"`
	TargetReplacementRate   float64            `yaml:"target_replacement_rate" json:"targetReplacementRate"`
	InflationRate           float64            `yaml:"inflation_rate" json:"inflationRate"`

	// Allocation inputs for the portfolio optimizer.
	RiskTolerance   RiskTolerance `yaml:"risk_tolerance" json:"riskTolerance"`
	StockPercentage float64       `yaml:"stock_percentage" json:"stockPercentage"`

	WorkPeriods []WorkPeriod `yaml:"work_periods,omitempty" json:"workPeriods,omitempty"`

	// Couple mode, nested shape.
	Partner1 *PartnerInputs `yaml:"partner1,omitempty" json:"partner1,omitempty"`
	Partner2 *PartnerInputs `yaml:"partner2,omitempty" json:"partner2,omitempty"`
	Partner  *PartnerInputs `yaml:"partner,omitempty" json:"partner,omitempty"`

	// Couple mode, flat partner-prefixed shape. Older wizard documents carry
	// these instead of the nested blocks; both must keep working.
	Partner1Name                 string  `yaml:"partner1_name,omitempty" json:"partner1Name,omitempty"`
	Partner1Salary               float64 `yaml:"partner1_salary,omitempty" json:"partner1Salary,omitempty"`
	Partner1CurrentSavings       float64 `yaml:"partner1_current_savings,omitempty" json:"partner1CurrentSavings,omitempty"`
	Partner1CurrentTrainingFund  float64 `yaml:"partner1_current_training_fund,omitempty" json:"partner1CurrentTrainingFund,omitempty"`
	Partner1PersonalPortfolio    float64 `yaml:"partner1_personal_portfolio,omitempty" json:"partner1PersonalPortfolio,omitempty"`
	Partner2Name                 string  `yaml:"partner2_name,omitempty" json:"partner2Name,omitempty"`
	Partner2Salary               float64 `yaml:"partner2_salary,omitempty" json:"partner2Salary,omitempty"`
	Partner2CurrentSavings       float64 `yaml:"partner2_current_savings,omitempty" json:"partner2CurrentSavings,omitempty"`
	Partner2CurrentTrainingFund  float64 `yaml:"partner2_current_training_fund,omitempty" json:"partner2CurrentTrainingFund,omitempty"`
	Partner2PersonalPortfolio    float64 `yaml:"partner2_personal_portfolio,omitempty" json:"partner2PersonalPortfolio,omitempty"`
}

// PartnerInputs is the partner-scoped subset of the planner fields. The field
// names match PlannerInputs so the per-partner tax calculator can treat each
// partner independently in couple mode.
type PartnerInputs struct {
	Name                         string       `yaml:"name" json:"name"`
	CurrentAge                   int          `yaml:"current_age" json:"currentAge"`
	RetirementAge                int          `yaml:"retirement_age" json:"retirementAge"`
	CurrentMonthlySalary         float64      `yaml:"current_monthly_salary" json:"currentMonthlySalary"`
	CurrentSavings               float64      `yaml:"current_savings" json:"currentSavings"`
	CurrentTrainingFund          float64      `yaml:"current_training_fund" json:"currentTrainingFund"`
	CurrentPersonalPortfolio     float64      `yaml:"current_personal_portfolio" json:"currentPersonalPortfolio"`
	CurrentRealEstate            float64      `yaml:"current_real_estate" json:"currentRealEstate"`
	CurrentCrypto                float64      `yaml:"current_crypto" json:"currentCrypto"`
	PensionContributionRate      float64      `yaml:"pension_contribution_rate" json:"pensionContributionRate"`
	TrainingFundContributionRate float64      `yaml:"training_fund_contribution_rate" json:"trainingFundContributionRate"`
	AnnualBonus                  float64      `yaml:"annual_bonus" json:"annualBonus"`
	BonusTaxRate                 float64      `yaml:"bonus_tax_rate" json:"bonusTaxRate"`
	RSUUnits                     float64      `yaml:"rsu_units" json:"rsuUnits"`
	RSUCurrentStockPrice         float64      `yaml:"rsu_current_stock_price" json:"rsuCurrentStockPrice"`
	RSUFrequency                 RSUFrequency `yaml:"rsu_frequency" json:"rsuFrequency"`
	RSUTaxRate                   float64      `yaml:"rsu_tax_rate" json:"rsuTaxRate"`
	FreelanceIncome              float64      `yaml:"freelance_income" json:"freelanceIncome"`
	FreelanceTaxRate             float64      `yaml:"freelance_tax_rate" json:"freelanceTaxRate"`
	RentalIncome                 float64      `yaml:"rental_income" json:"rentalIncome"`
	RentalTaxRate                float64      `yaml:"rental_tax_rate" json:"rentalTaxRate"`
	DividendIncome               float64      `yaml:"dividend_income" json:"dividendIncome"`
	DividendTaxRate              float64      `yaml:"dividend_tax_rate" json:"dividendTaxRate"`
	PortfolioTaxRate             float64      `yaml:"portfolio_tax_rate" json:"portfolioTaxRate"`
	CryptoTaxRate                float64      `yaml:"crypto_tax_rate" json:"cryptoTaxRate"`
	RealEstateTaxRate            float64      `yaml:"real_estate_tax_rate" json:"realEstateTaxRate"`
	WorkPeriods                  []WorkPeriod `yaml:"work_periods,omitempty" json:"workPeriods,omitempty"`
}
