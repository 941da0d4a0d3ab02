package domain

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Every consumer of the result object expects decimals encoded as JSON
	// numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Goal status values surfaced under goalsAnalysis.status.
const (
	GoalStatusOnTrack   = "on_track"
	GoalStatusAttention = "attention"
	GoalStatusAtRisk    = "at_risk"
	GoalStatusUnknown   = "unknown"
)

// IncomeBySource breaks a monthly amount down per income source. Field names
// and JSON keys are part of the de facto contract with every downstream
// consumer of the result object; do not rename them.
type IncomeBySource struct {
	Pension           decimal.Decimal `json:"pension"`
	TrainingFund      decimal.Decimal `json:"trainingFund"`
	PersonalPortfolio decimal.Decimal `json:"personalPortfolio"`
	Crypto            decimal.Decimal `json:"crypto"`
	RealEstate        decimal.Decimal `json:"realEstate"`
	SocialSecurity    decimal.Decimal `json:"socialSecurity"`
	AdditionalIncome  decimal.Decimal `json:"additionalIncome"`
	Partner           decimal.Decimal `json:"partner"`
}

// Sum totals the per-source amounts.
func (ibs IncomeBySource) Sum() decimal.Decimal {
	return ibs.Pension.
		Add(ibs.TrainingFund).
		Add(ibs.PersonalPortfolio).
		Add(ibs.Crypto).
		Add(ibs.RealEstate).
		Add(ibs.SocialSecurity).
		Add(ibs.AdditionalIncome).
		Add(ibs.Partner)
}

// IncomeTotal carries the headline monthly and annual net figures.
type IncomeTotal struct {
	Monthly decimal.Decimal `json:"monthly"`
	Annual  decimal.Decimal `json:"annual"`
}

// RetirementIncome is the income section of the calculation result.
type RetirementIncome struct {
	BySource    IncomeBySource `json:"bySource"`
	TaxWithheld IncomeBySource `json:"taxWithheld"`
	Total       IncomeTotal    `json:"total"`
}

// ExpenseProjection is the spending side of the gap analysis.
type ExpenseProjection struct {
	FutureMonthly          decimal.Decimal `json:"futureMonthly"`
	RemainingAfterExpenses decimal.Decimal `json:"remainingAfterExpenses"`
}

// GoalsAnalysis compares projected income against the replacement target.
type GoalsAnalysis struct {
	TargetMonthlyIncome decimal.Decimal `json:"targetMonthlyIncome"`
	Gap                 decimal.Decimal `json:"gap"`
	AchievesTarget      bool            `json:"achievesTarget"`
	Status              string          `json:"status"`
}

// InflationAnalysis is the optional purchasing-power view of the result.
// It degrades to null when the auxiliary analysis fails.
type InflationAnalysis struct {
	RealMonthlyIncome      decimal.Decimal `json:"realMonthlyIncome"`
	PurchasingPowerErosion decimal.Decimal `json:"purchasingPowerErosion"`
	ProtectionScore        decimal.Decimal `json:"protectionScore"`
}

// TaxOptimization is the optional tax-planning view of the result.
// It degrades to null when the auxiliary analysis fails.
type TaxOptimization struct {
	EffectiveTaxRate   decimal.Decimal `json:"effectiveTaxRate"`
	AnnualTaxWithheld  decimal.Decimal `json:"annualTaxWithheld"`
	PotentialSavings   decimal.Decimal `json:"potentialSavings"`
	RecommendedActions []string        `json:"recommendedActions"`
}

// CalculationResult is the engine's output: a single immutable record every
// dashboard, chart and export reads by field name. The nesting
// (retirementIncome.total.monthly, goalsAnalysis.status, ...) is pinned.
type CalculationResult struct {
	RetirementIncome      RetirementIncome   `json:"retirementIncome"`
	Expenses              ExpenseProjection  `json:"expenses"`
	GoalsAnalysis         GoalsAnalysis      `json:"goalsAnalysis"`
	ReadinessScore        int                `json:"readinessScore"`
	WeightedTaxRate       decimal.Decimal    `json:"weightedTaxRate"`
	SocialSecurityCountry string             `json:"socialSecurityCountry"`
	InflationAnalysis     *InflationAnalysis `json:"inflationAnalysis"`
	TaxOptimization       *TaxOptimization   `json:"taxOptimization"`
}

// ProjectionResult is the top-level output of CalculateRetirement: the
// accumulation projection to retirement age plus the income result computed
// over the projected balances.
type ProjectionResult struct {
	TotalSavings         decimal.Decimal   `json:"totalSavings"`
	MonthlyIncome        decimal.Decimal   `json:"monthlyIncome"`
	BalancesAtRetirement BalanceSheet      `json:"balancesAtRetirement"`
	Result               CalculationResult `json:"result"`
}

// BalanceSheet is the JSON-facing view of per-vehicle balances.
type BalanceSheet struct {
	Pension           decimal.Decimal `json:"pension"`
	TrainingFund      decimal.Decimal `json:"trainingFund"`
	PersonalPortfolio decimal.Decimal `json:"personalPortfolio"`
	RealEstate        decimal.Decimal `json:"realEstate"`
	Crypto            decimal.Decimal `json:"crypto"`
	Cash              decimal.Decimal `json:"cash"`
}

// Total sums the balance sheet.
func (bs BalanceSheet) Total() decimal.Decimal {
	return bs.Pension.
		Add(bs.TrainingFund).
		Add(bs.PersonalPortfolio).
		Add(bs.RealEstate).
		Add(bs.Crypto).
		Add(bs.Cash)
}
