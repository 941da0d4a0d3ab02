// Package countries holds the static per-country retirement rules the income
// calculator reads: pension withdrawal tax rates, state social security
// benefits and the training fund contribution ceiling. The table is read-only
// reference data; unknown countries resolve to the Israel profile rather than
// erroring.
package countries

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCountry is the fallback profile key for unresolvable countries.
const DefaultCountry = "israel"

// Rules are the per-country constants used by the income calculator.
type Rules struct {
	Key                   string
	Name                  string
	Currency              string
	PensionTaxRate        decimal.Decimal // percent applied to pension withdrawals
	SocialSecurityMonthly decimal.Decimal // flat monthly state benefit
	TrainingFundCeiling   decimal.Decimal // monthly salary ceiling for training fund contributions
	TrainingFundAvailable bool
}

var rules = map[string]Rules{
	"israel": {
		Key:                   "israel",
		Name:                  "Israel",
		Currency:              "ILS",
		PensionTaxRate:        decimal.NewFromFloat(15),
		SocialSecurityMonthly: decimal.NewFromInt(2500),
		TrainingFundCeiling:   decimal.NewFromInt(15712),
		TrainingFundAvailable: true,
	},
	"usa": {
		Key:                   "usa",
		Name:                  "United States",
		Currency:              "USD",
		PensionTaxRate:        decimal.NewFromFloat(22),
		SocialSecurityMonthly: decimal.NewFromInt(1800),
	},
	"uk": {
		Key:                   "uk",
		Name:                  "United Kingdom",
		Currency:              "GBP",
		PensionTaxRate:        decimal.NewFromFloat(20),
		SocialSecurityMonthly: decimal.NewFromInt(900),
	},
	"germany": {
		Key:                   "germany",
		Name:                  "Germany",
		Currency:              "EUR",
		PensionTaxRate:        decimal.NewFromFloat(25),
		SocialSecurityMonthly: decimal.NewFromInt(1500),
	},
	"france": {
		Key:                   "france",
		Name:                  "France",
		Currency:              "EUR",
		PensionTaxRate:        decimal.NewFromFloat(30),
		SocialSecurityMonthly: decimal.NewFromInt(1400),
	},
}

// Lookup resolves a country key to its rules. Unknown or empty keys fall back
// to the Israel profile.
func Lookup(key string) Rules {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if r, ok := rules[normalized]; ok {
		return r
	}
	return rules[DefaultCountry]
}

// Known reports whether a country key resolves without falling back.
func Known(key string) bool {
	_, ok := rules[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// Keys returns the supported country keys, for validation messages.
func Keys() []string {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	return keys
}
