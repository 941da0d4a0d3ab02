// Package config loads and validates planner input documents.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/retplan/retplan/internal/calculation"
	"github.com/retplan/retplan/internal/countries"
	"github.com/retplan/retplan/internal/domain"
)

// InputParser handles parsing of planner input files. Input documents are
// tolerant by design: missing or nonsensical numeric fields coerce to zero
// and unknown countries fall back to the default, with warnings rather than
// errors, so a partially filled planner still produces a result.
type InputParser struct {
	logger calculation.Logger
}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{logger: calculation.NopLogger{}}
}

// SetLogger installs a logger for coercion warnings.
func (ip *InputParser) SetLogger(l calculation.Logger) {
	if l != nil {
		ip.logger = l
	}
}

// LoadFromFile loads planner inputs from a YAML or JSON file. YAML parsing
// covers both since JSON is a YAML subset.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlannerInputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a planner document.
func (ip *InputParser) Parse(data []byte) (*domain.PlannerInputs, error) {
	var inputs domain.PlannerInputs
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse input document: %w", err)
	}

	if err := ip.ValidateInputs(&inputs); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &inputs, nil
}

// ValidateInputs checks the few hard requirements and warns about fields
// that will be coerced. Only structurally unusable documents error.
func (ip *InputParser) ValidateInputs(inputs *domain.PlannerInputs) error {
	if inputs.RetirementAge != 0 && inputs.CurrentAge != 0 &&
		inputs.RetirementAge < inputs.CurrentAge {
		return fmt.Errorf("retirement age %d precedes current age %d",
			inputs.RetirementAge, inputs.CurrentAge)
	}

	if inputs.CurrentAge == 0 {
		ip.logger.Warnf("current age missing; projection years default to zero")
	}
	if inputs.CurrentMonthlySalary <= 0 {
		ip.logger.Warnf("monthly salary missing or non-positive; contribution growth will be zero")
	}

	if inputs.Country != "" && !countries.Known(inputs.Country) {
		ip.logger.Warnf("unknown country %q; using %s tax rules",
			inputs.Country, countries.DefaultCountry)
	}

	if pt := strings.ToLower(strings.TrimSpace(string(inputs.PlanningType))); pt != "" &&
		pt != string(domain.PlanningIndividual) && pt != string(domain.PlanningCouple) {
		ip.logger.Warnf("unknown planning type %q; treating as individual", inputs.PlanningType)
	}

	if rt := domain.RiskTolerance(strings.ToLower(strings.TrimSpace(string(inputs.RiskTolerance)))); inputs.RiskTolerance != "" && !rt.Valid() {
		ip.logger.Warnf("unknown risk tolerance %q; using moderate", inputs.RiskTolerance)
	}

	for i, wp := range inputs.WorkPeriods {
		if wp.EndAge < wp.StartAge {
			ip.logger.Warnf("work period %d ends (%v) before it starts (%v); it contributes nothing",
				i, wp.EndAge, wp.StartAge)
		}
		if wp.Country != "" && !countries.Known(wp.Country) {
			ip.logger.Warnf("work period %d country %q unknown; using %s rules",
				i, wp.Country, countries.DefaultCountry)
		}
	}

	return nil
}

// LoadHousehold is the common path from file to a normalized household.
func (ip *InputParser) LoadHousehold(filename string) (domain.Household, error) {
	inputs, err := ip.LoadFromFile(filename)
	if err != nil {
		return domain.Household{}, err
	}
	return domain.NormalizeHousehold(*inputs), nil
}
