package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/retplan/retplan/internal/domain"
)

// TemplateRegistry manages built-in scenario templates.
type TemplateRegistry struct {
	templates map[string]Template
}

// Template is a named collection of transforms.
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// Apply runs the template's transforms in order.
func (t Template) Apply(h domain.Household) domain.Household {
	for _, tr := range t.Transforms {
		h = tr.Apply(h)
	}
	return h
}

// NewTemplateRegistry creates an empty registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: make(map[string]Template)}
}

// Register adds a template to the registry.
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive).
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted.
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates registers the common what-if scenarios.
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "postpone_1yr",
		Description: "Postpone retirement by 1 year",
		Transforms:  []ScenarioTransform{&ShiftRetirementAge{Years: 1}},
	})
	registry.Register(Template{
		Name:        "postpone_2yr",
		Description: "Postpone retirement by 2 years",
		Transforms:  []ScenarioTransform{&ShiftRetirementAge{Years: 2}},
	})
	registry.Register(Template{
		Name:        "postpone_5yr",
		Description: "Postpone retirement by 5 years",
		Transforms:  []ScenarioTransform{&ShiftRetirementAge{Years: 5}},
	})
	registry.Register(Template{
		Name:        "retire_early_2yr",
		Description: "Retire 2 years earlier",
		Transforms:  []ScenarioTransform{&ShiftRetirementAge{Years: -2}},
	})
	registry.Register(Template{
		Name:        "boost_contribution_2pct",
		Description: "Raise pension contributions by 2 points",
		Transforms:  []ScenarioTransform{&BoostPensionContribution{Points: 2}},
	})
	registry.Register(Template{
		Name:        "boost_contribution_5pct",
		Description: "Raise pension contributions by 5 points",
		Transforms:  []ScenarioTransform{&BoostPensionContribution{Points: 5}},
	})
	registry.Register(Template{
		Name:        "low_fees",
		Description: "Cut accumulation fees by half a point",
		Transforms:  []ScenarioTransform{&ReduceFees{Points: 0.5}},
	})
	registry.Register(Template{
		Name:        "conservative",
		Description: "Conservative allocation with a 5% return assumption",
		Transforms: []ScenarioTransform{
			&SetRiskTolerance{Tolerance: domain.RiskConservative},
			&SetExpectedReturn{Percent: 5},
		},
	})
	registry.Register(Template{
		Name:        "aggressive",
		Description: "Aggressive allocation with a 9% return assumption",
		Transforms: []ScenarioTransform{
			&SetRiskTolerance{Tolerance: domain.RiskAggressive},
			&SetExpectedReturn{Percent: 9},
		},
	})
	registry.Register(Template{
		Name:        "work_longer_save_more",
		Description: "Postpone retirement by 2 years and raise contributions by 3 points",
		Transforms: []ScenarioTransform{
			&ShiftRetirementAge{Years: 2},
			&BoostPensionContribution{Points: 3},
		},
	})

	return registry
}

// ParseTemplateList splits a comma-separated template list, dropping blanks.
func ParseTemplateList(s string) []string {
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

// GetTemplateHelp renders the registry as help text for --list-templates.
func GetTemplateHelp(registry *TemplateRegistry) string {
	var sb strings.Builder
	sb.WriteString("Available scenario templates:\n\n")
	for _, name := range registry.List() {
		t, _ := registry.Get(name)
		sb.WriteString(fmt.Sprintf("  %-28s %s\n", t.Name, t.Description))
	}
	return sb.String()
}
