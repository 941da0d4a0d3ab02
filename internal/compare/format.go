package compare

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// TableFormatter formats comparison results as a console table.
type TableFormatter struct{}

// Format renders the side-by-side scenario table.
func (tf *TableFormatter) Format(set *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 92) + "\n")
	if set.InputPath != "" {
		sb.WriteString(fmt.Sprintf("Planner document: %s\n\n", set.InputPath))
	}

	sb.WriteString(fmt.Sprintf("%-26s %-6s %16s %16s %10s %8s\n",
		"Scenario", "Age", "Total Savings", "Monthly Income", "Readiness", "Target"))
	sb.WriteString(strings.Repeat("-", 92) + "\n")

	sb.WriteString(tf.row(set.BaseResult))
	for _, alt := range set.AlternativeResults {
		sb.WriteString(tf.row(alt))
	}

	if len(set.AlternativeResults) > 0 {
		sb.WriteString("\nDELTAS FROM BASE\n")
		sb.WriteString(strings.Repeat("-", 92) + "\n")
		for _, alt := range set.AlternativeResults {
			sb.WriteString(fmt.Sprintf("%-26s income %s/mo (%s%%), savings %s\n",
				alt.ScenarioName,
				signed(alt.IncomeDiffFromBase.StringFixed(0)),
				signed(alt.IncomePctFromBase.StringFixed(1)),
				signed(alt.SavingsDiffFromBase.StringFixed(0))))
		}
	}

	if len(set.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		for _, rec := range set.Recommendations {
			sb.WriteString("  • " + rec + "\n")
		}
	}

	return sb.String()
}

func signed(s string) string {
	if strings.HasPrefix(s, "-") {
		return s
	}
	return "+" + s
}

func (tf *TableFormatter) row(r ComparisonResult) string {
	achieved := "missed"
	if r.AchievesTarget {
		achieved = "met"
	}
	return fmt.Sprintf("%-26s %-6d %16s %16s %10d %8s\n",
		r.ScenarioName,
		r.RetirementAge,
		r.TotalSavings.StringFixed(0),
		r.MonthlyIncome.StringFixed(0),
		r.ReadinessScore,
		achieved)
}

// CSVFormatter formats comparison results for spreadsheet import.
type CSVFormatter struct{}

// Format renders one row per scenario.
func (cf *CSVFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	rows := [][]string{{
		"scenario", "description", "retirementAge", "totalSavings",
		"monthlyIncome", "readinessScore", "achievesTarget",
		"incomeDiffFromBase", "savingsDiffFromBase",
	}}
	all := append([]ComparisonResult{set.BaseResult}, set.AlternativeResults...)
	for _, r := range all {
		rows = append(rows, []string{
			r.ScenarioName,
			r.Description,
			strconv.Itoa(r.RetirementAge),
			r.TotalSavings.StringFixed(2),
			r.MonthlyIncome.StringFixed(2),
			strconv.Itoa(r.ReadinessScore),
			strconv.FormatBool(r.AchievesTarget),
			r.IncomeDiffFromBase.StringFixed(2),
			r.SavingsDiffFromBase.StringFixed(2),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write comparison CSV: %w", err)
	}
	return sb.String(), nil
}

// JSONFormatter formats comparison results as JSON.
type JSONFormatter struct {
	Pretty bool
}

// Format renders the full comparison set.
func (jf *JSONFormatter) Format(set *ComparisonSet) (string, error) {
	var (
		data []byte
		err  error
	)
	if jf.Pretty {
		data, err = json.MarshalIndent(set, "", "  ")
	} else {
		data, err = json.Marshal(set)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode comparison JSON: %w", err)
	}
	return string(data), nil
}
