package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter renders a comparison set as a console table.
type TableFormatter struct{}

// Format generates the table plus per-scenario deltas against the base.
func (tf *TableFormatter) Format(set *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("CONTRACT SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n\n", set.BaseName))

	nameWidth := 24
	typeWidth := 22
	metricWidth := 30

	sb.WriteString(fmt.Sprintf("%-*s %-*s %-*s\n",
		nameWidth, "Scenario",
		typeWidth, "Contract",
		metricWidth, "Primary Metric"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, result := range set.Results {
		metric := "validation failed"
		if result.Primary != nil {
			metric = fmt.Sprintf("%s: %s", result.Primary.Label, result.Primary.Value)
		}
		sb.WriteString(fmt.Sprintf("%-*s %-*s %-*s\n",
			nameWidth, truncate(result.Name, nameWidth),
			typeWidth, truncate(result.ContractType, typeWidth),
			metricWidth, metric))
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	wroteHeader := false
	for i, result := range set.Results {
		if i == 0 {
			continue
		}
		if len(result.Errors) > 0 {
			if !wroteHeader {
				sb.WriteString("\nDETAILS\n" + strings.Repeat("-", 80) + "\n")
				wroteHeader = true
			}
			sb.WriteString(fmt.Sprintf("\n%s:\n", result.Name))
			for _, msg := range result.Errors {
				sb.WriteString("  - " + msg + "\n")
			}
			continue
		}
		if result.DiffFromBase == nil {
			continue
		}
		if !wroteHeader {
			sb.WriteString("\nDETAILS\n" + strings.Repeat("-", 80) + "\n")
			wroteHeader = true
		}
		diff := decimal.NewFromFloat(*result.DiffFromBase)
		symbol := "+"
		if diff.IsNegative() {
			symbol = "-"
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", result.Name))
		sb.WriteString(fmt.Sprintf("  %s vs base: %s%s\n",
			result.Primary.Label, symbol, diff.Abs().StringFixed(2)))
	}

	return sb.String()
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
