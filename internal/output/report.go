// Package output renders evaluation results for the console and for
// machine consumers. The engine itself never formats anything beyond the
// metric card values; layout lives here.
package output

import (
	"fmt"
	"strings"

	"github.com/supplylab/contractlab/internal/domain"
)

// Formatter turns an evaluation into a byte stream for one output format.
type Formatter interface {
	Format(eval domain.Evaluation) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under name, or nil
// when the name is unknown.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "text", "console", "":
		return &TextFormatter{}
	case "json":
		return &JSONFormatter{}
	}
	return nil
}

// TextFormatter renders a tone-styled console report.
type TextFormatter struct{}

// Format renders the evaluation. Validation failures render as an error
// list; successful evaluations render the decision summary, metric cards,
// chart inventory, warnings, and notes.
func (tf *TextFormatter) Format(eval domain.Evaluation) ([]byte, error) {
	var sb strings.Builder

	if eval.Result == nil {
		sb.WriteString(errorStyle.Render("Calculation blocked by input validation:") + "\n")
		for _, msg := range eval.Errors {
			sb.WriteString("  - " + errorStyle.Render(msg) + "\n")
		}
		return []byte(sb.String()), nil
	}

	result := eval.Result
	sb.WriteString(titleStyle.Render(result.ContractType.DisplayName()) + "\n")
	if desc, ok := domain.ContractDescriptions[result.ContractType]; ok {
		sb.WriteString(labelStyle.Render(desc) + "\n")
	}
	sb.WriteString(strings.Repeat("=", 72) + "\n\n")

	sb.WriteString(sectionStyle.Render("DECISION") + "\n")
	sb.WriteString(emphasisStyle.Render(result.KeyDecision) + "\n\n")

	title := result.MetricsTitle
	if title == "" {
		title = "Metrics"
	}
	sb.WriteString(sectionStyle.Render(strings.ToUpper(title)) + "\n")
	labelWidth := 0
	for _, card := range result.Metrics {
		if len(card.Label) > labelWidth {
			labelWidth = len(card.Label)
		}
	}
	for _, card := range result.Metrics {
		padding := strings.Repeat(" ", labelWidth-len(card.Label))
		sb.WriteString(fmt.Sprintf("  %s%s  %s\n", labelStyle.Render(card.Label), padding, styleValue(card)))
	}
	sb.WriteString("\n")

	if len(result.Charts) > 0 {
		sb.WriteString(sectionStyle.Render("SENSITIVITY CURVES") + "\n")
		for _, chart := range result.Charts {
			series := make([]string, len(chart.Series))
			for i, s := range chart.Series {
				series[i] = s.Label
			}
			sb.WriteString(fmt.Sprintf("  %s (%s vs %s): %s, %d points\n",
				chart.Title, chart.YLabel, chart.XLabel,
				strings.Join(series, " / "), chartPointCount(chart)))
		}
		sb.WriteString("\n")
	}

	for _, warning := range result.Warnings {
		sb.WriteString(warningStyle.Render("Warning: "+warning) + "\n")
	}
	for _, note := range result.Notes {
		sb.WriteString(labelStyle.Render("Note: "+note) + "\n")
	}

	return []byte(sb.String()), nil
}

func chartPointCount(chart domain.ChartConfig) int {
	if len(chart.Series) == 0 {
		return 0
	}
	return len(chart.Series[0].Points)
}
