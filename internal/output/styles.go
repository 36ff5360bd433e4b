package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/supplylab/contractlab/internal/domain"
)

// Console styling for rendered results. Tones map onto the same palette for
// every contract so the report reads consistently.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	emphasisStyle = lipgloss.NewStyle().Bold(true)

	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	toneStyles = map[domain.Tone]lipgloss.Style{
		domain.TonePositive: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		domain.ToneNegative: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		domain.ToneInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		domain.ToneNeutral:  lipgloss.NewStyle(),
	}
)

func styleValue(card domain.MetricCard) string {
	style, ok := toneStyles[card.Tone]
	if !ok {
		style = toneStyles[domain.ToneNeutral]
	}
	if card.Emphasize {
		style = style.Bold(true)
	}
	return style.Render(card.Value)
}
