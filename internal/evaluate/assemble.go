package evaluate

import (
	"github.com/shopspring/decimal"
	"github.com/supplylab/contractlab/internal/domain"
)

// All displayed numeric values are rounded to two decimal places; decimal
// does the rounding so display values match their formatted strings exactly.

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func fmtNumber(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func fmtCurrency(v float64) string {
	d := decimal.NewFromFloat(v)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

func fmtPercent(v float64) string {
	return decimal.NewFromFloat(v * 100).StringFixed(2) + "%"
}

// toneForSign maps a signed amount to a display tone: gains read positive,
// losses negative, zero neutral.
func toneForSign(v float64) domain.Tone {
	switch {
	case v > 0:
		return domain.TonePositive
	case v < 0:
		return domain.ToneNegative
	default:
		return domain.ToneNeutral
	}
}

func numberCard(label string, v float64, tone domain.Tone) domain.MetricCard {
	n := round2(v)
	return domain.MetricCard{Label: label, Value: fmtNumber(n), Number: &n, Tone: tone}
}

func currencyCard(label string, v float64, tone domain.Tone) domain.MetricCard {
	n := round2(v)
	return domain.MetricCard{Label: label, Value: fmtCurrency(n), Number: &n, Tone: tone}
}

func percentCard(label string, v float64, tone domain.Tone) domain.MetricCard {
	n := round2(v * 100)
	return domain.MetricCard{Label: label, Value: fmtPercent(v), Number: &n, Tone: tone}
}

func textCard(label, value string, tone domain.Tone) domain.MetricCard {
	return domain.MetricCard{Label: label, Value: value, Tone: tone}
}

func emphasized(card domain.MetricCard) domain.MetricCard {
	card.Emphasize = true
	return card
}

// costImpactNotes summarizes the advanced cost contributions for the notes
// section, only mentioning components that are switched on.
func costImpactNotes(s OrderStats, toggles domain.CostToggles, costs domain.ResolvedCosts) []string {
	var notes []string
	if toggles.Salvage {
		notes = append(notes, "Salvage contribution: "+fmtCurrency(costs.Salvage*s.Leftover)+".")
	}
	if toggles.Holding {
		notes = append(notes, "Holding cost impact: "+fmtCurrency(-costs.Holding*s.Leftover)+".")
	}
	if toggles.Shortage || toggles.Penalty {
		notes = append(notes, "Shortage and penalty impact: "+fmtCurrency(-(costs.Shortage+costs.Penalty)*s.Unmet)+".")
	}
	return notes
}
