package evaluate

import (
	"fmt"
	"math"

	"github.com/supplylab/contractlab/internal/domain"
	"github.com/supplylab/contractlab/internal/stats"
)

// qflexOutcome is the order position under a quantity flexibility contract:
// the final order is the demand reference clamped into the band the initial
// commitment and adjustment range define.
type qflexOutcome struct {
	lower        float64
	upper        float64
	finalOrder   float64
	unmet        float64
	overstock    float64
	procurement  float64
	totalCost    float64
	serviceLevel float64
}

func quantityFlexCost(demand, commitment, adjustmentPct, wholesale float64, costs domain.ResolvedCosts) qflexOutcome {
	span := adjustmentPct / 100
	out := qflexOutcome{
		lower: math.Max(0, commitment*(1-span)),
		upper: commitment * (1 + span),
	}
	out.finalOrder = stats.Clamp(demand, out.lower, out.upper)
	out.unmet = math.Max(demand-out.finalOrder, 0)
	out.overstock = math.Max(out.finalOrder-demand, 0)
	out.procurement = out.finalOrder * wholesale
	out.totalCost = out.procurement +
		costs.Holding*out.overstock +
		(costs.Shortage+costs.Penalty)*out.unmet -
		costs.Salvage*out.overstock

	out.serviceLevel = 1.0
	if demand > stats.Eps {
		out.serviceLevel = stats.Clamp((demand-out.unmet)/demand, 0, 1)
	}
	return out
}

func evaluateQuantityFlexibility(p *domain.Payload) *domain.CalculationResult {
	commitment := p.Input(domain.FieldInitialCommitment)
	adjustmentPct := p.Input(domain.FieldAdjustmentRange)
	wholesale := p.Input(domain.FieldWholesalePrice)

	ref := p.Demand.DemandReference()
	out := quantityFlexCost(ref, commitment, adjustmentPct, wholesale, p.Costs)

	finalLabel := "Final Order Quantity"
	if p.Demand.IsRandom() {
		finalLabel = "Expected Final Order"
	}

	var narrative string
	switch {
	case out.unmet > out.overstock && out.unmet > stats.Eps:
		narrative = fmt.Sprintf(
			"Demand of %s exceeds the flexibility band [%s, %s]; %s units go unmet even at the band ceiling.",
			fmtNumber(ref), fmtNumber(out.lower), fmtNumber(out.upper), fmtNumber(out.unmet))
	case out.overstock > out.unmet && out.overstock > stats.Eps:
		narrative = fmt.Sprintf(
			"Demand of %s sits below the flexibility band [%s, %s]; %s units are overstocked at the band floor.",
			fmtNumber(ref), fmtNumber(out.lower), fmtNumber(out.upper), fmtNumber(out.overstock))
	default:
		narrative = fmt.Sprintf(
			"Demand of %s falls inside the flexibility band [%s, %s]; the final order matches it exactly.",
			fmtNumber(ref), fmtNumber(out.lower), fmtNumber(out.upper))
	}

	result := &domain.CalculationResult{
		ContractType: domain.ContractQuantityFlexibility,
		MetricsTitle: "Order Adjustment",
		KeyDecision:  narrative,
	}

	result.Metrics = []domain.MetricCard{
		emphasized(numberCard(finalLabel, out.finalOrder, domain.ToneInfo)),
		numberCard("Lower Flex Bound", out.lower, domain.ToneNeutral),
		numberCard("Upper Flex Bound", out.upper, domain.ToneNeutral),
		percentCard("Service Level", out.serviceLevel, serviceTone(out.serviceLevel)),
		emphasized(currencyCard("Total Cost", out.totalCost, domain.ToneNeutral)),
		currencyCard("Total Procurement Cost", out.procurement, domain.ToneNeutral),
		numberCard("Unmet Demand", out.unmet, toneForShortfall(out.unmet)),
		numberCard("Overstock", out.overstock, toneForShortfall(out.overstock)),
	}

	if p.Demand.IsRandom() {
		dist := p.Demand.Distribution
		result.Metrics = append(result.Metrics,
			numberCard("Expected Demand", p.Demand.ExpectedDemand, domain.ToneInfo),
			percentCard("Prob. Demand Above Upper Band", stats.Clamp(1-dist.CDF(out.upper), 0, 1), domain.ToneInfo),
			percentCard("Prob. Demand Below Lower Band", stats.Clamp(dist.CDF(out.lower), 0, 1), domain.ToneInfo),
		)
	}

	result.Charts = qflexCharts(p, commitment, adjustmentPct, wholesale)

	if p.Toggles.Holding {
		result.Notes = append(result.Notes, "Holding cost impact: "+fmtCurrency(-p.Costs.Holding*out.overstock)+".")
	}
	if p.Toggles.Shortage || p.Toggles.Penalty {
		result.Notes = append(result.Notes,
			"Shortage and penalty impact: "+fmtCurrency(-(p.Costs.Shortage+p.Costs.Penalty)*out.unmet)+".")
	}
	if p.Toggles.Salvage {
		result.Notes = append(result.Notes, "Salvage offset: "+fmtCurrency(p.Costs.Salvage*out.overstock)+".")
	}
	return result
}

func toneForShortfall(v float64) domain.Tone {
	if v > stats.Eps {
		return domain.ToneNegative
	}
	return domain.ToneNeutral
}

func qflexCharts(p *domain.Payload, commitment, adjustmentPct, wholesale float64) []domain.ChartConfig {
	dGrid := demandGrid(p.Demand)
	at := func(d float64) qflexOutcome {
		return quantityFlexCost(d, commitment, adjustmentPct, wholesale, p.Costs)
	}

	return []domain.ChartConfig{
		{
			Title:  "Total Cost vs Demand",
			XLabel: "Demand",
			YLabel: "Total Cost",
			Series: []domain.ChartSeries{
				sampleSeries("cost", "Total Cost", dGrid, func(d float64) float64 { return at(d).totalCost }),
			},
		},
		{
			Title:  "Final Order vs Demand",
			XLabel: "Demand",
			YLabel: "Final Order",
			Series: []domain.ChartSeries{
				sampleSeries("final", "Final Order", dGrid, func(d float64) float64 { return at(d).finalOrder }),
				sampleSeries("lower", "Lower Bound", dGrid, func(d float64) float64 { return at(d).lower }),
				sampleSeries("upper", "Upper Bound", dGrid, func(d float64) float64 { return at(d).upper }),
			},
		},
	}
}
