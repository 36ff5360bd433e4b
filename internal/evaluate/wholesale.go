package evaluate

import (
	"fmt"

	"github.com/supplylab/contractlab/internal/domain"
	"github.com/supplylab/contractlab/internal/stats"
)

// wholesaleProfit is the retailer profit under a wholesale price contract
// for a given order quantity and inventory position.
func wholesaleProfit(s OrderStats, retail, wholesale, quantity float64, costs domain.ResolvedCosts) float64 {
	return retail*s.Sales + costs.Salvage*s.Leftover - wholesale*quantity - mismatchCost(s, costs)
}

func evaluateWholesale(p *domain.Payload) *domain.CalculationResult {
	retail := p.Input(domain.FieldRetailPrice)
	wholesale := p.Input(domain.FieldWholesalePrice)
	quantity := p.Input(domain.FieldOrderQuantity)

	s := orderStats(quantity, p.Demand)
	profit := wholesaleProfit(s, retail, wholesale, quantity, p.Costs)

	result := &domain.CalculationResult{
		ContractType: domain.ContractWholesale,
		MetricsTitle: "Stocking & Profitability",
	}

	// Newsvendor decision point. The critical fractile balances the unit
	// underage margin against the unit overage loss; a non-positive
	// denominator means salvage recovers the full retail price and the
	// optimum is unbounded, so the decision point is withheld.
	profitLabel := "Profit"
	denominator := retail - p.Costs.Salvage
	fractile := 0.0
	fractileDefined := denominator > stats.Eps
	if fractileDefined {
		fractile = stats.Clamp((retail-wholesale)/denominator, 0, 1)
	} else {
		result.Warnings = append(result.Warnings,
			"Optimal quantity is not well-defined with the current salvage and price settings.")
	}

	optimalQty := s.DemandReference
	if p.Demand.IsRandom() {
		profitLabel = "Expected Profit"
		if fractileDefined {
			optimalQty = p.Demand.Distribution.Quantile(fractile)
		}
	}

	if fractileDefined {
		result.KeyDecision = fmt.Sprintf(
			"Ordering %s units yields a %s of %s; the newsvendor-optimal quantity at the %s critical fractile is %s units.",
			fmtNumber(quantity), profitLabel, fmtCurrency(profit), fmtPercent(fractile), fmtNumber(optimalQty))
	} else {
		result.KeyDecision = fmt.Sprintf(
			"Ordering %s units yields a %s of %s.", fmtNumber(quantity), profitLabel, fmtCurrency(profit))
	}

	result.Metrics = []domain.MetricCard{
		emphasized(currencyCard(profitLabel, profit, toneForSign(profit))),
		numberCard("Chosen Order Quantity", quantity, domain.ToneNeutral),
		numberCard(salesLabel(p.Demand), s.Sales, domain.ToneNeutral),
		currencyCard("Procurement Cost", wholesale*quantity, domain.ToneNeutral),
		percentCard("Service Level", s.ServiceLevel, serviceTone(s.ServiceLevel)),
		numberCard(leftoverLabel(p.Demand), s.Leftover, domain.ToneNeutral),
	}
	if fractileDefined {
		result.Metrics = append(result.Metrics,
			emphasized(numberCard("Optimal Order Quantity", optimalQty, domain.ToneInfo)),
			percentCard("Critical Fractile", fractile, domain.ToneInfo),
		)
	}
	result.Metrics = append(result.Metrics, riskMetrics(p.Demand, quantity, s)...)

	result.Charts = wholesaleCharts(p, retail, wholesale, quantity)
	result.Notes = costImpactNotes(s, p.Toggles, p.Costs)
	return result
}

func wholesaleCharts(p *domain.Payload, retail, wholesale, quantity float64) []domain.ChartConfig {
	profitAtQty := func(q float64) float64 {
		return wholesaleProfit(orderStats(q, p.Demand), retail, wholesale, q, p.Costs)
	}
	profitAtDemand := func(d float64) float64 {
		ctx := domain.DemandContext{Kind: domain.DemandDeterministic, Demand: d}
		return wholesaleProfit(orderStats(quantity, ctx), retail, wholesale, quantity, p.Costs)
	}

	return []domain.ChartConfig{
		{
			Title:  "Profit vs Order Quantity",
			XLabel: "Order Quantity",
			YLabel: "Profit",
			Series: []domain.ChartSeries{
				sampleSeries("profit", "Profit", quantityGrid(quantity, p.Demand), profitAtQty),
			},
		},
		{
			Title:  "Profit vs Demand",
			XLabel: "Demand",
			YLabel: "Profit",
			Series: []domain.ChartSeries{
				sampleSeries("profit", "Profit", demandGrid(p.Demand), profitAtDemand),
			},
		},
	}
}
