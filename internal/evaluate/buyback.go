package evaluate

import (
	"fmt"

	"github.com/supplylab/contractlab/internal/domain"
	"github.com/supplylab/contractlab/internal/stats"
)

// buybackProfits returns retailer and manufacturer profit under a buyback
// contract: the retailer recovers the buyback price on leftovers, the
// manufacturer funds those returns out of the wholesale revenue.
func buybackProfits(s OrderStats, retail, wholesale, buyback, quantity float64, costs domain.ResolvedCosts) (retailer, manufacturer float64) {
	retailer = retail*s.Sales + buyback*s.Leftover - wholesale*quantity - mismatchCost(s, costs)
	manufacturer = wholesale*quantity - buyback*s.Leftover
	return retailer, manufacturer
}

// buybackCoordination grades how well the buyback terms align the channel:
// a mid-range buyback-to-wholesale ratio with high service is Strong, a
// lighter commitment with decent service is Moderate, anything else Weak.
func buybackCoordination(ratio, serviceLevel float64) string {
	switch {
	case ratio >= 0.3 && ratio <= 0.8 && serviceLevel >= 0.85:
		return "Strong"
	case ratio >= 0.2 && serviceLevel >= 0.7:
		return "Moderate"
	default:
		return "Weak"
	}
}

func evaluateBuyback(p *domain.Payload) *domain.CalculationResult {
	retail := p.Input(domain.FieldRetailPrice)
	wholesale := p.Input(domain.FieldWholesalePrice)
	buyback := p.Input(domain.FieldBuybackPrice)
	quantity := p.Input(domain.FieldOrderQuantity)

	s := orderStats(quantity, p.Demand)
	retailer, manufacturer := buybackProfits(s, retail, wholesale, buyback, quantity, p.Costs)
	total := retailer + manufacturer

	ratio := 0.0
	if wholesale > stats.Eps {
		ratio = buyback / wholesale
	}
	coordination := buybackCoordination(ratio, s.ServiceLevel)

	tone := domain.ToneNegative
	switch coordination {
	case "Strong":
		tone = domain.TonePositive
	case "Moderate":
		tone = domain.ToneInfo
	}

	result := &domain.CalculationResult{
		ContractType: domain.ContractBuyback,
		MetricsTitle: "Channel Profit Split",
		KeyDecision: fmt.Sprintf(
			"At a buyback-to-wholesale ratio of %s and a service level of %s, contract coordination is %s; the retailer keeps %s of the %s channel profit.",
			fmtPercent(ratio), fmtPercent(s.ServiceLevel), coordination, fmtCurrency(retailer), fmtCurrency(total)),
	}

	result.Metrics = []domain.MetricCard{
		emphasized(textCard("Coordination Indicator", coordination, tone)),
		emphasized(currencyCard("Retailer Profit", retailer, toneForSign(retailer))),
		currencyCard("Manufacturer Profit", manufacturer, toneForSign(manufacturer)),
		currencyCard("Total Supply Chain Profit", total, toneForSign(total)),
		numberCard("Order Quantity", quantity, domain.ToneNeutral),
		percentCard("Service Level", s.ServiceLevel, serviceTone(s.ServiceLevel)),
		numberCard(leftoverLabel(p.Demand), s.Leftover, domain.ToneNeutral),
	}
	result.Metrics = append(result.Metrics, riskMetrics(p.Demand, quantity, s)...)

	result.Charts = buybackCharts(p, retail, wholesale, buyback, quantity)
	result.Notes = costImpactNotes(s, p.Toggles, p.Costs)
	return result
}

func buybackCharts(p *domain.Payload, retail, wholesale, buyback, quantity float64) []domain.ChartConfig {
	grid := quantityGrid(quantity, p.Demand)
	retailerAt := func(q float64) float64 {
		r, _ := buybackProfits(orderStats(q, p.Demand), retail, wholesale, buyback, q, p.Costs)
		return r
	}
	manufacturerAt := func(q float64) float64 {
		_, m := buybackProfits(orderStats(q, p.Demand), retail, wholesale, buyback, q, p.Costs)
		return m
	}
	totalAt := func(q float64) float64 {
		r, m := buybackProfits(orderStats(q, p.Demand), retail, wholesale, buyback, q, p.Costs)
		return r + m
	}

	dGrid := demandGrid(p.Demand)
	retailerAtDemand := func(d float64) float64 {
		ctx := domain.DemandContext{Kind: domain.DemandDeterministic, Demand: d}
		r, _ := buybackProfits(orderStats(quantity, ctx), retail, wholesale, buyback, quantity, p.Costs)
		return r
	}
	totalAtDemand := func(d float64) float64 {
		ctx := domain.DemandContext{Kind: domain.DemandDeterministic, Demand: d}
		r, m := buybackProfits(orderStats(quantity, ctx), retail, wholesale, buyback, quantity, p.Costs)
		return r + m
	}

	return []domain.ChartConfig{
		{
			Title:  "Profit vs Order Quantity",
			XLabel: "Order Quantity",
			YLabel: "Profit",
			Series: []domain.ChartSeries{
				sampleSeries("retailer", "Retailer", grid, retailerAt),
				sampleSeries("manufacturer", "Manufacturer", grid, manufacturerAt),
				sampleSeries("total", "Total", grid, totalAt),
			},
		},
		{
			Title:  "Profit vs Demand",
			XLabel: "Demand",
			YLabel: "Profit",
			Series: []domain.ChartSeries{
				sampleSeries("retailer", "Retailer", dGrid, retailerAtDemand),
				sampleSeries("total", "Total", dGrid, totalAtDemand),
			},
		},
	}
}
