package evaluate

import (
	"fmt"

	"github.com/supplylab/contractlab/internal/domain"
)

// revenueShareProfits splits channel profit under a revenue-sharing
// contract: the retailer concedes the share alpha of sales revenue in
// exchange for the lower wholesale price; the supplier collects that share
// on top of the wholesale revenue.
func revenueShareProfits(s OrderStats, retail, wholesale, alpha, quantity float64, costs domain.ResolvedCosts) (retailer, supplier float64) {
	retailer = (1-alpha)*retail*s.Sales - wholesale*quantity - mismatchCost(s, costs)
	supplier = alpha*retail*s.Sales + wholesale*quantity
	return retailer, supplier
}

// revenueShareCoordination grades the share ratio: a moderate share with
// high service aligns incentives Strongly, a share inside the workable band
// is Moderate, anything outside it Weak.
func revenueShareCoordination(alpha, serviceLevel float64) string {
	switch {
	case alpha >= 0.2 && alpha <= 0.45 && serviceLevel >= 0.85:
		return "Strong"
	case alpha >= 0.1 && alpha <= 0.6:
		return "Moderate"
	default:
		return "Weak"
	}
}

func evaluateRevenueSharing(p *domain.Payload) *domain.CalculationResult {
	retail := p.Input(domain.FieldRetailPrice)
	wholesale := p.Input(domain.FieldWholesalePrice)
	alpha := p.Input(domain.FieldRevenueShareRatio)
	quantity := p.Input(domain.FieldOrderQuantity)

	s := orderStats(quantity, p.Demand)
	retailer, supplier := revenueShareProfits(s, retail, wholesale, alpha, quantity, p.Costs)
	total := retailer + supplier

	coordination := revenueShareCoordination(alpha, s.ServiceLevel)
	tone := domain.ToneNegative
	switch coordination {
	case "Strong":
		tone = domain.TonePositive
	case "Moderate":
		tone = domain.ToneInfo
	}

	result := &domain.CalculationResult{
		ContractType: domain.ContractRevenueSharing,
		MetricsTitle: "Channel Profit Split",
		KeyDecision: fmt.Sprintf(
			"Sharing %s of revenue at a service level of %s makes contract coordination %s; the retailer earns %s and the supplier %s.",
			fmtPercent(alpha), fmtPercent(s.ServiceLevel), coordination, fmtCurrency(retailer), fmtCurrency(supplier)),
	}

	result.Metrics = []domain.MetricCard{
		emphasized(textCard("Coordination Indicator", coordination, tone)),
		emphasized(currencyCard("Retailer Profit", retailer, toneForSign(retailer))),
		currencyCard("Supplier Profit", supplier, toneForSign(supplier)),
		currencyCard("Total Profit", total, toneForSign(total)),
		percentCard("Revenue Share Ratio", alpha, domain.ToneInfo),
		numberCard("Order Quantity", quantity, domain.ToneNeutral),
		percentCard("Service Level", s.ServiceLevel, serviceTone(s.ServiceLevel)),
		numberCard(leftoverLabel(p.Demand), s.Leftover, domain.ToneNeutral),
	}
	result.Metrics = append(result.Metrics, riskMetrics(p.Demand, quantity, s)...)

	result.Charts = revenueShareCharts(p, retail, wholesale, alpha, quantity)
	result.Notes = costImpactNotes(s, p.Toggles, p.Costs)
	return result
}

func revenueShareCharts(p *domain.Payload, retail, wholesale, alpha, quantity float64) []domain.ChartConfig {
	grid := quantityGrid(quantity, p.Demand)
	retailerAt := func(q float64) float64 {
		r, _ := revenueShareProfits(orderStats(q, p.Demand), retail, wholesale, alpha, q, p.Costs)
		return r
	}
	supplierAt := func(q float64) float64 {
		_, s := revenueShareProfits(orderStats(q, p.Demand), retail, wholesale, alpha, q, p.Costs)
		return s
	}
	totalAt := func(q float64) float64 {
		r, s := revenueShareProfits(orderStats(q, p.Demand), retail, wholesale, alpha, q, p.Costs)
		return r + s
	}

	dGrid := demandGrid(p.Demand)
	retailerAtDemand := func(d float64) float64 {
		ctx := domain.DemandContext{Kind: domain.DemandDeterministic, Demand: d}
		r, _ := revenueShareProfits(orderStats(quantity, ctx), retail, wholesale, alpha, quantity, p.Costs)
		return r
	}
	supplierAtDemand := func(d float64) float64 {
		ctx := domain.DemandContext{Kind: domain.DemandDeterministic, Demand: d}
		_, s := revenueShareProfits(orderStats(quantity, ctx), retail, wholesale, alpha, quantity, p.Costs)
		return s
	}

	return []domain.ChartConfig{
		{
			Title:  "Profit vs Order Quantity",
			XLabel: "Order Quantity",
			YLabel: "Profit",
			Series: []domain.ChartSeries{
				sampleSeries("retailer", "Retailer", grid, retailerAt),
				sampleSeries("supplier", "Supplier", grid, supplierAt),
				sampleSeries("total", "Total", grid, totalAt),
			},
		},
		{
			Title:  "Profit vs Demand",
			XLabel: "Demand",
			YLabel: "Profit",
			Series: []domain.ChartSeries{
				sampleSeries("retailer", "Retailer", dGrid, retailerAtDemand),
				sampleSeries("supplier", "Supplier", dGrid, supplierAtDemand),
			},
		},
	}
}
