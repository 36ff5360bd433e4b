package evaluate

import (
	"fmt"
	"math"

	"github.com/supplylab/contractlab/internal/domain"
	"github.com/supplylab/contractlab/internal/stats"
)

// optionOutcome captures the cost position of an option-hedged procurement
// strategy against a demand figure and spot price.
type optionOutcome struct {
	shouldExercise bool
	exercised      float64
	totalCost      float64
	spotOnlyCost   float64
}

// optionCost evaluates the standard option strategy: exercise when the spot
// price exceeds the strike, cover exercised units at the strike, and buy any
// remainder on the spot market. The premium is sunk either way.
func optionCost(demand, optionQty, strike, premium, spot float64) optionOutcome {
	out := optionOutcome{
		shouldExercise: spot > strike,
		spotOnlyCost:   demand * spot,
	}
	if out.shouldExercise {
		out.exercised = math.Min(demand, optionQty)
		out.totalCost = optionQty*premium + out.exercised*strike + math.Max(demand-out.exercised, 0)*spot
	} else {
		out.totalCost = optionQty*premium + demand*spot
	}
	return out
}

// optionCostExpected is the expected-value analogue under random demand,
// with E[min(Q, D)] standing in for the exercised quantity.
func optionCostExpected(demand domain.DemandContext, optionQty, strike, premium, spot float64) optionOutcome {
	expectedMin := demand.Distribution.ExpectedSales(optionQty)
	expectedDemand := demand.ExpectedDemand

	out := optionOutcome{
		shouldExercise: spot > strike,
		spotOnlyCost:   expectedDemand * spot,
	}
	if out.shouldExercise {
		out.exercised = expectedMin
		out.totalCost = optionQty*premium + expectedMin*strike + math.Max(expectedDemand-expectedMin, 0)*spot
	} else {
		out.totalCost = optionQty*premium + expectedDemand*spot
	}
	return out
}

func evaluateOptionStandard(p *domain.Payload) *domain.CalculationResult {
	optionQty := p.Input(domain.FieldOptionQuantity)
	strike := p.Input(domain.FieldStrikePrice)
	premium := p.Input(domain.FieldReservationPrice)
	spot := p.Input(domain.FieldSpotPrice)

	var out optionOutcome
	if p.Demand.IsRandom() {
		out = optionCostExpected(p.Demand, optionQty, strike, premium, spot)
	} else {
		out = optionCost(p.Demand.Demand, optionQty, strike, premium, spot)
	}
	savings := out.spotOnlyCost - out.totalCost
	breakEven := strike + premium

	exercise := "NO"
	exerciseTone := domain.ToneNeutral
	if out.shouldExercise {
		exercise = "YES"
		exerciseTone = domain.TonePositive
	}

	verdict := "costs"
	if savings >= 0 {
		verdict = "saves"
	}
	result := &domain.CalculationResult{
		ContractType: domain.ContractOption,
		OptionMode:   domain.OptionModeStandard,
		MetricsTitle: "Hedging Outcome",
		KeyDecision: fmt.Sprintf(
			"With spot at %s against a %s strike, exercising is %s; the option strategy %s %s versus pure spot purchasing.",
			fmtCurrency(spot), fmtCurrency(strike), exercise, verdict, fmtCurrency(math.Abs(savings))),
	}

	result.Metrics = []domain.MetricCard{
		emphasized(textCard("Should Exercise?", exercise, exerciseTone)),
		numberCard("Quantity Exercised", out.exercised, domain.ToneNeutral),
		currencyCard("Break-even Spot Price", breakEven, domain.ToneInfo),
		emphasized(currencyCard("Total Cost", out.totalCost, domain.ToneNeutral)),
		currencyCard("Pure Spot Strategy Cost", out.spotOnlyCost, domain.ToneNeutral),
		currencyCard("Cost Advantage vs Spot", savings, toneForSign(savings)),
		currencyCard("Total Premium Paid", optionQty*premium, domain.ToneNeutral),
	}

	if p.Demand.IsRandom() {
		dist := p.Demand.Distribution
		overflow := stats.Clamp(1-dist.CDF(optionQty), 0, 1)
		unhedged := math.Max(p.Demand.ExpectedDemand-out.exercised, 0)
		result.Metrics = append(result.Metrics,
			numberCard("Expected Demand", p.Demand.ExpectedDemand, domain.ToneInfo),
			percentCard("Prob. Demand Exceeds Option Quantity", overflow, domain.ToneInfo),
			numberCard("Expected Unhedged Volume", unhedged, domain.ToneInfo),
		)
	}

	result.Charts = optionCharts(p, optionQty, strike, premium, spot)
	result.Notes = []string{
		"Inventory holding, salvage, shortage, and penalty toggles are not applied to option costs.",
	}
	return result
}

func optionCharts(p *domain.Payload, optionQty, strike, premium, spot float64) []domain.ChartConfig {
	strategyAtSpot := func(s float64) float64 {
		if p.Demand.IsRandom() {
			return optionCostExpected(p.Demand, optionQty, strike, premium, s).totalCost
		}
		return optionCost(p.Demand.Demand, optionQty, strike, premium, s).totalCost
	}
	spotOnlyAtSpot := func(s float64) float64 {
		return p.Demand.DemandReference() * s
	}

	dGrid := demandGrid(p.Demand)
	strategyAtDemand := func(d float64) float64 {
		return optionCost(d, optionQty, strike, premium, spot).totalCost
	}
	spotOnlyAtDemand := func(d float64) float64 {
		return d * spot
	}

	sGrid := spotGrid(spot, strike, premium)
	return []domain.ChartConfig{
		{
			Title:  "Cost vs Spot Price",
			XLabel: "Spot Price",
			YLabel: "Total Cost",
			Series: []domain.ChartSeries{
				sampleSeries("option", "Option Strategy", sGrid, strategyAtSpot),
				sampleSeries("spot", "Pure Spot Strategy", sGrid, spotOnlyAtSpot),
			},
			ReferenceLine: &domain.ReferenceLine{Value: round2(strike), Label: "Strike Price"},
		},
		{
			Title:  "Cost vs Demand",
			XLabel: "Demand",
			YLabel: "Total Cost",
			Series: []domain.ChartSeries{
				sampleSeries("option", "Option Strategy", dGrid, strategyAtDemand),
				sampleSeries("spot", "Pure Spot Strategy", dGrid, spotOnlyAtDemand),
			},
		},
	}
}

// evaluateOptionOptimization runs the newsvendor variant: the option
// quantity itself is the decision variable, with the spot premium over the
// exercise price as underage cost and the reservation price as overage cost.
func evaluateOptionOptimization(p *domain.Payload) *domain.CalculationResult {
	mean := p.Input(domain.FieldDemandMean)
	stdDev := p.Input(domain.FieldDemandStdDev)
	strike := p.Input(domain.FieldStrikePrice)
	reservation := p.Input(domain.FieldReservationPrice)
	spot := p.Input(domain.FieldSpotPrice)
	longTerm := p.Input(domain.FieldLongTermPrice)

	underage := spot - strike
	overage := reservation

	targetLevel := 0.0
	if underage+overage > stats.Eps {
		targetLevel = stats.Clamp(underage/(underage+overage), 0, 1)
	}

	dist := stats.Normal{Mean: mean, StdDev: stdDev}
	optimalQty := math.Max(mean+stdDev*stats.InverseStandardNormalCDF(targetLevel), 0)

	strategyCost := optionStrategyCost(dist, optimalQty, strike, reservation, spot)
	longTermCost := mean * longTerm
	savings := longTermCost - strategyCost

	recommendation := "Long-term Contract"
	recommendTone := domain.ToneInfo
	if strategyCost <= longTermCost {
		recommendation = "Option Strategy"
		recommendTone = domain.TonePositive
	}

	result := &domain.CalculationResult{
		ContractType: domain.ContractOption,
		OptionMode:   domain.OptionModeOptimization,
		MetricsTitle: "Option Reservation Optimization",
		KeyDecision: fmt.Sprintf(
			"Reserve %s option units to hit the %s target service level; the %s is cheaper by %s.",
			fmtNumber(optimalQty), fmtPercent(targetLevel), recommendation, fmtCurrency(math.Abs(savings))),
	}

	result.Metrics = []domain.MetricCard{
		emphasized(numberCard("Optimal Option Quantity", optimalQty, domain.ToneInfo)),
		emphasized(textCard("Recommended Strategy", recommendation, recommendTone)),
		percentCard("Target Service Level", targetLevel, domain.ToneInfo),
		currencyCard("Expected Option Strategy Cost", strategyCost, domain.ToneNeutral),
		currencyCard("Long-term Contract Cost", longTermCost, domain.ToneNeutral),
		currencyCard("Expected Savings vs Long-term", savings, toneForSign(savings)),
		numberCard("Underage Cost per Unit", underage, domain.ToneInfo),
		numberCard("Overage Cost per Unit", overage, domain.ToneInfo),
	}

	if underage <= 0 {
		result.Warnings = append(result.Warnings,
			"Expected spot price does not exceed the exercise price, so holding options carries no upside.")
	}

	grid := quantityGrid(optimalQty, domain.DemandContext{
		Kind: domain.DemandRandom, Distribution: dist, ExpectedDemand: dist.ExpectedDemand(),
	})
	result.Charts = []domain.ChartConfig{
		{
			Title:  "Expected Cost vs Option Quantity",
			XLabel: "Option Quantity",
			YLabel: "Expected Cost",
			Series: []domain.ChartSeries{
				sampleSeries("option", "Option Strategy", grid, func(q float64) float64 {
					return optionStrategyCost(dist, q, strike, reservation, spot)
				}),
				sampleSeries("longterm", "Long-term Contract", grid, func(float64) float64 {
					return longTermCost
				}),
			},
			ReferenceLine: &domain.ReferenceLine{Value: round2(optimalQty), Label: "Optimal Quantity"},
		},
	}
	return result
}

// optionStrategyCost is the expected cost of reserving q options: the
// premium on the full reservation, the exercise price on expected exercised
// volume, and the spot price on expected demand beyond the reservation.
func optionStrategyCost(dist stats.Normal, q, strike, reservation, spot float64) float64 {
	expectedMin := dist.ExpectedSales(q)
	expectedDemand := dist.ExpectedDemand()
	return reservation*q + strike*expectedMin + spot*math.Max(expectedDemand-expectedMin, 0)
}
