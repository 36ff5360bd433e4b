package evaluate

import (
	"math"

	"github.com/supplylab/contractlab/internal/domain"
)

// curvePoints is the fixed sample count for every sensitivity curve.
const curvePoints = 32

// linspace returns n evenly spaced samples covering [low, high] inclusive.
func linspace(low, high float64, n int) []float64 {
	if n < 2 || high <= low {
		return []float64{low}
	}
	step := (high - low) / float64(n-1)
	values := make([]float64, n)
	for i := range values {
		values[i] = low + float64(i)*step
	}
	return values
}

// quantityGrid spans the decision-variable axis for a curve: from zero to at
// least twice the anchor value (and past the plausible demand range), with a
// floor of 40 so near-zero anchors still produce a readable sweep.
func quantityGrid(anchor float64, demand domain.DemandContext) []float64 {
	upper := math.Max(2*anchor, 40)
	if demand.IsRandom() {
		upper = math.Max(upper, 1.5*demand.Distribution.MaxReasonableDemand())
	} else {
		upper = math.Max(upper, 1.5*demand.Demand)
	}
	return linspace(0, upper, curvePoints)
}

// demandGrid spans the demand axis for demand-sensitivity curves.
func demandGrid(demand domain.DemandContext) []float64 {
	return quantityGrid(demand.DemandReference(), demand)
}

// spotGrid spans a distribution-appropriate spot-price band around the
// current spot and strike prices.
func spotGrid(spot, strike, premium float64) []float64 {
	low := math.Max(0, math.Min(spot, strike)*0.4)
	high := math.Max(math.Max(spot, strike), strike+premium)*1.8 + 1
	return linspace(low, high, curvePoints)
}

// sampleSeries evaluates fn across grid and rounds each sample for display.
func sampleSeries(key, label string, grid []float64, fn func(float64) float64) domain.ChartSeries {
	points := make([]domain.ChartPoint, len(grid))
	for i, x := range grid {
		points[i] = domain.ChartPoint{X: round2(x), Y: round2(fn(x))}
	}
	return domain.ChartSeries{Key: key, Label: label, Points: points}
}
