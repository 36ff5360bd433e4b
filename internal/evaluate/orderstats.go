package evaluate

import (
	"math"

	"github.com/supplylab/contractlab/internal/domain"
	"github.com/supplylab/contractlab/internal/stats"
)

// OrderStats captures the inventory position implied by an order quantity
// against a demand context. Under random demand every field is an
// expectation; under deterministic demand they are exact.
type OrderStats struct {
	Sales           float64
	Leftover        float64
	Unmet           float64
	ServiceLevel    float64
	DemandReference float64
}

// orderStats evaluates quantity against the demand context. The random
// branch pulls expected sales and the service level from the distribution;
// the deterministic branch is plain min/max arithmetic.
func orderStats(quantity float64, demand domain.DemandContext) OrderStats {
	if demand.IsRandom() {
		dist := demand.Distribution
		sales := dist.ExpectedSales(quantity)
		ref := demand.ExpectedDemand
		return OrderStats{
			Sales:           sales,
			Leftover:        math.Max(quantity-sales, 0),
			Unmet:           math.Max(ref-sales, 0),
			ServiceLevel:    dist.ServiceLevel(quantity),
			DemandReference: ref,
		}
	}

	d := demand.Demand
	sales := math.Min(quantity, d)
	level := 1.0
	if d > stats.Eps {
		level = stats.Clamp(sales/d, 0, 1)
	}
	return OrderStats{
		Sales:           sales,
		Leftover:        math.Max(quantity-d, 0),
		Unmet:           math.Max(d-quantity, 0),
		ServiceLevel:    level,
		DemandReference: d,
	}
}

// mismatchCost is the holding/shortage/penalty burden of an inventory
// position. Salvage is not part of it: profit formulas credit salvage on
// leftover directly and cost formulas offset it against overstock.
func mismatchCost(s OrderStats, costs domain.ResolvedCosts) float64 {
	return costs.Holding*s.Leftover + (costs.Shortage+costs.Penalty)*s.Unmet
}
