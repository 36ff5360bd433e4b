package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDistributions() map[string]Distribution {
	return map[string]Distribution{
		"normal":  Normal{Mean: 100, StdDev: 20},
		"uniform": Uniform{LowerBound: 60, UpperBound: 140},
		"discrete": Discrete{
			Values:        []float64{140, 60, 100},
			Probabilities: []float64{0.3, 0.2, 0.5},
		},
	}
}

func TestExpectedSalesMonotoneAndBounded(t *testing.T) {
	for name, dist := range testDistributions() {
		t.Run(name, func(t *testing.T) {
			// Tolerances sit at the numeric-integration noise floor, well
			// below the 2-decimal display precision.
			expected := dist.ExpectedDemand()
			previous := 0.0
			for q := 0.0; q <= 400; q += 10 {
				sales := dist.ExpectedSales(q)
				assert.GreaterOrEqual(t, sales+1e-4, previous, "expected sales must not decrease in Q")
				assert.LessOrEqual(t, sales, q+1e-2, "expected sales cannot exceed the order quantity")
				assert.LessOrEqual(t, sales, expected+1e-2, "expected sales cannot exceed expected demand")
				previous = sales
			}
			// Far above the support, sales saturate at expected demand.
			assert.InDelta(t, expected, dist.ExpectedSales(1e5), 1e-2)
		})
	}
}

func TestServiceLevelBoundsAndMonotone(t *testing.T) {
	for name, dist := range testDistributions() {
		t.Run(name, func(t *testing.T) {
			previous := 0.0
			for q := 0.0; q <= 400; q += 5 {
				level := dist.ServiceLevel(q)
				assert.GreaterOrEqual(t, level, 0.0)
				assert.LessOrEqual(t, level, 1.0)
				assert.GreaterOrEqual(t, level+1e-12, previous)
				previous = level
			}
		})
	}
}

func TestUniformClosedForms(t *testing.T) {
	u := Uniform{LowerBound: 60, UpperBound: 140}

	assert.InDelta(t, 50, u.ExpectedSales(50), 1e-12, "below the lower bound sales equal Q")
	assert.InDelta(t, 100, u.ExpectedSales(200), 1e-12, "above the upper bound sales equal the mean")
	assert.InDelta(t, 90, u.ExpectedSales(100), 1e-9)

	assert.InDelta(t, 100, u.ExpectedDemand(), 1e-12)
	assert.InDelta(t, 0.5, u.CDF(100), 1e-12)
	assert.InDelta(t, 60, u.Quantile(0), 1e-12)
	assert.InDelta(t, 140, u.Quantile(1), 1e-12)
	assert.InDelta(t, 80, u.Quantile(0.25), 1e-12)
}

func TestNormalExpectedSalesMatchesClosedForm(t *testing.T) {
	n := Normal{Mean: 100, StdDev: 20}

	// E[min(Q,D)] = mean*Phi(z) + Q*(1-Phi(z)) - sigma*phi(z), z=(Q-mean)/sigma;
	// the zero-truncation correction is negligible at mean/sigma = 5.
	for _, q := range []float64{60, 100, 140, 200} {
		z := (q - n.Mean) / n.StdDev
		want := n.Mean*NormalCDF(z, 0, 1) + q*(1-NormalCDF(z, 0, 1)) - n.StdDev*NormalPDF(z, 0, 1)
		assert.InDelta(t, want, n.ExpectedSales(q), 0.05, "Q=%v", q)
	}
}

func TestNormalExpectedDemandTruncatedAtZero(t *testing.T) {
	assert.InDelta(t, 100, Normal{Mean: 100, StdDev: 20}.ExpectedDemand(), 1e-3)

	// With heavy mass below zero the truncated expectation exceeds the mean.
	lowMean := Normal{Mean: 5, StdDev: 10}
	assert.Greater(t, lowMean.ExpectedDemand(), 5.0)
}

func TestNormalQuantileClampsAtZero(t *testing.T) {
	n := Normal{Mean: 5, StdDev: 10}
	assert.Equal(t, 0.0, n.Quantile(0.01))
	assert.Greater(t, n.Quantile(0.99), 5.0)
}

func TestDiscreteQuantileTieBreaks(t *testing.T) {
	d := Discrete{
		Values:        []float64{140, 60, 100}, // deliberately unsorted
		Probabilities: []float64{0.3, 0.2, 0.5},
	}

	assert.Equal(t, 60.0, d.Quantile(0.1))
	assert.Equal(t, 60.0, d.Quantile(0.2), "cumulative 0.2 meets the target within tolerance")
	assert.Equal(t, 100.0, d.Quantile(0.21))
	assert.Equal(t, 100.0, d.Quantile(0.7))
	assert.Equal(t, 140.0, d.Quantile(0.71))
	assert.Equal(t, 140.0, d.Quantile(1.0))
}

func TestDiscreteExpectations(t *testing.T) {
	d := Discrete{
		Values:        []float64{60, 100, 140},
		Probabilities: []float64{0.2, 0.5, 0.3},
	}

	require.InDelta(t, 104, d.ExpectedDemand(), 1e-12)
	assert.InDelta(t, 0.2, d.CDF(60), 1e-12)
	assert.InDelta(t, 0.7, d.CDF(100), 1e-12)
	assert.InDelta(t, 1.0, d.CDF(500), 1e-12)

	// E[min(100, D)] = 60*0.2 + 100*0.5 + 100*0.3 = 92.
	assert.InDelta(t, 92, d.ExpectedSales(100), 1e-12)
}
