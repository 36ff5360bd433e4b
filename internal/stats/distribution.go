package stats

import (
	"math"
	"sort"
)

// Distribution is the demand distribution contract the evaluators work
// against. Implementations are immutable value types.
type Distribution interface {
	// ExpectedSales returns E[min(Q, D)] for order quantity Q.
	ExpectedSales(orderQuantity float64) float64
	// ServiceLevel returns P(D <= Q) clamped to [0, 1].
	ServiceLevel(orderQuantity float64) float64
	// Quantile inverts ServiceLevel: the smallest quantity covering demand
	// with the given probability.
	Quantile(probability float64) float64
	// ExpectedDemand returns E[D] (truncated at zero where the support is
	// unbounded below).
	ExpectedDemand() float64
	// CDF returns P(D <= x).
	CDF(x float64) float64
	// MaxReasonableDemand returns an upper reference point for sampling
	// demand-axis sensitivity curves.
	MaxReasonableDemand() float64
}

// integrationSteps is the fixed midpoint-rule grid size for normal
// expected-sales. Fixed rather than adaptive so worst-case latency is
// bounded; the residual error is orders of magnitude below display rounding.
const integrationSteps = 1200

// Normal is a normal demand distribution. StdDev must be positive.
type Normal struct {
	Mean   float64
	StdDev float64
}

// ExpectedSales integrates min(Q, d) against the density over [0, ub] with a
// midpoint rule, then adds Q*(1-CDF(ub)) for the unbounded right tail.
func (n Normal) ExpectedSales(orderQuantity float64) float64 {
	q := math.Max(orderQuantity, 0)
	// Quantities beyond the mass of the distribution do not widen the
	// integration domain; past mean+6*sigma the tail correction already
	// accounts for them, and capping keeps the fixed grid fine-grained.
	qCap := math.Min(q, n.Mean+6*n.StdDev)
	upper := math.Max(n.Mean+6*n.StdDev, qCap+4*n.StdDev)
	if upper <= 0 {
		return 0
	}

	step := upper / float64(integrationSteps)
	total := 0.0
	for i := 0; i < integrationSteps; i++ {
		x := (float64(i) + 0.5) * step
		total += math.Min(q, x) * NormalPDF(x, n.Mean, n.StdDev) * step
	}
	// Beyond ub demand exceeds Q for any practical Q, so sales are Q there.
	total += q * (1.0 - NormalCDF(upper, n.Mean, n.StdDev))
	return total
}

func (n Normal) ServiceLevel(orderQuantity float64) float64 {
	return Clamp(n.CDF(orderQuantity), 0, 1)
}

// Quantile clamps negative quantiles to zero: demand below zero has no
// physical meaning, so the zero crossing absorbs the left tail.
func (n Normal) Quantile(probability float64) float64 {
	return math.Max(InverseNormalCDF(probability, n.Mean, n.StdDev), 0)
}

// ExpectedDemand is the expectation of the distribution truncated at zero:
// mean*Phi(mean/sigma) + sigma*phi(mean/sigma).
func (n Normal) ExpectedDemand() float64 {
	z := n.Mean / n.StdDev
	return n.Mean*NormalCDF(z, 0, 1) + n.StdDev*NormalPDF(z, 0, 1)
}

func (n Normal) CDF(x float64) float64 {
	return NormalCDF(x, n.Mean, n.StdDev)
}

func (n Normal) MaxReasonableDemand() float64 {
	return math.Max(1, n.Quantile(0.995))
}

// Uniform is a continuous uniform demand distribution on
// [LowerBound, UpperBound], with UpperBound > LowerBound.
type Uniform struct {
	LowerBound float64
	UpperBound float64
}

func (u Uniform) ExpectedSales(orderQuantity float64) float64 {
	q := math.Max(orderQuantity, 0)
	switch {
	case q <= u.LowerBound:
		return q
	case q >= u.UpperBound:
		return (u.LowerBound + u.UpperBound) / 2
	default:
		width := u.UpperBound - u.LowerBound
		return ((q*q-u.LowerBound*u.LowerBound)/2 + q*(u.UpperBound-q)) / width
	}
}

func (u Uniform) ServiceLevel(orderQuantity float64) float64 {
	return Clamp(u.CDF(orderQuantity), 0, 1)
}

func (u Uniform) Quantile(probability float64) float64 {
	p := Clamp(probability, 0, 1)
	return u.LowerBound + p*(u.UpperBound-u.LowerBound)
}

func (u Uniform) ExpectedDemand() float64 {
	return (u.LowerBound + u.UpperBound) / 2
}

func (u Uniform) CDF(x float64) float64 {
	switch {
	case x <= u.LowerBound:
		return 0
	case x >= u.UpperBound:
		return 1
	default:
		return (x - u.LowerBound) / math.Max(u.UpperBound-u.LowerBound, Eps)
	}
}

func (u Uniform) MaxReasonableDemand() float64 {
	return math.Max(1, u.UpperBound)
}

// Discrete is a finite demand distribution. Values and Probabilities have
// the same length; values may arrive unsorted, so every cumulative operation
// sorts first.
type Discrete struct {
	Values        []float64
	Probabilities []float64
}

type discretePoint struct {
	value float64
	prob  float64
}

func (d Discrete) sorted() []discretePoint {
	points := make([]discretePoint, len(d.Values))
	for i, v := range d.Values {
		points[i] = discretePoint{value: v, prob: d.Probabilities[i]}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].value < points[j].value })
	return points
}

func (d Discrete) ExpectedSales(orderQuantity float64) float64 {
	q := math.Max(orderQuantity, 0)
	total := 0.0
	for _, pt := range d.sorted() {
		total += math.Min(q, pt.value) * pt.prob
	}
	return total
}

func (d Discrete) ServiceLevel(orderQuantity float64) float64 {
	return Clamp(d.CDF(orderQuantity), 0, 1)
}

// Quantile returns the first support value (in ascending order) whose
// cumulative probability meets or exceeds the target, with an Eps tolerance
// so sums like 0.2+0.5 match a 0.7 target. Defaults to the largest value.
func (d Discrete) Quantile(probability float64) float64 {
	points := d.sorted()
	if len(points) == 0 {
		return 0
	}
	cumulative := 0.0
	for _, pt := range points {
		cumulative += pt.prob
		if cumulative+Eps >= probability {
			return pt.value
		}
	}
	return points[len(points)-1].value
}

func (d Discrete) ExpectedDemand() float64 {
	total := 0.0
	for i, v := range d.Values {
		total += v * d.Probabilities[i]
	}
	return total
}

func (d Discrete) CDF(x float64) float64 {
	total := 0.0
	for i, v := range d.Values {
		if v <= x {
			total += d.Probabilities[i]
		}
	}
	return total
}

func (d Discrete) MaxReasonableDemand() float64 {
	max := 0.0
	for _, v := range d.Values {
		if v > max {
			max = v
		}
	}
	return math.Max(1, max)
}
