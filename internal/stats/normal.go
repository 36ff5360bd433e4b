// Package stats implements the distribution math underneath the contract
// evaluators: normal/uniform/discrete demand distributions with CDF,
// inverse-CDF, expected-sales, and service-level functions. Everything here
// is pure float64 arithmetic; callers are expected to have validated the
// distribution parameters already.
package stats

import "math"

const (
	// Eps is the tolerance used for degenerate-denominator and tie-break
	// checks throughout the engine.
	Eps = 1e-9

	sqrt2   = 1.4142135623730951
	sqrt2Pi = 2.5066282746310002
)

// Erf is the Abramowitz & Stegun 7.1.26 rational approximation of the error
// function. Maximum absolute error is about 1.5e-7, which is far below the
// 2-decimal display precision of the engine.
func Erf(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}

	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	t := 1.0 / (1.0 + p*x)
	y := 1.0 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)
	return sign * y
}

// NormalPDF evaluates the normal density with the given mean and standard
// deviation at x.
func NormalPDF(x, mean, stdDev float64) float64 {
	z := (x - mean) / stdDev
	return math.Exp(-0.5*z*z) / (stdDev * sqrt2Pi)
}

// NormalCDF evaluates the normal cumulative distribution function.
func NormalCDF(x, mean, stdDev float64) float64 {
	return 0.5 * (1.0 + Erf((x-mean)/(stdDev*sqrt2)))
}

// Acklam's rational approximation coefficients for the inverse standard
// normal CDF, split into lower-tail, central, and upper-tail regions.
var (
	acklamA = [6]float64{
		-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02,
		1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00,
	}
	acklamB = [5]float64{
		-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02,
		6.680131188771972e+01, -1.328068155288572e+01,
	}
	acklamC = [6]float64{
		-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00,
		-2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00,
	}
	acklamD = [4]float64{
		7.784695709041462e-03, 3.224671290700398e-01,
		2.445134137142996e+00, 3.754408661907416e+00,
	}
)

// InverseStandardNormalCDF returns z such that Phi(z) = p using Acklam's
// rational approximation. p is clamped to [1e-9, 1-1e-9] so the tails stay
// finite.
func InverseStandardNormalCDF(p float64) float64 {
	p = Clamp(p, 1e-9, 1-1e-9)

	const (
		pLow  = 0.02425
		pHigh = 0.97575
	)

	switch {
	case p < pLow:
		q := math.Sqrt(-2.0 * math.Log(p))
		return (((((acklamC[0]*q+acklamC[1])*q+acklamC[2])*q+acklamC[3])*q+acklamC[4])*q + acklamC[5]) /
			((((acklamD[0]*q+acklamD[1])*q+acklamD[2])*q+acklamD[3])*q + 1.0)
	case p > pHigh:
		q := math.Sqrt(-2.0 * math.Log(1.0-p))
		return -(((((acklamC[0]*q+acklamC[1])*q+acklamC[2])*q+acklamC[3])*q+acklamC[4])*q + acklamC[5]) /
			((((acklamD[0]*q+acklamD[1])*q+acklamD[2])*q+acklamD[3])*q + 1.0)
	default:
		q := p - 0.5
		r := q * q
		return (((((acklamA[0]*r+acklamA[1])*r+acklamA[2])*r+acklamA[3])*r+acklamA[4])*r + acklamA[5]) * q /
			(((((acklamB[0]*r+acklamB[1])*r+acklamB[2])*r+acklamB[3])*r+acklamB[4])*r + 1.0)
	}
}

// InverseNormalCDF returns the p-quantile of a normal distribution with the
// given mean and standard deviation.
func InverseNormalCDF(p, mean, stdDev float64) float64 {
	return mean + stdDev*InverseStandardNormalCDF(p)
}

// Clamp bounds value to [low, high].
func Clamp(value, low, high float64) float64 {
	return math.Max(low, math.Min(value, high))
}
