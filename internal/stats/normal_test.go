package stats

import (
	"math"
	"testing"
)

func TestErfKnownValues(t *testing.T) {
	cases := []struct {
		x    float64
		want float64
	}{
		{0, 0},
		{0.5, 0.5204999},
		{1, 0.8427008},
		{2, 0.9953223},
		{-1, -0.8427008},
	}

	for _, tc := range cases {
		got := Erf(tc.x)
		if math.Abs(got-tc.want) > 1e-5 {
			t.Errorf("Erf(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestNormalCDFAtMean(t *testing.T) {
	for _, stdDev := range []float64{0.5, 1, 20, 300} {
		got := NormalCDF(100, 100, stdDev)
		if math.Abs(got-0.5) > 1e-9 {
			t.Errorf("NormalCDF(mean, mean, %v) = %v, want 0.5", stdDev, got)
		}
	}
}

func TestInverseStandardNormalCDFKnownValues(t *testing.T) {
	cases := []struct {
		p    float64
		want float64
	}{
		{0.5, 0},
		{0.975, 1.959964},
		{0.025, -1.959964},
		{0.99, 2.326348},
		{0.01, -2.326348},
		{0.001, -3.090232}, // low-tail branch
		{0.999, 3.090232},  // high-tail branch
	}

	for _, tc := range cases {
		got := InverseStandardNormalCDF(tc.p)
		if math.Abs(got-tc.want) > 1e-4 {
			t.Errorf("InverseStandardNormalCDF(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestInverseStandardNormalCDFClampsTails(t *testing.T) {
	for _, p := range []float64{-1, 0, 1, 2} {
		got := InverseStandardNormalCDF(p)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("InverseStandardNormalCDF(%v) = %v, want finite", p, got)
		}
	}
}

func TestInverseNormalCDFRoundTrip(t *testing.T) {
	const mean, stdDev = 100.0, 20.0
	for p := 0.01; p < 1; p += 0.01 {
		x := InverseNormalCDF(p, mean, stdDev)
		got := NormalCDF(x, mean, stdDev)
		if math.Abs(got-p) > 1e-6 {
			t.Errorf("round trip at p=%v: CDF(invCDF(p)) = %v", p, got)
		}
	}
}

func TestNormalPDFPeaksAtMean(t *testing.T) {
	peak := NormalPDF(50, 50, 10)
	if NormalPDF(45, 50, 10) >= peak || NormalPDF(55, 50, 10) >= peak {
		t.Error("expected density to peak at the mean")
	}
	want := 1.0 / (10 * math.Sqrt(2*math.Pi))
	if math.Abs(peak-want) > 1e-12 {
		t.Errorf("NormalPDF at mean = %v, want %v", peak, want)
	}
}
