package config

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/supplylab/contractlab/internal/domain"
	"github.com/supplylab/contractlab/internal/stats"
)

// probabilitySumTolerance is how far a discrete probability list may drift
// from summing to exactly 1 before it is rejected.
const probabilitySumTolerance = 1e-3

// parseNumber parses a raw text field into a finite float64. Routing through
// decimal rejects NaN/Inf and junk in one place.
func parseNumber(raw string) (float64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// parseNumberList splits a comma, whitespace, or newline separated list of
// numbers. Empty items are skipped; a non-numeric item fails the whole list.
func parseNumberList(raw string) ([]float64, bool) {
	normalized := strings.NewReplacer("\n", ",", "\t", ",", " ", ",").Replace(raw)
	var values []float64
	for _, item := range strings.Split(normalized, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		v, ok := parseNumber(item)
		if !ok {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

// ResolveDemandContext turns raw demand settings into a validated demand
// context. On any failure it returns the full list of problems and no
// context; it never returns a partially populated one.
func ResolveDemandContext(settings domain.DemandSettings) (*domain.DemandContext, []string) {
	switch settings.Type {
	case domain.DemandDeterministic:
		return resolveDeterministic(settings)
	case domain.DemandRandom:
		return resolveRandom(settings)
	default:
		return nil, []string{fmt.Sprintf("Demand type %q is not supported; use deterministic or random.", string(settings.Type))}
	}
}

func resolveDeterministic(settings domain.DemandSettings) (*domain.DemandContext, []string) {
	demand, ok := parseNumber(settings.Demand)
	if !ok {
		return nil, []string{"Demand must be a finite number."}
	}
	if demand < 0 {
		return nil, []string{"Demand cannot be negative."}
	}
	return &domain.DemandContext{Kind: domain.DemandDeterministic, Demand: demand}, nil
}

func resolveRandom(settings domain.DemandSettings) (*domain.DemandContext, []string) {
	var dist stats.Distribution
	var errs []string

	switch settings.Distribution {
	case domain.DistributionNormal:
		dist, errs = resolveNormal(settings)
	case domain.DistributionUniform:
		dist, errs = resolveUniform(settings)
	case domain.DistributionDiscrete:
		dist, errs = resolveDiscrete(settings)
	default:
		return nil, []string{fmt.Sprintf("Distribution type %q is not supported; use normal, uniform, or discrete.", string(settings.Distribution))}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &domain.DemandContext{
		Kind:           domain.DemandRandom,
		Distribution:   dist,
		ExpectedDemand: dist.ExpectedDemand(),
	}, nil
}

func resolveNormal(settings domain.DemandSettings) (stats.Distribution, []string) {
	var errs []string

	mean, ok := parseNumber(settings.Mean)
	if !ok {
		errs = append(errs, "Demand mean must be a finite number.")
	} else if mean < 0 {
		errs = append(errs, "Demand mean cannot be negative.")
	}

	stdDev, ok := parseNumber(settings.StdDev)
	if !ok {
		errs = append(errs, "Demand standard deviation must be a finite number.")
	} else if stdDev <= 0 {
		errs = append(errs, "Demand standard deviation must be greater than zero.")
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return stats.Normal{Mean: mean, StdDev: stdDev}, nil
}

func resolveUniform(settings domain.DemandSettings) (stats.Distribution, []string) {
	var errs []string

	lower, okLower := parseNumber(settings.LowerBound)
	if !okLower {
		errs = append(errs, "Uniform lower bound must be a finite number.")
	} else if lower < 0 {
		errs = append(errs, "Uniform lower bound cannot be negative.")
	}

	upper, okUpper := parseNumber(settings.UpperBound)
	if !okUpper {
		errs = append(errs, "Uniform upper bound must be a finite number.")
	}

	if okLower && okUpper && upper <= lower {
		errs = append(errs, "Uniform upper bound must be greater than the lower bound.")
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return stats.Uniform{LowerBound: lower, UpperBound: upper}, nil
}

func resolveDiscrete(settings domain.DemandSettings) (stats.Distribution, []string) {
	values, okValues := parseNumberList(settings.Values)
	probs, okProbs := parseNumberList(settings.Probabilities)

	var errs []string
	if !okValues {
		errs = append(errs, "Discrete demand values must be a numeric list.")
	}
	if !okProbs {
		errs = append(errs, "Probabilities must be a numeric list.")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	// Emptiness is reported alone: length/shape checks on an empty list
	// would only restate the same problem.
	if len(values) == 0 {
		errs = append(errs, "Discrete demand values cannot be empty.")
	}
	if len(probs) == 0 {
		errs = append(errs, "Probabilities cannot be empty.")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if len(values) != len(probs) {
		errs = append(errs, "Discrete demand values and probabilities must have the same length.")
	}
	for _, v := range values {
		if v < 0 {
			errs = append(errs, "Discrete demand values cannot be negative.")
			break
		}
	}
	sum := 0.0
	for _, p := range probs {
		if p < 0 {
			errs = append(errs, "Probabilities cannot be negative.")
			break
		}
	}
	for _, p := range probs {
		sum += p
	}
	if len(values) == len(probs) && math.Abs(sum-1.0) > probabilitySumTolerance+stats.Eps {
		errs = append(errs, fmt.Sprintf("Probabilities must sum to 1. Current sum: %.4f.", sum))
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return condenseDiscrete(values, probs, sum), nil
}

// condenseDiscrete merges duplicate support values, sorts ascending, and
// renormalizes the probabilities so they sum to exactly 1.
func condenseDiscrete(values, probs []float64, sum float64) stats.Discrete {
	condensed := make(map[float64]float64, len(values))
	for i, v := range values {
		condensed[v] += probs[i]
	}

	sorted := make([]float64, 0, len(condensed))
	for v := range condensed {
		sorted = append(sorted, v)
	}
	sort.Float64s(sorted)

	outProbs := make([]float64, len(sorted))
	norm := math.Max(sum, stats.Eps)
	for i, v := range sorted {
		outProbs[i] = condensed[v] / norm
	}
	return stats.Discrete{Values: sorted, Probabilities: outProbs}
}
