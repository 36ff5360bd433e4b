package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplylab/contractlab/internal/domain"
	"github.com/supplylab/contractlab/internal/stats"
)

func TestResolveDeterministicDemand(t *testing.T) {
	ctx, errs := ResolveDemandContext(domain.DemandSettings{
		Type:   domain.DemandDeterministic,
		Demand: "120",
	})
	require.Empty(t, errs)
	require.NotNil(t, ctx)
	assert.Equal(t, domain.DemandDeterministic, ctx.Kind)
	assert.Equal(t, 120.0, ctx.Demand)
	assert.False(t, ctx.IsRandom())
	assert.Equal(t, 120.0, ctx.DemandReference())
}

func TestResolveDeterministicDemandRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		demand string
		want   string
	}{
		{"negative", "-5", "Demand cannot be negative."},
		{"non-numeric", "lots", "Demand must be a finite number."},
		{"empty", "", "Demand must be a finite number."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, errs := ResolveDemandContext(domain.DemandSettings{
				Type:   domain.DemandDeterministic,
				Demand: tc.demand,
			})
			assert.Nil(t, ctx)
			assert.Equal(t, []string{tc.want}, errs)
		})
	}
}

func TestResolveDemandRejectsUnknownKinds(t *testing.T) {
	ctx, errs := ResolveDemandContext(domain.DemandSettings{Type: "seasonal"})
	assert.Nil(t, ctx)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `Demand type "seasonal" is not supported`)

	ctx, errs = ResolveDemandContext(domain.DemandSettings{
		Type:         domain.DemandRandom,
		Distribution: "poisson",
	})
	assert.Nil(t, ctx)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `Distribution type "poisson" is not supported`)
}

func TestResolveNormalDemand(t *testing.T) {
	ctx, errs := ResolveDemandContext(domain.DemandSettings{
		Type:         domain.DemandRandom,
		Distribution: domain.DistributionNormal,
		Mean:         "100",
		StdDev:       "20",
	})
	require.Empty(t, errs)
	require.NotNil(t, ctx)
	assert.True(t, ctx.IsRandom())
	// Expected demand is precomputed at parse time; at mean/sigma = 5 the
	// zero-truncation correction is negligible.
	assert.InDelta(t, 100, ctx.ExpectedDemand, 1e-3)
	assert.InDelta(t, 100, ctx.DemandReference(), 1e-3)
}

func TestResolveNormalDemandAccumulatesErrors(t *testing.T) {
	ctx, errs := ResolveDemandContext(domain.DemandSettings{
		Type:         domain.DemandRandom,
		Distribution: domain.DistributionNormal,
		Mean:         "-10",
		StdDev:       "0",
	})
	assert.Nil(t, ctx)
	assert.Equal(t, []string{
		"Demand mean cannot be negative.",
		"Demand standard deviation must be greater than zero.",
	}, errs)
}

func TestResolveUniformDemand(t *testing.T) {
	ctx, errs := ResolveDemandContext(domain.DemandSettings{
		Type:         domain.DemandRandom,
		Distribution: domain.DistributionUniform,
		LowerBound:   "60",
		UpperBound:   "140",
	})
	require.Empty(t, errs)
	require.NotNil(t, ctx)
	assert.InDelta(t, 100, ctx.ExpectedDemand, 1e-12)
}

func TestResolveUniformDemandRejectsInvertedBounds(t *testing.T) {
	for _, upper := range []string{"60", "50"} {
		ctx, errs := ResolveDemandContext(domain.DemandSettings{
			Type:         domain.DemandRandom,
			Distribution: domain.DistributionUniform,
			LowerBound:   "60",
			UpperBound:   upper,
		})
		assert.Nil(t, ctx)
		assert.Equal(t, []string{"Uniform upper bound must be greater than the lower bound."}, errs)
	}
}

func TestResolveDiscreteDemand(t *testing.T) {
	ctx, errs := ResolveDemandContext(domain.DemandSettings{
		Type:          domain.DemandRandom,
		Distribution:  domain.DistributionDiscrete,
		Values:        "140, 60, 100",
		Probabilities: "0.3, 0.2, 0.5",
	})
	require.Empty(t, errs)
	require.NotNil(t, ctx)
	assert.InDelta(t, 104, ctx.ExpectedDemand, 1e-9)

	dist, ok := ctx.Distribution.(stats.Discrete)
	require.True(t, ok)
	assert.Equal(t, []float64{60, 100, 140}, dist.Values, "support is sorted ascending")
}

func TestResolveDiscreteDemandSeparators(t *testing.T) {
	// Newlines, tabs, and bare spaces all separate list items.
	ctx, errs := ResolveDemandContext(domain.DemandSettings{
		Type:          domain.DemandRandom,
		Distribution:  domain.DistributionDiscrete,
		Values:        "60\n100\t140",
		Probabilities: "0.2 0.5 0.3",
	})
	require.Empty(t, errs)
	require.NotNil(t, ctx)
	assert.InDelta(t, 104, ctx.ExpectedDemand, 1e-9)
}

func TestResolveDiscreteDemandProbabilitySum(t *testing.T) {
	cases := []struct {
		name  string
		probs string
		valid bool
		want  string
	}{
		{"sum well below one", "0.3, 0.2, 0.4", false, "Probabilities must sum to 1. Current sum: 0.9000."},
		{"sum well above one", "0.5, 0.2, 0.5", false, "Probabilities must sum to 1. Current sum: 1.2000."},
		{"sum just below one", "0.299, 0.2, 0.5", true, ""},
		{"sum just above one", "0.301, 0.2, 0.5", true, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, errs := ResolveDemandContext(domain.DemandSettings{
				Type:          domain.DemandRandom,
				Distribution:  domain.DistributionDiscrete,
				Values:        "140, 60, 100",
				Probabilities: tc.probs,
			})
			if tc.valid {
				assert.Empty(t, errs)
				assert.NotNil(t, ctx)
				return
			}
			assert.Nil(t, ctx)
			assert.Equal(t, []string{tc.want}, errs)
		})
	}
}

func TestResolveDiscreteDemandEmptyListsReportedAlone(t *testing.T) {
	ctx, errs := ResolveDemandContext(domain.DemandSettings{
		Type:          domain.DemandRandom,
		Distribution:  domain.DistributionDiscrete,
		Values:        "",
		Probabilities: "0.5, 0.5",
	})
	assert.Nil(t, ctx)
	assert.Equal(t, []string{"Discrete demand values cannot be empty."}, errs,
		"shape checks against an empty list would only restate the problem")
}

func TestResolveDiscreteDemandLengthMismatch(t *testing.T) {
	ctx, errs := ResolveDemandContext(domain.DemandSettings{
		Type:          domain.DemandRandom,
		Distribution:  domain.DistributionDiscrete,
		Values:        "60, 100, 140",
		Probabilities: "0.5, 0.5",
	})
	assert.Nil(t, ctx)
	assert.Contains(t, errs, "Discrete demand values and probabilities must have the same length.")
}

func TestResolveDiscreteDemandRejectsNonNumericLists(t *testing.T) {
	ctx, errs := ResolveDemandContext(domain.DemandSettings{
		Type:          domain.DemandRandom,
		Distribution:  domain.DistributionDiscrete,
		Values:        "60, high, 140",
		Probabilities: "0.2, low",
	})
	assert.Nil(t, ctx)
	assert.Equal(t, []string{
		"Discrete demand values must be a numeric list.",
		"Probabilities must be a numeric list.",
	}, errs)
}

func TestCondenseDiscreteMergesDuplicatesAndRenormalizes(t *testing.T) {
	// Duplicate support values merge, and probabilities renormalize to 1
	// after any in-tolerance drift.
	ctx, errs := ResolveDemandContext(domain.DemandSettings{
		Type:          domain.DemandRandom,
		Distribution:  domain.DistributionDiscrete,
		Values:        "100, 60, 100",
		Probabilities: "0.3, 0.2, 0.5",
	})
	require.Empty(t, errs)
	require.NotNil(t, ctx)

	dist, ok := ctx.Distribution.(stats.Discrete)
	require.True(t, ok)
	require.Equal(t, []float64{60, 100}, dist.Values)
	assert.InDelta(t, 0.2, dist.Probabilities[0], 1e-12)
	assert.InDelta(t, 0.8, dist.Probabilities[1], 1e-12)

	sum := 0.0
	for _, p := range dist.Probabilities {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestParseNumberList(t *testing.T) {
	values, ok := parseNumberList(" 1, 2,, 3.5 ")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3.5}, values)

	_, ok = parseNumberList("1, two, 3")
	assert.False(t, ok)
}
