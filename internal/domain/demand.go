package domain

import (
	"github.com/supplylab/contractlab/internal/stats"
)

// DemandType distinguishes a known demand figure from a distributional one.
type DemandType string

const (
	DemandDeterministic DemandType = "deterministic"
	DemandRandom        DemandType = "random"
)

// DistributionType names the supported random demand distributions.
type DistributionType string

const (
	DistributionNormal   DistributionType = "normal"
	DistributionUniform  DistributionType = "uniform"
	DistributionDiscrete DistributionType = "discrete"
)

// DemandSettings carries the raw, string-valued demand inputs exactly as a
// free-form entry surface supplies them. Which fields matter depends on Type
// and Distribution; the resolver in internal/config enforces that.
type DemandSettings struct {
	Type         DemandType       `yaml:"type" json:"type"`
	Distribution DistributionType `yaml:"distribution,omitempty" json:"distribution,omitempty"`

	// Deterministic.
	Demand string `yaml:"demand,omitempty" json:"demand,omitempty"`

	// Normal.
	Mean   string `yaml:"mean,omitempty" json:"mean,omitempty"`
	StdDev string `yaml:"std_dev,omitempty" json:"stdDev,omitempty"`

	// Uniform.
	LowerBound string `yaml:"lower_bound,omitempty" json:"lowerBound,omitempty"`
	UpperBound string `yaml:"upper_bound,omitempty" json:"upperBound,omitempty"`

	// Discrete: comma or newline separated numeric lists.
	Values        string `yaml:"values,omitempty" json:"values,omitempty"`
	Probabilities string `yaml:"probabilities,omitempty" json:"probabilities,omitempty"`
}

// DemandContext is the validated demand model an evaluator receives. Exactly
// one branch is populated: a deterministic demand figure, or a distribution
// with its expected demand precomputed once at parse time.
type DemandContext struct {
	Kind DemandType

	// Deterministic branch.
	Demand float64

	// Random branch.
	Distribution   stats.Distribution
	ExpectedDemand float64
}

// IsRandom reports whether the context carries a distribution.
func (dc DemandContext) IsRandom() bool {
	return dc.Kind == DemandRandom
}

// DemandReference is the demand figure decision formulas anchor on: the
// exact demand when deterministic, the expected demand otherwise.
func (dc DemandContext) DemandReference() float64 {
	if dc.IsRandom() {
		return dc.ExpectedDemand
	}
	return dc.Demand
}
