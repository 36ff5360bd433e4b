// Package compare batch-evaluates named contract scenarios and summarizes
// them side by side. The engine is stateless, so fanning a scenario set over
// it needs no synchronization; the first scenario acts as the base the rest
// are measured against.
package compare

import (
	"github.com/supplylab/contractlab/internal/config"
	"github.com/supplylab/contractlab/internal/domain"
	"github.com/supplylab/contractlab/internal/evaluate"
)

// ScenarioResult is one evaluated scenario with the metric the comparison
// keys on: the first emphasized numeric card of the result.
type ScenarioResult struct {
	Name         string            `json:"name"`
	ContractType string            `json:"contractType"`
	KeyDecision  string            `json:"keyDecision,omitempty"`
	Primary      *domain.MetricCard `json:"primary,omitempty"`
	Errors       []string          `json:"errors,omitempty"`

	// DiffFromBase is set when this scenario and the base expose primary
	// metrics with the same label.
	DiffFromBase *float64 `json:"diffFromBase,omitempty"`
}

// ComparisonSet is the outcome of a batch run.
type ComparisonSet struct {
	BaseName string           `json:"baseScenarioName"`
	Results  []ScenarioResult `json:"results"`
}

// Engine evaluates scenario sets.
type Engine struct{}

// NewEngine creates a comparison engine.
func NewEngine() *Engine {
	return &Engine{}
}

// RunAll evaluates every scenario in the set in order. Scenarios that fail
// validation stay in the output with their error lists so a batch report
// shows exactly which inputs need fixing.
func (e *Engine) RunAll(set *config.ScenarioSet) *ComparisonSet {
	out := &ComparisonSet{}
	if len(set.Scenarios) > 0 {
		out.BaseName = set.Scenarios[0].Name
	}

	var base *domain.MetricCard
	for i, scenario := range set.Scenarios {
		eval := evaluate.Run(scenario.RawPayload)

		result := ScenarioResult{
			Name:         scenario.Name,
			ContractType: string(scenario.RawPayload.ContractType),
			Errors:       eval.Errors,
		}
		if eval.Result != nil {
			result.KeyDecision = eval.Result.KeyDecision
			result.Primary = primaryMetric(eval.Result)
		}

		if i == 0 {
			base = result.Primary
		} else if base != nil && result.Primary != nil &&
			base.Label == result.Primary.Label &&
			base.Number != nil && result.Primary.Number != nil {
			diff := *result.Primary.Number - *base.Number
			result.DiffFromBase = &diff
		}

		out.Results = append(out.Results, result)
	}
	return out
}

// primaryMetric picks the first emphasized card carrying a number, falling
// back to the first numeric card of any kind.
func primaryMetric(result *domain.CalculationResult) *domain.MetricCard {
	for _, card := range result.Metrics {
		if card.Emphasize && card.Number != nil {
			c := card
			return &c
		}
	}
	for _, card := range result.Metrics {
		if card.Number != nil {
			c := card
			return &c
		}
	}
	return nil
}
