// Package evaluate implements the five contract evaluators. Each evaluator
// is a pure function from a validated payload to a calculation result: no
// I/O, no shared state, and no error paths. Degenerate numeric cases are
// clamped or defaulted, never raised, because the validator is the only gate
// that rejects input.
package evaluate

import (
	"github.com/supplylab/contractlab/internal/config"
	"github.com/supplylab/contractlab/internal/domain"
	"github.com/supplylab/contractlab/internal/stats"
)

// Run validates a raw payload and, if it passes, evaluates it. This is the
// engine's single entry point: either a result with no errors, or the full
// validation error list with no result.
func Run(raw domain.RawPayload) domain.Evaluation {
	payload, errs := config.NewParser().ParsePayload(raw)
	if len(errs) > 0 {
		return domain.Evaluation{Errors: errs}
	}
	return domain.Evaluation{Result: Evaluate(payload)}
}

// Evaluate dispatches a validated payload to the evaluator for its contract
// type (and, for option contracts, its evaluation mode).
func Evaluate(p *domain.Payload) *domain.CalculationResult {
	switch p.ContractType {
	case domain.ContractWholesale:
		return evaluateWholesale(p)
	case domain.ContractBuyback:
		return evaluateBuyback(p)
	case domain.ContractRevenueSharing:
		return evaluateRevenueSharing(p)
	case domain.ContractOption:
		if p.OptionMode == domain.OptionModeOptimization {
			return evaluateOptionOptimization(p)
		}
		return evaluateOptionStandard(p)
	case domain.ContractQuantityFlexibility:
		return evaluateQuantityFlexibility(p)
	}
	// Unreachable on a validated payload; the validator rejects unknown
	// contract types.
	return &domain.CalculationResult{ContractType: p.ContractType}
}

func salesLabel(demand domain.DemandContext) string {
	if demand.IsRandom() {
		return "Expected Sales"
	}
	return "Sales"
}

func leftoverLabel(demand domain.DemandContext) string {
	if demand.IsRandom() {
		return "Expected Leftover"
	}
	return "Leftover"
}

// serviceTone grades a service level against the coordination thresholds
// used across the evaluators.
func serviceTone(level float64) domain.Tone {
	switch {
	case level >= 0.85:
		return domain.TonePositive
	case level >= 0.7:
		return domain.ToneInfo
	default:
		return domain.ToneNegative
	}
}

// riskMetrics builds the risk section shown for random demand: expected
// demand, the stockout probability at the chosen quantity, and the expected
// unmet volume. Deterministic payloads get none.
func riskMetrics(demand domain.DemandContext, quantity float64, s OrderStats) []domain.MetricCard {
	if !demand.IsRandom() {
		return nil
	}
	stockout := stats.Clamp(1-demand.Distribution.CDF(quantity), 0, 1)
	return []domain.MetricCard{
		numberCard("Expected Demand", demand.ExpectedDemand, domain.ToneInfo),
		percentCard("Stockout Probability", stockout, domain.ToneInfo),
		numberCard("Expected Unmet Demand", s.Unmet, domain.ToneInfo),
	}
}
