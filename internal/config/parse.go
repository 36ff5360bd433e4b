// Package config converts raw textual calculation payloads into the
// validated numeric model the evaluators run on. It is the sole gate between
// free-form input and the engine: every number that reaches an evaluator has
// passed through here.
package config

import (
	"fmt"
	"strings"

	"github.com/supplylab/contractlab/internal/domain"
)

// Parser validates raw payloads. It accumulates every problem it finds
// rather than stopping at the first, so a caller can surface the complete
// list in one round trip.
type Parser struct{}

// NewParser creates a new payload parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParsePayload validates raw and builds the immutable calculation payload.
// If any validation fails the payload is nil and errs holds every failure as
// a complete English sentence.
func (p *Parser) ParsePayload(raw domain.RawPayload) (*domain.Payload, []string) {
	var errs []string

	if !raw.ContractType.IsValid() {
		errs = append(errs, fmt.Sprintf("Contract type %q is not supported.", string(raw.ContractType)))
		return nil, errs
	}

	mode := raw.OptionMode
	if raw.ContractType == domain.ContractOption {
		if mode == "" {
			mode = domain.OptionModeStandard
		}
		if !mode.IsValid() {
			errs = append(errs, fmt.Sprintf("Option evaluation mode %q is not supported; use standard or optimization.", string(raw.OptionMode)))
			mode = domain.OptionModeStandard
		}
	} else {
		mode = ""
	}

	inputs, fieldErrs := p.parseFields(raw, mode)
	errs = append(errs, fieldErrs...)

	errs = append(errs, p.validateCrossField(raw.ContractType, inputs)...)

	costs, costErrs := p.parseCosts(raw.Toggles, raw.Costs)
	errs = append(errs, costErrs...)

	errs = append(errs, p.validateCostRules(raw.ContractType, raw.Toggles, inputs, costs)...)

	demand, demandErrs := ResolveDemandContext(raw.Demand)
	errs = append(errs, demandErrs...)

	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.Payload{
		ContractType: raw.ContractType,
		OptionMode:   mode,
		Inputs:       inputs,
		Demand:       *demand,
		Toggles:      raw.Toggles,
		Costs:        costs,
	}, nil
}

// parseFields parses every required field for the contract type against its
// descriptor's constraints. Fields that fail are simply absent from the map;
// the accompanying errors block evaluation anyway.
func (p *Parser) parseFields(raw domain.RawPayload, mode domain.OptionEvaluationMode) (map[string]float64, []string) {
	inputs := make(map[string]float64)
	var errs []string

	for _, field := range domain.RequiredFields(raw.ContractType, mode) {
		text, present := raw.Inputs[field.Key]
		if !present || strings.TrimSpace(text) == "" {
			errs = append(errs, fmt.Sprintf("%s is required.", field.Label))
			continue
		}

		value, ok := parseNumber(text)
		if !ok {
			errs = append(errs, fmt.Sprintf("%s must be a finite number.", field.Label))
			continue
		}

		switch {
		case field.StrictlyPositive && value <= 0:
			errs = append(errs, fmt.Sprintf("%s must be greater than zero.", field.Label))
			continue
		case value < 0:
			errs = append(errs, fmt.Sprintf("%s cannot be negative.", field.Label))
			continue
		}

		if field.MaxValue != nil && value > field.MaxValue.InexactFloat64() {
			errs = append(errs, fmt.Sprintf("%s must be between 0 and %s.", field.Label, field.MaxValue.String()))
			continue
		}

		inputs[field.Key] = value
	}

	return inputs, errs
}

// validateCrossField applies the business rules that span fields. The
// buyback-versus-wholesale check reads as advisory but blocks the
// calculation, matching the reference behavior.
func (p *Parser) validateCrossField(ct domain.ContractType, inputs map[string]float64) []string {
	var errs []string

	if ct == domain.ContractBuyback {
		buyback, okB := inputs[domain.FieldBuybackPrice]
		wholesale, okW := inputs[domain.FieldWholesalePrice]
		if okB && okW && buyback > wholesale {
			errs = append(errs, "Buyback price should not exceed wholesale price.")
		}
	}

	return errs
}

// costLabels maps toggle names to display labels for error messages.
var costFields = []struct {
	label   string
	enabled func(domain.CostToggles) bool
	raw     func(domain.CostInputs) string
	set     func(*domain.ResolvedCosts, float64)
}{
	{
		label:   "Salvage value",
		enabled: func(t domain.CostToggles) bool { return t.Salvage },
		raw:     func(c domain.CostInputs) string { return c.Salvage },
		set:     func(r *domain.ResolvedCosts, v float64) { r.Salvage = v },
	},
	{
		label:   "Holding cost",
		enabled: func(t domain.CostToggles) bool { return t.Holding },
		raw:     func(c domain.CostInputs) string { return c.Holding },
		set:     func(r *domain.ResolvedCosts, v float64) { r.Holding = v },
	},
	{
		label:   "Shortage cost",
		enabled: func(t domain.CostToggles) bool { return t.Shortage },
		raw:     func(c domain.CostInputs) string { return c.Shortage },
		set:     func(r *domain.ResolvedCosts, v float64) { r.Shortage = v },
	},
	{
		label:   "Penalty cost",
		enabled: func(t domain.CostToggles) bool { return t.Penalty },
		raw:     func(c domain.CostInputs) string { return c.Penalty },
		set:     func(r *domain.ResolvedCosts, v float64) { r.Penalty = v },
	},
}

// parseCosts resolves the advanced cost components. A disabled toggle forces
// its cost to zero no matter what was entered; an enabled one requires a
// non-negative number.
func (p *Parser) parseCosts(toggles domain.CostToggles, raw domain.CostInputs) (domain.ResolvedCosts, []string) {
	var resolved domain.ResolvedCosts
	var errs []string

	for _, cf := range costFields {
		if !cf.enabled(toggles) {
			continue
		}
		text := cf.raw(raw)
		if strings.TrimSpace(text) == "" {
			errs = append(errs, fmt.Sprintf("%s is required when its cost component is enabled.", cf.label))
			continue
		}
		value, ok := parseNumber(text)
		if !ok {
			errs = append(errs, fmt.Sprintf("%s must be a finite number.", cf.label))
			continue
		}
		if value < 0 {
			errs = append(errs, fmt.Sprintf("%s cannot be negative.", cf.label))
			continue
		}
		cf.set(&resolved, value)
	}

	return resolved, errs
}

// validateCostRules applies cost rules that depend on contract fields.
func (p *Parser) validateCostRules(ct domain.ContractType, toggles domain.CostToggles, inputs map[string]float64, costs domain.ResolvedCosts) []string {
	var errs []string

	if ct == domain.ContractWholesale && toggles.Salvage {
		if retail, ok := inputs[domain.FieldRetailPrice]; ok && costs.Salvage > retail {
			errs = append(errs, "Salvage value cannot exceed retail price.")
		}
	}

	return errs
}
