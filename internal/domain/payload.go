package domain

// CostToggles gates the four optional cost components independently. When a
// toggle is off the corresponding cost is treated as exactly zero regardless
// of what was typed into its field.
type CostToggles struct {
	Salvage  bool `yaml:"salvage" json:"salvage"`
	Holding  bool `yaml:"holding" json:"holding"`
	Shortage bool `yaml:"shortage" json:"shortage"`
	Penalty  bool `yaml:"penalty" json:"penalty"`
}

// CostInputs carries the raw per-unit cost fields. Each is parsed only when
// its toggle is enabled.
type CostInputs struct {
	Salvage  string `yaml:"salvage,omitempty" json:"salvage,omitempty"`
	Holding  string `yaml:"holding,omitempty" json:"holding,omitempty"`
	Shortage string `yaml:"shortage,omitempty" json:"shortage,omitempty"`
	Penalty  string `yaml:"penalty,omitempty" json:"penalty,omitempty"`
}

// ResolvedCosts holds the validated per-unit costs after toggles are applied.
type ResolvedCosts struct {
	Salvage  float64 `json:"salvage"`
	Holding  float64 `json:"holding"`
	Shortage float64 `json:"shortage"`
	Penalty  float64 `json:"penalty"`
}

// RawPayload is the input contract of the engine: a contract type, optional
// option evaluation mode, string-valued numeric inputs keyed by field name,
// demand settings, and the advanced cost toggles with their raw values.
type RawPayload struct {
	ContractType ContractType         `yaml:"contract_type" json:"contractType"`
	OptionMode   OptionEvaluationMode `yaml:"option_mode,omitempty" json:"optionEvaluationMode,omitempty"`
	Inputs       map[string]string    `yaml:"inputs" json:"inputs"`
	Demand       DemandSettings       `yaml:"demand" json:"demandSettings"`
	Toggles      CostToggles          `yaml:"toggles" json:"toggles"`
	Costs        CostInputs           `yaml:"costs,omitempty" json:"costInputs,omitempty"`
}

// Payload is the fully validated calculation payload. It is constructed only
// by the validator, fresh per run, and never mutated afterwards; evaluators
// may assume every number in it is finite and within its stated bounds.
type Payload struct {
	ContractType ContractType
	OptionMode   OptionEvaluationMode
	Inputs       map[string]float64
	Demand       DemandContext
	Toggles      CostToggles
	Costs        ResolvedCosts
}

// Input returns the parsed value for a field key. The validator guarantees
// every required field is present, so a missing key reads as zero only in
// code paths that never run on a validated payload.
func (p *Payload) Input(key string) float64 {
	return p.Inputs[key]
}
