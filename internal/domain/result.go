package domain

// Tone classifies how a metric should read to the caller's rendering layer.
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneInfo     Tone = "info"
)

// MetricCard is a single labeled result value. Value is the display string
// (already rounded to two decimals for numerics); Number carries the raw
// numeric value when one exists, for programmatic consumers such as the
// comparison engine.
type MetricCard struct {
	Label     string   `json:"label"`
	Value     string   `json:"value"`
	Number    *float64 `json:"number,omitempty"`
	Emphasize bool     `json:"emphasize,omitempty"`
	Tone      Tone     `json:"tone"`
}

// ChartPoint is one sample of a sensitivity curve.
type ChartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartSeries is a named curve within a chart.
type ChartSeries struct {
	Key    string       `json:"key"`
	Label  string       `json:"label"`
	Points []ChartPoint `json:"points"`
}

// ReferenceLine marks a vertical guide on a chart (e.g. the strike price on
// a cost-vs-spot chart).
type ReferenceLine struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// ChartConfig describes one sensitivity chart for the (out-of-scope)
// rendering layer: axis metadata plus the sampled series.
type ChartConfig struct {
	Title         string         `json:"title"`
	XLabel        string         `json:"xLabel"`
	YLabel        string         `json:"yLabel"`
	Series        []ChartSeries  `json:"series"`
	ReferenceLine *ReferenceLine `json:"referenceLine,omitempty"`
}

// CalculationResult is the structured output of one evaluation. It is
// produced only from a fully validated payload.
type CalculationResult struct {
	ContractType ContractType         `json:"contractType"`
	OptionMode   OptionEvaluationMode `json:"optionEvaluationMode,omitempty"`
	KeyDecision  string               `json:"keyDecision"`
	MetricsTitle string               `json:"metricsTitle,omitempty"`
	Metrics      []MetricCard         `json:"metrics"`
	Charts       []ChartConfig        `json:"charts"`
	Warnings     []string             `json:"warnings,omitempty"`
	Notes        []string             `json:"notes,omitempty"`
}

// Evaluation is the engine's output contract: a result on success, or the
// accumulated validation errors with a nil result. Exactly one side is set.
type Evaluation struct {
	Result *CalculationResult `json:"result"`
	Errors []string           `json:"errors"`
}
