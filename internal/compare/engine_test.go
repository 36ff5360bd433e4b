package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplylab/contractlab/internal/config"
	"github.com/supplylab/contractlab/internal/domain"
)

func wholesaleScenario(name, quantity string) config.NamedScenario {
	return config.NamedScenario{
		Name: name,
		RawPayload: domain.RawPayload{
			ContractType: domain.ContractWholesale,
			Inputs: map[string]string{
				domain.FieldRetailPrice:    "120",
				domain.FieldWholesalePrice: "70",
				domain.FieldOrderQuantity:  quantity,
			},
			Demand: domain.DemandSettings{Type: domain.DemandDeterministic, Demand: "190"},
		},
	}
}

func TestRunAllDiffsAgainstBase(t *testing.T) {
	set := &config.ScenarioSet{Scenarios: []config.NamedScenario{
		wholesaleScenario("base", "200"),
		wholesaleScenario("lean order", "190"),
	}}

	out := NewEngine().RunAll(set)

	assert.Equal(t, "base", out.BaseName)
	require.Len(t, out.Results, 2)

	base := out.Results[0]
	require.NotNil(t, base.Primary)
	assert.Equal(t, "Profit", base.Primary.Label)
	require.NotNil(t, base.Primary.Number)
	assert.InDelta(t, 8800, *base.Primary.Number, 1e-9)
	assert.Nil(t, base.DiffFromBase, "the base never diffs against itself")

	lean := out.Results[1]
	require.NotNil(t, lean.Primary)
	assert.InDelta(t, 9500, *lean.Primary.Number, 1e-9)
	require.NotNil(t, lean.DiffFromBase)
	assert.InDelta(t, 700, *lean.DiffFromBase, 1e-9)
}

func TestRunAllKeepsFailedScenarios(t *testing.T) {
	broken := wholesaleScenario("broken", "200")
	broken.RawPayload.Inputs[domain.FieldRetailPrice] = "-1"

	set := &config.ScenarioSet{Scenarios: []config.NamedScenario{
		wholesaleScenario("base", "200"),
		broken,
	}}

	out := NewEngine().RunAll(set)
	require.Len(t, out.Results, 2)

	failed := out.Results[1]
	assert.Equal(t, "broken", failed.Name)
	assert.Nil(t, failed.Primary)
	assert.Nil(t, failed.DiffFromBase)
	assert.Contains(t, failed.Errors, "Retail Price must be greater than zero.")
}

func TestRunAllSkipsDiffWhenPrimaryLabelsDiffer(t *testing.T) {
	buyback := config.NamedScenario{
		Name: "buyback variant",
		RawPayload: domain.RawPayload{
			ContractType: domain.ContractBuyback,
			Inputs: map[string]string{
				domain.FieldRetailPrice:    "120",
				domain.FieldWholesalePrice: "70",
				domain.FieldBuybackPrice:   "30",
				domain.FieldOrderQuantity:  "200",
			},
			Demand: domain.DemandSettings{Type: domain.DemandDeterministic, Demand: "190"},
		},
	}

	set := &config.ScenarioSet{Scenarios: []config.NamedScenario{
		wholesaleScenario("base", "200"),
		buyback,
	}}

	out := NewEngine().RunAll(set)
	require.Len(t, out.Results, 2)

	// A wholesale Profit against a buyback Retailer Profit is not a like
	// comparison, so no delta is reported.
	require.NotNil(t, out.Results[1].Primary)
	assert.Equal(t, "Retailer Profit", out.Results[1].Primary.Label)
	assert.Nil(t, out.Results[1].DiffFromBase)
}

func TestTableFormatter(t *testing.T) {
	set := &config.ScenarioSet{Scenarios: []config.NamedScenario{
		wholesaleScenario("base", "200"),
		wholesaleScenario("lean order", "190"),
	}}
	broken := wholesaleScenario("broken", "200")
	broken.RawPayload.Inputs[domain.FieldRetailPrice] = "bad"
	set.Scenarios = append(set.Scenarios, broken)

	table := (&TableFormatter{}).Format(NewEngine().RunAll(set))

	assert.Contains(t, table, "CONTRACT SCENARIO COMPARISON")
	assert.Contains(t, table, "Base Scenario: base")
	assert.Contains(t, table, "Profit: $8800.00")
	assert.Contains(t, table, "Profit: $9500.00")
	assert.Contains(t, table, "Profit vs base: +700.00")
	assert.Contains(t, table, "validation failed")
	assert.Contains(t, table, "Retail Price must be a finite number.")
	assert.True(t, strings.HasSuffix(table, "\n"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a very l...", truncate("a very long scenario name", 11))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
