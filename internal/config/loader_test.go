package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplylab/contractlab/internal/domain"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPayload(t *testing.T) {
	path := writeTempFile(t, "payload.yaml", `
contract_type: buyback
inputs:
  retailPrice: "150"
  wholesalePrice: "95"
  buybackPrice: "40"
  orderQuantity: "100"
demand:
  type: random
  distribution: normal
  mean: "100"
  std_dev: "20"
toggles:
  holding: true
costs:
  holding: "5"
`)

	raw, err := LoadPayload(path)
	require.NoError(t, err)

	assert.Equal(t, domain.ContractBuyback, raw.ContractType)
	assert.Equal(t, "95", raw.Inputs[domain.FieldWholesalePrice])
	assert.Equal(t, domain.DemandRandom, raw.Demand.Type)
	assert.Equal(t, domain.DistributionNormal, raw.Demand.Distribution)
	assert.Equal(t, "20", raw.Demand.StdDev)
	assert.True(t, raw.Toggles.Holding)
	assert.Equal(t, "5", raw.Costs.Holding)

	// The loaded payload must survive validation end to end.
	payload, errs := NewParser().ParsePayload(*raw)
	require.Empty(t, errs)
	assert.Equal(t, 5.0, payload.Costs.Holding)
}

func TestLoadPayloadErrors(t *testing.T) {
	_, err := LoadPayload(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	path := writeTempFile(t, "bad.yaml", "contract_type: [not: scalar\n")
	_, err = LoadPayload(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenarioSet(t *testing.T) {
	path := writeTempFile(t, "scenarios.yaml", `
scenarios:
  - name: base
    contract_type: wholesale
    inputs:
      retailPrice: "120"
      wholesalePrice: "70"
      orderQuantity: "200"
    demand:
      type: deterministic
      demand: "190"
  - name: lean order
    contract_type: wholesale
    inputs:
      retailPrice: "120"
      wholesalePrice: "70"
      orderQuantity: "190"
    demand:
      type: deterministic
      demand: "190"
`)

	set, err := LoadScenarioSet(path)
	require.NoError(t, err)
	require.Len(t, set.Scenarios, 2)

	assert.Equal(t, "base", set.Scenarios[0].Name)
	assert.Equal(t, domain.ContractWholesale, set.Scenarios[0].RawPayload.ContractType)
	assert.Equal(t, "190", set.Scenarios[1].Inputs[domain.FieldOrderQuantity])
}

func TestLoadScenarioSetRejectsEmptySet(t *testing.T) {
	path := writeTempFile(t, "empty.yaml", "scenarios: []\n")
	_, err := LoadScenarioSet(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenarios provided")
}
