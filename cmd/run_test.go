package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upmsp/upmsp/config"
)

// oneStockpileInstance is spec §8 scenario 1: one stockpile (mass 100,
// quality 60), one engine (speedStack=speedReclaim=50), one output request
// (demand 50, goal 60). Expect objective ≈ 0, one reclaim event of mass 50,
// duration 1.0, gap 0.
const oneStockpileInstance = `{
  "info": ["scenario1", 1, 1],
  "stockpiles": [
    {"id": 1, "position": 0, "yard": 0, "rails": [0], "capacity": 100, "weightIni": 100,
     "qualityIni": [{"parameter": "Fe", "value": 60}]}
  ],
  "engines": [
    {"id": 1, "speedStack": 50, "speedReclaim": 50, "posIni": 0, "rail": 0, "yards": [0]}
  ],
  "inputs": [],
  "outputs": [
    {"id": 1, "destination": 1, "weight": 50, "time": 0,
     "quality": [{"parameter": "Fe", "minimum": 55, "maximum": 65, "goal": 60, "importance": 1}]}
  ],
  "distancesTravel": [[0]],
  "timeTravel": [[0]]
}`

func resetParms() {
	parms = config.Default()
}

func TestRunRun_Scenario1_ProducesExpectedSolution(t *testing.T) {
	resetParms()

	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	output := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(input, []byte(oneStockpileInstance), 0o644))

	runRun(nil, []string{input, output, "1"})

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	require.NotNil(t, doc["objective"])
	assert.InDelta(t, 0.0, doc["objective"].(float64), 1e-2)

	reclaims, ok := doc["reclaims"].([]any)
	require.True(t, ok)
	require.Len(t, reclaims, 1)

	gap, ok := doc["gap"].([]any)
	require.True(t, ok)
	require.Len(t, gap, 1)
	assert.InDelta(t, 0.0, gap[0].(float64), 1e-2)
}
