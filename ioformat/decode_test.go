package ioformat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProblemJSON = `{
  "info": ["t", 1, 1],
  "stockpiles": [
    {"id": 1, "position": 0, "yard": 1, "rails": [1], "capacity": 100, "weightIni": 100,
     "qualityIni": [{"parameter": "Fe", "value": 60}]}
  ],
  "engines": [
    {"id": 1, "speedStack": 50, "speedReclaim": 50, "posIni": 0, "rail": 1, "yards": [1]}
  ],
  "inputs": [],
  "outputs": [
    {"id": 1, "destination": 1, "weight": 50,
     "quality": [{"parameter": "Fe", "minimum": 55, "maximum": 65, "goal": 60, "importance": 1}],
     "time": 0}
  ],
  "distancesTravel": [[0]],
  "timeTravel": [[0]]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadProblem_DecodesEverySection(t *testing.T) {
	path := writeTemp(t, "problem.json", sampleProblemJSON)

	p, err := ReadProblem(path)
	require.NoError(t, err)

	assert.Equal(t, "t", p.Info.Name)
	require.Len(t, p.Stockpiles, 1)
	assert.Equal(t, 100.0, p.Stockpiles[0].Capacity)
	assert.Equal(t, []int{1}, p.Stockpiles[0].Rails)
	require.Len(t, p.Stockpiles[0].QualityIni, 1)
	assert.Equal(t, "Fe", p.Stockpiles[0].QualityIni[0].Parameter)
	require.Len(t, p.Engines, 1)
	assert.Equal(t, 1, p.Engines[0].Rail)
	require.Len(t, p.Outputs, 1)
	assert.Equal(t, 50.0, p.Outputs[0].Weight)
	assert.Equal(t, 60.0, p.Outputs[0].Quality[0].Goal)
}

func TestReadProblem_RejectsWeightIniAboveCapacity(t *testing.T) {
	bad := `{
  "info": ["t", 1, 1],
  "stockpiles": [{"id": 1, "capacity": 10, "weightIni": 20}],
  "engines": [{"id": 1, "speedStack": 1, "speedReclaim": 1}],
  "inputs": [], "outputs": [],
  "distancesTravel": [[0]], "timeTravel": [[0]]
}`
	path := writeTemp(t, "bad.json", bad)

	_, err := ReadProblem(path)
	assert.Error(t, err)
}

func TestReadProblem_MissingFile(t *testing.T) {
	_, err := ReadProblem(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
