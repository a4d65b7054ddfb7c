package ioformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upmsp/upmsp/rngsrc"
)

func TestGenerate_ProducesValidProblem(t *testing.T) {
	params := DefaultGenerateParams()
	rng := rngsrc.New(1)

	p := Generate(params, rng)

	require.Len(t, p.Stockpiles, params.Stockpiles)
	require.Len(t, p.Engines, params.Engines)
	require.Len(t, p.Inputs, params.Inputs)
	require.Len(t, p.Outputs, params.Outputs)
	require.NoError(t, p.Validate())

	for _, s := range p.Stockpiles {
		assert.LessOrEqual(t, s.WeightIni, s.Capacity)
		for _, e := range p.Engines {
			assert.True(t, s.HasRail(e.Rail), "every stockpile must be reachable by every engine's rail")
		}
	}
}

func TestGenerate_IsDeterministicForFixedSeed(t *testing.T) {
	params := DefaultGenerateParams()

	a := Generate(params, rngsrc.New(42))
	b := Generate(params, rngsrc.New(42))

	assert.Equal(t, a, b)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	params := DefaultGenerateParams()

	a := Generate(params, rngsrc.New(1))
	b := Generate(params, rngsrc.New(2))

	assert.NotEqual(t, a, b)
}
