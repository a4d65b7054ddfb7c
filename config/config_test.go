package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_MatchesMainPyParmeters(t *testing.T) {
	p := Default()

	assert.Equal(t, "postmodel", p.Constructive)
	assert.Equal(t, "", p.Algorithm)
	assert.Equal(t, 0, p.Feedback)
	assert.Equal(t, int64(0), p.Seed)
	assert.Equal(t, 1000, p.MaxIters)
	assert.Equal(t, 1000, p.LSize)
	assert.Equal(t, 0.9, p.Alpha)
	assert.Equal(t, 1000, p.SAMax)
	assert.Equal(t, 1.0, p.T0)
}
