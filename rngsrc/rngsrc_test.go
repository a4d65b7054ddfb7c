package rngsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestIntRange_Bounds(t *testing.T) {
	s := New(1)
	for i := 0; i < 200; i++ {
		v := s.IntRange(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)
	}
}

func TestIntRange_DegenerateRange(t *testing.T) {
	s := New(1)
	assert.Equal(t, 5, s.IntRange(5, 5))
	assert.Equal(t, 5, s.IntRange(5, 4))
}
