package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceRandomCycles(t *testing.T) {
	r := NewSequenceRandom(0.1, 0.7)

	assert.Equal(t, 0.1, r.Float64())
	assert.Equal(t, 0.7, r.Float64())
	assert.Equal(t, 0.1, r.Float64())
	assert.Equal(t, 3, r.Draws())
}

func TestSequenceRandomEmpty(t *testing.T) {
	r := NewSequenceRandom()
	assert.Equal(t, 0.0, r.Float64())
}

func TestSeededRandomIsReproducible(t *testing.T) {
	a := NewSeededRandom(42)
	b := NewSeededRandom(42)

	for i := 0; i < 100; i++ {
		va, vb := a.Float64(), b.Float64()
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
}

func TestRandomInRange(t *testing.T) {
	tests := []struct {
		name string
		draw float64
		min  float64
		max  float64
		want float64
	}{
		{"下界", 0, 0.1, 0.5, 0.1},
		{"中点", 0.5, 1, 3, 2},
		{"接近上界", 0.75, 20, 780, 590},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RandomInRange(NewSequenceRandom(tt.draw), tt.min, tt.max)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
