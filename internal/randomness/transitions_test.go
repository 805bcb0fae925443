package randomness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitions(t *testing.T) {
	// median 1.5: L H L L H H
	tr := Transitions([]float64{1, 2, 1, 1, 2, 2})

	assert.Equal(t, 1.5, tr.Median)
	assert.Equal(t, 2, tr.LowToHigh)
	assert.Equal(t, 1, tr.HighToLow)
	assert.Equal(t, 1, tr.LowToLow)
	assert.Equal(t, 1, tr.HighToHigh)
	assert.Equal(t, 5, tr.Total())

	assert.InDelta(t, 2.0/3, tr.HighAfterLow, 1e-9)
	assert.InDelta(t, 1.0/3, tr.LowAfterLow, 1e-9)
	assert.InDelta(t, 0.5, tr.HighAfterHigh, 1e-9)
	assert.InDelta(t, 0.5, tr.LowAfterHigh, 1e-9)
}

func TestTransitions_ZeroDenominators(t *testing.T) {
	tr := Transitions([]float64{3, 3, 3, 3})

	assert.Equal(t, 3, tr.HighToHigh)
	assert.Equal(t, 1.0, tr.HighAfterHigh)
	assert.Zero(t, tr.HighAfterLow)
	assert.Zero(t, tr.LowAfterLow)
}

func TestTransitions_TooShort(t *testing.T) {
	assert.Equal(t, TransitionStats{}, Transitions([]float64{1.5}))
}
