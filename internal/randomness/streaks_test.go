package randomness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreaks(t *testing.T) {
	// median 2: L H H L L H H H L
	s := Streaks([]float64{1, 2, 3, 1, 1, 5, 6, 7, 1})

	assert.Equal(t, 9, s.Samples)
	assert.Equal(t, 2.0, s.Median)
	assert.Equal(t, 3, s.LongestHigh)
	assert.Equal(t, 2, s.LongestLow)
	assert.Equal(t, 2, s.HighStreaks)
	assert.Equal(t, 3, s.LowStreaks)
	assert.InDelta(t, 2.5, s.AvgHigh, 1e-9)
	assert.InDelta(t, 4.0/3, s.AvgLow, 1e-9)
	assert.Equal(t, Low, s.Current)
	assert.Equal(t, 1, s.CurrentLength)
}

func TestStreaks_ConstantSequence(t *testing.T) {
	s := Streaks([]float64{1.2, 1.2, 1.2, 1.2})

	assert.Equal(t, 4, s.LongestHigh)
	assert.Zero(t, s.LongestLow)
	assert.Zero(t, s.AvgLow)
	assert.Equal(t, High, s.Current)
	assert.Equal(t, 4, s.CurrentLength)
}

func TestStreaks_Empty(t *testing.T) {
	assert.Equal(t, StreakStats{}, Streaks(nil))
}
