package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMA(t *testing.T) {
	assert.InDelta(t, 2.0, SMA([]float64{1, 2, 3}, 10), 1e-9)
	assert.InDelta(t, 2.5, SMA([]float64{1, 2, 3}, 2), 1e-9)
}

func TestEMA(t *testing.T) {
	assert.InDelta(t, 2.25, EMA([]float64{1, 2, 3}, 0.5), 1e-9)
	assert.Equal(t, 4.0, EMA([]float64{4}, 0.2))
	assert.Zero(t, EMA(nil, 0.2))
}

func TestWMA(t *testing.T) {
	assert.InDelta(t, 14.0/6, WMA([]float64{1, 2, 3}, 20), 1e-9)
	// Only the last two count: (2*1 + 3*2) / 3
	assert.InDelta(t, 8.0/3, WMA([]float64{1, 2, 3}, 2), 1e-9)
}

func TestPatternMatch(t *testing.T) {
	values := []float64{1, 1, 1, 1, 1, 9, 5, 5, 5, 5, 5, 2, 1, 1, 1, 1, 1}

	v, matches, ok := PatternMatch(values, 5, 2.0)
	assert.True(t, ok)
	assert.Equal(t, 1, matches)
	assert.Equal(t, 9.0, v)
}

func TestPatternMatch_NoSimilarWindow(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 1, 1, 1, 1, 1}

	_, matches, ok := PatternMatch(values, 5, 2.0)
	assert.False(t, ok)
	assert.Zero(t, matches)
}

func TestPatternMatch_TooShort(t *testing.T) {
	_, _, ok := PatternMatch([]float64{1, 1, 1, 1, 1}, 5, 2.0)
	assert.False(t, ok)
}

func TestModeRange(t *testing.T) {
	v, ok := ModeRange([]float64{1.1, 4.5, 4.2, 1.9}, 100)
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	// Ties go to the first category seen
	v, _ = ModeRange([]float64{1.2, 4.0, 1.3, 4.1}, 100)
	assert.Equal(t, 1.2, v)
	v, _ = ModeRange([]float64{4.0, 1.2, 4.1, 1.3}, 100)
	assert.Equal(t, 4.0, v)

	// Only the tail is considered
	v, _ = ModeRange([]float64{7, 7, 7, 2.5}, 1)
	assert.Equal(t, 2.5, v)

	_, ok = ModeRange(nil, 100)
	assert.False(t, ok)
}

func TestTrendAdjusted(t *testing.T) {
	rising := append(repeat(1.0, 10), repeat(2.0, 10)...)
	v, trend, ok := TrendAdjusted(rising)
	assert.True(t, ok)
	assert.InDelta(t, 2.5, v, 1e-9)
	assert.Equal(t, TrendIncreasing, trend)

	falling := append(repeat(2.0, 10), repeat(1.0, 10)...)
	v, trend, _ = TrendAdjusted(falling)
	assert.Equal(t, 1.0, v, "estimate is floored at 1.0")
	assert.Equal(t, TrendDecreasing, trend)

	flat := append(repeat(2.0, 10), repeat(2.05, 10)...)
	_, trend, _ = TrendAdjusted(flat)
	assert.Equal(t, TrendStable, trend)

	_, _, ok = TrendAdjusted(repeat(2.0, 19))
	assert.False(t, ok)
}
