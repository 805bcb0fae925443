package randomness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/crashlab/internal/statistics"
	"github.com/lox/crashlab/internal/window"
)

func TestVolatility(t *testing.T) {
	v := Volatility([]float64{1, 1, 1, 3, 3, 3}, 3)

	sd := math.Sqrt(4.0 / 3)
	require.False(t, v.Empty())
	assert.Equal(t, 4, v.Windows)
	assert.InDelta(t, sd/2, v.Mean, 1e-9)
	assert.Zero(t, v.Min)
	assert.InDelta(t, sd, v.Max, 1e-9)
	assert.Zero(t, v.Recent)
	assert.Equal(t, TrendStable, v.Trend)
}

func TestVolatility_IncreasingTrend(t *testing.T) {
	v := Volatility([]float64{1, 1, 1, 1, 5}, 2)

	assert.Equal(t, 4, v.Windows)
	assert.InDelta(t, math.Sqrt(8), v.Recent, 1e-9)
	assert.Equal(t, TrendIncreasing, v.Trend)
}

func TestVolatility_NotEnoughData(t *testing.T) {
	v := Volatility([]float64{1, 2, 3}, 20)

	assert.True(t, v.Empty())
	assert.Equal(t, 20, v.Window)
	assert.Empty(t, v.Trend)
}

func TestRollingStdDev_LargeInputMatchesDirect(t *testing.T) {
	n := window.ParallelThreshold + 500
	values := make([]float64, n)
	for i := range values {
		values[i] = 1 + float64((i*7919)%97)/10
	}

	series := RollingStdDev(values, 20)
	require.Len(t, series, n-19)
	for _, i := range []int{0, 1, 1000, n / 2, n - 20} {
		assert.InDelta(t, statistics.StdDev(values[i:i+20]), series[i], 1e-12, "window %d", i)
	}
}
