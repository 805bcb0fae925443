package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, Summary{}, s)
	assert.Zero(t, Mean(nil))
	assert.Zero(t, Median(nil))
	assert.Zero(t, StdDev(nil))
	assert.Zero(t, Percentile(nil, 0.5))
}

func TestSummarize_SingleValue(t *testing.T) {
	s := Summarize([]float64{2.5})

	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 2.5, s.Mean)
	assert.Equal(t, 2.5, s.Median)
	assert.Equal(t, 2.5, s.Min)
	assert.Equal(t, 2.5, s.Max)
	assert.Zero(t, s.StdDev, "stddev is defined as 0 below two samples")
}

func TestSummarize_MultipleValues(t *testing.T) {
	values := []float64{1.0, 3.0, 2.0, 10.0, 4.0}
	s := Summarize(values)

	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 4.0, s.Mean, 1e-9)
	assert.Equal(t, 3.0, s.Median)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 10.0, s.Max)
	// Sample variance: (9+1+4+36+0)/4 = 12.5
	assert.InDelta(t, math.Sqrt(12.5), s.StdDev, 1e-9)
	assert.Equal(t, 2.0, s.P25)
	assert.Equal(t, 4.0, s.P75)
	assert.InDelta(t, 8.8, s.P95, 1e-9)

	assert.Equal(t, []float64{1.0, 3.0, 2.0, 10.0, 4.0}, values, "input must not be reordered")
}

func TestMedian_EvenCount(t *testing.T) {
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
}

func TestPercentile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	assert.Equal(t, 1.0, Percentile(values, 0))
	assert.Equal(t, 3.0, Percentile(values, 0.5))
	assert.Equal(t, 5.0, Percentile(values, 1))
	assert.InDelta(t, 4.6, Percentile(values, 0.9), 1e-9)
}

func TestSummarize_OrderingInvariant(t *testing.T) {
	samples := [][]float64{
		{1.0},
		{1.2, 1.2, 1.2},
		{1.01, 250.0, 1.5, 2.2},
		{3.3, 1.1, 7.9, 1.0, 1.0, 19.4, 2.2},
	}

	for _, values := range samples {
		s := Summarize(values)
		require.Equal(t, len(values), s.Count)
		assert.LessOrEqual(t, s.Min, s.Median)
		assert.LessOrEqual(t, s.Median, s.Max)
		assert.LessOrEqual(t, s.Min, s.Mean+1e-12)
		assert.LessOrEqual(t, s.Mean, s.Max+1e-12)
		assert.LessOrEqual(t, s.P25, s.P75)
		assert.LessOrEqual(t, s.P75, s.P95)
	}
}
