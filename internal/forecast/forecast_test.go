package forecast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeat(v float64, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = v
	}
	return values
}

func numeric(t *testing.T, f Forecast, name string) float64 {
	t.Helper()
	e, ok := f.Estimate(name)
	require.True(t, ok, "missing estimate %s", name)
	v, ok := e.Numeric()
	require.True(t, ok, "estimate %s is not numeric", name)
	return v
}

func TestPredict_ConstantSeries(t *testing.T) {
	f := Predict(repeat(1.2, 20), Options{})

	require.False(t, f.Insufficient)
	for _, name := range []string{NameSMA10, NameEMA, NameWMA, NameMedian, NamePattern, NameModeRange, NameTrendAdjusted} {
		assert.InDelta(t, 1.2, numeric(t, f, name), 1e-9, name)
	}
	assert.Equal(t, TrendStable, f.Trend)
	assert.Equal(t, 14, f.PatternMatches)

	require.NotNil(t, f.Consensus)
	assert.InDelta(t, 1.2, f.Consensus.Value, 1e-9)
	assert.InDelta(t, 0, f.Consensus.StdDev, 1e-9)
	assert.Equal(t, ConfidenceHigh, f.Consensus.Confidence)
	assert.Equal(t, 7, f.Consensus.Inputs, "trend label must not enter the consensus")

	assert.InDelta(t, 1.2, f.Context.RecentMean, 1e-9)
	assert.Equal(t, 1.2, f.Context.RecentMin)
	assert.Equal(t, 1.2, f.Context.RecentMax)
	assert.Equal(t, 1.2, f.Context.Last)
}

func TestPredict_InsufficientData(t *testing.T) {
	f := Predict(repeat(2.0, 9), Options{})

	assert.True(t, f.Insufficient)
	assert.Equal(t, 9, f.Samples)
	assert.Empty(t, f.Estimates)
	assert.Nil(t, f.Consensus)
	assert.Equal(t, Context{}, f.Context)
}

func TestPredict_NoConsensusWhenAllOutOfRange(t *testing.T) {
	f := Predict(repeat(100, 12), Options{Methods: []Method{MethodSMA}})

	require.False(t, f.Insufficient)
	require.Len(t, f.Estimates, 1)
	assert.Nil(t, f.Consensus)
	assert.Equal(t, 100.0, f.Context.Last, "context is reported without a consensus")
}

func TestPredict_MethodSelection(t *testing.T) {
	f := Predict(repeat(2.0, 30), Options{Methods: []Method{MethodEMA, MethodTrend}})

	names := make([]string, 0, len(f.Estimates))
	for _, e := range f.Estimates {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{NameEMA, NameTrendAdjusted, NameTrend}, names)
	_, ok := f.Estimate(NameSMA10)
	assert.False(t, ok)
}

func TestPredict_LongSeriesAddsSlowAverages(t *testing.T) {
	values := append(repeat(1.0, 50), repeat(3.0, 50)...)
	f := Predict(values, Options{})

	assert.InDelta(t, 3.0, numeric(t, f, NameSMA10), 1e-9)
	assert.InDelta(t, 3.0, numeric(t, f, NameSMA50), 1e-9)
	assert.InDelta(t, 2.0, numeric(t, f, NameSMA100), 1e-9)
	assert.InDelta(t, 2.0, numeric(t, f, NameMedian), 1e-9)
}

func TestPredict_MinSamplesRaisesThreshold(t *testing.T) {
	f := Predict(repeat(2.0, 15), Options{MinSamples: 20})
	assert.True(t, f.Insufficient)
}

func TestNewConsensus(t *testing.T) {
	estimates := []Estimate{
		Number("a", 0.5),
		Number("b", 2.0),
		Number("c", 3.0),
		Number("d", 60.0),
		Text("trend", "increasing"),
	}

	c, ok := NewConsensus(estimates, 1.0, 50.0)
	require.True(t, ok)
	assert.Equal(t, 2, c.Inputs)
	assert.InDelta(t, 2.5, c.Value, 1e-9)
	assert.InDelta(t, 0.70710678, c.StdDev, 1e-6)
	assert.Equal(t, ConfidenceMedium, c.Confidence)
}

func TestNewConsensus_Bounds(t *testing.T) {
	c, ok := NewConsensus([]Estimate{Number("lo", 1.0), Number("hi", 50.0)}, 1.0, 50.0)
	require.True(t, ok, "bounds are inclusive")
	assert.Equal(t, ConfidenceLow, c.Confidence)

	_, ok = NewConsensus([]Estimate{Number("x", 0.99), Text("y", "stable")}, 1.0, 50.0)
	assert.False(t, ok)
}

func TestNewConsensus_SingleInput(t *testing.T) {
	c, ok := NewConsensus([]Estimate{Number("x", 4.2)}, 1.0, 50.0)
	require.True(t, ok)
	assert.Equal(t, 4.2, c.Value)
	assert.Zero(t, c.StdDev)
	assert.Equal(t, ConfidenceHigh, c.Confidence)
}

func TestParseMethods(t *testing.T) {
	methods, err := ParseMethods([]string{"SMA", " ema ", "mode_range"})
	require.NoError(t, err)
	assert.Equal(t, []Method{MethodSMA, MethodEMA, MethodModeRange}, methods)

	_, err = ParseMethods([]string{"sma", "crystal_ball"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crystal_ball")
}

func TestEstimateJSON(t *testing.T) {
	data, err := json.Marshal([]Estimate{Number("ema", 1.5), Text("trend", "stable")})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"ema","value":1.5},{"name":"trend","label":"stable"}]`, string(data))
}
