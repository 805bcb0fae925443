// Package forecast produces heuristic point estimates of the next outcome
// and blends them into an outlier-filtered consensus.
//
// Each sub-estimator is selected by Method name and yields tagged
// Estimates. The consensus only considers numeric estimates inside the
// configured bounds, so label outputs such as the trend direction can sit
// alongside the numbers without special casing.
//
// None of this predicts a provably random process; the numbers describe
// recent history.
package forecast

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/lox/crashlab/internal/statistics"
)

// Method names a sub-estimator.
type Method string

const (
	MethodSMA       Method = "sma"
	MethodEMA       Method = "ema"
	MethodWMA       Method = "wma"
	MethodPattern   Method = "pattern"
	MethodMedian    Method = "median"
	MethodModeRange Method = "mode_range"
	MethodTrend     Method = "trend"
)

// AllMethods lists every sub-estimator in evaluation order.
var AllMethods = []Method{
	MethodSMA, MethodEMA, MethodWMA, MethodPattern, MethodMedian, MethodModeRange, MethodTrend,
}

// ParseMethod validates a method name.
func ParseMethod(name string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(AllMethods, m) {
		return "", fmt.Errorf("unknown forecast method %q", name)
	}
	return m, nil
}

// ParseMethods validates a list of method names.
func ParseMethods(names []string) ([]Method, error) {
	methods := make([]Method, 0, len(names))
	for _, name := range names {
		m, err := ParseMethod(name)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}

// Options tunes the forecaster. Zero fields fall back to DefaultOptions.
type Options struct {
	Methods             []Method // Empty selects every method
	MinSamples          int      // Never below 10, the SMA-10 window
	EMAAlpha            float64
	PatternSize         int
	SimilarityThreshold float64
	ConsensusMin        float64
	ConsensusMax        float64
}

// DefaultOptions returns the stock forecaster settings.
func DefaultOptions() Options {
	return Options{
		MinSamples:          10,
		EMAAlpha:            0.2,
		PatternSize:         5,
		SimilarityThreshold: 2.0,
		ConsensusMin:        1.0,
		ConsensusMax:        50.0,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MinSamples <= 0 {
		o.MinSamples = d.MinSamples
	}
	if o.EMAAlpha <= 0 || o.EMAAlpha > 1 {
		o.EMAAlpha = d.EMAAlpha
	}
	if o.PatternSize <= 0 {
		o.PatternSize = d.PatternSize
	}
	if o.SimilarityThreshold <= 0 {
		o.SimilarityThreshold = d.SimilarityThreshold
	}
	if o.ConsensusMin == 0 && o.ConsensusMax == 0 {
		o.ConsensusMin, o.ConsensusMax = d.ConsensusMin, d.ConsensusMax
	}
	return o
}

func (o Options) enabled(m Method) bool {
	return len(o.Methods) == 0 || slices.Contains(o.Methods, m)
}

// Context describes the most recent outcomes independently of any estimate.
type Context struct {
	RecentMean float64 `json:"recent_10_avg"`
	RecentMin  float64 `json:"recent_10_min"`
	RecentMax  float64 `json:"recent_10_max"`
	Last       float64 `json:"last_game"`
}

// Forecast is the full output of Predict.
type Forecast struct {
	Samples        int        `json:"samples"`
	Insufficient   bool       `json:"insufficient"`
	Estimates      []Estimate `json:"estimates,omitempty"`
	PatternMatches int        `json:"pattern_matches,omitempty"`
	Trend          string     `json:"trend,omitempty"`
	Consensus      *Consensus `json:"consensus,omitempty"`
	Context        Context    `json:"context"`
}

// Estimate looks up a sub-estimate by name.
func (f Forecast) Estimate(name string) (Estimate, bool) {
	for _, e := range f.Estimates {
		if e.Name == name {
			return e, true
		}
	}
	return Estimate{}, false
}

// Predict runs the selected sub-estimators over the outcome series. With
// fewer than MinSamples values the result is marked insufficient and
// carries no estimates.
func Predict(values []float64, opts Options) Forecast {
	opts = opts.withDefaults()
	f := Forecast{Samples: len(values)}
	if len(values) < max(opts.MinSamples, 10) {
		f.Insufficient = true
		return f
	}

	var est []Estimate
	if opts.enabled(MethodSMA) {
		est = append(est, Number(NameSMA10, SMA(values, 10)))
		if len(values) >= 50 {
			est = append(est, Number(NameSMA50, SMA(values, 50)))
		}
		if len(values) >= 100 {
			est = append(est, Number(NameSMA100, SMA(values, 100)))
		}
	}
	if opts.enabled(MethodEMA) {
		est = append(est, Number(NameEMA, EMA(values, opts.EMAAlpha)))
	}
	if opts.enabled(MethodWMA) {
		est = append(est, Number(NameWMA, WMA(values, 20)))
	}
	if opts.enabled(MethodPattern) {
		if v, matches, ok := PatternMatch(values, opts.PatternSize, opts.SimilarityThreshold); ok {
			est = append(est, Number(NamePattern, v))
			f.PatternMatches = matches
		}
	}
	if opts.enabled(MethodMedian) {
		est = append(est, Number(NameMedian, statistics.Median(values)))
	}
	if opts.enabled(MethodModeRange) {
		if v, ok := ModeRange(values, 100); ok {
			est = append(est, Number(NameModeRange, v))
		}
	}
	if opts.enabled(MethodTrend) {
		if v, trend, ok := TrendAdjusted(values); ok {
			est = append(est, Number(NameTrendAdjusted, v), Text(NameTrend, trend))
			f.Trend = trend
		}
	}
	f.Estimates = est

	if c, ok := NewConsensus(est, opts.ConsensusMin, opts.ConsensusMax); ok {
		f.Consensus = &c
	}

	recent := tail(values, 10)
	f.Context = Context{
		RecentMean: statistics.Mean(recent),
		RecentMin:  floats.Min(recent),
		RecentMax:  floats.Max(recent),
		Last:       values[len(values)-1],
	}
	return f
}
