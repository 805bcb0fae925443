// Package config loads analysis settings from HCL, TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/lox/crashlab/internal/forecast"
	"github.com/lox/crashlab/internal/players"
)

// Config is the complete analysis configuration
type Config struct {
	LogLevel string            `hcl:"log_level,optional" toml:"log_level" yaml:"log_level"`
	Analysis *AnalysisSettings `hcl:"analysis,block" toml:"analysis" yaml:"analysis"`
	Forecast *ForecastSettings `hcl:"forecast,block" toml:"forecast" yaml:"forecast"`
}

// AnalysisSettings tunes the descriptive and randomness analyses
type AnalysisSettings struct {
	VolatilityWindow    int   `hcl:"volatility_window,optional" toml:"volatility_window" yaml:"volatility_window"`
	AutocorrelationLags []int `hcl:"autocorrelation_lags,optional" toml:"autocorrelation_lags" yaml:"autocorrelation_lags"`
	MotifLength         int   `hcl:"motif_length,optional" toml:"motif_length" yaml:"motif_length"`
	TopN                int   `hcl:"top_n,optional" toml:"top_n" yaml:"top_n"`
	MinWinRateBets      int   `hcl:"min_win_rate_bets,optional" toml:"min_win_rate_bets" yaml:"min_win_rate_bets"`
}

// ForecastSettings tunes the forecaster
type ForecastSettings struct {
	Methods             []string `hcl:"methods,optional" toml:"methods" yaml:"methods"`
	MinSamples          int      `hcl:"min_samples,optional" toml:"min_samples" yaml:"min_samples"`
	EMAAlpha            float64  `hcl:"ema_alpha,optional" toml:"ema_alpha" yaml:"ema_alpha"`
	PatternSize         int      `hcl:"pattern_size,optional" toml:"pattern_size" yaml:"pattern_size"`
	SimilarityThreshold float64  `hcl:"similarity_threshold,optional" toml:"similarity_threshold" yaml:"similarity_threshold"`
	ConsensusMin        float64  `hcl:"consensus_min,optional" toml:"consensus_min" yaml:"consensus_min"`
	ConsensusMax        float64  `hcl:"consensus_max,optional" toml:"consensus_max" yaml:"consensus_max"`
}

// Default returns the stock configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a configuration file, choosing the decoder by extension.
// A missing file yields the default configuration.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	var cfg Config
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".hcl":
		err = decodeHCL(filename, &cfg)
	case ".toml":
		_, err = toml.DecodeFile(filename, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(filename, &cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", filename, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func decodeHCL(filename string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return nil
}

func decodeYAML(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Analysis == nil {
		c.Analysis = &AnalysisSettings{}
	}
	a := c.Analysis
	if a.VolatilityWindow == 0 {
		a.VolatilityWindow = 20
	}
	if len(a.AutocorrelationLags) == 0 {
		a.AutocorrelationLags = []int{1}
	}
	if a.MotifLength == 0 {
		a.MotifLength = 3
	}
	if a.TopN == 0 {
		a.TopN = 10
	}
	if a.MinWinRateBets == 0 {
		a.MinWinRateBets = players.DefaultMinWinRateBets
	}

	if c.Forecast == nil {
		c.Forecast = &ForecastSettings{}
	}
	f := c.Forecast
	d := forecast.DefaultOptions()
	if f.MinSamples == 0 {
		f.MinSamples = d.MinSamples
	}
	if f.EMAAlpha == 0 {
		f.EMAAlpha = d.EMAAlpha
	}
	if f.PatternSize == 0 {
		f.PatternSize = d.PatternSize
	}
	if f.SimilarityThreshold == 0 {
		f.SimilarityThreshold = d.SimilarityThreshold
	}
	if f.ConsensusMin == 0 && f.ConsensusMax == 0 {
		f.ConsensusMin = d.ConsensusMin
		f.ConsensusMax = d.ConsensusMax
	}
}

// Validate checks the configuration for values the analyses cannot use
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	a := c.Analysis
	if a.VolatilityWindow < 2 {
		return fmt.Errorf("volatility window must be at least 2, got %d", a.VolatilityWindow)
	}
	for _, lag := range a.AutocorrelationLags {
		if lag < 1 {
			return fmt.Errorf("autocorrelation lag must be positive, got %d", lag)
		}
	}
	if a.MotifLength < 1 {
		return fmt.Errorf("motif length must be positive, got %d", a.MotifLength)
	}
	if a.TopN < 1 {
		return fmt.Errorf("top_n must be positive, got %d", a.TopN)
	}
	if a.MinWinRateBets < 1 {
		return fmt.Errorf("min_win_rate_bets must be positive, got %d", a.MinWinRateBets)
	}

	f := c.Forecast
	if _, err := forecast.ParseMethods(f.Methods); err != nil {
		return err
	}
	if f.MinSamples < 10 {
		return fmt.Errorf("forecast min_samples must be at least 10, got %d", f.MinSamples)
	}
	if f.EMAAlpha <= 0 || f.EMAAlpha > 1 {
		return fmt.Errorf("ema_alpha must be in (0, 1], got %g", f.EMAAlpha)
	}
	if f.PatternSize < 1 {
		return fmt.Errorf("pattern_size must be positive, got %d", f.PatternSize)
	}
	if f.SimilarityThreshold <= 0 {
		return fmt.Errorf("similarity_threshold must be positive, got %g", f.SimilarityThreshold)
	}
	if f.ConsensusMin >= f.ConsensusMax {
		return fmt.Errorf("consensus_min (%g) must be below consensus_max (%g)", f.ConsensusMin, f.ConsensusMax)
	}
	return nil
}

// ForecastOptions converts the forecast settings. An unknown method name is
// an error rather than an empty selection, which would enable every method.
func (c *Config) ForecastOptions() (forecast.Options, error) {
	f := c.Forecast
	methods, err := forecast.ParseMethods(f.Methods)
	if err != nil {
		return forecast.Options{}, err
	}
	return forecast.Options{
		Methods:             methods,
		MinSamples:          f.MinSamples,
		EMAAlpha:            f.EMAAlpha,
		PatternSize:         f.PatternSize,
		SimilarityThreshold: f.SimilarityThreshold,
		ConsensusMin:        f.ConsensusMin,
		ConsensusMax:        f.ConsensusMax,
	}, nil
}
