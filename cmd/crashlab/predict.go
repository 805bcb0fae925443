package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lox/crashlab/cmd/crashlab/shared"
	"github.com/lox/crashlab/internal/forecast"
	"github.com/lox/crashlab/internal/game"
	"github.com/lox/crashlab/internal/report"
)

// PredictCmd forecasts the next outcome from the loaded history.
type PredictCmd struct {
	shared.InputFlags `embed:""`
	shared.LogFlags   `embed:""`

	Methods    []string `help:"Estimators to run (sma, ema, wma, pattern, median, mode_range, trend); empty runs all" sep:","`
	Alpha      float64  `help:"EMA smoothing factor" default:"0.2"`
	Similarity float64  `help:"Squared-distance threshold for pattern matches" default:"2.0"`
	JSON       bool     `name:"json" help:"Print the forecast as JSON"`

	stdout io.Writer
}

func (c *PredictCmd) Run() error {
	logger := c.Logger()

	methods, err := forecast.ParseMethods(c.Methods)
	if err != nil {
		return err
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be in (0, 1], got %g", c.Alpha)
	}
	if c.Similarity <= 0 {
		return fmt.Errorf("similarity must be positive, got %g", c.Similarity)
	}

	ctx, stop := shared.SetupSignalHandlerWithLogger(logger)
	defer stop()

	res, err := c.Load(ctx, logger)
	if err != nil {
		return err
	}

	values := game.Outcomes(res.Games)
	opts := forecast.DefaultOptions()
	opts.Methods = methods
	opts.EMAAlpha = c.Alpha
	opts.SimilarityThreshold = c.Similarity
	f := forecast.Predict(values, opts)

	logger.Debug().
		Int("samples", f.Samples).
		Int("estimates", len(f.Estimates)).
		Bool("consensus", f.Consensus != nil).
		Msg("Forecast complete")

	out := c.stdout
	if out == nil {
		out = os.Stdout
	}
	if c.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encoding forecast: %w", err)
		}
		return nil
	}
	return report.NewRenderer(out).RenderForecast(f)
}
