// Package report assembles every analysis over a batch of games into a
// single Report, renders it for the terminal and exports it as JSON.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/crashlab/internal/config"
	"github.com/lox/crashlab/internal/forecast"
	"github.com/lox/crashlab/internal/game"
	"github.com/lox/crashlab/internal/pattern"
	"github.com/lox/crashlab/internal/players"
	"github.com/lox/crashlab/internal/randomness"
	"github.com/lox/crashlab/internal/statistics"
)

// Report is the full output of one analysis run
type Report struct {
	Metadata        Metadata                           `json:"metadata"`
	Summary         statistics.Summary                 `json:"crash_coefficients"`
	Distribution    statistics.Distribution            `json:"distribution"`
	Economics       Economics                          `json:"economics"`
	BetPatterns     statistics.BetPatternStats         `json:"bet_patterns"`
	Cashouts        statistics.CashoutStats            `json:"cashout_timing"`
	Durations       statistics.DurationStats           `json:"durations"`
	TopCrashes      []statistics.Crash                 `json:"top_crashes"`
	BiggestWins     []statistics.Win                   `json:"biggest_wins"`
	Streaks         randomness.StreakStats             `json:"streaks"`
	RunsTest        randomness.RunsTestResult          `json:"runs_test"`
	Autocorrelation []randomness.AutocorrelationResult `json:"autocorrelation"`
	Volatility      randomness.VolatilityStats         `json:"volatility"`
	Transitions     randomness.TransitionStats         `json:"conditional_probabilities"`
	Motifs          pattern.MotifResult                `json:"patterns"`
	Players         Players                            `json:"players"`
	Forecast        forecast.Forecast                  `json:"prediction"`

	ledger *players.Ledger
}

// Metadata describes the run that produced a report
type Metadata struct {
	RunID          string    `json:"run_id"`
	Source         string    `json:"source,omitempty"`
	GeneratedAt    time.Time `json:"generated_at"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	Games          int       `json:"games"`
	Outcomes       int       `json:"outcomes"`
	SkippedLines   int       `json:"skipped_lines"`
}

// Economics adds the derived ratios to the raw money totals
type Economics struct {
	statistics.EconomicStats
	HouseEdgePct float64 `json:"house_edge"`
	FeePerGame   float64 `json:"avg_fee_per_game"`
}

// Players holds the population summary and the leaderboards
type Players struct {
	Summary  players.Summary `json:"summary"`
	Rankings []Ranking       `json:"rankings"`
}

// Ranking is one leaderboard
type Ranking struct {
	Metric players.Metric `json:"metric"`
	Rows   []players.Row  `json:"players"`
}

// RankedMetrics are the leaderboards included in a full report
var RankedMetrics = []players.Metric{
	players.MetricBets,
	players.MetricWagered,
	players.MetricWon,
	players.MetricNetProfit,
	players.MetricWinRate,
}

// Input is a loaded batch ready for analysis
type Input struct {
	Source  string
	Games   []game.Game
	Skipped int
}

// Assembler runs the analyses and collects their results
type Assembler struct {
	cfg    *config.Config
	clock  quartz.Clock
	logger zerolog.Logger
}

// NewAssembler creates an assembler. A nil config uses the defaults.
func NewAssembler(cfg *config.Config, clock quartz.Clock, logger zerolog.Logger) *Assembler {
	if cfg == nil {
		cfg = config.Default()
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Assembler{
		cfg:    cfg,
		clock:  clock,
		logger: logger.With().Str("component", "report").Logger(),
	}
}

// Build runs every analysis concurrently. Each analysis writes only its
// own field of the report, so the goroutines share nothing mutable.
func (a *Assembler) Build(ctx context.Context, in Input) (*Report, error) {
	fopts, err := a.cfg.ForecastOptions()
	if err != nil {
		return nil, fmt.Errorf("forecast settings: %w", err)
	}

	start := a.clock.Now()
	values := game.Outcomes(in.Games)
	an := a.cfg.Analysis

	r := &Report{
		Metadata: Metadata{
			RunID:        uuid.NewString(),
			Source:       in.Source,
			GeneratedAt:  start.UTC(),
			Games:        len(in.Games),
			Outcomes:     len(values),
			SkippedLines: in.Skipped,
		},
	}

	g, ctx := errgroup.WithContext(ctx)
	run := func(name string, fn func()) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			began := a.clock.Now()
			fn()
			a.logger.Debug().
				Str("analysis", name).
				Dur("took", a.clock.Since(began)).
				Msg("Analysis finished")
			return nil
		})
	}

	run("descriptive", func() {
		r.Summary = statistics.Summarize(values)
		r.Distribution = statistics.Distribute(values)
	})
	run("economics", func() {
		econ := statistics.Economics(in.Games)
		r.Economics = Economics{
			EconomicStats: econ,
			HouseEdgePct:  econ.HouseEdge(),
			FeePerGame:    econ.AvgFeePerGame(),
		}
		r.BetPatterns = statistics.BetPatterns(in.Games)
		r.Cashouts = statistics.Cashouts(in.Games)
		r.Durations = statistics.Durations(in.Games)
	})
	run("extremes", func() {
		r.TopCrashes = statistics.TopCrashes(in.Games, an.TopN)
		r.BiggestWins = statistics.BiggestWins(in.Games, an.TopN)
	})
	run("randomness", func() {
		r.Streaks = randomness.Streaks(values)
		r.RunsTest = randomness.RunsTest(values)
		r.Autocorrelation = randomness.Correlogram(values, an.AutocorrelationLags)
		r.Transitions = randomness.Transitions(values)
	})
	run("volatility", func() {
		r.Volatility = randomness.Volatility(values, an.VolatilityWindow)
	})
	run("patterns", func() {
		r.Motifs = pattern.Count(values, an.MotifLength, an.TopN)
	})
	run("players", func() {
		r.ledger = players.Build(in.Games)
		r.Players = a.rank(r.ledger)
	})
	run("forecast", func() {
		r.Forecast = forecast.Predict(values, fopts)
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis interrupted: %w", err)
	}

	r.Metadata.ElapsedSeconds = a.clock.Since(start).Seconds()
	a.logger.Info().
		Str("run_id", r.Metadata.RunID).
		Int("games", r.Metadata.Games).
		Int("outcomes", r.Metadata.Outcomes).
		Float64("elapsed_seconds", r.Metadata.ElapsedSeconds).
		Msg("Report assembled")
	return r, nil
}

func (a *Assembler) rank(ledger *players.Ledger) Players {
	opts := players.RankOptions{MinWinRateBets: a.cfg.Analysis.MinWinRateBets}

	out := Players{Summary: ledger.Summary()}
	for _, metric := range RankedMetrics {
		out.Rankings = append(out.Rankings, Ranking{
			Metric: metric,
			Rows:   Rows(ledger.Top(metric, a.cfg.Analysis.TopN, opts)),
		})
	}
	return out
}

// Rows flattens ranked aggregates
func Rows(aggs []players.Aggregate) []players.Row {
	rows := make([]players.Row, len(aggs))
	for i, agg := range aggs {
		rows[i] = agg.Row()
	}
	return rows
}
