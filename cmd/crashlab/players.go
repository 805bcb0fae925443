package main

import (
	"io"
	"os"

	"github.com/lox/crashlab/cmd/crashlab/shared"
	"github.com/lox/crashlab/internal/players"
	"github.com/lox/crashlab/internal/report"
)

// PlayersCmd prints one leaderboard.
type PlayersCmd struct {
	shared.InputFlags `embed:""`
	shared.LogFlags   `embed:""`

	By      string `help:"Ranking metric" enum:"bets,wagered,won,wins,losses,win_rate,net_profit" default:"wagered"`
	Top     int    `help:"Number of players to show" default:"10"`
	MinBets int    `help:"Minimum bets for the win_rate ranking" default:"10"`

	stdout io.Writer
}

func (c *PlayersCmd) Run() error {
	logger := c.Logger()

	metric, err := players.ParseMetric(c.By)
	if err != nil {
		return err
	}

	ctx, stop := shared.SetupSignalHandlerWithLogger(logger)
	defer stop()

	res, err := c.Load(ctx, logger)
	if err != nil {
		return err
	}

	ledger := players.Build(res.Games)
	top := ledger.Top(metric, c.Top, players.RankOptions{MinWinRateBets: c.MinBets})
	logger.Debug().
		Int("players", ledger.Len()).
		Str("metric", string(metric)).
		Int("shown", len(top)).
		Msg("Ranked players")

	out := c.stdout
	if out == nil {
		out = os.Stdout
	}
	return report.NewRenderer(out).RenderRanking(report.Ranking{
		Metric: metric,
		Rows:   report.Rows(top),
	})
}
