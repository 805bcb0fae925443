package main

import (
	"fmt"
	"io"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/crashlab/cmd/crashlab/shared"
	"github.com/lox/crashlab/internal/config"
	"github.com/lox/crashlab/internal/report"
)

// AnalyzeCmd runs the full report.
type AnalyzeCmd struct {
	shared.InputFlags `embed:""`
	shared.LogFlags   `embed:""`

	Config        string `help:"Analysis config file (.hcl, .toml, .yaml)" type:"path"`
	JSON          string `name:"json" help:"Write the full report as JSON to this path" type:"path"`
	ExportPlayers string `help:"Write per-player statistics as JSON to this path" type:"path"`
	Quiet         bool   `short:"q" help:"Skip the terminal report"`

	stdout io.Writer
	clock  quartz.Clock
}

func (c *AnalyzeCmd) Run() error {
	logger := c.Logger()

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger, err = shared.ApplyLevel(logger, cfg.LogLevel, c.Debug)
	if err != nil {
		return err
	}

	ctx, stop := shared.SetupSignalHandlerWithLogger(logger)
	defer stop()

	res, err := c.Load(ctx, logger)
	if err != nil {
		return err
	}

	assembler := report.NewAssembler(cfg, c.clock, logger)
	rep, err := assembler.Build(ctx, report.Input{
		Source:  c.File,
		Games:   res.Games,
		Skipped: res.Skipped,
	})
	if err != nil {
		return err
	}

	if !c.Quiet {
		out := c.stdout
		if out == nil {
			out = os.Stdout
		}
		if err := report.NewRenderer(out).Render(rep); err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
	}

	if c.JSON != "" {
		if err := rep.WriteJSON(c.JSON); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info().Str("path", c.JSON).Msg("Report exported")
	}
	if c.ExportPlayers != "" {
		if err := rep.WritePlayers(c.ExportPlayers); err != nil {
			return fmt.Errorf("writing player statistics: %w", err)
		}
		logger.Info().
			Str("path", c.ExportPlayers).
			Int("players", rep.Players.Summary.UniquePlayers).
			Msg("Player statistics exported")
	}
	return nil
}
