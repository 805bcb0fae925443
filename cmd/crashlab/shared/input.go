package shared

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lox/crashlab/internal/ingest"
)

// InputFlags select the games a command reads
type InputFlags struct {
	File  string `arg:"" name:"file" help:"JSON Lines file of completed games" type:"existingfile"`
	Limit int    `help:"Maximum number of games to load (0 = all)"`
}

// Load reads and validates the selected games
func (f InputFlags) Load(ctx context.Context, logger zerolog.Logger) (*ingest.Result, error) {
	loader, err := ingest.NewLoader(logger)
	if err != nil {
		return nil, err
	}
	res, err := loader.Load(ctx, f.File, f.Limit)
	if err != nil {
		return nil, fmt.Errorf("loading games: %w", err)
	}
	return res, nil
}
