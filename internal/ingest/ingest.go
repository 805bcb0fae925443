// Package ingest loads completed rounds from JSON Lines files.
//
// Every line is checked against an embedded JSON Schema before it is
// decoded. Lines that are not JSON or do not match the schema are skipped
// and counted rather than failing the whole load.
package ingest

import (
	"bufio"
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/lox/crashlab/internal/game"
)

//go:embed schemas/game.json
var schemaFiles embed.FS

const schemaURL = "https://crashlab.dev/schemas/game.json"

// maxLineSize bounds a single record. Rounds with thousands of bets run to
// a few hundred kilobytes.
const maxLineSize = 16 << 20

// ErrNoGames is returned when a source yields no usable records.
var ErrNoGames = errors.New("no games loaded")

// Result is the outcome of a load.
type Result struct {
	Games   []game.Game
	Lines   int // Non-blank lines read
	Skipped int // Lines dropped as malformed or schema-invalid
}

// Loader reads and validates game records.
type Loader struct {
	schema *jsonschema.Schema
	logger zerolog.Logger
}

// NewLoader compiles the record schema.
func NewLoader(logger zerolog.Logger) (*Loader, error) {
	data, err := schemaFiles.ReadFile("schemas/game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add game schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile game schema: %w", err)
	}

	return &Loader{
		schema: schema,
		logger: logger.With().Str("component", "ingest").Logger(),
	}, nil
}

// Load reads up to limit games from the file at path. A limit of zero or
// less reads everything.
func (l *Loader) Load(ctx context.Context, path string, limit int) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	res, err := l.Read(ctx, f, limit)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Info().
		Str("path", path).
		Int("games", len(res.Games)).
		Int("skipped", res.Skipped).
		Msg("Loaded games")
	return res, nil
}

// Read consumes JSON Lines from r. It stops early once limit games have
// been accepted or the context is cancelled.
func (l *Loader) Read(ctx context.Context, r io.Reader, limit int) (*Result, error) {
	res := &Result{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		if limit > 0 && len(res.Games) >= limit {
			break
		}
		lineNo++
		if lineNo%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		res.Lines++

		g, err := l.decode(line)
		if err != nil {
			res.Skipped++
			l.logger.Debug().Err(err).Int("line", lineNo).Msg("Skipping record")
			continue
		}
		res.Games = append(res.Games, g)
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("read failed after line %d: %w", lineNo, err)
	}

	if len(res.Games) == 0 {
		return res, ErrNoGames
	}
	return res, nil
}

func (l *Loader) decode(line []byte) (game.Game, error) {
	var doc any
	if err := json.Unmarshal(line, &doc); err != nil {
		return game.Game{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := l.schema.Validate(doc); err != nil {
		return game.Game{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var g game.Game
	if err := json.Unmarshal(line, &g); err != nil {
		return game.Game{}, fmt.Errorf("decode failed: %w", err)
	}
	return g, nil
}
