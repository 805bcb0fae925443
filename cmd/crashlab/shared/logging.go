package shared

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogFlags are the logging options every command accepts
type LogFlags struct {
	Debug    bool `help:"Enable debug logging"`
	JSONLogs bool `name:"json-logs" help:"Emit logs as JSON instead of console output"`
}

// Logger builds the logger selected by the flags
func (f LogFlags) Logger() zerolog.Logger {
	if f.JSONLogs {
		return SetupStructuredLogger(f.Debug)
	}
	return SetupLogger(f.Debug)
}

// SetupLogger configures zerolog with pretty console output
func SetupLogger(debug bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

// SetupStructuredLogger configures zerolog for structured (JSON) output
func SetupStructuredLogger(debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(os.Stderr).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

// ApplyLevel lowers or raises the logger to a configured level name. The
// --debug flag always wins.
func ApplyLevel(logger zerolog.Logger, name string, debug bool) (zerolog.Logger, error) {
	if debug || name == "" {
		return logger, nil
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return logger, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return logger.Level(lvl), nil
}

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
