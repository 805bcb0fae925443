// Package game defines the record model for completed crash rounds.
//
// A Game is one finished round: its sequence number, the multiplier it
// crashed at, the round's economic totals and the bets placed on it. Fields
// that may be absent from the source log are pointers or strings parsed on
// demand, so that callers can tell "missing" apart from zero.
//
// # Basic Usage
//
// Extract the outcome series that every sequential analysis consumes:
//
//	res, err := loader.Load(ctx, path, 0)
//	if err != nil {
//		return err
//	}
//	values := game.Outcomes(res.Games)
//
// Games without an outcome are dropped from the series; they still count
// towards economic and player analyses.
//
// # Ownership
//
// Bets are owned by their Game by containment. Nothing in this package
// mutates a Game after it has been decoded, and analyses are expected to
// treat the slice as read-only for the lifetime of a pass.
package game
