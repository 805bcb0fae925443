package report

import (
	"github.com/lox/crashlab/internal/fileutil"
	"github.com/lox/crashlab/internal/players"
)

// PlayerRows returns every player, largest wagered first.
func (r *Report) PlayerRows() []players.Row {
	if r.ledger == nil {
		return []players.Row{}
	}
	return r.ledger.Export()
}

// WriteJSON exports the report to path.
func (r *Report) WriteJSON(path string) error {
	return fileutil.WriteJSON(path, r)
}

// WritePlayers exports the per-player rows to path.
func (r *Report) WritePlayers(path string) error {
	return fileutil.WriteJSON(path, r.PlayerRows())
}
