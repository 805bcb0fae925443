// Package players folds every bet of a batch into per-player totals and
// ranks players by raw or derived metrics.
package players

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lox/crashlab/internal/game"
)

// Aggregate holds the running totals of one player.
type Aggregate struct {
	Player  string
	Bets    int
	Wins    int
	Losses  int
	Wagered decimal.Decimal
	Won     decimal.Decimal
}

// WinRate is wins over bets, 0 for a player without bets.
func (a Aggregate) WinRate() float64 {
	if a.Bets == 0 {
		return 0
	}
	return float64(a.Wins) / float64(a.Bets)
}

// NetProfit is the amount won minus the amount wagered.
func (a Aggregate) NetProfit() decimal.Decimal {
	return a.Won.Sub(a.Wagered)
}

// Ledger maps player identifiers to their aggregates, remembering the
// order in which players were first seen.
type Ledger struct {
	order    []string
	byPlayer map[string]*Aggregate
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{byPlayer: make(map[string]*Aggregate)}
}

// Build folds every bet of every game into a fresh ledger.
func Build(games []game.Game) *Ledger {
	l := NewLedger()
	for _, g := range games {
		for _, b := range g.Bets {
			l.Record(b)
		}
	}
	return l
}

// Record adds a single bet. Bets without a player identifier are skipped.
func (l *Ledger) Record(b game.Bet) {
	if b.Wallet == "" {
		return
	}
	agg, ok := l.byPlayer[b.Wallet]
	if !ok {
		agg = &Aggregate{Player: b.Wallet}
		l.byPlayer[b.Wallet] = agg
		l.order = append(l.order, b.Wallet)
	}

	agg.Bets++
	agg.Wagered = agg.Wagered.Add(decimal.NewFromFloat(b.Stake()))
	if b.Won() {
		agg.Wins++
		agg.Won = agg.Won.Add(decimal.NewFromFloat(b.Returned()))
	} else {
		agg.Losses++
	}
}

// Len returns the number of distinct players.
func (l *Ledger) Len() int {
	return len(l.order)
}

// Get returns a copy of one player's aggregate.
func (l *Ledger) Get(player string) (Aggregate, bool) {
	agg, ok := l.byPlayer[player]
	if !ok {
		return Aggregate{}, false
	}
	return *agg, true
}

// All returns copies of every aggregate in first-seen order.
func (l *Ledger) All() []Aggregate {
	out := make([]Aggregate, len(l.order))
	for i, p := range l.order {
		out[i] = *l.byPlayer[p]
	}
	return out
}

// Summary describes the player population.
type Summary struct {
	UniquePlayers       int     `json:"unique_players"`
	AvgBetsPerPlayer    float64 `json:"avg_bets_per_player"`
	AvgWageredPerPlayer float64 `json:"avg_wagered_per_player"`
	MostActiveBets      int     `json:"most_active_player_bets"`
}

// Summary computes population-wide averages.
func (l *Ledger) Summary() Summary {
	s := Summary{UniquePlayers: l.Len()}
	if s.UniquePlayers == 0 {
		return s
	}

	bets := 0
	wagered := decimal.Zero
	for _, agg := range l.byPlayer {
		bets += agg.Bets
		wagered = wagered.Add(agg.Wagered)
		s.MostActiveBets = max(s.MostActiveBets, agg.Bets)
	}
	n := float64(s.UniquePlayers)
	s.AvgBetsPerPlayer = float64(bets) / n
	s.AvgWageredPerPlayer = wagered.InexactFloat64() / n
	return s
}

// Row is the flattened export form of an aggregate.
type Row struct {
	Wallet    string  `json:"wallet"`
	TotalBets int     `json:"total_bets"`
	Wagered   float64 `json:"total_wagered"`
	Won       float64 `json:"total_won"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	WinRate   float64 `json:"win_rate"`
	NetProfit float64 `json:"net_profit"`
}

// Export flattens the ledger, largest wagered first.
func (l *Ledger) Export() []Row {
	all := l.All()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Wagered.GreaterThan(all[j].Wagered)
	})

	rows := make([]Row, len(all))
	for i, a := range all {
		rows[i] = a.Row()
	}
	return rows
}

// Row flattens the aggregate for export.
func (a Aggregate) Row() Row {
	return Row{
		Wallet:    a.Player,
		TotalBets: a.Bets,
		Wagered:   a.Wagered.InexactFloat64(),
		Won:       a.Won.InexactFloat64(),
		Wins:      a.Wins,
		Losses:    a.Losses,
		WinRate:   a.WinRate(),
		NetProfit: a.NetProfit().InexactFloat64(),
	}
}
