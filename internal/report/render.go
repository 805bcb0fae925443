package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/crashlab/internal/forecast"
	"github.com/lox/crashlab/internal/pattern"
	"github.com/lox/crashlab/internal/players"
)

// Renderer writes human-readable reports.
type Renderer struct {
	w  io.Writer
	st styles
}

// NewRenderer creates a renderer for w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, st: newStyles(w)}
}

type page struct {
	sb strings.Builder
	st styles
}

func (p *page) title(s string) {
	p.sb.WriteString(p.st.title.Render(s))
	p.sb.WriteString("\n")
}

func (p *page) section(s string) {
	p.sb.WriteString("\n")
	p.sb.WriteString(p.st.section.Render(s))
	p.sb.WriteString("\n")
	p.sb.WriteString(p.st.muted.Render(strings.Repeat("-", 60)))
	p.sb.WriteString("\n")
}

func (p *page) kv(label, format string, args ...any) {
	p.sb.WriteString(p.st.label.Render(label))
	p.sb.WriteString(p.st.value.Render(fmt.Sprintf(format, args...)))
	p.sb.WriteString("\n")
}

func (p *page) line(format string, args ...any) {
	fmt.Fprintf(&p.sb, format, args...)
	p.sb.WriteString("\n")
}

func (r *Renderer) flush(p *page) error {
	_, err := io.WriteString(r.w, p.sb.String())
	return err
}

// Render writes the complete report.
func (r *Renderer) Render(rep *Report) error {
	p := &page{st: r.st}
	p.title("CRASH GAME ANALYSIS")
	p.line("%s", p.st.muted.Render(fmt.Sprintf("run %s | %s | %d games (%d with outcome, %d lines skipped)",
		rep.Metadata.RunID, rep.Metadata.GeneratedAt.Format("2006-01-02 15:04:05Z07:00"),
		rep.Metadata.Games, rep.Metadata.Outcomes, rep.Metadata.SkippedLines)))

	p.section("Crash coefficients")
	s := rep.Summary
	p.kv("games", "%d", s.Count)
	p.kv("mean", "%.2fx", s.Mean)
	p.kv("median", "%.2fx", s.Median)
	p.kv("min", "%.2fx", s.Min)
	p.kv("max", "%.2fx", s.Max)
	p.kv("stdev", "%.2f", s.StdDev)
	p.kv("p25 / p75 / p95", "%.2fx / %.2fx / %.2fx", s.P25, s.P75, s.P95)

	p.section("Betting patterns")
	b := rep.BetPatterns
	p.kv("total bets", "%d", b.TotalBets)
	p.kv("games with bets", "%d", b.GamesWithBets)
	p.kv("games without bets", "%d", b.GamesWithoutBets)
	p.kv("avg bets per game", "%.2f", b.AvgBetsPerGame)
	p.kv("avg bet amount", "%.2f", b.AvgBetAmount)
	p.kv("total wagered", "%.2f", b.TotalWagered)
	p.kv("win rate", "%.2f%%", b.WinRate*100)

	p.section("Player behaviour")
	ps := rep.Players.Summary
	p.kv("unique players", "%d", ps.UniquePlayers)
	p.kv("avg bets per player", "%.2f", ps.AvgBetsPerPlayer)
	p.kv("avg wagered per player", "%.2f", ps.AvgWageredPerPlayer)
	p.kv("most active (bets)", "%d", ps.MostActiveBets)

	p.section("Game duration")
	d := rep.Durations
	if d.Count == 0 {
		p.line("%s", p.st.muted.Render("no timestamps"))
	} else {
		p.kv("avg", "%.2fs", d.Mean)
		p.kv("median", "%.2fs", d.Median)
		p.kv("min", "%.2fs", d.Min)
		p.kv("max", "%.2fs", d.Max)
	}

	p.section("Economics")
	e := rep.Economics
	p.kv("total wagered", "%s", e.TotalWagered.StringFixed(2))
	p.kv("total paid out", "%s", e.TotalPaidOut.StringFixed(2))
	p.kv("fees collected", "%s", e.TotalFees.StringFixed(2))
	p.kv("burned", "%s", e.TotalBurned.StringFixed(2))
	p.kv("house edge", "%.2f%%", e.HouseEdgePct)
	p.kv("avg fee per game", "%.2f", e.FeePerGame)

	p.section("Cashout timing")
	c := rep.Cashouts
	p.kv("cashouts", "%d", c.TotalCashouts)
	p.kv("early", "%d", c.Early)
	p.kv("late", "%d", c.Late)
	p.kv("avg cashout ratio", "%.2f%%", c.AvgRatio*100)
	p.kv("median cashout ratio", "%.2f%%", c.MedianRatio*100)

	for _, rk := range rep.Players.Rankings {
		renderRanking(p, rk)
	}

	p.section(fmt.Sprintf("Top %d highest crashes", len(rep.TopCrashes)))
	for i, cr := range rep.TopCrashes {
		p.line("%2d. Game #%d: %.2fx", i+1, cr.GameNumber, cr.Outcome)
	}

	p.section(fmt.Sprintf("Top %d biggest wins", len(rep.BiggestWins)))
	for i, w := range rep.BiggestWins {
		p.line("%2d. %.2f (bet: %.2f @ %.2fx)", i+1, w.WonAmount, w.Amount, w.Coef)
		p.line("    %s", p.st.muted.Render(fmt.Sprintf("wallet: %s | game #%d", w.Wallet, w.GameNumber)))
	}

	renderRandomness(p, rep)
	renderDistribution(p, rep)
	renderMotifs(p, rep.Motifs)
	renderForecast(p, rep.Forecast)

	return r.flush(p)
}

func renderRandomness(p *page, rep *Report) {
	p.section("Runs test")
	rt := rep.RunsTest
	p.kv("total runs", "%d", rt.Runs)
	if rt.Insufficient {
		p.kv("result", "%s", rt.Verdict)
	} else {
		p.kv("expected runs", "%.2f", rt.Expected)
		p.kv("z-score", "%.3f", rt.Z)
		p.kv("p-value", "%.4f", rt.PValue)
		verdict := p.st.bad.Render(string(rt.Verdict))
		if rt.IsRandom() {
			verdict = p.st.good.Render(string(rt.Verdict))
		}
		p.kv("result", "%s", verdict)
	}

	p.section("Autocorrelation")
	for _, ac := range rep.Autocorrelation {
		p.kv(fmt.Sprintf("lag %d", ac.Lag), "%+.3f (%s)", ac.Coefficient, ac.Interpretation)
	}

	p.section("Streaks")
	st := rep.Streaks
	p.kv("median crash", "%.2fx", st.Median)
	p.kv("longest high streak", "%d", st.LongestHigh)
	p.kv("longest low streak", "%d", st.LongestLow)
	p.kv("avg high streak", "%.2f", st.AvgHigh)
	p.kv("avg low streak", "%.2f", st.AvgLow)
	if st.CurrentLength > 0 {
		p.kv("current streak", "%d %s", st.CurrentLength, st.Current)
	}

	p.section("Volatility")
	v := rep.Volatility
	if v.Empty() {
		p.line("%s", p.st.muted.Render(fmt.Sprintf("fewer than %d outcomes", v.Window)))
	} else {
		p.kv("window", "%d", v.Window)
		p.kv("average", "%.3f", v.Mean)
		p.kv("recent", "%.3f", v.Recent)
		p.kv("max", "%.3f", v.Max)
		p.kv("min", "%.3f", v.Min)
		p.kv("trend", "%s", v.Trend)
	}

	p.section("Conditional probabilities")
	tr := rep.Transitions
	p.kv("median threshold", "%.2fx", tr.Median)
	p.kv("P(high | low)", "%.1f%%", tr.HighAfterLow*100)
	p.kv("P(low | low)", "%.1f%%", tr.LowAfterLow*100)
	p.kv("P(high | high)", "%.1f%%", tr.HighAfterHigh*100)
	p.kv("P(low | high)", "%.1f%%", tr.LowAfterHigh*100)
}

func renderDistribution(p *page, rep *Report) {
	p.section("Distribution")
	dist := rep.Distribution
	for _, bin := range dist.Bins {
		p.line("  %-12s %6d games (%5.2f%%)", bin.Label, bin.Count, bin.Percent)
	}
	p.kv("below 2.0x", "%.2f%%", dist.BelowTwo)
	p.kv("5.0x and above", "%.2f%%", dist.AboveFive)
	p.kv("10.0x and above", "%.2f%%", dist.AboveTen)
}

func renderMotifs(p *page, m pattern.MotifResult) {
	p.section(fmt.Sprintf("Most common patterns (%d-game sequences)", m.Length))
	if len(m.Top) == 0 {
		p.line("%s", p.st.muted.Render("not enough outcomes"))
		return
	}
	p.line("%s", p.st.muted.Render("legend: "+pattern.Legend))
	for i, motif := range m.Top {
		p.line("%2d. %-14s %5d times (%5.2f%%)", i+1, motif.String(), motif.Count, m.Share(motif)*100)
	}
}

var rankingTitles = map[players.Metric]string{
	players.MetricBets:      "Most active players",
	players.MetricWagered:   "Highest wagered",
	players.MetricWon:       "Biggest winners",
	players.MetricWins:      "Most wins",
	players.MetricLosses:    "Most losses",
	players.MetricNetProfit: "Most profitable players",
	players.MetricWinRate:   "Best win rates",
}

func renderRanking(p *page, rk Ranking) {
	p.section(fmt.Sprintf("%s (by %s)", rankingTitles[rk.Metric], rk.Metric))
	if len(rk.Rows) == 0 {
		p.line("%s", p.st.muted.Render("no qualifying players"))
		return
	}
	for i, row := range rk.Rows {
		p.line("%2d. %s: %d bets | wagered %.2f | won %.2f | win rate %.1f%% | net %+.2f",
			i+1, row.Wallet, row.TotalBets, row.Wagered, row.Won, row.WinRate*100, row.NetProfit)
	}
}

// RenderRanking writes a single leaderboard.
func (r *Renderer) RenderRanking(rk Ranking) error {
	p := &page{st: r.st}
	renderRanking(p, rk)
	return r.flush(p)
}

var outlooks = map[pattern.Category]string{
	pattern.VeryLow:  "very low crash (high risk)",
	pattern.Low:      "low crash",
	pattern.Medium:   "medium crash",
	pattern.High:     "high crash",
	pattern.VeryHigh: "very high crash",
}

var estimateTitles = map[string]string{
	forecast.NameSMA10:         "SMA (10 games)",
	forecast.NameSMA50:         "SMA (50 games)",
	forecast.NameSMA100:        "SMA (100 games)",
	forecast.NameEMA:           "EMA (exponential)",
	forecast.NameWMA:           "WMA (weighted)",
	forecast.NamePattern:       "Pattern-based",
	forecast.NameMedian:        "Historical median",
	forecast.NameModeRange:     "Most common range",
	forecast.NameTrendAdjusted: "Trend-adjusted",
}

func renderForecast(p *page, f forecast.Forecast) {
	p.section("Next outcome forecast")
	if f.Insufficient {
		p.line("%s", p.st.warn.Render(fmt.Sprintf("insufficient data: %d outcomes", f.Samples)))
		return
	}

	recent := f.Context
	p.kv("last game", "%.2fx", recent.Last)
	p.kv("recent 10 avg", "%.2fx", recent.RecentMean)
	p.kv("recent 10 range", "%.2fx - %.2fx", recent.RecentMin, recent.RecentMax)
	if f.Trend != "" {
		p.kv("trend", "%s", f.Trend)
	}
	p.line("")

	for _, e := range f.Estimates {
		v, ok := e.Numeric()
		if !ok {
			continue
		}
		title := estimateTitles[e.Name]
		if title == "" {
			title = e.Name
		}
		if e.Name == forecast.NamePattern {
			p.kv(title, "%.2fx (%d similar)", v, f.PatternMatches)
			continue
		}
		p.kv(title, "%.2fx", v)
	}

	if f.Consensus == nil {
		p.line("%s", p.st.warn.Render("no estimate inside the consensus bounds"))
		return
	}
	c := f.Consensus
	p.line("")
	p.kv("CONSENSUS", "%s", p.st.good.Render(fmt.Sprintf("%.2fx", c.Value)))
	p.kv("confidence", "%s", c.Confidence)
	p.kv("std deviation", "±%.2fx", c.StdDev)
	p.kv("outlook", "%s", outlooks[pattern.Categorize(c.Value)])
	p.line("%s", p.st.muted.Render("Estimates describe recent history only. The house edge guarantees losses over time."))
}

// RenderForecast writes the forecast section on its own.
func (r *Renderer) RenderForecast(f forecast.Forecast) error {
	p := &page{st: r.st}
	renderForecast(p, f)
	return r.flush(p)
}
