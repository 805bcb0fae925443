package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to a renderer so colour detection follows the output
// writer rather than the process stdout.
type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		section: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		label: r.NewStyle().
			Width(24),
		value: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		good: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		bad: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		warn: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
