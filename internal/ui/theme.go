package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// align's color palette — calm blues, growth greens, warm accents.
var (
	// Primary colors
	Indigo  = lipgloss.Color("#6366F1")
	Sky     = lipgloss.Color("#38BDF8")
	Emerald = lipgloss.Color("#34D399")
	Amber   = lipgloss.Color("#FBBF24")
	Rose    = lipgloss.Color("#FB7185")
	Slate   = lipgloss.Color("#64748B")
	Dim     = lipgloss.Color("#666666")
	Bright  = lipgloss.Color("#FFFFFF")

	// Semantic styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Indigo)

	Subtitle = lipgloss.NewStyle().
			Foreground(Sky)

	Success = lipgloss.NewStyle().
		Foreground(Emerald)

	Error = lipgloss.NewStyle().
		Foreground(Rose)

	Warning = lipgloss.NewStyle().
		Foreground(Amber)

	Info = lipgloss.NewStyle().
		Foreground(Sky)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Indigo).
		Bold(true)

	// Component styles
	Banner = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Indigo).
		Padding(0, 1)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Sky).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)
)

// Icon constants — consistent emoji language.
const (
	IconGoal    = "🎯"
	IconAction  = "⚡"
	IconDone    = "✅"
	IconStreak  = "🔥"
	IconJournal = "📔"
	IconReview  = "🧭"
	IconCoach   = "✨"
	IconTrophy  = "🏆"
	IconLock    = "🔒"
	IconWarn    = "⚠️ "
	IconError   = "✗ "
	IconOk      = "✓ "
	IconArrow   = "→"
	IconDot     = "·"
)

// ColorEnabled reports whether the terminal supports color output at all.
// Renderers fall back to plain glyphs when it returns false.
func ColorEnabled() bool {
	return termenv.EnvColorProfile() != termenv.Ascii
}
