package ui

import (
	"fmt"
	"strings"

	"github.com/alignhq/align/internal/progress"
)

const (
	doneGlyph   = "●"
	missedGlyph = "○"
)

// HistoryStrip renders a day window as a row of filled/hollow dots, one per
// day, oldest first.
func HistoryStrip(history []progress.DayStatus) string {
	var b strings.Builder
	for i, day := range history {
		if i > 0 {
			b.WriteByte(' ')
		}
		if day.Done {
			b.WriteString(Success.Render(doneGlyph))
		} else {
			b.WriteString(Muted.Render(missedGlyph))
		}
	}
	return b.String()
}

// HistoryLabels renders the weekday row aligned under HistoryStrip.
func HistoryLabels(history []progress.DayStatus) string {
	labels := make([]string, len(history))
	for i, day := range history {
		labels[i] = strings.ToLower(day.Weekday[:1])
	}
	return Muted.Render(strings.Join(labels, " "))
}

// ProgressBar renders a percentage as a fixed-width bar with the number
// alongside.
func ProgressBar(pct, width int) string {
	if width <= 0 {
		width = 20
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := pct * width / 100
	bar := Success.Render(strings.Repeat("█", filled)) +
		Muted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// StreakBadge renders a streak count, highlighting active streaks.
func StreakBadge(streak int) string {
	if streak <= 0 {
		return Muted.Render("no streak")
	}
	unit := "days"
	if streak == 1 {
		unit = "day"
	}
	return Accent.Render(fmt.Sprintf("%s %d %s", IconStreak, streak, unit))
}
