package progress

import "math"

// Log is one day's recorded activity for an action step.
type Log struct {
	Date         string // YYYY-MM-DD local calendar day
	IsComplete   bool
	NumericValue float64
}

// Done reports whether a log counts as completed: an explicit complete flag,
// or any positive numeric value. A missing log is never done.
func Done(l Log) bool {
	return l.IsComplete || l.NumericValue > 0
}

// Mode selects how the aggregator accumulates a total.
type Mode int

const (
	// ModeCount counts done days (boolean steps, or numeric steps tracked
	// as done/not-done).
	ModeCount Mode = iota
	// ModeSum sums numeric values (cumulative steps like pages read).
	ModeSum
)

// DayStatus is one cell of the recent-history strip.
type DayStatus struct {
	Date    string
	Weekday string
	Done    bool
}

// Summary is the aggregated view of one step's logs.
type Summary struct {
	Total      float64
	Percentage int // clamped to [0, 100]
	History    []DayStatus
}

// Summarize reduces a step's logs to a total, a percentage of the normalized
// target, and a history strip aligned to the given day window. It is a pure
// function of its inputs; callers recompute it from a fresh snapshot on every
// change. A date that appears more than once keeps its last log, matching the
// store's overwrite-on-upsert behavior.
func Summarize(logs []Log, target float64, window []Day, mode Mode) Summary {
	byDate := make(map[string]Log, len(logs))
	for _, l := range logs {
		byDate[l.Date] = l
	}

	var total float64
	switch mode {
	case ModeSum:
		for _, l := range byDate {
			total += l.NumericValue
		}
	default:
		for _, l := range byDate {
			if Done(l) {
				total++
			}
		}
	}

	if target < 1 {
		target = 1
	}
	pct := int(math.Round(total / target * 100))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}

	history := make([]DayStatus, 0, len(window))
	for _, d := range window {
		l, ok := byDate[d.Date]
		history = append(history, DayStatus{
			Date:    d.Date,
			Weekday: d.Weekday,
			Done:    ok && Done(l),
		})
	}

	return Summary{Total: total, Percentage: pct, History: history}
}
