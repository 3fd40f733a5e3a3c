package track

import (
	"fmt"

	"github.com/alignhq/align/internal/progress"
)

// ActionReport is one step's derived progress view: normalized target,
// completion total, percentage, history strip, and streak.
type ActionReport struct {
	Step    ActionStep
	Target  float64
	Summary progress.Summary
	Streak  int
}

// ProgressReport assembles the full progress view: every action step with
// its logs reduced through the progress engine. Each call works on a fresh
// snapshot; nothing is cached between calls.
func (s *Store) ProgressReport(c progress.Clock, historyDays int) ([]ActionReport, error) {
	steps, err := s.ListActions("")
	if err != nil {
		return nil, fmt.Errorf("listing action steps: %w", err)
	}

	window := progress.LastNDays(c, historyDays)
	reports := make([]ActionReport, 0, len(steps))
	for _, step := range steps {
		logs, err := s.LogsFor(step.ID)
		if err != nil {
			return nil, fmt.Errorf("loading logs for %s: %w", step.ID, err)
		}

		target := progress.NormalizeTarget(step.Target())
		reports = append(reports, ActionReport{
			Step:    step,
			Target:  target,
			Summary: progress.Summarize(logs, target, window, step.Mode()),
			Streak:  progress.Streak(logs, step.Type, step.TargetValue, c),
		})
	}
	return reports, nil
}

// FocusItem is one entry in today's focus list: an eligible step plus its
// log for today, if any.
type FocusItem struct {
	Step     ActionStep
	TodayLog *DailyLog
}

// TodayFocus returns the steps eligible today (weekly day restrictions
// applied) with today's log attached.
func (s *Store) TodayFocus(c progress.Clock) ([]FocusItem, error) {
	steps, err := s.ListActions("")
	if err != nil {
		return nil, fmt.Errorf("listing action steps: %w", err)
	}

	today := progress.Today(c)
	var items []FocusItem
	for _, step := range steps {
		if !step.EligibleOn(today) {
			continue
		}
		log, err := s.LogFor(step.ID, today)
		if err != nil {
			return nil, fmt.Errorf("loading today's log for %s: %w", step.ID, err)
		}
		items = append(items, FocusItem{Step: step, TodayLog: log})
	}
	return items, nil
}
