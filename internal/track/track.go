// Package track holds the goal-tracking domain: identity goals, their
// recurring action steps, daily completion logs, journal entries, and weekly
// reviews, persisted in SQLite. Derived statistics are computed by the
// progress package from snapshots fetched here.
package track

import (
	"fmt"
	"strings"
	"time"

	"github.com/alignhq/align/internal/progress"
)

// Goal groups action steps under a named identity.
type Goal struct {
	ID          string
	Title       string
	Category    string
	Color       string
	Type        progress.StepType
	TargetValue float64 // 0 = unset; meaningful for numeric goals
	Archived    bool
	CreatedAt   time.Time
}

// ActionStep is one recurring trackable commitment under a goal.
type ActionStep struct {
	ID          string
	GoalID      string
	GoalTitle   string // populated by list queries for display
	Title       string
	Type        progress.StepType
	Period      progress.Period
	TargetValue float64
	Days        []string // weekday names restricting weekly steps; empty = every day
	CreatedAt   string   // YYYY-MM-DD, start of the measurement window
	EndDate     string   // YYYY-MM-DD; empty = open-ended
}

// DailyLog is one day's recorded activity for an action step. At most one
// exists per (action step, date); writes overwrite.
type DailyLog struct {
	ID           int
	ActionStepID string
	Date         string // YYYY-MM-DD local calendar day
	IsComplete   bool
	NumericValue float64
}

// Category is a named label with a display color.
type Category struct {
	ID    int
	Name  string
	Color string
}

// weekdayNames is the accepted day-restriction vocabulary, matching
// progress.WeekdayName output.
var weekdayNames = map[string]bool{
	"Sun": true, "Mon": true, "Tue": true, "Wed": true,
	"Thu": true, "Fri": true, "Sat": true,
}

// ParseStepType validates a tracking type string.
func ParseStepType(s string) (progress.StepType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "boolean", "bool", "checkbox":
		return progress.TypeBoolean, nil
	case "numeric", "number", "count":
		return progress.TypeNumeric, nil
	default:
		return "", fmt.Errorf("invalid type %q (use boolean or numeric)", s)
	}
}

// ParsePeriod validates a recurrence period string.
func ParsePeriod(s string) (progress.Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "daily", "day":
		return progress.PeriodDaily, nil
	case "weekly", "week":
		return progress.PeriodWeekly, nil
	case "monthly", "month":
		return progress.PeriodMonthly, nil
	default:
		return "", fmt.Errorf("invalid period %q (use daily, weekly, or monthly)", s)
	}
}

// ParseDays normalizes a comma-separated weekday list ("mon,wed,fri") into
// canonical three-letter names. An empty input means no restriction.
func ParseDays(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var days []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if len(part) < 3 {
			return nil, fmt.Errorf("invalid day %q (use three-letter names like Mon,Wed,Fri)", part)
		}
		name := strings.ToUpper(part[:1]) + strings.ToLower(part[1:3])
		if !weekdayNames[name] {
			return nil, fmt.Errorf("invalid day %q (use three-letter names like Mon,Wed,Fri)", part)
		}
		if !seen[name] {
			seen[name] = true
			days = append(days, name)
		}
	}
	return days, nil
}

// EligibleOn reports whether a step is active on the given date. Daily and
// monthly steps are always eligible; weekly steps with a day restriction only
// on listed weekdays. A step past its end date is not eligible.
func (s ActionStep) EligibleOn(date string) bool {
	if s.EndDate != "" && date > s.EndDate {
		return false
	}
	if s.Period != progress.PeriodWeekly || len(s.Days) == 0 {
		return true
	}
	name := progress.WeekdayName(date)
	for _, d := range s.Days {
		if d == name {
			return true
		}
	}
	return false
}

// Mode returns the aggregation mode for this step: numeric steps accumulate
// their logged values, boolean steps count done days.
func (s ActionStep) Mode() progress.Mode {
	if s.Type == progress.TypeNumeric {
		return progress.ModeSum
	}
	return progress.ModeCount
}

// Target returns the step's recurrence as a progress.Target for
// normalization.
func (s ActionStep) Target() progress.Target {
	return progress.Target{
		Period:      s.Period,
		TargetValue: s.TargetValue,
		CreatedAt:   s.CreatedAt,
		EndDate:     s.EndDate,
	}
}

// joinDays serializes a day list for storage.
func joinDays(days []string) string {
	return strings.Join(days, ",")
}

// splitDays deserializes a stored day list.
func splitDays(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
