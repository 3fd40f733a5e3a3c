package progress

import (
	"math"
	"time"
)

// StepType distinguishes yes/no steps from quantity steps.
type StepType string

const (
	TypeBoolean StepType = "boolean"
	TypeNumeric StepType = "numeric"
)

// Period is the recurrence granularity of an action step.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Target describes a step's declared recurrence for normalization.
type Target struct {
	Period      Period
	TargetValue float64
	CreatedAt   string // YYYY-MM-DD, start of the measurement window
	EndDate     string // YYYY-MM-DD; empty means open-ended
}

// NormalizeTarget converts a period-based recurrence target into one absolute
// number directly comparable against a raw completion count.
//
// Open-ended steps keep their declared per-period target. Steps with an end
// date get a lifetime target: the elapsed window expressed in the step's
// period units, times the per-period frequency. The result is always >= 1
// so percentage math never divides by zero. An end date before the creation
// date clamps the window to zero and the target falls back to its minimum.
func NormalizeTarget(t Target) float64 {
	if t.EndDate == "" {
		return math.Max(t.TargetValue, 1)
	}

	start, err := time.Parse(DateLayout, t.CreatedAt)
	if err != nil {
		return math.Max(t.TargetValue, 1)
	}
	end, err := time.Parse(DateLayout, t.EndDate)
	if err != nil {
		return math.Max(t.TargetValue, 1)
	}

	totalDays := int(math.Ceil(end.Sub(start).Hours() / 24))
	if totalDays < 0 {
		totalDays = 0
	}

	freq := math.Max(t.TargetValue, 1)

	switch t.Period {
	case PeriodDaily:
		if totalDays < 1 {
			return 1
		}
		return float64(totalDays)
	case PeriodWeekly:
		totalWeeks := math.Ceil(float64(totalDays) / 7)
		if totalWeeks < 1 {
			totalWeeks = 1
		}
		return totalWeeks * freq
	case PeriodMonthly:
		totalMonths := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
		if totalMonths < 1 {
			totalMonths = 1
		}
		return float64(totalMonths) * freq
	default:
		return freq
	}
}
