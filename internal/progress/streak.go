package progress

// streakLookback caps the backward scan. A streak longer than this window
// reports the cap, not the true all-time length.
const streakLookback = 14

// Streak returns the number of consecutive completed calendar days ending at
// today, scanning backward up to 14 days.
//
// A boolean step's day counts when its log is marked complete; a numeric
// step's day counts when the logged value reaches the step's per-day target
// (a missing target is treated as 1, never 0, so an empty day can't count).
// An absent log is not done.
//
// Today being incomplete does not break the streak — a user checking before
// doing today's action still sees yesterday's run. The first miss on any
// earlier day ends the scan.
func Streak(logs []Log, typ StepType, targetValue float64, c Clock) int {
	byDate := make(map[string]Log, len(logs))
	for _, l := range logs {
		byDate[l.Date] = l
	}

	threshold := targetValue
	if threshold < 1 {
		threshold = 1
	}

	streak := 0
	checkDate := Today(c)
	for i := 0; i < streakLookback; i++ {
		l, ok := byDate[checkDate]

		done := false
		if ok {
			if typ == TypeNumeric {
				done = l.NumericValue >= threshold
			} else {
				done = l.IsComplete
			}
		}

		if done {
			streak++
		} else if i > 0 {
			break
		}

		checkDate = prevDay(checkDate)
	}
	return streak
}

// DoneDateStreak is the goal-wide variant used for overall stats: it takes
// the distinct dates on which anything was completed and runs the same
// bounded backward scan with the today grace rule.
func DoneDateStreak(dates []string, c Clock) int {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}

	streak := 0
	checkDate := Today(c)
	for i := 0; i < streakLookback; i++ {
		if _, ok := set[checkDate]; ok {
			streak++
		} else if i > 0 {
			break
		}
		checkDate = prevDay(checkDate)
	}
	return streak
}
