// Package tips provides discovery tips surfaced on the align dashboard.
package tips

import "time"

// all is the full tip pool covering the major align features.
var all = []string{
	"`align goal add \"Become a runner\"` to name an identity you're building.",
	"`align action add --goal <id> \"Run 5km\"` to turn a goal into a daily commitment.",
	"`align action add --type numeric --target 20 \"Read pages\"` to track a number against a target.",
	"`align action add --period weekly --days mon,wed,fri` to schedule specific weekdays.",
	"`align done <id>` to check off an action for today.",
	"`align done <id> 5.5` to log a value against a numeric step.",
	"`align done <id> --date 2026-03-01` to backfill a day you forgot to log.",
	"`align done <id> --undo` to clear a log you entered by mistake.",
	"`align progress` to see history strips, targets, and streaks for every step.",
	"`align progress --days 14` to widen the history window for one look.",
	"`align review` every Sunday to score your week and note wins.",
	"`align review show` to reread your latest weekly review.",
	"`align journal \"...\"` to capture the day in a sentence or two.",
	"`align journal gratitude \"...\"` to note one thing you're grateful for.",
	"`align journal export backup.age` to back up your journal, encrypted.",
	"`align coach` to get an AI read on the gap between goals and behavior.",
	"`align coach --raw` to pipe the coach's markdown somewhere else.",
	"`align stats` to see lifetime totals and which milestones you've unlocked.",
	"`align goal archive <id>` to retire a goal without losing its history.",
	"`align action end <id> <date>` to close a step's measurement window cleanly.",
	"`align config set track.history_days 14` to make the wider strip permanent.",
	"`align config set coach.include_journal false` to keep journal text out of coach prompts.",
	"`align config set-key claude` to switch the coach to a different provider.",
	"`align journal list -n 30` to skim the last month of entries.",
}

// All returns all tips in the pool.
func All() []string {
	return all
}

// Daily returns a deterministic tip for the given day.
// The same tip is returned all day; it changes each day.
func Daily(t time.Time) string {
	dayOfYear := t.YearDay()
	return all[dayOfYear%len(all)]
}

// Random returns a tip based on the current time's minute,
// useful when you want variety within a day.
func Random(t time.Time) string {
	return all[t.Minute()%len(all)]
}
