// Package milestone defines the achievement badges unlocked by overall
// activity stats.
package milestone

import "github.com/alignhq/align/internal/track"

// Badge is one achievement with its unlock condition.
type Badge struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Condition   func(track.UserStats) bool
}

// Badges is the full badge set, in display order.
var Badges = []Badge{
	{
		ID:          "rookie",
		Title:       "First Step",
		Description: "Complete your first action step.",
		Icon:        "✅",
		Condition:   func(s track.UserStats) bool { return s.TotalLogs >= 1 },
	},
	{
		ID:          "streak_3",
		Title:       "Momentum",
		Description: "Reach a 3-day streak.",
		Icon:        "⚡",
		Condition:   func(s track.UserStats) bool { return s.Streak >= 3 },
	},
	{
		ID:          "streak_7",
		Title:       "On Fire",
		Description: "Reach a 7-day streak.",
		Icon:        "🔥",
		Condition:   func(s track.UserStats) bool { return s.Streak >= 7 },
	},
	{
		ID:          "club_10",
		Title:       "Double Digits",
		Description: "Complete 10 total actions.",
		Icon:        "🎖️",
		Condition:   func(s track.UserStats) bool { return s.TotalLogs >= 10 },
	},
	{
		ID:          "club_100",
		Title:       "Centurion",
		Description: "Complete 100 total actions.",
		Icon:        "🏆",
		Condition:   func(s track.UserStats) bool { return s.TotalLogs >= 100 },
	},
	{
		ID:          "reflector",
		Title:       "Self Aware",
		Description: "Complete your first weekly review.",
		Icon:        "📖",
		Condition:   func(s track.UserStats) bool { return s.TotalReviews >= 1 },
	},
}

// Unlocked returns the badges earned for the given stats, in display order.
func Unlocked(stats track.UserStats) []Badge {
	var earned []Badge
	for _, b := range Badges {
		if b.Condition(stats) {
			earned = append(earned, b)
		}
	}
	return earned
}
