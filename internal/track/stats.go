package track

import (
	"fmt"

	"github.com/alignhq/align/internal/progress"
)

// UserStats is the overall activity summary feeding milestones and the
// dashboard.
type UserStats struct {
	TotalLogs    int // completed logs across all steps, all time
	Streak       int // consecutive days with any completion, 14-day lookback
	TotalReviews int
}

// Stats computes the overall user statistics from the current snapshot.
func (s *Store) Stats(c progress.Clock) (*UserStats, error) {
	stats := &UserStats{}

	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM daily_logs WHERE is_complete = 1 OR numeric_value > 0`,
	).Scan(&stats.TotalLogs); err != nil {
		return nil, fmt.Errorf("counting logs: %w", err)
	}

	dates, err := s.DoneDates()
	if err != nil {
		return nil, fmt.Errorf("loading done dates: %w", err)
	}
	stats.Streak = progress.DoneDateStreak(dates, c)

	stats.TotalReviews, err = s.CountReviews()
	if err != nil {
		return nil, fmt.Errorf("counting reviews: %w", err)
	}

	return stats, nil
}
