package track

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// WeeklyReview is one week's self-assessment: a 0-10 score per category plus
// wins and adjustments notes. Keyed by the week's Sunday; saving the same
// week twice overwrites (edit mode).
type WeeklyReview struct {
	WeekStart   string         // YYYY-MM-DD, a Sunday
	Scores      map[string]int // category name -> 0..10
	Wins        string
	Adjustments string
	UpdatedAt   time.Time
}

// UpsertReview saves a weekly review, overwriting any existing review for
// the same week start.
func (s *Store) UpsertReview(r WeeklyReview) error {
	for cat, score := range r.Scores {
		if score < 0 || score > 10 {
			return fmt.Errorf("score for %s must be between 0 and 10, got %d", cat, score)
		}
	}

	scores, err := json.Marshal(r.Scores)
	if err != nil {
		return fmt.Errorf("encoding scores: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO weekly_reviews (week_start, scores, wins, adjustments)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(week_start) DO UPDATE SET
		   scores = excluded.scores,
		   wins = excluded.wins,
		   adjustments = excluded.adjustments,
		   updated_at = CURRENT_TIMESTAMP`,
		r.WeekStart, string(scores), r.Wins, r.Adjustments,
	)
	if err != nil {
		return fmt.Errorf("saving weekly review: %w", err)
	}
	return nil
}

// GetReview returns the review for a week start, or nil when none exists.
func (s *Store) GetReview(weekStart string) (*WeeklyReview, error) {
	row := s.db.QueryRow(
		`SELECT week_start, scores, wins, adjustments, updated_at
		 FROM weekly_reviews WHERE week_start = ?`, weekStart,
	)
	return scanReview(row)
}

// LatestReview returns the most recent review, or nil when none exists.
func (s *Store) LatestReview() (*WeeklyReview, error) {
	row := s.db.QueryRow(
		`SELECT week_start, scores, wins, adjustments, updated_at
		 FROM weekly_reviews ORDER BY week_start DESC LIMIT 1`,
	)
	return scanReview(row)
}

// CountReviews returns the total number of completed reviews.
func (s *Store) CountReviews() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM weekly_reviews`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanReview(row *sql.Row) (*WeeklyReview, error) {
	var r WeeklyReview
	var scoresStr, updatedStr string
	if err := row.Scan(&r.WeekStart, &scoresStr, &r.Wins, &r.Adjustments, &updatedStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(scoresStr), &r.Scores); err != nil {
		return nil, fmt.Errorf("decoding review scores: %w", err)
	}
	r.UpdatedAt, _ = time.Parse("2006-01-02 15:04:05", updatedStr)
	return &r, nil
}
