package track

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alignhq/align/internal/progress"
	"github.com/google/uuid"
)

// Store handles goal-tracking persistence.
type Store struct {
	db *sql.DB
}

// NewStore creates a new track store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// AddGoal creates a new identity goal and returns its ID.
func (s *Store) AddGoal(title, category, color string, typ progress.StepType, targetValue float64) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO goals (id, title, category, color, type, target_value) VALUES (?, ?, ?, ?, ?, ?)`,
		id, title, category, color, string(typ), nullableFloat(targetValue),
	)
	if err != nil {
		return "", fmt.Errorf("adding goal: %w", err)
	}
	return id, nil
}

// GetGoal returns a single goal by ID or ID prefix.
func (s *Store) GetGoal(id string) (*Goal, error) {
	rows, err := s.db.Query(
		`SELECT id, title, category, color, type, target_value, archived, created_at
		 FROM goals WHERE id = ? OR id LIKE ?`, id, id+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("getting goal %s: %w", id, err)
	}
	defer rows.Close()

	goals, err := scanGoals(rows)
	if err != nil {
		return nil, fmt.Errorf("getting goal %s: %w", id, err)
	}
	switch len(goals) {
	case 0:
		return nil, fmt.Errorf("goal %s not found", id)
	case 1:
		return &goals[0], nil
	default:
		return nil, fmt.Errorf("goal prefix %s is ambiguous (%d matches)", id, len(goals))
	}
}

// ListGoals returns goals, oldest first. Archived goals are included only
// when includeArchived is set.
func (s *Store) ListGoals(includeArchived bool) ([]Goal, error) {
	query := `SELECT id, title, category, color, type, target_value, archived, created_at
	          FROM goals`
	if !includeArchived {
		query += ` WHERE archived = 0`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGoals(rows)
}

// ArchiveGoal hides a goal from active lists without deleting its history.
func (s *Store) ArchiveGoal(id string) error {
	g, err := s.GetGoal(id)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(`UPDATE goals SET archived = 1 WHERE id = ?`, g.ID); err != nil {
		return fmt.Errorf("archiving goal: %w", err)
	}
	return nil
}

// DeleteGoal removes a goal and, via cascade, its action steps and logs.
func (s *Store) DeleteGoal(id string) error {
	g, err := s.GetGoal(id)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM goals WHERE id = ?`, g.ID); err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return nil
}

// AddAction creates an action step under a goal. createdAt is the local
// YYYY-MM-DD date starting its measurement window.
func (s *Store) AddAction(step ActionStep) (string, error) {
	if _, err := s.GetGoal(step.GoalID); err != nil {
		return "", err
	}

	id := uuid.NewString()
	if step.CreatedAt == "" {
		step.CreatedAt = progress.Today(progress.SystemClock{})
	}
	_, err := s.db.Exec(
		`INSERT INTO action_steps (id, goal_id, title, type, period, target_value, days, created_at, end_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, step.GoalID, step.Title, string(step.Type), string(step.Period),
		nullableFloat(step.TargetValue), joinDays(step.Days), step.CreatedAt, nullableStr(step.EndDate),
	)
	if err != nil {
		return "", fmt.Errorf("adding action step: %w", err)
	}
	return id, nil
}

const actionColumns = `a.id, a.goal_id, g.title, a.title, a.type, a.period,
	a.target_value, a.days, a.created_at, a.end_date`

// GetAction returns a single action step by ID or ID prefix.
func (s *Store) GetAction(id string) (*ActionStep, error) {
	rows, err := s.db.Query(
		`SELECT `+actionColumns+`
		 FROM action_steps a JOIN goals g ON g.id = a.goal_id
		 WHERE a.id = ? OR a.id LIKE ?`, id, id+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("getting action %s: %w", id, err)
	}
	defer rows.Close()

	steps, err := scanActions(rows)
	if err != nil {
		return nil, fmt.Errorf("getting action %s: %w", id, err)
	}
	switch len(steps) {
	case 0:
		return nil, fmt.Errorf("action %s not found", id)
	case 1:
		return &steps[0], nil
	default:
		return nil, fmt.Errorf("action prefix %s is ambiguous (%d matches)", id, len(steps))
	}
}

// ListActions returns action steps joined with their goal titles, oldest
// first. goalID filters to one goal when non-empty.
func (s *Store) ListActions(goalID string) ([]ActionStep, error) {
	query := `SELECT ` + actionColumns + `
	          FROM action_steps a JOIN goals g ON g.id = a.goal_id`
	var args []any
	if goalID != "" {
		query += ` WHERE a.goal_id = ?`
		args = append(args, goalID)
	}
	query += ` ORDER BY a.created_at ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActions(rows)
}

// SetEndDate closes (or reopens, with an empty date) a step's measurement
// window.
func (s *Store) SetEndDate(id, endDate string) error {
	step, err := s.GetAction(id)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(
		`UPDATE action_steps SET end_date = ? WHERE id = ?`,
		nullableStr(endDate), step.ID,
	); err != nil {
		return fmt.Errorf("setting end date: %w", err)
	}
	return nil
}

// UpdateAction rewrites a step's mutable schedule/target fields. Identity
// (ID, goal, creation date) is immutable.
func (s *Store) UpdateAction(step ActionStep) error {
	res, err := s.db.Exec(
		`UPDATE action_steps SET title = ?, type = ?, period = ?, target_value = ?, days = ?, end_date = ?
		 WHERE id = ?`,
		step.Title, string(step.Type), string(step.Period),
		nullableFloat(step.TargetValue), joinDays(step.Days), nullableStr(step.EndDate), step.ID,
	)
	if err != nil {
		return fmt.Errorf("updating action step: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("action %s not found", step.ID)
	}
	return nil
}

// DeleteAction removes a step and its logs.
func (s *Store) DeleteAction(id string) error {
	step, err := s.GetAction(id)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM action_steps WHERE id = ?`, step.ID); err != nil {
		return fmt.Errorf("deleting action step: %w", err)
	}
	return nil
}

// UpsertLog records activity for a step on a date. The (step, date) pair is
// the natural key; a second write for the same day overwrites the first.
func (s *Store) UpsertLog(actionID, date string, isComplete bool, numericValue float64) error {
	complete := 0
	if isComplete {
		complete = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO daily_logs (action_step_id, log_date, is_complete, numeric_value)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(action_step_id, log_date) DO UPDATE SET
		   is_complete = excluded.is_complete,
		   numeric_value = excluded.numeric_value`,
		actionID, date, complete, numericValue,
	)
	if err != nil {
		return fmt.Errorf("recording log: %w", err)
	}
	return nil
}

// ClearLog removes the log for a step on a date (un-marking a boolean step).
// Clearing an absent log is not an error.
func (s *Store) ClearLog(actionID, date string) error {
	if _, err := s.db.Exec(
		`DELETE FROM daily_logs WHERE action_step_id = ? AND log_date = ?`,
		actionID, date,
	); err != nil {
		return fmt.Errorf("clearing log: %w", err)
	}
	return nil
}

// LogFor returns the log for a step on a date, or nil when none exists.
func (s *Store) LogFor(actionID, date string) (*DailyLog, error) {
	row := s.db.QueryRow(
		`SELECT id, action_step_id, log_date, is_complete, numeric_value
		 FROM daily_logs WHERE action_step_id = ? AND log_date = ?`,
		actionID, date,
	)

	var l DailyLog
	var completeInt int
	if err := row.Scan(&l.ID, &l.ActionStepID, &l.Date, &completeInt, &l.NumericValue); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	l.IsComplete = completeInt == 1
	return &l, nil
}

// LogsFor returns all logs for one step as progress records, oldest first.
func (s *Store) LogsFor(actionID string) ([]progress.Log, error) {
	rows, err := s.db.Query(
		`SELECT log_date, is_complete, numeric_value
		 FROM daily_logs WHERE action_step_id = ? ORDER BY log_date ASC`,
		actionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []progress.Log
	for rows.Next() {
		var l progress.Log
		var completeInt int
		if err := rows.Scan(&l.Date, &completeInt, &l.NumericValue); err != nil {
			return nil, err
		}
		l.IsComplete = completeInt == 1
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// DoneDates returns the distinct dates on which anything was completed,
// across all steps. Feeds the overall-stats streak.
func (s *Store) DoneDates() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT log_date FROM daily_logs
		 WHERE is_complete = 1 OR numeric_value > 0
		 ORDER BY log_date DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// ListCategories returns all categories ordered by name.
func (s *Store) ListCategories() ([]Category, error) {
	rows, err := s.db.Query(`SELECT id, name, color FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// AddCategory upserts a category label with a display color.
func (s *Store) AddCategory(name, color string) error {
	_, err := s.db.Exec(
		`INSERT INTO categories (name, color) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET color = excluded.color`,
		name, color,
	)
	if err != nil {
		return fmt.Errorf("adding category: %w", err)
	}
	return nil
}

// scanGoals scans sql.Rows into a slice of Goal.
func scanGoals(rows *sql.Rows) ([]Goal, error) {
	var goals []Goal
	for rows.Next() {
		var g Goal
		var typ string
		var target sql.NullFloat64
		var archivedInt int
		var createdStr string

		if err := rows.Scan(&g.ID, &g.Title, &g.Category, &g.Color, &typ, &target, &archivedInt, &createdStr); err != nil {
			return nil, err
		}
		g.Type = progress.StepType(typ)
		if target.Valid {
			g.TargetValue = target.Float64
		}
		g.Archived = archivedInt == 1
		g.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdStr)
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// scanActions scans sql.Rows into a slice of ActionStep.
func scanActions(rows *sql.Rows) ([]ActionStep, error) {
	var steps []ActionStep
	for rows.Next() {
		var a ActionStep
		var typ, period, days string
		var target sql.NullFloat64
		var endDate sql.NullString

		if err := rows.Scan(&a.ID, &a.GoalID, &a.GoalTitle, &a.Title, &typ, &period,
			&target, &days, &a.CreatedAt, &endDate); err != nil {
			return nil, err
		}
		a.Type = progress.StepType(typ)
		a.Period = progress.Period(period)
		if target.Valid {
			a.TargetValue = target.Float64
		}
		a.Days = splitDays(days)
		if endDate.Valid {
			a.EndDate = endDate.String
		}
		steps = append(steps, a)
	}
	return steps, rows.Err()
}

// nullableFloat maps 0 to NULL so "no target" never reads back as a zero
// threshold.
func nullableFloat(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}

func nullableStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
