package track

import (
	"database/sql"
	"fmt"
	"time"
)

// JournalEntry is one calendar day's journal: a free-form diary and a
// gratitude note. One row per date; writes overwrite fields.
type JournalEntry struct {
	Date      string // YYYY-MM-DD
	Diary     string
	Gratitude string
	UpdatedAt time.Time
}

// SetDiary upserts the diary text for a date, preserving the gratitude field.
func (s *Store) SetDiary(date, text string) error {
	_, err := s.db.Exec(
		`INSERT INTO journal_entries (entry_date, diary) VALUES (?, ?)
		 ON CONFLICT(entry_date) DO UPDATE SET
		   diary = excluded.diary,
		   updated_at = CURRENT_TIMESTAMP`,
		date, text,
	)
	if err != nil {
		return fmt.Errorf("saving diary: %w", err)
	}
	return nil
}

// SetGratitude upserts the gratitude text for a date, preserving the diary.
func (s *Store) SetGratitude(date, text string) error {
	_, err := s.db.Exec(
		`INSERT INTO journal_entries (entry_date, gratitude) VALUES (?, ?)
		 ON CONFLICT(entry_date) DO UPDATE SET
		   gratitude = excluded.gratitude,
		   updated_at = CURRENT_TIMESTAMP`,
		date, text,
	)
	if err != nil {
		return fmt.Errorf("saving gratitude: %w", err)
	}
	return nil
}

// GetJournal returns the entry for a date, or nil when none exists.
func (s *Store) GetJournal(date string) (*JournalEntry, error) {
	row := s.db.QueryRow(
		`SELECT entry_date, diary, gratitude, updated_at
		 FROM journal_entries WHERE entry_date = ?`, date,
	)

	var e JournalEntry
	var updatedStr string
	if err := row.Scan(&e.Date, &e.Diary, &e.Gratitude, &updatedStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	e.UpdatedAt, _ = time.Parse("2006-01-02 15:04:05", updatedStr)
	return &e, nil
}

// RecentJournal returns up to n entries, newest first.
func (s *Store) RecentJournal(n int) ([]JournalEntry, error) {
	rows, err := s.db.Query(
		`SELECT entry_date, diary, gratitude, updated_at
		 FROM journal_entries ORDER BY entry_date DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var updatedStr string
		if err := rows.Scan(&e.Date, &e.Diary, &e.Gratitude, &updatedStr); err != nil {
			return nil, err
		}
		e.UpdatedAt, _ = time.Parse("2006-01-02 15:04:05", updatedStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AllJournal returns every entry, oldest first. Used by export.
func (s *Store) AllJournal() ([]JournalEntry, error) {
	rows, err := s.db.Query(
		`SELECT entry_date, diary, gratitude, updated_at
		 FROM journal_entries ORDER BY entry_date ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var updatedStr string
		if err := rows.Scan(&e.Date, &e.Diary, &e.Gratitude, &updatedStr); err != nil {
			return nil, err
		}
		e.UpdatedAt, _ = time.Parse("2006-01-02 15:04:05", updatedStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
