package workout

import (
	"context"
	"strings"
	"time"

	"stride/internal/adapters/storage"
	"stride/internal/domain/event"
	domain "stride/internal/domain/workout"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
// PRE: db is a valid, open database connection with the schema applied
// POST: store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save inserts or updates a workout.
// PRE: w is a valid Workout (Validate() returns nil)
// POST: workout is persisted
func (s *SQLiteStore) Save(ctx context.Context, w domain.Workout) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO workout (id, program_id, title, date, time, theme, description, details, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   program_id=excluded.program_id, title=excluded.title, date=excluded.date,
		   time=excluded.time, theme=excluded.theme, description=excluded.description,
		   details=excluded.details`,
		w.ID, w.ProgramID, w.Title, w.Date.Format("2006-01-02"), w.Time,
		w.Theme, w.Description, w.Details, w.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// GetByID retrieves a workout by ID.
// PRE: id is non-empty
// POST: returns the workout or error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Workout, error) {
	var w domain.Workout
	var dateStr, createdStr string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, program_id, title, date, time, theme, description, details, created_at
		 FROM workout WHERE id = ?`, id,
	).Scan(&w.ID, &w.ProgramID, &w.Title, &dateStr, &w.Time, &w.Theme, &w.Description, &w.Details, &createdStr)
	if err != nil {
		return w, err
	}
	w.Date = parseDate(dateStr)
	w.CreatedAt = parseTimestamp(createdStr)
	return w, nil
}

// ListByProgram returns all workouts in a program.
// PRE: programID is non-empty
// POST: returns workouts sorted by date then time ascending
func (s *SQLiteStore) ListByProgram(ctx context.Context, programID string) ([]domain.Workout, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, program_id, title, date, time, theme, description, details, created_at
		 FROM workout WHERE program_id = ? ORDER BY date ASC, time ASC`, programID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []domain.Workout
	for rows.Next() {
		var w domain.Workout
		var dateStr, createdStr string
		if err := rows.Scan(&w.ID, &w.ProgramID, &w.Title, &dateStr, &w.Time, &w.Theme, &w.Description, &w.Details, &createdStr); err != nil {
			return nil, err
		}
		w.Date = parseDate(dateStr)
		w.CreatedAt = parseTimestamp(createdStr)
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// ListRawByDateRange returns raw workout rows within [from, to] belonging to
// the given programs. Dates stay as stored strings; the event normalizer owns
// validation and drops malformed rows.
// PRE: from and to are YYYY-MM-DD strings
// POST: returns raw rows, empty when programIDs is empty
func (s *SQLiteStore) ListRawByDateRange(ctx context.Context, from, to string, programIDs []string) ([]event.RawWorkout, error) {
	if len(programIDs) == 0 {
		return nil, nil
	}
	query := `SELECT id, title, date, time, theme, description, details
		 FROM workout WHERE date >= ? AND date <= ?
		 AND program_id IN (` + placeholders(len(programIDs)) + `)`
	args := make([]any, 0, len(programIDs)+2)
	args = append(args, from, to)
	for _, id := range programIDs {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var raws []event.RawWorkout
	for rows.Next() {
		var r event.RawWorkout
		if err := rows.Scan(&r.ID, &r.Title, &r.Date, &r.Time, &r.Theme, &r.Description, &r.Details); err != nil {
			return nil, err
		}
		raws = append(raws, r)
	}
	return raws, rows.Err()
}

// Delete removes a workout and its feedback.
// PRE: id is non-empty
// POST: workout and feedback rows are removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM feedback WHERE workout_id = ?`, id); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM workout WHERE id = ?`, id)
	return err
}

// placeholders returns n comma-separated SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
