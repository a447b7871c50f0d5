package feedback

import (
	"context"
	"database/sql"
	"time"

	"stride/internal/adapters/storage"
	domain "stride/internal/domain/feedback"
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

// Save upserts feedback, keyed on (workout, athlete). Saving a second entry
// for the same pair replaces the previous one and stamps updated_at.
// PRE: f is a valid Feedback (Validate() returns nil)
// POST: feedback is persisted
func (s *SQLiteStore) Save(ctx context.Context, f domain.Feedback) error {
	completed := 0
	if f.Completed {
		completed = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback (id, workout_id, athlete_id, rating, comment, completed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, NULL)
		 ON CONFLICT(workout_id, athlete_id) DO UPDATE SET
		   rating=excluded.rating, comment=excluded.comment, completed=excluded.completed,
		   updated_at=excluded.created_at`,
		f.ID, f.WorkoutID, f.AthleteID, f.Rating, f.Comment, completed,
		f.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// GetByWorkoutAndAthlete retrieves one athlete's feedback for a workout.
// PRE: workoutID and athleteID are non-empty
// POST: returns the feedback or error if not found
func (s *SQLiteStore) GetByWorkoutAndAthlete(ctx context.Context, workoutID, athleteID string) (domain.Feedback, error) {
	return scanOne(s.db.QueryRowContext(ctx,
		`SELECT id, workout_id, athlete_id, rating, comment, completed, created_at, updated_at
		 FROM feedback WHERE workout_id = ? AND athlete_id = ?`, workoutID, athleteID))
}

// ListByWorkout returns all feedback for a workout.
// PRE: workoutID is non-empty
// POST: returns feedback sorted by creation time ascending
func (s *SQLiteStore) ListByWorkout(ctx context.Context, workoutID string) ([]domain.Feedback, error) {
	return s.list(ctx,
		`SELECT id, workout_id, athlete_id, rating, comment, completed, created_at, updated_at
		 FROM feedback WHERE workout_id = ? ORDER BY created_at ASC`, workoutID)
}

// ListByAthlete returns all feedback left by an athlete.
// PRE: athleteID is non-empty
// POST: returns feedback sorted by creation time descending
func (s *SQLiteStore) ListByAthlete(ctx context.Context, athleteID string) ([]domain.Feedback, error) {
	return s.list(ctx,
		`SELECT id, workout_id, athlete_id, rating, comment, completed, created_at, updated_at
		 FROM feedback WHERE athlete_id = ? ORDER BY created_at DESC`, athleteID)
}

// Delete removes feedback by ID.
// PRE: id is non-empty
// POST: feedback is removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM feedback WHERE id = ?`, id)
	return err
}

func (s *SQLiteStore) list(ctx context.Context, query string, arg any) ([]domain.Feedback, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.Feedback
	for rows.Next() {
		f, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanOne(row *sql.Row) (domain.Feedback, error) {
	return scanRow(row)
}

func scanRow(row scannable) (domain.Feedback, error) {
	var f domain.Feedback
	var completed int
	var createdStr string
	var updatedStr sql.NullString
	err := row.Scan(&f.ID, &f.WorkoutID, &f.AthleteID, &f.Rating, &f.Comment, &completed, &createdStr, &updatedStr)
	if err != nil {
		return f, err
	}
	f.Completed = completed != 0
	f.CreatedAt = parseTimestamp(createdStr)
	if updatedStr.Valid {
		f.UpdatedAt = parseTimestamp(updatedStr.String)
	}
	return f, nil
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
