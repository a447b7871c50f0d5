package athlete

import (
	"context"

	"stride/internal/adapters/storage"
	domain "stride/internal/domain/athlete"
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

// Save inserts or updates an athlete.
// PRE: a is a valid Athlete (Validate() returns nil)
// POST: athlete is persisted
func (s *SQLiteStore) Save(ctx context.Context, a domain.Athlete) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO athlete (id, account_id, coach_id, name, email, level)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   account_id=excluded.account_id, coach_id=excluded.coach_id,
		   name=excluded.name, email=excluded.email, level=excluded.level`,
		a.ID, a.AccountID, a.CoachID, a.Name, a.Email, a.Level,
	)
	return err
}

// GetByID retrieves an athlete by ID.
// PRE: id is non-empty
// POST: returns the athlete or error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Athlete, error) {
	var a domain.Athlete
	err := s.db.QueryRowContext(ctx,
		`SELECT id, account_id, coach_id, name, email, level FROM athlete WHERE id = ?`, id,
	).Scan(&a.ID, &a.AccountID, &a.CoachID, &a.Name, &a.Email, &a.Level)
	return a, err
}

// GetByAccountID retrieves the athlete linked to a login account.
// PRE: accountID is non-empty
// POST: returns the athlete or error if not found
func (s *SQLiteStore) GetByAccountID(ctx context.Context, accountID string) (domain.Athlete, error) {
	var a domain.Athlete
	err := s.db.QueryRowContext(ctx,
		`SELECT id, account_id, coach_id, name, email, level FROM athlete WHERE account_id = ?`, accountID,
	).Scan(&a.ID, &a.AccountID, &a.CoachID, &a.Name, &a.Email, &a.Level)
	return a, err
}

// ListByCoach returns all athletes managed by a coach, sorted by name.
// PRE: coachID is non-empty
// POST: returns athletes sorted by name ascending
func (s *SQLiteStore) ListByCoach(ctx context.Context, coachID string) ([]domain.Athlete, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, coach_id, name, email, level FROM athlete
		 WHERE coach_id = ? ORDER BY name ASC`, coachID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var athletes []domain.Athlete
	for rows.Next() {
		var a domain.Athlete
		if err := rows.Scan(&a.ID, &a.AccountID, &a.CoachID, &a.Name, &a.Email, &a.Level); err != nil {
			return nil, err
		}
		athletes = append(athletes, a)
	}
	return athletes, rows.Err()
}

// Delete removes an athlete by ID.
// PRE: id is non-empty
// POST: athlete is removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM athlete WHERE id = ?`, id)
	return err
}
