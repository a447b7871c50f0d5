package account

import (
	"context"
	"database/sql"
	"time"

	"stride/internal/adapters/storage"
	domain "stride/internal/domain/account"
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

// Save inserts or updates an account.
// PRE: a is a valid Account (Validate() returns nil)
// POST: account is persisted
func (s *SQLiteStore) Save(ctx context.Context, a domain.Account) error {
	lockedUntil := ""
	if !a.LockedUntil.IsZero() {
		lockedUntil = a.LockedUntil.Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO account (id, email, password_hash, role, created_at, failed_logins, locked_until)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   email=excluded.email, password_hash=excluded.password_hash, role=excluded.role,
		   failed_logins=excluded.failed_logins, locked_until=excluded.locked_until`,
		a.ID, a.Email, a.PasswordHash, a.Role,
		a.CreatedAt.Format(time.RFC3339), a.FailedLogins, lockedUntil,
	)
	return err
}

// GetByID retrieves an account by ID.
// PRE: id is non-empty
// POST: returns the account or error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Account, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, role, created_at, failed_logins, locked_until
		 FROM account WHERE id = ?`, id))
}

// GetByEmail retrieves an account by email.
// PRE: email is non-empty
// POST: returns the account or error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, role, created_at, failed_logins, locked_until
		 FROM account WHERE email = ?`, email))
}

// Count returns the number of accounts.
// POST: returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM account`).Scan(&n)
	return n, err
}

// Delete removes an account by ID.
// PRE: id is non-empty
// POST: account is removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM account WHERE id = ?`, id)
	return err
}

func (s *SQLiteStore) scanOne(row *sql.Row) (domain.Account, error) {
	var a domain.Account
	var createdStr string
	var lockedStr sql.NullString
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &createdStr, &a.FailedLogins, &lockedStr)
	if err != nil {
		return a, err
	}
	a.CreatedAt = parseTimestamp(createdStr)
	if lockedStr.Valid {
		a.LockedUntil = parseTimestamp(lockedStr.String)
	}
	return a, nil
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
