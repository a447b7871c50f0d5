package theme

import (
	"context"

	"stride/internal/adapters/storage"
	domain "stride/internal/domain/theme"
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

// Save inserts or updates a theme, keyed by code.
// PRE: t is a valid Theme (Validate() returns nil)
// POST: theme is persisted
func (s *SQLiteStore) Save(ctx context.Context, t domain.Theme) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO theme (id, code, label, color) VALUES (?, ?, ?, ?)
		 ON CONFLICT(code) DO UPDATE SET label=excluded.label, color=excluded.color`,
		t.ID, t.Code, t.Label, t.Color,
	)
	return err
}

// GetByCode retrieves a theme by its stable code.
// PRE: code is non-empty
// POST: returns the theme or error if not found
func (s *SQLiteStore) GetByCode(ctx context.Context, code string) (domain.Theme, error) {
	var t domain.Theme
	err := s.db.QueryRowContext(ctx,
		`SELECT id, code, label, color FROM theme WHERE code = ?`, code,
	).Scan(&t.ID, &t.Code, &t.Label, &t.Color)
	return t, err
}

// List returns the full theme catalog.
// POST: returns themes sorted by label ascending
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Theme, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, code, label, color FROM theme ORDER BY label ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var themes []domain.Theme
	for rows.Next() {
		var t domain.Theme
		if err := rows.Scan(&t.ID, &t.Code, &t.Label, &t.Color); err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}
	return themes, rows.Err()
}

// Delete removes a theme by ID.
// PRE: id is non-empty
// POST: theme is removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM theme WHERE id = ?`, id)
	return err
}
