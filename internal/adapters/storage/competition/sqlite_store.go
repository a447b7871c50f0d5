package competition

import (
	"context"
	"strings"
	"time"

	"stride/internal/adapters/storage"
	domain "stride/internal/domain/competition"
	"stride/internal/domain/event"
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

// Save inserts or updates a competition.
// PRE: c is a valid Competition (Validate() returns nil)
// POST: competition is persisted
func (s *SQLiteStore) Save(ctx context.Context, c domain.Competition) error {
	isMain := 0
	if c.IsMain {
		isMain = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO competition (id, program_id, name, date, time, location, distance_meters, level, is_main, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   program_id=excluded.program_id, name=excluded.name, date=excluded.date,
		   time=excluded.time, location=excluded.location, distance_meters=excluded.distance_meters,
		   level=excluded.level, is_main=excluded.is_main`,
		c.ID, c.ProgramID, c.Name, c.Date.Format("2006-01-02"), c.Time,
		c.Location, c.DistanceMeters, c.Level, isMain, c.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// GetByID retrieves a competition by ID.
// PRE: id is non-empty
// POST: returns the competition or error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Competition, error) {
	var c domain.Competition
	var dateStr, createdStr string
	var isMain int
	err := s.db.QueryRowContext(ctx,
		`SELECT id, program_id, name, date, time, location, distance_meters, level, is_main, created_at
		 FROM competition WHERE id = ?`, id,
	).Scan(&c.ID, &c.ProgramID, &c.Name, &dateStr, &c.Time, &c.Location, &c.DistanceMeters, &c.Level, &isMain, &createdStr)
	if err != nil {
		return c, err
	}
	c.Date = parseDate(dateStr)
	c.IsMain = isMain != 0
	c.CreatedAt = parseTimestamp(createdStr)
	return c, nil
}

// ListByProgram returns all competitions in a program.
// PRE: programID is non-empty
// POST: returns competitions sorted by date ascending
func (s *SQLiteStore) ListByProgram(ctx context.Context, programID string) ([]domain.Competition, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, program_id, name, date, time, location, distance_meters, level, is_main, created_at
		 FROM competition WHERE program_id = ? ORDER BY date ASC`, programID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var competitions []domain.Competition
	for rows.Next() {
		var c domain.Competition
		var dateStr, createdStr string
		var isMain int
		if err := rows.Scan(&c.ID, &c.ProgramID, &c.Name, &dateStr, &c.Time, &c.Location, &c.DistanceMeters, &c.Level, &isMain, &createdStr); err != nil {
			return nil, err
		}
		c.Date = parseDate(dateStr)
		c.IsMain = isMain != 0
		c.CreatedAt = parseTimestamp(createdStr)
		competitions = append(competitions, c)
	}
	return competitions, rows.Err()
}

// ListRawByDateRange returns raw competition rows within [from, to] belonging
// to the given programs. Dates stay as stored strings; the event normalizer
// owns validation and drops malformed rows.
// PRE: from and to are YYYY-MM-DD strings
// POST: returns raw rows, empty when programIDs is empty
func (s *SQLiteStore) ListRawByDateRange(ctx context.Context, from, to string, programIDs []string) ([]event.RawCompetition, error) {
	if len(programIDs) == 0 {
		return nil, nil
	}
	query := `SELECT id, name, date, time, location, distance_meters, level, is_main
		 FROM competition WHERE date >= ? AND date <= ?
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

	var raws []event.RawCompetition
	for rows.Next() {
		var r event.RawCompetition
		var isMain int
		if err := rows.Scan(&r.ID, &r.Name, &r.Date, &r.Time, &r.Location, &r.DistanceMeters, &r.Level, &isMain); err != nil {
			return nil, err
		}
		r.IsMain = isMain != 0
		raws = append(raws, r)
	}
	return raws, rows.Err()
}

// Delete removes a competition by ID.
// PRE: id is non-empty
// POST: competition is removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM competition WHERE id = ?`, id)
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
