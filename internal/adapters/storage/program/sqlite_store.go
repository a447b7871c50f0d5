package program

import (
	"context"
	"time"

	"stride/internal/adapters/storage"
	domain "stride/internal/domain/program"
)

// SQLiteStore implements Store and ShareStore using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
// PRE: db is a valid, open database connection with the schema applied
// POST: store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save inserts or updates a program.
// PRE: p is a valid Program (Validate() returns nil)
// POST: program is persisted
func (s *SQLiteStore) Save(ctx context.Context, p domain.Program) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO program (id, name, description, weeks, start_date, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, description=excluded.description,
		   weeks=excluded.weeks, start_date=excluded.start_date`,
		p.ID, p.Name, p.Description, p.Weeks,
		p.StartDate.Format("2006-01-02"), p.CreatedBy, p.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// GetByID retrieves a program by ID.
// PRE: id is non-empty
// POST: returns the program or error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Program, error) {
	var p domain.Program
	var startStr, createdStr string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, weeks, start_date, created_by, created_at
		 FROM program WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Weeks, &startStr, &p.CreatedBy, &createdStr)
	if err != nil {
		return p, err
	}
	p.StartDate = parseDate(startStr)
	p.CreatedAt = parseTimestamp(createdStr)
	return p, nil
}

// ListAll returns every program, for admin views.
// PRE: none
// POST: returns programs sorted by start_date descending
func (s *SQLiteStore) ListAll(ctx context.Context) ([]domain.Program, error) {
	return s.queryPrograms(ctx,
		`SELECT id, name, description, weeks, start_date, created_by, created_at
		 FROM program ORDER BY start_date DESC`)
}

// ListByCreator returns programs created by the given account.
// PRE: accountID is non-empty
// POST: returns programs sorted by start_date descending
func (s *SQLiteStore) ListByCreator(ctx context.Context, accountID string) ([]domain.Program, error) {
	return s.queryPrograms(ctx,
		`SELECT id, name, description, weeks, start_date, created_by, created_at
		 FROM program WHERE created_by = ? ORDER BY start_date DESC`, accountID)
}

func (s *SQLiteStore) queryPrograms(ctx context.Context, query string, args ...any) ([]domain.Program, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []domain.Program
	for rows.Next() {
		var p domain.Program
		var startStr, createdStr string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Weeks, &startStr, &p.CreatedBy, &createdStr); err != nil {
			return nil, err
		}
		p.StartDate = parseDate(startStr)
		p.CreatedAt = parseTimestamp(createdStr)
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// Delete removes a program and its share grants.
// PRE: id is non-empty
// POST: program and grants are removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM program_share WHERE program_id = ?`, id); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM program WHERE id = ?`, id)
	return err
}

// SaveShare inserts a share grant; saving an existing pair is a no-op.
// PRE: sh is a valid Share (Validate() returns nil)
// POST: grant is persisted
func (s *SQLiteStore) SaveShare(ctx context.Context, sh domain.Share) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO program_share (id, program_id, athlete_id, granted_by, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(program_id, athlete_id) DO NOTHING`,
		sh.ID, sh.ProgramID, sh.AthleteID, sh.GrantedBy, sh.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// DeleteShare revokes a grant.
// PRE: programID and athleteID are non-empty
// POST: grant is removed from storage
func (s *SQLiteStore) DeleteShare(ctx context.Context, programID, athleteID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM program_share WHERE program_id = ? AND athlete_id = ?`, programID, athleteID)
	return err
}

// HasShare reports whether the athlete has access to the program.
// PRE: programID and athleteID are non-empty
// POST: returns true if a grant exists
func (s *SQLiteStore) HasShare(ctx context.Context, programID, athleteID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM program_share WHERE program_id = ? AND athlete_id = ?`,
		programID, athleteID,
	).Scan(&n)
	return n > 0, err
}

// ListSharesByProgram returns all grants for a program.
// PRE: programID is non-empty
// POST: returns grants sorted by creation time ascending
func (s *SQLiteStore) ListSharesByProgram(ctx context.Context, programID string) ([]domain.Share, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, program_id, athlete_id, granted_by, created_at
		 FROM program_share WHERE program_id = ? ORDER BY created_at ASC`, programID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shares []domain.Share
	for rows.Next() {
		var sh domain.Share
		var createdStr string
		if err := rows.Scan(&sh.ID, &sh.ProgramID, &sh.AthleteID, &sh.GrantedBy, &createdStr); err != nil {
			return nil, err
		}
		sh.CreatedAt = parseTimestamp(createdStr)
		shares = append(shares, sh)
	}
	return shares, rows.Err()
}

// ListProgramIDsByAthlete returns ids of programs shared with the athlete.
// PRE: athleteID is non-empty
// POST: returns program ids, possibly empty
func (s *SQLiteStore) ListProgramIDsByAthlete(ctx context.Context, athleteID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT program_id FROM program_share WHERE athlete_id = ?`, athleteID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
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
