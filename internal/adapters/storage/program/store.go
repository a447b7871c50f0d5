package program

import (
	"context"

	domain "stride/internal/domain/program"
)

// Store persists Program state.
type Store interface {
	Save(ctx context.Context, p domain.Program) error
	GetByID(ctx context.Context, id string) (domain.Program, error)
	ListAll(ctx context.Context) ([]domain.Program, error)
	ListByCreator(ctx context.Context, accountID string) ([]domain.Program, error)
	Delete(ctx context.Context, id string) error
}

// ShareStore persists program share grants.
type ShareStore interface {
	SaveShare(ctx context.Context, sh domain.Share) error
	DeleteShare(ctx context.Context, programID, athleteID string) error
	HasShare(ctx context.Context, programID, athleteID string) (bool, error)
	ListSharesByProgram(ctx context.Context, programID string) ([]domain.Share, error)
	ListProgramIDsByAthlete(ctx context.Context, athleteID string) ([]string, error)
}

// StoreWithShares combines program persistence with share grants.
// SQLiteStore implements both over the same tables.
type StoreWithShares interface {
	Store
	ShareStore
}
