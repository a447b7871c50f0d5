package competition

import (
	"context"

	domain "stride/internal/domain/competition"
	"stride/internal/domain/event"
)

// Store persists Competition state.
// ListRawByDateRange returns rows with dates still as stored strings; they
// feed the event normalizer, which owns date validation.
type Store interface {
	Save(ctx context.Context, c domain.Competition) error
	GetByID(ctx context.Context, id string) (domain.Competition, error)
	ListByProgram(ctx context.Context, programID string) ([]domain.Competition, error)
	ListRawByDateRange(ctx context.Context, from, to string, programIDs []string) ([]event.RawCompetition, error)
	Delete(ctx context.Context, id string) error
}
