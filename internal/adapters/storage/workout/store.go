package workout

import (
	"context"

	"stride/internal/domain/event"
	domain "stride/internal/domain/workout"
)

// Store persists Workout state.
// ListRawByDateRange returns rows with dates still as stored strings; they
// feed the event normalizer, which owns date validation.
type Store interface {
	Save(ctx context.Context, w domain.Workout) error
	GetByID(ctx context.Context, id string) (domain.Workout, error)
	ListByProgram(ctx context.Context, programID string) ([]domain.Workout, error)
	ListRawByDateRange(ctx context.Context, from, to string, programIDs []string) ([]event.RawWorkout, error)
	Delete(ctx context.Context, id string) error
}
