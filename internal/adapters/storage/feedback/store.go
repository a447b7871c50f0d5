package feedback

import (
	"context"

	domain "stride/internal/domain/feedback"
)

// Store persists Feedback state.
type Store interface {
	Save(ctx context.Context, f domain.Feedback) error
	GetByWorkoutAndAthlete(ctx context.Context, workoutID, athleteID string) (domain.Feedback, error)
	ListByWorkout(ctx context.Context, workoutID string) ([]domain.Feedback, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]domain.Feedback, error)
	Delete(ctx context.Context, id string) error
}
