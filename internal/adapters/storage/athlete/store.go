package athlete

import (
	"context"

	domain "stride/internal/domain/athlete"
)

// Store persists Athlete state.
type Store interface {
	Save(ctx context.Context, a domain.Athlete) error
	GetByID(ctx context.Context, id string) (domain.Athlete, error)
	GetByAccountID(ctx context.Context, accountID string) (domain.Athlete, error)
	ListByCoach(ctx context.Context, coachID string) ([]domain.Athlete, error)
	Delete(ctx context.Context, id string) error
}
