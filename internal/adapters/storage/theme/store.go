package theme

import (
	"context"

	domain "stride/internal/domain/theme"
)

// Store persists the theme catalog.
type Store interface {
	Save(ctx context.Context, t domain.Theme) error
	GetByCode(ctx context.Context, code string) (domain.Theme, error)
	List(ctx context.Context) ([]domain.Theme, error)
	Delete(ctx context.Context, id string) error
}
