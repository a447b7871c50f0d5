package orchestrators

import (
	"context"
	"log/slog"

	"stride/internal/domain/theme"

	"github.com/google/uuid"
)

// ThemeStoreForSeed defines the store interface needed by SeedThemes.
type ThemeStoreForSeed interface {
	Save(ctx context.Context, t theme.Theme) error
	List(ctx context.Context) ([]theme.Theme, error)
}

// SeedThemesDeps holds dependencies for SeedThemes.
type SeedThemesDeps struct {
	ThemeStore ThemeStoreForSeed
}

// ExecuteSeedThemes creates the default training theme catalog if none exist.
func ExecuteSeedThemes(ctx context.Context, deps SeedThemesDeps) error {
	existing, err := deps.ThemeStore.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil // Already seeded
	}

	for _, d := range theme.Defaults {
		d.ID = uuid.New().String()
		if err := deps.ThemeStore.Save(ctx, d); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "themes_seeded", "themes", len(theme.Defaults))
	return nil
}
