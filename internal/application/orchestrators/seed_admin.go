package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"stride/internal/domain/account"

	"github.com/google/uuid"
)

// AccountStoreForSeed defines the store interface needed by SeedAdmin.
type AccountStoreForSeed interface {
	Count(ctx context.Context) (int, error)
	Save(ctx context.Context, a account.Account) error
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AccountStore AccountStoreForSeed
}

// ExecuteSeedAdmin creates the initial admin account if no accounts exist.
func ExecuteSeedAdmin(ctx context.Context, deps SeedAdminDeps, email, password string) error {
	count, err := deps.AccountStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Already seeded
	}

	admin := account.Account{
		ID:        uuid.New().String(),
		Email:     email,
		Role:      account.RoleAdmin,
		CreatedAt: time.Now(),
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := deps.AccountStore.Save(ctx, admin); err != nil {
		return err
	}

	slog.Info("seed_event", "event", "admin_seeded", "email", email)
	return nil
}
