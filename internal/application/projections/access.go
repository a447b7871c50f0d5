package projections

import (
	"context"
	"time"

	"stride/internal/domain/program"
)

// timeNow is swapped in tests for deterministic zero-value fallbacks.
var timeNow = time.Now

// ProgramAccessStore defines the store interface used to resolve which
// programs a viewer may read.
type ProgramAccessStore interface {
	ListAll(ctx context.Context) ([]program.Program, error)
	ListByCreator(ctx context.Context, accountID string) ([]program.Program, error)
	ListProgramIDsByAthlete(ctx context.Context, athleteID string) ([]string, error)
}

// Viewer identifies who is asking for calendar data and in what capacity.
// Coaches see programs they created; athletes see programs shared with them;
// admins see everything.
type Viewer struct {
	AccountID string
	AthleteID string // set when the viewer is an athlete
	IsCoach   bool
	IsAdmin   bool
}

// accessiblePrograms resolves the program IDs the viewer may read.
func accessiblePrograms(ctx context.Context, v Viewer, store ProgramAccessStore) ([]string, error) {
	switch {
	case v.IsAdmin:
		return programIDs(store.ListAll(ctx))
	case v.IsCoach:
		return programIDs(store.ListByCreator(ctx, v.AccountID))
	default:
		return store.ListProgramIDsByAthlete(ctx, v.AthleteID)
	}
}

func programIDs(programs []program.Program, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(programs))
	for _, p := range programs {
		ids = append(ids, p.ID)
	}
	return ids, nil
}
