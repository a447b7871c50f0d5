package projections

import (
	"context"

	"stride/internal/domain/athlete"
	"stride/internal/domain/competition"
	"stride/internal/domain/program"
	"stride/internal/domain/workout"
)

// ProgramStoreForOverview defines the program lookup used by the overview.
type ProgramStoreForOverview interface {
	GetByID(ctx context.Context, id string) (program.Program, error)
	ListSharesByProgram(ctx context.Context, programID string) ([]program.Share, error)
}

// WorkoutStoreForOverview defines the workout listing used by the overview.
type WorkoutStoreForOverview interface {
	ListByProgram(ctx context.Context, programID string) ([]workout.Workout, error)
}

// CompetitionStoreForOverview defines the competition listing used by the overview.
type CompetitionStoreForOverview interface {
	ListByProgram(ctx context.Context, programID string) ([]competition.Competition, error)
}

// AthleteStoreForOverview defines the athlete lookup used by the overview.
type AthleteStoreForOverview interface {
	GetByID(ctx context.Context, id string) (athlete.Athlete, error)
}

// ProgramOverviewQuery carries parameters for the program overview projection.
type ProgramOverviewQuery struct {
	ProgramID string
}

// ProgramOverviewDeps holds dependencies for the program overview projection.
type ProgramOverviewDeps struct {
	ProgramStore     ProgramStoreForOverview
	WorkoutStore     WorkoutStoreForOverview
	CompetitionStore CompetitionStoreForOverview
	AthleteStore     AthleteStoreForOverview
}

// WeekSummary counts the scheduled items in one program week.
type WeekSummary struct {
	Week         int // 1-based
	Workouts     int
	Competitions int
}

// SharedAthlete is a share grant resolved to the athlete's name.
type SharedAthlete struct {
	AthleteID string
	Name      string
	Email     string
}

// ProgramOverview is the coach-facing summary of one program.
type ProgramOverview struct {
	Program program.Program
	Weeks   []WeekSummary
	Shared  []SharedAthlete
}

// QueryGetProgramOverview builds the per-week schedule summary and the share
// list for one program. Items dated outside the program's span are ignored
// in the week counts.
// PRE: ProgramID refers to an existing program
// POST: Weeks has exactly Program.Weeks entries in week order
func QueryGetProgramOverview(ctx context.Context, query ProgramOverviewQuery, deps ProgramOverviewDeps) (ProgramOverview, error) {
	p, err := deps.ProgramStore.GetByID(ctx, query.ProgramID)
	if err != nil {
		return ProgramOverview{}, err
	}

	overview := ProgramOverview{Program: p, Weeks: make([]WeekSummary, p.Weeks)}
	for i := range overview.Weeks {
		overview.Weeks[i].Week = i + 1
	}

	workouts, err := deps.WorkoutStore.ListByProgram(ctx, p.ID)
	if err != nil {
		return ProgramOverview{}, err
	}
	for _, w := range workouts {
		if wk := p.WeekNumber(w.Date); wk > 0 {
			overview.Weeks[wk-1].Workouts++
		}
	}

	competitions, err := deps.CompetitionStore.ListByProgram(ctx, p.ID)
	if err != nil {
		return ProgramOverview{}, err
	}
	for _, c := range competitions {
		if wk := p.WeekNumber(c.Date); wk > 0 {
			overview.Weeks[wk-1].Competitions++
		}
	}

	shares, err := deps.ProgramStore.ListSharesByProgram(ctx, p.ID)
	if err != nil {
		return ProgramOverview{}, err
	}
	for _, sh := range shares {
		sa := SharedAthlete{AthleteID: sh.AthleteID}
		if a, err := deps.AthleteStore.GetByID(ctx, sh.AthleteID); err == nil {
			sa.Name = a.Name
			sa.Email = a.Email
		}
		overview.Shared = append(overview.Shared, sa)
	}

	return overview, nil
}
