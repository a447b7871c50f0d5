package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stride/internal/domain/program"
)

// ProgramStoreForCreate defines the store interface needed by CreateProgram.
type ProgramStoreForCreate interface {
	Save(ctx context.Context, p program.Program) error
}

// CreateProgramInput carries input for the create program orchestrator.
type CreateProgramInput struct {
	Name        string
	Description string
	Weeks       int
	StartDate   time.Time
	CreatedBy   string // AccountID of the coach
}

// CreateProgramDeps holds dependencies for CreateProgram.
type CreateProgramDeps struct {
	ProgramStore ProgramStoreForCreate
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteCreateProgram creates a new training program for a coach.
// PRE: Name non-empty, Weeks within bounds, StartDate a Monday, CreatedBy non-empty
// POST: Program persisted with a generated ID
func ExecuteCreateProgram(ctx context.Context, input CreateProgramInput, deps CreateProgramDeps) (program.Program, error) {
	if input.CreatedBy == "" {
		return program.Program{}, errors.New("creator account ID is required")
	}

	p := program.Program{
		ID:          deps.GenerateID(),
		Name:        input.Name,
		Description: input.Description,
		Weeks:       input.Weeks,
		StartDate:   input.StartDate,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   deps.Now(),
	}

	if err := p.Validate(); err != nil {
		return program.Program{}, err
	}

	if err := deps.ProgramStore.Save(ctx, p); err != nil {
		return program.Program{}, err
	}

	slog.Info("program_event", "event", "program_created", "program_id", p.ID, "weeks", p.Weeks, "created_by", input.CreatedBy)
	return p, nil
}
