package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	emailAdapter "stride/internal/adapters/email"
	"stride/internal/domain/athlete"
	"stride/internal/domain/program"
)

// ProgramStoreForShare defines the store interface needed by ShareProgram.
type ProgramStoreForShare interface {
	GetByID(ctx context.Context, id string) (program.Program, error)
	SaveShare(ctx context.Context, sh program.Share) error
	DeleteShare(ctx context.Context, programID, athleteID string) error
}

// AthleteStoreForShare defines the store interface needed by ShareProgram.
type AthleteStoreForShare interface {
	GetByID(ctx context.Context, id string) (athlete.Athlete, error)
}

// ShareProgramInput carries input for the share program orchestrator.
type ShareProgramInput struct {
	ProgramID string
	AthleteID string
	GrantedBy string // AccountID of the coach sharing
}

// ShareProgramDeps holds dependencies for ShareProgram.
type ShareProgramDeps struct {
	ProgramStore ProgramStoreForShare
	AthleteStore AthleteStoreForShare
	EmailSender  emailAdapter.Sender
	FromAddress  string
	BaseURL      string
	GenerateID   func() string
	Now          func() time.Time
}

var ErrNotProgramOwner = errors.New("only the coach who created the program can share it")

// ExecuteShareProgram grants an athlete access to a program and notifies them
// by email. Email failure does not roll the grant back.
// PRE: Program exists and GrantedBy created it; athlete exists
// POST: Share grant persisted; notification attempted
func ExecuteShareProgram(ctx context.Context, input ShareProgramInput, deps ShareProgramDeps) (program.Share, error) {
	p, err := deps.ProgramStore.GetByID(ctx, input.ProgramID)
	if err != nil {
		return program.Share{}, fmt.Errorf("program not found: %w", err)
	}
	if p.CreatedBy != input.GrantedBy {
		return program.Share{}, ErrNotProgramOwner
	}

	ath, err := deps.AthleteStore.GetByID(ctx, input.AthleteID)
	if err != nil {
		return program.Share{}, fmt.Errorf("athlete not found: %w", err)
	}

	sh := program.Share{
		ID:        deps.GenerateID(),
		ProgramID: input.ProgramID,
		AthleteID: input.AthleteID,
		GrantedBy: input.GrantedBy,
		CreatedAt: deps.Now(),
	}
	if err := sh.Validate(); err != nil {
		return program.Share{}, err
	}

	if err := deps.ProgramStore.SaveShare(ctx, sh); err != nil {
		return program.Share{}, err
	}

	slog.Info("program_event", "event", "program_shared", "program_id", p.ID, "athlete_id", ath.ID, "granted_by", input.GrantedBy)

	if deps.EmailSender != nil && ath.Email != "" {
		req := emailAdapter.SendRequest{
			To:      []string{ath.Email},
			From:    deps.FromAddress,
			Subject: fmt.Sprintf("Your coach shared a training program: %s", p.Name),
			HTML:    shareNotificationHTML(ath.Name, p, deps.BaseURL),
		}
		if _, err := deps.EmailSender.Send(ctx, req); err != nil {
			// The grant stands; the athlete just won't get the email.
			slog.Error("email_event", "event", "share_notification_failed", "athlete_id", ath.ID, "error", err)
		} else {
			slog.Info("email_event", "event", "share_notification_sent", "athlete_id", ath.ID, "program_id", p.ID)
		}
	}

	return sh, nil
}

// ExecuteRevokeShare removes an athlete's access to a program.
// PRE: GrantedBy created the program
// POST: Share grant deleted if present
func ExecuteRevokeShare(ctx context.Context, input ShareProgramInput, deps ShareProgramDeps) error {
	p, err := deps.ProgramStore.GetByID(ctx, input.ProgramID)
	if err != nil {
		return fmt.Errorf("program not found: %w", err)
	}
	if p.CreatedBy != input.GrantedBy {
		return ErrNotProgramOwner
	}

	if err := deps.ProgramStore.DeleteShare(ctx, input.ProgramID, input.AthleteID); err != nil {
		return err
	}

	slog.Info("program_event", "event", "share_revoked", "program_id", input.ProgramID, "athlete_id", input.AthleteID)
	return nil
}

func shareNotificationHTML(name string, p program.Program, baseURL string) string {
	return fmt.Sprintf(`<p>Hi %s,</p>
<p>Your coach has shared the training program <strong>%s</strong> with you.
It starts on %s and runs for %d weeks.</p>
<p><a href="%s/calendar?anchor=%s">Open your calendar</a> to see the sessions.</p>`,
		name, p.Name, p.StartDate.Format("Monday 2 January 2006"), p.Weeks,
		baseURL, p.StartDate.Format("2006-01-02"))
}
