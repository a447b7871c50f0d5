package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"stride/internal/domain/feedback"
	"stride/internal/domain/workout"
)

// WorkoutStoreForFeedback defines the store interface needed by RecordFeedback.
type WorkoutStoreForFeedback interface {
	GetByID(ctx context.Context, id string) (workout.Workout, error)
}

// FeedbackStoreForRecord defines the store interface needed by RecordFeedback.
// Save has upsert semantics keyed on (workout, athlete).
type FeedbackStoreForRecord interface {
	Save(ctx context.Context, f feedback.Feedback) error
}

// ShareCheckForFeedback defines the access check needed by RecordFeedback.
type ShareCheckForFeedback interface {
	HasShare(ctx context.Context, programID, athleteID string) (bool, error)
}

// RecordFeedbackInput carries input for the record feedback orchestrator.
type RecordFeedbackInput struct {
	WorkoutID string
	AthleteID string
	Rating    int
	Comment   string
	Completed bool
}

// RecordFeedbackDeps holds dependencies for RecordFeedback.
type RecordFeedbackDeps struct {
	WorkoutStore  WorkoutStoreForFeedback
	FeedbackStore FeedbackStoreForRecord
	ShareStore    ShareCheckForFeedback
	GenerateID    func() string
	Now           func() time.Time
}

var ErrNoProgramAccess = errors.New("athlete does not have access to this workout's program")

// ExecuteRecordFeedback records or replaces an athlete's feedback on a workout.
// The athlete must hold a share grant on the workout's program. One feedback
// row per (workout, athlete); a second submission replaces the first.
// PRE: Workout exists; athlete has a share grant on its program; rating 1-5
// POST: Feedback upserted
func ExecuteRecordFeedback(ctx context.Context, input RecordFeedbackInput, deps RecordFeedbackDeps) (feedback.Feedback, error) {
	w, err := deps.WorkoutStore.GetByID(ctx, input.WorkoutID)
	if err != nil {
		return feedback.Feedback{}, fmt.Errorf("workout not found: %w", err)
	}

	has, err := deps.ShareStore.HasShare(ctx, w.ProgramID, input.AthleteID)
	if err != nil {
		return feedback.Feedback{}, err
	}
	if !has {
		slog.Info("feedback_event", "event", "feedback_denied", "workout_id", input.WorkoutID, "athlete_id", input.AthleteID)
		return feedback.Feedback{}, ErrNoProgramAccess
	}

	f := feedback.Feedback{
		ID:        deps.GenerateID(),
		WorkoutID: input.WorkoutID,
		AthleteID: input.AthleteID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Completed: input.Completed,
		CreatedAt: deps.Now(),
	}
	if err := f.Validate(); err != nil {
		return feedback.Feedback{}, err
	}

	if err := deps.FeedbackStore.Save(ctx, f); err != nil {
		return feedback.Feedback{}, err
	}

	slog.Info("feedback_event", "event", "feedback_recorded", "workout_id", input.WorkoutID, "athlete_id", input.AthleteID, "rating", input.Rating)
	return f, nil
}
