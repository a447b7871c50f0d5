package workout

import (
	"errors"
	"time"
)

// Max length constants.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxDetailsLength     = 8192
)

// Domain errors
var (
	ErrEmptyProgramID = errors.New("workout program ID cannot be empty")
	ErrEmptyTitle     = errors.New("workout title cannot be empty")
	ErrMissingDate    = errors.New("workout date is required")
	ErrInvalidTime    = errors.New("workout time must be HH:MM")
)

// Workout represents one scheduled training session inside a program.
// Details is an opaque blob (structured session content, e.g. interval JSON)
// stored and returned untouched.
type Workout struct {
	ID          string
	ProgramID   string
	Title       string
	Date        time.Time // day granularity
	Time        string    // optional "HH:MM"; empty means unscheduled time
	Theme       string    // training-category tag, e.g. "aerobic"
	Description string    // markdown, rendered by the presentation layer
	Details     string    // opaque blob
	CreatedAt   time.Time
}

// Validate checks the workout's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (w *Workout) Validate() error {
	if w.ProgramID == "" {
		return ErrEmptyProgramID
	}
	if w.Title == "" {
		return ErrEmptyTitle
	}
	if len(w.Title) > MaxTitleLength {
		return errors.New("workout title cannot exceed 200 characters")
	}
	if w.Date.IsZero() {
		return ErrMissingDate
	}
	if w.Time != "" && !validClock(w.Time) {
		return ErrInvalidTime
	}
	if len(w.Description) > MaxDescriptionLength {
		return errors.New("workout description cannot exceed 2000 characters")
	}
	if len(w.Details) > MaxDetailsLength {
		return errors.New("workout details cannot exceed 8192 bytes")
	}
	return nil
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
