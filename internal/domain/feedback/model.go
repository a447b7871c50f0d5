package feedback

import (
	"errors"
	"time"
)

// MaxCommentLength bounds athlete comments.
const MaxCommentLength = 2000

// Rating bounds (perceived session difficulty / satisfaction).
const (
	MinRating = 1
	MaxRating = 5
)

// Domain errors
var (
	ErrEmptyWorkoutID = errors.New("feedback workout ID cannot be empty")
	ErrEmptyAthleteID = errors.New("feedback athlete ID cannot be empty")
	ErrInvalidRating  = errors.New("feedback rating must be between 1 and 5")
)

// Feedback is an athlete's response to a scheduled workout.
// One row per (workout, athlete); saving again replaces the previous entry.
type Feedback struct {
	ID        string
	WorkoutID string
	AthleteID string
	Rating    int // 1 (very easy) .. 5 (maximal)
	Comment   string
	Completed bool // whether the session was actually done
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the feedback's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (f *Feedback) Validate() error {
	if f.WorkoutID == "" {
		return ErrEmptyWorkoutID
	}
	if f.AthleteID == "" {
		return ErrEmptyAthleteID
	}
	if f.Rating < MinRating || f.Rating > MaxRating {
		return ErrInvalidRating
	}
	if len(f.Comment) > MaxCommentLength {
		return errors.New("feedback comment cannot exceed 2000 characters")
	}
	return nil
}
