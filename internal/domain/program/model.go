package program

import (
	"errors"
	"time"
)

// Max length constants.
const (
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
)

// Week count bounds for a training program.
const (
	MinWeeks = 1
	MaxWeeks = 52
)

// Domain errors
var (
	ErrEmptyName        = errors.New("program name cannot be empty")
	ErrInvalidWeeks     = errors.New("program must span between 1 and 52 weeks")
	ErrMissingStartDate = errors.New("program start date is required")
	ErrStartNotMonday   = errors.New("program start date must be a Monday")
)

// Program represents a multi-week training plan built by a coach.
// Workouts and competitions are scheduled inside its date range and athletes
// gain access through share grants.
// INVARIANT: StartDate is a Monday; Weeks is within [MinWeeks, MaxWeeks].
type Program struct {
	ID          string
	Name        string
	Description string
	Weeks       int       // number of 7-day blocks
	StartDate   time.Time // Monday of week 1
	CreatedBy   string    // account ID of the coach
	CreatedAt   time.Time
}

// Validate checks the program's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (p *Program) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if len(p.Name) > MaxNameLength {
		return errors.New("program name cannot exceed 200 characters")
	}
	if len(p.Description) > MaxDescriptionLength {
		return errors.New("program description cannot exceed 2000 characters")
	}
	if p.Weeks < MinWeeks || p.Weeks > MaxWeeks {
		return ErrInvalidWeeks
	}
	if p.StartDate.IsZero() {
		return ErrMissingStartDate
	}
	if p.StartDate.Weekday() != time.Monday {
		return ErrStartNotMonday
	}
	return nil
}

// EndDate returns the last day (Sunday) of the final week.
// PRE: program is valid
// INVARIANT: Program fields are not mutated
func (p *Program) EndDate() time.Time {
	return p.StartDate.AddDate(0, 0, p.Weeks*7-1)
}

// ContainsDate reports whether the given day falls inside the program's span.
// INVARIANT: Program fields are not mutated
func (p *Program) ContainsDate(day time.Time) bool {
	if day.Before(p.StartDate) {
		return false
	}
	return !day.After(p.EndDate())
}

// WeekNumber returns which week of the program the given day falls in (1-based).
// PRE: none
// POST: returns 1..Weeks, or 0 if the day is outside the program
func (p *Program) WeekNumber(day time.Time) int {
	if !p.ContainsDate(day) {
		return 0
	}
	days := int(day.Sub(p.StartDate).Hours() / 24)
	return (days / 7) + 1
}
