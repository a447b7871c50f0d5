package event

import "time"

// Event kind constants.
const (
	KindWorkout     = "workout"     // scheduled training session from a program
	KindCompetition = "competition" // race or meet entry
)

// unscheduledMinutes sorts events with no time-of-day after all timed events.
const unscheduledMinutes = 24 * 60

// Event is a unified calendar item: either a workout or a competition.
// Immutable once constructed; pipeline functions return new slices and never
// mutate their input.
// INVARIANT: Date is a valid calendar date (enforced by Normalize).
type Event struct {
	ID    string
	Kind  string    // "workout" or "competition"
	Date  time.Time // day granularity; time-of-day lives in Time
	Time  string    // "HH:MM", empty means unscheduled
	Title string

	// Workout fields
	Theme       string // training-category tag, e.g. "aerobic"
	Description string
	Details     string // opaque blob, passed through untouched

	// Competition fields
	Location       string
	DistanceMeters int
	Level          string
	IsMain         bool
}

// Key returns a globally unique key for the event.
// IDs are only unique within one kind's source collection, so consumers
// mixing kinds must key on (kind, id).
func (e Event) Key() string {
	return e.Kind + ":" + e.ID
}

// IsWorkout returns true if the event is a workout.
func (e Event) IsWorkout() bool {
	return e.Kind == KindWorkout
}

// IsCompetition returns true if the event is a competition.
func (e Event) IsCompetition() bool {
	return e.Kind == KindCompetition
}

// MinutesOfDay converts the event's "HH:MM" time to minutes since midnight.
// Events with no time (or a malformed time) sort after all timed events.
// POST: returns a value in [0, 1439] for a valid time, unscheduledMinutes otherwise
func (e Event) MinutesOfDay() int {
	m, ok := parseClock(e.Time)
	if !ok {
		return unscheduledMinutes
	}
	return m
}

// parseClock parses a strict "HH:MM" 24-hour clock string.
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// sameDay reports calendar-day equality, ignoring time-of-day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
