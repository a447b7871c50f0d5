package projections

import (
	"context"
	"time"

	"stride/internal/domain/event"
)

// WorkoutRangeStore defines the raw workout range query used by calendar projections.
type WorkoutRangeStore interface {
	ListRawByDateRange(ctx context.Context, from, to string, programIDs []string) ([]event.RawWorkout, error)
}

// CompetitionRangeStore defines the raw competition range query used by calendar projections.
type CompetitionRangeStore interface {
	ListRawByDateRange(ctx context.Context, from, to string, programIDs []string) ([]event.RawCompetition, error)
}

// WeekCalendarQuery carries parameters for the week calendar projection.
type WeekCalendarQuery struct {
	Viewer     Viewer
	Anchor     time.Time // zero means "this week"
	DeltaWeeks int       // navigation offset applied to the anchor's week
}

// WeekCalendarDeps holds dependencies for the week calendar projection.
type WeekCalendarDeps struct {
	ProgramStore     ProgramAccessStore
	WorkoutStore     WorkoutRangeStore
	CompetitionStore CompetitionRangeStore
}

// DayBucket is one calendar day with its events in time-of-day order.
type DayBucket struct {
	Date   time.Time
	Events []event.Event
}

// WeekCalendar is a 7-day window of day buckets, Monday first.
type WeekCalendar struct {
	StartOfWeek time.Time
	Days        [7]DayBucket
}

// QueryGetWeekCalendar builds the week view for the viewer's accessible
// programs. Rows with unparsable dates are dropped by the normalizer rather
// than failing the whole week.
// PRE: none; a zero anchor falls back to the current week
// POST: returns 7 day buckets Monday..Sunday, each ordered by time-of-day
func QueryGetWeekCalendar(ctx context.Context, query WeekCalendarQuery, deps WeekCalendarDeps) (WeekCalendar, error) {
	window := event.ComputeWeekWindow(query.Anchor)
	if query.DeltaWeeks != 0 {
		window = window.Navigate(query.DeltaWeeks)
	}

	events, err := loadEventsInRange(ctx, query.Viewer, window.Days[0], window.Days[6], deps.ProgramStore, deps.WorkoutStore, deps.CompetitionStore)
	if err != nil {
		return WeekCalendar{}, err
	}

	cal := WeekCalendar{StartOfWeek: window.StartOfWeek}
	for i, day := range window.Days {
		cal.Days[i] = DayBucket{Date: day, Events: event.EventsForDay(events, day)}
	}
	return cal, nil
}

// loadEventsInRange loads and normalizes the viewer's events for [from, to].
func loadEventsInRange(ctx context.Context, v Viewer, from, to time.Time, programs ProgramAccessStore, workouts WorkoutRangeStore, competitions CompetitionRangeStore) ([]event.Event, error) {
	programIDs, err := accessiblePrograms(ctx, v, programs)
	if err != nil {
		return nil, err
	}

	fromStr := from.Format("2006-01-02")
	toStr := to.Format("2006-01-02")

	rawWorkouts, err := workouts.ListRawByDateRange(ctx, fromStr, toStr, programIDs)
	if err != nil {
		return nil, err
	}
	rawCompetitions, err := competitions.ListRawByDateRange(ctx, fromStr, toStr, programIDs)
	if err != nil {
		return nil, err
	}

	return event.Normalize(rawWorkouts, rawCompetitions), nil
}
