package projections

import (
	"context"
	"time"

	"stride/internal/domain/event"
	"stride/internal/domain/feedback"
)

// FeedbackStoreForDaySheet defines the feedback lookup used by the day sheet.
type FeedbackStoreForDaySheet interface {
	ListByWorkout(ctx context.Context, workoutID string) ([]feedback.Feedback, error)
}

// DaySheetQuery carries parameters for the day sheet projection.
type DaySheetQuery struct {
	Viewer Viewer
	Day    time.Time
}

// DaySheetDeps holds dependencies for the day sheet projection.
type DaySheetDeps struct {
	ProgramStore     ProgramAccessStore
	WorkoutStore     WorkoutRangeStore
	CompetitionStore CompetitionRangeStore
	FeedbackStore    FeedbackStoreForDaySheet
}

// WorkoutFeedbackSummary aggregates feedback on one workout.
type WorkoutFeedbackSummary struct {
	WorkoutID     string
	Responses     int
	CompletedCnt  int
	AverageRating float64
}

// DaySheet is one day's events plus feedback summaries for its workouts.
type DaySheet struct {
	Date      time.Time
	Events    []event.Event
	Summaries map[string]WorkoutFeedbackSummary // keyed by workout ID
}

// QueryGetDaySheet returns the viewer's events for a single day with a
// feedback summary per workout, ordered by time-of-day.
// PRE: Day is set; a zero day falls back to today
// POST: Events carry the day's workouts and competitions; summaries only
// cover workouts that have at least one feedback row
func QueryGetDaySheet(ctx context.Context, query DaySheetQuery, deps DaySheetDeps) (DaySheet, error) {
	day := query.Day
	if day.IsZero() {
		now := timeNow()
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	events, err := loadEventsInRange(ctx, query.Viewer, day, day, deps.ProgramStore, deps.WorkoutStore, deps.CompetitionStore)
	if err != nil {
		return DaySheet{}, err
	}

	sheet := DaySheet{
		Date:      day,
		Events:    event.EventsForDay(events, day),
		Summaries: make(map[string]WorkoutFeedbackSummary),
	}

	for _, e := range sheet.Events {
		if !e.IsWorkout() {
			continue
		}
		rows, err := deps.FeedbackStore.ListByWorkout(ctx, e.ID)
		if err != nil {
			return DaySheet{}, err
		}
		if len(rows) == 0 {
			continue
		}
		sum := WorkoutFeedbackSummary{WorkoutID: e.ID, Responses: len(rows)}
		total := 0
		for _, f := range rows {
			total += f.Rating
			if f.Completed {
				sum.CompletedCnt++
			}
		}
		sum.AverageRating = float64(total) / float64(len(rows))
		sheet.Summaries[e.ID] = sum
	}

	return sheet, nil
}
