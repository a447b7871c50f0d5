package projections

import (
	"context"
	"testing"
	"time"

	"stride/internal/domain/feedback"
)

// mockFeedbackByWorkout implements FeedbackStoreForDaySheet.
type mockFeedbackByWorkout struct {
	rows map[string][]feedback.Feedback
}

func (m *mockFeedbackByWorkout) ListByWorkout(_ context.Context, workoutID string) ([]feedback.Feedback, error) {
	return m.rows[workoutID], nil
}

// TestQueryGetDaySheet tests the single-day view with feedback summaries.
func TestQueryGetDaySheet(t *testing.T) {
	cal := calendarDeps()
	deps := DaySheetDeps{
		ProgramStore:     cal.ProgramStore,
		WorkoutStore:     cal.WorkoutStore,
		CompetitionStore: cal.CompetitionStore,
		FeedbackStore: &mockFeedbackByWorkout{rows: map[string][]feedback.Feedback{
			"w2": {
				{ID: "f1", WorkoutID: "w2", AthleteID: "ath-1", Rating: 4, Completed: true},
				{ID: "f2", WorkoutID: "w2", AthleteID: "ath-2", Rating: 2, Completed: false},
			},
		}},
	}

	sheet, err := QueryGetDaySheet(context.Background(), DaySheetQuery{
		Viewer: coachViewer(),
		Day:    time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Wednesday holds the noon competition then the evening intervals.
	if len(sheet.Events) != 2 || sheet.Events[0].ID != "c1" || sheet.Events[1].ID != "w2" {
		t.Fatalf("expected [c1 w2], got %+v", sheet.Events)
	}

	sum, ok := sheet.Summaries["w2"]
	if !ok {
		t.Fatal("expected a feedback summary for w2")
	}
	if sum.Responses != 2 || sum.CompletedCnt != 1 {
		t.Errorf("unexpected summary counts: %+v", sum)
	}
	if sum.AverageRating != 3.0 {
		t.Errorf("expected average rating 3.0, got %v", sum.AverageRating)
	}

	// The competition carries no summary.
	if _, ok := sheet.Summaries["c1"]; ok {
		t.Error("competitions must not have feedback summaries")
	}
}

// TestQueryGetDaySheet_EmptyDay tests a day with no events.
func TestQueryGetDaySheet_EmptyDay(t *testing.T) {
	cal := calendarDeps()
	deps := DaySheetDeps{
		ProgramStore:     cal.ProgramStore,
		WorkoutStore:     cal.WorkoutStore,
		CompetitionStore: cal.CompetitionStore,
		FeedbackStore:    &mockFeedbackByWorkout{rows: map[string][]feedback.Feedback{}},
	}

	sheet, err := QueryGetDaySheet(context.Background(), DaySheetQuery{
		Viewer: coachViewer(),
		Day:    time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sheet.Events) != 0 || len(sheet.Summaries) != 0 {
		t.Errorf("expected empty sheet, got %+v", sheet)
	}
}

// TestQueryGetDaySheet_ZeroDayFallsBackToToday tests the zero-day fallback
// through the package clock.
func TestQueryGetDaySheet_ZeroDayFallsBackToToday(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	cal := calendarDeps()
	deps := DaySheetDeps{
		ProgramStore:     cal.ProgramStore,
		WorkoutStore:     cal.WorkoutStore,
		CompetitionStore: cal.CompetitionStore,
		FeedbackStore:    &mockFeedbackByWorkout{},
	}

	sheet, err := QueryGetDaySheet(context.Background(), DaySheetQuery{Viewer: coachViewer()}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sheet.Date.Format("2006-01-02"); got != "2025-06-04" {
		t.Errorf("expected fallback to 2025-06-04, got %s", got)
	}
	// Wednesday's events come back even though no day was given.
	if len(sheet.Events) != 2 {
		t.Errorf("expected 2 events on the fallback day, got %d", len(sheet.Events))
	}
}
