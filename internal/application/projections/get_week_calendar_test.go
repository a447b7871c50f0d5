package projections

import (
	"context"
	"testing"
	"time"

	"stride/internal/domain/event"
	"stride/internal/domain/program"
)

// mockAccessStore implements ProgramAccessStore.
type mockAccessStore struct {
	owned    map[string][]program.Program // by creator account ID
	sharedTo map[string][]string          // program IDs by athlete ID
}

func (m *mockAccessStore) ListAll(_ context.Context) ([]program.Program, error) {
	var all []program.Program
	for _, ps := range m.owned {
		all = append(all, ps...)
	}
	return all, nil
}

func (m *mockAccessStore) ListByCreator(_ context.Context, accountID string) ([]program.Program, error) {
	return m.owned[accountID], nil
}

func (m *mockAccessStore) ListProgramIDsByAthlete(_ context.Context, athleteID string) ([]string, error) {
	return m.sharedTo[athleteID], nil
}

// mockWorkoutRangeStore implements WorkoutRangeStore over a fixed row set.
type mockWorkoutRangeStore struct {
	rows []event.RawWorkout
}

func (m *mockWorkoutRangeStore) ListRawByDateRange(_ context.Context, from, to string, programIDs []string) ([]event.RawWorkout, error) {
	if len(programIDs) == 0 {
		return nil, nil
	}
	var out []event.RawWorkout
	for _, r := range m.rows {
		if r.Date >= from && r.Date <= to {
			out = append(out, r)
		}
	}
	return out, nil
}

// mockCompetitionRangeStore implements CompetitionRangeStore over a fixed row set.
type mockCompetitionRangeStore struct {
	rows []event.RawCompetition
}

func (m *mockCompetitionRangeStore) ListRawByDateRange(_ context.Context, from, to string, programIDs []string) ([]event.RawCompetition, error) {
	if len(programIDs) == 0 {
		return nil, nil
	}
	var out []event.RawCompetition
	for _, r := range m.rows {
		if r.Date >= from && r.Date <= to {
			out = append(out, r)
		}
	}
	return out, nil
}

func coachViewer() Viewer { return Viewer{AccountID: "coach-1", IsCoach: true} }

func calendarDeps() WeekCalendarDeps {
	return WeekCalendarDeps{
		ProgramStore: &mockAccessStore{
			owned: map[string][]program.Program{"coach-1": {{ID: "p1", CreatedBy: "coach-1"}}},
		},
		WorkoutStore: &mockWorkoutRangeStore{rows: []event.RawWorkout{
			{ID: "w1", Title: "Easy run", Date: "2025-06-02", Time: "07:00", Theme: "aerobic"},
			{ID: "w2", Title: "Intervals", Date: "2025-06-04", Time: "18:00", Theme: "vo2max"},
			{ID: "w3", Title: "Long run", Date: "2025-06-08"},
			{ID: "w4", Title: "Broken row", Date: "not-a-date"},
		}},
		CompetitionStore: &mockCompetitionRangeStore{rows: []event.RawCompetition{
			{ID: "c1", Name: "Track 5000m", Date: "2025-06-04", Time: "12:00", DistanceMeters: 5000},
		}},
	}
}

// TestQueryGetWeekCalendar_Buckets tests the 7-day layout and per-day ordering.
func TestQueryGetWeekCalendar_Buckets(t *testing.T) {
	cal, err := QueryGetWeekCalendar(context.Background(), WeekCalendarQuery{
		Viewer: coachViewer(),
		Anchor: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), // a Wednesday
	}, calendarDeps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cal.StartOfWeek.Format("2006-01-02"); got != "2025-06-02" {
		t.Fatalf("expected week starting Monday 2025-06-02, got %s", got)
	}

	// Monday has the easy run, Wednesday has the competition at noon before
	// the evening intervals, Sunday has the untimed long run.
	if len(cal.Days[0].Events) != 1 || cal.Days[0].Events[0].ID != "w1" {
		t.Errorf("Monday: expected [w1], got %+v", cal.Days[0].Events)
	}
	wed := cal.Days[2].Events
	if len(wed) != 2 || wed[0].ID != "c1" || wed[1].ID != "w2" {
		t.Errorf("Wednesday: expected [c1 w2] in time order, got %+v", wed)
	}
	if len(cal.Days[6].Events) != 1 || cal.Days[6].Events[0].ID != "w3" {
		t.Errorf("Sunday: expected [w3], got %+v", cal.Days[6].Events)
	}

	// The malformed row is dropped, not surfaced anywhere.
	for _, day := range cal.Days {
		for _, e := range day.Events {
			if e.ID == "w4" {
				t.Error("malformed row must be dropped by normalization")
			}
		}
	}
}

// TestQueryGetWeekCalendar_Navigation tests the delta-week offset.
func TestQueryGetWeekCalendar_Navigation(t *testing.T) {
	cal, err := QueryGetWeekCalendar(context.Background(), WeekCalendarQuery{
		Viewer:     coachViewer(),
		Anchor:     time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		DeltaWeeks: 1,
	}, calendarDeps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cal.StartOfWeek.Format("2006-01-02"); got != "2025-06-09" {
		t.Errorf("expected next week to start 2025-06-09, got %s", got)
	}
}

// TestQueryGetWeekCalendar_AdminSeesAllPrograms tests that an admin who
// created no programs still sees every program's events.
func TestQueryGetWeekCalendar_AdminSeesAllPrograms(t *testing.T) {
	cal, err := QueryGetWeekCalendar(context.Background(), WeekCalendarQuery{
		Viewer: Viewer{AccountID: "admin-1", IsAdmin: true},
		Anchor: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	}, calendarDeps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := 0
	for _, day := range cal.Days {
		total += len(day.Events)
	}
	if total != 4 {
		t.Errorf("expected admin to see all 4 events, got %d", total)
	}
	if len(cal.Days[0].Events) != 1 || cal.Days[0].Events[0].ID != "w1" {
		t.Errorf("Monday: expected [w1] for admin, got %+v", cal.Days[0].Events)
	}
}

// TestQueryGetWeekCalendar_AthleteWithoutShares tests that an athlete with no
// grants sees an empty week rather than an error.
func TestQueryGetWeekCalendar_AthleteWithoutShares(t *testing.T) {
	deps := calendarDeps()
	cal, err := QueryGetWeekCalendar(context.Background(), WeekCalendarQuery{
		Viewer: Viewer{AccountID: "acct-9", AthleteID: "ath-9"},
		Anchor: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, day := range cal.Days {
		if len(day.Events) != 0 {
			t.Errorf("day %d: expected no events for unshared athlete, got %d", i, len(day.Events))
		}
	}
}
