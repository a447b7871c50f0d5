package event

import "testing"

// TestNormalize_DropsInvalidDates verifies rows with unparsable dates are
// excluded while all valid rows survive.
func TestNormalize_DropsInvalidDates(t *testing.T) {
	workouts := []RawWorkout{
		{ID: "w1", Title: "Intervals", Date: "2025-06-01"},
		{ID: "w2", Title: "Broken", Date: "not-a-date"},
		{ID: "w3", Title: "Long run", Date: "2025-06-03"},
	}
	competitions := []RawCompetition{
		{ID: "c1", Name: "City 10K", Date: "2025-06-15"},
		{ID: "c2", Name: "Broken", Date: "2025-13-45"},
	}

	events := Normalize(workouts, competitions)

	got := make(map[string]bool, len(events))
	for _, e := range events {
		got[e.Key()] = true
	}
	want := []string{"workout:w1", "workout:w3", "competition:c1"}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for _, key := range want {
		if !got[key] {
			t.Errorf("expected event %s in output", key)
		}
	}
}

// TestNormalize_FieldMapping verifies variant fields survive normalization.
func TestNormalize_FieldMapping(t *testing.T) {
	workouts := []RawWorkout{
		{ID: "w1", Title: "Tempo", Date: "2025-06-01", Time: "07:30", Theme: "threshold", Description: "4x8min", Details: `{"sets":4}`},
	}
	competitions := []RawCompetition{
		{ID: "c1", Name: "Nationals", Date: "2025-06-15", Location: "Lyon", DistanceMeters: 5000, Level: "national", IsMain: true},
	}

	events := Normalize(workouts, competitions)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	w := events[0]
	if !w.IsWorkout() || w.Title != "Tempo" || w.Time != "07:30" || w.Theme != "threshold" || w.Details != `{"sets":4}` {
		t.Errorf("workout fields not mapped: %+v", w)
	}
	c := events[1]
	if !c.IsCompetition() || c.Title != "Nationals" || c.Location != "Lyon" || c.DistanceMeters != 5000 || !c.IsMain {
		t.Errorf("competition fields not mapped: %+v", c)
	}
}

// TestNormalize_AcceptsDatetime verifies RFC 3339 datetimes are truncated to
// day granularity rather than rejected.
func TestNormalize_AcceptsDatetime(t *testing.T) {
	events := Normalize([]RawWorkout{{ID: "w1", Date: "2025-06-01T14:30:00Z"}}, nil)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Date.Format("2006-01-02") != "2025-06-01" {
		t.Errorf("expected day 2025-06-01, got %v", events[0].Date)
	}
	if events[0].Date.Hour() != 0 {
		t.Errorf("expected midnight, got hour %d", events[0].Date.Hour())
	}
}

// TestNormalize_Deterministic verifies the normalizer is a pure function.
func TestNormalize_Deterministic(t *testing.T) {
	workouts := []RawWorkout{{ID: "w1", Date: "2025-06-01"}, {ID: "w2", Date: "bad"}}
	a := Normalize(workouts, nil)
	b := Normalize(workouts, nil)
	if len(a) != len(b) {
		t.Fatalf("normalize not deterministic: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("event %d differs between runs", i)
		}
	}
}
