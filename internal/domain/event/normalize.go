package event

import "time"

// RawWorkout is a workout row as fetched from storage, dates still as strings.
type RawWorkout struct {
	ID          string
	Title       string
	Date        string // ISO-8601 date, "YYYY-MM-DD"
	Time        string // optional "HH:MM"
	Theme       string
	Description string
	Details     string // opaque blob
}

// RawCompetition is a competition row as fetched from storage.
type RawCompetition struct {
	ID             string
	Name           string
	Date           string // ISO-8601 date, "YYYY-MM-DD"
	Time           string // optional "HH:MM"
	Location       string
	DistanceMeters int
	Level          string
	IsMain         bool
}

// Normalize converts raw workout and competition rows into a unified Event
// sequence. Rows whose date does not parse as a valid calendar date are
// silently dropped so the calendar stays available in the face of dirty data.
// Output order is unspecified; callers sort downstream.
// PRE: none
// POST: exactly one Event per valid raw record; pure, no input mutation
func Normalize(workouts []RawWorkout, competitions []RawCompetition) []Event {
	events := make([]Event, 0, len(workouts)+len(competitions))
	for _, w := range workouts {
		date, ok := parseDate(w.Date)
		if !ok {
			continue
		}
		events = append(events, Event{
			ID:          w.ID,
			Kind:        KindWorkout,
			Date:        date,
			Time:        w.Time,
			Title:       w.Title,
			Theme:       w.Theme,
			Description: w.Description,
			Details:     w.Details,
		})
	}
	for _, c := range competitions {
		date, ok := parseDate(c.Date)
		if !ok {
			continue
		}
		events = append(events, Event{
			ID:             c.ID,
			Kind:           KindCompetition,
			Date:           date,
			Time:           c.Time,
			Title:          c.Name,
			Location:       c.Location,
			DistanceMeters: c.DistanceMeters,
			Level:          c.Level,
			IsMain:         c.IsMain,
		})
	}
	return events
}

// parseDate parses an ISO-8601 date. Full RFC 3339 date-times are accepted
// and truncated to day granularity, in case a datetime leaks out of storage.
// Variant date representations never travel past this boundary.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
