package event

import (
	"sort"
	"time"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// WeekWindow is the Monday-anchored 7-day span used for week-view navigation.
// Recomputed on every navigation step; never persisted.
type WeekWindow struct {
	StartOfWeek time.Time    // the Monday on or before the anchor
	Days        [7]time.Time // StartOfWeek plus 0..6 days
}

// EventsForDay filters events to those on the given calendar day, ordered by
// time-of-day ascending. Events with no time sort after all timed events and
// keep their input order among themselves (the sort is stable).
// Membership is calendar-day equality; time-of-day is irrelevant to it.
// PRE: none
// POST: returns a new slice; input is not mutated; zero day yields no matches
func EventsForDay(events []Event, day time.Time) []Event {
	if day.IsZero() {
		return nil
	}
	var matches []Event
	for _, e := range events {
		if sameDay(e.Date, day) {
			matches = append(matches, e)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MinutesOfDay() < matches[j].MinutesOfDay()
	})
	return matches
}

// ComputeWeekWindow computes the week window containing the anchor date.
// A zero anchor falls back to the current date rather than propagating.
// PRE: none
// POST: StartOfWeek is a Monday; Days[i] = StartOfWeek + i days
func ComputeWeekWindow(anchor time.Time) WeekWindow {
	if anchor.IsZero() {
		anchor = timeNow()
	}
	start := startOfWeek(anchor)
	w := WeekWindow{StartOfWeek: start}
	for i := range w.Days {
		w.Days[i] = start.AddDate(0, 0, i)
	}
	return w
}

// Navigate shifts the window by deltaWeeks weeks and recomputes the days.
// deltaWeeks is typically ±1 but any integer works; +1 then -1 round-trips.
// INVARIANT: the receiver is not mutated
func (w WeekWindow) Navigate(deltaWeeks int) WeekWindow {
	return ComputeWeekWindow(w.StartOfWeek.AddDate(0, 0, 7*deltaWeeks))
}

// Contains reports whether the given day falls inside the window.
func (w WeekWindow) Contains(day time.Time) bool {
	for _, d := range w.Days {
		if sameDay(d, day) {
			return true
		}
	}
	return false
}

// startOfWeek returns midnight of the Monday on or before t.
func startOfWeek(t time.Time) time.Time {
	// time.Weekday numbers Sunday as 0; shift so Monday is 0.
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -offset)
}
