package event

import "sort"

// Order is the date sort direction for event lists.
type Order string

// Sort directions.
const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// FilterAndSort applies an optional theme filter and a date-direction sort.
// A non-empty theme retains only workout events carrying that theme;
// competitions have no theme, so they are always excluded once a theme filter
// is active. Events are then sorted by date at day granularity; ties keep
// their relative input order (stable sort, no secondary key; time-of-day
// ordering belongs to EventsForDay, not here).
// PRE: none
// POST: returns a new slice; input is not mutated; idempotent
func FilterAndSort(events []Event, theme string, order Order) []Event {
	filtered := make([]Event, 0, len(events))
	for _, e := range events {
		if theme != "" && (!e.IsWorkout() || e.Theme != theme) {
			continue
		}
		filtered = append(filtered, e)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if order == OrderDesc {
			return filtered[j].Date.Before(filtered[i].Date)
		}
		return filtered[i].Date.Before(filtered[j].Date)
	})
	return filtered
}
