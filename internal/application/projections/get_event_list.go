package projections

import (
	"context"
	"time"

	"stride/internal/application/listutil"
	"stride/internal/domain/event"
)

// defaultListSpan bounds the event list when no explicit range is given.
const defaultListSpan = 182 * 24 * time.Hour

// EventListQuery carries parameters for the paginated event list projection.
type EventListQuery struct {
	Viewer  Viewer
	From    time.Time // zero means half a year back
	To      time.Time // zero means half a year ahead
	Theme   string    // empty means all kinds, no filter
	Order   event.Order
	Page    int
	PerPage int
}

// EventListDeps holds dependencies for the event list projection.
type EventListDeps struct {
	ProgramStore     ProgramAccessStore
	WorkoutStore     WorkoutRangeStore
	CompetitionStore CompetitionRangeStore
}

// EventListPage is one page of filtered, date-sorted events.
type EventListPage struct {
	Events   []event.Event
	PageInfo listutil.PageInfo
}

// QueryGetEventList returns a page of the viewer's events, optionally
// restricted to one workout theme, sorted by date in the requested direction.
// Page numbers out of range clamp to the nearest valid page; a non-positive
// page size is the caller's error and is reported as such.
// PRE: PerPage > 0
// POST: Events holds at most PerPage items; PageInfo describes the full set
func QueryGetEventList(ctx context.Context, query EventListQuery, deps EventListDeps) (EventListPage, error) {
	from, to := query.From, query.To
	if from.IsZero() {
		from = timeNow().Add(-defaultListSpan)
	}
	if to.IsZero() {
		to = timeNow().Add(defaultListSpan)
	}

	events, err := loadEventsInRange(ctx, query.Viewer, from, to, deps.ProgramStore, deps.WorkoutStore, deps.CompetitionStore)
	if err != nil {
		return EventListPage{}, err
	}

	filtered := event.FilterAndSort(events, query.Theme, query.Order)

	info, err := listutil.Paginate(len(filtered), query.PerPage, query.Page)
	if err != nil {
		return EventListPage{}, err
	}
	lo, hi := info.PageBounds()

	return EventListPage{Events: filtered[lo:hi], PageInfo: info}, nil
}
