package web

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"stride/internal/adapters/http/middleware"
	"stride/internal/application/debounce"
	"stride/internal/application/listutil"
	"stride/internal/application/orchestrators"
	"stride/internal/application/projections"
	"stride/internal/domain/event"
	"stride/internal/domain/theme"
)

// feedbackGuards debounces feedback submissions per athlete. The key passed
// to TryAct is the workout ID, so a double-click on one workout is suppressed
// while feedback on a different workout goes straight through.
var feedbackGuards = struct {
	mu     sync.Mutex
	guards map[string]*debounce.Guard
}{guards: make(map[string]*debounce.Guard)}

// FeedbackCooldown is the per-athlete submission cooldown. Tests can lower it.
var FeedbackCooldown = debounce.DefaultCooldown

func feedbackGuard(athleteID string) *debounce.Guard {
	feedbackGuards.mu.Lock()
	defer feedbackGuards.mu.Unlock()
	g, ok := feedbackGuards.guards[athleteID]
	if !ok {
		g = debounce.NewGuard(FeedbackCooldown, nil)
		feedbackGuards.guards[athleteID] = g
	}
	return g
}

// handleCalendarWeek handles GET /api/calendar/week?anchor=YYYY-MM-DD&delta=N.
func handleCalendarWeek(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	delta, _ := strconv.Atoi(r.URL.Query().Get("delta"))

	cal, err := projections.QueryGetWeekCalendar(ctx, projections.WeekCalendarQuery{
		Viewer:     viewerFromSession(sess),
		Anchor:     parseDateParam(r, "anchor"),
		DeltaWeeks: delta,
	}, projections.WeekCalendarDeps{
		ProgramStore:     stores.ProgramStore,
		WorkoutStore:     stores.WorkoutStore,
		CompetitionStore: stores.CompetitionStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cal)
}

// handleCalendarDay handles GET /api/calendar/day?date=YYYY-MM-DD.
func handleCalendarDay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sheet, err := projections.QueryGetDaySheet(ctx, projections.DaySheetQuery{
		Viewer: viewerFromSession(sess),
		Day:    parseDateParam(r, "date"),
	}, projections.DaySheetDeps{
		ProgramStore:     stores.ProgramStore,
		WorkoutStore:     stores.WorkoutStore,
		CompetitionStore: stores.CompetitionStore,
		FeedbackStore:    stores.FeedbackStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	// Resolve workout descriptions to HTML for the day detail panel.
	descriptions := make(map[string]string, len(sheet.Events))
	for _, e := range sheet.Events {
		if e.IsWorkout() && e.Description != "" {
			descriptions[e.ID] = renderMarkdown(e.Description)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":         sheet.Date.Format("2006-01-02"),
		"events":       sheet.Events,
		"summaries":    sheet.Summaries,
		"descriptions": descriptions,
	})
}

// handleEvents handles GET /api/events?theme=&dir=&page=&per_page=&from=&to=.
func handleEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	pageParams := listutil.ParsePageParams(q)

	order := event.OrderAsc
	if q.Get("dir") == "desc" {
		order = event.OrderDesc
	}

	page, err := projections.QueryGetEventList(ctx, projections.EventListQuery{
		Viewer:  viewerFromSession(sess),
		From:    parseDateParam(r, "from"),
		To:      parseDateParam(r, "to"),
		Theme:   q.Get("theme"),
		Order:   order,
		Page:    pageParams.Page,
		PerPage: pageParams.PerPage,
	}, projections.EventListDeps{
		ProgramStore:     stores.ProgramStore,
		WorkoutStore:     stores.WorkoutStore,
		CompetitionStore: stores.CompetitionStore,
	})
	if err != nil {
		if err == listutil.ErrInvalidPerPage {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// handleFeedback handles POST /api/feedback.
// Submissions are debounced per athlete: a repeat of the same workout inside
// the cooldown (or until a different workout is submitted) is dropped with
// 202 so double-clicks never produce duplicate writes.
func handleFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if sess.AthleteID == "" {
		http.Error(w, "only athletes can submit feedback", http.StatusForbidden)
		return
	}

	var req struct {
		WorkoutID string `json:"workoutId"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
		Completed bool   `json:"completed"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if !feedbackGuard(sess.AthleteID).TryAct(req.WorkoutID) {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	f, err := orchestrators.ExecuteRecordFeedback(ctx, orchestrators.RecordFeedbackInput{
		WorkoutID: req.WorkoutID,
		AthleteID: sess.AthleteID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Completed: req.Completed,
	}, orchestrators.RecordFeedbackDeps{
		WorkoutStore:  stores.WorkoutStore,
		FeedbackStore: stores.FeedbackStore,
		ShareStore:    stores.ProgramStore,
		GenerateID:    generateID,
		Now:           timeNow,
	})
	if err != nil {
		if err == orchestrators.ErrNoProgramAccess {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

// handleThemes handles GET (catalog) and POST (coach-defined entry) on /api/themes.
func handleThemes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := middleware.GetSessionFromContext(ctx); !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case "GET":
		themes, err := stores.ThemeStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"themes": themes})

	case "POST":
		if !middleware.IsCoachOrAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		var req struct {
			Code  string `json:"code"`
			Label string `json:"label"`
			Color string `json:"color"`
		}
		if err := strictDecode(r, &req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		t := theme.Theme{ID: generateID(), Code: req.Code, Label: req.Label, Color: req.Color}
		if err := t.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if _, err := stores.ThemeStore.GetByCode(ctx, t.Code); err == nil {
			http.Error(w, "theme code already exists", http.StatusConflict)
			return
		}
		if err := stores.ThemeStore.Save(ctx, t); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handlePerf handles GET /api/admin/perf, exposing request and query timings.
func handlePerf(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !middleware.IsAdmin(ctx) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if perfCollector == nil {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}

	minutes, _ := strconv.Atoi(r.URL.Query().Get("minutes"))
	if minutes <= 0 {
		minutes = 15
	}
	snap := perfCollector.Snapshot(timeNow().Add(-time.Duration(minutes)*time.Minute), 20)
	writeJSON(w, http.StatusOK, snap)
}
