package web

import (
	"net/http"
	"strings"
)

// registerRoutes attaches all application handlers to the mux.
func registerRoutes(mux *http.ServeMux) {
	// Auth
	mux.HandleFunc("/api/login", handleLogin)
	mux.HandleFunc("/api/logout", handleLogout)
	mux.HandleFunc("/api/session", handleSession)

	// Programs
	mux.HandleFunc("/api/programs", handlePrograms)
	mux.HandleFunc("/api/programs/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/overview"):
			handleProgramOverview(w, r)
		case strings.HasSuffix(r.URL.Path, "/shares"):
			handleProgramShares(w, r)
		default:
			handleProgramByID(w, r)
		}
	})

	// Athletes
	mux.HandleFunc("/api/athletes", handleAthletes)

	// Schedule items
	mux.HandleFunc("/api/workouts", handleWorkouts)
	mux.HandleFunc("/api/workouts/", handleWorkoutByID)
	mux.HandleFunc("/api/competitions", handleCompetitions)
	mux.HandleFunc("/api/competitions/", handleCompetitionByID)

	// Calendar and event list
	mux.HandleFunc("/api/calendar/week", handleCalendarWeek)
	mux.HandleFunc("/api/calendar/day", handleCalendarDay)
	mux.HandleFunc("/api/events", handleEvents)

	// Feedback and themes
	mux.HandleFunc("/api/feedback", handleFeedback)
	mux.HandleFunc("/api/themes", handleThemes)

	// Admin
	mux.HandleFunc("/api/admin/perf", handlePerf)
}
