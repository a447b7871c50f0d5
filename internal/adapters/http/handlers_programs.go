package web

import (
	"net/http"
	"strings"
	"time"

	"stride/internal/adapters/http/middleware"
	"stride/internal/application/orchestrators"
	"stride/internal/application/projections"
	athleteDomain "stride/internal/domain/athlete"
	competitionDomain "stride/internal/domain/competition"
	programDomain "stride/internal/domain/program"
	workoutDomain "stride/internal/domain/workout"
)

// handlePrograms handles GET (list) and POST (create) on /api/programs.
func handlePrograms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case "GET":
		if !middleware.IsCoachOrAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		var programs []programDomain.Program
		var err error
		if middleware.IsAdmin(ctx) {
			programs, err = stores.ProgramStore.ListAll(ctx)
		} else {
			programs, err = stores.ProgramStore.ListByCreator(ctx, sess.AccountID)
		}
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"programs": programs})

	case "POST":
		if !middleware.IsCoachOrAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Weeks       int    `json:"weeks"`
			StartDate   string `json:"startDate"` // YYYY-MM-DD, must be a Monday
		}
		if err := strictDecode(r, &req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			http.Error(w, "startDate must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		p, err := orchestrators.ExecuteCreateProgram(ctx, orchestrators.CreateProgramInput{
			Name:        req.Name,
			Description: req.Description,
			Weeks:       req.Weeks,
			StartDate:   start,
			CreatedBy:   sess.AccountID,
		}, orchestrators.CreateProgramDeps{
			ProgramStore: stores.ProgramStore,
			GenerateID:   generateID,
			Now:          timeNow,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, p)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleProgramOverview handles GET /api/programs/{id}/overview.
func handleProgramOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !middleware.IsCoachOrAdmin(ctx) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	programID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/programs/"), "/overview")
	if programID == "" {
		http.Error(w, "program ID required", http.StatusBadRequest)
		return
	}

	ov, err := projections.QueryGetProgramOverview(ctx, projections.ProgramOverviewQuery{ProgramID: programID}, projections.ProgramOverviewDeps{
		ProgramStore:     stores.ProgramStore,
		WorkoutStore:     stores.WorkoutStore,
		CompetitionStore: stores.CompetitionStore,
		AthleteStore:     stores.AthleteStore,
	})
	if err != nil {
		http.Error(w, "program not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}

// handleProgramShares handles POST (grant) and DELETE (revoke) on
// /api/programs/{id}/shares.
func handleProgramShares(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if !middleware.IsCoachOrAdmin(ctx) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	programID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/programs/"), "/shares")
	if programID == "" {
		http.Error(w, "program ID required", http.StatusBadRequest)
		return
	}

	var req struct {
		AthleteID string `json:"athleteId"`
	}
	if err := strictDecode(r, &req); err != nil || req.AthleteID == "" {
		http.Error(w, "athleteId required", http.StatusBadRequest)
		return
	}

	deps := orchestrators.ShareProgramDeps{
		ProgramStore: stores.ProgramStore,
		AthleteStore: stores.AthleteStore,
		EmailSender:  emailSender,
		FromAddress:  emailFromAddress,
		BaseURL:      baseURL,
		GenerateID:   generateID,
		Now:          timeNow,
	}
	input := orchestrators.ShareProgramInput{
		ProgramID: programID,
		AthleteID: req.AthleteID,
		GrantedBy: sess.AccountID,
	}

	switch r.Method {
	case "POST":
		sh, err := orchestrators.ExecuteShareProgram(ctx, input, deps)
		if err != nil {
			if err == orchestrators.ErrNotProgramOwner {
				http.Error(w, err.Error(), http.StatusForbidden)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, sh)

	case "DELETE":
		if err := orchestrators.ExecuteRevokeShare(ctx, input, deps); err != nil {
			if err == orchestrators.ErrNotProgramOwner {
				http.Error(w, err.Error(), http.StatusForbidden)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleWorkouts handles POST (create/update) on /api/workouts.
func handleWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if !middleware.IsCoachOrAdmin(ctx) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID          string `json:"id"` // empty for create
		ProgramID   string `json:"programId"`
		Title       string `json:"title"`
		Date        string `json:"date"` // YYYY-MM-DD
		Time        string `json:"time"` // optional HH:MM
		Theme       string `json:"theme"`
		Description string `json:"description"`
		Details     string `json:"details"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := stores.ProgramStore.GetByID(ctx, req.ProgramID)
	if err != nil {
		http.Error(w, "program not found", http.StatusNotFound)
		return
	}
	if p.CreatedBy != sess.AccountID && !middleware.IsAdmin(ctx) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	wk := workoutDomain.Workout{
		ID:          req.ID,
		ProgramID:   req.ProgramID,
		Title:       req.Title,
		Date:        date,
		Time:        req.Time,
		Theme:       req.Theme,
		Description: req.Description,
		Details:     req.Details,
		CreatedAt:   timeNow(),
	}
	if wk.ID == "" {
		wk.ID = generateID()
	}
	if err := wk.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := stores.WorkoutStore.Save(ctx, wk); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wk)
}

// handleWorkoutByID handles GET and DELETE on /api/workouts/{id}.
func handleWorkoutByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := middleware.GetSessionFromContext(ctx); !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/workouts/")
	if id == "" {
		http.Error(w, "workout ID required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case "GET":
		wk, err := stores.WorkoutStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"workout":         wk,
			"descriptionHtml": renderMarkdown(wk.Description),
		})

	case "DELETE":
		if !middleware.IsCoachOrAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if err := stores.WorkoutStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleCompetitions handles POST (create/update) on /api/competitions.
func handleCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if !middleware.IsCoachOrAdmin(ctx) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID             string `json:"id"` // empty for create
		ProgramID      string `json:"programId"`
		Name           string `json:"name"`
		Date           string `json:"date"`
		Time           string `json:"time"`
		Location       string `json:"location"`
		DistanceMeters int    `json:"distanceMeters"`
		Level          string `json:"level"`
		IsMain         bool   `json:"isMain"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := stores.ProgramStore.GetByID(ctx, req.ProgramID)
	if err != nil {
		http.Error(w, "program not found", http.StatusNotFound)
		return
	}
	if p.CreatedBy != sess.AccountID && !middleware.IsAdmin(ctx) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	c := competitionDomain.Competition{
		ID:             req.ID,
		ProgramID:      req.ProgramID,
		Name:           req.Name,
		Date:           date,
		Time:           req.Time,
		Location:       req.Location,
		DistanceMeters: req.DistanceMeters,
		Level:          req.Level,
		IsMain:         req.IsMain,
		CreatedAt:      timeNow(),
	}
	if c.ID == "" {
		c.ID = generateID()
	}
	if err := c.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := stores.CompetitionStore.Save(ctx, c); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// handleProgramByID handles GET, PUT and DELETE on /api/programs/{id}.
func handleProgramByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if !middleware.IsCoachOrAdmin(ctx) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/programs/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	p, err := stores.ProgramStore.GetByID(ctx, id)
	if err != nil {
		http.Error(w, "program not found", http.StatusNotFound)
		return
	}
	if p.CreatedBy != sess.AccountID && !middleware.IsAdmin(ctx) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	switch r.Method {
	case "GET":
		writeJSON(w, http.StatusOK, p)

	case "PUT":
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Weeks       int    `json:"weeks"`
			StartDate   string `json:"startDate"`
		}
		if err := strictDecode(r, &req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			http.Error(w, "startDate must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		p.Name = req.Name
		p.Description = req.Description
		p.Weeks = req.Weeks
		p.StartDate = start
		if err := p.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.ProgramStore.Save(ctx, p); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	case "DELETE":
		if err := stores.ProgramStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleCompetitionByID handles GET and DELETE on /api/competitions/{id}.
func handleCompetitionByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := middleware.GetSessionFromContext(ctx); !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/competitions/")
	if id == "" {
		http.Error(w, "competition ID required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case "GET":
		c, err := stores.CompetitionStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "competition not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, c)

	case "DELETE":
		if !middleware.IsCoachOrAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if err := stores.CompetitionStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleAthletes handles GET (roster) and POST (create profile) on /api/athletes.
// Profiles are created without a login account; the athlete's account is
// linked separately when they get credentials.
func handleAthletes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if !middleware.IsCoachOrAdmin(ctx) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	switch r.Method {
	case "GET":
		roster, err := stores.AthleteStore.ListByCoach(ctx, sess.AccountID)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"athletes": roster})

	case "POST":
		var req struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Level string `json:"level"`
		}
		if err := strictDecode(r, &req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		a := athleteDomain.Athlete{
			ID:      generateID(),
			CoachID: sess.AccountID,
			Name:    req.Name,
			Email:   req.Email,
			Level:   req.Level,
		}
		if err := a.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.AthleteStore.Save(ctx, a); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, a)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
