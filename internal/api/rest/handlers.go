package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fortuna/depthsheets/internal/batch"
	"github.com/fortuna/depthsheets/internal/bundle"
	"github.com/fortuna/depthsheets/internal/depth"
	"github.com/fortuna/depthsheets/internal/service"
	"github.com/fortuna/depthsheets/internal/store"
	"github.com/fortuna/depthsheets/internal/teams"
	"github.com/gorilla/mux"
)

// Sheets is the part of the sheet service the API exposes
type Sheets interface {
	Schedule(ctx context.Context, seasonType store.SeasonType, week int) ([]store.GameRecord, error)
	Depth(ctx context.Context, code string) (teams.Team, depth.OffenseDepth, error)
	Generate(ctx context.Context, req service.Request, reporter batch.Reporter) (*service.Result, error)
	RecentRuns(ctx context.Context, limit int) ([]*store.Run, error)
	Run(ctx context.Context, runID string) (*store.Run, error)
}

// HealthChecker is a backend that can report its own health
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	sheets     Sheets
	seasonYear int
	checks     map[string]HealthChecker
}

// NewHandler creates a new handler. checks names the configured backends
// reported by /health and may be nil.
func NewHandler(sheets Sheets, seasonYear int, checks map[string]HealthChecker) *Handler {
	return &Handler{
		sheets:     sheets,
		seasonYear: seasonYear,
		checks:     checks,
	}
}

// HealthCheck reports the service and each configured backend. Any failing
// backend turns the response into a 503.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	backends := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check.HealthCheck(r.Context()); err != nil {
			backends[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		backends[name] = "ok"
	}

	state := "healthy"
	if status != http.StatusOK {
		state = "degraded"
	}

	respondJSON(w, status, map[string]interface{}{
		"status":   state,
		"service":  "depthsheets",
		"backends": backends,
	})
}

// GetSchedule returns the scraped games for one week
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	seasonType, week, err := parseWeek(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid week selection", err)
		return
	}

	games, err := h.sheets.Schedule(r.Context(), seasonType, week)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch schedule", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"season_type": seasonType,
		"week":        week,
		"games":       games,
	})
}

// GetTeams returns the team table
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, teams.All())
}

// GetTeamDepth returns the current offense depth chart for one team
func (h *Handler) GetTeamDepth(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if _, ok := teams.Lookup(code); !ok {
		respondError(w, http.StatusNotFound, "Team not found", fmt.Errorf("unknown team %q", code))
		return
	}

	team, offense, err := h.sheets.Depth(r.Context(), code)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch depth chart", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"team":    team,
		"offense": offense,
	})
}

// DownloadSheets generates one week of sheets and returns them as a zip
func (h *Handler) DownloadSheets(w http.ResponseWriter, r *http.Request) {
	seasonType, week, err := parseWeek(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid week selection", err)
		return
	}

	year := h.seasonYear
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = y
	}

	result, err := h.sheets.Generate(r.Context(), service.Request{
		SeasonType: seasonType,
		Week:       week,
		SeasonYear: year,
	}, nil)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to generate sheets", err)
		return
	}

	archive, err := bundle.Zip(result.Documents, time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build archive", err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", bundle.ArchiveName(string(seasonType), week)))
	w.Header().Set("X-Run-ID", result.Run.RunID)
	w.WriteHeader(http.StatusOK)
	w.Write(archive)
}

// GetRuns returns recent generation runs
func (h *Handler) GetRuns(w http.ResponseWriter, r *http.Request) {
	limitStr := r.URL.Query().Get("limit")
	limit := 20 // default
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	runs, err := h.sheets.RecentRuns(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch runs", err)
		return
	}
	if runs == nil {
		runs = []*store.Run{}
	}

	respondJSON(w, http.StatusOK, runs)
}

// GetRun returns one stored run
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID := mux.Vars(r)["id"]

	run, err := h.sheets.Run(r.Context(), runID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Run not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch run", err)
		return
	}

	respondJSON(w, http.StatusOK, run)
}

// parseWeek reads season_type (default "reg") and week from the query string
func parseWeek(r *http.Request) (store.SeasonType, int, error) {
	q := r.URL.Query()

	seasonType, err := store.ParseSeasonType(q.Get("season_type"))
	if err != nil {
		return "", 0, err
	}

	week, err := strconv.Atoi(q.Get("week"))
	if err != nil {
		return "", 0, fmt.Errorf("week must be a number: %w", err)
	}
	if week <= 0 {
		return "", 0, fmt.Errorf("week must be positive, got %d", week)
	}

	return seasonType, week, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
