// Package fleet exposes read-only fleet and history endpoints.
package fleet

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/eagowl/fleet-optimizer/core/model"
)

const defaultHistoryLimit = 10

// Engine is the subset of the optimization engine the handlers read from.
type Engine interface {
	Recommendations() []model.Recommendation
	History(limit int) ([]model.OptimizationRun, int)
	FleetSize() int
	ActiveRoutes() int
}

// NewRecommendationsHandler returns the handler for GET /recommendations.
func NewRecommendationsHandler(eng Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		recs := eng.Recommendations()
		writeJSON(w, http.StatusOK, map[string]any{
			"recommendations": recs,
			"total_count":     len(recs),
			"timestamp":       time.Now().UTC(),
		})
	})
}

// NewHistoryHandler returns the handler for GET /history. The limit query
// parameter caps the number of entries; non-positive or missing values fall
// back to the default.
func NewHistoryHandler(eng Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "limit must be an integer")
				return
			}
			if n > 0 {
				limit = n
			}
		}
		runs, total := eng.History(limit)
		writeJSON(w, http.StatusOK, map[string]any{
			"history":     runs,
			"total_count": total,
			"showing":     len(runs),
		})
	})
}

// NewHealthHandler returns the handler for GET /health.
func NewHealthHandler(eng Engine, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":              "healthy",
			"timestamp":           time.Now().UTC(),
			"service":             "fleet-optimizer",
			"version":             version,
			"vehicles_registered": eng.FleetSize(),
			"active_routes":       eng.ActiveRoutes(),
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
