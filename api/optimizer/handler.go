// Package optimizer exposes the optimization operations over HTTP.
package optimizer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eagowl/fleet-optimizer/core/logger"
	"github.com/eagowl/fleet-optimizer/core/model"
	coreopt "github.com/eagowl/fleet-optimizer/core/optimizer"
)

// Engine is the subset of the optimization engine the handlers call.
type Engine interface {
	Optimize(deliveries []model.DeliveryStop, vehicles []model.Vehicle) coreopt.Outcome
	FuelCheck(v model.Vehicle, routeKm float64) model.FuelReport
}

// NewOptimizeHandler returns the handler for POST /optimize.
func NewOptimizeHandler(eng Engine, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		var req OptimizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		deliveries, vehicles, err := req.Models()
		if err != nil {
			if !errors.Is(err, ErrValidation) {
				log.Warnf("optimize request rejected: %v", err)
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		outcome := eng.Optimize(deliveries, vehicles)
		writeJSON(w, http.StatusOK, outcome)
	})
}

// NewFuelHandler returns the handler for POST /fuel-efficiency.
func NewFuelHandler(eng Engine, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		var req FuelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		vehicle, dist := req.Models()
		writeJSON(w, http.StatusOK, eng.FuelCheck(vehicle, dist))
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
