package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// handleTopCreators handles GET /api/creators/top - Leaderboard by tips
// received
func (s *Server) handleTopCreators(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 10)

	creators, err := s.creators.Top(r.Context(), limit)
	if err != nil {
		status, message, details := mapServiceError(err)
		respondError(w, status, message, details)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"creators": creators})
}

// handleGetCreator handles GET /api/creators/{handle} - Creator profile
// by handle
func (s *Server) handleGetCreator(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]

	if handle == "" {
		respondError(w, http.StatusBadRequest, "Handle parameter required", nil)
		return
	}

	creator, err := s.creators.GetByHandle(r.Context(), handle)
	if err != nil {
		status, message, details := mapServiceError(err)
		respondError(w, status, message, details)
		return
	}

	if creator == nil {
		respondError(w, http.StatusNotFound, "Creator not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"creator": creator})
}

// handleDashboard handles GET /api/dashboard - Aggregated stats for a
// creator address
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")

	if address == "" {
		respondError(w, http.StatusBadRequest, "Address parameter required", nil)
		return
	}

	stats, err := s.creators.Dashboard(r.Context(), address)
	if err != nil {
		status, message, details := mapServiceError(err)
		respondError(w, status, message, details)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"stats": stats})
}
