package api

import (
	"net/http"

	"github.com/creator-tips/internal/models"
	"github.com/creator-tips/internal/validation"
)

// handleSaveUser handles POST /api/users - Merge-save a user profile
func (s *Server) handleSaveUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Address           string `json:"address"`
		Handle            string `json:"handle"`
		Avatar            string `json:"avatar"`
		FID               int64  `json:"fid"`
		NotificationToken string `json:"notificationToken"`
	}

	if err := parseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if req.Address == "" {
		respondError(w, http.StatusBadRequest, "Address required", nil)
		return
	}
	if !validation.IsAddress(req.Address) {
		respondError(w, http.StatusBadRequest, "Invalid address", nil)
		return
	}

	profile := &models.UserProfile{
		Address:           req.Address,
		Handle:            req.Handle,
		Avatar:            req.Avatar,
		FID:               req.FID,
		NotificationToken: req.NotificationToken,
	}

	if err := s.users.Upsert(r.Context(), profile); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save profile", nil)
		return
	}

	// A user with a handle is discoverable as a creator; keep the
	// creator record in sync
	if req.Handle != "" {
		creator := &models.Creator{
			Address: req.Address,
			Handle:  req.Handle,
			Avatar:  req.Avatar,
			FID:     req.FID,
		}
		if err := s.creators.SaveProfile(r.Context(), creator); err != nil {
			status, message, details := mapServiceError(err)
			respondError(w, status, message, details)
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"address": req.Address,
	})
}

// handleGetUser handles GET /api/users - Fetch a user profile by address
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")

	if address == "" {
		respondError(w, http.StatusBadRequest, "Address parameter required", nil)
		return
	}

	user, err := s.users.GetByAddress(r.Context(), address)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch user", nil)
		return
	}

	if user == nil {
		respondError(w, http.StatusNotFound, "User not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
