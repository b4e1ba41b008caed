package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/creator-tips/internal/types"
)

// handleGetNotifications handles GET /api/notifications - Recent
// notifications plus unread count
func (s *Server) handleGetNotifications(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	limit := parseLimit(r, 20)

	if address == "" {
		respondError(w, http.StatusBadRequest, "Address parameter required", nil)
		return
	}

	notifications, unreadCount, err := s.notifications.List(r.Context(), address, limit)
	if err != nil {
		status, message, details := mapServiceError(err)
		respondError(w, status, message, details)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"unreadCount":   unreadCount,
	})
}

// handleSendNotification handles POST /api/notifications/send - Create a
// templated notification for a creator
func (s *Server) handleSendNotification(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CreatorAddress string                 `json:"creatorAddress"`
		Type           types.NotificationType `json:"type"`
		Data           json.RawMessage        `json:"data"`
	}

	if err := parseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if req.CreatorAddress == "" || req.Type == "" {
		respondError(w, http.StatusBadRequest, "Creator address and type required", nil)
		return
	}

	notificationID, err := s.notifications.Send(r.Context(), req.CreatorAddress, req.Type, req.Data)
	if err != nil {
		status, message, details := mapServiceError(err)
		respondError(w, status, message, details)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"notificationId": notificationID,
	})
}

// handleMarkRead handles POST /api/notifications/{id}/read - Mark one
// notification as read
func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if id == "" {
		respondError(w, http.StatusBadRequest, "Notification ID required", nil)
		return
	}

	if err := s.notifications.MarkRead(r.Context(), id); err != nil {
		status, message, details := mapServiceError(err)
		respondError(w, status, message, details)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// handleMarkAllRead handles POST /api/notifications/mark-all-read - Mark
// every unread notification for an address
func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Address string `json:"address"`
	}

	if err := parseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if req.Address == "" {
		respondError(w, http.StatusBadRequest, "Address required", nil)
		return
	}

	if err := s.notifications.MarkAllRead(r.Context(), req.Address); err != nil {
		status, message, details := mapServiceError(err)
		respondError(w, status, message, details)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
