package api

import (
	"net/http"
	"strconv"

	"github.com/creator-tips/internal/auth"
	"github.com/creator-tips/internal/service"
	"github.com/creator-tips/internal/types"
	"github.com/creator-tips/internal/validation"
)

// handleCreateTip handles POST /api/tips - Record a completed tip
func (s *Server) handleCreateTip(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CreatorAddress string        `json:"creatorAddress"`
		CreatorHandle  string        `json:"creatorHandle"`
		Amount         float64       `json:"amount"`
		Token          types.Token   `json:"token"`
		TxHash         string        `json:"txHash"`
		Message        string        `json:"message"`
		Auth           *auth.Payload `json:"auth"`
	}

	if err := parseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if req.CreatorAddress == "" || req.Amount == 0 || req.Token == "" || req.TxHash == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields", nil)
		return
	}

	if !validation.IsTxHash(req.TxHash) {
		respondError(w, http.StatusBadRequest, "Invalid transaction hash", nil)
		return
	}

	if err := s.verifier.Verify(req.Auth); err != nil {
		status, message, details := mapServiceError(err)
		respondError(w, status, message, details)
		return
	}

	input := &service.SubmitTipInput{
		TipperAddress:  req.Auth.Address,
		TipperHandle:   req.Auth.Handle,
		TipperFID:      req.Auth.FID,
		CreatorAddress: req.CreatorAddress,
		CreatorHandle:  req.CreatorHandle,
		Amount:         req.Amount,
		Token:          req.Token,
		TxHash:         req.TxHash,
		Message:        req.Message,
	}

	tipID, err := s.tips.SubmitTip(r.Context(), input)
	if err != nil {
		status, message, details := mapServiceError(err)
		respondError(w, status, message, details)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"tipId":   tipID,
	})
}

// handleGetTips handles GET /api/tips - List tips sent by or received by
// an address
func (s *Server) handleGetTips(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	creator := r.URL.Query().Get("creator")
	limit := parseLimit(r, 10)

	if address == "" && creator == "" {
		respondError(w, http.StatusBadRequest, "Address or creator parameter required", nil)
		return
	}

	tips, err := s.tips.ListTips(r.Context(), address, creator, limit)
	if err != nil {
		status, message, details := mapServiceError(err)
		respondError(w, status, message, details)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"tips": tips})
}

// parseLimit reads the limit query parameter, falling back to def when
// absent or malformed.
func parseLimit(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}
