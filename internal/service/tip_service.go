// Package service implements the application logic between the HTTP
// handlers and the record store.
package service

import (
	"context"

	"github.com/creator-tips/internal/logging"
	"github.com/creator-tips/internal/models"
	"github.com/creator-tips/internal/types"
	"github.com/creator-tips/internal/validation"
)

// TipStore is the persistence surface the tip service needs.
type TipStore interface {
	Save(ctx context.Context, tip *models.Tip) (string, error)
	ListByTipper(ctx context.Context, address string, limit int) ([]*models.Tip, error)
	ListByCreator(ctx context.Context, address string, limit int) ([]*models.Tip, error)
}

// CreatorCacheInvalidator drops cached leaderboards after a write.
type CreatorCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// TipService validates and persists tips.
type TipService struct {
	store TipStore
	cache CreatorCacheInvalidator
	log   *logging.Logger
}

// NewTipService creates a tip service. cache may be nil when no Redis is
// configured.
func NewTipService(store TipStore, cache CreatorCacheInvalidator, log *logging.Logger) *TipService {
	return &TipService{store: store, cache: cache, log: log}
}

// SubmitTipInput carries a fully-assembled candidate tip: tip fields from
// the request body plus tipper identity from the verified auth payload.
type SubmitTipInput struct {
	TipperAddress  string
	TipperHandle   string
	TipperFID      int64
	CreatorAddress string
	CreatorHandle  string
	Amount         float64
	Token          types.Token
	TxHash         string
	Message        string
}

// SubmitTip validates the candidate, persists it with completed status
// and returns the new tip's ID. Validation failures come back as a
// VALIDATION service error carrying every collected field error.
func (s *TipService) SubmitTip(ctx context.Context, input *SubmitTipInput) (string, error) {
	tip := &models.Tip{
		TipperAddress:  input.TipperAddress,
		TipperHandle:   input.TipperHandle,
		TipperFID:      input.TipperFID,
		CreatorAddress: input.CreatorAddress,
		CreatorHandle:  input.CreatorHandle,
		Amount:         input.Amount,
		Token:          input.Token,
		TxHash:         input.TxHash,
		Message:        input.Message,
		Status:         types.TipStatusCompleted,
	}

	if errs := validation.ValidateTip(tip); len(errs) > 0 {
		return "", types.NewValidationError("Invalid tip data", errs)
	}

	id, err := s.store.Save(ctx, tip)
	if err != nil {
		return "", types.NewStorageError("Failed to create tip")
	}

	if s.cache != nil {
		// Leaderboard invalidation is best effort; a stale cache entry
		// expires on its own TTL.
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.WithField("error", err.Error()).Warn("Failed to invalidate top creators cache")
		}
	}

	return id, nil
}

// ListTips returns tips sent by or received by an address, newest first.
// Exactly one of tipper/creator must be non-empty; the handler enforces
// that before calling.
func (s *TipService) ListTips(ctx context.Context, tipper, creator string, limit int) ([]*models.Tip, error) {
	var (
		tips []*models.Tip
		err  error
	)
	if creator != "" {
		tips, err = s.store.ListByCreator(ctx, creator, limit)
	} else {
		tips, err = s.store.ListByTipper(ctx, tipper, limit)
	}
	if err != nil {
		return nil, types.NewStorageError("Failed to fetch tips")
	}
	return tips, nil
}
