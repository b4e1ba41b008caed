package service

import (
	"context"

	"github.com/creator-tips/internal/logging"
	"github.com/creator-tips/internal/models"
	"github.com/creator-tips/internal/stats"
	"github.com/creator-tips/internal/types"
)

// CreatorStore is the persistence surface the creator service needs.
type CreatorStore interface {
	GetByHandle(ctx context.Context, handle string) (*models.Creator, error)
	GetByAddress(ctx context.Context, address string) (*models.Creator, error)
	Top(ctx context.Context, limit int) ([]*models.Creator, error)
	UpsertProfile(ctx context.Context, creator *models.Creator) error
}

// CreatorLeaderboardCache caches top-creator lists.
type CreatorLeaderboardCache interface {
	GetTop(ctx context.Context, limit int) ([]*models.Creator, bool, error)
	SetTop(ctx context.Context, limit int, creators []*models.Creator) error
}

// CreatorService serves creator profiles, the leaderboard and dashboard
// aggregation.
type CreatorService struct {
	creators CreatorStore
	tips     TipStore
	cache    CreatorLeaderboardCache
	log      *logging.Logger
}

// NewCreatorService creates a creator service. cache may be nil.
func NewCreatorService(creators CreatorStore, tips TipStore, cache CreatorLeaderboardCache, log *logging.Logger) *CreatorService {
	return &CreatorService{creators: creators, tips: tips, cache: cache, log: log}
}

// GetByHandle returns the creator with the given handle, or (nil, nil)
// when absent.
func (s *CreatorService) GetByHandle(ctx context.Context, handle string) (*models.Creator, error) {
	creator, err := s.creators.GetByHandle(ctx, handle)
	if err != nil {
		return nil, types.NewStorageError("Failed to fetch creator")
	}
	return creator, nil
}

// Top returns the leaderboard of creators by lifetime tips, consulting
// the cache first. Cache failures degrade to a direct store read.
func (s *CreatorService) Top(ctx context.Context, limit int) ([]*models.Creator, error) {
	if s.cache != nil {
		cached, hit, err := s.cache.GetTop(ctx, limit)
		if err != nil {
			s.log.WithField("error", err.Error()).Warn("Top creators cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	creators, err := s.creators.Top(ctx, limit)
	if err != nil {
		return nil, types.NewStorageError("Failed to fetch creators")
	}

	if s.cache != nil {
		if err := s.cache.SetTop(ctx, limit, creators); err != nil {
			s.log.WithField("error", err.Error()).Warn("Top creators cache write failed")
		}
	}

	return creators, nil
}

// Dashboard fetches every tip received by an address and reduces it to
// dashboard statistics.
func (s *CreatorService) Dashboard(ctx context.Context, address string) (*models.DashboardStats, error) {
	tips, err := s.tips.ListByCreator(ctx, address, 0)
	if err != nil {
		return nil, types.NewStorageError("Failed to fetch dashboard stats")
	}
	return stats.Compute(tips), nil
}

// SaveProfile merges a profile save into the creator record without
// touching tip aggregates. Called with handler-validated input.
func (s *CreatorService) SaveProfile(ctx context.Context, creator *models.Creator) error {
	if err := s.creators.UpsertProfile(ctx, creator); err != nil {
		return types.NewStorageError("Failed to save profile")
	}
	return nil
}
