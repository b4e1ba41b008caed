package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/creator-tips/internal/models"
)

// CreatorRepository handles creator aggregate records
type CreatorRepository struct {
	db *PostgresDB
}

// NewCreatorRepository creates a new creator repository
func NewCreatorRepository(db *PostgresDB) *CreatorRepository {
	return &CreatorRepository{db: db}
}

const creatorColumns = `address, handle, avatar, bio, fid, total_tips,
	tip_count, created_at, updated_at, last_tip_at`

// GetByHandle returns the creator with the given display handle, or
// (nil, nil) when no such creator exists. Absence is not an error.
func (r *CreatorRepository) GetByHandle(ctx context.Context, handle string) (*models.Creator, error) {
	query := fmt.Sprintf(`SELECT %s FROM creators WHERE handle = $1 LIMIT 1`, creatorColumns)

	creator, err := r.scanOne(r.db.Pool().QueryRow(ctx, query, handle))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get creator by handle: %w", err)
	}
	return creator, nil
}

// GetByAddress returns the creator record for a wallet address, or
// (nil, nil) when absent.
func (r *CreatorRepository) GetByAddress(ctx context.Context, address string) (*models.Creator, error) {
	query := fmt.Sprintf(`SELECT %s FROM creators WHERE address = $1`, creatorColumns)

	creator, err := r.scanOne(r.db.Pool().QueryRow(ctx, query, address))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get creator by address: %w", err)
	}
	return creator, nil
}

// Top returns creators ordered by lifetime tips received, descending.
func (r *CreatorRepository) Top(ctx context.Context, limit int) ([]*models.Creator, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM creators
		ORDER BY total_tips DESC
		LIMIT $1
	`, creatorColumns)

	rows, err := r.db.Pool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top creators: %w", err)
	}
	defer rows.Close()

	creators := []*models.Creator{}
	for rows.Next() {
		creator, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan creator: %w", err)
		}
		creators = append(creators, creator)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating creators: %w", err)
	}

	return creators, nil
}

// UpsertProfile merges profile fields into the creator record without
// touching the tip aggregates. Empty incoming fields keep their stored
// values, matching the merge semantics of a profile save.
func (r *CreatorRepository) UpsertProfile(ctx context.Context, creator *models.Creator) error {
	now := time.Now().UTC()

	query := `
		INSERT INTO creators (address, handle, avatar, bio, fid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (address) DO UPDATE SET
			handle = CASE WHEN EXCLUDED.handle <> '' THEN EXCLUDED.handle ELSE creators.handle END,
			avatar = CASE WHEN EXCLUDED.avatar <> '' THEN EXCLUDED.avatar ELSE creators.avatar END,
			bio = CASE WHEN EXCLUDED.bio <> '' THEN EXCLUDED.bio ELSE creators.bio END,
			fid = CASE WHEN EXCLUDED.fid <> 0 THEN EXCLUDED.fid ELSE creators.fid END,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Pool().Exec(ctx, query,
		creator.Address,
		creator.Handle,
		creator.Avatar,
		creator.Bio,
		creator.FID,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert creator profile: %w", err)
	}

	return nil
}

func (r *CreatorRepository) scanOne(row pgx.Row) (*models.Creator, error) {
	var creator models.Creator
	err := row.Scan(
		&creator.Address,
		&creator.Handle,
		&creator.Avatar,
		&creator.Bio,
		&creator.FID,
		&creator.TotalTips,
		&creator.TipCount,
		&creator.CreatedAt,
		&creator.UpdatedAt,
		&creator.LastTipAt,
	)
	if err != nil {
		return nil, err
	}
	creator.CreatedAt = creator.CreatedAt.UTC()
	creator.UpdatedAt = creator.UpdatedAt.UTC()
	if creator.LastTipAt != nil {
		utc := creator.LastTipAt.UTC()
		creator.LastTipAt = &utc
	}
	return &creator, nil
}
