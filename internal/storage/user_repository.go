package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/creator-tips/internal/models"
)

// UserRepository handles user profile persistence
type UserRepository struct {
	db *PostgresDB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *PostgresDB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert merges the given profile into the stored record. Empty incoming
// fields keep their stored values; saves never overwrite a populated
// field with a blank one.
func (r *UserRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	now := time.Now().UTC()

	query := `
		INSERT INTO users (address, handle, avatar, fid, notification_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (address) DO UPDATE SET
			handle = CASE WHEN EXCLUDED.handle <> '' THEN EXCLUDED.handle ELSE users.handle END,
			avatar = CASE WHEN EXCLUDED.avatar <> '' THEN EXCLUDED.avatar ELSE users.avatar END,
			fid = CASE WHEN EXCLUDED.fid <> 0 THEN EXCLUDED.fid ELSE users.fid END,
			notification_token = CASE WHEN EXCLUDED.notification_token <> '' THEN EXCLUDED.notification_token ELSE users.notification_token END,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Pool().Exec(ctx, query,
		profile.Address,
		profile.Handle,
		profile.Avatar,
		profile.FID,
		profile.NotificationToken,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user profile: %w", err)
	}

	return nil
}

// GetByAddress returns the profile for a wallet address, or (nil, nil)
// when absent.
func (r *UserRepository) GetByAddress(ctx context.Context, address string) (*models.UserProfile, error) {
	query := `
		SELECT address, handle, avatar, fid, notification_token, created_at, updated_at
		FROM users
		WHERE address = $1
	`

	var profile models.UserProfile
	err := r.db.Pool().QueryRow(ctx, query, address).Scan(
		&profile.Address,
		&profile.Handle,
		&profile.Avatar,
		&profile.FID,
		&profile.NotificationToken,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	profile.CreatedAt = profile.CreatedAt.UTC()
	profile.UpdatedAt = profile.UpdatedAt.UTC()
	return &profile, nil
}
