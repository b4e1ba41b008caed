package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/creator-tips/internal/models"
)

// TipRepository handles tip persistence. Tips are append-only: there is
// no update or delete path.
type TipRepository struct {
	db *PostgresDB
}

// NewTipRepository creates a new tip repository
func NewTipRepository(db *PostgresDB) *TipRepository {
	return &TipRepository{db: db}
}

// Save persists a tip with a server-assigned ID and creation timestamp,
// then bumps the receiving creator's running totals. The two writes are
// intentionally separate statements, not one transaction: the creator
// update uses an atomic SQL increment so concurrent tips to the same
// creator cannot lose counts, and a failure after the tip insert leaves
// stale aggregates rather than corrupt data.
func (r *TipRepository) Save(ctx context.Context, tip *models.Tip) (string, error) {
	tip.ID = uuid.New().String()
	tip.CreatedAt = time.Now().UTC()

	insertTip := `
		INSERT INTO tips (id, tipper_address, tipper_handle, tipper_fid,
			creator_address, creator_handle, amount, token, tx_hash,
			message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Pool().Exec(ctx, insertTip,
		tip.ID,
		tip.TipperAddress,
		tip.TipperHandle,
		tip.TipperFID,
		tip.CreatorAddress,
		tip.CreatorHandle,
		tip.Amount,
		tip.Token,
		tip.TxHash,
		tip.Message,
		tip.Status,
		tip.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save tip: %w", err)
	}

	// Create-or-increment: seed a creator row on first tip, otherwise add
	// to the running totals. total_tips and tip_count only ever grow.
	upsertCreator := `
		INSERT INTO creators (address, handle, total_tips, tip_count, created_at, updated_at, last_tip_at)
		VALUES ($1, $2, $3, 1, $4, $4, $4)
		ON CONFLICT (address) DO UPDATE SET
			total_tips = creators.total_tips + EXCLUDED.total_tips,
			tip_count = creators.tip_count + 1,
			updated_at = EXCLUDED.updated_at,
			last_tip_at = EXCLUDED.last_tip_at
	`

	_, err = r.db.Pool().Exec(ctx, upsertCreator,
		tip.CreatorAddress,
		tip.CreatorHandle,
		tip.Amount,
		tip.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to update creator stats: %w", err)
	}

	return tip.ID, nil
}

const tipColumns = `id, tipper_address, tipper_handle, tipper_fid,
	creator_address, creator_handle, amount, token, tx_hash, message,
	status, created_at`

// ListByTipper returns the most recent tips sent by an address,
// newest first.
func (r *TipRepository) ListByTipper(ctx context.Context, address string, limit int) ([]*models.Tip, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tips
		WHERE tipper_address = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, tipColumns)

	rows, err := r.db.Pool().Query(ctx, query, address, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tips by tipper: %w", err)
	}
	defer rows.Close()

	return scanTips(rows)
}

// ListByCreator returns the most recent tips received by an address,
// newest first. A limit <= 0 returns every tip, which the dashboard
// aggregation relies on.
func (r *TipRepository) ListByCreator(ctx context.Context, address string, limit int) ([]*models.Tip, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tips
		WHERE creator_address = $1
		ORDER BY created_at DESC
	`, tipColumns)

	args := []interface{}{address}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tips by creator: %w", err)
	}
	defer rows.Close()

	return scanTips(rows)
}

func scanTips(rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}) ([]*models.Tip, error) {
	tips := []*models.Tip{}
	for rows.Next() {
		var tip models.Tip
		err := rows.Scan(
			&tip.ID,
			&tip.TipperAddress,
			&tip.TipperHandle,
			&tip.TipperFID,
			&tip.CreatorAddress,
			&tip.CreatorHandle,
			&tip.Amount,
			&tip.Token,
			&tip.TxHash,
			&tip.Message,
			&tip.Status,
			&tip.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tip: %w", err)
		}
		tip.CreatedAt = tip.CreatedAt.UTC()
		tips = append(tips, &tip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tips: %w", err)
	}

	return tips, nil
}
