package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/creator-tips/internal/models"
)

// NotificationRepository handles notification persistence. The read flag
// only ever moves from false to true.
type NotificationRepository struct {
	db *PostgresDB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *PostgresDB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Save persists a new unread notification and returns its ID.
func (r *NotificationRepository) Save(ctx context.Context, n *models.Notification) (string, error) {
	n.ID = uuid.New().String()
	n.Read = false
	n.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO notifications (id, recipient_address, type, title, body, data, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)
	`

	var data []byte
	if len(n.Data) > 0 {
		data = n.Data
	}

	_, err := r.db.Pool().Exec(ctx, query,
		n.ID,
		n.RecipientAddress,
		n.Type,
		n.Title,
		n.Body,
		data,
		n.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save notification: %w", err)
	}

	return n.ID, nil
}

// ListByRecipient returns the most recent notifications for an address,
// newest first.
func (r *NotificationRepository) ListByRecipient(ctx context.Context, address string, limit int) ([]*models.Notification, error) {
	query := `
		SELECT id, recipient_address, type, title, body, data, read, created_at, read_at
		FROM notifications
		WHERE recipient_address = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Pool().Query(ctx, query, address, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(
			&n.ID,
			&n.RecipientAddress,
			&n.Type,
			&n.Title,
			&n.Body,
			&n.Data,
			&n.Read,
			&n.CreatedAt,
			&n.ReadAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.CreatedAt = n.CreatedAt.UTC()
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}

// CountUnread returns the number of unread notifications for an address.
func (r *NotificationRepository) CountUnread(ctx context.Context, address string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM notifications WHERE recipient_address = $1 AND read = FALSE`

	if err := r.db.Pool().QueryRow(ctx, query, address).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkRead marks one notification as read. Re-marking an already-read
// notification is a no-op that preserves the original read timestamp.
// Returns false when no notification with the given ID exists.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE notifications
		SET read = TRUE, read_at = COALESCE(read_at, $2)
		WHERE id = $1
	`

	result, err := r.db.Pool().Exec(ctx, query, id, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// MarkAllRead flips every unread notification for an address in a single
// conditional update. Notifications created after the statement's
// snapshot are not included; there is no ordering guarantee against
// concurrent sends.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, address string) (int64, error) {
	query := `
		UPDATE notifications
		SET read = TRUE, read_at = $2
		WHERE recipient_address = $1 AND read = FALSE
	`

	result, err := r.db.Pool().Exec(ctx, query, address, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications read: %w", err)
	}

	return result.RowsAffected(), nil
}
