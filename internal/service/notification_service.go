package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/creator-tips/internal/logging"
	"github.com/creator-tips/internal/models"
	"github.com/creator-tips/internal/types"
)

// NotificationStore is the persistence surface the notification service
// needs.
type NotificationStore interface {
	Save(ctx context.Context, n *models.Notification) (string, error)
	ListByRecipient(ctx context.Context, address string, limit int) ([]*models.Notification, error)
	CountUnread(ctx context.Context, address string) (int64, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkAllRead(ctx context.Context, address string) (int64, error)
}

// NotificationService creates templated notifications and serves read
// state transitions.
type NotificationService struct {
	store NotificationStore
	log   *logging.Logger
}

// NewNotificationService creates a notification service.
func NewNotificationService(store NotificationStore, log *logging.Logger) *NotificationService {
	return &NotificationService{store: store, log: log}
}

// Send renders the template for the event type, persists the
// notification and returns its ID. Unknown types fall through to a
// generic template rather than failing; the raw payload is stored
// alongside for the client.
func (s *NotificationService) Send(ctx context.Context, recipient string, eventType types.NotificationType, data json.RawMessage) (string, error) {
	title, body := renderTemplate(eventType, data)

	id, err := s.store.Save(ctx, &models.Notification{
		RecipientAddress: recipient,
		Type:             eventType,
		Title:            title,
		Body:             body,
		Data:             data,
	})
	if err != nil {
		return "", types.NewStorageError("Failed to send notification")
	}

	s.log.WithFields(map[string]interface{}{
		"recipient": recipient,
		"type":      string(eventType),
	}).Debug("Notification created")

	return id, nil
}

// List returns recent notifications for an address together with the
// unread count.
func (s *NotificationService) List(ctx context.Context, address string, limit int) ([]*models.Notification, int64, error) {
	notifications, err := s.store.ListByRecipient(ctx, address, limit)
	if err != nil {
		return nil, 0, types.NewStorageError("Failed to fetch notifications")
	}

	unread, err := s.store.CountUnread(ctx, address)
	if err != nil {
		return nil, 0, types.NewStorageError("Failed to fetch notifications")
	}

	return notifications, unread, nil
}

// MarkRead transitions one notification to read. Idempotent; returns a
// NOT_FOUND error when the ID does not exist.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	found, err := s.store.MarkRead(ctx, id)
	if err != nil {
		return types.NewStorageError("Failed to mark notification as read")
	}
	if !found {
		return types.NewNotFoundError("Notification not found")
	}
	return nil
}

// MarkAllRead transitions every unread notification for an address.
func (s *NotificationService) MarkAllRead(ctx context.Context, address string) error {
	if _, err := s.store.MarkAllRead(ctx, address); err != nil {
		return types.NewStorageError("Failed to mark all notifications as read")
	}
	return nil
}

// renderTemplate selects title and body for an event. Total over the
// type set: anything unrecognized gets the generic notification.
func renderTemplate(eventType types.NotificationType, data json.RawMessage) (title, body string) {
	switch eventType {
	case types.NotificationTipReceived:
		var d models.TipReceivedData
		decodeData(data, &d)
		return "💰 New tip received!", tipReceivedBody(&d)

	case types.NotificationMilestone:
		var d models.MilestoneData
		decodeData(data, &d)
		if d.Message != "" {
			return "🎉 Milestone reached!", d.Message
		}
		return "🎉 Milestone reached!", "You've reached a new milestone!"

	case types.NotificationNewFollower:
		var d models.FollowerData
		decodeData(data, &d)
		handle := d.FollowerHandle
		if handle == "" {
			handle = "Someone"
		}
		return "👋 New follower!", fmt.Sprintf("%s started following you!", handle)

	default:
		return "🔔 New notification", "You have a new notification"
	}
}

func tipReceivedBody(d *models.TipReceivedData) string {
	handle := d.TipperHandle
	if handle == "" {
		handle = "Anonymous"
	}
	body := fmt.Sprintf("You received %v %s from %s", d.Amount, d.Token, handle)
	if d.Message != "" {
		body += fmt.Sprintf(": %q", d.Message)
	}
	return body
}

// decodeData tolerates absent or malformed payloads; templates render
// their fallbacks from zero values.
func decodeData(data json.RawMessage, dest interface{}) {
	if len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, dest)
}
