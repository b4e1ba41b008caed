package models

import (
	"encoding/json"
	"time"

	"github.com/creator-tips/internal/types"
)

// Notification represents an in-app notification for a creator. The read
// flag transitions false -> true exactly once and never back.
type Notification struct {
	ID               string                 `json:"id"`
	RecipientAddress string                 `json:"recipientAddress"`
	Type             types.NotificationType `json:"type"`
	Title            string                 `json:"title"`
	Body             string                 `json:"body"`
	Data             json.RawMessage        `json:"data,omitempty"`
	Read             bool                   `json:"read"`
	CreatedAt        time.Time              `json:"createdAt"`
	ReadAt           *time.Time             `json:"readAt,omitempty"`
}

// TipReceivedData carries the fields the tip_received template renders.
type TipReceivedData struct {
	Amount       float64     `json:"amount"`
	Token        types.Token `json:"token"`
	TipperHandle string      `json:"tipperHandle,omitempty"`
	Message      string      `json:"message,omitempty"`
	TxHash       string      `json:"txHash,omitempty"`
}

// MilestoneData carries the fields the milestone_reached template renders.
type MilestoneData struct {
	Milestone string `json:"milestone,omitempty"`
	Value     string `json:"value,omitempty"`
	Message   string `json:"message,omitempty"`
}

// FollowerData carries the fields the new_follower template renders.
type FollowerData struct {
	FollowerHandle string `json:"followerHandle,omitempty"`
	FollowerFID    int64  `json:"followerFid,omitempty"`
}
