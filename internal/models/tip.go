package models

import (
	"time"

	"github.com/creator-tips/internal/types"
)

// Tip represents a single completed tip from a supporter to a creator.
// Tips are written once and never mutated or deleted.
type Tip struct {
	ID             string          `json:"id"`
	TipperAddress  string          `json:"tipperAddress"`
	TipperHandle   string          `json:"tipperHandle,omitempty"`
	TipperFID      int64           `json:"tipperFid,omitempty"`
	CreatorAddress string          `json:"creatorAddress"`
	CreatorHandle  string          `json:"creatorHandle,omitempty"`
	Amount         float64         `json:"amount"`
	Token          types.Token     `json:"token"`
	TxHash         string          `json:"txHash"`
	Message        string          `json:"message,omitempty"`
	Status         types.TipStatus `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
}
