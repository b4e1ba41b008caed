package models

import "time"

// Creator represents the aggregate record for a tip recipient, keyed by
// wallet address. TotalTips and TipCount only ever grow; both are updated
// with an atomic storage-layer increment on every new tip.
type Creator struct {
	Address   string     `json:"address"`
	Handle    string     `json:"handle,omitempty"`
	Avatar    string     `json:"avatar,omitempty"`
	Bio       string     `json:"bio,omitempty"`
	FID       int64      `json:"fid,omitempty"`
	TotalTips float64    `json:"totalTips"`
	TipCount  int64      `json:"tipCount"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	LastTipAt *time.Time `json:"lastTipAt,omitempty"`
}

// Supporter is one entry in a creator's top-supporter ranking.
type Supporter struct {
	Address     string  `json:"address"`
	Handle      string  `json:"handle"`
	TotalAmount float64 `json:"totalAmount"`
	TipCount    int64   `json:"tipCount"`
}

// DashboardStats summarizes everything a creator sees on their dashboard.
type DashboardStats struct {
	TotalAmount   float64     `json:"totalAmount"`
	TipCount      int64       `json:"tipCount"`
	TopSupporters []Supporter `json:"topSupporters"`
}
