package models

import "time"

// UserProfile represents a wallet-holder's profile, keyed by address.
// Saves merge into the existing record rather than overwrite it.
type UserProfile struct {
	Address           string    `json:"address"`
	Handle            string    `json:"handle,omitempty"`
	Avatar            string    `json:"avatar,omitempty"`
	FID               int64     `json:"fid,omitempty"`
	NotificationToken string    `json:"notificationToken,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
