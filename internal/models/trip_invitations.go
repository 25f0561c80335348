package models

import (
	"database/sql"
	"time"
)

const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusExpired  = "expired"
)

type TripInvitation struct {
	ID        int            `json:"id,omitempty" db:"id,omitempty"`
	TripID    int            `json:"trip_id,omitempty" db:"trip_id,omitempty"`
	Email     string         `json:"email,omitempty" db:"email,omitempty"`
	Token     string         `json:"-" db:"token,omitempty"`
	Status    string         `json:"status,omitempty" db:"status,omitempty"`
	InvitedBy int            `json:"invited_by,omitempty" db:"invited_by,omitempty"`
	ExpiresAt time.Time      `json:"expires_at,omitempty" db:"expires_at,omitempty"`
	CreatedAt sql.NullString `json:"created_at,omitempty" db:"created_at,omitempty"`
}

// IsExpired is the authoritative expiry check. The stored status is only
// updated lazily, so a row can still read 'pending' after its deadline.
func (i TripInvitation) IsExpired(now time.Time) bool {
	return i.Status == InviteStatusExpired || now.After(i.ExpiresAt)
}
