package models

import "database/sql"

type TripMember struct {
	ID      int            `json:"id,omitempty" db:"id,omitempty"`
	TripID  int            `json:"trip_id,omitempty" db:"trip_id,omitempty"`
	UserID  int            `json:"user_id,omitempty" db:"user_id,omitempty"`
	AddedAt sql.NullString `json:"added_at,omitempty" db:"added_at,omitempty"`
}
