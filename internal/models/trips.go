package models

import "database/sql"

type Trip struct {
	ID          int            `json:"id,omitempty" db:"id,omitempty"`
	Name        string         `json:"name,omitempty" db:"name,omitempty"`
	Description string         `json:"description,omitempty" db:"description,omitempty"`
	Location    string         `json:"location,omitempty" db:"location,omitempty"`
	StartDate   sql.NullString `json:"start_date,omitempty" db:"start_date,omitempty"`
	EndDate     sql.NullString `json:"end_date,omitempty" db:"end_date,omitempty"`
	OwnerID     int            `json:"owner_id,omitempty" db:"owner_id,omitempty"`
	CreatedAt   sql.NullString `json:"created_at,omitempty" db:"created_at,omitempty"`
	UpdatedAt   sql.NullString `json:"updated_at,omitempty" db:"updated_at,omitempty"`
}
