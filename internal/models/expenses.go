package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID        int             `json:"id,omitempty" db:"id,omitempty"`
	TripID    int             `json:"trip_id,omitempty" db:"trip_id,omitempty"`
	PaidBy    int             `json:"paid_by,omitempty" db:"paid_by,omitempty"`
	Title     string          `json:"title,omitempty" db:"title,omitempty"`
	Amount    decimal.Decimal `json:"amount,omitempty" db:"amount,omitempty"`
	Category  sql.NullString  `json:"category,omitempty" db:"category,omitempty"`
	CreatedAt sql.NullString  `json:"created_at,omitempty" db:"created_at,omitempty"`
}
