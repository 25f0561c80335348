package models

import "database/sql"

// NullString wraps a value for a nullable column, empty meaning NULL.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
