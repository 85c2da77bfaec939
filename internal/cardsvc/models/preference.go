package models

import "time"

// TablePreference is the persisted visible-column set for one user
// and one named table. Widths stay client-side, only visibility is
// stored.
type TablePreference struct {
	UserId         int64     `json:"user_id"`
	TableName      string    `json:"table_name"`
	VisibleColumns []string  `json:"visible_columns"`
	UpdatedAt      time.Time `json:"updated_at"`
}
