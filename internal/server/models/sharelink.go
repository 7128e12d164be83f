package models

import "time"

// ShareLink grants anonymous read access to one owner's gallery while
// IsActive holds. Deactivated rows are kept as history.
type ShareLink struct {
	Token     string
	UserID    string
	Label     *string
	IsActive  bool
	CreatedAt time.Time
}
