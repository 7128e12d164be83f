// Package models holds the records the client keeps in its local journal.
package models

import "time"

// Session is what survives a client restart after login.
type Session struct {
	Email        string
	RefreshToken string
}

// PendingUpload is an upload whose image is stored on the server while its
// gallery row is not. Retrying it re-commits the row for StoragePath.
type PendingUpload struct {
	ID          int64
	StoragePath string
	ShotAtDate  string
	ChildID     string
	BirthDate   string
	Memo        string
	Tags        []string
	Reason      string
	CreatedAt   time.Time
}
