package models

import "time"

// Artwork is the row half of a stored artwork. StoragePath names exactly one
// blob and is never reused. AgeAtCreation is written once at upload and never
// recomputed. ChildID may point at a child that no longer exists.
type Artwork struct {
	ID            string
	UserID        string
	StoragePath   string
	ShotAtDate    *time.Time
	AgeAtCreation *string
	ChildID       *string
	Memo          *string
	Tags          []string
	CreatedAt     time.Time
}

// ArtworkWithChild is an owner gallery row joined with the child it was
// filed under. ChildName and ChildColor are nil when ChildID is nil or the
// child has been deleted.
type ArtworkWithChild struct {
	Artwork
	ChildName  *string
	ChildColor *string
}
