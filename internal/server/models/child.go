package models

import "time"

// DefaultChildColor is the color tag given to a child created without one.
const DefaultChildColor = "blue"

// Child is a person whose artworks are collected. BirthDate is optional;
// without it no age label can be derived for that child's uploads.
type Child struct {
	ID        string
	UserID    string
	Name      string
	BirthDate *time.Time
	Color     string
	CreatedAt time.Time
}
