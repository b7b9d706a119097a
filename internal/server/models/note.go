// Package models defines server-side records persisted in the database.
package models

// Note is a text note owned by exactly one user.
type Note struct {
	ID     int64
	Title  string
	Body   string
	UserID int64
}
