package models

import "time"

// ShareLink maps a random opaque token to one owner's content set. A row
// existing for a user means sharing is enabled; revoking deletes the row.
type ShareLink struct {
	UserID    string
	Token     string
	CreatedAt time.Time
}
