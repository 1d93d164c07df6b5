package models

import "time"

// User is an identity record. PasswordHash holds the bcrypt digest; the
// plaintext password is never stored.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
