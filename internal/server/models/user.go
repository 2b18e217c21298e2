// Package models holds the plain data-transfer records exchanged across the
// repository boundary. They carry no storage behavior; repositories translate
// database rows into these types and nothing else escapes the gateway.
package models

import "time"

// User is a chat board account. LoggedInUntil is the server-held session
// window: the Unix epoch means the user has never logged in, and any value
// before the current time means every outstanding session credential for the
// user is revoked regardless of its own expiry.
type User struct {
	ID            int64
	UserName      string
	LoggedInUntil time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// LoggedInAt reports whether the server-held window covers the given instant.
func (u *User) LoggedInAt(t time.Time) bool {
	return !u.LoggedInUntil.Before(t)
}
