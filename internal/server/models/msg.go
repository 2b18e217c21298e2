package models

import "time"

// Msg is one chat message. Author is hydrated by the gateway on every read;
// AuthorID duplicates Author.ID so ownership checks do not need the full
// record. A non-nil DeletedAt marks a soft-deleted row, which default lookups
// exclude while the row itself is retained.
type Msg struct {
	ID        int64
	Text      string
	AuthorID  int64
	Author    *User
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
