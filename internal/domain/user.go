package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. PasswordHash is an opaque bcrypt
// digest; the raw password never survives registration.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session maps a client-held token to an authenticated user. Sessions have
// no server-side expiry: a row lives until explicit logout deletes it.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}
