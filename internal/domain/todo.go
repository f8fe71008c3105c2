package domain

import (
	"time"

	"github.com/google/uuid"
)

// List is a named collection of items owned by exactly one user.
// OwnerUserID is immutable after creation; lists are never transferred.
type List struct {
	ID          uuid.UUID
	OwnerUserID uuid.UUID
	Title       string
	CreatedAt   time.Time
}

// Item is a single to-do entry belonging to exactly one list. Its ownership
// chain (Item → List → User) is resolved fresh on every access.
type Item struct {
	ID        uuid.UUID
	ListID    uuid.UUID
	Text      string
	Done      bool
	CreatedAt time.Time
}
