package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apetrini/todolist-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a throwaway password hash and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$04$notaverifiablehashbutirrelevanthere",
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedList inserts a list owned by ownerID and returns it.
func SeedList(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, title string) domain.List {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	list := domain.List{
		ID:          uuid.New(),
		OwnerUserID: ownerID,
		Title:       title,
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO lists (id, owner_user_id, title, created_at)
		 VALUES ($1, $2, $3, $4)`,
		list.ID, list.OwnerUserID, list.Title, list.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedList insert: %v", err)
	}

	return list
}

// SeedItem inserts an item into listID and returns it.
func SeedItem(t *testing.T, pool *pgxpool.Pool, listID uuid.UUID, text string, done bool) domain.Item {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.Item{
		ID:        uuid.New(),
		ListID:    listID,
		Text:      text,
		Done:      done,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO items (id, list_id, text, done, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.ListID, item.Text, item.Done, item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}
