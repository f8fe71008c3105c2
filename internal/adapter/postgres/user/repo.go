// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/apetrini/todolist-backend/internal/adapter/postgres"
	"github.com/apetrini/todolist-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, password_hash, created_at`

const createSQL = `
INSERT INTO users (id, email, password_hash, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + userColumns

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

// Create inserts a new user and returns the persisted domain.User.
// A unique index on email turns concurrent duplicate registrations into
// domain.ErrAlreadyExists rather than a crash.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := u.CreatedAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL, u.ID, u.Email, u.PasswordHash, createdAt)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return created, nil
}

// GetByEmail returns a user by exact (case-sensitive) email match.
// Returns domain.ErrNotFound if no user has that email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByEmailSQL, email)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// scanUser scans a single user row from pgx.Row.
func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
