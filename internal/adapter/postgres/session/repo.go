// Package session implements the server-side session store. A session row is
// the source of truth for "still logged in": token signatures alone never
// grant access, and deleting the row is what logout means.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/apetrini/todolist-backend/internal/adapter/postgres"
	"github.com/apetrini/todolist-backend/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const sessionColumns = `id, user_id, created_at`

const createSQL = `
INSERT INTO sessions (id, user_id, created_at)
VALUES ($1, $2, $3)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1`

const deleteSQL = `
DELETE FROM sessions
WHERE id = $1`

// Create inserts a new session row for userID.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL, id, userID, now)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}

	return created, nil
}

// GetByID returns a session by primary key.
// Returns domain.ErrNotFound if the session was destroyed (or never existed).
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	s, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}

	return s, nil
}

// Delete destroys a session. Idempotent: deleting an absent session is not
// an error, so a double logout stays harmless.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteSQL, id); err != nil {
		return postgres.MapError(err, "session", id)
	}

	return nil
}

// scanSession scans a single session row from pgx.Row.
func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	if err := row.Scan(&s.ID, &s.UserID, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
