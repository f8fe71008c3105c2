// Package list implements the List repository using PostgreSQL. Ownership
// scoping happens here: every owner-sensitive query carries an owner_user_id
// filter, so a list owned by someone else is indistinguishable from a list
// that does not exist.
package list

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/apetrini/todolist-backend/internal/adapter/postgres"
	"github.com/apetrini/todolist-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var listColumns = []string{"id", "owner_user_id", "title", "created_at"}

// Repo provides list persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new list repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new list owned by ownerID and returns the persisted row.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, title string) (*domain.List, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := builder.Insert("lists").
		Columns(listColumns...).
		Values(id, ownerID, title, now).
		Suffix("RETURNING id, owner_user_id, title, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert list: %w", err)
	}

	created, err := scanList(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "list", id)
	}

	return created, nil
}

// ListByOwner returns all lists owned by ownerID, newest first.
// Returns an empty slice (not nil) when the user owns none.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.List, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.Select(listColumns...).
		From("lists").
		Where(sq.Eq{"owner_user_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list by owner: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list by owner: %w", err)
	}
	defer rows.Close()

	lists, err := scanLists(rows)
	if err != nil {
		return nil, fmt.Errorf("list by owner: %w", err)
	}

	return lists, nil
}

// OwnerID returns the owning user of a list. This is the first hop of every
// ownership-chain check; it must read fresh state, never a cached copy.
// Returns domain.ErrNotFound if the list does not exist.
func (r *Repo) OwnerID(ctx context.Context, listID uuid.UUID) (uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.Select("owner_user_id").
		From("lists").
		Where(sq.Eq{"id": listID}).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build list owner: %w", err)
	}

	var ownerID uuid.UUID
	if err := querier.QueryRow(ctx, query, args...).Scan(&ownerID); err != nil {
		return uuid.Nil, postgres.MapError(err, "list", listID)
	}

	return ownerID, nil
}

// Delete removes a list, filtered by owner. A list that exists under a
// different owner deletes zero rows and reports domain.ErrNotFound, which is
// the storage-level enforcement of the ownership invariant.
func (r *Repo) Delete(ctx context.Context, listID, ownerID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.Delete("lists").
		Where(sq.Eq{"id": listID, "owner_user_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete list: %w", err)
	}

	ct, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "list", listID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("list %s: %w", listID, domain.ErrNotFound)
	}

	return nil
}

// scanList scans a single list row from pgx.Row.
func scanList(row pgx.Row) (*domain.List, error) {
	var l domain.List
	if err := row.Scan(&l.ID, &l.OwnerUserID, &l.Title, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

// scanLists scans all rows into a []*domain.List slice.
func scanLists(rows pgx.Rows) ([]*domain.List, error) {
	lists := []*domain.List{}
	for rows.Next() {
		var l domain.List
		if err := rows.Scan(&l.ID, &l.OwnerUserID, &l.Title, &l.CreatedAt); err != nil {
			return nil, err
		}
		lists = append(lists, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lists, nil
}
