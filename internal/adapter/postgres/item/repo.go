// Package item implements the Item repository using PostgreSQL.
package item

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

var itemColumns = []string{"id", "list_id", "text", "done", "created_at"}

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new item into listID with done = false.
func (r *Repo) Create(ctx context.Context, listID uuid.UUID, text string) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := builder.Insert("items").
		Columns(itemColumns...).
		Values(id, listID, text, false, now).
		Suffix("RETURNING id, list_id, text, done, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert item: %w", err)
	}

	created, err := scanItem(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	return created, nil
}

// ListByList returns all items of a list, newest first.
// Returns an empty slice (not nil) when the list has no items.
func (r *Repo) ListByList(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"list_id": listID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

// Toggle flips the done flag in a single statement and returns the updated
// item. The flip and read are one atomic UPDATE, so two concurrent toggles
// serialize at the row lock rather than losing one flip.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) Toggle(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.Update("items").
		Set("done", sq.Expr("NOT done")).
		Where(sq.Eq{"id": itemID}).
		Suffix("RETURNING id, list_id, text, done, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build toggle item: %w", err)
	}

	updated, err := scanItem(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}

	return updated, nil
}

// Delete removes a single item.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) Delete(ctx context.Context, itemID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.Delete("items").
		Where(sq.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete item: %w", err)
	}

	ct, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "item", itemID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

// ListID returns the owning list of an item — the first hop when resolving
// the Item → List → User chain.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) ListID(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.Select("list_id").
		From("items").
		Where(sq.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build item list_id: %w", err)
	}

	var listID uuid.UUID
	if err := querier.QueryRow(ctx, query, args...).Scan(&listID); err != nil {
		return uuid.Nil, postgres.MapError(err, "item", itemID)
	}

	return listID, nil
}

// DeleteByList removes every item of a list. Deleting zero rows is fine (an
// empty list cascades to nothing). Callers wanting atomicity with the list
// delete must run both inside TxManager.RunInTx.
func (r *Repo) DeleteByList(ctx context.Context, listID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.Delete("items").
		Where(sq.Eq{"list_id": listID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete items by list: %w", err)
	}

	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "item", listID)
	}

	return nil
}

// scanItem scans a single item row from pgx.Row.
func scanItem(row pgx.Row) (*domain.Item, error) {
	var it domain.Item
	if err := row.Scan(&it.ID, &it.ListID, &it.Text, &it.Done, &it.CreatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

// scanItems scans all rows into a []*domain.Item slice.
func scanItems(rows pgx.Rows) ([]*domain.Item, error) {
	items := []*domain.Item{}
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.ListID, &it.Text, &it.Done, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
