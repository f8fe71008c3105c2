package todo

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/apetrini/todolist-backend/internal/domain"
)

// listRepo defines the list repository interface needed by todo service.
type listRepo interface {
	Create(ctx context.Context, ownerID uuid.UUID, title string) (*domain.List, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.List, error)
	OwnerID(ctx context.Context, listID uuid.UUID) (uuid.UUID, error)
	Delete(ctx context.Context, listID, ownerID uuid.UUID) error
}

// itemRepo defines the item repository interface needed by todo service.
type itemRepo interface {
	Create(ctx context.Context, listID uuid.UUID, text string) (*domain.Item, error)
	ListByList(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error)
	Toggle(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
	ListID(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error)
	DeleteByList(ctx context.Context, listID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by todo service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements to-do list and item operations.
type Service struct {
	log   *slog.Logger
	lists listRepo
	items itemRepo
	tx    txManager
}

// NewService creates a new todo service instance.
func NewService(logger *slog.Logger, lists listRepo, items itemRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "todo"),
		lists: lists,
		items: items,
		tx:    tx,
	}
}
