package todo

import (
	"context"
	"fmt"

	"github.com/apetrini/todolist-backend/internal/domain"
	"github.com/apetrini/todolist-backend/pkg/ctxutil"
)

// ListItems returns the items of one of the authenticated user's lists,
// newest first.
func (s *Service) ListItems(ctx context.Context, input ListItemsInput) ([]*domain.Item, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.authorizeList(ctx, userID, input.ListID); err != nil {
		return nil, err
	}

	items, err := s.items.ListByList(ctx, input.ListID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}
