package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/apetrini/todolist-backend/internal/domain"
	"github.com/apetrini/todolist-backend/pkg/ctxutil"
)

// CreateItem adds a new item to one of the authenticated user's lists.
// New items always start not done.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
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

	item, err := s.items.Create(ctx, input.ListID, strings.TrimSpace(input.Text))
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("user_id", userID.String()),
		slog.String("list_id", input.ListID.String()),
		slog.String("item_id", item.ID.String()),
	)

	return item, nil
}
