package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apetrini/todolist-backend/internal/domain"
	"github.com/apetrini/todolist-backend/pkg/ctxutil"
)

// DeleteItem removes an item from one of the authenticated user's lists.
func (s *Service) DeleteItem(ctx context.Context, input DeleteItemInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	listID, err := s.authorizeItem(ctx, userID, input.ItemID)
	if err != nil {
		return err
	}

	if err := s.items.Delete(ctx, input.ItemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("user_id", userID.String()),
		slog.String("list_id", listID.String()),
		slog.String("item_id", input.ItemID.String()),
	)

	return nil
}
