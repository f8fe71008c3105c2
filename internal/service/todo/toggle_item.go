package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apetrini/todolist-backend/internal/domain"
	"github.com/apetrini/todolist-backend/pkg/ctxutil"
)

// ToggleItem flips the done flag of an item in one of the authenticated
// user's lists and returns the updated item.
func (s *Service) ToggleItem(ctx context.Context, input ToggleItemInput) (*domain.Item, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.authorizeItem(ctx, userID, input.ItemID); err != nil {
		return nil, err
	}

	item, err := s.items.Toggle(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("toggle item: %w", err)
	}

	s.log.InfoContext(ctx, "item toggled",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID.String()),
		slog.Bool("done", item.Done),
	)

	return item, nil
}
