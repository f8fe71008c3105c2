package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apetrini/todolist-backend/internal/domain"
	"github.com/apetrini/todolist-backend/pkg/ctxutil"
)

// DeleteList deletes a list owned by the authenticated user together with
// all of its items. The cascade runs in a single transaction so a failure
// never leaves orphaned items or a half-deleted list.
func (s *Service) DeleteList(ctx context.Context, input DeleteListInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.authorizeList(ctx, userID, input.ListID); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.items.DeleteByList(txCtx, input.ListID); err != nil {
			return fmt.Errorf("delete items: %w", err)
		}
		if err := s.lists.Delete(txCtx, input.ListID, userID); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "list deleted",
		slog.String("user_id", userID.String()),
		slog.String("list_id", input.ListID.String()),
	)

	return nil
}
