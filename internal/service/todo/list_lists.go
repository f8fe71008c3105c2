package todo

import (
	"context"
	"fmt"

	"github.com/apetrini/todolist-backend/internal/domain"
	"github.com/apetrini/todolist-backend/pkg/ctxutil"
)

// ListLists returns the authenticated user's lists, newest first.
func (s *Service) ListLists(ctx context.Context) ([]*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	lists, err := s.lists.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	return lists, nil
}
