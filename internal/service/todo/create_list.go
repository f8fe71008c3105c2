package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/apetrini/todolist-backend/internal/domain"
	"github.com/apetrini/todolist-backend/pkg/ctxutil"
)

// CreateList creates a new list owned by the authenticated user.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.lists.Create(ctx, userID, strings.TrimSpace(input.Title))
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}

	s.log.InfoContext(ctx, "list created",
		slog.String("user_id", userID.String()),
		slog.String("list_id", list.ID.String()),
	)

	return list, nil
}
