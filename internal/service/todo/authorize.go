package todo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/apetrini/todolist-backend/internal/domain"
)

// authorizeList checks that the list exists and belongs to userID.
// Ownership is looked up fresh on every call rather than trusted from the
// request. A missing list is ErrNotFound; someone else's list is ErrForbidden.
func (s *Service) authorizeList(ctx context.Context, userID, listID uuid.UUID) error {
	ownerID, err := s.lists.OwnerID(ctx, listID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("list %s: %w", listID, domain.ErrNotFound)
		}
		return fmt.Errorf("get list owner: %w", err)
	}
	if ownerID != userID {
		return fmt.Errorf("list %s: %w", listID, domain.ErrForbidden)
	}
	return nil
}

// authorizeItem checks that the item exists and its list belongs to userID.
// Returns the item's list ID on success.
func (s *Service) authorizeItem(ctx context.Context, userID, itemID uuid.UUID) (uuid.UUID, error) {
	listID, err := s.items.ListID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("get item list: %w", err)
	}
	if err := s.authorizeList(ctx, userID, listID); err != nil {
		return uuid.Nil, err
	}
	return listID, nil
}
