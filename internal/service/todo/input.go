package todo

import (
	"strings"

	"github.com/google/uuid"

	"github.com/apetrini/todolist-backend/internal/domain"
)

const maxTextLen = 500

// CreateListInput holds the parameters for creating a list.
type CreateListInput struct {
	Title string
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteListInput holds the parameters for deleting a list.
type DeleteListInput struct {
	ListID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteListInput) Validate() error {
	if i.ListID == uuid.Nil {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "list_id", Message: "required"},
		}}
	}
	return nil
}

// CreateItemInput holds the parameters for adding an item to a list.
type CreateItemInput struct {
	ListID uuid.UUID
	Text   string
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(text) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListItemsInput holds the parameters for listing a list's items.
type ListItemsInput struct {
	ListID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListItemsInput) Validate() error {
	if i.ListID == uuid.Nil {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "list_id", Message: "required"},
		}}
	}
	return nil
}

// ToggleItemInput holds the parameters for toggling an item's done flag.
type ToggleItemInput struct {
	ItemID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ToggleItemInput) Validate() error {
	if i.ItemID == uuid.Nil {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "item_id", Message: "required"},
		}}
	}
	return nil
}

// DeleteItemInput holds the parameters for deleting an item.
type DeleteItemInput struct {
	ItemID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteItemInput) Validate() error {
	if i.ItemID == uuid.Nil {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "item_id", Message: "required"},
		}}
	}
	return nil
}
