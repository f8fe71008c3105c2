package auth

import (
	"strings"

	"github.com/apetrini/todolist-backend/internal/domain"
)

const (
	maxEmailLen = 254
	minPassword = 8
	// bcrypt silently ignores everything past 72 bytes, so reject longer input.
	maxPassword = 72
)

// RegisterInput holds parameters for the Register operation.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < minPassword {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > maxPassword {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if i.Password != "" && i.ConfirmPassword != i.Password {
		errs = append(errs, domain.FieldError{Field: "confirm_password", Message: "passwords do not match"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the Login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > maxEmailLen {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	if !strings.Contains(email, "@") {
		return []domain.FieldError{{Field: "email", Message: "invalid email"}}
	}
	return nil
}
