package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/apetrini/todolist-backend/internal/domain"
)

// Login authenticates a user with email + password and opens a session.
// Returns ErrNotRegistered if the email is unknown and ErrWrongPassword if
// the password does not match; both unwrap to ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.TrimSpace(input.Email)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find user by email
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotRegistered
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	// Step 3: Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrWrongPassword
	}

	// Step 4: Open a session
	result, err := s.establishSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
