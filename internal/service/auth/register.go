package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/apetrini/todolist-backend/internal/domain"
)

// Register creates a new user with email + password and opens a session.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation. Casing is preserved: emails are
	// matched exactly as registered.
	input.Email = strings.TrimSpace(input.Email)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 3: Create user + session in a transaction.
	// Email uniqueness is enforced by a DB constraint.
	var result *AuthResult

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		newUser := &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
		}

		user, err := s.users.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		result, err = s.establishSession(txCtx, user)
		return err
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", result.User.ID.String()))

	return result, nil
}
