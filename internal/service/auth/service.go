package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/apetrini/todolist-backend/internal/config"
	"github.com/apetrini/todolist-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// sessionRepo defines the session repository interface needed by auth service.
type sessionRepo interface {
	Create(ctx context.Context, userID uuid.UUID) (*domain.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// tokenManager defines the session token signing interface needed by auth service.
type tokenManager interface {
	Sign(sessionID, userID uuid.UUID) (string, error)
	Verify(token string) (sessionID, userID uuid.UUID, err error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionRepo
	token    tokenManager
	tx       txManager
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	token tokenManager,
	tx txManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		token:    token,
		tx:       tx,
		cfg:      cfg,
	}
}

// establishSession creates a session row for the user and signs a token
// bound to it. The token is only valid while the row exists.
func (s *Service) establishSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.token.Sign(sess.ID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &AuthResult{
		Token: token,
		User:  user,
	}, nil
}
