package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apetrini/todolist-backend/internal/domain"
	"github.com/apetrini/todolist-backend/pkg/ctxutil"
)

// Logout destroys the session of the current request. Destroying a session
// that is already gone is not an error, so logout is idempotent.
// Returns ErrUnauthorized if no session is found in context.
func (s *Service) Logout(ctx context.Context) error {
	sessionID, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out",
		slog.String("session_id", sessionID.String()))
	return nil
}
