package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/apetrini/todolist-backend/internal/domain"
)

// Resolve validates a session token and returns the user and session IDs it
// is bound to. The signature alone is not enough: the session row must still
// exist, so a logged-out token resolves to ErrUnauthorized even though its
// signature is valid.
func (s *Service) Resolve(ctx context.Context, token string) (userID, sessionID uuid.UUID, err error) {
	sessionID, userID, err = s.token.Verify(token)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrUnauthorized
	}

	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrUnauthorized
	}
	if sess.UserID != userID {
		return uuid.Nil, uuid.Nil, domain.ErrUnauthorized
	}

	return userID, sessionID, nil
}
