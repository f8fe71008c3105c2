package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/apetrini/todolist-backend/pkg/ctxutil"
)

type sessionResolver interface {
	Resolve(ctx context.Context, token string) (userID, sessionID uuid.UUID, err error)
}

// Auth resolves the bearer token into a user and session identity and stores
// both in the request context. Requests without a token pass through
// anonymously; protected handlers reject them further down. A token that does
// not resolve is rejected here with 401.
func Auth(resolver sessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, sessionID, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithSessionID(ctx, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
