package auth

import "github.com/apetrini/todolist-backend/internal/domain"

// AuthResult is returned by Register and Login operations.
type AuthResult struct {
	Token string
	User  *domain.User
}
