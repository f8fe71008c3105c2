// Package auth signs and verifies session tokens. A token is an HS256 JWT
// whose jti is the server-side session row ID and whose sub is the user ID.
// Tokens carry no exp claim: a session ends only when its row is deleted at
// logout, so the signature alone never grants access — resolution must also
// find the row.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager issues and verifies signed session tokens.
type TokenManager struct {
	secret []byte
	issuer string
}

// NewTokenManager creates a TokenManager.
// secret must be at least 32 characters for HS256 security.
func NewTokenManager(secret, issuer string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Sign creates a signed session token for the given session and user.
func (m *TokenManager) Sign(sessionID, userID uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:       sessionID.String(),
		Subject:  userID.String(),
		Issuer:   m.issuer,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a session token.
// Returns the session ID and user ID embedded in it. Verify proves only that
// the token was issued by this server; the caller must still confirm the
// session row exists.
func (m *TokenManager) Verify(tokenString string) (sessionID, userID uuid.UUID, err error) {
	if tokenString == "" {
		return uuid.Nil, uuid.Nil, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	sessionID, err = uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid session ID: %w", err)
	}

	userID, err = uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return sessionID, userID, nil
}
