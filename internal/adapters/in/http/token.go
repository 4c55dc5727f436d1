package http

import (
	"errors"
	"fmt"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims extends the registered claim set with the principal's role.
// The subject claim carries the user identifier.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the bearer tokens used by the API.
// Tokens are HMAC-signed and carry the user identifier and role.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager signing with the given secret.
func NewTokenManager(secret string, ttl time.Duration) TokenManager {
	return TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token for the given principal.
func (m TokenManager) Issue(principal user.Principal) (string, error) {
	if err := principal.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := tokenClaims{
		Role: principal.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Parse verifies a token string and reconstructs the principal it carries.
// Any verification failure is reported as an authentication error.
func (m TokenManager) Parse(tokenString string) (user.Principal, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return user.Principal{}, errs.NewUnauthenticatedError("invalid or expired token")
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return user.Principal{}, errs.NewUnauthenticatedError("invalid token subject")
	}

	role, err := user.RoleFromString(claims.Role)
	if err != nil {
		return user.Principal{}, errs.NewUnauthenticatedError("invalid token role")
	}

	return user.Principal{ID: id, Role: role}, nil
}
