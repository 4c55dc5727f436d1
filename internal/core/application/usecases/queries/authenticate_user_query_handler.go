package queries

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/errs"
)

// AuthenticateUserQueryHandler verifies credentials against the users
// table. An unknown username and a wrong password produce the same
// unauthenticated error so callers cannot probe for registered names.
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a handler for authentication queries.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle executes the authentication query.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			email,
			role,
			password_hash
		FROM users
		WHERE username = ?
	`, query.Username()).Rows()
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AuthenticateUserQueryResponse{}, err
		}
		return AuthenticateUserQueryResponse{}, errs.NewUnauthenticatedError("invalid credentials")
	}

	var (
		id           uuid.UUID
		username     string
		email        string
		roleName     string
		passwordHash []byte
	)
	if err = rows.Scan(&id, &username, &email, &roleName, &passwordHash); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	if err = bcrypt.CompareHashAndPassword(passwordHash, []byte(query.Password())); err != nil {
		return AuthenticateUserQueryResponse{}, errs.NewUnauthenticatedError("invalid credentials")
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	role, err := user.RoleFromString(roleName)
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		UserID:   userID,
		Username: username,
		Email:    email,
		Role:     role,
	}, nil
}
