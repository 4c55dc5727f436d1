package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/core/domain/services"
	"docflow/internal/pkg/errs"
)

// GetUserQueryHandler reads a single user row from the database.
type GetUserQueryHandler struct {
	db           *gorm.DB
	accessPolicy services.AccessPolicy
}

// NewGetUserQueryHandler creates a handler for user profile queries.
func NewGetUserQueryHandler(db *gorm.DB, accessPolicy services.AccessPolicy) GetUserQueryHandler {
	return GetUserQueryHandler{db: db, accessPolicy: accessPolicy}
}

// Handle executes the query. The caller must be the user in question or
// hold the operator role.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	if err := h.accessPolicy.AuthorizeOwnerOr(query.Principal(), query.UserID(), user.RoleOperator); err != nil {
		return UserResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			email,
			role,
			created_at
		FROM users
		WHERE id = ?
	`, query.UserID().String()).Rows()
	if err != nil {
		return UserResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return UserResponse{}, err
		}
		return UserResponse{}, errs.NewObjectNotFoundError("user", query.UserID())
	}

	var (
		id        uuid.UUID
		username  string
		email     string
		roleName  string
		createdAt time.Time
	)
	if err = rows.Scan(&id, &username, &email, &roleName, &createdAt); err != nil {
		return UserResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserResponse{}, err
	}

	role, err := user.RoleFromString(roleName)
	if err != nil {
		return UserResponse{}, err
	}

	return UserResponse{
		ID:        userID,
		Username:  username,
		Email:     email,
		Role:      role,
		CreatedAt: createdAt,
	}, nil
}
