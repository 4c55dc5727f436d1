// Package userrepo provides data transfer objects and mapping functions for
// user persistence. Username and email uniqueness is enforced at the table
// level and surfaced as duplicate identity errors.
package userrepo

import (
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Role         string    `gorm:"not null"`
	PasswordHash []byte    `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Username:     u.Username(),
		Email:        u.Email(),
		Role:         u.Role().String(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, dto.Email, role, dto.PasswordHash, dto.CreatedAt)
}
