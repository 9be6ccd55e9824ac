// Package userrepo provides data transfer objects and mapping functions for
// account persistence. This package implements the repository pattern for the
// user domain aggregate, handling the conversion between domain entities and
// database representations.
package userrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting account aggregates.
// The unique index on email backs the application-level duplicate check.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"type:varchar(255)"`
	LastName     string    `gorm:"type:varchar(255)"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PhoneNumber  string    `gorm:"type:varchar(64)"`
	Address      string    `gorm:"type:text"`
	IsAdmin      bool      `gorm:"not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for account entities.
// Overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Email:        u.Email(),
		PhoneNumber:  u.PhoneNumber(),
		Address:      u.Address(),
		IsAdmin:      u.IsAdmin(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.PhoneNumber,
		dto.Address,
		dto.IsAdmin,
		dto.PasswordHash,
		dto.CreatedAt,
	)
}
