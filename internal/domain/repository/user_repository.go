// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"recipehub/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address (exact match).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateCredential replaces the stored password hash and salt together.
	// This is the only write path that touches either credential column.
	UpdateCredential(ctx context.Context, userID int, hashB64, saltB64 string) error

	// UpdateProfile modifies the mutable profile fields (name, preferences).
	UpdateProfile(ctx context.Context, user *entity.User) error

	// Delete removes the user record entirely.
	Delete(ctx context.Context, id int) error
}
