// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"recipehub/internal/domain/entity"
)

// TokenRepository defines the operations for issued-token persistence.
//
// The store deliberately does not distinguish between "no such token",
// "expired" and "invalidated" in IsValid: all three read as not valid, and the
// caller has no legitimate reason to tell them apart.
type TokenRepository interface {
	// Store appends a freshly issued token record. There is no dedup beyond
	// the uniqueness of the signed value itself.
	Store(ctx context.Context, token *entity.IssuedToken) error

	// IsValid reports whether a non-invalidated, non-expired record exists
	// for the (userID, value) pair.
	IsValid(ctx context.Context, userID int, value string) (bool, error)

	// Invalidate flips the first non-invalidated record with this value to
	// invalidated and reports whether it did so. Unknown or already
	// invalidated values return false, never an error. The transition must be
	// atomic: under concurrent calls at most one of them returns true.
	Invalidate(ctx context.Context, value string) (bool, error)
}
