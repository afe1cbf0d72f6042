// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
)

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// Logout invalidates the given session token and reports whether a live
	// token was actually revoked. Logging out twice is not an error.
	Logout(ctx context.Context, tokenValue string) (bool, error)
}
