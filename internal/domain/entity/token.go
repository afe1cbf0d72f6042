// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind distinguishes what an issued token may be used for. The kind is
// also embedded in the signed claim set, so a reset token can never be replayed
// as an access token even by a caller that ignores the stored record.
type TokenKind string

const (
	// TokenKindAccess marks a session access token issued at login.
	TokenKindAccess TokenKind = "access"

	// TokenKindPasswordReset marks a single-use token issued for the
	// password-reset flow.
	TokenKindPasswordReset TokenKind = "password-reset"
)

// Valid reports whether the kind is one of the known token kinds.
func (k TokenKind) Valid() bool {
	return k == TokenKindAccess || k == TokenKindPasswordReset
}

// IssuedToken represents a signed token handed out to a user, persisted so that
// it can later be checked for validity and irreversibly invalidated.
//
// Lifecycle: created at issuance (login or reset-link generation); the only
// permitted mutation is flipping Invalidated from false to true. Records are
// never deleted here; retention is an operational concern.
type IssuedToken struct {
	ID          uuid.UUID // The unique ID for this specific token record.
	UserID      int       // Links this token to the User it was issued for.
	Value       string    // The opaque signed token string (a compact JWT).
	Kind        TokenKind // What the token may be used for.
	ExpiresAt   time.Time // The exact time this token stops being accepted.
	Invalidated bool      // True once the token has been logged out or consumed.
	CreatedAt   time.Time // Timestamp of issuance.
}
