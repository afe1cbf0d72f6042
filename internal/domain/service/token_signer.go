package service

import (
	"time"

	"recipehub/internal/domain/entity"
)

// SignedToken is the result of issuing a token: the opaque signed value and
// the absolute expiry baked into it.
type SignedToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenClaims is the validated content of a signed token.
type TokenClaims struct {
	UserID    int
	Kind      entity.TokenKind
	ExpiresAt time.Time
}

// TokenSigner defines the interface for creating and validating signed,
// time-bounded tokens carrying a subject claim. The token kind is part of the
// signed claim set so the two kinds are not interchangeable.
type TokenSigner interface {
	// Issue builds a signed token for userID expiring at now+ttl. A
	// non-positive ttl falls back to the configured default lifetime.
	Issue(userID int, kind entity.TokenKind, ttl time.Duration) (*SignedToken, error)

	// Validate verifies signature and expiry and returns the embedded claims.
	// Signature failure and expiry are surfaced uniformly as an invalid-token
	// error; callers treat both as "reject".
	Validate(value string) (*TokenClaims, error)
}
