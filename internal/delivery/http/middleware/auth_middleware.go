package middleware

import (
	"net/http"
	"strings"

	deliverycontext "recipehub/internal/delivery/context"
	"recipehub/internal/delivery/http/response"
	"recipehub/internal/domain/entity"
	"recipehub/internal/domain/repository"
	"recipehub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for session-token authentication.
// A request passes only if its bearer token carries a valid signature, is of
// the access kind, and still has a live record in the token store. The three
// checks fail with the same message so a caller cannot probe which one tripped.
type AuthMiddleware struct {
	signer    service.TokenSigner
	tokenRepo repository.TokenRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(signer service.TokenSigner, tokenRepo repository.TokenRepository) *AuthMiddleware {
	return &AuthMiddleware{signer: signer, tokenRepo: tokenRepo}
}

// Authenticate is the core middleware function that validates the session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.signer.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		if claims.Kind != entity.TokenKindAccess {
			// A password-reset token is never a session.
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		valid, err := m.tokenRepo.IsValid(c.Request().Context(), claims.UserID, tokenString)
		if err != nil {
			return response.Error(c, http.StatusInternalServerError, "TOKEN_CHECK_FAILED", "Failed to verify token", "")
		}
		if !valid {
			// Logged out, expired or unknown: all read the same.
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		deliverycontext.SetUserID(c, claims.UserID)
		deliverycontext.SetTokenValue(c, tokenString)

		return next(c)
	}
}
