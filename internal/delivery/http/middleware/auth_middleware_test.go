package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "recipehub/internal/delivery/context"
	"recipehub/internal/domain/entity"
	"recipehub/internal/domain/service"
	mocksrepo "recipehub/internal/mocks/repository"
	mocksservice "recipehub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	signer := mocksservice.NewMockTokenSigner(t)
	tokenRepo := mocksrepo.NewMockTokenRepository(t)
	mw := NewAuthMiddleware(signer, tokenRepo)

	signer.EXPECT().Validate("live-token").Return(&service.TokenClaims{
		UserID:    42,
		Kind:      entity.TokenKindAccess,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	tokenRepo.EXPECT().IsValid(mock.Anything, 42, "live-token").Return(true, nil)

	c, rec := newAuthTestContext(t, "Bearer live-token")

	var gotUserID int
	var gotToken string
	next := func(c echo.Context) error {
		userID, ok := deliverycontext.GetUserID(c)
		require.True(t, ok)
		gotUserID = userID
		gotToken = deliverycontext.GetTokenValue(c)

		return c.NoContent(http.StatusOK)
	}

	err := mw.Authenticate(next)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, gotUserID)
	assert.Equal(t, "live-token", gotToken)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	signer := mocksservice.NewMockTokenSigner(t)
	tokenRepo := mocksrepo.NewMockTokenRepository(t)
	mw := NewAuthMiddleware(signer, tokenRepo)

	c, rec := newAuthTestContext(t, "")

	err := mw.Authenticate(failingNext(t))(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	signer := mocksservice.NewMockTokenSigner(t)
	tokenRepo := mocksrepo.NewMockTokenRepository(t)
	mw := NewAuthMiddleware(signer, tokenRepo)

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := mw.Authenticate(failingNext(t))(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN_FORMAT")
}

func TestAuthMiddleware_Authenticate_BadSignature(t *testing.T) {
	signer := mocksservice.NewMockTokenSigner(t)
	tokenRepo := mocksrepo.NewMockTokenRepository(t)
	mw := NewAuthMiddleware(signer, tokenRepo)

	signer.EXPECT().Validate("tampered").Return(nil, errors.New("invalid token"))

	c, rec := newAuthTestContext(t, "Bearer tampered")

	err := mw.Authenticate(failingNext(t))(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_Authenticate_ResetTokenRejected(t *testing.T) {
	signer := mocksservice.NewMockTokenSigner(t)
	tokenRepo := mocksrepo.NewMockTokenRepository(t)
	mw := NewAuthMiddleware(signer, tokenRepo)

	signer.EXPECT().Validate("reset-token").Return(&service.TokenClaims{
		UserID:    42,
		Kind:      entity.TokenKindPasswordReset,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	c, rec := newAuthTestContext(t, "Bearer reset-token")

	err := mw.Authenticate(failingNext(t))(c)
	require.NoError(t, err)

	// A reset token must never open a session, and the rejection must read
	// the same as any other bad token.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_Authenticate_RevokedToken(t *testing.T) {
	signer := mocksservice.NewMockTokenSigner(t)
	tokenRepo := mocksrepo.NewMockTokenRepository(t)
	mw := NewAuthMiddleware(signer, tokenRepo)

	signer.EXPECT().Validate("revoked").Return(&service.TokenClaims{
		UserID:    42,
		Kind:      entity.TokenKindAccess,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	tokenRepo.EXPECT().IsValid(mock.Anything, 42, "revoked").Return(false, nil)

	c, rec := newAuthTestContext(t, "Bearer revoked")

	err := mw.Authenticate(failingNext(t))(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_Authenticate_StoreFailure(t *testing.T) {
	signer := mocksservice.NewMockTokenSigner(t)
	tokenRepo := mocksrepo.NewMockTokenRepository(t)
	mw := NewAuthMiddleware(signer, tokenRepo)

	signer.EXPECT().Validate("live-token").Return(&service.TokenClaims{
		UserID:    42,
		Kind:      entity.TokenKindAccess,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	tokenRepo.EXPECT().IsValid(mock.Anything, 42, "live-token").Return(false, errors.New("connection refused"))

	c, rec := newAuthTestContext(t, "Bearer live-token")

	err := mw.Authenticate(failingNext(t))(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_CHECK_FAILED")
}

func failingNext(t *testing.T) echo.HandlerFunc {
	t.Helper()

	return func(c echo.Context) error {
		t.Fatal("next handler should not be reached")

		return nil
	}
}
