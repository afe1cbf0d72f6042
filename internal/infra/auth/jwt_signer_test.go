package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipehub/config"
	"recipehub/internal/domain/entity"
)

func newTestSignerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.JWT = "test-secret"
	cfg.SecretKey.ExpirationInMinutes = 30
	return cfg
}

func TestNewJWTSigner_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	signer, err := NewJWTSigner(cfg)
	assert.Error(t, err)
	assert.Nil(t, signer)
}

func TestJWTSigner_IssueAndValidate(t *testing.T) {
	signer, err := NewJWTSigner(newTestSignerConfig())
	require.NoError(t, err)

	issued, err := signer.Issue(42, entity.TokenKindAccess, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Value)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 5*time.Second)

	claims, err := signer.Validate(issued.Value)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, entity.TokenKindAccess, claims.Kind)
	assert.WithinDuration(t, issued.ExpiresAt, claims.ExpiresAt, time.Second)
}

func TestJWTSigner_IssueDefaultTTL(t *testing.T) {
	signer, err := NewJWTSigner(newTestSignerConfig())
	require.NoError(t, err)

	issued, err := signer.Issue(7, entity.TokenKindAccess, 0)
	require.NoError(t, err)

	// Configured expiration is 30 minutes.
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), issued.ExpiresAt, 5*time.Second)
}

func TestJWTSigner_IssueUnknownKind(t *testing.T) {
	signer, err := NewJWTSigner(newTestSignerConfig())
	require.NoError(t, err)

	issued, err := signer.Issue(7, entity.TokenKind("refresh"), time.Hour)
	assert.Error(t, err)
	assert.Nil(t, issued)
}

func TestJWTSigner_ValidateRejectsTamperedToken(t *testing.T) {
	signer, err := NewJWTSigner(newTestSignerConfig())
	require.NoError(t, err)

	issued, err := signer.Issue(42, entity.TokenKindPasswordReset, time.Hour)
	require.NoError(t, err)

	claims, err := signer.Validate(issued.Value + "x")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTSigner_ValidateRejectsWrongSecret(t *testing.T) {
	signer, err := NewJWTSigner(newTestSignerConfig())
	require.NoError(t, err)

	otherCfg := newTestSignerConfig()
	otherCfg.SecretKey.JWT = "other-secret"
	other, err := NewJWTSigner(otherCfg)
	require.NoError(t, err)

	issued, err := other.Issue(42, entity.TokenKindAccess, time.Hour)
	require.NoError(t, err)

	claims, err := signer.Validate(issued.Value)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTSigner_ValidateRejectsExpiredToken(t *testing.T) {
	signer, err := NewJWTSigner(newTestSignerConfig())
	require.NoError(t, err)

	// Forge an already expired token with the same secret.
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "42",
		"iat":  now.Add(-2 * time.Hour).Unix(),
		"exp":  now.Add(-time.Hour).Unix(),
		"kind": string(entity.TokenKindAccess),
	})
	value, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := signer.Validate(value)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTSigner_ValidateRejectsMissingKind(t *testing.T) {
	signer, err := NewJWTSigner(newTestSignerConfig())
	require.NoError(t, err)

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})
	value, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := signer.Validate(value)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
