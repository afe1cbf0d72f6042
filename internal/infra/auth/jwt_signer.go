package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"recipehub/config"
	"recipehub/internal/domain/entity"
	"recipehub/internal/domain/service"
	"recipehub/internal/errors"
)

// jwtSigner is a concrete implementation of the TokenSigner interface using the JWT standard.
type jwtSigner struct {
	secret     string        // Secret key for signing tokens.
	defaultTTL time.Duration // Fallback time-to-live when the caller passes none.
}

// NewJWTSigner is the constructor for jwtSigner.
// It takes configuration values to create a new token signer instance.
func NewJWTSigner(cfg *config.Config) (service.TokenSigner, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &jwtSigner{
		secret:     cfg.SecretKey.JWT,
		defaultTTL: cfg.TokenTTL(),
	}, nil
}

// Issue creates a signed token for the given user with the token kind embedded in its claims.
func (s *jwtSigner) Issue(userID int, kind entity.TokenKind, ttl time.Duration) (*service.SignedToken, error) {
	if !kind.Valid() {
		return nil, errors.Errorf("unknown token kind: %s", kind)
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub":  strconv.Itoa(userID), // Subject (who the token is for)
		"iat":  now.Unix(),           // Issued At
		"exp":  expiresAt.Unix(),     // Expiration Time
		"kind": string(kind),         // Purpose of the token (access or password-reset)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	value, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &service.SignedToken{
		Value:     value,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate checks the signature and expiry of a token string and extracts its claims.
// Any failure is reported as a plain error so callers never learn why a token was rejected.
func (s *jwtSigner) Validate(value string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(value, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.New("invalid token")
	}
	userID, err := strconv.Atoi(sub)
	if err != nil {
		return nil, errors.New("invalid token")
	}

	kindStr, _ := claims["kind"].(string)
	kind := entity.TokenKind(kindStr)
	if !kind.Valid() {
		return nil, errors.New("invalid token")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("invalid token")
	}

	return &service.TokenClaims{
		UserID:    userID,
		Kind:      kind,
		ExpiresAt: exp.Time,
	}, nil
}
