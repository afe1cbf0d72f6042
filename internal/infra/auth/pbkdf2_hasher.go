// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"

	"recipehub/internal/domain/service"
	"recipehub/internal/errors"
)

const (
	// saltLength is the number of random bytes generated per credential.
	saltLength = 16
	// hashIterations is the PBKDF2 iteration count.
	hashIterations = 100_000
	// hashKeyLength is the derived key length in bytes.
	hashKeyLength = 20
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2 with HMAC-SHA256.
type pbkdf2Hasher struct {
	iterations int
	keyLength  int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher() service.PasswordHasher {
	return &pbkdf2Hasher{
		iterations: hashIterations,
		keyLength:  hashKeyLength,
	}
}

// GenerateSalt produces a fresh random salt from the platform CSPRNG.
func (h *pbkdf2Hasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}
	return salt, nil
}

// Hash derives a key from the plaintext password and salt, returning it base64 encoded.
func (h *pbkdf2Hasher) Hash(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, h.iterations, h.keyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// Verify re-derives the hash from the candidate password and the stored salt,
// and compares it with the stored hash in constant time.
func (h *pbkdf2Hasher) Verify(password, storedHashB64, storedSaltB64 string) (bool, error) {
	if password == "" {
		return false, errors.New("password must not be empty")
	}

	salt, err := base64.StdEncoding.DecodeString(storedSaltB64)
	if err != nil {
		return false, errors.Wrap(err, "failed to decode stored salt")
	}
	storedHash, err := base64.StdEncoding.DecodeString(storedHashB64)
	if err != nil {
		return false, errors.Wrap(err, "failed to decode stored hash")
	}

	candidate := pbkdf2.Key([]byte(password), salt, h.iterations, h.keyLength, sha256.New)
	return subtle.ConstantTimeCompare(candidate, storedHash) == 1, nil
}
