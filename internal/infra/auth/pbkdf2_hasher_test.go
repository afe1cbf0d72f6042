package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBKDF2Hasher_GenerateSalt(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, saltLength)

	// Two salts from the CSPRNG should differ.
	other, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt, other)
}

func TestPBKDF2Hasher_Hash(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	hash := hasher.Hash("SecretPass123", salt)
	assert.NotEmpty(t, hash)

	// The hash is base64 of a fixed-length derived key.
	raw, err := base64.StdEncoding.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, raw, hashKeyLength)

	// Hashing is deterministic for the same password and salt.
	assert.Equal(t, hash, hasher.Hash("SecretPass123", salt))

	// A different salt yields a different hash for the same password.
	otherSalt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, hash, hasher.Hash("SecretPass123", otherSalt))
}

func TestPBKDF2Hasher_Verify(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	saltB64 := base64.StdEncoding.EncodeToString(salt)
	hashB64 := hasher.Hash("SecretPass123", salt)

	// Correct password matches.
	ok, err := hasher.Verify("SecretPass123", hashB64, saltB64)
	require.NoError(t, err)
	assert.True(t, ok)

	// Wrong password does not match.
	ok, err = hasher.Verify("WrongPass123", hashB64, saltB64)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPBKDF2Hasher_VerifyEmptyPassword(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	saltB64 := base64.StdEncoding.EncodeToString(salt)
	hashB64 := hasher.Hash("SecretPass123", salt)

	ok, err := hasher.Verify("", hashB64, saltB64)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestPBKDF2Hasher_VerifyCorruptedStoredValues(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	ok, err := hasher.Verify("SecretPass123", "%%%not-base64%%%", "also-not!!!")
	assert.Error(t, err)
	assert.False(t, ok)
}
