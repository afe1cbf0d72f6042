// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for salted password hashing and
// verification. The concrete implementation pins the key-derivation function;
// the domain only cares that hashing is deterministic per (password, salt) and
// that salts are unpredictable.
type PasswordHasher interface {
	// GenerateSalt draws a fresh 16-byte salt from a cryptographically secure
	// random source.
	GenerateSalt() ([]byte, error)

	// Hash derives the digest of password under salt and returns it
	// base64-encoded. Same inputs always produce the same output.
	Hash(password string, salt []byte) string

	// Verify recomputes the digest for password using the stored base64 salt
	// and compares it with the stored base64 hash. An empty password is a
	// caller-contract violation and returns an error, which is distinct from
	// a wrong password returning (false, nil).
	Verify(password, storedHashB64, storedSaltB64 string) (bool, error)
}
