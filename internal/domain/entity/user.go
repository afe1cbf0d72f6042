// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system, representing a registered member of
// the recipe platform. The credential fields always travel together: a password
// hash is meaningless without the salt it was derived with, so the two are only
// ever written as a pair.
type User struct {
	ID               int       // Database identity of the user.
	Name             string    // The user's display name.
	Email            string    // The user's primary contact email, used as the login identifier.
	PasswordHash     string    // Base64 of the 20-byte PBKDF2 digest of the password.
	PasswordSalt     string    // Base64 of the 16-byte random salt used for the digest.
	DietPreferences  []string  // Optional dietary preferences, e.g. "vegan", "halal".
	FavoriteCuisines []string  // Optional favourite cuisines, e.g. "thai", "levantine".
	CreatedAt        time.Time // Timestamp of when this user account was created.
}

// SetCredential replaces the stored hash and salt as a single operation.
// It is the only sanctioned way to mutate either field.
func (u *User) SetCredential(hashB64, saltB64 string) {
	u.PasswordHash = hashB64
	u.PasswordSalt = saltB64
}
