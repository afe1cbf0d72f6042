// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"recipehub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
// Preference slices are optional and may be nil.
type RegisterUserInput struct {
	Name             string
	Email            string
	Password         string
	ConfirmPassword  string
	DietPreferences  []string
	FavoriteCuisines []string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued session token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for credential-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates a new account with a freshly salted credential.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// Login verifies the credential and issues a persisted session token.
	// An unknown email reports ErrUserNotFound and a wrong password
	// ErrInvalidCredentials; the delivery layer decides how much of that
	// distinction to expose.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
