// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"recipehub/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID int) (*entity.User, error)
	ChangePassword(ctx context.Context, userID int, input *ChangePasswordInput) error
	UpdateProfile(ctx context.Context, userID int, input *UpdateProfileInput) (*entity.User, error)
	DeleteAccount(ctx context.Context, userID int, input *DeleteAccountInput) error
}

// --- Input DTOs ---

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// UpdateProfileInput defines the data required to update a profile.
// Nil slices keep the stored preference lists untouched.
type UpdateProfileInput struct {
	Name             string
	DietPreferences  []string
	FavoriteCuisines []string
}

// DeleteAccountInput defines the data required to delete an account.
type DeleteAccountInput struct {
	Password string
}
