// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// ForgotPasswordInput identifies the account a reset is requested for.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput carries the reset token and the replacement password.
type ResetPasswordInput struct {
	Token           string
	NewPassword     string
	ConfirmPassword string
}

// PasswordResetUsecase defines the interface for the password-reset flow.
type PasswordResetUsecase interface {
	// ForgotPassword issues a reset token for the account and mails the reset
	// link. Unknown emails report ErrUserNotFound to the caller; the delivery
	// layer decides how much of that to expose.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error

	// GenerateResetLink issues a reset token for an already-resolved user and
	// returns the full link without sending anything.
	GenerateResetLink(ctx context.Context, userID int) (string, error)

	// ResetPassword consumes a reset token and replaces the account credential.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
