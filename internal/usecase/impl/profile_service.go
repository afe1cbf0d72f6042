package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	deliverycontext "recipehub/internal/delivery/context"
	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/repository"
	"recipehub/internal/domain/service"
	"recipehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile loads the user behind the authenticated session.
func (srv *profileService) GetProfile(ctx context.Context, userID int) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// ChangePassword verifies the current credential and replaces it with a fresh
// salt and hash. Validation is ordered so the caller learns about their own
// input mistakes before any database work happens.
func (srv *profileService) ChangePassword(ctx context.Context, userID int, input *usecase.ChangePasswordInput) error {
	if input.NewPassword == "" || input.NewPassword != input.ConfirmPassword {
		return errors.Wrap(domainerrors.ErrPasswordMismatch, "password confirmation mismatch")
	}
	if input.CurrentPassword == "" {
		return errors.Wrap(domainerrors.ErrMissingCurrentPassword, "current password required")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
		}

		return errors.Wrap(err, "failed to load user for password change")
	}

	ok, err := srv.hasher.Verify(input.CurrentPassword, user.PasswordHash, user.PasswordSalt)
	if err != nil || !ok {
		srv.log(ctx).Warn("Password change rejected", slog.Int("userID", userID))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password incorrect")
	}

	salt, err := srv.hasher.GenerateSalt()
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	hashB64 := srv.hasher.Hash(input.NewPassword, salt)
	saltB64 := base64.StdEncoding.EncodeToString(salt)

	if err := srv.userRepo.UpdateCredential(ctx, userID, hashB64, saltB64); err != nil {
		srv.log(ctx).Error("Failed to update credential", slog.Int("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update credential")
	}

	srv.log(ctx).Info("Password changed", slog.Int("userID", userID))

	return nil
}

// UpdateProfile modifies the display name and preference lists. Nil slices
// leave the stored lists untouched; empty slices clear them.
func (srv *profileService) UpdateProfile(ctx context.Context, userID int, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "name must not be empty")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to load user for profile update")
		}

		user.Name = input.Name
		if input.DietPreferences != nil {
			user.DietPreferences = input.DietPreferences
		}
		if input.FavoriteCuisines != nil {
			user.FavoriteCuisines = input.FavoriteCuisines
		}

		if err := userRepo.UpdateProfile(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Int("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Int("userID", userID))

	return updated, nil
}

// DeleteAccount verifies the password and removes the account. Issued tokens
// go with the user row via the foreign-key cascade.
func (srv *profileService) DeleteAccount(ctx context.Context, userID int, input *usecase.DeleteAccountInput) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
		}

		return errors.Wrap(err, "failed to load user for account deletion")
	}

	ok, err := srv.hasher.Verify(input.Password, user.PasswordHash, user.PasswordSalt)
	if err != nil || !ok {
		srv.log(ctx).Warn("Account deletion rejected", slog.Int("userID", userID))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "password incorrect")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.Int("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Int("userID", userID))

	return nil
}
