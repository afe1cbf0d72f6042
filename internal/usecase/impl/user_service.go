// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/base64"
	"log/slog"

	"recipehub/config"
	deliverycontext "recipehub/internal/delivery/context"
	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/repository"
	"recipehub/internal/domain/service"
	"recipehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	hasher    service.PasswordHasher
	signer    service.TokenSigner
	cfg       *config.Config
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	TokenRepo repository.TokenRepository
	Hasher    service.PasswordHasher
	Signer    service.TokenSigner
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		tokenRepo: params.TokenRepo,
		hasher:    params.Hasher,
		signer:    params.Signer,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password must not be empty")
	}

	if input.Password != input.ConfirmPassword {
		return nil, errors.Wrap(domainerrors.ErrPasswordMismatch, "password confirmation mismatch")
	}

	// Derive the credential outside the transaction (PBKDF2 is CPU-bound).
	salt, err := srv.hasher.GenerateSalt()
	if err != nil {
		srv.log(ctx).Error("Failed to generate salt during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	hashB64 := srv.hasher.Hash(input.Password, salt)
	saltB64 := base64.StdEncoding.EncodeToString(salt)

	newUser := &entity.User{
		Name:             input.Name,
		Email:            input.Email,
		DietPreferences:  input.DietPreferences,
		FavoriteCuisines: input.FavoriteCuisines,
	}
	newUser.SetCredential(hashB64, saltB64)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the user login process: credential check, token issuance
// and persistence of the issued token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			// The delivery layer decides whether this is distinguishable
			// from a wrong password.
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no account for email")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside transaction (PBKDF2 is CPU-bound).
	ok, err := srv.hasher.Verify(input.Password, user.PasswordHash, user.PasswordSalt)
	if err != nil || !ok {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Generate the session token outside the transaction.
	signed, err := srv.signer.Issue(user.ID, entity.TokenKindAccess, srv.cfg.TokenTTL())
	if err != nil {
		srv.log(ctx).Error("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	issued := &entity.IssuedToken{
		UserID:    user.ID,
		Value:     signed.Value,
		Kind:      entity.TokenKindAccess,
		ExpiresAt: signed.ExpiresAt,
	}
	if err := srv.tokenRepo.Store(ctx, issued); err != nil {
		srv.log(ctx).Error("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store session token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: signed.Value,
		User:        user,
	}, nil
}
