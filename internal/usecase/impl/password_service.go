package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/url"

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

const resetMailSubject = "Password Reset Request"

// passwordService implements the PasswordResetUsecase interface.
type passwordService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	hasher    service.PasswordHasher
	signer    service.TokenSigner
	mailer    service.Mailer
	cfg       *config.Config
	logger    *slog.Logger
}

// PasswordServiceParams holds dependencies for PasswordService, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	TokenRepo repository.TokenRepository
	Hasher    service.PasswordHasher
	Signer    service.TokenSigner
	Mailer    service.Mailer
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPasswordService is the constructor for passwordService.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordResetUsecase {
	return &passwordService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		tokenRepo: params.TokenRepo,
		hasher:    params.Hasher,
		signer:    params.Signer,
		mailer:    params.Mailer,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ForgotPassword issues a reset token for the account and mails the reset link
// through the notification collaborator.
func (srv *passwordService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	srv.log(ctx).Debug("Starting forgot-password flow", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Forgot-password flow failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "no account for email")
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}

	link, err := srv.issueResetLink(ctx, user)
	if err != nil {
		srv.log(ctx).Warn("Forgot-password flow failed", slog.String("email", input.Email), slog.Any("error", err))

		return err
	}

	msg := &service.TemplateMessage{
		Name:         user.Name,
		Email:        user.Email,
		Subject:      resetMailSubject,
		TemplateType: "PasswordReset",
		TemplateData: map[string]string{"ResetLink": link},
	}
	if err := srv.mailer.SendTemplate(ctx, msg); err != nil {
		srv.log(ctx).Error("Failed to send reset mail", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to send password reset mail")
	}

	srv.log(ctx).Debug("Reset mail dispatched", slog.Int("userID", user.ID))

	return nil
}

// GenerateResetLink issues a reset token for an already-resolved user and
// returns the full link without sending anything.
func (srv *passwordService) GenerateResetLink(ctx context.Context, userID int) (string, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.Wrap(domainerrors.ErrUserNotFound, "no account for id")
		}

		return "", errors.Wrap(err, "failed to load user for password reset")
	}

	return srv.issueResetLink(ctx, user)
}

// issueResetLink issues and persists a reset token for the user, and builds
// the link pointing at the configured reset page.
func (srv *passwordService) issueResetLink(ctx context.Context, user *entity.User) (string, error) {
	signed, err := srv.signer.Issue(user.ID, entity.TokenKindPasswordReset, srv.cfg.ResetTokenTTL())
	if err != nil {
		return "", errors.Wrap(err, "failed to issue reset token")
	}

	issued := &entity.IssuedToken{
		UserID:    user.ID,
		Value:     signed.Value,
		Kind:      entity.TokenKindPasswordReset,
		ExpiresAt: signed.ExpiresAt,
	}
	if err := srv.tokenRepo.Store(ctx, issued); err != nil {
		return "", errors.Wrap(err, "failed to store reset token")
	}

	baseURL := ""
	if srv.cfg.PasswordReset != nil {
		baseURL = srv.cfg.PasswordReset.BaseURL
	}

	return baseURL + "?token=" + url.QueryEscape(signed.Value), nil
}

// ResetPassword consumes a reset token and replaces the account credential.
// The token is invalidated in the same transaction that rewrites the
// credential, so a link can never be used twice.
func (srv *passwordService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if input.NewPassword == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "new password must not be empty")
	}

	if input.NewPassword != input.ConfirmPassword {
		return errors.Wrap(domainerrors.ErrPasswordMismatch, "password confirmation mismatch")
	}

	claims, err := srv.signer.Validate(input.Token)
	if err != nil || claims.Kind != entity.TokenKindPasswordReset {
		srv.log(ctx).Warn("Reset rejected: invalid token")

		return errors.Wrap(domainerrors.ErrInvalidToken, "invalid reset token")
	}

	// The signed claims alone are not enough: the stored record must still be live.
	valid, err := srv.tokenRepo.IsValid(ctx, claims.UserID, input.Token)
	if err != nil {
		return errors.Wrap(err, "failed to check reset token record")
	}
	if !valid {
		srv.log(ctx).Warn("Reset rejected: token already consumed or expired", slog.Int("userID", claims.UserID))

		return errors.Wrap(domainerrors.ErrInvalidToken, "reset token no longer valid")
	}

	salt, err := srv.hasher.GenerateSalt()
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	hashB64 := srv.hasher.Hash(input.NewPassword, salt)
	saltB64 := base64.StdEncoding.EncodeToString(salt)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.TokenRepo()
		userRepo := repoFactory.UserRepo()

		consumed, err := tokenRepo.Invalidate(ctx, input.Token)
		if err != nil {
			return errors.Wrap(err, "failed to consume reset token")
		}
		if !consumed {
			// A concurrent reset won the race for this token.
			return errors.Wrap(domainerrors.ErrInvalidToken, "reset token already consumed")
		}

		if err := userRepo.UpdateCredential(ctx, claims.UserID, hashB64, saltB64); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "account no longer exists")
			}

			return errors.Wrap(err, "failed to update credential")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Reset-password transaction failed", slog.Int("userID", claims.UserID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset completed", slog.Int("userID", claims.UserID))

	return nil
}
