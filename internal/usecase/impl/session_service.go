package impl

import (
	"context"
	"log/slog"

	deliverycontext "recipehub/internal/delivery/context"
	"recipehub/internal/domain/repository"
	"recipehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tokenRepo repository.TokenRepository
	logger    *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TokenRepo repository.TokenRepository
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		tokenRepo: params.TokenRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Logout invalidates the presented session token. Revoking an unknown or
// already revoked token is not an error; the second return value just reads false.
func (srv *sessionService) Logout(ctx context.Context, tokenValue string) (bool, error) {
	revoked, err := srv.tokenRepo.Invalidate(ctx, tokenValue)
	if err != nil {
		srv.log(ctx).Error("Logout failed", slog.Any("error", err))

		return false, errors.Wrap(err, "failed to invalidate session token")
	}

	srv.log(ctx).Debug("Logout completed", slog.Bool("revoked", revoked))

	return revoked, nil
}
