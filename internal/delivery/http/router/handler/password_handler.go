package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "recipehub/internal/delivery/context"
	"recipehub/internal/delivery/http/response"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PasswordHandler holds dependencies for the password-reset handlers.
type PasswordHandler struct {
	resetUC usecase.PasswordResetUsecase
	logger  *slog.Logger
}

// NewPasswordHandler is the constructor for PasswordHandler, injected by Fx.
func NewPasswordHandler(resetUC usecase.PasswordResetUsecase, logger *slog.Logger) *PasswordHandler {
	return &PasswordHandler{
		resetUC: resetUC,
		logger:  logger,
	}
}

// forgotPasswordRequest is the wire shape of the forgot-password request.
type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword triggers the reset flow. The response is identical whether or
// not the email belongs to an account, so the endpoint cannot be used to probe
// for registered addresses.
func (h *PasswordHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot-password input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.resetUC.ForgotPassword(c.Request().Context(), &usecase.ForgotPasswordInput{Email: req.Email})
	if err != nil && !errors.Is(err, domainerrors.ErrUserNotFound) {
		return errors.WithStack(err)
	}
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
		logger.Debug("Forgot-password request for unknown email", slog.String("email", req.Email))
	}

	return response.Success(c, http.StatusOK,
		map[string]string{"message": "If the email is registered, a reset link has been sent"},
		"Reset request accepted")
}

// resetPasswordRequest is the wire shape of the reset-password request.
type resetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// ResetPassword consumes a reset token and installs the new credential.
func (h *PasswordHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset-password input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.resetUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:           req.Token,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password has been reset"}, "Password reset successful")
}
