// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "recipehub/internal/delivery/context"
	"recipehub/internal/delivery/http/response"
	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for credential and session handlers.
type UserHandler struct {
	userUC    usecase.UserUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, sessionUC usecase.SessionUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUC:    userUC,
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// registerRequest is the wire shape of the registration request.
type registerRequest struct {
	Name             string   `json:"name" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	Password         string   `json:"password" validate:"required,min=8"`
	ConfirmPassword  string   `json:"confirmPassword" validate:"required"`
	DietPreferences  []string `json:"dietPreferences"`
	FavoriteCuisines []string `json:"favoriteCuisines"`
}

// userView is the subset of the user entity exposed over the API.
// Credential material never leaves the service.
type userView struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	DietPreferences  []string  `json:"dietPreferences,omitempty"`
	FavoriteCuisines []string  `json:"favoriteCuisines,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toUserView(user *entity.User) *userView {
	return &userView{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		DietPreferences:  user.DietPreferences,
		FavoriteCuisines: user.FavoriteCuisines,
		CreatedAt:        user.CreatedAt,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		ConfirmPassword:  req.ConfirmPassword,
		DietPreferences:  req.DietPreferences,
		FavoriteCuisines: req.FavoriteCuisines,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(output.User), "User registered successfully")
}

// loginRequest is the wire shape of the login request.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginView carries the issued session token alongside the user.
type loginView struct {
	AccessToken string    `json:"accessToken"`
	User        *userView `json:"user"`
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			// An unknown email must read the same as a wrong password.
			return errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginView{
		AccessToken: output.AccessToken,
		User:        toUserView(output.User),
	}, "Login successful")
}

// Logout revokes the session token the request authenticated with.
func (h *UserHandler) Logout(c echo.Context) error {
	tokenValue := deliverycontext.GetTokenValue(c)

	revoked, err := h.sessionUC.Logout(c.Request().Context(), tokenValue)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"revoked": revoked}, "Logout successful")
}
