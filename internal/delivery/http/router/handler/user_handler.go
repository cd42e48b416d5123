package handler

import (
	"log/slog"
	"net/http"
	"time"

	"wellkart/internal/delivery/http/middleware"
	"wellkart/internal/delivery/http/response"
	"wellkart/internal/domain/service"
	"wellkart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and authentication handlers.
type UserHandler struct {
	uc           usecase.UserUsecase
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, tokenService service.TokenService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:           uc,
		tokenService: tokenService,
		logger:       logger,
	}
}

// RegisterCustomer handles the storefront customer registration request.
func (h *UserHandler) RegisterCustomer(c echo.Context) error {
	var input *usecase.RegisterCustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterCustomer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "Customer registered successfully")
}

// RegisterDoctor handles the doctor-portal registration request.
func (h *UserHandler) RegisterDoctor(c echo.Context) error {
	var input *usecase.RegisterDoctorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterDoctor(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "Doctor registered successfully")
}

// RegisterInfluencer handles the influencer-portal registration request.
func (h *UserHandler) RegisterInfluencer(c echo.Context) error {
	var input *usecase.RegisterInfluencerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterInfluencer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "Influencer registered successfully")
}

// RegisterAdmin handles creation of dashboard administrator accounts.
// The route is gated to super admins.
func (h *UserHandler) RegisterAdmin(c echo.Context) error {
	var input *usecase.RegisterAdminInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterAdmin(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "Admin registered successfully")
}

// Login handles the login request for every role. On success the access token
// is also set as an HTTP-only cookie so browser clients need no token plumbing.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}
	input.UserAgent = c.Request().UserAgent()
	input.IP = c.RealIP()

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setAccessTokenCookie(c, output.AccessToken)

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// RefreshToken handles the token refresh request and rotates the cookie.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var input *usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setAccessTokenCookie(c, output.AccessToken)

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout handles the logout request and clears the access token cookie.
func (h *UserHandler) Logout(c echo.Context) error {
	var input *usecase.LogoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Logout(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	h.clearAccessTokenCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// CheckAuth echoes the authenticated identity back to the caller.
// Frontends use it to validate a stored token on startup.
func (h *UserHandler) CheckAuth(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"userId": userID,
		"roles":  currentRoles(c).ToStrings(),
	}, "Authenticated")
}

func (h *UserHandler) setAccessTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenService.GetAccessTokenDuration()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *UserHandler) clearAccessTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
