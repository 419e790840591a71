package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authdash/dashboard-api/internal/api/metrics"
	"github.com/authdash/dashboard-api/internal/core/domain"
	"github.com/authdash/dashboard-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=2,max=64"`
	Password string `json:"password" validate:"required,min=5"`
}

type registerResponse struct {
	User *domain.User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	User        domain.PublicUser `json:"user"`
}

// Register creates a new user account. No token is issued; the client logs
// in afterwards.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusConflict, map[string]string{"error": "email already registered"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid registration details"})
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return err
		}
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, registerResponse{User: user})
}

// Login verifies credentials and returns a bearer token. Unknown email and
// wrong password produce the same response.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	signed, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "incorrect email or password"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		User:        user.Public(),
	})
}
