package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "gymplan/internal/errors"
	"gymplan/internal/middleware"
	"gymplan/internal/service"
	"gymplan/internal/session"
)

// AuthHandler handles sign up, login and logout.
type AuthHandler struct {
	authService    service.AuthService
	profileService service.ProfileService
	secureCookies  bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, profileService service.ProfileService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
		secureCookies:  secureCookies,
	}
}

// SignupRequest represents a sign-up request.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupResponse is returned on successful registration.
type SignupResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message    string `json:"message"`
	HasProfile bool   `json:"hasProfile"`
}

// MessageResponse is a plain message body.
type MessageResponse struct {
	Message string `json:"message"`
}

// Signup godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Registration data"
// @Success 201 {object} SignupResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: err.Error()})
	}

	account, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountConflict) {
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Username or email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Signup failed", Err: err.Error()})
	}

	return c.JSON(http.StatusCreated, SignupResponse{
		Message: "User created successfully",
		UserID:  account.ID,
	})
}

// Login godoc
// @Summary Log in and create a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: err.Error()})
	}

	account, sess, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Message: "Invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Login failed", Err: err.Error()})
	}

	hasProfile, err := h.profileService.HasProfile(c.Request().Context(), account.ID)
	if err != nil {
		// The cookie was never issued, so the session must not outlive this request.
		if derr := h.authService.Logout(c.Request().Context(), sess.Token); derr != nil {
			c.Logger().Errorf("failed to discard session after login error: %v", derr)
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Login failed", Err: err.Error()})
	}

	c.SetCookie(session.NewCookie(sess.Token, sess.ExpiresAt, h.secureCookies))
	return c.JSON(http.StatusOK, LoginResponse{
		Message:    "Login successful",
		HasProfile: hasProfile,
	})
}

// Logout godoc
// @Summary Destroy the current session
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get(middleware.ContextSessionToken).(string)
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Logout failed", Err: err.Error()})
	}

	c.SetCookie(session.ClearCookie(h.secureCookies))
	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}
