package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/bloghub-api/internal/api/middleware"
	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// AuthHandler serves the authentication endpoints. Session tokens
// travel exclusively in the HttpOnly auth cookie.
type AuthHandler struct {
	authService ports.AuthService
	cookies     CookiePolicy
}

func NewAuthHandler(authService ports.AuthService, cookies CookiePolicy) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

type signupRequest struct {
	Username    string `json:"username" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,numeric"`
	Gender      string `json:"gender" validate:"required,oneof=male female other"`
	Password    string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

type authResponse struct {
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user"`
}

type deleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

type deleteAccountResponse struct {
	Message      string `json:"message"`
	PostsDeleted int64  `json:"postsDeleted"`
}

// Signup creates a new account and opens its first session.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, session, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}

	h.cookies.set(c, session.Token)
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login verifies credentials and opens a session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials (email or username)"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, session, err := h.authService.Login(c.Request().Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		return err
	}

	h.cookies.set(c, session.Token)
	return c.JSON(http.StatusOK, authResponse{Message: "Login successful", User: user})
}

// Logout closes the session and clears the cookie. Succeeds whether or
// not a session existed.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), middleware.Token(c)); err != nil {
		return err
	}

	h.cookies.clear(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me returns the caller's account, or user: null when the cookie is
// absent or stale. Never fails on authentication.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, authResponse{User: optionalUser(c)})
}

// DeleteAccount verifies the password and removes the caller's posts,
// sessions and account. Admin accounts are refused.
//
// @Summary      Delete own account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      deleteAccountRequest  true  "Current password"
// @Success      200   {object}  deleteAccountResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/delete-account [delete]
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req deleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	deleted, err := h.authService.DeleteAccount(c.Request().Context(), user, req.Password)
	if err != nil {
		return err
	}

	h.cookies.clear(c)
	return c.JSON(http.StatusOK, deleteAccountResponse{
		Message:      "Account deleted successfully",
		PostsDeleted: deleted,
	})
}
