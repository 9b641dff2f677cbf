package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velora/storefront/internal/api/middleware"
	"github.com/velora/storefront/internal/core/ports"
)

// AuthHandler handles signup, login, logout and access-token refresh.
type AuthHandler struct {
	service       ports.AuthService
	secureCookies bool
}

func NewAuthHandler(service ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: service, secureCookies: secureCookies}
}

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Signup creates a new account and establishes a session.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, pair, err := h.service.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	setSessionCookies(c, pair, h.secureCookies)
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates a user and establishes a session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  domain.User
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, pair, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	setSessionCookies(c, pair, h.secureCookies)
	return c.JSON(http.StatusOK, user)
}

// Logout revokes the stored refresh credential and clears both cookies. The
// cookies are cleared even when revocation fails, so the client session ends
// either way.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      500  {object}  errorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	refreshToken := ""
	if cookie, err := c.Cookie(middleware.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}

	clearSessionCookies(c, h.secureCookies)

	if err := h.service.Logout(c.Request().Context(), refreshToken); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Refresh exchanges a valid refresh cookie for a new access cookie.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing refresh token")
	}

	access, err := h.service.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return err
	}

	setAccessCookie(c, access, h.secureCookies)
	return c.JSON(http.StatusOK, messageResponse{Message: "token refreshed"})
}

// Profile returns the authenticated user's public summary.
//
// @Summary      Get the current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
