package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velora/storefront/internal/api/middleware"
	"github.com/velora/storefront/internal/core/ports"
	"github.com/velora/storefront/internal/core/service"
)

// setSessionCookies hands both credentials to the client. Cookies are
// HTTP-only and same-site-strict; Secure is enabled in production so the
// cookies only travel over HTTPS.
func setSessionCookies(c echo.Context, pair *ports.TokenPair, secure bool) {
	c.SetCookie(sessionCookie(middleware.AccessTokenCookie, pair.AccessToken, service.AccessTokenTTL, secure))
	c.SetCookie(sessionCookie(middleware.RefreshTokenCookie, pair.RefreshToken, service.RefreshTokenTTL, secure))
}

// setAccessCookie refreshes only the short-lived access credential.
func setAccessCookie(c echo.Context, token string, secure bool) {
	c.SetCookie(sessionCookie(middleware.AccessTokenCookie, token, service.AccessTokenTTL, secure))
}

// clearSessionCookies expires both cookies unconditionally.
func clearSessionCookies(c echo.Context, secure bool) {
	c.SetCookie(sessionCookie(middleware.AccessTokenCookie, "", -time.Second, secure))
	c.SetCookie(sessionCookie(middleware.RefreshTokenCookie, "", -time.Second, secure))
}

func sessionCookie(name, value string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}
