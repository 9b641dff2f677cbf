package ports

import (
	"context"

	"github.com/velora/storefront/internal/core/domain"
)

// TokenPair carries the two session credentials issued on signup and login.
// The access token is short-lived and self-contained; the refresh token is
// mirrored server-side and must match the stored value to be honored.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	// Logout revokes the refresh credential carried by refreshToken. An
	// empty or undecodable token is treated as already-logged-out.
	Logout(ctx context.Context, refreshToken string) error
	// Refresh exchanges a valid, non-revoked refresh token for a new access
	// token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
