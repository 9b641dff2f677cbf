package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/velora/storefront/internal/api/metrics"
	"github.com/velora/storefront/internal/core/domain"
	"github.com/velora/storefront/internal/core/ports"
)

const (
	// AccessTokenTTL is the lifetime of the self-contained access credential.
	AccessTokenTTL = 15 * time.Minute
	// RefreshTokenTTL is the lifetime of the refresh credential and of its
	// server-side mirror in Redis.
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// RefreshTokenStore abstracts the server-side refresh credential mirror
// (Redis). At most one value is stored per user; Save overwrites.
type RefreshTokenStore interface {
	Save(ctx context.Context, userID, token string, ttl time.Duration) error
	Get(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, userID string) error
}

// AuthService implements signup, login, logout and access-token refresh.
type AuthService struct {
	repo          ports.UserRepository
	tokens        RefreshTokenStore
	accessSecret  string
	refreshSecret string
	log           zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens RefreshTokenStore, accessSecret, refreshSecret string, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:          repo,
		tokens:        tokens,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		log:           log,
	}
}

func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, *ports.TokenPair, error) {
	if name == "" || email == "" || len(password) < 6 {
		return nil, nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        NormalizeEmail(email),
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(ctx, created)
	if err != nil {
		return nil, nil, err
	}

	metrics.SignupsTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Msg("user signed up")
	return created, pair, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *ports.TokenPair, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		// An unknown email must be indistinguishable from a bad password.
		if err == domain.ErrUserNotFound {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}

	// issueTokens overwrites any stored refresh credential, revoking the
	// previous session's refresh token immediately.
	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return user, pair, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	userID, err := s.parseRefresh(refreshToken)
	if err != nil {
		// Undecodable cookie means the session is already unusable; treat
		// as logged out rather than failing the request.
		s.log.Debug().Err(err).Msg("logout with undecodable refresh token")
		return nil
	}

	return s.tokens.Delete(ctx, userID)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrInvalidCredentials
	}

	userID, err := s.parseRefresh(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	stored, err := s.tokens.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if stored == "" || stored != refreshToken {
		// Revoked by logout or superseded by a newer login.
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	return s.signToken(user, s.accessSecret, AccessTokenTTL)
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) issueTokens(ctx context.Context, user *domain.User) (*ports.TokenPair, error) {
	access, err := s.signToken(user, s.accessSecret, AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, s.refreshSecret, RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Save(ctx, user.ID, refresh, RefreshTokenTTL); err != nil {
		return nil, err
	}

	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) signToken(user *domain.User, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// parseRefresh validates the refresh token signature and expiry and returns
// the user ID it was issued for.
func (s *AuthService) parseRefresh(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.refreshSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidCredentials
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", domain.ErrInvalidCredentials
	}
	return sub, nil
}

// NormalizeEmail lowercases and trims an email so uniqueness checks and
// lookups agree on one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
