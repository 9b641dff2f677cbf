package ports

import (
	"context"

	"github.com/velora/storefront/internal/core/domain"
)

// UserRepository defines persistence operations for users and their
// embedded carts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateCart overwrites the user's cart_items field. The whole slice is
	// replaced; concurrent writers are last-writer-wins.
	UpdateCart(ctx context.Context, userID string, cart []domain.CartLine) error
}
