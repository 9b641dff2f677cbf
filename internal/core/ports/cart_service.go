package ports

import (
	"context"

	"github.com/velora/storefront/internal/core/domain"
)

// CartItem joins a cart line against the catalog for read responses.
type CartItem struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// CartService operates on the authenticated user's embedded cart. All
// methods return the updated line list so handlers can echo it back.
type CartService interface {
	Items(ctx context.Context, userID string) ([]CartItem, error)
	Add(ctx context.Context, userID, productID string) ([]domain.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) ([]domain.CartLine, error)
	// Remove drops the line for productID, or clears the whole cart when
	// productID is empty.
	Remove(ctx context.Context, userID, productID string) ([]domain.CartLine, error)
}
