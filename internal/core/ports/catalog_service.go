package ports

import (
	"context"

	"github.com/velora/storefront/internal/core/domain"
)

// CreateProductInput carries the data needed to create a catalog product.
// Image is an optional inline payload (data URI or base64) forwarded to the
// image host; when empty the product is created without an image.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
}

// RecommendedProduct is the public-facing projection returned by Recommend.
type RecommendedProduct struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

type CatalogService interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	// ListFeatured serves the featured subset cache-aside: Redis snapshot
	// first, store on miss, then populate.
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	// Delete removes the product and best-effort deletes its hosted image.
	Delete(ctx context.Context, id string) error
	Recommend(ctx context.Context) ([]RecommendedProduct, error)
	// ToggleFeatured flips the featured flag and synchronously rewrites the
	// featured cache (cache-through).
	ToggleFeatured(ctx context.Context, id string) (*domain.Product, error)
}
