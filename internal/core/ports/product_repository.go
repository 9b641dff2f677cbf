package ports

import (
	"context"

	"github.com/velora/storefront/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindByIDs returns the products matching the given ids; missing ids are
	// simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindFeatured(ctx context.Context) ([]domain.Product, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Product, error)
	// Sample returns up to n uniformly random products.
	Sample(ctx context.Context, n int) ([]domain.Product, error)
	SetFeatured(ctx context.Context, id string, featured bool) error
	Delete(ctx context.Context, id string) error
}
