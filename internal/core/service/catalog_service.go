package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"github.com/velora/storefront/internal/api/metrics"
	"github.com/velora/storefront/internal/core/domain"
	"github.com/velora/storefront/internal/core/ports"
)

const recommendedCount = 3

// ErrCacheMiss is returned by FeaturedCache.Get when no snapshot is cached.
var ErrCacheMiss = errors.New("cache miss")

// FeaturedCache abstracts the Redis snapshot of featured products. A single
// key serves both the cache-aside read path and the cache-through write path.
type FeaturedCache interface {
	Get(ctx context.Context) ([]domain.Product, error)
	Set(ctx context.Context, products []domain.Product) error
}

// ImageStore abstracts the image host (Cloudinary). Upload takes an inline
// payload and returns the hosted secure URL.
type ImageStore interface {
	Upload(ctx context.Context, payload string) (string, error)
	Delete(ctx context.Context, publicID string) error
}

// CatalogService implements product CRUD, the featured-products cache, and
// recommendations.
type CatalogService struct {
	repo   ports.ProductRepository
	cache  FeaturedCache
	images ImageStore
	log    zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, cache FeaturedCache, images ImageStore, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, images: images, log: log}
}

func (s *CatalogService) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// ListFeatured is cache-aside: serve the Redis snapshot when present, fall
// back to the store on miss and populate the cache. The snapshot carries no
// TTL; it is only rewritten by ToggleFeatured. An empty featured set is not
// an error and is cached like any other snapshot.
func (s *CatalogService) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	cached, err := s.cache.Get(ctx)
	if err == nil {
		metrics.FeaturedCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		// A broken cache should not take the read path down.
		s.log.Warn().Err(err).Msg("featured cache read failed, falling back to store")
	}
	metrics.FeaturedCacheTotal.WithLabelValues("miss").Inc()

	products, err := s.repo.FindFeatured(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}

	if err := s.cache.Set(ctx, products); err != nil {
		s.log.Warn().Err(err).Msg("failed to populate featured cache")
	}
	return products, nil
}

func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.FindByCategory(ctx, category)
}

func (s *CatalogService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	imageURL := ""
	if input.Image != "" {
		url, err := s.images.Upload(ctx, input.Image)
		if err != nil {
			return nil, fmt.Errorf("upload product image: %w", err)
		}
		imageURL = url
	}

	created, err := s.repo.Create(ctx, &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       imageURL,
		Category:    input.Category,
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.log.Info().Str("product_id", created.ID).Str("category", created.Category).Msg("product created")
	return created, nil
}

// Delete removes the product record, then best-effort deletes the hosted
// image. The product record is authoritative: an image-host failure is
// logged and counted but never fails the request.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if product.Image != "" {
		publicID := imagePublicID(product.Image)
		if err := s.images.Delete(ctx, publicID); err != nil {
			metrics.ImageDeleteFailuresTotal.Inc()
			s.log.Warn().Err(err).Str("product_id", id).Str("public_id", publicID).Msg("failed to delete hosted image, orphaning it")
		}
	}

	return nil
}

func (s *CatalogService) Recommend(ctx context.Context) ([]ports.RecommendedProduct, error) {
	products, err := s.repo.Sample(ctx, recommendedCount)
	if err != nil {
		return nil, err
	}

	out := make([]ports.RecommendedProduct, 0, len(products))
	for _, p := range products {
		out = append(out, ports.RecommendedProduct{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Image:       p.Image,
			Price:       p.Price,
		})
	}
	return out, nil
}

// ToggleFeatured flips the flag, then synchronously recomputes the featured
// snapshot (cache-through) so the next ListFeatured reflects the change.
func (s *CatalogService) ToggleFeatured(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Featured = !product.Featured
	if err := s.repo.SetFeatured(ctx, id, product.Featured); err != nil {
		return nil, err
	}

	featured, err := s.repo.FindFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("recompute featured cache: %w", err)
	}
	if featured == nil {
		featured = []domain.Product{}
	}
	if err := s.cache.Set(ctx, featured); err != nil {
		return nil, fmt.Errorf("rewrite featured cache: %w", err)
	}

	return product, nil
}

// imagePublicID derives the image host public ID from a stored secure URL by
// stripping the path and extension, e.g.
// https://res.example.com/v1/products/abc123.png -> products/abc123.
func imagePublicID(imageURL string) string {
	base := path.Base(imageURL)
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return "products/" + base
}
