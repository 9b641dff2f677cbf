package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/velora/storefront/internal/api/metrics"
	"github.com/velora/storefront/internal/core/domain"
	"github.com/velora/storefront/internal/core/ports"
)

// CartService mutates the cart embedded on the user document. Each mutation
// is a read-modify-write that overwrites the cart_items field; there is no
// cross-request locking (last-writer-wins).
type CartService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewCartService(users ports.UserRepository, products ports.ProductRepository, log zerolog.Logger) *CartService {
	return &CartService{users: users, products: products, log: log}
}

// Items joins the user's cart lines against the catalog. Lines whose product
// has since been deleted are dropped from the response; the stored cart is
// left untouched so a concurrent re-add is not lost.
func (s *CartService) Items(ctx context.Context, userID string) ([]ports.CartItem, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(user.Cart) == 0 {
		return []ports.CartItem{}, nil
	}

	ids := make([]string, 0, len(user.Cart))
	for _, line := range user.Cart {
		ids = append(ids, line.ProductID)
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]ports.CartItem, 0, len(user.Cart))
	for _, line := range user.Cart {
		p, ok := byID[line.ProductID]
		if !ok {
			s.log.Debug().Str("user_id", userID).Str("product_id", line.ProductID).Msg("dropping cart line for deleted product")
			continue
		}
		items = append(items, ports.CartItem{Product: p, Quantity: line.Quantity})
	}

	return items, nil
}

func (s *CartService) Add(ctx context.Context, userID, productID string) ([]domain.CartLine, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.AddCartLine(productID)
	if err := s.users.UpdateCart(ctx, userID, user.Cart); err != nil {
		return nil, err
	}

	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	return user.Cart, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) ([]domain.CartLine, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.SetCartQuantity(productID, quantity); err != nil {
		return nil, err
	}
	if err := s.users.UpdateCart(ctx, userID, user.Cart); err != nil {
		return nil, err
	}

	metrics.CartMutationsTotal.WithLabelValues("update").Inc()
	return user.Cart, nil
}

func (s *CartService) Remove(ctx context.Context, userID, productID string) ([]domain.CartLine, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if productID == "" {
		user.ClearCart()
	} else {
		user.RemoveCartLine(productID)
	}
	if err := s.users.UpdateCart(ctx, userID, user.Cart); err != nil {
		return nil, err
	}

	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	return user.Cart, nil
}
