package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/velora/storefront/internal/core/domain"
)

func seedCartUser(t *testing.T, repo *stubUserRepo, cart ...domain.CartLine) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Name:  "Shopper",
		Email: "shopper@example.com",
		Role:  domain.RoleCustomer,
		Cart:  cart,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestCartService_Add_TwiceYieldsQuantityTwo(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	svc := NewCartService(users, products, zerolog.Nop())
	user := seedCartUser(t, users)

	if _, err := svc.Add(context.Background(), user.ID, "p1"); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	lines, err := svc.Add(context.Background(), user.ID, "p1")
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(lines) != 1 || lines[0].ProductID != "p1" || lines[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", lines)
	}

	// Mutation must be persisted, not just returned.
	stored, _ := users.FindByID(context.Background(), user.ID)
	if len(stored.Cart) != 1 || stored.Cart[0].Quantity != 2 {
		t.Fatalf("expected persisted cart, got %+v", stored.Cart)
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	users := newStubUserRepo()
	svc := NewCartService(users, newStubProductRepo(), zerolog.Nop())
	user := seedCartUser(t, users, domain.CartLine{ProductID: "p1", Quantity: 1})

	lines, err := svc.UpdateQuantity(context.Background(), user.ID, "p1", 7)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if lines[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %+v", lines)
	}

	lines, err = svc.UpdateQuantity(context.Background(), user.ID, "p1", 0)
	if err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart after quantity 0, got %+v", lines)
	}

	if _, err := svc.UpdateQuantity(context.Background(), user.ID, "ghost", 2); err != domain.ErrCartLineNotFound {
		t.Fatalf("expected ErrCartLineNotFound, got %v", err)
	}
}

func TestCartService_Remove(t *testing.T) {
	users := newStubUserRepo()
	svc := NewCartService(users, newStubProductRepo(), zerolog.Nop())
	user := seedCartUser(t, users,
		domain.CartLine{ProductID: "p1", Quantity: 1},
		domain.CartLine{ProductID: "p2", Quantity: 3},
	)

	lines, err := svc.Remove(context.Background(), user.ID, "p1")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(lines) != 1 || lines[0].ProductID != "p2" {
		t.Fatalf("expected only p2 left, got %+v", lines)
	}

	// Empty product id clears the whole cart.
	lines, err = svc.Remove(context.Background(), user.ID, "")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}

func TestCartService_Items_JoinsCatalogAndDropsDeleted(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	svc := NewCartService(users, products, zerolog.Nop())

	p1 := seedProduct(t, products, domain.Product{Name: "Mug", Price: 9.5})
	user := seedCartUser(t, users,
		domain.CartLine{ProductID: p1.ID, Quantity: 2},
		domain.CartLine{ProductID: "deleted", Quantity: 1},
	)

	items, err := svc.Items(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("items failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected line for deleted product to be dropped, got %+v", items)
	}
	if items[0].Product.ID != p1.ID || items[0].Quantity != 2 {
		t.Fatalf("unexpected item: %+v", items[0])
	}

	// The stored cart is left untouched.
	stored, _ := users.FindByID(context.Background(), user.ID)
	if len(stored.Cart) != 2 {
		t.Fatalf("expected stored cart untouched, got %+v", stored.Cart)
	}
}

func TestCartService_Items_EmptyCart(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	svc := NewCartService(users, products, zerolog.Nop())
	user := seedCartUser(t, users)

	items, err := svc.Items(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("items failed: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
	if products.findByIDsCalls != 0 {
		t.Fatalf("expected no catalog query for an empty cart")
	}
}
