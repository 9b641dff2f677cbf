package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/velora/storefront/internal/core/domain"
	"github.com/velora/storefront/internal/core/ports"
)

type stubCatalogService struct {
	listAllFn        func(ctx context.Context) ([]domain.Product, error)
	listFeaturedFn   func(ctx context.Context) ([]domain.Product, error)
	listByCategoryFn func(ctx context.Context, category string) ([]domain.Product, error)
	createFn         func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	deleteFn         func(ctx context.Context, id string) error
	recommendFn      func(ctx context.Context) ([]ports.RecommendedProduct, error)
	toggleFeaturedFn func(ctx context.Context, id string) (*domain.Product, error)
}

func (s *stubCatalogService) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.listAllFn(ctx)
}

func (s *stubCatalogService) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return s.listFeaturedFn(ctx)
}

func (s *stubCatalogService) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.listByCategoryFn(ctx, category)
}

func (s *stubCatalogService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubCatalogService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubCatalogService) Recommend(ctx context.Context) ([]ports.RecommendedProduct, error) {
	return s.recommendFn(ctx)
}

func (s *stubCatalogService) ToggleFeatured(ctx context.Context, id string) (*domain.Product, error) {
	return s.toggleFeaturedFn(ctx, id)
}

func TestProductHandler_Featured_Success(t *testing.T) {
	stub := &stubCatalogService{
		listFeaturedFn: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{{ID: "p1", Name: "Mug", Featured: true}}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodGet, "/products/featured", "")

	if err := handler.Featured(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp["products"]) != 1 || resp["products"][0]["name"] != "Mug" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestProductHandler_Featured_EmptyList(t *testing.T) {
	stub := &stubCatalogService{
		listFeaturedFn: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodGet, "/products/featured", "")

	if err := handler.Featured(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty featured set, got %d", rec.Code)
	}
}

func TestProductHandler_ByCategory_PassesParam(t *testing.T) {
	stub := &stubCatalogService{
		listByCategoryFn: func(ctx context.Context, category string) ([]domain.Product, error) {
			if category != "shoes" {
				t.Fatalf("unexpected category: %q", category)
			}
			return []domain.Product{}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodGet, "/products/category/shoes", "")
	c.SetParamNames("category")
	c.SetParamValues("shoes")

	if err := handler.ByCategory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			if input.Name != "Mug" || input.Category != "kitchen" || input.Price != 9.99 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Product{ID: "p1", Name: input.Name, Price: input.Price, Category: input.Category}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPost, "/products",
		`{"name":"Mug","price":9.99,"category":"kitchen"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_MissingName(t *testing.T) {
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newAuthTestContext(t, http.MethodPost, "/products", `{"price":9.99,"category":"kitchen"}`)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestProductHandler_Create_NegativePrice(t *testing.T) {
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newAuthTestContext(t, http.MethodPost, "/products",
		`{"name":"Mug","price":-1,"category":"kitchen"}`)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestProductHandler_Delete_Success(t *testing.T) {
	stub := &stubCatalogService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "p1" {
				t.Fatalf("unexpected id: %q", id)
			}
			return nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodDelete, "/products/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Delete_NotFound(t *testing.T) {
	stub := &stubCatalogService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newAuthTestContext(t, http.MethodDelete, "/products/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	err := handler.Delete(c)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound to propagate, got %v", err)
	}
}

func TestProductHandler_Recommend_Success(t *testing.T) {
	stub := &stubCatalogService{
		recommendFn: func(ctx context.Context) ([]ports.RecommendedProduct, error) {
			return []ports.RecommendedProduct{
				{ID: "p1", Name: "Mug", Price: 9.99},
				{ID: "p2", Name: "Cap", Price: 14.99},
				{ID: "p3", Name: "Tee", Price: 19.99},
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodGet, "/products/recommend", "")

	if err := handler.Recommend(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(resp))
	}
}

func TestProductHandler_ToggleFeatured_Success(t *testing.T) {
	stub := &stubCatalogService{
		toggleFeaturedFn: func(ctx context.Context, id string) (*domain.Product, error) {
			if id != "p1" {
				t.Fatalf("unexpected id: %q", id)
			}
			return &domain.Product{ID: "p1", Name: "Mug", Featured: true}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPatch, "/products/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.ToggleFeatured(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["featured"] != true {
		t.Fatalf("expected featured true, got %+v", resp)
	}
}

func TestProductHandler_ToggleFeatured_NotFound(t *testing.T) {
	stub := &stubCatalogService{
		toggleFeaturedFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newAuthTestContext(t, http.MethodPatch, "/products/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	err := handler.ToggleFeatured(c)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound to propagate, got %v", err)
	}
}
