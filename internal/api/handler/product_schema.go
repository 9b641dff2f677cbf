package handler

import (
	"github.com/velora/storefront/internal/core/domain"
	"github.com/velora/storefront/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"gte=0"`
	// Image is an optional inline payload (data URI or base64) forwarded to
	// the image host.
	Image    string `json:"image"`
	Category string `json:"category" validate:"required"`
}

func (r createProductRequest) toInput() ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Category:    r.Category,
	}
}

type productListResponse struct {
	Products []domain.Product `json:"products"`
}
