package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velora/storefront/internal/core/ports"
)

// ProductHandler handles catalog reads and admin mutations.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products (admin).
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {object}  productListResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productListResponse{Products: products})
}

// Featured handles GET /products/featured. Served cache-aside from Redis;
// an empty featured set is a 200 with an empty list, not an error.
//
// @Summary      List featured products
// @Tags         products
// @Produce      json
// @Success      200  {object}  productListResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/featured [get]
func (h *ProductHandler) Featured(c echo.Context) error {
	products, err := h.service.ListFeatured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productListResponse{Products: products})
}

// ByCategory handles GET /products/category/:category.
//
// @Summary      List products in a category
// @Tags         products
// @Produce      json
// @Param        category  path      string  true  "Category name"
// @Success      200       {object}  productListResponse
// @Failure      500       {object}  errorResponse
// @Router       /products/category/{category} [get]
func (h *ProductHandler) ByCategory(c echo.Context) error {
	products, err := h.service.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productListResponse{Products: products})
}

// Recommend handles GET /products/recommend — a random sample of three
// products projected to public fields.
//
// @Summary      Recommend products
// @Tags         products
// @Produce      json
// @Success      200  {array}   ports.RecommendedProduct
// @Failure      500  {object}  errorResponse
// @Router       /products/recommend [get]
func (h *ProductHandler) Recommend(c echo.Context) error {
	products, err := h.service.Recommend(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /products (admin).
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Delete handles DELETE /products/:id (admin). The hosted image is removed
// best-effort; the response reflects only the product record.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id  path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted"})
}

// ToggleFeatured handles PATCH /products/:id (admin). The featured cache is
// rewritten synchronously before the response is sent.
//
// @Summary      Toggle a product's featured flag
// @Tags         products
// @Produce      json
// @Param        id  path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/{id} [patch]
func (h *ProductHandler) ToggleFeatured(c echo.Context) error {
	product, err := h.service.ToggleFeatured(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
