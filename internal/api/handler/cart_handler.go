package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velora/storefront/internal/core/ports"
)

// CartHandler handles cart reads and mutations for the authenticated user.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type updateQuantityRequest struct {
	// Pointer so that an explicit 0 (remove the line) survives binding.
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

type removeFromCartRequest struct {
	// Empty or absent clears the whole cart.
	ProductID string `json:"product_id"`
}

// Items handles GET /cart.
//
// @Summary      List cart items with product details
// @Tags         cart
// @Produce      json
// @Success      200  {array}   ports.CartItem
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /cart [get]
func (h *CartHandler) Items(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	items, err := h.service.Items(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Add handles POST /cart.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addToCartRequest  true  "Product reference"
// @Success      200   {array}   domain.CartLine
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	lines, err := h.service.Add(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}

// UpdateQuantity handles PUT /cart/:id.
//
// @Summary      Set the quantity of a cart line
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Product id"
// @Param        body  body      updateQuantityRequest  true  "New quantity (0 removes the line)"
// @Success      200   {array}   domain.CartLine
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /cart/{id} [put]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	lines, err := h.service.UpdateQuantity(c.Request().Context(), userID, c.Param("id"), *req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}

// Remove handles DELETE /cart.
//
// @Summary      Remove a product from the cart, or clear it
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      removeFromCartRequest  false  "Product reference; omit to clear the cart"
// @Success      200   {array}   domain.CartLine
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /cart [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req removeFromCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	lines, err := h.service.Remove(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}
