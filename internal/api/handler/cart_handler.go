package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickbasket/commerce-api/internal/core/domain"
	"github.com/quickbasket/commerce-api/internal/core/ports"
)

// CartHandler handles cart operations.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addCartItemRequest struct {
	UserID    string `json:"userId"    validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	UserID    string `json:"userId"    validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type removeCartItemRequest struct {
	UserID    string `json:"userId"    validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}

type buyAllResponse struct {
	Message string           `json:"message"`
	Success bool             `json:"success"`
	Items   []ports.CartLine `json:"items"`
}

// Add puts a product in the user's cart; repeating the call accumulates
// quantity on the existing line.
//
// @Summary      Add item to cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCartItemRequest  true  "Item to add"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /cart/add [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Missing required fields")
	}

	err := h.service.AddItem(c.Request().Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return fail(c, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, domain.ErrProductNotFound):
			return fail(c, http.StatusNotFound, "Product not found")
		}
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "Item added to cart successfully", Success: true})
}

// Get lists the user's cart joined with product titles and prices.
//
// @Summary      Get a user's cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   ports.CartLine
// @Failure      500     {object}  messageResponse
// @Router       /cart/{userId} [get]
func (h *CartHandler) Get(c echo.Context) error {
	lines, err := h.service.GetCart(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}

// Update sets a line's quantity; anything below one removes the line.
//
// @Summary      Update cart item quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateCartItemRequest  true  "New quantity"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /cart/update [put]
func (h *CartHandler) Update(c echo.Context) error {
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Missing required fields")
	}

	removed, err := h.service.UpdateQuantity(c.Request().Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return fail(c, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, domain.ErrCartItemNotFound):
			return fail(c, http.StatusNotFound, "Cart item not found")
		}
		return err
	}

	message := "Cart item updated successfully"
	if removed {
		message = "Item removed from cart"
	}
	return c.JSON(http.StatusOK, messageResponse{Message: message, Success: true})
}

// Remove deletes a cart line outright, whatever its quantity.
//
// @Summary      Remove item from cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      removeCartItemRequest  true  "Line to remove"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /cart/remove [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	var req removeCartItemRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Missing required fields")
	}

	err := h.service.RemoveItem(c.Request().Context(), req.UserID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return fail(c, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, domain.ErrCartItemNotFound):
			return fail(c, http.StatusNotFound, "Cart item not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Item removed from cart successfully", Success: true})
}

// BuyAll returns the joined cart contents and clears the cart.
//
// @Summary      Purchase the whole cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  buyAllResponse
// @Failure      404     {object}  messageResponse
// @Router       /cart/buyall/{userId} [post]
func (h *CartHandler) BuyAll(c echo.Context) error {
	lines, err := h.service.BuyAll(c.Request().Context(), c.Param("userId"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return fail(c, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, domain.ErrCartEmpty):
			return fail(c, http.StatusNotFound, "Cart is empty")
		}
		return err
	}

	return c.JSON(http.StatusOK, buyAllResponse{
		Message: "All items purchased successfully",
		Success: true,
		Items:   lines,
	})
}
