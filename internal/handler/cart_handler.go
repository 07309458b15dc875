package handler

import (
	"net/http"
	"time"

	"catering-service/internal/store"
	"catering-service/pkg/logger"
	"catering-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CartHandler exposes cart reads and mutations keyed by chat identity.
type CartHandler struct {
	carts *store.CartStore
}

func NewCartHandler(carts *store.CartStore) *CartHandler {
	return &CartHandler{carts: carts}
}

// ChangeQuantityRequest defines the structure for cart mutation requests.
// Delta may be negative; a quantity dropping to zero or below removes the
// product from the cart.
type ChangeQuantityRequest struct {
	ProductID uint `json:"product_id"`
	Delta     int  `json:"delta"`
}

// GetCart returns the cart's live-priced lines and total
func (h *CartHandler) GetCart(c echo.Context) error {
	log := logger.FromContext(c)

	userID, err := parseUserIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	defer prometheus.TrackDBOperation("cart_read")(time.Now())

	items, err := h.carts.Items(userID)
	if err != nil {
		log.Error("Failed to read cart", zap.Int64("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to read cart"})
	}
	total, err := h.carts.Total(userID)
	if err != nil {
		log.Error("Failed to compute cart total", zap.Int64("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to read cart"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
		"total": total,
	})
}

// ChangeQuantity applies a signed delta to one product line
func (h *CartHandler) ChangeQuantity(c echo.Context) error {
	log := logger.FromContext(c)

	userID, err := parseUserIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	var req ChangeQuantityRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.ProductID == 0 || req.Delta == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_id and a non-zero delta are required"})
	}

	defer prometheus.TrackDBOperation("cart_change")(time.Now())

	if err := h.carts.ChangeQuantity(userID, req.ProductID, req.Delta); err != nil {
		log.Error("Failed to change cart quantity",
			zap.Int64("user_id", userID),
			zap.Uint("product_id", req.ProductID),
			zap.Int("delta", req.Delta),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to change quantity"})
	}
	prometheus.RecordCartOperation("change")

	quantity, err := h.carts.Quantity(userID, req.ProductID)
	if err != nil {
		log.Error("Failed to read quantity", zap.Int64("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to read quantity"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"product_id": req.ProductID,
		"quantity":   quantity,
	})
}

// RemoveItem deletes one product line regardless of quantity
func (h *CartHandler) RemoveItem(c echo.Context) error {
	log := logger.FromContext(c)

	userID, err := parseUserIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	productID, err := parseUintParam(c, "product_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	if err := h.carts.RemoveFromCart(userID, productID); err != nil {
		log.Error("Failed to remove cart item",
			zap.Int64("user_id", userID),
			zap.Uint("product_id", productID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to remove item"})
	}
	prometheus.RecordCartOperation("remove")

	return c.JSON(http.StatusOK, echo.Map{"message": "Item removed"})
}
