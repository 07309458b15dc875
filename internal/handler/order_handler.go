package handler

import (
	"net/http"
	"strconv"
	"time"

	"catering-service/internal/store"
	"catering-service/pkg/logger"
	"catering-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderHandler finalizes carts into orders and serves the operator listing.
type OrderHandler struct {
	orders *store.OrderStore
	carts  *store.CartStore
}

func NewOrderHandler(orders *store.OrderStore, carts *store.CartStore) *OrderHandler {
	return &OrderHandler{orders: orders, carts: carts}
}

// CreateOrder converts the user's cart into an order. An empty cart is a
// precondition violation, answered with 400 rather than an order with no
// items.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	log := logger.FromContext(c)

	userID, err := parseUserIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	items, err := h.carts.Items(userID)
	if err != nil {
		log.Error("Failed to read cart", zap.Int64("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to read cart"})
	}
	if len(items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cart is empty"})
	}

	defer prometheus.TrackDBOperation("order_create")(time.Now())

	orderID, err := h.orders.CreateOrder(userID)
	if err != nil {
		log.Error("Failed to create order", zap.Int64("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create order"})
	}

	order, err := h.orders.Order(orderID)
	if err != nil || order == nil {
		log.Error("Failed to load created order", zap.Uint("order_id", orderID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load created order"})
	}
	prometheus.RecordOrderCreated(order.TotalPrice)

	log.Info("Order created",
		zap.Uint("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Int("total_price", order.TotalPrice))
	return c.JSON(http.StatusCreated, order)
}

// GetOrder returns one order with its item snapshots
func (h *OrderHandler) GetOrder(c echo.Context) error {
	log := logger.FromContext(c)

	orderID, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	order, err := h.orders.Order(orderID)
	if err != nil {
		log.Error("Failed to retrieve order", zap.Uint("order_id", orderID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve order"})
	}
	if order == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Order not found"})
	}

	return c.JSON(http.StatusOK, order)
}

// ListOrders returns the newest orders for the operator console
func (h *OrderHandler) ListOrders(c echo.Context) error {
	log := logger.FromContext(c)

	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
		}
		limit = parsed
	}

	orders, err := h.orders.Recent(limit)
	if err != nil {
		log.Error("Failed to list orders", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list orders"})
	}

	return c.JSON(http.StatusOK, orders)
}
