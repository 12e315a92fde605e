package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/welcomehome/inventory/internal/service"
)

// OrderHandler exposes the order lifecycle: start, add items to the
// session's active order, prepare for delivery, and listings.
type OrderHandler struct {
	App *service.App
}

func NewOrderHandler(app *service.App) *OrderHandler {
	return &OrderHandler{App: app}
}

type startOrderReq struct {
	ClientUsername string `json:"client_username"`
}

type addItemReq struct {
	ItemID string `json:"item_id"`
}

// Start handles POST /v1/orders. The new order becomes the session's
// active order.
func (h *OrderHandler) Start(c echo.Context) error {
	var req startOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.ClientUsername = strings.TrimSpace(req.ClientUsername)
	if req.ClientUsername == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "client_username required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess := currentSession(c, h.App)
	orderID, err := h.App.StartOrder(ctx, sess, req.ClientUsername)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"order_id": orderID})
}

// AddItem handles POST /v1/orders/active/items.
func (h *OrderHandler) AddItem(c echo.Context) error {
	var req addItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.ItemID = strings.TrimSpace(req.ItemID)
	if req.ItemID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "item_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess := currentSession(c, h.App)
	if err := h.App.AddToOrder(ctx, sess, req.ItemID); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Prepare handles POST /v1/orders/:id/prepare.
func (h *OrderHandler) Prepare(c echo.Context) error {
	orderID := c.Param("id")
	if orderID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.App.PrepareOrder(ctx, orderID); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/orders: the session user's orders, or all
// orders for elevated roles.
func (h *OrderHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess := currentSession(c, h.App)
	orders, err := h.App.UserOrders(ctx, sess)
	if err != nil {
		return respondErr(c, err)
	}
	out := make([]echo.Map, 0, len(orders))
	for _, o := range orders {
		out = append(out, echo.Map{
			"order_id":        o.OrderID,
			"client_username": o.ClientUsername,
			"status":          string(o.Status),
			"created_at":      o.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": out})
}

// Items handles GET /v1/orders/:id/items.
func (h *OrderHandler) Items(c echo.Context) error {
	orderID := c.Param("id")
	if orderID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pairs, err := h.App.FindOrderItems(ctx, orderID)
	if err != nil {
		return respondErr(c, err)
	}
	out := make([]echo.Map, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, echo.Map{"item_id": p.ItemID, "location": p.Location})
	}
	return c.JSON(http.StatusOK, echo.Map{"order_id": orderID, "items": out})
}
