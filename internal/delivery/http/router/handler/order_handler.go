package handler

import (
	"log/slog"
	"net/http"

	"walletmart/internal/delivery/http/middleware"
	"walletmart/internal/delivery/http/response"
	"walletmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListOrders lists the user's orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderPayloads(orders), "Orders retrieved successfully")
}

// GetOrder retrieves one of the user's orders with its items.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := pathID(c, "orderID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	view, err := h.uc.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderPayload(view.Order, view.Items), "Order retrieved successfully")
}

// Cancel cancels a pending or processing order and refunds its total.
func (h *OrderHandler) Cancel(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := pathID(c, "orderID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	confirmation, err := h.uc.Cancel(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := map[string]any{
		"order_id": confirmation.OrderID,
		"refunded": confirmation.Refunded.StringFixed(2),
	}
	if confirmation.Transaction != nil {
		payload["transaction"] = toTransactionPayload(confirmation.Transaction)
	}

	return response.Success(c, http.StatusOK, payload, "Order cancelled successfully")
}
