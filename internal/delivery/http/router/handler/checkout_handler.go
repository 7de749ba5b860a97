package handler

import (
	"log/slog"
	"net/http"

	"walletmart/internal/delivery/http/middleware"
	"walletmart/internal/delivery/http/response"
	"walletmart/internal/domain/entity"
	"walletmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the checkout handler.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

type placeOrderRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
	UseWallet     bool   `json:"use_wallet"`
	RedeemPoints  int    `json:"redeem_points"`
	OrderDate     string `json:"order_date"`
}

// PlaceOrder settles the user's cart into a completed order.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req *placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.uc.PlaceOrder(c.Request().Context(), userID, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		UseWallet:     req.UseWallet,
		RedeemPoints:  req.RedeemPoints,
		OrderDate:     req.OrderDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSettlementPayload(result), "Order placed successfully")
}
