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

// RewardHandler holds dependencies for reward handlers.
type RewardHandler struct {
	uc     usecase.RewardUsecase
	logger *slog.Logger
}

// NewRewardHandler is the constructor for RewardHandler, injected by Fx.
func NewRewardHandler(uc usecase.RewardUsecase, logger *slog.Logger) *RewardHandler {
	return &RewardHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetBalance retrieves the user's reward lots and point total.
func (h *RewardHandler) GetBalance(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	balance, err := h.uc.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRewardBalancePayload(balance), "Reward balance retrieved successfully")
}

type redeemRequest struct {
	Points int `json:"points" validate:"required"`
}

// Redeem converts reward points into wallet balance.
func (h *RewardHandler) Redeem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req *redeemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	redemption, err := h.uc.Redeem(c.Request().Context(), userID, req.Points)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := map[string]any{
		"points_redeemed": redemption.PointsRedeemed,
		"amount_credited": redemption.AmountCredited.StringFixed(2),
		"transaction":     toTransactionPayload(redemption.Transaction),
	}

	return response.Success(c, http.StatusOK, payload, "Points redeemed successfully")
}
