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

// AdminHandler holds dependencies for platform administration handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetLogs retrieves the audit trail with actor names.
func (h *AdminHandler) GetLogs(c echo.Context) error {
	logs, err := h.uc.GetLogs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLogPayloads(logs), "Logs retrieved successfully")
}

// GetStats aggregates platform counts and revenue.
func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.uc.GetStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	payload := map[string]any{
		"users":   stats.Users,
		"orders":  stats.Orders,
		"revenue": stats.Revenue.StringFixed(2),
	}

	return response.Success(c, http.StatusOK, payload, "Stats retrieved successfully")
}

type setUserStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetUserStatus blocks or unblocks a user.
func (h *AdminHandler) SetUserStatus(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, err := pathID(c, "userID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	var req *setUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.uc.SetUserStatus(c.Request().Context(), adminID, userID, entity.UserStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User status updated successfully")
}
