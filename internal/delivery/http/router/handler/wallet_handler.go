package handler

import (
	"log/slog"
	"net/http"

	"walletmart/internal/delivery/http/middleware"
	"walletmart/internal/delivery/http/response"
	"walletmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// WalletHandler holds dependencies for wallet-related handlers.
type WalletHandler struct {
	uc     usecase.WalletUsecase
	logger *slog.Logger
}

// NewWalletHandler is the constructor for WalletHandler, injected by Fx.
func NewWalletHandler(uc usecase.WalletUsecase, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{
		uc:     uc,
		logger: logger,
	}
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TopUp credits the user's wallet.
func (h *WalletHandler) TopUp(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req *amountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid top-up input")
	}

	tx, err := h.uc.TopUp(c.Request().Context(), userID, req.Amount)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionPayload(tx), "Wallet topped up successfully")
}

// Withdraw debits the user's wallet.
func (h *WalletHandler) Withdraw(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req *amountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid withdrawal input")
	}

	tx, err := h.uc.Withdraw(c.Request().Context(), userID, req.Amount)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionPayload(tx), "Withdrawal completed successfully")
}

// GetAccounts lists the user's wallet accounts.
func (h *WalletHandler) GetAccounts(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	accounts, err := h.uc.GetAccounts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	payloads := make([]*accountPayload, 0, len(accounts))
	for _, account := range accounts {
		payloads = append(payloads, toAccountPayload(account))
	}

	return response.Success(c, http.StatusOK, payloads, "Accounts retrieved successfully")
}

// GetTransactions lists the ledger of one of the user's accounts.
func (h *WalletHandler) GetTransactions(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	accountID, err := pathID(c, "accountID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account id")
	}

	txs, err := h.uc.GetTransactions(c.Request().Context(), userID, accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionPayloads(txs), "Transactions retrieved successfully")
}
