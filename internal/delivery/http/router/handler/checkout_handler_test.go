package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"walletmart/internal/delivery/http/middleware"
	"walletmart/internal/delivery/http/validator"
	"walletmart/internal/domain/entity"
	"walletmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCheckoutUsecase struct {
	result   *usecase.PlaceOrderResult
	err      error
	gotUser  uint
	gotInput *usecase.PlaceOrderInput
}

func (s *stubCheckoutUsecase) PlaceOrder(_ context.Context, userID uint, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderResult, error) {
	s.gotUser = userID
	s.gotInput = input

	return s.result, s.err
}

func TestCheckoutHandler_PlaceOrder(t *testing.T) {
	order := &entity.Order{
		ID:             42,
		TotalAmount:    decimal.RequireFromString("200"),
		WalletAmount:   decimal.RequireFromString("50"),
		RewardDiscount: decimal.Zero,
		PaymentMethod:  entity.PaymentCard,
		Status:         entity.OrderCompleted,
		CreatedAt:      time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
	}
	uc := &stubCheckoutUsecase{
		result: &usecase.PlaceOrderResult{
			Order:          order,
			Items:          []*entity.OrderItem{{ProductID: 11, Quantity: 2, PriceAtTime: decimal.RequireFromString("100")}},
			Subtotal:       decimal.RequireFromString("200"),
			RewardDiscount: decimal.Zero,
			WalletAmount:   decimal.RequireFromString("50"),
			FinalAmount:    decimal.RequireFromString("150"),
			PointsEarned:   10,
		},
	}
	handler := NewCheckoutHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	e.Validator = validator.New()
	body := `{"payment_method":"card","use_wallet":true,"redeem_points":0,"order_date":"2025-06-15T10:30:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, uint(7))

	require.NoError(t, handler.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, uint(7), uc.gotUser)
	require.NotNil(t, uc.gotInput)
	assert.Equal(t, entity.PaymentCard, uc.gotInput.PaymentMethod)
	assert.True(t, uc.gotInput.UseWallet)
	assert.Equal(t, "2025-06-15T10:30:00Z", uc.gotInput.OrderDate)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"final_amount":"150.00"`)
	assert.Contains(t, responseBody, `"wallet_amount":"50.00"`)
	assert.Contains(t, responseBody, `"points_earned":10`)
	assert.Contains(t, responseBody, `"price_at_time":"100.00"`)
	assert.NotContains(t, responseBody, "password")
}

func TestCheckoutHandler_PlaceOrder_MissingAuth(t *testing.T) {
	handler := NewCheckoutHandler(&stubCheckoutUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"payment_method":"card"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PlaceOrder(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
