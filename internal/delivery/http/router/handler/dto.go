package handler

import (
	"time"

	"walletmart/internal/domain/entity"
	"walletmart/internal/domain/repository"
	"walletmart/internal/usecase"
)

// Response payloads. Entities are mapped explicitly so sensitive fields
// (password hashes) never reach the wire and money is rendered with two
// decimal places.

type userPayload struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	Phone        string `json:"phone,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	CreatedAt    string `json:"created_at"`
}

func toUserPayload(user *entity.User) *userPayload {
	return &userPayload{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		Role:         string(user.Role),
		Status:       string(user.Status),
		Phone:        user.Phone,
		ProfileImage: user.ProfileImage,
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
	}
}

type authPayload struct {
	Token string       `json:"token"`
	User  *userPayload `json:"user"`
}

func toAuthPayload(result *usecase.AuthResult) *authPayload {
	return &authPayload{
		Token: result.Token,
		User:  toUserPayload(result.User),
	}
}

type merchantPayload struct {
	ID               uint   `json:"id"`
	BusinessName     string `json:"business_name"`
	BusinessCategory string `json:"business_category"`
	ContactName      string `json:"contact_name,omitempty"`
	ContactEmail     string `json:"contact_email,omitempty"`
	ContactPhone     string `json:"contact_phone,omitempty"`
}

func toMerchantPayload(merchant *entity.Merchant) *merchantPayload {
	return &merchantPayload{
		ID:               merchant.ID,
		BusinessName:     merchant.BusinessName,
		BusinessCategory: merchant.BusinessCategory,
		ContactName:      merchant.ContactName,
		ContactEmail:     merchant.ContactEmail,
		ContactPhone:     merchant.ContactPhone,
	}
}

type accountPayload struct {
	ID      uint   `json:"id"`
	Type    string `json:"type"`
	Balance string `json:"balance"`
}

func toAccountPayload(account *entity.Account) *accountPayload {
	return &accountPayload{
		ID:      account.ID,
		Type:    string(account.Type),
		Balance: account.Balance.StringFixed(2),
	}
}

type transactionPayload struct {
	ID        uint   `json:"id"`
	AccountID uint   `json:"account_id"`
	Amount    string `json:"amount"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func toTransactionPayload(tx *entity.Transaction) *transactionPayload {
	return &transactionPayload{
		ID:        tx.ID,
		AccountID: tx.AccountID,
		Amount:    tx.Amount.StringFixed(2),
		Type:      string(tx.Type),
		Status:    string(tx.Status),
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
	}
}

func toTransactionPayloads(txs []*entity.Transaction) []*transactionPayload {
	payloads := make([]*transactionPayload, 0, len(txs))
	for _, tx := range txs {
		payloads = append(payloads, toTransactionPayload(tx))
	}

	return payloads
}

type productPayload struct {
	ID          uint   `json:"id"`
	MerchantID  uint   `json:"merchant_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	MRP         string `json:"mrp"`
	Stock       int    `json:"stock"`
	Category    string `json:"category,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Status      string `json:"status"`
}

func toProductPayload(product *entity.Product) *productPayload {
	return &productPayload{
		ID:          product.ID,
		MerchantID:  product.MerchantID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.StringFixed(2),
		MRP:         product.MRP.StringFixed(2),
		Stock:       product.Stock,
		Category:    product.Category,
		ImageURL:    product.ImageURL,
		Status:      string(product.Status),
	}
}

func toProductPayloads(products []*entity.Product) []*productPayload {
	payloads := make([]*productPayload, 0, len(products))
	for _, product := range products {
		payloads = append(payloads, toProductPayload(product))
	}

	return payloads
}

type cartLinePayload struct {
	Product  *productPayload `json:"product"`
	Quantity int             `json:"quantity"`
	LineCost string          `json:"line_cost"`
}

type cartPayload struct {
	Lines    []*cartLinePayload `json:"lines"`
	Subtotal string             `json:"subtotal"`
}

func toCartPayload(view *usecase.CartView) *cartPayload {
	payload := &cartPayload{
		Lines:    make([]*cartLinePayload, 0, len(view.Lines)),
		Subtotal: view.Subtotal.StringFixed(2),
	}
	for _, line := range view.Lines {
		payload.Lines = append(payload.Lines, &cartLinePayload{
			Product:  toProductPayload(line.Product),
			Quantity: line.Item.Quantity,
			LineCost: line.LineCost.StringFixed(2),
		})
	}

	return payload
}

type orderItemPayload struct {
	ProductID   uint   `json:"product_id"`
	Quantity    int    `json:"quantity"`
	PriceAtTime string `json:"price_at_time"`
}

type orderPayload struct {
	ID             uint                `json:"id"`
	TotalAmount    string              `json:"total_amount"`
	WalletAmount   string              `json:"wallet_amount"`
	RewardDiscount string              `json:"reward_discount"`
	PaymentMethod  string              `json:"payment_method"`
	Status         string              `json:"status"`
	CreatedAt      string              `json:"created_at"`
	Items          []*orderItemPayload `json:"items,omitempty"`
}

func toOrderPayload(order *entity.Order, items []*entity.OrderItem) *orderPayload {
	payload := &orderPayload{
		ID:             order.ID,
		TotalAmount:    order.TotalAmount.StringFixed(2),
		WalletAmount:   order.WalletAmount.StringFixed(2),
		RewardDiscount: order.RewardDiscount.StringFixed(2),
		PaymentMethod:  string(order.PaymentMethod),
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt.Format(time.RFC3339),
	}
	for _, item := range items {
		payload.Items = append(payload.Items, &orderItemPayload{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			PriceAtTime: item.PriceAtTime.StringFixed(2),
		})
	}

	return payload
}

func toOrderPayloads(orders []*entity.Order) []*orderPayload {
	payloads := make([]*orderPayload, 0, len(orders))
	for _, order := range orders {
		payloads = append(payloads, toOrderPayload(order, nil))
	}

	return payloads
}

type settlementPayload struct {
	Order          *orderPayload `json:"order"`
	Subtotal       string        `json:"subtotal"`
	RewardDiscount string        `json:"reward_discount"`
	WalletAmount   string        `json:"wallet_amount"`
	FinalAmount    string        `json:"final_amount"`
	PointsEarned   int           `json:"points_earned"`
}

func toSettlementPayload(result *usecase.PlaceOrderResult) *settlementPayload {
	return &settlementPayload{
		Order:          toOrderPayload(result.Order, result.Items),
		Subtotal:       result.Subtotal.StringFixed(2),
		RewardDiscount: result.RewardDiscount.StringFixed(2),
		WalletAmount:   result.WalletAmount.StringFixed(2),
		FinalAmount:    result.FinalAmount.StringFixed(2),
		PointsEarned:   result.PointsEarned,
	}
}

type rewardLotPayload struct {
	ID        uint   `json:"id"`
	Points    int    `json:"points"`
	CreatedAt string `json:"created_at"`
}

type rewardBalancePayload struct {
	Points int                 `json:"points"`
	Lots   []*rewardLotPayload `json:"lots"`
}

func toRewardBalancePayload(balance *usecase.RewardBalance) *rewardBalancePayload {
	payload := &rewardBalancePayload{
		Points: balance.Points,
		Lots:   make([]*rewardLotPayload, 0, len(balance.Lots)),
	}
	for _, lot := range balance.Lots {
		payload.Lots = append(payload.Lots, &rewardLotPayload{
			ID:        lot.ID,
			Points:    lot.Points,
			CreatedAt: lot.CreatedAt.Format(time.RFC3339),
		})
	}

	return payload
}

type logPayload struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	UserName    string `json:"user_name"`
	Action      string `json:"action"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

func toLogPayloads(rows []*repository.LogWithUser) []*logPayload {
	payloads := make([]*logPayload, 0, len(rows))
	for _, row := range rows {
		payloads = append(payloads, &logPayload{
			ID:          row.LogID,
			UserID:      row.UserID,
			UserName:    row.UserName,
			Action:      row.Action,
			Description: row.Description,
			CreatedAt:   row.CreatedAt.Format(time.RFC3339),
		})
	}

	return payloads
}
