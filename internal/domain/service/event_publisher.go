package service

import (
	"context"
)

// SettlementEvent describes a completed checkout for downstream consumers
// (notifications, analytics). It is published after the settlement
// transaction commits, best-effort.
type SettlementEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	OrderID       uint   `json:"order_id"`
	UserID        uint   `json:"user_id"`
	TotalAmount   string `json:"total_amount"`
	WalletAmount  string `json:"wallet_amount"`
	RewardPoints  int    `json:"reward_points"`
	PaymentMethod string `json:"payment_method"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSettlementEvent publishes a settlement event for async processing
	PublishSettlementEvent(ctx context.Context, event *SettlementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
