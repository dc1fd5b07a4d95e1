package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Filter struct {
	UserID       *uint
	UserUUID     *uuid.UUID
	OrderUUID    *uuid.UUID
	ShippedOnly  bool
	CreatedFrom  *time.Time
	CreatedUntil *time.Time

	Page   int
	Limit  int
	SortBy string
	Desc   bool
}

// ChartBucket is one point of the dashboard chart.
type ChartBucket struct {
	Label  string
	Orders int64
	Amount decimal.Decimal
}

// Earnings summarises orders created in a window.
type Earnings struct {
	Shipped   decimal.Decimal
	Unshipped decimal.Decimal
	Orders    int64
}

type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByUUID(ctx context.Context, orderUUID uuid.UUID) (*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, int64, error)
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, orderUUID uuid.UUID) error

	// Chart groups orders created in [from, until) by the given postgres date_trunc unit.
	Chart(ctx context.Context, from, until time.Time, unit string) ([]ChartBucket, error)
	Earnings(ctx context.Context, from, until *time.Time) (*Earnings, error)
}

type StatusRepository interface {
	Create(ctx context.Context, status *OrderStatus) error
	GetByUUID(ctx context.Context, statusUUID uuid.UUID) (*OrderStatus, error)
	List(ctx context.Context, title string, page, limit int, sortBy string, desc bool) ([]*OrderStatus, int64, error)
	Update(ctx context.Context, status *OrderStatus) error
	Delete(ctx context.Context, statusUUID uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByUUID(ctx context.Context, paymentUUID uuid.UUID) (*Payment, error)
	List(ctx context.Context, paymentType PaymentType, page, limit int, sortBy string, desc bool) ([]*Payment, int64, error)
	Update(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, paymentUUID uuid.UUID) error
}

// Event is published after an order write commits.
type Event struct {
	Name        string          `json:"event"`
	OrderUUID   uuid.UUID       `json:"order_uuid"`
	UserUUID    uuid.UUID       `json:"user_uuid"`
	Amount      decimal.Decimal `json:"amount"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

const (
	EventCreated = "order.created"
	EventUpdated = "order.updated"
	EventDeleted = "order.deleted"
)

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
