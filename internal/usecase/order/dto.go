package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainOrder "pet-shop-api/internal/domain/order"
)

type LineItemRequest struct {
	Product  *uuid.UUID `json:"uuid" validate:"required"`
	Quantity int        `json:"quantity"`
}

type AddressRequest struct {
	Billing  string `json:"billing" validate:"required,max=255"`
	Shipping string `json:"shipping" validate:"required,max=255"`
}

type CreateOrderRequest struct {
	OrderStatusUUID *uuid.UUID        `json:"order_status_uuid" validate:"required"`
	PaymentUUID     *uuid.UUID        `json:"payment_uuid" validate:"required"`
	Products        []LineItemRequest `json:"products" validate:"required,min=1,dive"`
	Address         *AddressRequest   `json:"address" validate:"required"`
}

// UpdateOrderRequest replaces an order. ShippedAt is honoured for admins only
// and left unchanged when omitted.
type UpdateOrderRequest struct {
	CreateOrderRequest
	ShippedAt *time.Time `json:"shipped_at"`
}

type ListOrdersRequest struct {
	Page   int
	Limit  int
	SortBy string
	Desc   bool
}

type DashboardRequest struct {
	// FixRange is today, monthly or yearly. Ignored when From/To are set.
	FixRange string
	From     string
	To       string
	Page     int
	Limit    int
	SortBy   string
	Desc     bool
}

type ShipmentLocatorRequest struct {
	OrderUUID    *uuid.UUID
	CustomerUUID *uuid.UUID
	From         string
	To           string
	Page         int
	Limit        int
	SortBy       string
	Desc         bool
}

type OrderResponse struct {
	UUID            uuid.UUID              `json:"uuid"`
	UserUUID        uuid.UUID              `json:"user_uuid"`
	OrderStatusUUID uuid.UUID              `json:"order_status_uuid"`
	PaymentUUID     uuid.UUID              `json:"payment_uuid"`
	Products        []domainOrder.LineItem `json:"products"`
	Address         domainOrder.Address    `json:"address"`
	Amount          decimal.Decimal        `json:"amount"`
	DeliveryFee     decimal.Decimal        `json:"delivery_fee"`
	Total           decimal.Decimal        `json:"total"`
	ShippedAt       *time.Time             `json:"shipped_at"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type OrderListResponse struct {
	Orders []*OrderResponse
	Total  int64
	Page   int
	Limit  int
}

type ChartPoint struct {
	Label  string          `json:"label"`
	Orders int64           `json:"orders"`
	Amount decimal.Decimal `json:"amount"`
}

type DashboardResponse struct {
	Orders            *OrderListResponse `json:"-"`
	Chart             []ChartPoint       `json:"chart"`
	TotalEarnings     decimal.Decimal    `json:"total_earnings"`
	PotentialEarnings decimal.Decimal    `json:"potential_earnings"`
	OrdersThisMonth   int64              `json:"orders_this_month"`
}

type OrderStatusRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type OrderStatusResponse struct {
	UUID      uuid.UUID `json:"uuid"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaymentRequest struct {
	Type    string                 `json:"type" validate:"required,payment_type"`
	Title   string                 `json:"title" validate:"required,max=255"`
	Details map[string]interface{} `json:"details" validate:"required"`
}

type PaymentResponse struct {
	UUID      uuid.UUID              `json:"uuid"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Details   map[string]interface{} `json:"details"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type ListStatusesRequest struct {
	Title  string
	Page   int
	Limit  int
	SortBy string
	Desc   bool
}

type ListPaymentsRequest struct {
	Type   string
	Page   int
	Limit  int
	SortBy string
	Desc   bool
}

func ToOrderResponse(o *domainOrder.Order) *OrderResponse {
	return &OrderResponse{
		UUID:            o.UUID,
		UserUUID:        o.UserUUID,
		OrderStatusUUID: o.OrderStatusUUID,
		PaymentUUID:     o.PaymentUUID,
		Products:        o.Products,
		Address:         o.Address,
		Amount:          o.Amount,
		DeliveryFee:     o.DeliveryFee,
		Total:           o.Total(),
		ShippedAt:       o.ShippedAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toOrderList(orders []*domainOrder.Order, total int64, page, limit int) *OrderListResponse {
	resp := &OrderListResponse{
		Orders: make([]*OrderResponse, len(orders)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	for i, o := range orders {
		resp.Orders[i] = ToOrderResponse(o)
	}
	return resp
}

func ToOrderStatusResponse(s *domainOrder.OrderStatus) *OrderStatusResponse {
	return &OrderStatusResponse{UUID: s.UUID, Title: s.Title, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

func ToPaymentResponse(p *domainOrder.Payment) *PaymentResponse {
	return &PaymentResponse{
		UUID:      p.UUID,
		Type:      string(p.Type),
		Title:     p.Title,
		Details:   p.Details,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
