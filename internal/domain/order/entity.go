package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem references a product and how many units were ordered.
type LineItem struct {
	Product  uuid.UUID `json:"uuid"`
	Quantity int       `json:"quantity"`
}

type Address struct {
	Billing  string `json:"billing"`
	Shipping string `json:"shipping"`
}

type Order struct {
	ID              uint
	UUID            uuid.UUID
	UserID          uint
	UserUUID        uuid.UUID
	OrderStatusUUID uuid.UUID
	PaymentUUID     uuid.UUID
	Products        []LineItem
	Address         Address
	Amount          decimal.Decimal
	DeliveryFee     decimal.Decimal
	ShippedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (o *Order) IsShipped() bool {
	return o.ShippedAt != nil
}

func (o *Order) Total() decimal.Decimal {
	return o.Amount.Add(o.DeliveryFee)
}

type OrderStatus struct {
	ID        uint
	UUID      uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PaymentType string

const (
	PaymentCreditCard     PaymentType = "credit_card"
	PaymentCashOnDelivery PaymentType = "cash_on_delivery"
	PaymentBankTransfer   PaymentType = "bank_transfer"
)

func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentCreditCard, PaymentCashOnDelivery, PaymentBankTransfer:
		return true
	}
	return false
}

type Payment struct {
	ID        uint
	UUID      uuid.UUID
	Type      PaymentType
	Title     string
	Details   map[string]interface{}
	CreatedAt time.Time
	UpdatedAt time.Time
}
