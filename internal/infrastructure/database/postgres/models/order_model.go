package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pet-shop-api/internal/domain/order"
)

type OrderModel struct {
	ID              uint             `gorm:"primaryKey"`
	UUID            uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex"`
	UserID          uint             `gorm:"not null;index"`
	OrderStatusUUID uuid.UUID        `gorm:"type:uuid;not null"`
	PaymentUUID     uuid.UUID        `gorm:"type:uuid;not null"`
	Products        []order.LineItem `gorm:"type:jsonb;serializer:json;not null"`
	Address         order.Address    `gorm:"type:jsonb;serializer:json;not null"`
	DeliveryFee     decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Amount          decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	ShippedAt       *time.Time       `gorm:"index"`
	CreatedAt       time.Time        `gorm:"not null;index"`
	UpdatedAt       time.Time        `gorm:"not null"`

	// Filled from the users join on reads.
	UserUUID uuid.UUID `gorm:"->;column:user_uuid"`
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderStatusModel struct {
	ID        uint      `gorm:"primaryKey"`
	UUID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Title     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (OrderStatusModel) TableName() string {
	return "order_statuses"
}

type PaymentModel struct {
	ID        uint                   `gorm:"primaryKey"`
	UUID      uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex"`
	Type      string                 `gorm:"type:varchar(32);not null"`
	Title     string                 `gorm:"type:varchar(255);not null"`
	Details   map[string]interface{} `gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time              `gorm:"not null"`
	UpdatedAt time.Time              `gorm:"not null"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
