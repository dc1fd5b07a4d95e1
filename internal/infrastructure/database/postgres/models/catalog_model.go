package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pet-shop-api/internal/domain/catalog"
)

type CategoryModel struct {
	ID        uint      `gorm:"primaryKey"`
	UUID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

type BrandModel struct {
	ID        uint      `gorm:"primaryKey"`
	UUID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (BrandModel) TableName() string {
	return "brands"
}

type ProductModel struct {
	ID           uint                    `gorm:"primaryKey"`
	UUID         uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex"`
	CategoryUUID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Title        string                  `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal         `gorm:"type:numeric(12,2);not null"`
	Description  string                  `gorm:"type:text;not null"`
	Metadata     catalog.ProductMetadata `gorm:"type:jsonb;serializer:json"`
	CreatedAt    time.Time               `gorm:"not null"`
	UpdatedAt    time.Time               `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryUUID;references:UUID"`
}

func (ProductModel) TableName() string {
	return "products"
}
