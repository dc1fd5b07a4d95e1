package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainCatalog "pet-shop-api/internal/domain/catalog"
)

type ProductMetadataRequest struct {
	Brand *uuid.UUID `json:"brand" validate:"required"`
	Image *uuid.UUID `json:"image"`
}

type ProductRequest struct {
	CategoryUUID *uuid.UUID              `json:"category_uuid" validate:"required"`
	Title        string                  `json:"title" validate:"required,max=255"`
	Price        *decimal.Decimal        `json:"price" validate:"required"`
	Description  string                  `json:"description" validate:"required"`
	Metadata     *ProductMetadataRequest `json:"metadata" validate:"required"`
}

type TitleRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type ListProductsRequest struct {
	Category string
	Brand    string
	Title    string
	Price    *decimal.Decimal
	Page     int
	Limit    int
	SortBy   string
	Desc     bool
}

type ListRequest struct {
	Title  string
	Page   int
	Limit  int
	SortBy string
	Desc   bool
}

type CategoryResponse struct {
	UUID      uuid.UUID `json:"uuid"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BrandResponse struct {
	UUID      uuid.UUID `json:"uuid"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductResponse struct {
	UUID         uuid.UUID                     `json:"uuid"`
	CategoryUUID uuid.UUID                     `json:"category_uuid"`
	Title        string                        `json:"title"`
	Price        decimal.Decimal               `json:"price"`
	Description  string                        `json:"description"`
	Metadata     domainCatalog.ProductMetadata `json:"metadata"`
	Category     *CategoryResponse             `json:"category"`
	Brand        *BrandResponse                `json:"brand"`
	CreatedAt    time.Time                     `json:"created_at"`
	UpdatedAt    time.Time                     `json:"updated_at"`
}

func ToCategoryResponse(c *domainCatalog.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{UUID: c.UUID, Title: c.Title, Slug: c.Slug, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func ToBrandResponse(b *domainCatalog.Brand) *BrandResponse {
	if b == nil {
		return nil
	}
	return &BrandResponse{UUID: b.UUID, Title: b.Title, Slug: b.Slug, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func ToProductResponse(p *domainCatalog.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		UUID:         p.UUID,
		CategoryUUID: p.CategoryUUID,
		Title:        p.Title,
		Price:        p.Price,
		Description:  p.Description,
		Metadata:     p.Metadata,
		Category:     ToCategoryResponse(p.Category),
		Brand:        ToBrandResponse(p.Brand),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
