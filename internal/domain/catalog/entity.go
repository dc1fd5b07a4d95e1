package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID        uint
	UUID      uuid.UUID
	Title     string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Brand struct {
	ID        uint
	UUID      uuid.UUID
	Title     string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductMetadata is stored as a JSON document next to the product row.
type ProductMetadata struct {
	Brand *uuid.UUID `json:"brand,omitempty"`
	Image *uuid.UUID `json:"image,omitempty"`
}

type Product struct {
	ID           uint
	UUID         uuid.UUID
	CategoryUUID uuid.UUID
	Title        string
	Price        decimal.Decimal
	Description  string
	Metadata     ProductMetadata
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Resolved on reads, nil when the reference is dangling.
	Category *Category
	Brand    *Brand
}
