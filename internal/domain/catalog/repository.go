package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListFilter is shared by categories and brands.
type ListFilter struct {
	Title  string
	Page   int
	Limit  int
	SortBy string
	Desc   bool
}

type ProductFilter struct {
	Category string // category title
	Brand    string // brand title
	Title    string
	Price    *decimal.Decimal

	Page   int
	Limit  int
	SortBy string
	Desc   bool
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByUUID(ctx context.Context, productUUID uuid.UUID) (*Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*Product, int64, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, productUUID uuid.UUID) error

	// PricesByUUID resolves current prices in one lookup. Unknown uuids are absent from the map.
	PricesByUUID(ctx context.Context, uuids []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByUUID(ctx context.Context, categoryUUID uuid.UUID) (*Category, error)
	List(ctx context.Context, filter ListFilter) ([]*Category, int64, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryUUID uuid.UUID) error
}

type BrandRepository interface {
	Create(ctx context.Context, brand *Brand) error
	GetByUUID(ctx context.Context, brandUUID uuid.UUID) (*Brand, error)
	List(ctx context.Context, filter ListFilter) ([]*Brand, int64, error)
	Update(ctx context.Context, brand *Brand) error
	Delete(ctx context.Context, brandUUID uuid.UUID) error
}

// ProductCache fronts single product reads.
type ProductCache interface {
	Get(ctx context.Context, productUUID uuid.UUID) (*Product, error)
	Set(ctx context.Context, product *Product) error
	Delete(ctx context.Context, productUUID uuid.UUID) error
}
