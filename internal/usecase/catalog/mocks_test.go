package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	domainCatalog "pet-shop-api/internal/domain/catalog"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p *domainCatalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) GetByUUID(ctx context.Context, productUUID uuid.UUID) (*domainCatalog.Product, error) {
	args := m.Called(ctx, productUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainCatalog.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter domainCatalog.ProductFilter) ([]*domainCatalog.Product, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domainCatalog.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Update(ctx context.Context, p *domainCatalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, productUUID uuid.UUID) error {
	return m.Called(ctx, productUUID).Error(0)
}

func (m *MockProductRepository) PricesByUUID(ctx context.Context, uuids []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	args := m.Called(ctx, uuids)
	return args.Get(0).(map[uuid.UUID]decimal.Decimal), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *domainCatalog.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) GetByUUID(ctx context.Context, categoryUUID uuid.UUID) (*domainCatalog.Category, error) {
	args := m.Called(ctx, categoryUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainCatalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, filter domainCatalog.ListFilter) ([]*domainCatalog.Category, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domainCatalog.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *domainCatalog.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, categoryUUID uuid.UUID) error {
	return m.Called(ctx, categoryUUID).Error(0)
}

type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) Create(ctx context.Context, b *domainCatalog.Brand) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBrandRepository) GetByUUID(ctx context.Context, brandUUID uuid.UUID) (*domainCatalog.Brand, error) {
	args := m.Called(ctx, brandUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainCatalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) List(ctx context.Context, filter domainCatalog.ListFilter) ([]*domainCatalog.Brand, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domainCatalog.Brand), args.Get(1).(int64), args.Error(2)
}

func (m *MockBrandRepository) Update(ctx context.Context, b *domainCatalog.Brand) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBrandRepository) Delete(ctx context.Context, brandUUID uuid.UUID) error {
	return m.Called(ctx, brandUUID).Error(0)
}

type MockProductCache struct {
	mock.Mock
}

func (m *MockProductCache) Get(ctx context.Context, productUUID uuid.UUID) (*domainCatalog.Product, error) {
	args := m.Called(ctx, productUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainCatalog.Product), args.Error(1)
}

func (m *MockProductCache) Set(ctx context.Context, p *domainCatalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductCache) Delete(ctx context.Context, productUUID uuid.UUID) error {
	return m.Called(ctx, productUUID).Error(0)
}
