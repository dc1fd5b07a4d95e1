package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainCatalog "pet-shop-api/internal/domain/catalog"
	appErrors "pet-shop-api/pkg/errors"
)

type fixture struct {
	products   *MockProductRepository
	categories *MockCategoryRepository
	brands     *MockBrandRepository
	cache      *MockProductCache
	service    *Service
}

func newFixture() *fixture {
	f := &fixture{
		products:   new(MockProductRepository),
		categories: new(MockCategoryRepository),
		brands:     new(MockBrandRepository),
		cache:      new(MockProductCache),
	}
	f.service = NewService(f.products, f.categories, f.brands, f.cache)
	return f
}

func productRequest(categoryUUID, brandUUID uuid.UUID, price string) *ProductRequest {
	p := decimal.RequireFromString(price)
	return &ProductRequest{
		CategoryUUID: &categoryUUID,
		Title:        "Dog Food 5kg",
		Price:        &p,
		Description:  "Dry food",
		Metadata:     &ProductMetadataRequest{Brand: &brandUUID},
	}
}

func TestCreateProductResolvesReferences(t *testing.T) {
	f := newFixture()
	category := &domainCatalog.Category{UUID: uuid.New(), Title: "Food", Slug: "food"}
	brand := &domainCatalog.Brand{UUID: uuid.New(), Title: "Acme", Slug: "acme"}

	f.categories.On("GetByUUID", mock.Anything, category.UUID).Return(category, nil)
	f.brands.On("GetByUUID", mock.Anything, brand.UUID).Return(brand, nil)
	f.products.On("Create", mock.Anything, mock.MatchedBy(func(p *domainCatalog.Product) bool {
		return p.CategoryUUID == category.UUID && p.Price.Equal(decimal.RequireFromString("12.99"))
	})).Return(nil)

	resp, err := f.service.CreateProduct(context.Background(), productRequest(category.UUID, brand.UUID, "12.99"))

	require.NoError(t, err)
	assert.Equal(t, "Food", resp.Category.Title)
	assert.Equal(t, "Acme", resp.Brand.Title)
	assert.NotEqual(t, uuid.Nil, resp.UUID)
}

func TestCreateProductRejectsDanglingReferences(t *testing.T) {
	f := newFixture()
	categoryUUID, brandUUID := uuid.New(), uuid.New()

	f.categories.On("GetByUUID", mock.Anything, categoryUUID).Return(nil, domainCatalog.ErrCategoryNotFound)
	f.brands.On("GetByUUID", mock.Anything, brandUUID).Return(nil, domainCatalog.ErrBrandNotFound)

	_, err := f.service.CreateProduct(context.Background(), productRequest(categoryUUID, brandUUID, "0"))

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Fields, "category_uuid")
	assert.Contains(t, appErr.Fields, "metadata.brand")
	assert.Contains(t, appErr.Fields, "price")
	f.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetProductServedFromCache(t *testing.T) {
	f := newFixture()
	cached := &domainCatalog.Product{UUID: uuid.New(), Title: "Cat Toy"}
	f.cache.On("Get", mock.Anything, cached.UUID).Return(cached, nil)

	resp, err := f.service.GetProduct(context.Background(), cached.UUID)

	require.NoError(t, err)
	assert.Equal(t, "Cat Toy", resp.Title)
	f.products.AssertNotCalled(t, "GetByUUID", mock.Anything, mock.Anything)
}

func TestGetProductFillsCacheOnMiss(t *testing.T) {
	f := newFixture()
	product := &domainCatalog.Product{UUID: uuid.New(), Title: "Leash"}
	f.cache.On("Get", mock.Anything, product.UUID).Return(nil, nil)
	f.products.On("GetByUUID", mock.Anything, product.UUID).Return(product, nil)
	f.cache.On("Set", mock.Anything, product).Return(nil)

	_, err := f.service.GetProduct(context.Background(), product.UUID)

	require.NoError(t, err)
	f.cache.AssertExpectations(t)
}

func TestGetProductIgnoresCacheErrors(t *testing.T) {
	f := newFixture()
	product := &domainCatalog.Product{UUID: uuid.New(), Title: "Leash"}
	f.cache.On("Get", mock.Anything, product.UUID).Return(nil, errors.New("redis down"))
	f.products.On("GetByUUID", mock.Anything, product.UUID).Return(product, nil)
	f.cache.On("Set", mock.Anything, product).Return(errors.New("redis down"))

	resp, err := f.service.GetProduct(context.Background(), product.UUID)

	require.NoError(t, err)
	assert.Equal(t, "Leash", resp.Title)
}

func TestDeleteProductEvictsCache(t *testing.T) {
	f := newFixture()
	productUUID := uuid.New()
	f.products.On("Delete", mock.Anything, productUUID).Return(nil)
	f.cache.On("Delete", mock.Anything, productUUID).Return(nil)

	require.NoError(t, f.service.DeleteProduct(context.Background(), productUUID))
	f.cache.AssertExpectations(t)
}

func TestDeleteProductMissingKeepsCache(t *testing.T) {
	f := newFixture()
	productUUID := uuid.New()
	f.products.On("Delete", mock.Anything, productUUID).Return(domainCatalog.ErrProductNotFound)

	err := f.service.DeleteProduct(context.Background(), productUUID)

	assert.ErrorIs(t, err, domainCatalog.ErrProductNotFound)
	f.cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestNilCacheIsSkipped(t *testing.T) {
	products := new(MockProductRepository)
	product := &domainCatalog.Product{UUID: uuid.New()}
	products.On("GetByUUID", mock.Anything, product.UUID).Return(product, nil)

	s := NewService(products, new(MockCategoryRepository), new(MockBrandRepository), nil)
	_, err := s.GetProduct(context.Background(), product.UUID)

	require.NoError(t, err)
}

func TestCreateCategorySlug(t *testing.T) {
	f := newFixture()
	f.categories.On("Create", mock.Anything, mock.MatchedBy(func(c *domainCatalog.Category) bool {
		return c.Slug == "wet-food"
	})).Return(nil)

	resp, err := f.service.CreateCategory(context.Background(), &TitleRequest{Title: "Wet Food"})

	require.NoError(t, err)
	assert.Equal(t, "wet-food", resp.Slug)
}

func TestCreateBrandDuplicateSlug(t *testing.T) {
	f := newFixture()
	f.brands.On("Create", mock.Anything, mock.Anything).Return(domainCatalog.ErrSlugTaken)

	_, err := f.service.CreateBrand(context.Background(), &TitleRequest{Title: "Acme"})

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Fields, "title")
}

func TestListProductsNormalizesPaging(t *testing.T) {
	f := newFixture()
	f.products.On("List", mock.Anything, mock.MatchedBy(func(filter domainCatalog.ProductFilter) bool {
		return filter.Page == 1 && filter.Limit == 100 && filter.Brand == "Acme"
	})).Return([]*domainCatalog.Product{}, int64(0), nil)

	page, err := f.service.ListProducts(context.Background(), &ListProductsRequest{Brand: "Acme", Page: -3, Limit: 500})

	require.NoError(t, err)
	assert.Equal(t, 100, page.Limit)
}
