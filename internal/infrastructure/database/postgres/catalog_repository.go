package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pet-shop-api/internal/domain/catalog"
	"pet-shop-api/internal/infrastructure/database/postgres/models"
	"pet-shop-api/pkg/pagination"
)

var (
	productSortable = map[string]string{
		"title":      "products.title",
		"price":      "products.price",
		"created_at": "products.created_at",
		"updated_at": "products.updated_at",
	}
	titledSortable = map[string]string{
		"title":      "title",
		"slug":       "slug",
		"created_at": "created_at",
	}
)

type ProductRepository struct {
	db *DB
}

func NewProductRepository(db *DB) catalog.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}

	dbModel := toProductModel(p)
	if err := r.db.DB.WithContext(ctx).Omit("Category").Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	p.ID = dbModel.ID
	p.CreatedAt = dbModel.CreatedAt
	p.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *ProductRepository) GetByUUID(ctx context.Context, productUUID uuid.UUID) (*catalog.Product, error) {
	var dbModel models.ProductModel
	err := r.db.DB.WithContext(ctx).Preload("Category").Where("uuid = ?", productUUID).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	products := []*catalog.Product{toProductEntity(&dbModel)}
	if err := r.attachBrands(ctx, products); err != nil {
		return nil, err
	}

	return products[0], nil
}

func (r *ProductRepository) List(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, int64, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.ProductModel{})

	if filter.Category != "" {
		query = query.
			Joins("JOIN categories ON categories.uuid = products.category_uuid").
			Where("categories.title ILIKE ?", likePattern(filter.Category))
	}
	if filter.Brand != "" {
		query = query.Where(
			"products.metadata->>'brand' IN (?)",
			r.db.DB.Model(&models.BrandModel{}).Select("uuid::text").Where("title ILIKE ?", likePattern(filter.Brand)),
		)
	}
	if filter.Title != "" {
		query = query.Where("products.title ILIKE ?", likePattern(filter.Title))
	}
	if filter.Price != nil {
		query = query.Where("products.price = ?", *filter.Price)
	}

	params := pagination.Params{Page: filter.Page, Limit: filter.Limit, SortBy: filter.SortBy, Desc: filter.Desc}
	paged, total, err := page(query, params, productSortable, "products.created_at desc")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var dbModels []models.ProductModel
	if err := paged.Select("products.*").Preload("Category").Find(&dbModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*catalog.Product, len(dbModels))
	for i := range dbModels {
		products[i] = toProductEntity(&dbModels[i])
	}
	if err := r.attachBrands(ctx, products); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	result := r.db.DB.WithContext(ctx).Model(&models.ProductModel{}).
		Where("uuid = ?", p.UUID).
		Updates(map[string]interface{}{
			"category_uuid": p.CategoryUUID,
			"title":         p.Title,
			"price":         p.Price,
			"description":   p.Description,
			"metadata":      gorm.Expr("?::jsonb", mustJSON(p.Metadata)),
			"updated_at":    time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, productUUID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.ProductModel{}, "uuid = ?", productUUID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) PricesByUUID(ctx context.Context, uuids []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	prices := make(map[uuid.UUID]decimal.Decimal, len(uuids))
	if len(uuids) == 0 {
		return prices, nil
	}

	var rows []struct {
		UUID  uuid.UUID
		Price decimal.Decimal
	}
	err := r.db.DB.WithContext(ctx).Model(&models.ProductModel{}).
		Select("uuid, price").
		Where("uuid IN ?", uuids).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load product prices: %w", err)
	}

	for _, row := range rows {
		prices[row.UUID] = row.Price
	}

	return prices, nil
}

// attachBrands resolves metadata.brand for a page of products in one query.
func (r *ProductRepository) attachBrands(ctx context.Context, products []*catalog.Product) error {
	var ids []uuid.UUID
	for _, p := range products {
		if p.Metadata.Brand != nil {
			ids = append(ids, *p.Metadata.Brand)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var brands []models.BrandModel
	if err := r.db.DB.WithContext(ctx).Where("uuid IN ?", ids).Find(&brands).Error; err != nil {
		return fmt.Errorf("failed to load brands: %w", err)
	}

	byUUID := make(map[uuid.UUID]*catalog.Brand, len(brands))
	for i := range brands {
		byUUID[brands[i].UUID] = toBrandEntity(&brands[i])
	}
	for _, p := range products {
		if p.Metadata.Brand != nil {
			p.Brand = byUUID[*p.Metadata.Brand]
		}
	}

	return nil
}

type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) catalog.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	if c.UUID == uuid.Nil {
		c.UUID = uuid.New()
	}

	dbModel := &models.CategoryModel{UUID: c.UUID, Title: c.Title, Slug: c.Slug}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return catalog.ErrSlugTaken
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	c.ID = dbModel.ID
	c.CreatedAt = dbModel.CreatedAt
	c.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *CategoryRepository) GetByUUID(ctx context.Context, categoryUUID uuid.UUID) (*catalog.Category, error) {
	var dbModel models.CategoryModel
	err := r.db.DB.WithContext(ctx).Where("uuid = ?", categoryUUID).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return toCategoryEntity(&dbModel), nil
}

func (r *CategoryRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Category, int64, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.CategoryModel{})
	if filter.Title != "" {
		query = query.Where("title ILIKE ?", likePattern(filter.Title))
	}

	params := pagination.Params{Page: filter.Page, Limit: filter.Limit, SortBy: filter.SortBy, Desc: filter.Desc}
	paged, total, err := page(query, params, titledSortable, "created_at desc")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	var dbModels []models.CategoryModel
	if err := paged.Find(&dbModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*catalog.Category, len(dbModels))
	for i := range dbModels {
		categories[i] = toCategoryEntity(&dbModels[i])
	}

	return categories, total, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	result := r.db.DB.WithContext(ctx).Model(&models.CategoryModel{}).
		Where("uuid = ?", c.UUID).
		Updates(map[string]interface{}{
			"title":      c.Title,
			"slug":       c.Slug,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return catalog.ErrSlugTaken
		}
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrCategoryNotFound
	}

	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryUUID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.CategoryModel{}, "uuid = ?", categoryUUID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrCategoryNotFound
	}

	return nil
}

type BrandRepository struct {
	db *DB
}

func NewBrandRepository(db *DB) catalog.BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) Create(ctx context.Context, b *catalog.Brand) error {
	if b.UUID == uuid.Nil {
		b.UUID = uuid.New()
	}

	dbModel := &models.BrandModel{UUID: b.UUID, Title: b.Title, Slug: b.Slug}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return catalog.ErrSlugTaken
		}
		return fmt.Errorf("failed to create brand: %w", err)
	}

	b.ID = dbModel.ID
	b.CreatedAt = dbModel.CreatedAt
	b.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *BrandRepository) GetByUUID(ctx context.Context, brandUUID uuid.UUID) (*catalog.Brand, error) {
	var dbModel models.BrandModel
	err := r.db.DB.WithContext(ctx).Where("uuid = ?", brandUUID).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrBrandNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	return toBrandEntity(&dbModel), nil
}

func (r *BrandRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Brand, int64, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.BrandModel{})
	if filter.Title != "" {
		query = query.Where("title ILIKE ?", likePattern(filter.Title))
	}

	params := pagination.Params{Page: filter.Page, Limit: filter.Limit, SortBy: filter.SortBy, Desc: filter.Desc}
	paged, total, err := page(query, params, titledSortable, "created_at desc")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	var dbModels []models.BrandModel
	if err := paged.Find(&dbModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list brands: %w", err)
	}

	brands := make([]*catalog.Brand, len(dbModels))
	for i := range dbModels {
		brands[i] = toBrandEntity(&dbModels[i])
	}

	return brands, total, nil
}

func (r *BrandRepository) Update(ctx context.Context, b *catalog.Brand) error {
	result := r.db.DB.WithContext(ctx).Model(&models.BrandModel{}).
		Where("uuid = ?", b.UUID).
		Updates(map[string]interface{}{
			"title":      b.Title,
			"slug":       b.Slug,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return catalog.ErrSlugTaken
		}
		return fmt.Errorf("failed to update brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrBrandNotFound
	}

	return nil
}

func (r *BrandRepository) Delete(ctx context.Context, brandUUID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.BrandModel{}, "uuid = ?", brandUUID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrBrandNotFound
	}

	return nil
}

func toProductModel(p *catalog.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:           p.ID,
		UUID:         p.UUID,
		CategoryUUID: p.CategoryUUID,
		Title:        p.Title,
		Price:        p.Price,
		Description:  p.Description,
		Metadata:     p.Metadata,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductEntity(m *models.ProductModel) *catalog.Product {
	p := &catalog.Product{
		ID:           m.ID,
		UUID:         m.UUID,
		CategoryUUID: m.CategoryUUID,
		Title:        m.Title,
		Price:        m.Price,
		Description:  m.Description,
		Metadata:     m.Metadata,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Category != nil {
		p.Category = toCategoryEntity(m.Category)
	}
	return p
}

func toCategoryEntity(m *models.CategoryModel) *catalog.Category {
	return &catalog.Category{
		ID:        m.ID,
		UUID:      m.UUID,
		Title:     m.Title,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBrandEntity(m *models.BrandModel) *catalog.Brand {
	return &catalog.Brand{
		ID:        m.ID,
		UUID:      m.UUID,
		Title:     m.Title,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
