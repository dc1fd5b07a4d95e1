package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainCatalog "pet-shop-api/internal/domain/catalog"
	"pet-shop-api/internal/logger"
	appErrors "pet-shop-api/pkg/errors"
	"pet-shop-api/pkg/pagination"
	"pet-shop-api/pkg/utils"
)

type Service struct {
	productRepo  domainCatalog.ProductRepository
	categoryRepo domainCatalog.CategoryRepository
	brandRepo    domainCatalog.BrandRepository
	cache        domainCatalog.ProductCache
}

// NewService wires the catalog. cache may be nil.
func NewService(
	productRepo domainCatalog.ProductRepository,
	categoryRepo domainCatalog.CategoryRepository,
	brandRepo domainCatalog.BrandRepository,
	cache domainCatalog.ProductCache,
) *Service {
	return &Service{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		cache:        cache,
	}
}

func (s *Service) CreateProduct(ctx context.Context, req *ProductRequest) (*ProductResponse, error) {
	product, err := s.productFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	product.UUID = uuid.New()

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product created",
		zap.String("product_uuid", product.UUID.String()),
		zap.String("price", product.Price.StringFixed(2)),
		zap.String("event", "product_created"),
	)

	return ToProductResponse(product), nil
}

func (s *Service) GetProduct(ctx context.Context, productUUID uuid.UUID) (*ProductResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, productUUID)
		if err != nil {
			logger.Warn("Product cache read failed", zap.String("product_uuid", productUUID.String()), zap.Error(err))
		} else if cached != nil {
			return ToProductResponse(cached), nil
		}
	}

	product, err := s.productRepo.GetByUUID(ctx, productUUID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, product); err != nil {
			logger.Warn("Product cache write failed", zap.String("product_uuid", productUUID.String()), zap.Error(err))
		}
	}

	return ToProductResponse(product), nil
}

func (s *Service) ListProducts(ctx context.Context, req *ListProductsRequest) (*pagination.Page[*ProductResponse], error) {
	params := pagination.Params{Page: req.Page, Limit: req.Limit}.Normalize()

	products, total, err := s.productRepo.List(ctx, domainCatalog.ProductFilter{
		Category: req.Category,
		Brand:    req.Brand,
		Title:    req.Title,
		Price:    req.Price,
		Page:     params.Page,
		Limit:    params.Limit,
		SortBy:   req.SortBy,
		Desc:     req.Desc,
	})
	if err != nil {
		return nil, err
	}

	items := make([]*ProductResponse, len(products))
	for i, p := range products {
		items[i] = ToProductResponse(p)
	}

	return pagination.NewPage(items, total, params), nil
}

func (s *Service) UpdateProduct(ctx context.Context, productUUID uuid.UUID, req *ProductRequest) (*ProductResponse, error) {
	existing, err := s.productRepo.GetByUUID(ctx, productUUID)
	if err != nil {
		return nil, err
	}

	product, err := s.productFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	product.ID = existing.ID
	product.UUID = existing.UUID
	product.CreatedAt = existing.CreatedAt

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	s.evict(ctx, productUUID)

	logger.Info("Product updated",
		zap.String("product_uuid", productUUID.String()),
		zap.String("event", "product_updated"),
	)

	return s.GetProduct(ctx, productUUID)
}

func (s *Service) DeleteProduct(ctx context.Context, productUUID uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, productUUID); err != nil {
		return err
	}
	s.evict(ctx, productUUID)

	logger.Info("Product deleted",
		zap.String("product_uuid", productUUID.String()),
		zap.String("event", "product_deleted"),
	)
	return nil
}

func (s *Service) evict(ctx context.Context, productUUID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, productUUID); err != nil {
		logger.Warn("Product cache eviction failed", zap.String("product_uuid", productUUID.String()), zap.Error(err))
	}
}

// productFromRequest validates req and checks that its category and brand exist.
func (s *Service) productFromRequest(ctx context.Context, req *ProductRequest) (*domainCatalog.Product, error) {
	fields := utils.ValidateStruct(req)
	if fields == nil {
		fields = map[string]string{}
	}

	if req.Price != nil && !req.Price.IsPositive() {
		fields["price"] = "The price must be greater than 0."
	}

	var category *domainCatalog.Category
	if req.CategoryUUID != nil {
		c, err := s.categoryRepo.GetByUUID(ctx, *req.CategoryUUID)
		switch {
		case errors.Is(err, domainCatalog.ErrCategoryNotFound):
			fields["category_uuid"] = "The selected category_uuid is invalid."
		case err != nil:
			return nil, err
		default:
			category = c
		}
	}

	var brand *domainCatalog.Brand
	if req.Metadata != nil && req.Metadata.Brand != nil {
		b, err := s.brandRepo.GetByUUID(ctx, *req.Metadata.Brand)
		switch {
		case errors.Is(err, domainCatalog.ErrBrandNotFound):
			fields["metadata.brand"] = "The selected metadata.brand is invalid."
		case err != nil:
			return nil, err
		default:
			brand = b
		}
	}

	if len(fields) > 0 {
		return nil, appErrors.NewValidationError("Invalid input", fields)
	}

	return &domainCatalog.Product{
		CategoryUUID: *req.CategoryUUID,
		Title:        utils.SanitizeString(req.Title),
		Price:        req.Price.Round(2),
		Description:  utils.SanitizeText(req.Description),
		Metadata: domainCatalog.ProductMetadata{
			Brand: req.Metadata.Brand,
			Image: req.Metadata.Image,
		},
		Category: category,
		Brand:    brand,
	}, nil
}
