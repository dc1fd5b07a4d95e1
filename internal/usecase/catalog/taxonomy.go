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

func titleAndSlug(req *TitleRequest) (string, string, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return "", "", appErrors.NewValidationError("Invalid input", fields)
	}

	title := utils.SanitizeString(req.Title)
	slug := utils.Slugify(req.Title)
	if slug == "" {
		return "", "", appErrors.NewValidationError("Invalid input", map[string]string{
			"title": "The title must contain letters or digits.",
		})
	}
	return title, slug, nil
}

func slugTaken(err error) error {
	if errors.Is(err, domainCatalog.ErrSlugTaken) {
		return appErrors.NewValidationError("Invalid input", map[string]string{
			"title": "The title has already been taken.",
		})
	}
	return err
}

func (s *Service) CreateCategory(ctx context.Context, req *TitleRequest) (*CategoryResponse, error) {
	title, slug, err := titleAndSlug(req)
	if err != nil {
		return nil, err
	}

	category := &domainCatalog.Category{UUID: uuid.New(), Title: title, Slug: slug}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, slugTaken(err)
	}

	logger.Info("Category created", zap.String("category_uuid", category.UUID.String()), zap.String("event", "category_created"))
	return ToCategoryResponse(category), nil
}

func (s *Service) GetCategory(ctx context.Context, categoryUUID uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.GetByUUID(ctx, categoryUUID)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

func (s *Service) ListCategories(ctx context.Context, req *ListRequest) (*pagination.Page[*CategoryResponse], error) {
	params := pagination.Params{Page: req.Page, Limit: req.Limit}.Normalize()

	categories, total, err := s.categoryRepo.List(ctx, domainCatalog.ListFilter{
		Title: req.Title, Page: params.Page, Limit: params.Limit, SortBy: req.SortBy, Desc: req.Desc,
	})
	if err != nil {
		return nil, err
	}

	items := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = ToCategoryResponse(c)
	}
	return pagination.NewPage(items, total, params), nil
}

func (s *Service) UpdateCategory(ctx context.Context, categoryUUID uuid.UUID, req *TitleRequest) (*CategoryResponse, error) {
	title, slug, err := titleAndSlug(req)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByUUID(ctx, categoryUUID)
	if err != nil {
		return nil, err
	}
	category.Title = title
	category.Slug = slug

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, slugTaken(err)
	}
	return ToCategoryResponse(category), nil
}

func (s *Service) DeleteCategory(ctx context.Context, categoryUUID uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, categoryUUID); err != nil {
		return err
	}
	logger.Info("Category deleted", zap.String("category_uuid", categoryUUID.String()), zap.String("event", "category_deleted"))
	return nil
}

func (s *Service) CreateBrand(ctx context.Context, req *TitleRequest) (*BrandResponse, error) {
	title, slug, err := titleAndSlug(req)
	if err != nil {
		return nil, err
	}

	brand := &domainCatalog.Brand{UUID: uuid.New(), Title: title, Slug: slug}
	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, slugTaken(err)
	}

	logger.Info("Brand created", zap.String("brand_uuid", brand.UUID.String()), zap.String("event", "brand_created"))
	return ToBrandResponse(brand), nil
}

func (s *Service) GetBrand(ctx context.Context, brandUUID uuid.UUID) (*BrandResponse, error) {
	brand, err := s.brandRepo.GetByUUID(ctx, brandUUID)
	if err != nil {
		return nil, err
	}
	return ToBrandResponse(brand), nil
}

func (s *Service) ListBrands(ctx context.Context, req *ListRequest) (*pagination.Page[*BrandResponse], error) {
	params := pagination.Params{Page: req.Page, Limit: req.Limit}.Normalize()

	brands, total, err := s.brandRepo.List(ctx, domainCatalog.ListFilter{
		Title: req.Title, Page: params.Page, Limit: params.Limit, SortBy: req.SortBy, Desc: req.Desc,
	})
	if err != nil {
		return nil, err
	}

	items := make([]*BrandResponse, len(brands))
	for i, b := range brands {
		items[i] = ToBrandResponse(b)
	}
	return pagination.NewPage(items, total, params), nil
}

func (s *Service) UpdateBrand(ctx context.Context, brandUUID uuid.UUID, req *TitleRequest) (*BrandResponse, error) {
	title, slug, err := titleAndSlug(req)
	if err != nil {
		return nil, err
	}

	brand, err := s.brandRepo.GetByUUID(ctx, brandUUID)
	if err != nil {
		return nil, err
	}
	brand.Title = title
	brand.Slug = slug

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, slugTaken(err)
	}
	return ToBrandResponse(brand), nil
}

func (s *Service) DeleteBrand(ctx context.Context, brandUUID uuid.UUID) error {
	if err := s.brandRepo.Delete(ctx, brandUUID); err != nil {
		return err
	}
	logger.Info("Brand deleted", zap.String("brand_uuid", brandUUID.String()), zap.String("event", "brand_deleted"))
	return nil
}
