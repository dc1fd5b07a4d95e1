package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pet-shop-api/internal/domain/content"
	"pet-shop-api/internal/infrastructure/database/postgres/models"
	"pet-shop-api/pkg/pagination"
)

var contentSortable = map[string]string{
	"title":      "title",
	"created_at": "created_at",
}

type PromotionRepository struct {
	db *DB
}

func NewPromotionRepository(db *DB) content.PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) Create(ctx context.Context, p *content.Promotion) error {
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}

	dbModel := &models.PromotionModel{UUID: p.UUID, Title: p.Title, Content: p.Content, Metadata: p.Metadata}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}

	p.ID = dbModel.ID
	p.CreatedAt = dbModel.CreatedAt
	p.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *PromotionRepository) List(ctx context.Context, filter content.PromotionFilter) ([]*content.Promotion, int64, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.PromotionModel{})

	if filter.ValidOn != nil {
		day := filter.ValidOn.Format(content.DateLayout)
		query = query.
			Where("COALESCE(metadata->>'valid_from', '') <= ?", day).
			Where("COALESCE(NULLIF(metadata->>'valid_to', ''), '9999-12-31') >= ?", day)
	}

	params := pagination.Params{Page: filter.Page, Limit: filter.Limit, SortBy: filter.SortBy, Desc: filter.Desc}
	paged, total, err := page(query, params, contentSortable, "created_at desc")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count promotions: %w", err)
	}

	var dbModels []models.PromotionModel
	if err := paged.Find(&dbModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list promotions: %w", err)
	}

	promotions := make([]*content.Promotion, len(dbModels))
	for i, m := range dbModels {
		promotions[i] = &content.Promotion{
			ID:        m.ID,
			UUID:      m.UUID,
			Title:     m.Title,
			Content:   m.Content,
			Metadata:  m.Metadata,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		}
	}

	return promotions, total, nil
}

func (r *PromotionRepository) Delete(ctx context.Context, promotionUUID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.PromotionModel{}, "uuid = ?", promotionUUID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete promotion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrPromotionNotFound
	}

	return nil
}

type PostRepository struct {
	db *DB
}

func NewPostRepository(db *DB) content.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, p *content.Post) error {
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}

	dbModel := &models.PostModel{UUID: p.UUID, Title: p.Title, Slug: p.Slug, Content: p.Content, Metadata: p.Metadata}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	p.ID = dbModel.ID
	p.CreatedAt = dbModel.CreatedAt
	p.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *PostRepository) GetByUUID(ctx context.Context, postUUID uuid.UUID) (*content.Post, error) {
	var dbModel models.PostModel
	err := r.db.DB.WithContext(ctx).Where("uuid = ?", postUUID).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, content.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return toPostEntity(&dbModel), nil
}

func (r *PostRepository) List(ctx context.Context, filter content.PostFilter) ([]*content.Post, int64, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.PostModel{})

	params := pagination.Params{Page: filter.Page, Limit: filter.Limit, SortBy: filter.SortBy, Desc: filter.Desc}
	paged, total, err := page(query, params, contentSortable, "created_at desc")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	var dbModels []models.PostModel
	if err := paged.Find(&dbModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]*content.Post, len(dbModels))
	for i := range dbModels {
		posts[i] = toPostEntity(&dbModels[i])
	}

	return posts, total, nil
}

func (r *PostRepository) Delete(ctx context.Context, postUUID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.PostModel{}, "uuid = ?", postUUID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrPostNotFound
	}

	return nil
}

func toPostEntity(m *models.PostModel) *content.Post {
	return &content.Post{
		ID:        m.ID,
		UUID:      m.UUID,
		Title:     m.Title,
		Slug:      m.Slug,
		Content:   m.Content,
		Metadata:  m.Metadata,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
