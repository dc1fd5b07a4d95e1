package content

import (
	"time"

	"github.com/google/uuid"

	domainContent "pet-shop-api/internal/domain/content"
)

type PromotionMetadataRequest struct {
	ValidFrom string     `json:"valid_from" validate:"required,datetime=2006-01-02"`
	ValidTo   string     `json:"valid_to" validate:"required,datetime=2006-01-02"`
	Image     *uuid.UUID `json:"image"`
}

type CreatePromotionRequest struct {
	Title    string                    `json:"title" validate:"required,max=255"`
	Content  string                    `json:"content" validate:"required"`
	Metadata *PromotionMetadataRequest `json:"metadata" validate:"required"`
}

type PostMetadataRequest struct {
	Author string     `json:"author" validate:"required,max=255"`
	Image  *uuid.UUID `json:"image"`
}

type CreatePostRequest struct {
	Title    string               `json:"title" validate:"required,max=255"`
	Content  string               `json:"content" validate:"required"`
	Metadata *PostMetadataRequest `json:"metadata" validate:"required"`
}

type ListPromotionsRequest struct {
	// Valid keeps only promotions running today.
	Valid  bool
	Page   int
	Limit  int
	SortBy string
	Desc   bool
}

type ListPostsRequest struct {
	Page   int
	Limit  int
	SortBy string
	Desc   bool
}

type PromotionResponse struct {
	UUID      uuid.UUID                       `json:"uuid"`
	Title     string                          `json:"title"`
	Content   string                          `json:"content"`
	Metadata  domainContent.PromotionMetadata `json:"metadata"`
	CreatedAt time.Time                       `json:"created_at"`
	UpdatedAt time.Time                       `json:"updated_at"`
}

type PostResponse struct {
	UUID      uuid.UUID                  `json:"uuid"`
	Title     string                     `json:"title"`
	Slug      string                     `json:"slug"`
	Content   string                     `json:"content"`
	Metadata  domainContent.PostMetadata `json:"metadata"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

func ToPromotionResponse(p *domainContent.Promotion) *PromotionResponse {
	return &PromotionResponse{
		UUID:      p.UUID,
		Title:     p.Title,
		Content:   p.Content,
		Metadata:  p.Metadata,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToPostResponse(p *domainContent.Post) *PostResponse {
	return &PostResponse{
		UUID:      p.UUID,
		Title:     p.Title,
		Slug:      p.Slug,
		Content:   p.Content,
		Metadata:  p.Metadata,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
