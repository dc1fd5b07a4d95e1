package content

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PromotionFilter struct {
	// ValidOn keeps only promotions whose window contains this day.
	ValidOn *time.Time
	Page    int
	Limit   int
	SortBy  string
	Desc    bool
}

type PostFilter struct {
	Page   int
	Limit  int
	SortBy string
	Desc   bool
}

type PromotionRepository interface {
	Create(ctx context.Context, promotion *Promotion) error
	List(ctx context.Context, filter PromotionFilter) ([]*Promotion, int64, error)
	Delete(ctx context.Context, promotionUUID uuid.UUID) error
}

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByUUID(ctx context.Context, postUUID uuid.UUID) (*Post, error)
	List(ctx context.Context, filter PostFilter) ([]*Post, int64, error)
	Delete(ctx context.Context, postUUID uuid.UUID) error
}
