package content

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainContent "pet-shop-api/internal/domain/content"
	"pet-shop-api/internal/logger"
	appErrors "pet-shop-api/pkg/errors"
	"pet-shop-api/pkg/pagination"
	"pet-shop-api/pkg/utils"
)

// Service backs the main page: promotions and blog posts.
type Service struct {
	promotionRepo domainContent.PromotionRepository
	postRepo      domainContent.PostRepository
	now           func() time.Time
}

func NewService(promotionRepo domainContent.PromotionRepository, postRepo domainContent.PostRepository) *Service {
	return &Service{
		promotionRepo: promotionRepo,
		postRepo:      postRepo,
		now:           time.Now,
	}
}

func (s *Service) CreatePromotion(ctx context.Context, req *CreatePromotionRequest) (*PromotionResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, appErrors.NewValidationError("Invalid input", fields)
	}
	// both dates share one layout, so string order is date order
	if req.Metadata.ValidTo < req.Metadata.ValidFrom {
		return nil, appErrors.NewValidationError("Invalid input", map[string]string{
			"metadata.valid_to": "The metadata.valid_to must be a date after or equal to metadata.valid_from.",
		})
	}

	promotion := &domainContent.Promotion{
		UUID:    uuid.New(),
		Title:   utils.SanitizeString(req.Title),
		Content: utils.SanitizeText(req.Content),
		Metadata: domainContent.PromotionMetadata{
			ValidFrom: req.Metadata.ValidFrom,
			ValidTo:   req.Metadata.ValidTo,
			Image:     req.Metadata.Image,
		},
	}
	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, err
	}

	logger.Info("Promotion created",
		zap.String("promotion_uuid", promotion.UUID.String()),
		zap.String("valid_from", promotion.Metadata.ValidFrom),
		zap.String("valid_to", promotion.Metadata.ValidTo),
		zap.String("event", "promotion_created"),
	)
	return ToPromotionResponse(promotion), nil
}

func (s *Service) ListPromotions(ctx context.Context, req *ListPromotionsRequest) (*pagination.Page[*PromotionResponse], error) {
	params := pagination.Params{Page: req.Page, Limit: req.Limit}.Normalize()

	filter := domainContent.PromotionFilter{
		Page: params.Page, Limit: params.Limit, SortBy: req.SortBy, Desc: req.Desc,
	}
	if req.Valid {
		today := s.now().UTC()
		filter.ValidOn = &today
	}

	promotions, total, err := s.promotionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*PromotionResponse, len(promotions))
	for i, p := range promotions {
		items[i] = ToPromotionResponse(p)
	}
	return pagination.NewPage(items, total, params), nil
}

func (s *Service) DeletePromotion(ctx context.Context, promotionUUID uuid.UUID) error {
	if err := s.promotionRepo.Delete(ctx, promotionUUID); err != nil {
		if errors.Is(err, domainContent.ErrPromotionNotFound) {
			return appErrors.NewNotFoundError("Promotion not found", err)
		}
		return err
	}

	logger.Info("Promotion deleted",
		zap.String("promotion_uuid", promotionUUID.String()),
		zap.String("event", "promotion_deleted"),
	)
	return nil
}

func (s *Service) CreatePost(ctx context.Context, req *CreatePostRequest) (*PostResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, appErrors.NewValidationError("Invalid input", fields)
	}

	post := &domainContent.Post{
		UUID:    uuid.New(),
		Title:   utils.SanitizeString(req.Title),
		Content: utils.SanitizeText(req.Content),
		Metadata: domainContent.PostMetadata{
			Author: utils.SanitizeString(req.Metadata.Author),
			Image:  req.Metadata.Image,
		},
	}
	post.Slug = utils.Slugify(req.Title)
	if post.Slug == "" {
		post.Slug = post.UUID.String()
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	logger.Info("Post created",
		zap.String("post_uuid", post.UUID.String()),
		zap.String("slug", post.Slug),
		zap.String("event", "post_created"),
	)
	return ToPostResponse(post), nil
}

func (s *Service) GetPost(ctx context.Context, postUUID uuid.UUID) (*PostResponse, error) {
	post, err := s.postRepo.GetByUUID(ctx, postUUID)
	if err != nil {
		if errors.Is(err, domainContent.ErrPostNotFound) {
			return nil, appErrors.NewNotFoundError("Post not found", err)
		}
		return nil, err
	}
	return ToPostResponse(post), nil
}

func (s *Service) ListPosts(ctx context.Context, req *ListPostsRequest) (*pagination.Page[*PostResponse], error) {
	params := pagination.Params{Page: req.Page, Limit: req.Limit}.Normalize()

	posts, total, err := s.postRepo.List(ctx, domainContent.PostFilter{
		Page: params.Page, Limit: params.Limit, SortBy: req.SortBy, Desc: req.Desc,
	})
	if err != nil {
		return nil, err
	}

	items := make([]*PostResponse, len(posts))
	for i, p := range posts {
		items[i] = ToPostResponse(p)
	}
	return pagination.NewPage(items, total, params), nil
}

func (s *Service) DeletePost(ctx context.Context, postUUID uuid.UUID) error {
	if err := s.postRepo.Delete(ctx, postUUID); err != nil {
		if errors.Is(err, domainContent.ErrPostNotFound) {
			return appErrors.NewNotFoundError("Post not found", err)
		}
		return err
	}

	logger.Info("Post deleted",
		zap.String("post_uuid", postUUID.String()),
		zap.String("event", "post_deleted"),
	)
	return nil
}
