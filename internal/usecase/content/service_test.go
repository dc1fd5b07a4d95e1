package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainContent "pet-shop-api/internal/domain/content"
	appErrors "pet-shop-api/pkg/errors"
)

type MockPromotionRepository struct {
	mock.Mock
}

func (m *MockPromotionRepository) Create(ctx context.Context, p *domainContent.Promotion) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPromotionRepository) List(ctx context.Context, filter domainContent.PromotionFilter) ([]*domainContent.Promotion, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domainContent.Promotion), args.Get(1).(int64), args.Error(2)
}

func (m *MockPromotionRepository) Delete(ctx context.Context, promotionUUID uuid.UUID) error {
	return m.Called(ctx, promotionUUID).Error(0)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, p *domainContent.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPostRepository) GetByUUID(ctx context.Context, postUUID uuid.UUID) (*domainContent.Post, error) {
	args := m.Called(ctx, postUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainContent.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, filter domainContent.PostFilter) ([]*domainContent.Post, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domainContent.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) Delete(ctx context.Context, postUUID uuid.UUID) error {
	return m.Called(ctx, postUUID).Error(0)
}

var fixedNow = time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

func newTestService() (*Service, *MockPromotionRepository, *MockPostRepository) {
	promotions, posts := new(MockPromotionRepository), new(MockPostRepository)
	s := NewService(promotions, posts)
	s.now = func() time.Time { return fixedNow }
	return s, promotions, posts
}

func TestListPromotionsValidFiltersOnToday(t *testing.T) {
	s, promotions, _ := newTestService()
	promotions.On("List", mock.Anything, mock.MatchedBy(func(f domainContent.PromotionFilter) bool {
		return f.ValidOn != nil && f.ValidOn.Equal(fixedNow)
	})).Return([]*domainContent.Promotion{{UUID: uuid.New(), Title: "Spring sale"}}, int64(1), nil)

	page, err := s.ListPromotions(context.Background(), &ListPromotionsRequest{Valid: true})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Total)
}

func TestListPromotionsAll(t *testing.T) {
	s, promotions, _ := newTestService()
	promotions.On("List", mock.Anything, mock.MatchedBy(func(f domainContent.PromotionFilter) bool {
		return f.ValidOn == nil
	})).Return([]*domainContent.Promotion{}, int64(0), nil)

	_, err := s.ListPromotions(context.Background(), &ListPromotionsRequest{})

	require.NoError(t, err)
	promotions.AssertExpectations(t)
}

func TestCreatePromotionRejectsInvertedWindow(t *testing.T) {
	s, promotions, _ := newTestService()

	_, err := s.CreatePromotion(context.Background(), &CreatePromotionRequest{
		Title:    "Sale",
		Content:  "Everything half price",
		Metadata: &PromotionMetadataRequest{ValidFrom: "2024-04-01", ValidTo: "2024-03-01"},
	})

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Fields, "metadata.valid_to")
	promotions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePromotionRejectsBadDate(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.CreatePromotion(context.Background(), &CreatePromotionRequest{
		Title:    "Sale",
		Content:  "x",
		Metadata: &PromotionMetadataRequest{ValidFrom: "01/04/2024", ValidTo: "2024-05-01"},
	})

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Fields, "metadata.valid_from")
}

func TestCreatePostSlug(t *testing.T) {
	s, _, posts := newTestService()
	posts.On("Create", mock.Anything, mock.MatchedBy(func(p *domainContent.Post) bool {
		return p.Slug == "caring-for-your-puppy" && p.Metadata.Author == "Jane"
	})).Return(nil)

	resp, err := s.CreatePost(context.Background(), &CreatePostRequest{
		Title:    "Caring for your puppy!",
		Content:  "Walk it.",
		Metadata: &PostMetadataRequest{Author: "Jane"},
	})

	require.NoError(t, err)
	assert.Equal(t, "caring-for-your-puppy", resp.Slug)
}

func TestGetPostNotFound(t *testing.T) {
	s, _, posts := newTestService()
	postUUID := uuid.New()
	posts.On("GetByUUID", mock.Anything, postUUID).Return(nil, domainContent.ErrPostNotFound)

	_, err := s.GetPost(context.Background(), postUUID)

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeNotFound, appErr.Code)
}
