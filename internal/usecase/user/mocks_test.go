package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	domainUser "pet-shop-api/internal/domain/user"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domainUser.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*domainUser.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) GetByUUID(ctx context.Context, userUUID uuid.UUID) (*domainUser.User, error) {
	args := m.Called(ctx, userUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, filter domainUser.Filter) ([]*domainUser.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domainUser.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domainUser.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userUUID uuid.UUID, hash string) error {
	return m.Called(ctx, userUUID, hash).Error(0)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, userUUID uuid.UUID, at time.Time) error {
	return m.Called(ctx, userUUID, at).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, userUUID uuid.UUID) error {
	return m.Called(ctx, userUUID).Error(0)
}

func (m *MockUserRepository) UpsertPasswordResetToken(ctx context.Context, token *domainUser.PasswordResetToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockUserRepository) GetPasswordResetToken(ctx context.Context, email, token string) (*domainUser.PasswordResetToken, error) {
	args := m.Called(ctx, email, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.PasswordResetToken), args.Error(1)
}

func (m *MockUserRepository) DeletePasswordResetToken(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type MockIssuer struct {
	mock.Mock
}

func (m *MockIssuer) Issue(userUUID uuid.UUID) (string, error) {
	args := m.Called(userUUID)
	return args.String(0), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPasswordReset(ctx context.Context, to, token string) error {
	return m.Called(ctx, to, token).Error(0)
}
