package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	domainOrder "pet-shop-api/internal/domain/order"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *domainOrder.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) GetByUUID(ctx context.Context, orderUUID uuid.UUID) (*domainOrder.Order, error) {
	args := m.Called(ctx, orderUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainOrder.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter domainOrder.Filter) ([]*domainOrder.Order, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domainOrder.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *domainOrder.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, orderUUID uuid.UUID) error {
	return m.Called(ctx, orderUUID).Error(0)
}

func (m *MockOrderRepository) Chart(ctx context.Context, from, until time.Time, unit string) ([]domainOrder.ChartBucket, error) {
	args := m.Called(ctx, from, until, unit)
	return args.Get(0).([]domainOrder.ChartBucket), args.Error(1)
}

func (m *MockOrderRepository) Earnings(ctx context.Context, from, until *time.Time) (*domainOrder.Earnings, error) {
	args := m.Called(ctx, from, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainOrder.Earnings), args.Error(1)
}

type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) Create(ctx context.Context, s *domainOrder.OrderStatus) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStatusRepository) GetByUUID(ctx context.Context, statusUUID uuid.UUID) (*domainOrder.OrderStatus, error) {
	args := m.Called(ctx, statusUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainOrder.OrderStatus), args.Error(1)
}

func (m *MockStatusRepository) List(ctx context.Context, title string, page, limit int, sortBy string, desc bool) ([]*domainOrder.OrderStatus, int64, error) {
	args := m.Called(ctx, title, page, limit, sortBy, desc)
	return args.Get(0).([]*domainOrder.OrderStatus), args.Get(1).(int64), args.Error(2)
}

func (m *MockStatusRepository) Update(ctx context.Context, s *domainOrder.OrderStatus) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStatusRepository) Delete(ctx context.Context, statusUUID uuid.UUID) error {
	return m.Called(ctx, statusUUID).Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domainOrder.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) GetByUUID(ctx context.Context, paymentUUID uuid.UUID) (*domainOrder.Payment, error) {
	args := m.Called(ctx, paymentUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainOrder.Payment), args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context, paymentType domainOrder.PaymentType, page, limit int, sortBy string, desc bool) ([]*domainOrder.Payment, int64, error) {
	args := m.Called(ctx, paymentType, page, limit, sortBy, desc)
	return args.Get(0).([]*domainOrder.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *domainOrder.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, paymentUUID uuid.UUID) error {
	return m.Called(ctx, paymentUUID).Error(0)
}

type MockPriceSource struct {
	mock.Mock
}

func (m *MockPriceSource) PricesByUUID(ctx context.Context, uuids []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	args := m.Called(ctx, uuids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]decimal.Decimal), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event domainOrder.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}
