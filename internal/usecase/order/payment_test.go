package order

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainOrder "pet-shop-api/internal/domain/order"
	appErrors "pet-shop-api/pkg/errors"
)

func TestCreatePaymentRejectsUnknownType(t *testing.T) {
	repo := new(MockPaymentRepository)

	_, err := NewPaymentService(repo).Create(context.Background(), &PaymentRequest{
		Type:    "bitcoin",
		Title:   "Crypto",
		Details: map[string]interface{}{"wallet": "x"},
	})

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Fields, "type")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePayment(t *testing.T) {
	repo := new(MockPaymentRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domainOrder.Payment) bool {
		return p.Type == domainOrder.PaymentCashOnDelivery && p.Details["first_name"] == "Ada"
	})).Return(nil)

	resp, err := NewPaymentService(repo).Create(context.Background(), &PaymentRequest{
		Type:    "cash_on_delivery",
		Title:   "COD",
		Details: map[string]interface{}{"first_name": "Ada"},
	})

	require.NoError(t, err)
	assert.Equal(t, "cash_on_delivery", resp.Type)
}

func TestListPaymentsIgnoresUnknownTypeFilter(t *testing.T) {
	repo := new(MockPaymentRepository)
	repo.On("List", mock.Anything, domainOrder.PaymentType(""), 1, 10, "", false).
		Return([]*domainOrder.Payment{{UUID: uuid.New(), Type: domainOrder.PaymentBankTransfer}}, int64(1), nil)

	page, err := NewPaymentService(repo).List(context.Background(), &ListPaymentsRequest{Type: "cheque"})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestOrderStatusNotFound(t *testing.T) {
	repo := new(MockStatusRepository)
	statusUUID := uuid.New()
	repo.On("GetByUUID", mock.Anything, statusUUID).Return(nil, domainOrder.ErrOrderStatusNotFound)

	_, err := NewStatusService(repo).Get(context.Background(), statusUUID)

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeNotFound, appErr.Code)
}
