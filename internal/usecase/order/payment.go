package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainOrder "pet-shop-api/internal/domain/order"
	"pet-shop-api/internal/logger"
	appErrors "pet-shop-api/pkg/errors"
	"pet-shop-api/pkg/pagination"
	"pet-shop-api/pkg/utils"
)

type PaymentService struct {
	paymentRepo domainOrder.PaymentRepository
}

func NewPaymentService(paymentRepo domainOrder.PaymentRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

func (s *PaymentService) Create(ctx context.Context, req *PaymentRequest) (*PaymentResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, appErrors.NewValidationError("Invalid input", fields)
	}

	payment := &domainOrder.Payment{
		UUID:    uuid.New(),
		Type:    domainOrder.PaymentType(req.Type),
		Title:   utils.SanitizeString(req.Title),
		Details: req.Details,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	logger.Info("Payment created",
		zap.String("payment_uuid", payment.UUID.String()),
		zap.String("type", req.Type),
		zap.String("event", "payment_created"),
	)
	return ToPaymentResponse(payment), nil
}

func (s *PaymentService) Get(ctx context.Context, paymentUUID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.GetByUUID(ctx, paymentUUID)
	if err != nil {
		return nil, paymentNotFound(err)
	}
	return ToPaymentResponse(payment), nil
}

// List filters by type when req.Type names a known payment type.
func (s *PaymentService) List(ctx context.Context, req *ListPaymentsRequest) (*pagination.Page[*PaymentResponse], error) {
	params := pagination.Params{Page: req.Page, Limit: req.Limit}.Normalize()

	paymentType := domainOrder.PaymentType(req.Type)
	if !paymentType.IsValid() {
		paymentType = ""
	}

	payments, total, err := s.paymentRepo.List(ctx, paymentType, params.Page, params.Limit, req.SortBy, req.Desc)
	if err != nil {
		return nil, err
	}

	items := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		items[i] = ToPaymentResponse(p)
	}
	return pagination.NewPage(items, total, params), nil
}

func (s *PaymentService) Update(ctx context.Context, paymentUUID uuid.UUID, req *PaymentRequest) (*PaymentResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, appErrors.NewValidationError("Invalid input", fields)
	}

	payment, err := s.paymentRepo.GetByUUID(ctx, paymentUUID)
	if err != nil {
		return nil, paymentNotFound(err)
	}
	payment.Type = domainOrder.PaymentType(req.Type)
	payment.Title = utils.SanitizeString(req.Title)
	payment.Details = req.Details

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, paymentNotFound(err)
	}
	return ToPaymentResponse(payment), nil
}

func (s *PaymentService) Delete(ctx context.Context, paymentUUID uuid.UUID) error {
	if err := s.paymentRepo.Delete(ctx, paymentUUID); err != nil {
		return paymentNotFound(err)
	}

	logger.Info("Payment deleted",
		zap.String("payment_uuid", paymentUUID.String()),
		zap.String("event", "payment_deleted"),
	)
	return nil
}

func paymentNotFound(err error) error {
	if errors.Is(err, domainOrder.ErrPaymentNotFound) {
		return appErrors.NewNotFoundError("Payment not found", err)
	}
	return err
}
