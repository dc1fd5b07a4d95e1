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

type StatusService struct {
	statusRepo domainOrder.StatusRepository
}

func NewStatusService(statusRepo domainOrder.StatusRepository) *StatusService {
	return &StatusService{statusRepo: statusRepo}
}

func (s *StatusService) Create(ctx context.Context, req *OrderStatusRequest) (*OrderStatusResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, appErrors.NewValidationError("Invalid input", fields)
	}

	status := &domainOrder.OrderStatus{UUID: uuid.New(), Title: utils.SanitizeString(req.Title)}
	if err := s.statusRepo.Create(ctx, status); err != nil {
		return nil, err
	}

	logger.Info("Order status created",
		zap.String("order_status_uuid", status.UUID.String()),
		zap.String("event", "order_status_created"),
	)
	return ToOrderStatusResponse(status), nil
}

func (s *StatusService) Get(ctx context.Context, statusUUID uuid.UUID) (*OrderStatusResponse, error) {
	status, err := s.statusRepo.GetByUUID(ctx, statusUUID)
	if err != nil {
		return nil, statusNotFound(err)
	}
	return ToOrderStatusResponse(status), nil
}

func (s *StatusService) List(ctx context.Context, req *ListStatusesRequest) (*pagination.Page[*OrderStatusResponse], error) {
	params := pagination.Params{Page: req.Page, Limit: req.Limit}.Normalize()

	statuses, total, err := s.statusRepo.List(ctx, req.Title, params.Page, params.Limit, req.SortBy, req.Desc)
	if err != nil {
		return nil, err
	}

	items := make([]*OrderStatusResponse, len(statuses))
	for i, st := range statuses {
		items[i] = ToOrderStatusResponse(st)
	}
	return pagination.NewPage(items, total, params), nil
}

func (s *StatusService) Update(ctx context.Context, statusUUID uuid.UUID, req *OrderStatusRequest) (*OrderStatusResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, appErrors.NewValidationError("Invalid input", fields)
	}

	status, err := s.statusRepo.GetByUUID(ctx, statusUUID)
	if err != nil {
		return nil, statusNotFound(err)
	}
	status.Title = utils.SanitizeString(req.Title)

	if err := s.statusRepo.Update(ctx, status); err != nil {
		return nil, statusNotFound(err)
	}
	return ToOrderStatusResponse(status), nil
}

func (s *StatusService) Delete(ctx context.Context, statusUUID uuid.UUID) error {
	if err := s.statusRepo.Delete(ctx, statusUUID); err != nil {
		return statusNotFound(err)
	}

	logger.Info("Order status deleted",
		zap.String("order_status_uuid", statusUUID.String()),
		zap.String("event", "order_status_deleted"),
	)
	return nil
}

func statusNotFound(err error) error {
	if errors.Is(err, domainOrder.ErrOrderStatusNotFound) {
		return appErrors.NewNotFoundError("Order status not found", err)
	}
	return err
}
