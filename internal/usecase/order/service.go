package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainOrder "pet-shop-api/internal/domain/order"
	domainUser "pet-shop-api/internal/domain/user"
	"pet-shop-api/internal/logger"
	"pet-shop-api/internal/metrics"
	appErrors "pet-shop-api/pkg/errors"
	"pet-shop-api/pkg/pagination"
	"pet-shop-api/pkg/utils"
)

const MsgOrderNotFound = "Inexisting Order"

type Service struct {
	orderRepo   domainOrder.Repository
	statusRepo  domainOrder.StatusRepository
	paymentRepo domainOrder.PaymentRepository
	pricer      *Pricer
	publisher   domainOrder.EventPublisher
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewService(
	orderRepo domainOrder.Repository,
	statusRepo domainOrder.StatusRepository,
	paymentRepo domainOrder.PaymentRepository,
	pricer *Pricer,
	publisher domainOrder.EventPublisher,
	m *metrics.Metrics,
) *Service {
	return &Service{
		orderRepo:   orderRepo,
		statusRepo:  statusRepo,
		paymentRepo: paymentRepo,
		pricer:      pricer,
		publisher:   publisher,
		metrics:     m,
		now:         time.Now,
	}
}

// Create prices the basket and stores the order for the customer.
func (s *Service) Create(ctx context.Context, customer *domainUser.User, req *CreateOrderRequest) (*OrderResponse, error) {
	if err := s.checkRequest(ctx, req); err != nil {
		return nil, err
	}

	quote, err := s.pricer.Price(ctx, toLineItems(req.Products))
	if err != nil {
		return nil, err
	}

	o := &domainOrder.Order{
		UUID:            uuid.New(),
		UserID:          customer.ID,
		UserUUID:        customer.UUID,
		OrderStatusUUID: *req.OrderStatusUUID,
		PaymentUUID:     *req.PaymentUUID,
		Products:        quote.Items,
		Address: domainOrder.Address{
			Billing:  utils.SanitizeString(req.Address.Billing),
			Shipping: utils.SanitizeString(req.Address.Shipping),
		},
		Amount:      quote.Amount,
		DeliveryFee: quote.DeliveryFee,
	}

	if err := s.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.record("create", o)
	s.publish(ctx, domainOrder.EventCreated, o)

	logger.Info("Order created",
		zap.String("order_uuid", o.UUID.String()),
		zap.String("user_uuid", customer.UUID.String()),
		zap.String("amount", o.Amount.StringFixed(2)),
		zap.String("delivery_fee", o.DeliveryFee.StringFixed(2)),
		zap.Int("missing_products", len(quote.Missing)),
		zap.String("event", "order_created"),
	)

	return ToOrderResponse(o), nil
}

// Get returns the order to its owner or to an admin.
func (s *Service) Get(ctx context.Context, principal *domainUser.User, orderUUID uuid.UUID) (*OrderResponse, error) {
	o, err := s.load(ctx, principal, orderUUID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// Update replaces the order and reprices it from current product prices.
func (s *Service) Update(ctx context.Context, principal *domainUser.User, orderUUID uuid.UUID, req *UpdateOrderRequest) (*OrderResponse, error) {
	if err := s.checkRequest(ctx, &req.CreateOrderRequest); err != nil {
		return nil, err
	}

	o, err := s.load(ctx, principal, orderUUID)
	if err != nil {
		return nil, err
	}

	quote, err := s.pricer.Price(ctx, toLineItems(req.Products))
	if err != nil {
		return nil, err
	}

	o.OrderStatusUUID = *req.OrderStatusUUID
	o.PaymentUUID = *req.PaymentUUID
	o.Products = quote.Items
	o.Address = domainOrder.Address{
		Billing:  utils.SanitizeString(req.Address.Billing),
		Shipping: utils.SanitizeString(req.Address.Shipping),
	}
	o.Amount = quote.Amount
	o.DeliveryFee = quote.DeliveryFee
	// an absent shipped_at keeps the current value
	if principal.IsAdmin() && req.ShippedAt != nil {
		o.ShippedAt = req.ShippedAt
	}

	if err := s.orderRepo.Update(ctx, o); err != nil {
		return nil, s.notFound(err)
	}
	o.UpdatedAt = s.now().UTC()

	s.record("update", o)
	s.publish(ctx, domainOrder.EventUpdated, o)

	logger.Info("Order updated",
		zap.String("order_uuid", o.UUID.String()),
		zap.String("by_user_uuid", principal.UUID.String()),
		zap.String("amount", o.Amount.StringFixed(2)),
		zap.Bool("shipped", o.IsShipped()),
		zap.String("event", "order_updated"),
	)

	return ToOrderResponse(o), nil
}

func (s *Service) Delete(ctx context.Context, orderUUID uuid.UUID) error {
	o, err := s.orderRepo.GetByUUID(ctx, orderUUID)
	if err != nil {
		return s.notFound(err)
	}

	if err := s.orderRepo.Delete(ctx, orderUUID); err != nil {
		return s.notFound(err)
	}

	if s.metrics != nil {
		s.metrics.OrdersTotal.WithLabelValues("delete").Inc()
	}
	s.publish(ctx, domainOrder.EventDeleted, o)

	logger.Info("Order deleted",
		zap.String("order_uuid", orderUUID.String()),
		zap.String("event", "order_deleted"),
	)
	return nil
}

func (s *Service) List(ctx context.Context, req *ListOrdersRequest) (*OrderListResponse, error) {
	params := pagination.Params{Page: req.Page, Limit: req.Limit}.Normalize()

	orders, total, err := s.orderRepo.List(ctx, domainOrder.Filter{
		Page: params.Page, Limit: params.Limit, SortBy: req.SortBy, Desc: req.Desc,
	})
	if err != nil {
		return nil, err
	}
	return toOrderList(orders, total, params.Page, params.Limit), nil
}

func (s *Service) ListForUser(ctx context.Context, customer *domainUser.User, req *ListOrdersRequest) (*OrderListResponse, error) {
	params := pagination.Params{Page: req.Page, Limit: req.Limit}.Normalize()

	orders, total, err := s.orderRepo.List(ctx, domainOrder.Filter{
		UserID: &customer.ID,
		Page:   params.Page, Limit: params.Limit, SortBy: req.SortBy, Desc: req.Desc,
	})
	if err != nil {
		return nil, err
	}
	return toOrderList(orders, total, params.Page, params.Limit), nil
}

// Dashboard lists the orders of a window with its chart and earnings.
func (s *Service) Dashboard(ctx context.Context, req *DashboardRequest) (*DashboardResponse, error) {
	now := s.now().UTC()

	window, err := ResolveWindow(now, req.FixRange, req.From, req.To)
	if err != nil {
		return nil, err
	}

	params := pagination.Params{Page: req.Page, Limit: req.Limit}.Normalize()
	orders, total, err := s.orderRepo.List(ctx, domainOrder.Filter{
		CreatedFrom:  &window.From,
		CreatedUntil: &window.Until,
		Page:         params.Page, Limit: params.Limit, SortBy: req.SortBy, Desc: req.Desc,
	})
	if err != nil {
		return nil, err
	}

	buckets, err := s.orderRepo.Chart(ctx, window.From, window.Until, window.Unit)
	if err != nil {
		return nil, err
	}

	earnings, err := s.orderRepo.Earnings(ctx, &window.From, &window.Until)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	month, err := s.orderRepo.Earnings(ctx, &monthStart, &monthEnd)
	if err != nil {
		return nil, err
	}

	chart := make([]ChartPoint, len(buckets))
	for i, b := range buckets {
		chart[i] = ChartPoint{Label: b.Label, Orders: b.Orders, Amount: b.Amount}
	}

	return &DashboardResponse{
		Orders:            toOrderList(orders, total, params.Page, params.Limit),
		Chart:             chart,
		TotalEarnings:     earnings.Shipped,
		PotentialEarnings: earnings.Unshipped,
		OrdersThisMonth:   month.Orders,
	}, nil
}

// ShipmentLocator lists shipped orders, optionally narrowed by order, customer and creation date.
func (s *Service) ShipmentLocator(ctx context.Context, req *ShipmentLocatorRequest) (*OrderListResponse, error) {
	from, until, err := ParseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	params := pagination.Params{Page: req.Page, Limit: req.Limit}.Normalize()
	orders, total, err := s.orderRepo.List(ctx, domainOrder.Filter{
		OrderUUID:    req.OrderUUID,
		UserUUID:     req.CustomerUUID,
		ShippedOnly:  true,
		CreatedFrom:  from,
		CreatedUntil: until,
		Page:         params.Page, Limit: params.Limit, SortBy: req.SortBy, Desc: req.Desc,
	})
	if err != nil {
		return nil, err
	}
	return toOrderList(orders, total, params.Page, params.Limit), nil
}

// load fetches an order visible to principal. Orders of other customers read as missing.
func (s *Service) load(ctx context.Context, principal *domainUser.User, orderUUID uuid.UUID) (*domainOrder.Order, error) {
	o, err := s.orderRepo.GetByUUID(ctx, orderUUID)
	if err != nil {
		return nil, s.notFound(err)
	}
	if !principal.IsAdmin() && o.UserID != principal.ID {
		logger.Warn("Order access by non-owner",
			zap.String("order_uuid", orderUUID.String()),
			zap.String("user_uuid", principal.UUID.String()),
		)
		return nil, appErrors.NewNotFoundError(MsgOrderNotFound, domainOrder.ErrOrderNotFound)
	}
	return o, nil
}

func (s *Service) notFound(err error) error {
	if errors.Is(err, domainOrder.ErrOrderNotFound) {
		return appErrors.NewNotFoundError(MsgOrderNotFound, err)
	}
	return err
}

// checkRequest validates the payload and that its status and payment exist.
func (s *Service) checkRequest(ctx context.Context, req *CreateOrderRequest) error {
	fields := utils.ValidateStruct(req)
	if fields == nil {
		fields = map[string]string{}
	}

	if req.OrderStatusUUID != nil {
		_, err := s.statusRepo.GetByUUID(ctx, *req.OrderStatusUUID)
		switch {
		case errors.Is(err, domainOrder.ErrOrderStatusNotFound):
			fields["order_status_uuid"] = "The selected order_status_uuid is invalid."
		case err != nil:
			return fmt.Errorf("failed to load order status: %w", err)
		}
	}
	if req.PaymentUUID != nil {
		_, err := s.paymentRepo.GetByUUID(ctx, *req.PaymentUUID)
		switch {
		case errors.Is(err, domainOrder.ErrPaymentNotFound):
			fields["payment_uuid"] = "The selected payment_uuid is invalid."
		case err != nil:
			return fmt.Errorf("failed to load payment: %w", err)
		}
	}

	if len(fields) > 0 {
		return appErrors.NewValidationError("Invalid input", fields)
	}
	return nil
}

func (s *Service) record(operation string, o *domainOrder.Order) {
	if s.metrics == nil {
		return
	}
	s.metrics.OrdersTotal.WithLabelValues(operation).Inc()
	s.metrics.OrderAmount.Observe(o.Amount.InexactFloat64())
}

// publish never fails the caller; broker errors are logged and counted.
func (s *Service) publish(ctx context.Context, name string, o *domainOrder.Order) {
	if s.publisher == nil {
		return
	}

	event := domainOrder.Event{
		Name:        name,
		OrderUUID:   o.UUID,
		UserUUID:    o.UserUUID,
		Amount:      o.Amount,
		DeliveryFee: o.DeliveryFee,
		OccurredAt:  s.now().UTC(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		if s.metrics != nil {
			s.metrics.EventErrors.Inc()
		}
		logger.Error("Failed to publish order event",
			zap.String("order_uuid", o.UUID.String()),
			zap.String("event_name", name),
			zap.Error(err),
		)
	}
}
