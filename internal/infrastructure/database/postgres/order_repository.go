package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pet-shop-api/internal/domain/order"
	"pet-shop-api/internal/infrastructure/database/postgres/models"
	"pet-shop-api/pkg/pagination"
)

var (
	orderSortable = map[string]string{
		"amount":       "orders.amount",
		"delivery_fee": "orders.delivery_fee",
		"created_at":   "orders.created_at",
		"shipped_at":   "orders.shipped_at",
	}
	statusSortable = map[string]string{
		"title":      "title",
		"created_at": "created_at",
	}
	paymentSortable = map[string]string{
		"title":      "title",
		"type":       "type",
		"created_at": "created_at",
	}
)

type OrderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) order.Repository {
	return &OrderRepository{db: db}
}

const orderColumns = "orders.*, users.uuid AS user_uuid"

// base joins the owner so filters and reads can use users.uuid.
func (r *OrderRepository) base(ctx context.Context) *gorm.DB {
	return r.db.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Joins("LEFT JOIN users ON users.id = orders.user_id")
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if o.UUID == uuid.Nil {
		o.UUID = uuid.New()
	}

	dbModel := toOrderModel(o)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	o.ID = dbModel.ID
	o.CreatedAt = dbModel.CreatedAt
	o.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *OrderRepository) GetByUUID(ctx context.Context, orderUUID uuid.UUID) (*order.Order, error) {
	var dbModel models.OrderModel
	err := r.base(ctx).Select(orderColumns).Where("orders.uuid = ?", orderUUID).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, order.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return toOrderEntity(&dbModel), nil
}

func (r *OrderRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
	query := r.base(ctx)

	if filter.UserID != nil {
		query = query.Where("orders.user_id = ?", *filter.UserID)
	}
	if filter.UserUUID != nil {
		query = query.Where("users.uuid = ?", *filter.UserUUID)
	}
	if filter.OrderUUID != nil {
		query = query.Where("orders.uuid = ?", *filter.OrderUUID)
	}
	if filter.ShippedOnly {
		query = query.Where("orders.shipped_at IS NOT NULL")
	}
	if filter.CreatedFrom != nil {
		query = query.Where("orders.created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedUntil != nil {
		query = query.Where("orders.created_at < ?", *filter.CreatedUntil)
	}

	params := pagination.Params{Page: filter.Page, Limit: filter.Limit, SortBy: filter.SortBy, Desc: filter.Desc}
	paged, total, err := page(query, params, orderSortable, "orders.created_at desc")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var dbModels []models.OrderModel
	if err := paged.Select(orderColumns).Find(&dbModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*order.Order, len(dbModels))
	for i := range dbModels {
		orders[i] = toOrderEntity(&dbModels[i])
	}

	return orders, total, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	result := r.db.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Where("uuid = ?", o.UUID).
		Updates(map[string]interface{}{
			"order_status_uuid": o.OrderStatusUUID,
			"payment_uuid":      o.PaymentUUID,
			"products":          gorm.Expr("?::jsonb", mustJSON(o.Products)),
			"address":           gorm.Expr("?::jsonb", mustJSON(o.Address)),
			"amount":            o.Amount,
			"delivery_fee":      o.DeliveryFee,
			"shipped_at":        o.ShippedAt,
			"updated_at":        time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, orderUUID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.OrderModel{}, "uuid = ?", orderUUID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *OrderRepository) Chart(ctx context.Context, from, until time.Time, unit string) ([]order.ChartBucket, error) {
	var rows []struct {
		Bucket time.Time
		Orders int64
		Amount decimal.Decimal
	}

	err := r.db.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Select("date_trunc(?, created_at) AS bucket, COUNT(*) AS orders, COALESCE(SUM(amount), 0) AS amount", unit).
		Where("created_at >= ? AND created_at < ?", from, until).
		Group("bucket").
		Order("bucket").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build order chart: %w", err)
	}

	buckets := make([]order.ChartBucket, len(rows))
	for i, row := range rows {
		buckets[i] = order.ChartBucket{
			Label:  chartLabel(row.Bucket, unit),
			Orders: row.Orders,
			Amount: row.Amount,
		}
	}

	return buckets, nil
}

func (r *OrderRepository) Earnings(ctx context.Context, from, until *time.Time) (*order.Earnings, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Select(`COALESCE(SUM(amount) FILTER (WHERE shipped_at IS NOT NULL), 0) AS shipped,
			COALESCE(SUM(amount) FILTER (WHERE shipped_at IS NULL), 0) AS unshipped,
			COUNT(*) AS orders`)
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if until != nil {
		query = query.Where("created_at < ?", *until)
	}

	var row struct {
		Shipped   decimal.Decimal
		Unshipped decimal.Decimal
		Orders    int64
	}
	if err := query.Scan(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to sum earnings: %w", err)
	}

	return &order.Earnings{Shipped: row.Shipped, Unshipped: row.Unshipped, Orders: row.Orders}, nil
}

func chartLabel(t time.Time, unit string) string {
	switch unit {
	case "hour":
		return t.Format("15:04")
	case "month":
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

type OrderStatusRepository struct {
	db *DB
}

func NewOrderStatusRepository(db *DB) order.StatusRepository {
	return &OrderStatusRepository{db: db}
}

func (r *OrderStatusRepository) Create(ctx context.Context, s *order.OrderStatus) error {
	if s.UUID == uuid.Nil {
		s.UUID = uuid.New()
	}

	dbModel := &models.OrderStatusModel{UUID: s.UUID, Title: s.Title}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create order status: %w", err)
	}

	s.ID = dbModel.ID
	s.CreatedAt = dbModel.CreatedAt
	s.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *OrderStatusRepository) GetByUUID(ctx context.Context, statusUUID uuid.UUID) (*order.OrderStatus, error) {
	var dbModel models.OrderStatusModel
	err := r.db.DB.WithContext(ctx).Where("uuid = ?", statusUUID).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, order.ErrOrderStatusNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order status: %w", err)
	}

	return toOrderStatusEntity(&dbModel), nil
}

func (r *OrderStatusRepository) List(ctx context.Context, title string, pageNum, limit int, sortBy string, desc bool) ([]*order.OrderStatus, int64, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.OrderStatusModel{})
	if title != "" {
		query = query.Where("title ILIKE ?", likePattern(title))
	}

	params := pagination.Params{Page: pageNum, Limit: limit, SortBy: sortBy, Desc: desc}
	paged, total, err := page(query, params, statusSortable, "created_at asc")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count order statuses: %w", err)
	}

	var dbModels []models.OrderStatusModel
	if err := paged.Find(&dbModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list order statuses: %w", err)
	}

	statuses := make([]*order.OrderStatus, len(dbModels))
	for i := range dbModels {
		statuses[i] = toOrderStatusEntity(&dbModels[i])
	}

	return statuses, total, nil
}

func (r *OrderStatusRepository) Update(ctx context.Context, s *order.OrderStatus) error {
	result := r.db.DB.WithContext(ctx).Model(&models.OrderStatusModel{}).
		Where("uuid = ?", s.UUID).
		Updates(map[string]interface{}{
			"title":      s.Title,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderStatusNotFound
	}

	return nil
}

func (r *OrderStatusRepository) Delete(ctx context.Context, statusUUID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.OrderStatusModel{}, "uuid = ?", statusUUID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderStatusNotFound
	}

	return nil
}

type PaymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) order.PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *order.Payment) error {
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}

	dbModel := &models.PaymentModel{UUID: p.UUID, Type: string(p.Type), Title: p.Title, Details: p.Details}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	p.ID = dbModel.ID
	p.CreatedAt = dbModel.CreatedAt
	p.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *PaymentRepository) GetByUUID(ctx context.Context, paymentUUID uuid.UUID) (*order.Payment, error) {
	var dbModel models.PaymentModel
	err := r.db.DB.WithContext(ctx).Where("uuid = ?", paymentUUID).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, order.ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return toPaymentEntity(&dbModel), nil
}

func (r *PaymentRepository) List(ctx context.Context, paymentType order.PaymentType, pageNum, limit int, sortBy string, desc bool) ([]*order.Payment, int64, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.PaymentModel{})
	if paymentType != "" {
		query = query.Where("type = ?", string(paymentType))
	}

	params := pagination.Params{Page: pageNum, Limit: limit, SortBy: sortBy, Desc: desc}
	paged, total, err := page(query, params, paymentSortable, "created_at desc")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	var dbModels []models.PaymentModel
	if err := paged.Find(&dbModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]*order.Payment, len(dbModels))
	for i := range dbModels {
		payments[i] = toPaymentEntity(&dbModels[i])
	}

	return payments, total, nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *order.Payment) error {
	result := r.db.DB.WithContext(ctx).Model(&models.PaymentModel{}).
		Where("uuid = ?", p.UUID).
		Updates(map[string]interface{}{
			"type":       string(p.Type),
			"title":      p.Title,
			"details":    gorm.Expr("?::jsonb", mustJSON(p.Details)),
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return order.ErrPaymentNotFound
	}

	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, paymentUUID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.PaymentModel{}, "uuid = ?", paymentUUID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return order.ErrPaymentNotFound
	}

	return nil
}

func toOrderModel(o *order.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:              o.ID,
		UUID:            o.UUID,
		UserID:          o.UserID,
		OrderStatusUUID: o.OrderStatusUUID,
		PaymentUUID:     o.PaymentUUID,
		Products:        o.Products,
		Address:         o.Address,
		DeliveryFee:     o.DeliveryFee,
		Amount:          o.Amount,
		ShippedAt:       o.ShippedAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toOrderEntity(m *models.OrderModel) *order.Order {
	return &order.Order{
		ID:              m.ID,
		UUID:            m.UUID,
		UserID:          m.UserID,
		UserUUID:        m.UserUUID,
		OrderStatusUUID: m.OrderStatusUUID,
		PaymentUUID:     m.PaymentUUID,
		Products:        m.Products,
		Address:         m.Address,
		Amount:          m.Amount,
		DeliveryFee:     m.DeliveryFee,
		ShippedAt:       m.ShippedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toOrderStatusEntity(m *models.OrderStatusModel) *order.OrderStatus {
	return &order.OrderStatus{
		ID:        m.ID,
		UUID:      m.UUID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toPaymentEntity(m *models.PaymentModel) *order.Payment {
	return &order.Payment{
		ID:        m.ID,
		UUID:      m.UUID,
		Type:      order.PaymentType(m.Type),
		Title:     m.Title,
		Details:   m.Details,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
