package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/farmcore/backend/internal/domain/trade"
	"github.com/farmcore/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save persists the order header and all of its items in one transaction
func (r *GormOrderRepository) Save(ctx context.Context, o *trade.Order) error {
	model := models.OrderModelFromDomain(o)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.saveWithItems(tx, model)
	})
	return translateError(err)
}

// SaveWithHistory persists the order update and appends a status history row in the same transaction
func (r *GormOrderRepository) SaveWithHistory(ctx context.Context, o *trade.Order, h *trade.StatusHistory) error {
	orderModel := models.OrderModelFromDomain(o)
	historyModel := models.OrderStatusHistoryModelFromDomain(h)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.saveWithItems(tx, orderModel); err != nil {
			return err
		}
		return tx.Create(historyModel).Error
	})
	return translateError(err)
}

// saveWithItems writes the header row, then replaces the item rows so the
// stored set always mirrors the aggregate.
func (r *GormOrderRepository) saveWithItems(tx *gorm.DB, model *models.OrderModel) error {
	if err := tx.Omit("Items").Save(model).Error; err != nil {
		return err
	}
	if err := tx.Where("order_id = ?", model.ID).Delete(&models.OrderItemModel{}).Error; err != nil {
		return err
	}
	if len(model.Items) == 0 {
		return nil
	}
	for i := range model.Items {
		model.Items[i].OrderID = model.ID
	}
	return tx.Create(&model.Items).Error
}

// FindByID finds an order with its items by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForFarm finds an order with its items by ID within a farm
func (r *GormOrderRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*trade.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("farm_id = ? AND id = ?", farmID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForFarm finds all orders for a farm
func (r *GormOrderRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]trade.Order, error) {
	var orderModels []models.OrderModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("farm_id = ?", farmID),
		filter,
	).Preload("Items")

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]trade.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = *model.ToDomain()
	}
	return orders, nil
}

// CountForFarm counts orders for a farm
func (r *GormOrderRepository) CountForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("farm_id = ?", farmID),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsNumber checks if an order in the farm already uses the number
func (r *GormOrderRepository) ExistsNumber(ctx context.Context, farmID uuid.UUID, orderNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("farm_id = ? AND order_number = ?", farmID, strings.ToUpper(orderNumber)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountInFlightForCustomer counts the customer's orders outside the terminal statuses
func (r *GormOrderRepository) CountInFlightForCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("customer_id = ? AND status NOT IN ?", customerID,
			[]trade.OrderStatus{trade.OrderStatusDelivered, trade.OrderStatusCancelled}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindHistory returns the status history rows for an order, oldest first
func (r *GormOrderRepository) FindHistory(ctx context.Context, orderID uuid.UUID) ([]trade.StatusHistory, error) {
	var historyModels []models.OrderStatusHistoryModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&historyModels).Error; err != nil {
		return nil, err
	}

	history := make([]trade.StatusHistory, len(historyModels))
	for i, model := range historyModels {
		history[i] = *model.ToDomain()
	}
	return history, nil
}

// statusCountRow is the scan target for the status roll-up
type statusCountRow struct {
	Status trade.OrderStatus `gorm:"column:status"`
	Count  int64             `gorm:"column:count"`
}

// CountByStatusForFarm counts the farm's orders grouped by status
func (r *GormOrderRepository) CountByStatusForFarm(ctx context.Context, farmID uuid.UUID) (map[trade.OrderStatus]int64, error) {
	var rows []statusCountRow
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Where("farm_id = ?", farmID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[trade.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// RevenueForFarm sums the farm's non-cancelled order net amounts
func (r *GormOrderRepository) RevenueForFarm(ctx context.Context, farmID uuid.UUID) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("COALESCE(SUM(net_amount), 0)").
		Where("farm_id = ? AND status <> ?", farmID, trade.OrderStatusCancelled).
		Scan(&revenue).Error; err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}

// applyFilter applies filter options to the query
func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, OrderSortFields, "order_date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("order_number ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "payment_status":
			query = query.Where("payment_status = ?", value)
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "date_from":
			query = query.Where("order_date >= ?", value)
		case "date_to":
			query = query.Where("order_date <= ?", value)
		}
	}

	return query
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
