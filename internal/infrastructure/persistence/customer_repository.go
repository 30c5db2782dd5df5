package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/farmcore/backend/internal/domain/partner"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/farmcore/backend/internal/domain/trade"
	"github.com/farmcore/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, c *partner.Customer) error {
	model := models.CustomerModelFromDomain(c)
	return translateError(r.db.WithContext(ctx).Save(model).Error)
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForFarm finds a customer by ID within a farm
func (r *GormCustomerRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where("farm_id = ? AND id = ?", farmID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForFarm finds all customers for a farm
func (r *GormCustomerRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	var customerModels []models.CustomerModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.CustomerModel{}).Where("farm_id = ?", farmID),
		filter,
	)

	if err := query.Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]partner.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers, nil
}

// CountForFarm counts customers for a farm
func (r *GormCustomerRepository) CountForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.CustomerModel{}).Where("farm_id = ?", farmID),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsActiveCode checks if an active customer in the farm already uses the code
func (r *GormCustomerRepository) ExistsActiveCode(ctx context.Context, farmID uuid.UUID, code string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("farm_id = ? AND customer_code = ? AND is_active = ?", farmID, strings.ToUpper(code), true)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Stats computes order aggregates for one customer from the orders table
func (r *GormCustomerRepository) Stats(ctx context.Context, customerID uuid.UUID) (*partner.CustomerStats, error) {
	stats := &partner.CustomerStats{}

	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("customer_id = ? AND status <> ?", customerID, trade.OrderStatusCancelled).
		Count(&stats.OrderCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("COALESCE(SUM(net_amount), 0)").
		Where("customer_id = ? AND status <> ?", customerID, trade.OrderStatusCancelled).
		Scan(&stats.LifetimeValue).Error; err != nil {
		return nil, err
	}

	var last models.OrderModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status <> ?", customerID, trade.OrderStatusCancelled).
		Order("order_date DESC").
		First(&last).Error
	if err == nil {
		orderDate := last.OrderDate
		stats.LastOrderDate = &orderDate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return stats, nil
}

// topCustomerRow is the scan target for the revenue ranking query
type topCustomerRow struct {
	models.CustomerModel
	Revenue decimal.Decimal `gorm:"column:revenue"`
}

// TopByRevenue ranks the farm's customers by non-cancelled order revenue
func (r *GormCustomerRepository) TopByRevenue(ctx context.Context, farmID uuid.UUID, limit int) ([]partner.TopCustomer, error) {
	if limit <= 0 {
		limit = 5
	}

	var rows []topCustomerRow
	if err := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Select("customers.*, COALESCE(SUM(orders.net_amount), 0) AS revenue").
		Joins("JOIN orders ON orders.customer_id = customers.id AND orders.status <> ?", trade.OrderStatusCancelled).
		Where("customers.farm_id = ?", farmID).
		Group("customers.id").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	top := make([]partner.TopCustomer, len(rows))
	for i, row := range rows {
		top[i] = partner.TopCustomer{
			Customer: *row.CustomerModel.ToDomain(),
			Revenue:  row.Revenue,
		}
	}
	return top, nil
}

// applyFilter applies filter options to the query
func (r *GormCustomerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, CustomerSortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormCustomerRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR customer_code ILIKE ? OR phone ILIKE ?",
			searchPattern, searchPattern, searchPattern,
		)
	}

	for key, value := range filter.Filters {
		switch key {
		case "customer_type":
			query = query.Where("customer_type = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	return query
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
