package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/farmcore/backend/internal/domain/farm"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/farmcore/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFarmRepository implements FarmRepository using GORM
type GormFarmRepository struct {
	db *gorm.DB
}

// NewGormFarmRepository creates a new GormFarmRepository
func NewGormFarmRepository(db *gorm.DB) *GormFarmRepository {
	return &GormFarmRepository{db: db}
}

// Save creates or updates a farm
func (r *GormFarmRepository) Save(ctx context.Context, f *farm.Farm) error {
	model := models.FarmModelFromDomain(f)
	return translateError(r.db.WithContext(ctx).Save(model).Error)
}

// FindByID finds a farm by its ID
func (r *GormFarmRepository) FindByID(ctx context.Context, id uuid.UUID) (*farm.Farm, error) {
	var model models.FarmModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOwner finds all farms owned by an account
func (r *GormFarmRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]farm.Farm, error) {
	var farmModels []models.FarmModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.FarmModel{}).Where("owner_id = ?", ownerID),
		filter,
	)

	if err := query.Find(&farmModels).Error; err != nil {
		return nil, err
	}

	farms := make([]farm.Farm, len(farmModels))
	for i, model := range farmModels {
		farms[i] = *model.ToDomain()
	}
	return farms, nil
}

// FindAll finds all farms matching the filter
func (r *GormFarmRepository) FindAll(ctx context.Context, filter shared.Filter) ([]farm.Farm, error) {
	var farmModels []models.FarmModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.FarmModel{}), filter)

	if err := query.Find(&farmModels).Error; err != nil {
		return nil, err
	}

	farms := make([]farm.Farm, len(farmModels))
	for i, model := range farmModels {
		farms[i] = *model.ToDomain()
	}
	return farms, nil
}

// CountByOwner counts farms owned by an account
func (r *GormFarmRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.FarmModel{}).Where("owner_id = ?", ownerID),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Count counts farms matching the filter
func (r *GormFarmRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.FarmModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormFarmRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, FarmSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormFarmRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR location ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "farm_type":
			query = query.Where("farm_type = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	return query
}

// Ensure GormFarmRepository implements FarmRepository
var _ farm.FarmRepository = (*GormFarmRepository)(nil)

// GormHouseRepository implements HouseRepository using GORM
type GormHouseRepository struct {
	db *gorm.DB
}

// NewGormHouseRepository creates a new GormHouseRepository
func NewGormHouseRepository(db *gorm.DB) *GormHouseRepository {
	return &GormHouseRepository{db: db}
}

// Save creates or updates a house
func (r *GormHouseRepository) Save(ctx context.Context, h *farm.House) error {
	model := models.HouseModelFromDomain(h)
	return translateError(r.db.WithContext(ctx).Save(model).Error)
}

// FindByID finds a house by its ID
func (r *GormHouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*farm.House, error) {
	var model models.HouseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForFarm finds a house by ID within a farm
func (r *GormHouseRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*farm.House, error) {
	var model models.HouseModel
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

// FindAllForFarm finds all houses for a farm
func (r *GormHouseRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]farm.House, error) {
	var houseModels []models.HouseModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.HouseModel{}).Where("farm_id = ?", farmID),
		filter,
	)

	if err := query.Find(&houseModels).Error; err != nil {
		return nil, err
	}

	houses := make([]farm.House, len(houseModels))
	for i, model := range houseModels {
		houses[i] = *model.ToDomain()
	}
	return houses, nil
}

// CountForFarm counts houses for a farm
func (r *GormHouseRepository) CountForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.HouseModel{}).Where("farm_id = ?", farmID),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsActiveCode checks if an active house in the farm already uses the code
func (r *GormHouseRepository) ExistsActiveCode(ctx context.Context, farmID uuid.UUID, code string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.HouseModel{}).
		Where("farm_id = ? AND house_code = ? AND is_active = ?", farmID, strings.ToUpper(code), true)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormHouseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, HouseSortFields, "house_code")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormHouseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR house_code ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "house_type":
			query = query.Where("house_type = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	return query
}

// Ensure GormHouseRepository implements HouseRepository
var _ farm.HouseRepository = (*GormHouseRepository)(nil)
