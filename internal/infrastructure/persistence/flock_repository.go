package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/farmcore/backend/internal/domain/flock"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/farmcore/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormBatchRepository implements BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// Save creates or updates a batch
func (r *GormBatchRepository) Save(ctx context.Context, b *flock.Batch) error {
	model := models.BatchModelFromDomain(b)
	return translateError(r.db.WithContext(ctx).Save(model).Error)
}

// FindByID finds a batch by its ID
func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*flock.Batch, error) {
	var model models.BatchModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForFarm finds a batch by ID within a farm
func (r *GormBatchRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*flock.Batch, error) {
	var model models.BatchModel
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

// FindAllForFarm finds all batches for a farm
func (r *GormBatchRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]flock.Batch, error) {
	var batchModels []models.BatchModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.BatchModel{}).Where("farm_id = ?", farmID),
		filter,
	)

	if err := query.Find(&batchModels).Error; err != nil {
		return nil, err
	}

	batches := make([]flock.Batch, len(batchModels))
	for i, model := range batchModels {
		batches[i] = *model.ToDomain()
	}
	return batches, nil
}

// CountForFarm counts batches for a farm
func (r *GormBatchRepository) CountForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.BatchModel{}).Where("farm_id = ?", farmID),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsCode checks if a batch in the farm already uses the code
func (r *GormBatchRepository) ExistsCode(ctx context.Context, farmID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BatchModel{}).
		Where("farm_id = ? AND batch_code = ?", farmID, strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindActiveByHouse returns the active batch occupying the house
func (r *GormBatchRepository) FindActiveByHouse(ctx context.Context, houseID uuid.UUID) (*flock.Batch, error) {
	var model models.BatchModel
	if err := r.db.WithContext(ctx).
		Where("house_id = ? AND status = ?", houseID, flock.BatchStatusActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// CountActiveForFarm counts active batches for a farm
func (r *GormBatchRepository) CountActiveForFarm(ctx context.Context, farmID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BatchModel{}).
		Where("farm_id = ? AND status = ?", farmID, flock.BatchStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActiveForHouse counts active batches in a house
func (r *GormBatchRepository) CountActiveForHouse(ctx context.Context, houseID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BatchModel{}).
		Where("house_id = ? AND status = ?", houseID, flock.BatchStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormBatchRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, BatchSortFields, "placement_date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormBatchRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("batch_code ILIKE ? OR breed ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "bird_type":
			query = query.Where("bird_type = ?", value)
		case "house_id":
			query = query.Where("house_id = ?", value)
		}
	}

	return query
}

// Ensure GormBatchRepository implements BatchRepository
var _ flock.BatchRepository = (*GormBatchRepository)(nil)

// GormProductionRepository implements ProductionRepository using GORM
type GormProductionRepository struct {
	db *gorm.DB
}

// NewGormProductionRepository creates a new GormProductionRepository
func NewGormProductionRepository(db *gorm.DB) *GormProductionRepository {
	return &GormProductionRepository{db: db}
}

// SaveDailyRecord creates or updates a daily record
func (r *GormProductionRepository) SaveDailyRecord(ctx context.Context, rec *flock.DailyRecord) error {
	model := models.DailyRecordModelFromDomain(rec)
	return translateError(r.db.WithContext(ctx).Save(model).Error)
}

// SaveDailyRecordWithBatch persists a daily record and the adjusted batch
// in one transaction, so recorded losses and the running bird count
// cannot drift apart
func (r *GormProductionRepository) SaveDailyRecordWithBatch(ctx context.Context, rec *flock.DailyRecord, b *flock.Batch) error {
	recordModel := models.DailyRecordModelFromDomain(rec)
	batchModel := models.BatchModelFromDomain(b)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(recordModel).Error; err != nil {
			return err
		}
		return tx.Save(batchModel).Error
	})
	return translateError(err)
}

// FindDailyRecords finds daily records for a batch within an optional date range
func (r *GormProductionRepository) FindDailyRecords(ctx context.Context, batchID uuid.UUID, from, to *time.Time, filter shared.Filter) ([]flock.DailyRecord, error) {
	var recordModels []models.DailyRecordModel
	query := r.db.WithContext(ctx).
		Model(&models.DailyRecordModel{}).
		Where("batch_id = ?", batchID)
	query = applyDateRange(query, "record_date", from, to)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, DailyRecordSortFields, "record_date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]flock.DailyRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// CountDailyRecords counts daily records for a batch within an optional date range
func (r *GormProductionRepository) CountDailyRecords(ctx context.Context, batchID uuid.UUID, from, to *time.Time) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.DailyRecordModel{}).
		Where("batch_id = ?", batchID)
	query = applyDateRange(query, "record_date", from, to)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsDailyRecord checks if a daily record exists for the batch on the date
func (r *GormProductionRepository) ExistsDailyRecord(ctx context.Context, batchID uuid.UUID, recordDate time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DailyRecordModel{}).
		Where("batch_id = ? AND record_date = ?", batchID, recordDate.Format("2006-01-02")).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveEggProduction creates or updates an egg production entry
func (r *GormProductionRepository) SaveEggProduction(ctx context.Context, e *flock.EggProduction) error {
	model := models.EggProductionModelFromDomain(e)
	return translateError(r.db.WithContext(ctx).Save(model).Error)
}

// FindEggProduction finds egg production entries for a batch within an optional date range
func (r *GormProductionRepository) FindEggProduction(ctx context.Context, batchID uuid.UUID, from, to *time.Time, filter shared.Filter) ([]flock.EggProduction, error) {
	var productionModels []models.EggProductionModel
	query := r.db.WithContext(ctx).
		Model(&models.EggProductionModel{}).
		Where("batch_id = ?", batchID)
	query = applyDateRange(query, "production_date", from, to)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, EggProductionSortFields, "production_date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&productionModels).Error; err != nil {
		return nil, err
	}

	entries := make([]flock.EggProduction, len(productionModels))
	for i, model := range productionModels {
		entries[i] = *model.ToDomain()
	}
	return entries, nil
}

// CountEggProduction counts egg production entries for a batch within an optional date range
func (r *GormProductionRepository) CountEggProduction(ctx context.Context, batchID uuid.UUID, from, to *time.Time) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.EggProductionModel{}).
		Where("batch_id = ?", batchID)
	query = applyDateRange(query, "production_date", from, to)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsEggProduction checks if an egg production entry exists for the batch on the date
func (r *GormProductionRepository) ExistsEggProduction(ctx context.Context, batchID uuid.UUID, productionDate time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.EggProductionModel{}).
		Where("batch_id = ? AND production_date = ?", batchID, productionDate.Format("2006-01-02")).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// dailyRecordAggregates is the scan target for the daily record roll-up
type dailyRecordAggregates struct {
	TotalMortality int             `gorm:"column:total_mortality"`
	TotalCulled    int             `gorm:"column:total_culled"`
	TotalFeedKg    decimal.Decimal `gorm:"column:total_feed_kg"`
	RecordCount    int             `gorm:"column:record_count"`
}

// Statistics computes per-batch aggregates from the stored records
func (r *GormProductionRepository) Statistics(ctx context.Context, batchID uuid.UUID) (*flock.BatchStatistics, error) {
	var daily dailyRecordAggregates
	if err := r.db.WithContext(ctx).
		Model(&models.DailyRecordModel{}).
		Select(
			"COALESCE(SUM(mortality_count), 0) AS total_mortality, "+
				"COALESCE(SUM(culled_count), 0) AS total_culled, "+
				"COALESCE(SUM(feed_consumed_kg), 0) AS total_feed_kg, "+
				"COUNT(*) AS record_count",
		).
		Where("batch_id = ?", batchID).
		Scan(&daily).Error; err != nil {
		return nil, err
	}

	var totalEggs int
	if err := r.db.WithContext(ctx).
		Model(&models.EggProductionModel{}).
		Select("COALESCE(SUM(total_eggs), 0)").
		Where("batch_id = ?", batchID).
		Scan(&totalEggs).Error; err != nil {
		return nil, err
	}

	stats := &flock.BatchStatistics{
		TotalMortality: daily.TotalMortality,
		TotalCulled:    daily.TotalCulled,
		TotalFeedKg:    daily.TotalFeedKg,
		TotalEggs:      totalEggs,
		RecordCount:    daily.RecordCount,
	}

	var first models.DailyRecordModel
	err := r.db.WithContext(ctx).
		Where("batch_id = ? AND average_weight_kg > 0", batchID).
		Order("record_date ASC").
		First(&first).Error
	if err == nil {
		stats.FirstWeightKg = first.AverageWeightKg
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var latest models.DailyRecordModel
	err = r.db.WithContext(ctx).
		Where("batch_id = ? AND average_weight_kg > 0", batchID).
		Order("record_date DESC").
		First(&latest).Error
	if err == nil {
		stats.LatestWeightKg = latest.AverageWeightKg
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return stats, nil
}

// FarmTotalsSince sums feed and egg figures across a farm's batches from the given date
func (r *GormProductionRepository) FarmTotalsSince(ctx context.Context, farmID uuid.UUID, since time.Time) (decimal.Decimal, int, error) {
	var feedKg decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.DailyRecordModel{}).
		Select("COALESCE(SUM(daily_records.feed_consumed_kg), 0)").
		Joins("JOIN batches ON batches.id = daily_records.batch_id").
		Where("batches.farm_id = ? AND daily_records.record_date >= ?", farmID, since.Format("2006-01-02")).
		Scan(&feedKg).Error; err != nil {
		return decimal.Zero, 0, err
	}

	var eggs int
	if err := r.db.WithContext(ctx).
		Model(&models.EggProductionModel{}).
		Select("COALESCE(SUM(egg_productions.total_eggs), 0)").
		Joins("JOIN batches ON batches.id = egg_productions.batch_id").
		Where("batches.farm_id = ? AND egg_productions.production_date >= ?", farmID, since.Format("2006-01-02")).
		Scan(&eggs).Error; err != nil {
		return decimal.Zero, 0, err
	}

	return feedKg, eggs, nil
}

// applyDateRange narrows the query to the inclusive date window when bounds are set
func applyDateRange(query *gorm.DB, column string, from, to *time.Time) *gorm.DB {
	if from != nil {
		query = query.Where(column+" >= ?", from.Format("2006-01-02"))
	}
	if to != nil {
		query = query.Where(column+" <= ?", to.Format("2006-01-02"))
	}
	return query
}

// Ensure GormProductionRepository implements ProductionRepository
var _ flock.ProductionRepository = (*GormProductionRepository)(nil)
