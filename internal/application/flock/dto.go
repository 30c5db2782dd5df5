package flock

import (
	"time"

	"github.com/farmcore/backend/internal/domain/flock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Batch DTOs
// =============================================================================

// CreateBatchRequest represents a request to place a new batch
type CreateBatchRequest struct {
	HouseID          uuid.UUID `json:"house_id" binding:"required"`
	BatchCode        string    `json:"batch_code" binding:"max=50"`
	Breed            string    `json:"breed" binding:"required,min=1,max=100"`
	BirdType         string    `json:"bird_type" binding:"required,oneof=broiler layer"`
	InitialCount     int       `json:"initial_count" binding:"required,gt=0"`
	PlacementDate    time.Time `json:"placement_date" binding:"required"`
	PlacementAgeDays int       `json:"placement_age_days" binding:"min=0"`
	Notes            string    `json:"notes"`
}

// UpdateBatchRequest represents a batch update. Nil fields are left
// unchanged; only active batches can be updated.
type UpdateBatchRequest struct {
	Breed *string `json:"breed" binding:"omitempty,min=1,max=100"`
	Notes *string `json:"notes"`
}

// CompleteBatchRequest closes out a batch. A missing harvest date
// defaults to the current time.
type CompleteBatchRequest struct {
	HarvestDate *time.Time `json:"harvest_date"`
}

// BatchResponse represents a batch in API responses. MortalityCount,
// SurvivalRate and DaysInProduction are derived from the stored counts
// on every read and never persisted.
type BatchResponse struct {
	ID                  uuid.UUID       `json:"id"`
	FarmID              uuid.UUID       `json:"farm_id"`
	HouseID             uuid.UUID       `json:"house_id"`
	BatchCode           string          `json:"batch_code"`
	Breed               string          `json:"breed"`
	BirdType            string          `json:"bird_type"`
	InitialCount        int             `json:"initial_count"`
	CurrentCount        int             `json:"current_count"`
	PlacementDate       time.Time       `json:"placement_date"`
	PlacementAgeDays    int             `json:"placement_age_days"`
	ExpectedHarvestDate time.Time       `json:"expected_harvest_date"`
	ActualHarvestDate   *time.Time      `json:"actual_harvest_date,omitempty"`
	Status              string          `json:"status"`
	Notes               string          `json:"notes,omitempty"`
	MortalityCount      int             `json:"mortality_count"`
	SurvivalRate        decimal.Decimal `json:"survival_rate"`
	DaysInProduction    int             `json:"days_in_production"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// BatchStatisticsResponse aggregates production figures for one batch
type BatchStatisticsResponse struct {
	TotalMortality      int              `json:"total_mortality"`
	TotalCulled         int              `json:"total_culled"`
	TotalFeedKg         decimal.Decimal  `json:"total_feed_kg"`
	TotalEggs           int              `json:"total_eggs"`
	RecordCount         int              `json:"record_count"`
	LatestWeightKg      decimal.Decimal  `json:"latest_weight_kg"`
	FeedConversionRatio *decimal.Decimal `json:"feed_conversion_ratio,omitempty"`
	HenDayProduction    *decimal.Decimal `json:"hen_day_production,omitempty"`
}

// BatchDetailResponse is a batch with its production statistics
type BatchDetailResponse struct {
	BatchResponse
	Statistics BatchStatisticsResponse `json:"statistics"`
}

// ListBatchesRequest represents batch list query parameters
type ListBatchesRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active completed"`
	BirdType string `form:"bird_type" binding:"omitempty,oneof=broiler layer"`
	HouseID  string `form:"house_id" binding:"omitempty,uuid"`
}

// ToBatchResponse converts a domain batch to a response DTO
func ToBatchResponse(b *flock.Batch) BatchResponse {
	return BatchResponse{
		ID:                  b.ID,
		FarmID:              b.FarmID,
		HouseID:             b.HouseID,
		BatchCode:           b.BatchCode,
		Breed:               b.Breed,
		BirdType:            string(b.BirdType),
		InitialCount:        b.InitialCount,
		CurrentCount:        b.CurrentCount,
		PlacementDate:       b.PlacementDate,
		PlacementAgeDays:    b.PlacementAgeDays,
		ExpectedHarvestDate: b.ExpectedHarvestDate,
		ActualHarvestDate:   b.ActualHarvestDate,
		Status:              string(b.Status),
		Notes:               b.Notes,
		MortalityCount:      b.MortalityCount(),
		SurvivalRate:        b.SurvivalRate(),
		DaysInProduction:    b.DaysInProduction(time.Now()),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

// =============================================================================
// Daily record DTOs
// =============================================================================

// CreateDailyRecordRequest represents a request to log one day of a batch
type CreateDailyRecordRequest struct {
	RecordDate          time.Time        `json:"record_date" binding:"required"`
	BirdCount           int              `json:"bird_count" binding:"required,gt=0"`
	MortalityCount      int              `json:"mortality_count" binding:"min=0"`
	CulledCount         int              `json:"culled_count" binding:"min=0"`
	FeedConsumedKg      decimal.Decimal  `json:"feed_consumed_kg"`
	WaterConsumedLiters decimal.Decimal  `json:"water_consumed_liters"`
	AverageWeightKg     decimal.Decimal  `json:"average_weight_kg"`
	TemperatureCelsius  *decimal.Decimal `json:"temperature_celsius"`
	HumidityPercent     *decimal.Decimal `json:"humidity_percent"`
	Notes               string           `json:"notes"`
}

// DailyRecordResponse represents a daily record in API responses
type DailyRecordResponse struct {
	ID                  uuid.UUID        `json:"id"`
	FarmID              uuid.UUID        `json:"farm_id"`
	BatchID             uuid.UUID        `json:"batch_id"`
	RecordDate          time.Time        `json:"record_date"`
	BirdCount           int              `json:"bird_count"`
	MortalityCount      int              `json:"mortality_count"`
	CulledCount         int              `json:"culled_count"`
	FeedConsumedKg      decimal.Decimal  `json:"feed_consumed_kg"`
	WaterConsumedLiters decimal.Decimal  `json:"water_consumed_liters"`
	AverageWeightKg     decimal.Decimal  `json:"average_weight_kg"`
	TemperatureCelsius  *decimal.Decimal `json:"temperature_celsius,omitempty"`
	HumidityPercent     *decimal.Decimal `json:"humidity_percent,omitempty"`
	Notes               string           `json:"notes,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
}

// ListRecordsRequest represents production list query parameters. The
// optional window bounds are inclusive.
type ListRecordsRequest struct {
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	DateFrom *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"date_to" time_format:"2006-01-02"`
}

// ToDailyRecordResponse converts a domain daily record to a response DTO
func ToDailyRecordResponse(r *flock.DailyRecord) DailyRecordResponse {
	return DailyRecordResponse{
		ID:                  r.ID,
		FarmID:              r.FarmID,
		BatchID:             r.BatchID,
		RecordDate:          r.RecordDate,
		BirdCount:           r.BirdCount,
		MortalityCount:      r.MortalityCount,
		CulledCount:         r.CulledCount,
		FeedConsumedKg:      r.FeedConsumedKg,
		WaterConsumedLiters: r.WaterConsumedLiters,
		AverageWeightKg:     r.AverageWeightKg,
		TemperatureCelsius:  r.TemperatureCelsius,
		HumidityPercent:     r.HumidityPercent,
		Notes:               r.Notes,
		CreatedAt:           r.CreatedAt,
	}
}

// =============================================================================
// Egg production DTOs
// =============================================================================

// CreateEggProductionRequest represents a request to log one day of egg
// collection for a layer batch
type CreateEggProductionRequest struct {
	ProductionDate  time.Time `json:"production_date" binding:"required"`
	TotalEggs       int       `json:"total_eggs" binding:"required,gt=0"`
	GradeA          int       `json:"grade_a" binding:"min=0"`
	GradeB          int       `json:"grade_b" binding:"min=0"`
	GradeC          int       `json:"grade_c" binding:"min=0"`
	BrokenCount     int       `json:"broken_count" binding:"min=0"`
	DoubleYolkCount int       `json:"double_yolk_count" binding:"min=0"`
	Notes           string    `json:"notes"`
}

// EggProductionResponse represents an egg production entry in API
// responses. SellableEggs and HenDayProduction are derived on read.
type EggProductionResponse struct {
	ID               uuid.UUID       `json:"id"`
	FarmID           uuid.UUID       `json:"farm_id"`
	BatchID          uuid.UUID       `json:"batch_id"`
	ProductionDate   time.Time       `json:"production_date"`
	TotalEggs        int             `json:"total_eggs"`
	GradeA           int             `json:"grade_a"`
	GradeB           int             `json:"grade_b"`
	GradeC           int             `json:"grade_c"`
	BrokenCount      int             `json:"broken_count"`
	DoubleYolkCount  int             `json:"double_yolk_count"`
	SellableEggs     int             `json:"sellable_eggs"`
	HenDayProduction decimal.Decimal `json:"hen_day_production"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ToEggProductionResponse converts a domain egg production entry to a
// response DTO. henCount is the batch's bird count on the production day.
func ToEggProductionResponse(e *flock.EggProduction, henCount int) EggProductionResponse {
	return EggProductionResponse{
		ID:               e.ID,
		FarmID:           e.FarmID,
		BatchID:          e.BatchID,
		ProductionDate:   e.ProductionDate,
		TotalEggs:        e.TotalEggs,
		GradeA:           e.GradeA,
		GradeB:           e.GradeB,
		GradeC:           e.GradeC,
		BrokenCount:      e.BrokenCount,
		DoubleYolkCount:  e.DoubleYolkCount,
		SellableEggs:     e.SellableEggs(),
		HenDayProduction: flock.HenDayProduction(e.TotalEggs, henCount),
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
	}
}
