package flock

import (
	"context"

	"github.com/farmcore/backend/internal/domain/flock"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductionService handles daily record and egg production operations
type ProductionService struct {
	prodRepo  flock.ProductionRepository
	batchRepo flock.BatchRepository
}

// NewProductionService creates a new ProductionService
func NewProductionService(prodRepo flock.ProductionRepository, batchRepo flock.BatchRepository) *ProductionService {
	return &ProductionService{
		prodRepo:  prodRepo,
		batchRepo: batchRepo,
	}
}

// CreateDailyRecord logs one day of a batch and applies the day's losses
// to the batch's running bird count. One record per batch per day.
func (s *ProductionService) CreateDailyRecord(ctx context.Context, farmID, batchID uuid.UUID, req CreateDailyRecordRequest) (*DailyRecordResponse, error) {
	batch, err := s.batchRepo.FindByIDForFarm(ctx, farmID, batchID)
	if err != nil {
		return nil, err
	}
	if !batch.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot record production for a completed batch")
	}

	exists, err := s.prodRepo.ExistsDailyRecord(ctx, batchID, req.RecordDate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A record for this batch and date already exists")
	}

	record, err := flock.NewDailyRecord(farmID, batchID, req.RecordDate,
		req.BirdCount, req.MortalityCount, req.CulledCount,
		req.FeedConsumedKg, req.WaterConsumedLiters, req.AverageWeightKg)
	if err != nil {
		return nil, err
	}
	if err := record.SetEnvironment(req.TemperatureCelsius, req.HumidityPercent); err != nil {
		return nil, err
	}
	if req.Notes != "" {
		record.Notes = req.Notes
	}

	if losses := record.Losses(); losses > 0 {
		if err := batch.RecordLosses(losses); err != nil {
			return nil, err
		}
	}

	if err := s.prodRepo.SaveDailyRecordWithBatch(ctx, record, batch); err != nil {
		return nil, err
	}

	resp := ToDailyRecordResponse(record)
	return &resp, nil
}

// ListDailyRecords returns a batch's daily records, optionally within a
// date window
func (s *ProductionService) ListDailyRecords(ctx context.Context, farmID, batchID uuid.UUID, req ListRecordsRequest) ([]DailyRecordResponse, int64, error) {
	if _, err := s.batchRepo.FindByIDForFarm(ctx, farmID, batchID); err != nil {
		return nil, 0, err
	}

	filter := buildRecordFilter(req, "record_date")
	records, err := s.prodRepo.FindDailyRecords(ctx, batchID, req.DateFrom, req.DateTo, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.prodRepo.CountDailyRecords(ctx, batchID, req.DateFrom, req.DateTo)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]DailyRecordResponse, len(records))
	for i := range records {
		responses[i] = ToDailyRecordResponse(&records[i])
	}

	return responses, total, nil
}

// CreateEggProduction logs one day of egg collection for a layer batch.
// One entry per batch per day.
func (s *ProductionService) CreateEggProduction(ctx context.Context, farmID, batchID uuid.UUID, req CreateEggProductionRequest) (*EggProductionResponse, error) {
	batch, err := s.batchRepo.FindByIDForFarm(ctx, farmID, batchID)
	if err != nil {
		return nil, err
	}
	if batch.BirdType != flock.BirdTypeLayer {
		return nil, shared.NewDomainError("INVALID_BIRD_TYPE", "Egg production can only be recorded for layer batches")
	}
	if !batch.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot record production for a completed batch")
	}

	exists, err := s.prodRepo.ExistsEggProduction(ctx, batchID, req.ProductionDate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An egg production entry for this batch and date already exists")
	}

	entry, err := flock.NewEggProduction(farmID, batchID, req.ProductionDate,
		req.TotalEggs, req.GradeA, req.GradeB, req.GradeC, req.BrokenCount, req.DoubleYolkCount)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		entry.Notes = req.Notes
	}

	if err := s.prodRepo.SaveEggProduction(ctx, entry); err != nil {
		return nil, err
	}

	resp := ToEggProductionResponse(entry, batch.CurrentCount)
	return &resp, nil
}

// ListEggProduction returns a batch's egg production entries, optionally
// within a date window
func (s *ProductionService) ListEggProduction(ctx context.Context, farmID, batchID uuid.UUID, req ListRecordsRequest) ([]EggProductionResponse, int64, error) {
	batch, err := s.batchRepo.FindByIDForFarm(ctx, farmID, batchID)
	if err != nil {
		return nil, 0, err
	}

	filter := buildRecordFilter(req, "production_date")
	entries, err := s.prodRepo.FindEggProduction(ctx, batchID, req.DateFrom, req.DateTo, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.prodRepo.CountEggProduction(ctx, batchID, req.DateFrom, req.DateTo)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]EggProductionResponse, len(entries))
	for i := range entries {
		responses[i] = ToEggProductionResponse(&entries[i], batch.CurrentCount)
	}

	return responses, total, nil
}

// buildRecordFilter applies production list defaults. Records read most
// naturally in day order, newest first.
func buildRecordFilter(req ListRecordsRequest, dateField string) shared.Filter {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
		filter.OrderDir = req.OrderDir
	} else {
		filter.OrderBy = dateField
	}
	return filter
}
