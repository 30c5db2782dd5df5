package flock

import (
	"context"
	"errors"
	"time"

	"github.com/farmcore/backend/internal/domain/farm"
	"github.com/farmcore/backend/internal/domain/flock"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchService handles batch-related business operations
type BatchService struct {
	batchRepo flock.BatchRepository
	houseRepo farm.HouseRepository
	prodRepo  flock.ProductionRepository
}

// NewBatchService creates a new BatchService
func NewBatchService(batchRepo flock.BatchRepository, houseRepo farm.HouseRepository, prodRepo flock.ProductionRepository) *BatchService {
	return &BatchService{
		batchRepo: batchRepo,
		houseRepo: houseRepo,
		prodRepo:  prodRepo,
	}
}

// Create places a new batch in a house. The house must belong to the
// farm, be vacant, and have capacity for the initial count.
func (s *BatchService) Create(ctx context.Context, farmID uuid.UUID, req CreateBatchRequest) (*BatchResponse, error) {
	house, err := s.houseRepo.FindByIDForFarm(ctx, farmID, req.HouseID)
	if err != nil {
		return nil, err
	}
	if !house.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot place a batch in a deleted house")
	}

	if req.BatchCode != "" {
		exists, err := s.batchRepo.ExistsCode(ctx, farmID, req.BatchCode)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Batch with this code already exists in the farm")
		}
	}

	if _, err := s.batchRepo.FindActiveByHouse(ctx, req.HouseID); err == nil {
		return nil, shared.NewDomainError("HOUSE_OCCUPIED", "House already holds an active batch")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if !house.CanHold(req.InitialCount) {
		return nil, shared.ErrCapacityExceeded
	}

	batch, err := flock.NewBatch(farmID, req.HouseID, req.BatchCode, req.Breed,
		flock.BirdType(req.BirdType), req.InitialCount, req.PlacementDate, req.PlacementAgeDays)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		if err := batch.Update(batch.Breed, req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	resp := ToBatchResponse(batch)
	return &resp, nil
}

// Get returns a batch with its production statistics
func (s *BatchService) Get(ctx context.Context, farmID, batchID uuid.UUID) (*BatchDetailResponse, error) {
	batch, err := s.batchRepo.FindByIDForFarm(ctx, farmID, batchID)
	if err != nil {
		return nil, err
	}

	stats, err := s.prodRepo.Statistics(ctx, batchID)
	if err != nil {
		return nil, err
	}

	return &BatchDetailResponse{
		BatchResponse: ToBatchResponse(batch),
		Statistics:    buildStatistics(batch, stats),
	}, nil
}

// List returns the farm's batches
func (s *BatchService) List(ctx context.Context, farmID uuid.UUID, req ListBatchesRequest) ([]BatchResponse, int64, error) {
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
		filter.OrderBy = "placement_date"
	}
	filter.Search = req.Search
	if req.Status != "" {
		filter.Filters["status"] = req.Status
	}
	if req.BirdType != "" {
		filter.Filters["bird_type"] = req.BirdType
	}
	if req.HouseID != "" {
		filter.Filters["house_id"] = req.HouseID
	}

	batches, err := s.batchRepo.FindAllForFarm(ctx, farmID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.batchRepo.CountForFarm(ctx, farmID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]BatchResponse, len(batches))
	for i := range batches {
		responses[i] = ToBatchResponse(&batches[i])
	}

	return responses, total, nil
}

// Update updates an active batch's breed and notes
func (s *BatchService) Update(ctx context.Context, farmID, batchID uuid.UUID, req UpdateBatchRequest) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByIDForFarm(ctx, farmID, batchID)
	if err != nil {
		return nil, err
	}

	breed := batch.Breed
	if req.Breed != nil {
		breed = *req.Breed
	}
	notes := batch.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := batch.Update(breed, notes); err != nil {
		return nil, err
	}

	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	resp := ToBatchResponse(batch)
	return &resp, nil
}

// Complete closes out a batch and frees its house
func (s *BatchService) Complete(ctx context.Context, farmID, batchID uuid.UUID, req CompleteBatchRequest) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByIDForFarm(ctx, farmID, batchID)
	if err != nil {
		return nil, err
	}

	var harvestDate time.Time
	if req.HarvestDate != nil {
		harvestDate = *req.HarvestDate
	}
	if err := batch.Complete(harvestDate); err != nil {
		return nil, err
	}

	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	resp := ToBatchResponse(batch)
	return &resp, nil
}

// buildStatistics merges stored aggregates with the batch's derived
// ratios. FCR needs a weight gain, so it is omitted until at least two
// weighings exist; hen-day production only applies to layers.
func buildStatistics(batch *flock.Batch, stats *flock.BatchStatistics) BatchStatisticsResponse {
	resp := BatchStatisticsResponse{
		TotalMortality: stats.TotalMortality,
		TotalCulled:    stats.TotalCulled,
		TotalFeedKg:    stats.TotalFeedKg,
		TotalEggs:      stats.TotalEggs,
		RecordCount:    stats.RecordCount,
		LatestWeightKg: stats.LatestWeightKg,
	}

	weightGainPerBird := stats.LatestWeightKg.Sub(stats.FirstWeightKg)
	if weightGainPerBird.IsPositive() && batch.CurrentCount > 0 {
		totalGain := weightGainPerBird.Mul(decimal.NewFromInt(int64(batch.CurrentCount)))
		fcr := flock.FeedConversionRatio(stats.TotalFeedKg, totalGain)
		resp.FeedConversionRatio = &fcr
	}

	if batch.BirdType == flock.BirdTypeLayer && stats.RecordCount > 0 && batch.CurrentCount > 0 {
		avgDailyEggs := stats.TotalEggs / stats.RecordCount
		hdp := flock.HenDayProduction(avgDailyEggs, batch.CurrentCount)
		resp.HenDayProduction = &hdp
	}

	return resp
}
