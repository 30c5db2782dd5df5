package farm

import (
	"context"
	"errors"

	"github.com/farmcore/backend/internal/domain/farm"
	"github.com/farmcore/backend/internal/domain/flock"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// HouseService handles house-related business operations
type HouseService struct {
	houseRepo farm.HouseRepository
	batchRepo flock.BatchRepository
}

// NewHouseService creates a new HouseService
func NewHouseService(houseRepo farm.HouseRepository, batchRepo flock.BatchRepository) *HouseService {
	return &HouseService{
		houseRepo: houseRepo,
		batchRepo: batchRepo,
	}
}

// Create creates a new house in the farm. The code must be unique among
// the farm's active houses; deleting a house frees its code for reuse.
func (s *HouseService) Create(ctx context.Context, farmID uuid.UUID, req CreateHouseRequest) (*HouseResponse, error) {
	exists, err := s.houseRepo.ExistsActiveCode(ctx, farmID, req.HouseCode, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "House with this code already exists in the farm")
	}

	h, err := farm.NewHouse(farmID, req.HouseCode, req.Name, req.Capacity, farm.HouseType(req.HouseType))
	if err != nil {
		return nil, err
	}

	if err := s.houseRepo.Save(ctx, h); err != nil {
		return nil, err
	}

	resp := ToHouseResponse(h)
	return &resp, nil
}

// Get returns a house with its current occupancy
func (s *HouseService) Get(ctx context.Context, farmID, houseID uuid.UUID) (*HouseResponse, error) {
	h, err := s.houseRepo.FindByIDForFarm(ctx, farmID, houseID)
	if err != nil {
		return nil, err
	}

	resp := ToHouseResponse(h)
	if err := s.attachOccupancy(ctx, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// List returns the farm's houses with their current occupancy
func (s *HouseService) List(ctx context.Context, farmID uuid.UUID, req ListHousesRequest) ([]HouseResponse, int64, error) {
	filter := buildFilter(req.Page, req.PageSize, req.OrderBy, req.OrderDir, req.Search)
	if filter.OrderBy == "created_at" && req.OrderBy == "" {
		filter.OrderBy = "house_code"
		filter.OrderDir = "asc"
	}
	if req.HouseType != "" {
		filter.Filters["house_type"] = req.HouseType
	}
	if req.IsActive != nil {
		filter.Filters["is_active"] = *req.IsActive
	}

	houses, err := s.houseRepo.FindAllForFarm(ctx, farmID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.houseRepo.CountForFarm(ctx, farmID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]HouseResponse, len(houses))
	for i := range houses {
		responses[i] = ToHouseResponse(&houses[i])
		if err := s.attachOccupancy(ctx, &responses[i]); err != nil {
			return nil, 0, err
		}
	}

	return responses, total, nil
}

// Update updates a house's details
func (s *HouseService) Update(ctx context.Context, farmID, houseID uuid.UUID, req UpdateHouseRequest) (*HouseResponse, error) {
	h, err := s.houseRepo.FindByIDForFarm(ctx, farmID, houseID)
	if err != nil {
		return nil, err
	}

	name := h.Name
	if req.Name != nil {
		name = *req.Name
	}
	capacity := h.Capacity
	if req.Capacity != nil {
		capacity = *req.Capacity
	}
	houseType := h.HouseType
	if req.HouseType != nil {
		houseType = farm.HouseType(*req.HouseType)
	}

	if err := h.Update(name, capacity, houseType); err != nil {
		return nil, err
	}

	if err := s.houseRepo.Save(ctx, h); err != nil {
		return nil, err
	}

	resp := ToHouseResponse(h)
	if err := s.attachOccupancy(ctx, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Delete deactivates a house. Occupied houses cannot be deleted; the
// batch must be completed first.
func (s *HouseService) Delete(ctx context.Context, farmID, houseID uuid.UUID) error {
	h, err := s.houseRepo.FindByIDForFarm(ctx, farmID, houseID)
	if err != nil {
		return err
	}

	occupied, err := s.batchRepo.CountActiveForHouse(ctx, houseID)
	if err != nil {
		return err
	}
	if occupied > 0 {
		return shared.NewDomainError("HAS_DEPENDENTS", "Cannot delete a house with an active batch")
	}

	if err := h.Deactivate(); err != nil {
		return err
	}

	return s.houseRepo.Save(ctx, h)
}

// attachOccupancy fills in the house's current batch, if any
func (s *HouseService) attachOccupancy(ctx context.Context, resp *HouseResponse) error {
	batch, err := s.batchRepo.FindActiveByHouse(ctx, resp.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	resp.CurrentBatch = &OccupancyInfo{
		BatchID:      batch.ID,
		BatchCode:    batch.BatchCode,
		BirdType:     string(batch.BirdType),
		CurrentCount: batch.CurrentCount,
	}

	return nil
}
