package farm

import (
	"context"
	"time"

	"github.com/farmcore/backend/internal/domain/farm"
	"github.com/farmcore/backend/internal/domain/flock"
	"github.com/farmcore/backend/internal/domain/partner"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/farmcore/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// dashboardWindow is the trailing period covered by the production totals
const dashboardWindow = 30 * 24 * time.Hour

// FarmService handles farm-related business operations
type FarmService struct {
	farmRepo     farm.FarmRepository
	houseRepo    farm.HouseRepository
	batchRepo    flock.BatchRepository
	customerRepo partner.CustomerRepository
	orderRepo    trade.OrderRepository
	prodRepo     flock.ProductionRepository
}

// NewFarmService creates a new FarmService
func NewFarmService(
	farmRepo farm.FarmRepository,
	houseRepo farm.HouseRepository,
	batchRepo flock.BatchRepository,
	customerRepo partner.CustomerRepository,
	orderRepo trade.OrderRepository,
	prodRepo flock.ProductionRepository,
) *FarmService {
	return &FarmService{
		farmRepo:     farmRepo,
		houseRepo:    houseRepo,
		batchRepo:    batchRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		prodRepo:     prodRepo,
	}
}

// Create creates a new farm owned by the given account
func (s *FarmService) Create(ctx context.Context, ownerID uuid.UUID, req CreateFarmRequest) (*FarmResponse, error) {
	f, err := farm.NewFarm(ownerID, req.Name, req.Location, farm.FarmType(req.FarmType))
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := f.Update(f.Name, f.Location, req.Description); err != nil {
			return nil, err
		}
	}

	if err := s.farmRepo.Save(ctx, f); err != nil {
		return nil, err
	}

	resp := ToFarmResponse(f)
	return &resp, nil
}

// Get returns a farm by ID
func (s *FarmService) Get(ctx context.Context, farmID uuid.UUID) (*FarmResponse, error) {
	f, err := s.farmRepo.FindByID(ctx, farmID)
	if err != nil {
		return nil, err
	}

	resp := ToFarmResponse(f)
	return &resp, nil
}

// List returns farms visible to the requesting account. Admins see every
// farm; other roles see only the farms they own.
func (s *FarmService) List(ctx context.Context, requesterID uuid.UUID, isAdmin bool, req ListFarmsRequest) ([]FarmResponse, int64, error) {
	filter := buildFilter(req.Page, req.PageSize, req.OrderBy, req.OrderDir, req.Search)
	if req.FarmType != "" {
		filter.Filters["farm_type"] = req.FarmType
	}
	if req.IsActive != nil {
		filter.Filters["is_active"] = *req.IsActive
	}

	var (
		farms []farm.Farm
		total int64
		err   error
	)
	if isAdmin {
		farms, err = s.farmRepo.FindAll(ctx, filter)
		if err != nil {
			return nil, 0, err
		}
		total, err = s.farmRepo.Count(ctx, filter)
	} else {
		farms, err = s.farmRepo.FindByOwner(ctx, requesterID, filter)
		if err != nil {
			return nil, 0, err
		}
		total, err = s.farmRepo.CountByOwner(ctx, requesterID, filter)
	}
	if err != nil {
		return nil, 0, err
	}

	responses := make([]FarmResponse, len(farms))
	for i := range farms {
		responses[i] = ToFarmResponse(&farms[i])
	}

	return responses, total, nil
}

// Update updates a farm's details
func (s *FarmService) Update(ctx context.Context, farmID uuid.UUID, req UpdateFarmRequest) (*FarmResponse, error) {
	f, err := s.farmRepo.FindByID(ctx, farmID)
	if err != nil {
		return nil, err
	}

	name := f.Name
	if req.Name != nil {
		name = *req.Name
	}
	location := f.Location
	if req.Location != nil {
		location = *req.Location
	}
	description := f.Description
	if req.Description != nil {
		description = *req.Description
	}

	if err := f.Update(name, location, description); err != nil {
		return nil, err
	}

	if err := s.farmRepo.Save(ctx, f); err != nil {
		return nil, err
	}

	resp := ToFarmResponse(f)
	return &resp, nil
}

// Delete deactivates a farm. Farms with active batches cannot be deleted;
// flocks must be completed first.
func (s *FarmService) Delete(ctx context.Context, farmID uuid.UUID) error {
	f, err := s.farmRepo.FindByID(ctx, farmID)
	if err != nil {
		return err
	}

	activeBatches, err := s.batchRepo.CountActiveForFarm(ctx, farmID)
	if err != nil {
		return err
	}
	if activeBatches > 0 {
		return shared.NewDomainError("HAS_DEPENDENTS", "Cannot delete a farm with active batches")
	}

	if err := f.Deactivate(); err != nil {
		return err
	}

	return s.farmRepo.Save(ctx, f)
}

// Dashboard aggregates the farm's key figures for the overview screen
func (s *FarmService) Dashboard(ctx context.Context, farmID uuid.UUID) (*DashboardResponse, error) {
	if _, err := s.farmRepo.FindByID(ctx, farmID); err != nil {
		return nil, err
	}

	activeOnly := shared.DefaultFilter()
	activeOnly.Filters["is_active"] = true

	houses, err := s.houseRepo.CountForFarm(ctx, farmID, activeOnly)
	if err != nil {
		return nil, err
	}

	batchCount, err := s.batchRepo.CountActiveForFarm(ctx, farmID)
	if err != nil {
		return nil, err
	}

	// One page is enough for the bird total; a farm has far fewer
	// concurrent flocks than houses.
	batchFilter := shared.DefaultFilter()
	batchFilter.PageSize = 500
	batchFilter.Filters["status"] = string(flock.BatchStatusActive)
	batches, err := s.batchRepo.FindAllForFarm(ctx, farmID, batchFilter)
	if err != nil {
		return nil, err
	}
	totalBirds := 0
	for i := range batches {
		totalBirds += batches[i].CurrentCount
	}

	customerFilter := shared.DefaultFilter()
	customerFilter.Filters["is_active"] = true
	customers, err := s.customerRepo.CountForFarm(ctx, farmID, customerFilter)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.orderRepo.CountByStatusForFarm(ctx, farmID)
	if err != nil {
		return nil, err
	}
	ordersByStatus := make(map[string]int64, len(statusCounts))
	for status, count := range statusCounts {
		ordersByStatus[string(status)] = count
	}

	revenue, err := s.orderRepo.RevenueForFarm(ctx, farmID)
	if err != nil {
		return nil, err
	}

	feedKg, eggs, err := s.prodRepo.FarmTotalsSince(ctx, farmID, time.Now().Add(-dashboardWindow))
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		FarmID:           farmID,
		ActiveHouses:     houses,
		ActiveBatches:    batchCount,
		TotalBirds:       totalBirds,
		ActiveCustomers:  customers,
		OrdersByStatus:   ordersByStatus,
		TotalRevenue:     revenue,
		FeedLast30DaysKg: feedKg,
		EggsLast30Days:   eggs,
	}, nil
}

// buildFilter applies list defaults shared by the farm and house services
func buildFilter(page, pageSize int, orderBy, orderDir, search string) shared.Filter {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if orderBy == "" {
		orderBy = "created_at"
	}
	if orderDir == "" {
		orderDir = "desc"
	}
	return shared.Filter{
		Page:     page,
		PageSize: pageSize,
		OrderBy:  orderBy,
		OrderDir: orderDir,
		Search:   search,
		Filters:  make(map[string]interface{}),
	}
}
