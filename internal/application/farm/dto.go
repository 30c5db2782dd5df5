package farm

import (
	"time"

	"github.com/farmcore/backend/internal/domain/farm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Farm DTOs
// =============================================================================

// CreateFarmRequest represents a request to create a new farm
type CreateFarmRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Location    string `json:"location" binding:"max=300"`
	FarmType    string `json:"farm_type" binding:"omitempty,oneof=broiler layer mixed"`
	Description string `json:"description" binding:"max=1000"`
}

// UpdateFarmRequest represents a farm update. Nil fields are left unchanged.
type UpdateFarmRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Location    *string `json:"location" binding:"omitempty,max=300"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// FarmResponse represents a farm in API responses
type FarmResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location,omitempty"`
	FarmType    string    `json:"farm_type"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListFarmsRequest represents farm list query parameters
type ListFarmsRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
	FarmType string `form:"farm_type" binding:"omitempty,oneof=broiler layer mixed"`
	IsActive *bool  `form:"is_active"`
}

// ToFarmResponse converts a domain farm to a response DTO
func ToFarmResponse(f *farm.Farm) FarmResponse {
	return FarmResponse{
		ID:          f.ID,
		OwnerID:     f.OwnerID,
		Name:        f.Name,
		Location:    f.Location,
		FarmType:    string(f.FarmType),
		Description: f.Description,
		IsActive:    f.IsActive,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// =============================================================================
// House DTOs
// =============================================================================

// CreateHouseRequest represents a request to create a new house
type CreateHouseRequest struct {
	HouseCode string `json:"house_code" binding:"required,min=1,max=50"`
	Name      string `json:"name" binding:"required,min=1,max=200"`
	Capacity  int    `json:"capacity" binding:"required,gt=0"`
	HouseType string `json:"house_type" binding:"omitempty,oneof=deep_litter battery_cage free_range"`
}

// UpdateHouseRequest represents a house update. Nil fields are left unchanged.
type UpdateHouseRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=200"`
	Capacity  *int    `json:"capacity" binding:"omitempty,gt=0"`
	HouseType *string `json:"house_type" binding:"omitempty,oneof=deep_litter battery_cage free_range"`
}

// OccupancyInfo summarises the batch currently placed in a house
type OccupancyInfo struct {
	BatchID      uuid.UUID `json:"batch_id"`
	BatchCode    string    `json:"batch_code"`
	BirdType     string    `json:"bird_type"`
	CurrentCount int       `json:"current_count"`
}

// HouseResponse represents a house in API responses. CurrentBatch is nil
// when the house is empty.
type HouseResponse struct {
	ID           uuid.UUID      `json:"id"`
	FarmID       uuid.UUID      `json:"farm_id"`
	HouseCode    string         `json:"house_code"`
	Name         string         `json:"name"`
	Capacity     int            `json:"capacity"`
	HouseType    string         `json:"house_type"`
	IsActive     bool           `json:"is_active"`
	CurrentBatch *OccupancyInfo `json:"current_batch,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ListHousesRequest represents house list query parameters
type ListHousesRequest struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search    string `form:"search"`
	HouseType string `form:"house_type" binding:"omitempty,oneof=deep_litter battery_cage free_range"`
	IsActive  *bool  `form:"is_active"`
}

// ToHouseResponse converts a domain house to a response DTO
func ToHouseResponse(h *farm.House) HouseResponse {
	return HouseResponse{
		ID:        h.ID,
		FarmID:    h.FarmID,
		HouseCode: h.HouseCode,
		Name:      h.Name,
		Capacity:  h.Capacity,
		HouseType: string(h.HouseType),
		IsActive:  h.IsActive,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// =============================================================================
// Dashboard DTOs
// =============================================================================

// DashboardResponse aggregates farm figures for the overview screen. The
// production totals cover the trailing 30 days; everything else is
// lifetime.
type DashboardResponse struct {
	FarmID           uuid.UUID        `json:"farm_id"`
	ActiveHouses     int64            `json:"active_houses"`
	ActiveBatches    int64            `json:"active_batches"`
	TotalBirds       int              `json:"total_birds"`
	ActiveCustomers  int64            `json:"active_customers"`
	OrdersByStatus   map[string]int64 `json:"orders_by_status"`
	TotalRevenue     decimal.Decimal  `json:"total_revenue"`
	FeedLast30DaysKg decimal.Decimal  `json:"feed_last_30_days_kg"`
	EggsLast30Days   int              `json:"eggs_last_30_days"`
}
