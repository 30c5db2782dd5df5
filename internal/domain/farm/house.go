package farm

import (
	"strings"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// HouseType describes the housing system of a poultry house
type HouseType string

const (
	HouseTypeDeepLitter  HouseType = "deep_litter"
	HouseTypeBatteryCage HouseType = "battery_cage"
	HouseTypeFreeRange   HouseType = "free_range"
)

// House is a physical building on a farm. A house holds at most one active
// batch at a time; that invariant is enforced by the batch service, with the
// storage uniqueness index as the backstop.
type House struct {
	shared.FarmAggregateRoot
	HouseCode string
	Name      string
	Capacity  int
	HouseType HouseType
	IsActive  bool
}

// NewHouse creates a new house within a farm
func NewHouse(farmID uuid.UUID, houseCode, name string, capacity int, houseType HouseType) (*House, error) {
	if err := validateHouseCode(houseCode); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "House name cannot be empty")
	}
	if capacity <= 0 {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Capacity must be greater than zero")
	}
	if houseType == "" {
		houseType = HouseTypeDeepLitter
	}

	return &House{
		FarmAggregateRoot: shared.NewFarmAggregateRoot(farmID),
		HouseCode:         strings.ToUpper(strings.TrimSpace(houseCode)),
		Name:              strings.TrimSpace(name),
		Capacity:          capacity,
		HouseType:         houseType,
		IsActive:          true,
	}, nil
}

// Update updates the house's mutable fields
func (h *House) Update(name string, capacity int, houseType HouseType) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "House name cannot be empty")
	}
	if capacity <= 0 {
		return shared.NewDomainError("INVALID_CAPACITY", "Capacity must be greater than zero")
	}

	h.Name = strings.TrimSpace(name)
	h.Capacity = capacity
	if houseType != "" {
		h.HouseType = houseType
	}
	h.Touch()
	h.IncrementVersion()

	return nil
}

// Deactivate soft-deletes the house. Callers must first verify there is no
// active batch inside.
func (h *House) Deactivate() error {
	if !h.IsActive {
		return shared.ErrInvalidState
	}
	h.IsActive = false
	h.Touch()
	h.IncrementVersion()
	return nil
}

// CanHold reports whether the house can accommodate the given bird count
func (h *House) CanHold(count int) bool {
	return count > 0 && count <= h.Capacity
}

func validateHouseCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "House code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "House code cannot exceed 50 characters")
	}
	return nil
}
