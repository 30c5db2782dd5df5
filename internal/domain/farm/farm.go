package farm

import (
	"strings"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FarmType represents the production orientation of a farm
type FarmType string

const (
	FarmTypeBroiler FarmType = "broiler"
	FarmTypeLayer   FarmType = "layer"
	FarmTypeMixed   FarmType = "mixed"
)

var validFarmTypes = map[FarmType]bool{
	FarmTypeBroiler: true,
	FarmTypeLayer:   true,
	FarmTypeMixed:   true,
}

// IsValid reports whether the farm type is known
func (t FarmType) IsValid() bool {
	return validFarmTypes[t]
}

// Farm is the tenancy root: every other entity chains back to exactly one
// farm, and the owner account is the subject of all ownership checks.
type Farm struct {
	shared.BaseAggregateRoot
	OwnerID     uuid.UUID
	Name        string
	Location    string
	FarmType    FarmType
	Description string
	IsActive    bool
}

// NewFarm creates a new farm owned by the given account
func NewFarm(ownerID uuid.UUID, name, location string, farmType FarmType) (*Farm, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if err := validateFarmName(name); err != nil {
		return nil, err
	}
	if farmType == "" {
		farmType = FarmTypeMixed
	}
	if !farmType.IsValid() {
		return nil, shared.NewDomainError("INVALID_FARM_TYPE", "Farm type must be one of broiler, layer, mixed")
	}

	return &Farm{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OwnerID:           ownerID,
		Name:              strings.TrimSpace(name),
		Location:          strings.TrimSpace(location),
		FarmType:          farmType,
		IsActive:          true,
	}, nil
}

// Update updates the farm's basic information
func (f *Farm) Update(name, location, description string) error {
	if err := validateFarmName(name); err != nil {
		return err
	}

	f.Name = strings.TrimSpace(name)
	f.Location = strings.TrimSpace(location)
	f.Description = description
	f.Touch()
	f.IncrementVersion()

	return nil
}

// Deactivate soft-deletes the farm. Callers must first verify there are no
// active batches; this entity cannot see across aggregates.
func (f *Farm) Deactivate() error {
	if !f.IsActive {
		return shared.ErrInvalidState
	}
	f.IsActive = false
	f.Touch()
	f.IncrementVersion()
	return nil
}

// IsOwnedBy reports whether the given account owns this farm
func (f *Farm) IsOwnedBy(accountID uuid.UUID) bool {
	return f.OwnerID == accountID
}

func validateFarmName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Farm name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Farm name cannot exceed 200 characters")
	}
	return nil
}
