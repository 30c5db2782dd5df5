package models

import (
	"github.com/farmcore/backend/internal/domain/farm"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FarmModel is the persistence model for the Farm domain entity.
type FarmModel struct {
	AggregateModel
	OwnerID     uuid.UUID     `gorm:"type:uuid;not null;index"`
	Name        string        `gorm:"type:varchar(200);not null"`
	Location    string        `gorm:"type:varchar(300)"`
	FarmType    farm.FarmType `gorm:"type:varchar(20);not null;default:'mixed'"`
	Description string        `gorm:"type:text"`
	IsActive    bool          `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (FarmModel) TableName() string {
	return "farms"
}

// ToDomain converts the persistence model to a domain Farm entity.
func (m *FarmModel) ToDomain() *farm.Farm {
	return &farm.Farm{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Location:    m.Location,
		FarmType:    m.FarmType,
		Description: m.Description,
		IsActive:    m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Farm entity.
func (m *FarmModel) FromDomain(f *farm.Farm) {
	m.FromDomainAggregateRoot(f.BaseAggregateRoot)
	m.OwnerID = f.OwnerID
	m.Name = f.Name
	m.Location = f.Location
	m.FarmType = f.FarmType
	m.Description = f.Description
	m.IsActive = f.IsActive
}

// FarmModelFromDomain creates a new persistence model from a domain Farm entity.
func FarmModelFromDomain(f *farm.Farm) *FarmModel {
	m := &FarmModel{}
	m.FromDomain(f)
	return m
}

// HouseModel is the persistence model for the House domain entity.
type HouseModel struct {
	FarmAggregateModel
	HouseCode string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_house_farm_code,priority:2"`
	Name      string         `gorm:"type:varchar(200);not null"`
	Capacity  int            `gorm:"not null;check:capacity > 0"`
	HouseType farm.HouseType `gorm:"type:varchar(20);not null;default:'deep_litter'"`
	IsActive  bool           `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (HouseModel) TableName() string {
	return "houses"
}

// ToDomain converts the persistence model to a domain House entity.
func (m *HouseModel) ToDomain() *farm.House {
	h := &farm.House{
		HouseCode: m.HouseCode,
		Name:      m.Name,
		Capacity:  m.Capacity,
		HouseType: m.HouseType,
		IsActive:  m.IsActive,
	}
	m.PopulateFarmAggregateRoot(&h.FarmAggregateRoot)
	return h
}

// FromDomain populates the persistence model from a domain House entity.
func (m *HouseModel) FromDomain(h *farm.House) {
	m.FromDomainFarmAggregateRoot(h.FarmAggregateRoot)
	m.HouseCode = h.HouseCode
	m.Name = h.Name
	m.Capacity = h.Capacity
	m.HouseType = h.HouseType
	m.IsActive = h.IsActive
}

// HouseModelFromDomain creates a new persistence model from a domain House entity.
func HouseModelFromDomain(h *farm.House) *HouseModel {
	m := &HouseModel{}
	m.FromDomain(h)
	return m
}
