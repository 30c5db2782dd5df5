package models

import (
	"time"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AggregateModel provides common persistence fields for aggregate roots.
// It extends BaseModel with version for optimistic locking.
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null;default:1"`
}

// FromDomainAggregateRoot populates AggregateModel from domain BaseAggregateRoot
func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
}

// FarmAggregateModel provides common persistence fields for farm-scoped aggregate roots.
// It extends AggregateModel with farm ID and creator info.
type FarmAggregateModel struct {
	AggregateModel
	FarmID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;index"`
}

// FromDomainFarmAggregateRoot populates FarmAggregateModel from domain FarmAggregateRoot
func (m *FarmAggregateModel) FromDomainFarmAggregateRoot(f shared.FarmAggregateRoot) {
	m.FromDomainAggregateRoot(f.BaseAggregateRoot)
	m.FarmID = f.FarmID
	m.CreatedBy = f.CreatedBy
}

// PopulateFarmAggregateRoot populates a domain FarmAggregateRoot from persistence model
func (m *FarmAggregateModel) PopulateFarmAggregateRoot(f *shared.FarmAggregateRoot) {
	f.BaseAggregateRoot.BaseEntity.ID = m.ID
	f.BaseAggregateRoot.BaseEntity.CreatedAt = m.CreatedAt
	f.BaseAggregateRoot.BaseEntity.UpdatedAt = m.UpdatedAt
	f.BaseAggregateRoot.Version = m.Version
	f.FarmID = m.FarmID
	f.CreatedBy = m.CreatedBy
}
