package models

import (
	"time"

	"github.com/farmcore/backend/internal/domain/flock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchModel is the persistence model for the Batch domain entity.
type BatchModel struct {
	FarmAggregateModel
	HouseID             uuid.UUID         `gorm:"type:uuid;not null;index"`
	BatchCode           string            `gorm:"type:varchar(50);not null;uniqueIndex:idx_batch_farm_code,priority:2"`
	Breed               string            `gorm:"type:varchar(100)"`
	BirdType            flock.BirdType    `gorm:"type:varchar(20);not null"`
	InitialCount        int               `gorm:"not null;check:initial_count > 0"`
	CurrentCount        int               `gorm:"not null;check:current_count >= 0"`
	PlacementDate       time.Time         `gorm:"type:date;not null"`
	PlacementAgeDays    int               `gorm:"not null;default:0"`
	ExpectedHarvestDate time.Time         `gorm:"type:date;not null"`
	ActualHarvestDate   *time.Time        `gorm:"type:date"`
	Status              flock.BatchStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	Notes               string            `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (BatchModel) TableName() string {
	return "batches"
}

// ToDomain converts the persistence model to a domain Batch entity.
func (m *BatchModel) ToDomain() *flock.Batch {
	b := &flock.Batch{
		HouseID:             m.HouseID,
		BatchCode:           m.BatchCode,
		Breed:               m.Breed,
		BirdType:            m.BirdType,
		InitialCount:        m.InitialCount,
		CurrentCount:        m.CurrentCount,
		PlacementDate:       m.PlacementDate,
		PlacementAgeDays:    m.PlacementAgeDays,
		ExpectedHarvestDate: m.ExpectedHarvestDate,
		ActualHarvestDate:   m.ActualHarvestDate,
		Status:              m.Status,
		Notes:               m.Notes,
	}
	m.PopulateFarmAggregateRoot(&b.FarmAggregateRoot)
	return b
}

// FromDomain populates the persistence model from a domain Batch entity.
func (m *BatchModel) FromDomain(b *flock.Batch) {
	m.FromDomainFarmAggregateRoot(b.FarmAggregateRoot)
	m.HouseID = b.HouseID
	m.BatchCode = b.BatchCode
	m.Breed = b.Breed
	m.BirdType = b.BirdType
	m.InitialCount = b.InitialCount
	m.CurrentCount = b.CurrentCount
	m.PlacementDate = b.PlacementDate
	m.PlacementAgeDays = b.PlacementAgeDays
	m.ExpectedHarvestDate = b.ExpectedHarvestDate
	m.ActualHarvestDate = b.ActualHarvestDate
	m.Status = b.Status
	m.Notes = b.Notes
}

// BatchModelFromDomain creates a new persistence model from a domain Batch entity.
func BatchModelFromDomain(b *flock.Batch) *BatchModel {
	m := &BatchModel{}
	m.FromDomain(b)
	return m
}

// DailyRecordModel is the persistence model for the DailyRecord domain entity.
type DailyRecordModel struct {
	FarmAggregateModel
	BatchID             uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_daily_batch_date,priority:1"`
	RecordDate          time.Time        `gorm:"type:date;not null;uniqueIndex:idx_daily_batch_date,priority:2"`
	BirdCount           int              `gorm:"not null;check:bird_count >= 0"`
	MortalityCount      int              `gorm:"not null;default:0"`
	CulledCount         int              `gorm:"not null;default:0"`
	FeedConsumedKg      decimal.Decimal  `gorm:"type:decimal(12,3);not null;default:0"`
	WaterConsumedLiters decimal.Decimal  `gorm:"type:decimal(12,3);not null;default:0"`
	AverageWeightKg     decimal.Decimal  `gorm:"type:decimal(8,3);not null;default:0"`
	TemperatureCelsius  *decimal.Decimal `gorm:"type:decimal(5,2)"`
	HumidityPercent     *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Notes               string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (DailyRecordModel) TableName() string {
	return "daily_records"
}

// ToDomain converts the persistence model to a domain DailyRecord entity.
func (m *DailyRecordModel) ToDomain() *flock.DailyRecord {
	r := &flock.DailyRecord{
		BatchID:             m.BatchID,
		RecordDate:          m.RecordDate,
		BirdCount:           m.BirdCount,
		MortalityCount:      m.MortalityCount,
		CulledCount:         m.CulledCount,
		FeedConsumedKg:      m.FeedConsumedKg,
		WaterConsumedLiters: m.WaterConsumedLiters,
		AverageWeightKg:     m.AverageWeightKg,
		TemperatureCelsius:  m.TemperatureCelsius,
		HumidityPercent:     m.HumidityPercent,
		Notes:               m.Notes,
	}
	m.PopulateFarmAggregateRoot(&r.FarmAggregateRoot)
	return r
}

// FromDomain populates the persistence model from a domain DailyRecord entity.
func (m *DailyRecordModel) FromDomain(r *flock.DailyRecord) {
	m.FromDomainFarmAggregateRoot(r.FarmAggregateRoot)
	m.BatchID = r.BatchID
	m.RecordDate = r.RecordDate
	m.BirdCount = r.BirdCount
	m.MortalityCount = r.MortalityCount
	m.CulledCount = r.CulledCount
	m.FeedConsumedKg = r.FeedConsumedKg
	m.WaterConsumedLiters = r.WaterConsumedLiters
	m.AverageWeightKg = r.AverageWeightKg
	m.TemperatureCelsius = r.TemperatureCelsius
	m.HumidityPercent = r.HumidityPercent
	m.Notes = r.Notes
}

// DailyRecordModelFromDomain creates a new persistence model from a domain DailyRecord entity.
func DailyRecordModelFromDomain(r *flock.DailyRecord) *DailyRecordModel {
	m := &DailyRecordModel{}
	m.FromDomain(r)
	return m
}

// EggProductionModel is the persistence model for the EggProduction domain entity.
type EggProductionModel struct {
	FarmAggregateModel
	BatchID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_egg_batch_date,priority:1"`
	ProductionDate  time.Time `gorm:"type:date;not null;uniqueIndex:idx_egg_batch_date,priority:2"`
	TotalEggs       int       `gorm:"not null;check:total_eggs >= 0"`
	GradeA          int       `gorm:"not null;default:0"`
	GradeB          int       `gorm:"not null;default:0"`
	GradeC          int       `gorm:"not null;default:0"`
	BrokenCount     int       `gorm:"not null;default:0"`
	DoubleYolkCount int       `gorm:"not null;default:0"`
	Notes           string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (EggProductionModel) TableName() string {
	return "egg_productions"
}

// ToDomain converts the persistence model to a domain EggProduction entity.
func (m *EggProductionModel) ToDomain() *flock.EggProduction {
	p := &flock.EggProduction{
		BatchID:         m.BatchID,
		ProductionDate:  m.ProductionDate,
		TotalEggs:       m.TotalEggs,
		GradeA:          m.GradeA,
		GradeB:          m.GradeB,
		GradeC:          m.GradeC,
		BrokenCount:     m.BrokenCount,
		DoubleYolkCount: m.DoubleYolkCount,
		Notes:           m.Notes,
	}
	m.PopulateFarmAggregateRoot(&p.FarmAggregateRoot)
	return p
}

// FromDomain populates the persistence model from a domain EggProduction entity.
func (m *EggProductionModel) FromDomain(p *flock.EggProduction) {
	m.FromDomainFarmAggregateRoot(p.FarmAggregateRoot)
	m.BatchID = p.BatchID
	m.ProductionDate = p.ProductionDate
	m.TotalEggs = p.TotalEggs
	m.GradeA = p.GradeA
	m.GradeB = p.GradeB
	m.GradeC = p.GradeC
	m.BrokenCount = p.BrokenCount
	m.DoubleYolkCount = p.DoubleYolkCount
	m.Notes = p.Notes
}

// EggProductionModelFromDomain creates a new persistence model from a domain EggProduction entity.
func EggProductionModelFromDomain(p *flock.EggProduction) *EggProductionModel {
	m := &EggProductionModel{}
	m.FromDomain(p)
	return m
}
