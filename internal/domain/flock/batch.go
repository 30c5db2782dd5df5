package flock

import (
	"strings"
	"time"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BirdType represents the kind of bird a batch is raised for
type BirdType string

const (
	BirdTypeBroiler BirdType = "broiler"
	BirdTypeLayer   BirdType = "layer"
)

// IsValid reports whether the bird type is known
func (t BirdType) IsValid() bool {
	return t == BirdTypeBroiler || t == BirdTypeLayer
}

// BatchStatus represents the lifecycle status of a batch
type BatchStatus string

const (
	BatchStatusActive    BatchStatus = "active"
	BatchStatusCompleted BatchStatus = "completed"
)

// Days from day-old placement to expected harvest, per bird type.
const (
	broilerCycleDays = 35
	layerCycleDays   = 120
)

// Batch is one production cycle of birds in a house, from placement to
// harvest. InitialCount is immutable; CurrentCount only ever decreases as
// mortality and culls are recorded.
type Batch struct {
	shared.FarmAggregateRoot
	HouseID             uuid.UUID
	BatchCode           string
	Breed               string
	BirdType            BirdType
	InitialCount        int
	CurrentCount        int
	PlacementDate       time.Time
	PlacementAgeDays    int
	ExpectedHarvestDate time.Time
	ActualHarvestDate   *time.Time
	Status              BatchStatus
	Notes               string
}

// NewBatch creates a new active batch and derives its expected harvest date
func NewBatch(farmID, houseID uuid.UUID, batchCode, breed string, birdType BirdType, initialCount int, placementDate time.Time, placementAgeDays int) (*Batch, error) {
	if houseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_HOUSE", "House ID cannot be empty")
	}
	if strings.TrimSpace(batchCode) == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Batch code cannot be empty")
	}
	if len(batchCode) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "Batch code cannot exceed 50 characters")
	}
	if !birdType.IsValid() {
		return nil, shared.NewDomainError("INVALID_BIRD_TYPE", "Bird type must be broiler or layer")
	}
	if initialCount <= 0 {
		return nil, shared.NewDomainError("INVALID_COUNT", "Initial count must be greater than zero")
	}
	if placementDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Placement date is required")
	}
	if placementAgeDays < 0 {
		return nil, shared.NewDomainError("INVALID_AGE", "Placement age cannot be negative")
	}

	return &Batch{
		FarmAggregateRoot:   shared.NewFarmAggregateRoot(farmID),
		HouseID:             houseID,
		BatchCode:           strings.ToUpper(strings.TrimSpace(batchCode)),
		Breed:               strings.TrimSpace(breed),
		BirdType:            birdType,
		InitialCount:        initialCount,
		CurrentCount:        initialCount,
		PlacementDate:       placementDate,
		PlacementAgeDays:    placementAgeDays,
		ExpectedHarvestDate: ExpectedHarvestDate(birdType, placementDate, placementAgeDays),
		Status:              BatchStatusActive,
	}, nil
}

// ExpectedHarvestDate derives the harvest date from the placement date,
// offset by the age the birds already had when placed.
func ExpectedHarvestDate(birdType BirdType, placementDate time.Time, placementAgeDays int) time.Time {
	cycle := broilerCycleDays
	if birdType == BirdTypeLayer {
		cycle = layerCycleDays
	}
	return placementDate.AddDate(0, 0, cycle-placementAgeDays)
}

// IsActive reports whether the batch is still in production
func (b *Batch) IsActive() bool {
	return b.Status == BatchStatusActive
}

// Update updates the batch's mutable fields while it is active
func (b *Batch) Update(breed, notes string) error {
	if !b.IsActive() {
		return shared.ErrInvalidState
	}

	if breed != "" {
		b.Breed = strings.TrimSpace(breed)
	}
	b.Notes = notes
	b.Touch()
	b.IncrementVersion()

	return nil
}

// RecordLosses decrements the current count by recorded mortality and culls
func (b *Batch) RecordLosses(count int) error {
	if !b.IsActive() {
		return shared.ErrInvalidState
	}
	if count < 0 {
		return shared.NewDomainError("INVALID_COUNT", "Loss count cannot be negative")
	}
	if count > b.CurrentCount {
		return shared.NewDomainError("COUNT_UNDERFLOW", "Recorded losses exceed remaining birds")
	}

	b.CurrentCount -= count
	b.Touch()
	b.IncrementVersion()

	return nil
}

// Complete closes out the batch
func (b *Batch) Complete(harvestDate time.Time) error {
	if !b.IsActive() {
		return shared.ErrInvalidState
	}
	if harvestDate.IsZero() {
		harvestDate = time.Now()
	}

	b.Status = BatchStatusCompleted
	b.ActualHarvestDate = &harvestDate
	b.Touch()
	b.IncrementVersion()

	return nil
}

// MortalityCount is the total birds lost since placement. Derived at read
// time from the stored counters; never persisted.
func (b *Batch) MortalityCount() int {
	return b.InitialCount - b.CurrentCount
}

// SurvivalRate is the percentage of placed birds still alive
func (b *Batch) SurvivalRate() decimal.Decimal {
	if b.InitialCount == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(b.CurrentCount)).
		Div(decimal.NewFromInt(int64(b.InitialCount))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// DaysInProduction is the number of days since placement, capped at the
// actual harvest date once the batch is completed.
func (b *Batch) DaysInProduction(now time.Time) int {
	end := now
	if b.ActualHarvestDate != nil {
		end = *b.ActualHarvestDate
	}
	days := int(end.Sub(b.PlacementDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// FeedConversionRatio computes FCR as feed consumed over weight gained,
// rounded to two decimal places. Returns zero when no weight was gained.
func FeedConversionRatio(feedKg, weightGainKg decimal.Decimal) decimal.Decimal {
	if weightGainKg.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return feedKg.Div(weightGainKg).Round(2)
}

// HenDayProduction computes eggs laid per hen as a percentage
func HenDayProduction(eggs, henCount int) decimal.Decimal {
	if henCount <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(eggs)).
		Div(decimal.NewFromInt(int64(henCount))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
