package flock

import (
	"time"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyRecord captures one day of observations for a batch. At most one
// record exists per batch per date.
type DailyRecord struct {
	shared.FarmAggregateRoot
	BatchID             uuid.UUID
	RecordDate          time.Time
	BirdCount           int
	MortalityCount      int
	CulledCount         int
	FeedConsumedKg      decimal.Decimal
	WaterConsumedLiters decimal.Decimal
	AverageWeightKg     decimal.Decimal
	TemperatureCelsius  *decimal.Decimal
	HumidityPercent     *decimal.Decimal
	Notes               string
}

// NewDailyRecord creates a daily record for a batch
func NewDailyRecord(farmID, batchID uuid.UUID, recordDate time.Time, birdCount, mortalityCount, culledCount int, feedKg, waterLiters, avgWeightKg decimal.Decimal) (*DailyRecord, error) {
	if batchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BATCH", "Batch ID cannot be empty")
	}
	if recordDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Record date is required")
	}
	if birdCount < 0 {
		return nil, shared.NewDomainError("INVALID_COUNT", "Bird count cannot be negative")
	}
	if mortalityCount < 0 || culledCount < 0 {
		return nil, shared.NewDomainError("INVALID_COUNT", "Mortality and culled counts cannot be negative")
	}
	if feedKg.IsNegative() || waterLiters.IsNegative() || avgWeightKg.IsNegative() {
		return nil, shared.NewDomainError("INVALID_MEASUREMENT", "Consumption and weight values cannot be negative")
	}

	return &DailyRecord{
		FarmAggregateRoot:   shared.NewFarmAggregateRoot(farmID),
		BatchID:             batchID,
		RecordDate:          recordDate.Truncate(24 * time.Hour),
		BirdCount:           birdCount,
		MortalityCount:      mortalityCount,
		CulledCount:         culledCount,
		FeedConsumedKg:      feedKg,
		WaterConsumedLiters: waterLiters,
		AverageWeightKg:     avgWeightKg,
	}, nil
}

// SetEnvironment records ambient conditions for the day
func (r *DailyRecord) SetEnvironment(temperature, humidity *decimal.Decimal) error {
	if humidity != nil {
		if humidity.IsNegative() || humidity.GreaterThan(decimal.NewFromInt(100)) {
			return shared.NewDomainError("INVALID_HUMIDITY", "Humidity must be between 0 and 100")
		}
	}
	r.TemperatureCelsius = temperature
	r.HumidityPercent = humidity
	return nil
}

// Losses is the total birds removed from the flock on this day
func (r *DailyRecord) Losses() int {
	return r.MortalityCount + r.CulledCount
}
