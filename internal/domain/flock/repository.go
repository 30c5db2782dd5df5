package flock

import (
	"context"
	"time"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchRepository defines the interface for batch persistence
type BatchRepository interface {
	Save(ctx context.Context, b *Batch) error
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*Batch, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]Batch, error)
	CountForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsCode(ctx context.Context, farmID uuid.UUID, code string) (bool, error)
	// FindActiveByHouse returns the active batch currently occupying the
	// house, or shared.ErrNotFound when the house is empty.
	FindActiveByHouse(ctx context.Context, houseID uuid.UUID) (*Batch, error)
	CountActiveForFarm(ctx context.Context, farmID uuid.UUID) (int64, error)
	CountActiveForHouse(ctx context.Context, houseID uuid.UUID) (int64, error)
}

// BatchStatistics aggregates production totals for one batch, computed at
// query time from daily records and egg production entries.
type BatchStatistics struct {
	TotalMortality int
	TotalCulled    int
	TotalFeedKg    decimal.Decimal
	TotalEggs      int
	LatestWeightKg decimal.Decimal
	FirstWeightKg  decimal.Decimal
	RecordCount    int
}

// ProductionRepository defines the interface for daily record and egg
// production persistence
type ProductionRepository interface {
	SaveDailyRecord(ctx context.Context, r *DailyRecord) error
	// SaveDailyRecordWithBatch persists a daily record together with the
	// batch whose running bird count it adjusts, as one transaction.
	SaveDailyRecordWithBatch(ctx context.Context, r *DailyRecord, b *Batch) error
	FindDailyRecords(ctx context.Context, batchID uuid.UUID, from, to *time.Time, filter shared.Filter) ([]DailyRecord, error)
	CountDailyRecords(ctx context.Context, batchID uuid.UUID, from, to *time.Time) (int64, error)
	ExistsDailyRecord(ctx context.Context, batchID uuid.UUID, recordDate time.Time) (bool, error)

	SaveEggProduction(ctx context.Context, e *EggProduction) error
	FindEggProduction(ctx context.Context, batchID uuid.UUID, from, to *time.Time, filter shared.Filter) ([]EggProduction, error)
	CountEggProduction(ctx context.Context, batchID uuid.UUID, from, to *time.Time) (int64, error)
	ExistsEggProduction(ctx context.Context, batchID uuid.UUID, productionDate time.Time) (bool, error)

	// Statistics computes per-batch aggregates from the stored records.
	Statistics(ctx context.Context, batchID uuid.UUID) (*BatchStatistics, error)
	// FarmTotalsSince sums feed and egg figures across a farm's batches
	// from the given date, for dashboard reporting.
	FarmTotalsSince(ctx context.Context, farmID uuid.UUID, since time.Time) (feedKg decimal.Decimal, eggs int, err error)
}
