package flock

import (
	"context"
	"time"

	"github.com/farmcore/backend/internal/domain/farm"
	"github.com/farmcore/backend/internal/domain/flock"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockBatchRepository is a mock implementation of flock.BatchRepository
type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) Save(ctx context.Context, b *flock.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*flock.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flock.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*flock.Batch, error) {
	args := m.Called(ctx, farmID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flock.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]flock.Batch, error) {
	args := m.Called(ctx, farmID, filter)
	return args.Get(0).([]flock.Batch), args.Error(1)
}

func (m *MockBatchRepository) CountForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, farmID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBatchRepository) ExistsCode(ctx context.Context, farmID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, farmID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockBatchRepository) FindActiveByHouse(ctx context.Context, houseID uuid.UUID) (*flock.Batch, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flock.Batch), args.Error(1)
}

func (m *MockBatchRepository) CountActiveForFarm(ctx context.Context, farmID uuid.UUID) (int64, error) {
	args := m.Called(ctx, farmID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBatchRepository) CountActiveForHouse(ctx context.Context, houseID uuid.UUID) (int64, error) {
	args := m.Called(ctx, houseID)
	return args.Get(0).(int64), args.Error(1)
}

// MockHouseRepository is a mock implementation of farm.HouseRepository
type MockHouseRepository struct {
	mock.Mock
}

func (m *MockHouseRepository) Save(ctx context.Context, h *farm.House) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*farm.House, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.House), args.Error(1)
}

func (m *MockHouseRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*farm.House, error) {
	args := m.Called(ctx, farmID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.House), args.Error(1)
}

func (m *MockHouseRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]farm.House, error) {
	args := m.Called(ctx, farmID, filter)
	return args.Get(0).([]farm.House), args.Error(1)
}

func (m *MockHouseRepository) CountForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, farmID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHouseRepository) ExistsActiveCode(ctx context.Context, farmID uuid.UUID, code string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, farmID, code, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockProductionRepository is a mock implementation of flock.ProductionRepository
type MockProductionRepository struct {
	mock.Mock
}

func (m *MockProductionRepository) SaveDailyRecord(ctx context.Context, r *flock.DailyRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockProductionRepository) SaveDailyRecordWithBatch(ctx context.Context, r *flock.DailyRecord, b *flock.Batch) error {
	args := m.Called(ctx, r, b)
	return args.Error(0)
}

func (m *MockProductionRepository) FindDailyRecords(ctx context.Context, batchID uuid.UUID, from, to *time.Time, filter shared.Filter) ([]flock.DailyRecord, error) {
	args := m.Called(ctx, batchID, from, to, filter)
	return args.Get(0).([]flock.DailyRecord), args.Error(1)
}

func (m *MockProductionRepository) CountDailyRecords(ctx context.Context, batchID uuid.UUID, from, to *time.Time) (int64, error) {
	args := m.Called(ctx, batchID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductionRepository) ExistsDailyRecord(ctx context.Context, batchID uuid.UUID, recordDate time.Time) (bool, error) {
	args := m.Called(ctx, batchID, recordDate)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductionRepository) SaveEggProduction(ctx context.Context, e *flock.EggProduction) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockProductionRepository) FindEggProduction(ctx context.Context, batchID uuid.UUID, from, to *time.Time, filter shared.Filter) ([]flock.EggProduction, error) {
	args := m.Called(ctx, batchID, from, to, filter)
	return args.Get(0).([]flock.EggProduction), args.Error(1)
}

func (m *MockProductionRepository) CountEggProduction(ctx context.Context, batchID uuid.UUID, from, to *time.Time) (int64, error) {
	args := m.Called(ctx, batchID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductionRepository) ExistsEggProduction(ctx context.Context, batchID uuid.UUID, productionDate time.Time) (bool, error) {
	args := m.Called(ctx, batchID, productionDate)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductionRepository) Statistics(ctx context.Context, batchID uuid.UUID) (*flock.BatchStatistics, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flock.BatchStatistics), args.Error(1)
}

func (m *MockProductionRepository) FarmTotalsSince(ctx context.Context, farmID uuid.UUID, since time.Time) (decimal.Decimal, int, error) {
	args := m.Called(ctx, farmID, since)
	return args.Get(0).(decimal.Decimal), args.Get(1).(int), args.Error(2)
}
