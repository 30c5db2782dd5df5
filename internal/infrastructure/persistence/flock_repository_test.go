package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/farmcore/backend/internal/domain/flock"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormBatchRepository_FindActiveByHouse(t *testing.T) {
	t.Run("finds the active batch in a house", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()
		repo := NewGormBatchRepository(gormDB)

		houseID := uuid.New()
		batchID := uuid.New()
		farmID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "farm_id", "house_id", "batch_code", "bird_type", "initial_count", "current_count", "status"}).
			AddRow(batchID, farmID, houseID, "B2026-01", "broiler", 1500, 1480, "active")

		mock.ExpectQuery(`SELECT \* FROM "batches" WHERE house_id = \$1 AND status = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(houseID, "active", 1).
			WillReturnRows(rows)

		b, err := repo.FindActiveByHouse(context.Background(), houseID)

		assert.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, batchID, b.ID)
		assert.Equal(t, flock.BatchStatusActive, b.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for an empty house", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()
		repo := NewGormBatchRepository(gormDB)

		houseID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "batches" WHERE house_id = \$1 AND status = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(houseID, "active", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		b, err := repo.FindActiveByHouse(context.Background(), houseID)

		assert.Error(t, err)
		assert.Nil(t, b)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBatchRepository_ExistsCode(t *testing.T) {
	t.Run("uppercases the code before matching", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()
		repo := NewGormBatchRepository(gormDB)

		farmID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "batches" WHERE farm_id = \$1 AND batch_code = \$2`).
			WithArgs(farmID, "B2026-01").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsCode(context.Background(), farmID, "b2026-01")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBatchRepository_CountActiveForHouse(t *testing.T) {
	t.Run("counts only active batches", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()
		repo := NewGormBatchRepository(gormDB)

		houseID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "batches" WHERE house_id = \$1 AND status = \$2`).
			WithArgs(houseID, "active").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		count, err := repo.CountActiveForHouse(context.Background(), houseID)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductionRepository_ExistsDailyRecord(t *testing.T) {
	t.Run("matches batch and record date", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()
		repo := NewGormProductionRepository(gormDB)

		batchID := uuid.New()
		recordDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "daily_records" WHERE batch_id = \$1 AND record_date = \$2`).
			WithArgs(batchID, "2026-08-30").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsDailyRecord(context.Background(), batchID, recordDate)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductionRepository_CountDailyRecords(t *testing.T) {
	t.Run("applies the optional date window", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()
		repo := NewGormProductionRepository(gormDB)

		batchID := uuid.New()
		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "daily_records" WHERE batch_id = \$1 AND record_date >= \$2 AND record_date <= \$3`).
			WithArgs(batchID, "2026-08-01", "2026-08-31").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(31))

		count, err := repo.CountDailyRecords(context.Background(), batchID, &from, &to)

		assert.NoError(t, err)
		assert.Equal(t, int64(31), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips the window when no bounds are given", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()
		repo := NewGormProductionRepository(gormDB)

		batchID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "daily_records" WHERE batch_id = \$1`).
			WithArgs(batchID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))

		count, err := repo.CountDailyRecords(context.Background(), batchID, nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, int64(45), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductionRepository_SaveDailyRecordWithBatch(t *testing.T) {
	newRecordAndBatch := func(t *testing.T) (*flock.DailyRecord, *flock.Batch) {
		t.Helper()
		farmID := uuid.New()
		batch, err := flock.NewBatch(farmID, uuid.New(), "B2026-02", "Ross 308", flock.BirdTypeBroiler, 1500, time.Now(), 1)
		require.NoError(t, err)
		record, err := flock.NewDailyRecord(farmID, batch.ID, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			1480, 3, 1, decimal.NewFromInt(180), decimal.NewFromInt(320), decimal.NewFromFloat(1.25))
		require.NoError(t, err)
		return record, batch
	}

	t.Run("commits record and batch count together", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()
		repo := NewGormProductionRepository(gormDB)

		record, batch := newRecordAndBatch(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "daily_records" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "batches" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SaveDailyRecordWithBatch(context.Background(), record, batch)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back the record when the batch write fails", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()
		repo := NewGormProductionRepository(gormDB)

		record, batch := newRecordAndBatch(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "daily_records" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "batches" SET`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.SaveDailyRecordWithBatch(context.Background(), record, batch)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFlockRepositories_InterfaceCompliance(t *testing.T) {
	gormDB, _, mockDB := newMockGorm(t)
	defer mockDB.Close()

	var _ flock.BatchRepository = NewGormBatchRepository(gormDB)
	var _ flock.ProductionRepository = NewGormProductionRepository(gormDB)
}
